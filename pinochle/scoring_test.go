/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import (
	"reflect"
	"testing"
)

func TestScoreRound(t *testing.T) {
	cases := []struct {
		name       string
		mode       GameMode
		bidderSeat int
		bidAmount  int
		meld       []int
		tricks     []int
		wantScores []int
		wantSet    bool
	}{
		{
			name:       "3-handed bidder goes set",
			mode:       ThreeHanded,
			bidderSeat: 0,
			bidAmount:  300,
			meld:       []int{50, 20, 30},
			tricks:     []int{100, 80, 70},
			wantScores: []int{-300, 100, 100},
			wantSet:    true,
		},
		{
			name:       "3-handed bidder makes bid",
			mode:       ThreeHanded,
			bidderSeat: 0,
			bidAmount:  100,
			meld:       []int{50, 20, 30},
			tricks:     []int{100, 80, 70},
			wantScores: []int{150, 100, 100},
			wantSet:    false,
		},
		{
			name:       "partnership goes set",
			mode:       FourHanded,
			bidderSeat: 0,
			bidAmount:  500,
			meld:       []int{40, 10, 20, 10},
			tricks:     []int{60, 70, 50, 70},
			wantScores: []int{-500, 80, 0, 80},
			wantSet:    true,
		},
		{
			name:       "partnership makes bid",
			mode:       FourHanded,
			bidderSeat: 0,
			bidAmount:  150,
			meld:       []int{40, 10, 20, 10},
			tricks:     []int{60, 70, 50, 70},
			wantScores: []int{100, 80, 70, 80},
			wantSet:    false,
		},
		{
			name:       "partnership partner as bidder goes set",
			mode:       FourHanded,
			bidderSeat: 3,
			bidAmount:  400,
			meld:       []int{40, 10, 20, 10},
			tricks:     []int{60, 70, 50, 70},
			wantScores: []int{100, 0, 70, -400},
			wantSet:    true,
		},
		{
			name:       "2-handed exact bid is made",
			mode:       TwoHanded,
			bidderSeat: 1,
			bidAmount:  150,
			meld:       []int{40, 50},
			tricks:     []int{150, 100},
			wantScores: []int{190, 150},
			wantSet:    false,
		},
		{
			name:       "zero bid never sets",
			mode:       TwoHanded,
			bidderSeat: 0,
			bidAmount:  0,
			meld:       []int{0, 0},
			tricks:     []int{0, 0},
			wantScores: []int{0, 0},
			wantSet:    false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			scores, wentSet := ScoreRound(c.mode, c.bidderSeat, c.bidAmount,
				c.meld, c.tricks)
			if !reflect.DeepEqual(scores, c.wantScores) {
				t.Errorf("netScores = %v; want %v", scores, c.wantScores)
			}
			if wentSet != c.wantSet {
				t.Errorf("wentSet = %v; want %v", wentSet, c.wantSet)
			}
		})
	}
}

// TestScoreRoundPure verifies identical inputs always produce identical
// results and that the caller's slices are never modified.
func TestScoreRoundPure(t *testing.T) {
	meld := []int{40, 10, 20, 10}
	tricks := []int{60, 70, 50, 70}

	first, firstSet := ScoreRound(FourHanded, 0, 500, meld, tricks)
	for i := 0; i < 10; i++ {
		scores, wentSet := ScoreRound(FourHanded, 0, 500, meld, tricks)
		if !reflect.DeepEqual(scores, first) || wentSet != firstSet {
			t.Fatalf("call %v diverged: %v/%v vs %v/%v", i, scores, wentSet,
				first, firstSet)
		}
	}

	if !reflect.DeepEqual(meld, []int{40, 10, 20, 10}) {
		t.Errorf("meld input was modified: %v", meld)
	}
	if !reflect.DeepEqual(tricks, []int{60, 70, 50, 70}) {
		t.Errorf("tricks input was modified: %v", tricks)
	}
}

// TestScoreRoundConservation verifies sum(netScores) <= sum(meld)+sum(tricks),
// with equality exactly when the bid is made.
func TestScoreRoundConservation(t *testing.T) {
	cases := []struct {
		mode       GameMode
		bidderSeat int
		bidAmount  int
		meld       []int
		tricks     []int
	}{
		{ThreeHanded, 0, 300, []int{50, 20, 30}, []int{100, 80, 70}},
		{ThreeHanded, 1, 90, []int{50, 20, 30}, []int{100, 80, 70}},
		{FourHanded, 2, 500, []int{40, 10, 20, 10}, []int{60, 70, 50, 70}},
		{FourHanded, 1, 120, []int{40, 10, 20, 10}, []int{60, 70, 50, 70}},
		{TwoHanded, 0, 250, []int{100, 0}, []int{125, 125}},
	}
	for _, c := range cases {
		rawSum := 0
		for i := range c.meld {
			rawSum += c.meld[i] + c.tricks[i]
		}
		scores, wentSet := ScoreRound(c.mode, c.bidderSeat, c.bidAmount,
			c.meld, c.tricks)
		netSum := 0
		for _, s := range scores {
			netSum += s
		}
		if wentSet && netSum >= rawSum {
			t.Errorf("%v bid %v: set round net sum %v not below raw sum %v",
				c.mode, c.bidAmount, netSum, rawSum)
		}
		if !wentSet && netSum != rawSum {
			t.Errorf("%v bid %v: made round net sum %v != raw sum %v",
				c.mode, c.bidAmount, netSum, rawSum)
		}
	}
}
