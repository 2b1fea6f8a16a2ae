/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import (
	"strings"
	"testing"
)

func TestBuildScoreboardOutput(t *testing.T) {
	g, err := NewGame(GameConfig{
		Mode:            FourHanded,
		TargetScore:     1500,
		SeatPlayers:     []string{"pa", "pb", "pc", "pd"},
		PartnershipMode: true,
	})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	names := map[string]string{
		"pa": "Alice", "pb": "Bob", "pc": "Carol", "pd": "Dave",
	}

	in := RoundInput{BidderSeat: 0, BidAmount: 150, TrumpSuit: Hearts,
		Meld: []int{40, 10, 20, 10}, Tricks: []int{60, 70, 50, 70}}
	if err := g.AddRound(in); err != nil {
		t.Fatalf("AddRound: %v", err)
	}

	out := BuildScoreboardOutput(g, names)
	for _, want := range []string{
		"Scores after 1 round(s):",
		"Alice & Carol",
		"Bob & Dave",
		"Playing to 1500.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%v", want, out)
		}
	}
	if strings.Contains(out, "Game over") {
		t.Errorf("unfinished game rendered a winner line:\n%v", out)
	}

	// partnership totals, highest first: Alice & Carol 170, Bob & Dave 150
	acLine := strings.Index(out, "Alice & Carol")
	bdLine := strings.Index(out, "Bob & Dave")
	if acLine < 0 || bdLine < 0 || acLine > bdLine {
		t.Errorf("entries not ordered by total:\n%v", out)
	}
}

func TestBuildScoreboardOutputWinner(t *testing.T) {
	g := twoHandedGame(t, 1000)
	names := map[string]string{"p1": "Alice", "p2": "Bob"}

	in := RoundInput{BidderSeat: 0, BidAmount: 500, TrumpSuit: Spades,
		Meld: []int{900, 0}, Tricks: []int{200, 50}}
	if err := g.AddRound(in); err != nil {
		t.Fatalf("AddRound: %v", err)
	}
	if g.Status != StatusFinished {
		t.Fatalf("Status = %v; want %v", g.Status, StatusFinished)
	}

	out := BuildScoreboardOutput(g, names)
	if !strings.Contains(out, "Game over: Alice wins!") {
		t.Errorf("missing winner line:\n%v", out)
	}
}

func TestBuildHistoryOutput(t *testing.T) {
	g := twoHandedGame(t, 1000)
	names := map[string]string{"p1": "Alice", "p2": "Bob"}

	if out := BuildHistoryOutput(g, names); !strings.Contains(out, "No rounds") {
		t.Errorf("empty history output = %q", out)
	}

	in := RoundInput{BidderSeat: 1, BidAmount: 400, TrumpSuit: Clubs,
		Meld: []int{50, 60}, Tricks: []int{150, 100}}
	if err := g.AddRound(in); err != nil {
		t.Fatalf("AddRound: %v", err)
	}

	out := BuildHistoryOutput(g, names)
	for _, want := range []string{
		"Round 1: Bob bid 400 in clubs ♣ (SET)",
		"Alice: meld 50, tricks 150, net +200",
		"Bob: meld 60, tricks 100, net -400",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%v", want, out)
		}
	}
}
