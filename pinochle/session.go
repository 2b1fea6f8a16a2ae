/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RoundInput is the raw, caller-supplied record of one completed round.
type RoundInput struct {
	BidderSeat int   `json:"bidderSeat"`
	BidAmount  int   `json:"bidAmount"`
	TrumpSuit  Suit  `json:"trumpSuit"`
	Meld       []int `json:"meld"`
	Tricks     []int `json:"tricks"`
}

// Round is a scored round as stored in a game's history. NetScores and
// WentSet are derived at append time; a Round is never mutated afterwards.
type Round struct {
	ID         string `json:"id"`
	BidderSeat int    `json:"bidderSeat"`
	BidAmount  int    `json:"bidAmount"`
	TrumpSuit  Suit   `json:"trumpSuit"`
	Meld       []int  `json:"meld"`
	Tricks     []int  `json:"tricks"`
	NetScores  []int  `json:"netScores"`
	WentSet    bool   `json:"wentSet"`
}

// Game is one Pinochle game session: a fixed config plus an append-only
// round history and the status derived from it.
type Game struct {
	ID          string     `json:"id"`
	Config      GameConfig `json:"config"`
	Rounds      []Round    `json:"rounds"`
	Status      GameStatus `json:"status"`
	WinnerIndex int        `json:"winnerIndex"` // entry index; -1 while unfinished
	// StatsRecorded marks that this game's outcome has been folded into
	// player stats, so repeated quit/resume cycles never double-count.
	StatsRecorded bool      `json:"statsRecorded"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewGame validates config and creates a session in Playing status. On
// validation failure no session is created.
func NewGame(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("cannot start game: %w", err)
	}
	return &Game{
		ID:          uuid.NewString(),
		Config:      config,
		Rounds:      []Round{},
		Status:      StatusPlaying,
		WinnerIndex: -1,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// SeatCount returns the number of seats in this game.
func (g *Game) SeatCount() int {
	return g.Config.Mode.SeatCount()
}

// validateRoundInput rejects structurally invalid input before scoring.
// These are defensive checks; the surrounding input surface is expected to
// prevent them.
func (g *Game) validateRoundInput(in RoundInput) error {
	seats := g.SeatCount()
	if in.BidderSeat < 0 || in.BidderSeat >= seats {
		return fmt.Errorf("bidder seat %v out of range [0,%v)", in.BidderSeat,
			seats)
	}
	if in.BidAmount < 0 {
		return fmt.Errorf("negative bid amount %v", in.BidAmount)
	}
	if len(in.Meld) != seats || len(in.Tricks) != seats {
		return fmt.Errorf("meld/tricks length (%v/%v) must equal seat count %v",
			len(in.Meld), len(in.Tricks), seats)
	}
	for i := 0; i < seats; i++ {
		if in.Meld[i] < 0 || in.Tricks[i] < 0 {
			return fmt.Errorf("seat %v has negative meld or trick points", i)
		}
	}
	return nil
}

// AddRound scores in, appends the resulting Round, and re-runs win
// detection. Invalid input is rejected without mutating the game.
func (g *Game) AddRound(in RoundInput) error {
	if err := g.validateRoundInput(in); err != nil {
		return err
	}

	netScores, wentSet := ScoreRound(g.Config.Mode, in.BidderSeat,
		in.BidAmount, in.Meld, in.Tricks)

	// copy the caller's slices so stored rounds own their data
	g.Rounds = append(g.Rounds, Round{
		ID:         uuid.NewString(),
		BidderSeat: in.BidderSeat,
		BidAmount:  in.BidAmount,
		TrumpSuit:  in.TrumpSuit,
		Meld:       append([]int(nil), in.Meld...),
		Tricks:     append([]int(nil), in.Tricks...),
		NetScores:  netScores,
		WentSet:    wentSet,
	})
	g.detectWinner()

	return nil
}

// RemoveLastRound drops the most recent round, reopening the game if that
// round had finished it. No-op on an empty history. This is the only
// mutation that shortens history; it exists to correct scoring mistakes.
func (g *Game) RemoveLastRound() {
	if len(g.Rounds) == 0 {
		return
	}
	g.Rounds = g.Rounds[:len(g.Rounds)-1]
	g.Status = StatusPlaying
	g.WinnerIndex = -1
}

// Clone returns a deep copy of the game. Callers that hand out snapshots
// use this to keep prior states immutable.
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	dup := *g
	dup.Rounds = make([]Round, len(g.Rounds))
	for i, r := range g.Rounds {
		dup.Rounds[i] = r
		dup.Rounds[i].Meld = append([]int(nil), r.Meld...)
		dup.Rounds[i].Tricks = append([]int(nil), r.Tricks...)
		dup.Rounds[i].NetScores = append([]int(nil), r.NetScores...)
	}
	dup.Config.SeatPlayers = append([]string(nil), g.Config.SeatPlayers...)
	return &dup
}

// SeatTotals sums net scores per seat across all rounds.
func (g *Game) SeatTotals() []int {
	totals := make([]int, g.SeatCount())
	for _, r := range g.Rounds {
		for i, s := range r.NetScores {
			totals[i] += s
		}
	}
	return totals
}

// EntryTotals returns the scoring-entry view of SeatTotals: two partnership
// totals (seats 0&2 and 1&3) in partnership mode, otherwise the per-seat
// totals as-is. Derived on read; never stored.
func (g *Game) EntryTotals() []int {
	seatTotals := g.SeatTotals()
	if !g.Config.PartnershipMode {
		return seatTotals
	}
	return []int{seatTotals[0] + seatTotals[2], seatTotals[1] + seatTotals[3]}
}

// EntryIndexForSeat maps a seat to its scoring entry.
func (g *Game) EntryIndexForSeat(seat int) int {
	if g.Config.PartnershipMode {
		return seat % 2
	}
	return seat
}

// detectWinner marks the game finished when any entry's total reaches the
// target score. Among qualifiers the last round's bidding side wins if it
// qualifies; otherwise the highest total wins, exact ties going to the
// lowest entry index.
func (g *Game) detectWinner() {
	totals := g.EntryTotals()
	target := g.Config.TargetScore

	winner := -1
	for idx, total := range totals {
		if total < target {
			continue
		}
		if winner == -1 || total > totals[winner] {
			winner = idx
		}
	}
	if winner == -1 {
		g.Status = StatusPlaying
		g.WinnerIndex = -1
		return
	}

	// prefer the bidding side of the deciding round when it also qualifies
	if len(g.Rounds) > 0 {
		bidEntry := g.EntryIndexForSeat(g.Rounds[len(g.Rounds)-1].BidderSeat)
		if totals[bidEntry] >= target {
			winner = bidEntry
		}
	}

	g.Status = StatusFinished
	g.WinnerIndex = winner
}

// WinnerSeats returns the seats belonging to the winning entry, or nil if
// the game is unfinished.
func (g *Game) WinnerSeats() []int {
	if g.Status != StatusFinished || g.WinnerIndex < 0 {
		return nil
	}
	if !g.Config.PartnershipMode {
		return []int{g.WinnerIndex}
	}
	return []int{g.WinnerIndex, g.WinnerIndex + 2}
}
