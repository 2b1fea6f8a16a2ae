/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package pinochle implements round scoring and game-session tracking for
// 2-, 3-, and 4-handed Pinochle. Meld and trick points are caller-supplied
// integers; this package does no card-level rules enforcement.
package pinochle

import "fmt"

// GameMode selects the number of scoring seats.
type GameMode string

const (
	TwoHanded   GameMode = "2-handed"
	ThreeHanded GameMode = "3-handed"
	FourHanded  GameMode = "4-handed"
)

// SeatCount returns the number of seats implied by the mode, or 0 for an
// unrecognized mode.
func (m GameMode) SeatCount() int {
	switch m {
	case TwoHanded:
		return 2
	case ThreeHanded:
		return 3
	case FourHanded:
		return 4
	}
	return 0
}

// Suit is the trump suit declared for a round.
type Suit string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists the valid trump suits in conventional order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Symbol returns the single-rune card symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	}
	return "?"
}

// ParseSuit converts a user-supplied suit name to a Suit.
func ParseSuit(s string) (Suit, error) {
	switch Suit(s) {
	case Hearts, Diamonds, Clubs, Spades:
		return Suit(s), nil
	}
	return "", fmt.Errorf("unknown suit %q (want hearts, diamonds, clubs, or spades)", s)
}

// GameStatus is the lifecycle state of a game session.
type GameStatus string

const (
	StatusSetup    GameStatus = "setup"
	StatusPlaying  GameStatus = "playing"
	StatusFinished GameStatus = "finished"
)
