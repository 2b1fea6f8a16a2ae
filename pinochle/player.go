/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PlayerStats accumulates results across completed games.
type PlayerStats struct {
	GamesPlayed int `json:"gamesPlayed"`
	GamesWon    int `json:"gamesWon"`
	HighScore   int `json:"highScore"`
}

// Player is a roster entry. Stats are mutated by game-completion events,
// not by the scoring algorithm.
type Player struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Stats PlayerStats `json:"stats"`
}

// NewPlayer creates a roster entry with zeroed stats.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, fmt.Errorf("player name must not be empty")
	}
	return Player{ID: uuid.NewString(), Name: name}, nil
}

// RecordResult folds one finished game into the player's stats.
func (p *Player) RecordResult(won bool, score int) {
	p.Stats.GamesPlayed++
	if won {
		p.Stats.GamesWon++
	}
	if score > p.Stats.HighScore {
		p.Stats.HighScore = score
	}
}
