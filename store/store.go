/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package store persists the scorekeeper's whole application state --
// player roster, active game, and game history -- as a single versioned
// JSON blob behind a pluggable Backend. Every mutating operation takes the
// current state and produces a new state value; nothing is modified in
// place.
package store

import (
	"context"
	"fmt"
	"log"

	"github.com/mikeb26/pinochle-scorebot/pinochle"
)

// CurrentVersion is the blob layout version written by this build.
const CurrentVersion = 1

// AppState is the complete persisted application state. At most one game is
// active at a time; finished or paused games live in SavedGames keyed by id.
type AppState struct {
	Version    int               `json:"version"`
	Players    []pinochle.Player `json:"players"`
	ActiveGame *pinochle.Game    `json:"activeGame"`
	SavedGames []*pinochle.Game  `json:"savedGames"`
}

// Backend stores and retrieves state blobs by key. Get reports absence via
// its second return rather than an error.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

func (st AppState) clone() AppState {
	next := st
	next.Players = append([]pinochle.Player(nil), st.Players...)
	next.ActiveGame = st.ActiveGame.Clone()
	next.SavedGames = make([]*pinochle.Game, len(st.SavedGames))
	for i, g := range st.SavedGames {
		next.SavedGames[i] = g.Clone()
	}
	return next
}

// WithPlayer adds a roster entry. Names must be non-empty and unique.
func (st AppState) WithPlayer(name string) (AppState, pinochle.Player, error) {
	p, err := pinochle.NewPlayer(name)
	if err != nil {
		return st, pinochle.Player{}, err
	}
	for _, existing := range st.Players {
		if existing.Name == p.Name {
			return st, pinochle.Player{},
				fmt.Errorf("a player named %q already exists", p.Name)
		}
	}
	next := st.clone()
	next.Players = append(next.Players, p)
	return next, p, nil
}

// WithUpdatedStats folds one finished-game result into a player's stats.
func (st AppState) WithUpdatedStats(playerID string, won bool,
	score int) (AppState, error) {

	next := st.clone()
	for i := range next.Players {
		if next.Players[i].ID == playerID {
			next.Players[i].RecordResult(won, score)
			return next, nil
		}
	}
	return st, fmt.Errorf("no player with id %v", playerID)
}

// WithNewGame starts a game from config. Fails without creating anything if
// the config is invalid or another game is already active.
func (st AppState) WithNewGame(config pinochle.GameConfig) (AppState, error) {
	if st.ActiveGame != nil {
		return st, fmt.Errorf("a game is already in progress; quit it before starting another")
	}
	for _, pid := range config.SeatPlayers {
		if st.playerByID(pid) == nil {
			return st, fmt.Errorf("cannot start game: no player with id %v", pid)
		}
	}
	game, err := pinochle.NewGame(config)
	if err != nil {
		return st, err
	}
	next := st.clone()
	next.ActiveGame = game
	return next, nil
}

// WithRound scores and appends one round to the active game.
func (st AppState) WithRound(in pinochle.RoundInput) (AppState, error) {
	if st.ActiveGame == nil {
		return st, fmt.Errorf("no game is in progress")
	}
	next := st.clone()
	if err := next.ActiveGame.AddRound(in); err != nil {
		return st, err
	}
	return next, nil
}

// WithoutLastRound undoes the active game's most recent round.
func (st AppState) WithoutLastRound() (AppState, error) {
	if st.ActiveGame == nil {
		return st, fmt.Errorf("no game is in progress")
	}
	next := st.clone()
	next.ActiveGame.RemoveLastRound()
	return next, nil
}

// WithActiveQuit moves the active game into SavedGames, replacing any
// earlier entry with the same id. Quitting with no active game is a no-op,
// which makes quit idempotent. The first time a finished game is quit, each
// seat's player stats are updated; the game's StatsRecorded flag keeps
// later quit/resume cycles from double-counting.
func (st AppState) WithActiveQuit() AppState {
	if st.ActiveGame == nil {
		return st
	}
	next := st.clone()
	game := next.ActiveGame
	next.ActiveGame = nil

	kept := next.SavedGames[:0]
	for _, g := range next.SavedGames {
		if g.ID != game.ID {
			kept = append(kept, g)
		}
	}
	next.SavedGames = append(kept, game)

	if game.Status == pinochle.StatusFinished && !game.StatsRecorded {
		next.recordGameResult(game)
		game.StatsRecorded = true
	}

	return next
}

// WithResumed moves a saved game back to active.
func (st AppState) WithResumed(gameID string) (AppState, error) {
	if st.ActiveGame != nil {
		return st, fmt.Errorf("a game is already in progress; quit it before resuming another")
	}
	next := st.clone()
	for i, g := range next.SavedGames {
		if g.ID == gameID {
			next.ActiveGame = g
			next.SavedGames = append(next.SavedGames[:i],
				next.SavedGames[i+1:]...)
			return next, nil
		}
	}
	return st, fmt.Errorf("no saved game with id %v", gameID)
}

// recordGameResult updates every seated player's stats in place on next.
func (st *AppState) recordGameResult(game *pinochle.Game) {
	winnerSeats := make(map[int]bool)
	for _, seat := range game.WinnerSeats() {
		winnerSeats[seat] = true
	}
	totals := game.SeatTotals()
	for seat, pid := range game.Config.SeatPlayers {
		p := st.playerByID(pid)
		if p == nil {
			log.Printf("store.record: game %v seat %v references unknown player %v",
				game.ID, seat, pid)
			continue
		}
		p.RecordResult(winnerSeats[seat], totals[seat])
	}
}

func (st *AppState) playerByID(id string) *pinochle.Player {
	for i := range st.Players {
		if st.Players[i].ID == id {
			return &st.Players[i]
		}
	}
	return nil
}

// PlayerNames returns the id→name mapping used by the output builders.
func (st AppState) PlayerNames() map[string]string {
	names := make(map[string]string, len(st.Players))
	for _, p := range st.Players {
		names[p.ID] = p.Name
	}
	return names
}

// FindPlayer resolves a player by id or (case-sensitive) name.
func (st AppState) FindPlayer(idOrName string) (pinochle.Player, bool) {
	for _, p := range st.Players {
		if p.ID == idOrName || p.Name == idOrName {
			return p, true
		}
	}
	return pinochle.Player{}, false
}
