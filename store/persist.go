/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mikeb26/pinochle-scorebot/pinochle"
)

// Store binds an AppState snapshot to a Backend blob. All mutating methods
// replace the snapshot wholesale with the result of the corresponding
// AppState operation; a failed operation leaves the snapshot untouched.
type Store struct {
	backend Backend
	key     string
	state   AppState
}

// New returns a Store for the given backend and blob key with an empty
// state. Call Load to hydrate from the backend.
func New(backend Backend, key string) *Store {
	return &Store{
		backend: backend,
		key:     key,
		state:   AppState{Version: CurrentVersion},
	}
}

// Load replaces the in-memory state with the persisted blob, migrating
// older layouts forward. A missing blob yields a fresh empty state.
func (s *Store) Load(ctx context.Context) error {
	data, ok, err := s.backend.Get(ctx, s.key)
	if err != nil {
		return fmt.Errorf("store.load: %w", err)
	}
	if !ok {
		s.state = AppState{Version: CurrentVersion}
		return nil
	}
	state, err := decodeState(data)
	if err != nil {
		return fmt.Errorf("store.load: %w", err)
	}
	s.state = state
	return nil
}

// Save writes the current state through the backend.
func (s *Store) Save(ctx context.Context) error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("store.save: %w", err)
	}
	if err := s.backend.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("store.save: %w", err)
	}
	return nil
}

// State returns a snapshot copy of the current state.
func (s *Store) State() AppState {
	return s.state.clone()
}

// ActiveGame returns a snapshot of the active game, or nil.
func (s *Store) ActiveGame() *pinochle.Game {
	return s.state.ActiveGame.Clone()
}

// SavedGames returns a snapshot of the history collection.
func (s *Store) SavedGames() []*pinochle.Game {
	games := make([]*pinochle.Game, len(s.state.SavedGames))
	for i, g := range s.state.SavedGames {
		games[i] = g.Clone()
	}
	return games
}

// Players returns a snapshot of the roster.
func (s *Store) Players() []pinochle.Player {
	return append([]pinochle.Player(nil), s.state.Players...)
}

// PlayerNames returns the id→name mapping for the current roster.
func (s *Store) PlayerNames() map[string]string {
	return s.state.PlayerNames()
}

// FindPlayer resolves a player by id or name.
func (s *Store) FindPlayer(idOrName string) (pinochle.Player, bool) {
	return s.state.FindPlayer(idOrName)
}

// AddPlayer adds a roster entry.
func (s *Store) AddPlayer(name string) (pinochle.Player, error) {
	next, p, err := s.state.WithPlayer(name)
	if err != nil {
		return pinochle.Player{}, err
	}
	s.state = next
	return p, nil
}

// UpdatePlayerStats records one finished-game result for a player.
func (s *Store) UpdatePlayerStats(playerID string, won bool, score int) error {
	next, err := s.state.WithUpdatedStats(playerID, won, score)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// StartGame validates config and makes the new game active.
func (s *Store) StartGame(config pinochle.GameConfig) (*pinochle.Game, error) {
	next, err := s.state.WithNewGame(config)
	if err != nil {
		return nil, err
	}
	s.state = next
	return s.state.ActiveGame.Clone(), nil
}

// AddRound scores and appends one round to the active game, returning the
// resulting game snapshot.
func (s *Store) AddRound(in pinochle.RoundInput) (*pinochle.Game, error) {
	next, err := s.state.WithRound(in)
	if err != nil {
		return nil, err
	}
	s.state = next
	return s.state.ActiveGame.Clone(), nil
}

// DeleteLastRound undoes the active game's most recent round.
func (s *Store) DeleteLastRound() error {
	next, err := s.state.WithoutLastRound()
	if err != nil {
		return err
	}
	s.state = next
	return nil
}

// QuitActiveGame moves the active game into history. Idempotent.
func (s *Store) QuitActiveGame() {
	s.state = s.state.WithActiveQuit()
}

// ResumeGame makes a saved game active again.
func (s *Store) ResumeGame(gameID string) error {
	next, err := s.state.WithResumed(gameID)
	if err != nil {
		return err
	}
	s.state = next
	return nil
}
