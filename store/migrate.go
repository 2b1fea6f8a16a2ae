/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mikeb26/pinochle-scorebot/pinochle"
)

// decodeState unmarshals a persisted blob, migrating older layouts to the
// current version. Version 0 is the original web scorekeeper's persisted
// shape: the whole state nested under a "state" envelope with its field
// names (type/playerIds/teamMode, bidderIndex/roundScores) and epoch-milli
// timestamps.
func decodeState(data []byte) (AppState, error) {
	var probe struct {
		Version int             `json:"version"`
		State   json.RawMessage `json:"state"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return AppState{}, fmt.Errorf("unable to parse state blob: %w", err)
	}

	if probe.State != nil {
		return migrateV0(probe.State)
	}

	if probe.Version > CurrentVersion {
		return AppState{}, fmt.Errorf("state blob version %v is newer than supported version %v",
			probe.Version, CurrentVersion)
	}

	var state AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return AppState{}, fmt.Errorf("unable to parse state blob: %w", err)
	}
	state.Version = CurrentVersion
	return state, nil
}

type legacyRound struct {
	ID          string        `json:"id"`
	BidderIndex int           `json:"bidderIndex"`
	BidAmount   int           `json:"bidAmount"`
	TrumpSuit   pinochle.Suit `json:"trumpSuit"`
	Meld        []int         `json:"meld"`
	Tricks      []int         `json:"tricks"`
	RoundScores []int         `json:"roundScores"`
	WentSet     bool          `json:"wentSet"`
}

type legacyConfig struct {
	Type        string   `json:"type"`
	TargetScore int      `json:"targetScore"`
	PlayerIds   []string `json:"playerIds"`
	TeamMode    bool     `json:"teamMode"`
}

type legacyGame struct {
	ID          string        `json:"id"`
	Config      legacyConfig  `json:"config"`
	Rounds      []legacyRound `json:"rounds"`
	Status      string        `json:"status"`
	WinnerIndex *int          `json:"winnerIndex"`
	CreatedAt   int64         `json:"createdAt"` // epoch millis
}

type legacyState struct {
	Players    []pinochle.Player `json:"players"`
	ActiveGame *legacyGame       `json:"activeGame"`
	SavedGames []*legacyGame     `json:"savedGames"`
}

func migrateV0(raw json.RawMessage) (AppState, error) {
	var legacy legacyState
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return AppState{}, fmt.Errorf("unable to parse v0 state blob: %w", err)
	}

	state := AppState{
		Version: CurrentVersion,
		Players: legacy.Players,
	}
	var err error
	if state.ActiveGame, err = migrateV0Game(legacy.ActiveGame); err != nil {
		return AppState{}, err
	}
	for _, lg := range legacy.SavedGames {
		g, err := migrateV0Game(lg)
		if err != nil {
			return AppState{}, err
		}
		state.SavedGames = append(state.SavedGames, g)
	}
	return state, nil
}

func migrateV0Game(lg *legacyGame) (*pinochle.Game, error) {
	if lg == nil {
		return nil, nil
	}

	mode := pinochle.GameMode(lg.Config.Type)
	if mode.SeatCount() == 0 {
		return nil, fmt.Errorf("v0 game %v has unknown type %q", lg.ID,
			lg.Config.Type)
	}

	game := &pinochle.Game{
		ID: lg.ID,
		Config: pinochle.GameConfig{
			Mode:            mode,
			TargetScore:     lg.Config.TargetScore,
			SeatPlayers:     lg.Config.PlayerIds,
			PartnershipMode: lg.Config.TeamMode,
		},
		Status:      pinochle.GameStatus(lg.Status),
		WinnerIndex: -1,
		CreatedAt:   time.UnixMilli(lg.CreatedAt).UTC(),
	}
	if game.Status == pinochle.StatusFinished {
		if lg.WinnerIndex != nil {
			// the original app ran its win check over per-seat totals even
			// in team games, so a v0 winnerIndex is always a seat index;
			// fold it into the scoring entry it belongs to
			game.WinnerIndex = game.EntryIndexForSeat(*lg.WinnerIndex)
		}
		// the original app folded finished games into player stats at
		// completion time, so never re-record them after migration
		game.StatsRecorded = true
	}

	game.Rounds = make([]pinochle.Round, len(lg.Rounds))
	for i, lr := range lg.Rounds {
		game.Rounds[i] = pinochle.Round{
			ID:         lr.ID,
			BidderSeat: lr.BidderIndex,
			BidAmount:  lr.BidAmount,
			TrumpSuit:  lr.TrumpSuit,
			Meld:       lr.Meld,
			Tricks:     lr.Tricks,
			NetScores:  lr.RoundScores,
			WentSet:    lr.WentSet,
		}
	}

	return game, nil
}
