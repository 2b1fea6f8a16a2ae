/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/pinochle-scorebot/internal"
	"github.com/mikeb26/pinochle-scorebot/store"
)

var stateBackend store.Backend

// initStateBackend connects to the S3 bucket holding per-guild state blobs.
func initStateBackend(ctx context.Context) error {
	backend := store.NewS3Backend(internal.StateBucket)
	if err := backend.Init(ctx); err != nil {
		return err
	}
	stateBackend = backend
	return nil
}

// stateKey scopes a blob to the guild the interaction arrived from, or to
// the user for direct messages.
func stateKey(inter *discordgo.Interaction) string {
	if inter.GuildID != "" {
		return "guild-" + inter.GuildID
	}
	if inter.User != nil {
		return "user-" + inter.User.ID
	}
	return internal.StateKeyDefault
}

// loadStore hydrates the store for the interaction's guild.
func loadStore(ctx context.Context,
	inter *discordgo.Interaction) (*store.Store, error) {

	s := store.New(stateBackend, stateKey(inter))
	if err := s.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load scorekeeper state: %w", err)
	}
	return s, nil
}
