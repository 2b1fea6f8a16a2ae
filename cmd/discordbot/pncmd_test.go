/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/pinochle-scorebot/store"
)

// useTestBackend swaps the S3 state backend for a temp-dir file backend so
// handlers can be exercised without AWS credentials.
func useTestBackend(t *testing.T) {
	t.Helper()

	backend, err := store.NewFileBackend(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create file backend: %v", err)
	}
	prev := stateBackend
	stateBackend = backend
	t.Cleanup(func() { stateBackend = prev })
}

// fakeSubCmdInter constructs a fake /pinochle <sub> interaction with the
// given options.
func fakeSubCmdInter(sub PnSubCommand,
	opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.Interaction {

	return &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "testguild",
		Data: discordgo.ApplicationCommandInteractionData{
			Name: string(PinochleCmd),
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    string(sub),
					Type:    discordgo.ApplicationCommandOptionSubCommand,
					Options: opts,
				},
			},
		},
	}
}

func strOpt(name, val string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: val,
	}
}

func intOpt(name string, val int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(val),
	}
}

func TestPnHelpCmdHandler(t *testing.T) {
	ctx := context.Background()

	resp := pnHelpCmdHandler(ctx, fakeSubCmdInter(PnHelpCmd))
	if resp == nil {
		t.Fatal("Expected non-nil response")
	}
	if resp.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("Expected response type %v, got %v",
			discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	}
	if resp.Data == nil || resp.Data.Content == "" {
		t.Fatal("Expected non-empty response content")
	}
	if !strings.Contains(resp.Data.Content, "newgame") {
		t.Errorf("Expected help text to mention newgame, got %q",
			resp.Data.Content)
	}
}

func TestPnAboutCmdHandler(t *testing.T) {
	ctx := context.Background()

	resp := pnAboutCmdHandler(ctx, fakeSubCmdInter(PnAboutCmd))
	if resp == nil || resp.Data == nil {
		t.Fatal("Expected non-nil response with data")
	}
	if !strings.Contains(resp.Data.Content, "scorebot") {
		t.Errorf("Expected about text to mention scorebot, got %q",
			resp.Data.Content)
	}
}

func TestPnGameLifecycle(t *testing.T) {
	useTestBackend(t)
	ctx := context.Background()

	// Roster first: a 2-handed game needs 2 players
	for _, name := range []string{"Alice", "Bob"} {
		resp := pnAddPlayerCmdHandler(ctx,
			fakeSubCmdInter(PnAddPlayerCmd, strOpt("name", name)))
		if resp == nil || resp.Data == nil {
			t.Fatal("Expected non-nil response with data")
		}
		if !strings.Contains(resp.Data.Content, name) {
			t.Fatalf("Expected addplayer confirmation to mention %v, got %q",
				name, resp.Data.Content)
		}
	}

	resp := pnPlayersCmdHandler(ctx, fakeSubCmdInter(PnPlayersCmd))
	if !strings.Contains(resp.Data.Content, "Alice") ||
		!strings.Contains(resp.Data.Content, "Bob") {
		t.Errorf("Expected roster to list Alice and Bob, got %q",
			resp.Data.Content)
	}

	resp = pnNewGameCmdHandler(ctx, fakeSubCmdInter(PnNewGameCmd,
		strOpt("players", "Alice, Bob"), intOpt("target", 1500)))
	if !strings.Contains(resp.Data.Content, "Started") {
		t.Fatalf("Expected newgame confirmation, got %q", resp.Data.Content)
	}

	// /pinochle round Alice 250 hearts 120,90 150,100
	resp = pnRoundCmdHandler(ctx, fakeSubCmdInter(PnRoundCmd,
		strOpt("bidder", "Alice"),
		intOpt("bid", 250),
		strOpt("trump", "hearts"),
		strOpt("meld", "120,90"),
		strOpt("tricks", "150,100")))
	if !strings.Contains(resp.Data.Content, "Round recorded") {
		t.Fatalf("Expected round confirmation, got %q", resp.Data.Content)
	}
	if !strings.Contains(resp.Data.Content, "270") {
		t.Errorf("Expected scoreboard to show Alice at 270, got %q",
			resp.Data.Content)
	}

	resp = pnScoreCmdHandler(ctx, fakeSubCmdInter(PnScoreCmd))
	if !strings.Contains(resp.Data.Content, "Playing to 1500") {
		t.Errorf("Expected scoreboard target line, got %q", resp.Data.Content)
	}

	resp = pnHistoryCmdHandler(ctx, fakeSubCmdInter(PnHistoryCmd))
	if !strings.Contains(resp.Data.Content, "Round 1") {
		t.Errorf("Expected history to show round 1, got %q", resp.Data.Content)
	}

	resp = pnUndoCmdHandler(ctx, fakeSubCmdInter(PnUndoCmd))
	if !strings.Contains(resp.Data.Content, "Removed") {
		t.Fatalf("Expected undo confirmation, got %q", resp.Data.Content)
	}

	resp = pnQuitCmdHandler(ctx, fakeSubCmdInter(PnQuitCmd))
	if !strings.Contains(resp.Data.Content, "Saved game") {
		t.Fatalf("Expected quit confirmation, got %q", resp.Data.Content)
	}

	resp = pnSavedCmdHandler(ctx, fakeSubCmdInter(PnSavedCmd))
	if !strings.Contains(resp.Data.Content, "GameID") {
		t.Fatalf("Expected saved list with a GameID, got %q", resp.Data.Content)
	}
	// pull the game id back out of the saved listing
	_, after, found := strings.Cut(resp.Data.Content, "GameID:")
	if !found {
		t.Fatalf("Expected GameID marker in %q", resp.Data.Content)
	}
	gameId, _, _ := strings.Cut(after, ")")

	resp = pnResumeCmdHandler(ctx, fakeSubCmdInter(PnResumeCmd,
		strOpt("gameid", gameId)))
	if !strings.Contains(resp.Data.Content, "Resumed") {
		t.Fatalf("Expected resume confirmation, got %q", resp.Data.Content)
	}
}

func TestPnRoundCmdWarnings(t *testing.T) {
	useTestBackend(t)
	ctx := context.Background()

	for _, name := range []string{"Carol", "Dave"} {
		pnAddPlayerCmdHandler(ctx,
			fakeSubCmdInter(PnAddPlayerCmd, strOpt("name", name)))
	}
	pnNewGameCmdHandler(ctx, fakeSubCmdInter(PnNewGameCmd,
		strOpt("players", "Carol,Dave")))

	// trick points sum to 240, not 250; round still records
	resp := pnRoundCmdHandler(ctx, fakeSubCmdInter(PnRoundCmd,
		strOpt("bidder", "Carol"),
		intOpt("bid", 300),
		strOpt("trump", "spades"),
		strOpt("meld", "100,80"),
		strOpt("tricks", "140,100")))
	if !strings.Contains(resp.Data.Content, "Round recorded") {
		t.Fatalf("Expected round to record despite warning, got %q",
			resp.Data.Content)
	}
	if !strings.Contains(resp.Data.Content, "Note:") {
		t.Errorf("Expected a plausibility note, got %q", resp.Data.Content)
	}
}

func TestPnRoundCmdNoActiveGame(t *testing.T) {
	useTestBackend(t)
	ctx := context.Background()

	resp := pnRoundCmdHandler(ctx, fakeSubCmdInter(PnRoundCmd,
		strOpt("bidder", "Nobody"),
		intOpt("bid", 250),
		strOpt("trump", "hearts"),
		strOpt("meld", "0,0"),
		strOpt("tricks", "0,0")))
	if !strings.Contains(resp.Data.Content, "No game is in progress") {
		t.Errorf("Expected no-game error, got %q", resp.Data.Content)
	}
}

func TestPnNewGameCmdUnknownPlayer(t *testing.T) {
	useTestBackend(t)
	ctx := context.Background()

	resp := pnNewGameCmdHandler(ctx, fakeSubCmdInter(PnNewGameCmd,
		strOpt("players", "Ghost,Specter")))
	if !strings.Contains(resp.Data.Content, "No player named") {
		t.Errorf("Expected unknown-player error, got %q", resp.Data.Content)
	}
}

func TestTruncateContent(t *testing.T) {
	short := "hello"
	if got := truncateContent(short); got != short {
		t.Errorf("Expected %q unchanged, got %q", short, got)
	}

	long := strings.Repeat("x", 4000)
	got := truncateContent(long)
	if len(got) > 2000 {
		t.Errorf("Expected truncated content at most 2000 chars, got %v",
			len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("Expected truncated content to end with ellipsis")
	}
}
