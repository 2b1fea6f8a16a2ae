/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/pinochle-scorebot/internal"
	"github.com/mikeb26/pinochle-scorebot/pinochle"
	"github.com/mikeb26/pinochle-scorebot/rules"
	"github.com/mikeb26/pinochle-scorebot/store"
)

type PnSubCommand string

const (
	PnAboutCmd     PnSubCommand = "about"
	PnHelpCmd      PnSubCommand = "help"
	PnAddPlayerCmd PnSubCommand = "addplayer"
	PnPlayersCmd   PnSubCommand = "players"
	PnNewGameCmd   PnSubCommand = "newgame"
	PnRoundCmd     PnSubCommand = "round"
	PnUndoCmd      PnSubCommand = "undo"
	PnScoreCmd     PnSubCommand = "score"
	PnHistoryCmd   PnSubCommand = "history"
	PnQuitCmd      PnSubCommand = "quit"
	PnSavedCmd     PnSubCommand = "saved"
	PnResumeCmd    PnSubCommand = "resume"
	PnRulesCmd     PnSubCommand = "rules"
)

var pnSubCmdHdlrs = map[PnSubCommand]CmdHandler{
	PnAboutCmd:     pnAboutCmdHandler,
	PnHelpCmd:      pnHelpCmdHandler,
	PnAddPlayerCmd: pnAddPlayerCmdHandler,
	PnPlayersCmd:   pnPlayersCmdHandler,
	PnNewGameCmd:   pnNewGameCmdHandler,
	PnRoundCmd:     pnRoundCmdHandler,
	PnUndoCmd:      pnUndoCmdHandler,
	PnScoreCmd:     pnScoreCmdHandler,
	PnHistoryCmd:   pnHistoryCmdHandler,
	PnQuitCmd:      pnQuitCmdHandler,
	PnSavedCmd:     pnSavedCmdHandler,
	PnResumeCmd:    pnResumeCmdHandler,
	PnRulesCmd:     pnRulesCmdHandler,
}

func pinochleCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := pnHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := pnSubCmdHdlrs[PnSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

// newEphemeralResp returns the response scaffold every handler starts from.
func newEphemeralResp() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}

// cmdOpts flattens a subcommand's options into a name→option map.
func cmdOpts(
	inter *discordgo.Interaction) map[string]*discordgo.ApplicationCommandInteractionDataOption {

	opts := make(map[string]*discordgo.ApplicationCommandInteractionDataOption)
	data := inter.ApplicationCommandData()
	if len(data.Options) == 0 {
		return opts
	}
	for _, opt := range data.Options[0].Options {
		opts[opt.Name] = opt
	}
	return opts
}

//go:embed about.txt
var aboutText string

func pnAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func pnHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	resp.Data.Content = truncateContent(helpText)

	return resp
}

func pnAddPlayerCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	opts := cmdOpts(inter)
	nameOpt, ok := opts["name"]
	if !ok || strings.TrimSpace(nameOpt.StringValue()) == "" {
		resp.Data.Content = "Please provide a player name."
		log.Printf("discordbot.addplayer: %v", resp.Data.Content)
		return resp
	}

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.addplayer: %v", resp.Data.Content)
		return resp
	}

	p, err := s.AddPlayer(nameOpt.StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot add player: %v", err)
		log.Printf("discordbot.addplayer: %v", resp.Data.Content)
		return resp
	}
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.addplayer: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Added %v to the roster.", p.Name)

	return resp
}

func pnPlayersCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.players: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(pinochle.BuildRosterOutput(s.Players())))

	if opt, ok := cmdOpts(inter)["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

func pnNewGameCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	opts := cmdOpts(inter)

	playersOpt, ok := opts["players"]
	if !ok {
		resp.Data.Content = "Please provide a comma separated player list."
		log.Printf("discordbot.newgame: %v", resp.Data.Content)
		return resp
	}

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.newgame: %v", resp.Data.Content)
		return resp
	}

	var seatPlayers []string
	for _, name := range strings.Split(playersOpt.StringValue(), ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, found := s.FindPlayer(name)
		if !found {
			resp.Data.Content = fmt.Sprintf("No player named %q; add them with /pinochle addplayer first.",
				name)
			log.Printf("discordbot.newgame: %v", resp.Data.Content)
			return resp
		}
		seatPlayers = append(seatPlayers, p.ID)
	}

	config := pinochle.GameConfig{
		TargetScore: 1500, // default
		SeatPlayers: seatPlayers,
	}
	switch len(seatPlayers) {
	case 2:
		config.Mode = pinochle.TwoHanded
	case 3:
		config.Mode = pinochle.ThreeHanded
	case 4:
		config.Mode = pinochle.FourHanded
		config.PartnershipMode = true // default
	}
	if opt, ok := opts["mode"]; ok {
		config.Mode = pinochle.GameMode(opt.StringValue())
	}
	if opt, ok := opts["target"]; ok {
		config.TargetScore = int(opt.IntValue())
	}
	if opt, ok := opts["partnership"]; ok {
		config.PartnershipMode = opt.BoolValue()
	}

	game, err := s.StartGame(config)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot start game: %v", err)
		log.Printf("discordbot.newgame: %v", resp.Data.Content)
		return resp
	}
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.newgame: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Started a %v game to %v. Record rounds with /pinochle round.",
		game.Config.Mode, game.Config.TargetScore)

	return resp
}

// bidderSeatFor resolves a bidder name to their seat in the active game.
func bidderSeatFor(s *store.Store, game *pinochle.Game,
	bidder string) (int, error) {

	p, found := s.FindPlayer(strings.TrimSpace(bidder))
	if !found {
		return 0, fmt.Errorf("no player named %q", bidder)
	}
	for seat, pid := range game.Config.SeatPlayers {
		if pid == p.ID {
			return seat, nil
		}
	}
	return 0, fmt.Errorf("%v is not seated in the current game", p.Name)
}

func pnRoundCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	opts := cmdOpts(inter)

	for _, required := range []string{"bidder", "bid", "trump", "meld", "tricks"} {
		if _, ok := opts[required]; !ok {
			resp.Data.Content = fmt.Sprintf("Please provide the %v option.",
				required)
			log.Printf("discordbot.round: %v", resp.Data.Content)
			return resp
		}
	}

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}
	game := s.ActiveGame()
	if game == nil {
		resp.Data.Content = "No game is in progress; start one with /pinochle newgame."
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}

	bidderSeat, err := bidderSeatFor(s, game, opts["bidder"].StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot record round: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}
	trump, err := pinochle.ParseSuit(opts["trump"].StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot record round: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}
	meld, err := internal.ParseIntList(opts["meld"].StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot parse meld: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}
	tricks, err := internal.ParseIntList(opts["tricks"].StringValue())
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot parse tricks: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}

	in := pinochle.RoundInput{
		BidderSeat: bidderSeat,
		BidAmount:  int(opts["bid"].IntValue()),
		TrumpSuit:  trump,
		Meld:       meld,
		Tricks:     tricks,
	}

	game, err = s.AddRound(in)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot record round: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.round: %v", resp.Data.Content)
		return resp
	}

	var sb strings.Builder
	round := game.Rounds[len(game.Rounds)-1]
	if round.WentSet {
		sb.WriteString(fmt.Sprintf("Round recorded; the bidding side went set for %v.\n",
			round.BidAmount))
	} else {
		sb.WriteString("Round recorded; the bid was made.\n")
	}
	// plausibility findings are advisory; the round is recorded regardless
	for _, w := range pinochle.CheckRound(in) {
		sb.WriteString(fmt.Sprintf("Note: %v. Use /pinochle undo to correct.\n", w))
	}
	sb.WriteString(fmt.Sprintf("```\n%s```",
		pinochle.BuildScoreboardOutput(game, s.PlayerNames())))
	resp.Data.Content = truncateContent(sb.String())

	if opt, ok := opts["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

func pnUndoCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.undo: %v", resp.Data.Content)
		return resp
	}

	if err := s.DeleteLastRound(); err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot undo: %v", err)
		log.Printf("discordbot.undo: %v", resp.Data.Content)
		return resp
	}
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.undo: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Removed the last round.\n```\n%s```",
		truncateContent(pinochle.BuildScoreboardOutput(s.ActiveGame(),
			s.PlayerNames())))

	return resp
}

func pnScoreCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}
	game := s.ActiveGame()
	if game == nil {
		resp.Data.Content = "No game is in progress; start one with /pinochle newgame."
		log.Printf("discordbot.score: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(pinochle.BuildScoreboardOutput(game, s.PlayerNames())))

	if opt, ok := cmdOpts(inter)["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

func pnHistoryCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.history: %v", resp.Data.Content)
		return resp
	}
	game := s.ActiveGame()
	if game == nil {
		resp.Data.Content = "No game is in progress; start one with /pinochle newgame."
		log.Printf("discordbot.history: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(pinochle.BuildHistoryOutput(game, s.PlayerNames())))

	if opt, ok := cmdOpts(inter)["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

func pnQuitCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.quit: %v", resp.Data.Content)
		return resp
	}
	game := s.ActiveGame()
	if game == nil {
		resp.Data.Content = "No game is in progress."
		return resp
	}

	s.QuitActiveGame()
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.quit: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Saved game %v to history; resume it with /pinochle resume.",
		game.ID)

	return resp
}

func pnSavedCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.saved: %v", resp.Data.Content)
		return resp
	}
	saved := s.SavedGames()
	if len(saved) == 0 {
		resp.Data.Content = "No saved games."
		return resp
	}

	names := s.PlayerNames()
	var sb strings.Builder
	for _, g := range saved {
		var seatNames []string
		for _, pid := range g.Config.SeatPlayers {
			if name, ok := names[pid]; ok {
				seatNames = append(seatNames, name)
			} else {
				seatNames = append(seatNames, pid)
			}
		}
		sb.WriteString(fmt.Sprintf("%v  %v  %v  %v (GameID:%v)\n",
			internal.FormatDateOrDash(g.CreatedAt), g.Config.Mode, g.Status,
			strings.Join(seatNames, ", "), g.ID))
	}
	sb.WriteString("\nRun /pinochle resume <GameID> to pick a game back up\n")
	resp.Data.Content = truncateContent(sb.String())

	if opt, ok := cmdOpts(inter)["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

func pnResumeCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	opts := cmdOpts(inter)

	gameIdOpt, ok := opts["gameid"]
	if !ok {
		resp.Data.Content = "Please provide a game ID."
		log.Printf("discordbot.resume: %v", resp.Data.Content)
		return resp
	}

	s, err := loadStore(ctx, inter)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error loading state: %v", err)
		log.Printf("discordbot.resume: %v", resp.Data.Content)
		return resp
	}

	if err := s.ResumeGame(gameIdOpt.StringValue()); err != nil {
		resp.Data.Content = fmt.Sprintf("Cannot resume: %v", err)
		log.Printf("discordbot.resume: %v", resp.Data.Content)
		return resp
	}
	if err := s.Save(ctx); err != nil {
		resp.Data.Content = fmt.Sprintf("Error saving state: %v", err)
		log.Printf("discordbot.resume: %v", resp.Data.Content)
		return resp
	}

	resp.Data.Content = fmt.Sprintf("Resumed.\n```\n%s```",
		truncateContent(pinochle.BuildScoreboardOutput(s.ActiveGame(),
			s.PlayerNames())))

	return resp
}

func pnRulesCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := newEphemeralResp()
	opts := cmdOpts(inter)

	doc, err := rules.Fetch(ctx)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching rules: %v", err)
		log.Printf("discordbot.rules: %v", resp.Data.Content)
		return resp
	}

	section := ""
	if opt, ok := opts["section"]; ok {
		section = opt.StringValue()
	}
	resp.Data.Content = truncateContent(rules.BuildRulesOutput(doc, section))

	if opt, ok := opts["broadcast"]; ok && opt.BoolValue() {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
