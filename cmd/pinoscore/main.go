/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mikeb26/pinochle-scorebot/internal"
	"github.com/mikeb26/pinochle-scorebot/pinochle"
	"github.com/mikeb26/pinochle-scorebot/rules"
	"github.com/mikeb26/pinochle-scorebot/store"
)

//go:embed help.txt
var helpText string

// cmdHandler defines the signature for command handler functions.
type cmdHandler func(ctx context.Context, args []string)

// commands maps command names to their respective handler functions.
var commands = map[string]cmdHandler{
	"help":      handleHelp,
	"addplayer": handleAddPlayer,
	"players":   handlePlayers,
	"newgame":   handleNewGame,
	"round":     handleRound,
	"undo":      handleUndo,
	"score":     handleScore,
	"history":   handleHistory,
	"quit":      handleQuit,
	"saved":     handleSaved,
	"resume":    handleResume,
	"rules":     handleRules,
}

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if handler, ok := commands[cmd]; ok {
		handler(ctx, os.Args[2:])
	} else {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("%v", helpText)
}

func handleHelp(ctx context.Context, args []string) {
	usage()
}

// mustLoadStore opens the state blob under the user's config directory.
func mustLoadStore(ctx context.Context) *store.Store {
	baseDir, err := store.DefaultBaseDir()
	if err != nil {
		log.Fatalf("Error locating config directory: %v", err)
	}
	backend, err := store.NewFileBackend(baseDir)
	if err != nil {
		log.Fatalf("Error opening %v: %v", baseDir, err)
	}
	s := store.New(backend, internal.StateKeyDefault)
	if err := s.Load(ctx); err != nil {
		log.Fatalf("Error loading state: %v", err)
	}
	return s
}

func mustSave(ctx context.Context, s *store.Store) {
	if err := s.Save(ctx); err != nil {
		log.Fatalf("Error saving state: %v", err)
	}
}

func handleAddPlayer(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("addplayer", flag.ExitOnError)
	name := fs.String("name", "", "Name of the player to add")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *name == "" && fs.NArg() > 0 {
		*name = fs.Arg(0)
	}
	if *name == "" {
		fmt.Fprintln(os.Stderr, "Please provide a player name.")
		fs.Usage()
		os.Exit(1)
	}

	s := mustLoadStore(ctx)
	p, err := s.AddPlayer(*name)
	if err != nil {
		log.Fatalf("Error adding player: %v", err)
	}
	mustSave(ctx, s)

	fmt.Printf("Added %v to the roster.\n", p.Name)
}

func handlePlayers(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	fmt.Print(pinochle.BuildRosterOutput(s.Players()))
}

func handleNewGame(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("newgame", flag.ExitOnError)
	players := fs.String("players", "",
		"Comma separated player names in seat order")
	target := fs.Int("target", 1500, "Target score to play to")
	partnership := fs.Bool("partnership", true,
		"Score seats 0&2 and 1&3 as partnerships (4-handed only)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *players == "" {
		fmt.Fprintln(os.Stderr, "Please provide --players.")
		fs.Usage()
		os.Exit(1)
	}

	s := mustLoadStore(ctx)

	var seatPlayers []string
	for _, name := range strings.Split(*players, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p, found := s.FindPlayer(name)
		if !found {
			log.Fatalf("No player named %q; run '%v addplayer' first.", name,
				os.Args[0])
		}
		seatPlayers = append(seatPlayers, p.ID)
	}

	config := pinochle.GameConfig{
		TargetScore: *target,
		SeatPlayers: seatPlayers,
	}
	switch len(seatPlayers) {
	case 2:
		config.Mode = pinochle.TwoHanded
	case 3:
		config.Mode = pinochle.ThreeHanded
	case 4:
		config.Mode = pinochle.FourHanded
		config.PartnershipMode = *partnership
	}

	game, err := s.StartGame(config)
	if err != nil {
		log.Fatalf("Error starting game: %v", err)
	}
	mustSave(ctx, s)

	fmt.Printf("Started a %v game to %v. Record rounds with '%v round'.\n",
		game.Config.Mode, game.Config.TargetScore, os.Args[0])
}

func handleRound(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	game := s.ActiveGame()
	if game == nil {
		log.Fatalf("No game is in progress; run '%v newgame' first.", os.Args[0])
	}
	if game.Status == pinochle.StatusFinished {
		log.Fatalf("The current game is already over; run '%v quit' to file it.",
			os.Args[0])
	}

	in, ok := runRoundWizard(s, game)
	if !ok {
		fmt.Println("Round discarded.")
		return
	}

	game, err := s.AddRound(in)
	if err != nil {
		log.Fatalf("Error recording round: %v", err)
	}
	mustSave(ctx, s)

	round := game.Rounds[len(game.Rounds)-1]
	if round.WentSet {
		fmt.Printf("Round recorded; the bidding side went set for %v.\n",
			round.BidAmount)
	} else {
		fmt.Println("Round recorded; the bid was made.")
	}
	fmt.Print(pinochle.BuildScoreboardOutput(game, s.PlayerNames()))
}

func handleUndo(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	if err := s.DeleteLastRound(); err != nil {
		log.Fatalf("Error undoing round: %v", err)
	}
	mustSave(ctx, s)

	fmt.Println("Removed the last round.")
	fmt.Print(pinochle.BuildScoreboardOutput(s.ActiveGame(), s.PlayerNames()))
}

func handleScore(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	game := s.ActiveGame()
	if game == nil {
		log.Fatalf("No game is in progress; run '%v newgame' first.", os.Args[0])
	}
	fmt.Print(pinochle.BuildScoreboardOutput(game, s.PlayerNames()))
}

func handleHistory(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	since := fs.String("since", "",
		"Only list saved games created on or after this date")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	s := mustLoadStore(ctx)

	if *since == "" {
		// without a filter show the active game's round history
		game := s.ActiveGame()
		if game == nil {
			log.Fatalf("No game is in progress; run '%v saved' to list finished games.",
				os.Args[0])
		}
		fmt.Print(pinochle.BuildHistoryOutput(game, s.PlayerNames()))
		return
	}

	cutoff, err := internal.ParseDateOrZero(*since)
	if err != nil {
		log.Fatalf("Error parsing --since date: %v", err)
	}
	names := s.PlayerNames()
	shown := 0
	for _, g := range s.SavedGames() {
		if g.CreatedAt.Before(cutoff) {
			continue
		}
		printSavedGame(g, names)
		shown++
	}
	if shown == 0 {
		fmt.Printf("No saved games on or after %v.\n",
			internal.FormatDateOrDash(cutoff))
	}
}

func handleQuit(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	game := s.ActiveGame()
	if game == nil {
		fmt.Println("No game is in progress.")
		return
	}

	s.QuitActiveGame()
	mustSave(ctx, s)

	fmt.Printf("Saved game %v to history; run '%v resume --gameid %v' to pick it back up.\n",
		game.ID, os.Args[0], game.ID)
}

func printSavedGame(g *pinochle.Game, names map[string]string) {
	var seatNames []string
	for _, pid := range g.Config.SeatPlayers {
		if name, ok := names[pid]; ok {
			seatNames = append(seatNames, name)
		} else {
			seatNames = append(seatNames, pid)
		}
	}
	fmt.Printf("%v  %v  %v  %v (GameID:%v)\n",
		internal.FormatDateOrDash(g.CreatedAt), g.Config.Mode, g.Status,
		strings.Join(seatNames, ", "), g.ID)
}

func handleSaved(ctx context.Context, args []string) {
	s := mustLoadStore(ctx)
	saved := s.SavedGames()
	if len(saved) == 0 {
		fmt.Println("No saved games.")
		return
	}
	names := s.PlayerNames()
	for _, g := range saved {
		printSavedGame(g, names)
	}
	fmt.Printf("\nRun '%v resume --gameid <GameID>' to pick a game back up\n",
		os.Args[0])
}

func handleResume(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("resume", flag.ExitOnError)
	gameId := fs.String("gameid", "", "Game id of the saved game to resume")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *gameId == "" && fs.NArg() > 0 {
		*gameId = fs.Arg(0)
	}
	if *gameId == "" {
		fmt.Fprintln(os.Stderr, "Please provide --gameid.")
		fs.Usage()
		os.Exit(1)
	}

	s := mustLoadStore(ctx)
	if err := s.ResumeGame(*gameId); err != nil {
		log.Fatalf("Error resuming game: %v", err)
	}
	mustSave(ctx, s)

	fmt.Println("Resumed.")
	fmt.Print(pinochle.BuildScoreboardOutput(s.ActiveGame(), s.PlayerNames()))
}

func handleRules(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rules", flag.ExitOnError)
	section := fs.String("section", "",
		"Rules section to display (omit to list sections)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}
	if *section == "" && fs.NArg() > 0 {
		*section = strings.Join(fs.Args(), " ")
	}

	doc, err := rules.Fetch(ctx)
	if err != nil {
		log.Fatalf("Error fetching rules: %v", err)
	}
	fmt.Print(rules.BuildRulesOutput(doc, *section))
}
