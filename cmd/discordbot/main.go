/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/bwmarrin/discordgo"
)

// credentials come from the environment rather than the repo
const (
	TokenEnvVar  = "PINOCHLE_BOT_TOKEN"
	PubKeyEnvVar = "PINOCHLE_BOT_PUBKEY"
	AppIdEnvVar  = "PINOCHLE_BOT_APPID"

	// set after the first successful registration; when non-empty the
	// command is updated in place instead of re-created
	PinochleCmdId = ""
)

var (
	botPubKey ed25519.PublicKey
	botAppId  string
	client    *discordgo.Session
)

type TopLevelCommand string

const (
	PinochleCmd TopLevelCommand = "pinochle"
)

type CmdHandler func(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse

var topLevelCmdHdlrs = map[TopLevelCommand]CmdHandler{
	PinochleCmd: pinochleCmdHandler,
}

func interactionHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !discordgo.VerifyInteraction(r, botPubKey) {
		log.Printf("discordbot.int: failed to verify")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("discordbot.int: failed to read request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var inter discordgo.Interaction
	if err := inter.UnmarshalJSON(body); err != nil {
		log.Printf("discordbot.int: failed to unmarshal interaction: err:%v body:%v",
			err, body)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	resp := &discordgo.InteractionResponse{}
	if inter.Type == discordgo.InteractionPing {
		resp.Type = discordgo.InteractionResponsePong
	} else if inter.Type == discordgo.InteractionApplicationCommand {
		hdlr, ok :=
			topLevelCmdHdlrs[TopLevelCommand(inter.ApplicationCommandData().Name)]
		if !ok {
			resp.Type = discordgo.InteractionResponseChannelMessageWithSource
			resp.Data = &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("unknown command '%v'",
					inter.ApplicationCommandData().Name),
				Flags: discordgo.MessageFlagsEphemeral,
			}
		} else {
			resp = hdlr(ctx, &inter)
		}
	} else {
		log.Printf("discordbot.int: unimplemented interaction type %v: inter:%v",
			inter.Type, inter)
		w.WriteHeader(http.StatusNotImplemented)
		return
	}

	rawResp, err := json.Marshal(resp)
	if err != nil {
		log.Printf("discordbot.int: failed to marshal resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_, err = w.Write(rawResp)
	if err != nil {
		log.Printf("discordbot.int: failed to write resp: err:%v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func init() {
	log.SetFlags(log.Flags() &^ (log.Ldate | log.Ltime))
}

// initCredentials reads the bot's Discord credentials from the environment.
func initCredentials() error {
	pubKeyText := os.Getenv(PubKeyEnvVar)
	if pubKeyText == "" {
		return fmt.Errorf("%v is not set", PubKeyEnvVar)
	}
	pubKeyBytes, err := hex.DecodeString(pubKeyText)
	if err != nil {
		return fmt.Errorf("failed to parse public key: %w", err)
	}
	botPubKey = ed25519.PublicKey(pubKeyBytes)

	botAppId = os.Getenv(AppIdEnvVar)
	if botAppId == "" {
		return fmt.Errorf("%v is not set", AppIdEnvVar)
	}

	token := os.Getenv(TokenEnvVar)
	if token == "" {
		return fmt.Errorf("%v is not set", TokenEnvVar)
	}
	client, err = discordgo.New("Bot " + token)
	if err != nil {
		return fmt.Errorf("failed to initialize discord client: %w", err)
	}

	return nil
}

func suitChoices() []*discordgo.ApplicationCommandOptionChoice {
	return []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Hearts ♥", Value: "hearts"},
		{Name: "Diamonds ♦", Value: "diamonds"},
		{Name: "Clubs ♣", Value: "clubs"},
		{Name: "Spades ♠", Value: "spades"},
	}
}

func broadcastOption() *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionBoolean,
		Name:        "broadcast",
		Description: "Share with the rest of the channel instead of only to you (default is false)",
		Required:    false,
	}
}

func registerSlashCommands() {
	pinochleCmd := &discordgo.ApplicationCommand{
		Name:        string(PinochleCmd),
		Description: "Pinochle scorekeeping; try /pinochle help to start",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnHelpCmd),
				Description: "Show usage for pinochle",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnAboutCmd),
				Description: "Show information about pinochle-scorebot",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnAddPlayerCmd),
				Description: "Add a player to the roster",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Name of the player to add",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnPlayersCmd),
				Description: "Show the player roster with per-player stats",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnNewGameCmd),
				Description: "Start a new game",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "players",
						Description: "Comma separated player names in seat order",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "mode",
						Description: "Game variant (default is inferred from the player count)",
						Required:    false,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "2-handed", Value: "2-handed"},
							{Name: "3-handed", Value: "3-handed"},
							{Name: "4-handed", Value: "4-handed"},
						},
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "target",
						Description: "Target score to play to (default is 1500)",
						Required:    false,
					},
					{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "partnership",
						Description: "Score seats 0&2 and 1&3 as partnerships (4-handed only; default is true)",
						Required:    false,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnRoundCmd),
				Description: "Record a completed round",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "bidder",
						Description: "Name of the player who won the bid",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "bid",
						Description: "Winning bid amount",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "trump",
						Description: "Trump suit for the round",
						Required:    true,
						Choices:     suitChoices(),
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "meld",
						Description: "Comma separated meld points in seat order",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "tricks",
						Description: "Comma separated trick points in seat order",
						Required:    true,
					},
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnUndoCmd),
				Description: "Remove the most recently recorded round",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnScoreCmd),
				Description: "Show the current game's scoreboard",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnHistoryCmd),
				Description: "Show the current game's round-by-round history",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnQuitCmd),
				Description: "Quit the current game, saving it to history",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnSavedCmd),
				Description: "List saved games",
				Options: []*discordgo.ApplicationCommandOption{
					broadcastOption(),
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnResumeCmd),
				Description: "Resume a saved game",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "gameid",
						Description: "Game id of the saved game (as listed by saved)",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        string(PnRulesCmd),
				Description: "Look up the Pinochle rules reference",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "section",
						Description: "Rules section to display (omit to list sections)",
						Required:    false,
					},
					broadcastOption(),
				},
			},
		},
	}

	if PinochleCmdId == "" {
		cmd, err := client.ApplicationCommandCreate(botAppId, "", pinochleCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to register %v: %v",
				pinochleCmd.Name, err)
			return
		}

		log.Printf("discordbot.reg: registered %v(cmdID:%v)", cmd.Name, cmd.ID)
	} else {
		cmd, err := client.ApplicationCommandEdit(botAppId, "", PinochleCmdId,
			pinochleCmd)
		if err != nil {
			log.Printf("discordbot.reg: failed to update %v: %v",
				pinochleCmd.Name, err)
			return
		}

		log.Printf("discordbot.reg: updated %v(cmdID:%v)", cmd.Name, cmd.ID)
	}
}

func main() {
	if err := initCredentials(); err != nil {
		log.Fatalf("discordbot.main: %v", err)
	}

	go registerSlashCommands()

	if err := initStateBackend(context.Background()); err != nil {
		log.Fatalf("discordbot.main: failed to init state backend: %v", err)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	log.Printf("discordbot.main: starting server on %v:8080", hostname)

	http.HandleFunc("/DiscordBot/Interaction", interactionHandler)
	if err := http.ListenAndServe(":8080", nil); err != nil {
		log.Fatalf("discordbot.main: Serve failed: %v", err)
	}

	log.Printf("discordbot.main: exiting")
}
