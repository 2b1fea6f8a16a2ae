/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/mikeb26/pinochle-scorebot/pinochle"
	"github.com/mikeb26/pinochle-scorebot/store"
)

// runRoundWizard walks the user through one round's inputs. It returns
// ok=false when the user abandons the round at the confirmation step.
func runRoundWizard(s *store.Store, game *pinochle.Game) (pinochle.RoundInput, bool) {
	names := s.PlayerNames()
	seatNames := make([]string, game.SeatCount())
	for seat, pid := range game.Config.SeatPlayers {
		if name, ok := names[pid]; ok {
			seatNames[seat] = name
		} else {
			seatNames[seat] = fmt.Sprintf("Seat %v", seat)
		}
	}

	bidderName, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("Who won the bid?").
		WithOptions(seatNames).
		Show()
	bidderSeat := 0
	for seat, name := range seatNames {
		if name == bidderName {
			bidderSeat = seat
			break
		}
	}

	bid := promptInt(fmt.Sprintf("What did %v bid?", bidderName), 250)

	suitNames := []string{"hearts", "diamonds", "clubs", "spades"}
	trumpName, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText("What was trump?").
		WithOptions(suitNames).
		Show()
	trump, err := pinochle.ParseSuit(trumpName)
	if err != nil {
		pterm.Error.Printfln("Invalid suit: %v", err)
		return pinochle.RoundInput{}, false
	}

	meld := make([]int, game.SeatCount())
	tricks := make([]int, game.SeatCount())
	for seat, name := range seatNames {
		meld[seat] = promptInt(fmt.Sprintf("Meld for %v?", name), 0)
	}
	for seat, name := range seatNames {
		tricks[seat] = promptInt(fmt.Sprintf("Trick points for %v?", name), 0)
	}

	in := pinochle.RoundInput{
		BidderSeat: bidderSeat,
		BidAmount:  bid,
		TrumpSuit:  trump,
		Meld:       meld,
		Tricks:     tricks,
	}

	warnings := pinochle.CheckRound(in)
	for _, w := range warnings {
		pterm.Warning.Println(w.Message)
	}
	if len(warnings) > 0 {
		confirm, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Record the round anyway?").
			WithDefaultValue(true).
			Show()
		if !confirm {
			return pinochle.RoundInput{}, false
		}
	}

	return in, true
}

// promptInt asks for a non-negative integer, re-prompting until it gets one.
func promptInt(prompt string, defaultVal int) int {
	for {
		text, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(prompt).
			WithDefaultValue(strconv.Itoa(defaultVal)).
			Show()
		val, err := strconv.Atoi(text)
		if err != nil || val < 0 {
			pterm.Error.Printfln("Please enter a non-negative number, not %q",
				text)
			continue
		}
		return val
	}
}
