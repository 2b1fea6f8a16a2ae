/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import (
	"fmt"
	"sort"
	"strings"
)

// EntryLabel names a scoring entry using the supplied id→name roster
// mapping. Partnership entries join both seat names with " & ". Unknown
// player ids fall back to the raw id.
func (g *Game) EntryLabel(entry int, names map[string]string) string {
	lookup := func(seat int) string {
		if seat < 0 || seat >= len(g.Config.SeatPlayers) {
			return fmt.Sprintf("entry %v", seat)
		}
		pid := g.Config.SeatPlayers[seat]
		if name, ok := names[pid]; ok {
			return name
		}
		return pid
	}
	if !g.Config.PartnershipMode {
		return lookup(entry)
	}
	if entry < 0 || entry+2 >= len(g.Config.SeatPlayers) {
		return fmt.Sprintf("entry %v", entry)
	}
	return lookup(entry) + " & " + lookup(entry+2)
}

// BuildScoreboardOutput formats the game's current totals into an aligned
// text table, highest total first, followed by target and status lines.
func BuildScoreboardOutput(g *Game, names map[string]string) string {
	totals := g.EntryTotals()

	type row struct{ rank, name, score string }
	order := make([]int, len(totals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i]] > totals[order[j]]
	})

	var rows []row
	for rank, entry := range order {
		rows = append(rows, row{
			rank:  fmt.Sprintf("%v.", rank+1),
			name:  g.EntryLabel(entry, names),
			score: fmt.Sprintf("%v", totals[entry]),
		})
	}

	// Compute column widths
	maxP, maxN, maxS := len("Place"), len("Name"), len("Score")
	for _, r := range rows {
		if l := len(r.rank); l > maxP {
			maxP = l
		}
		if l := len(r.name); l > maxN {
			maxN = l
		}
		if l := len(r.score); l > maxS {
			maxS = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scores after %v round(s):\n\n", len(g.Rounds)))
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, "Place", maxN,
		"Name", maxS, "Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxP, r.rank,
			maxN, r.name, maxS, r.score))
	}

	sb.WriteString(fmt.Sprintf("\nPlaying to %v.\n", g.Config.TargetScore))
	if g.Status == StatusFinished {
		sb.WriteString(fmt.Sprintf("Game over: %v wins!\n",
			g.EntryLabel(g.WinnerIndex, names)))
	}

	return sb.String()
}

// BuildRosterOutput formats the player roster with per-player stats,
// ordered by games won then name.
func BuildRosterOutput(players []Player) string {
	if len(players) == 0 {
		return "No players on the roster yet.\n"
	}

	ordered := append([]Player(nil), players...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Stats.GamesWon != ordered[j].Stats.GamesWon {
			return ordered[i].Stats.GamesWon > ordered[j].Stats.GamesWon
		}
		return ordered[i].Name < ordered[j].Name
	})

	type row struct{ name, played, won, high string }
	var rows []row
	for _, p := range ordered {
		rows = append(rows, row{
			name:   p.Name,
			played: fmt.Sprintf("%v", p.Stats.GamesPlayed),
			won:    fmt.Sprintf("%v", p.Stats.GamesWon),
			high:   fmt.Sprintf("%v", p.Stats.HighScore),
		})
	}

	maxN, maxP, maxW, maxH := len("Name"), len("Played"), len("Won"),
		len("High Score")
	for _, r := range rows {
		if l := len(r.name); l > maxN {
			maxN = l
		}
		if l := len(r.played); l > maxP {
			maxP = l
		}
		if l := len(r.won); l > maxW {
			maxW = l
		}
		if l := len(r.high); l > maxH {
			maxH = l
		}
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s\n", maxN, "Name",
		maxP, "Played", maxW, "Won", maxH, "High Score"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s  %-*s\n", maxN, r.name,
			maxP, r.played, maxW, r.won, maxH, r.high))
	}

	return sb.String()
}

// BuildHistoryOutput formats the round-by-round record: bidder, bid, trump,
// each seat's net score, and a set marker on failed bids.
func BuildHistoryOutput(g *Game, names map[string]string) string {
	if len(g.Rounds) == 0 {
		return "No rounds have been scored yet.\n"
	}

	seatName := func(seat int) string {
		pid := g.Config.SeatPlayers[seat]
		if name, ok := names[pid]; ok {
			return name
		}
		return pid
	}

	var sb strings.Builder
	for idx, r := range g.Rounds {
		sb.WriteString(fmt.Sprintf("Round %v: %v bid %v in %v %v",
			idx+1, seatName(r.BidderSeat), r.BidAmount,
			r.TrumpSuit, r.TrumpSuit.Symbol()))
		if r.WentSet {
			sb.WriteString(" (SET)")
		}
		sb.WriteString("\n")
		for seat, net := range r.NetScores {
			sb.WriteString(fmt.Sprintf("  %v: meld %v, tricks %v, net %+d\n",
				seatName(seat), r.Meld[seat], r.Tricks[seat], net))
		}
	}

	return sb.String()
}
