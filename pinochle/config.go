/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import "fmt"

// MinTargetScore is the lowest target score a game may be configured with.
const MinTargetScore = 100

// GameConfig captures the fixed configuration of a game session.
type GameConfig struct {
	Mode        GameMode `json:"mode"`
	TargetScore int      `json:"targetScore"`
	// SeatPlayers maps seat index to player id; its length must equal the
	// seat count implied by Mode.
	SeatPlayers []string `json:"seatPlayers"`
	// PartnershipMode folds seats 0&2 and 1&3 into two scoring entries.
	// Only meaningful in 4-handed games.
	PartnershipMode bool `json:"partnershipMode"`
}

// Validate reports whether the config is complete enough to start a game.
func (c GameConfig) Validate() error {
	seats := c.Mode.SeatCount()
	if seats == 0 {
		return fmt.Errorf("unknown game mode %q", c.Mode)
	}
	if len(c.SeatPlayers) == 0 {
		return fmt.Errorf("no players assigned to seats")
	}
	if len(c.SeatPlayers) != seats {
		return fmt.Errorf("%v requires %v players; have %v", c.Mode, seats,
			len(c.SeatPlayers))
	}
	for idx, pid := range c.SeatPlayers {
		if pid == "" {
			return fmt.Errorf("seat %v has no player assigned", idx)
		}
	}
	if c.TargetScore < MinTargetScore {
		return fmt.Errorf("target score %v is below the minimum of %v",
			c.TargetScore, MinTargetScore)
	}
	if c.PartnershipMode && c.Mode != FourHanded {
		return fmt.Errorf("partnership scoring requires a 4-handed game")
	}
	return nil
}

// EntryCount returns the number of scoring entries: two partnerships in
// partnership mode, otherwise one per seat.
func (c GameConfig) EntryCount() int {
	if c.PartnershipMode {
		return 2
	}
	return c.Mode.SeatCount()
}
