/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import "fmt"

const (
	// ExpectedTrickTotal is the fixed number of trick points available in a
	// standard Pinochle deal (240 counters + 10 for last trick).
	ExpectedTrickTotal = 250

	// MeldSanityMax is a soft ceiling on a single seat's declared meld.
	// Legitimate hands above it exist (double runs, many aces) but are rare
	// enough to warrant confirmation.
	MeldSanityMax = 1500
)

// Warning is an advisory plausibility finding on a round's inputs. Warnings
// never block submission; callers may prompt for confirmation and submit
// the round unchanged.
type Warning struct {
	Seat    int    // -1 when the warning applies to the whole round
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// CheckRound inspects a round's raw inputs for implausible values. It is a
// soft validation layer and not part of the scoring contract.
func CheckRound(in RoundInput) []Warning {
	var warnings []Warning

	trickTotal := 0
	for _, t := range in.Tricks {
		trickTotal += t
	}
	if trickTotal != ExpectedTrickTotal {
		warnings = append(warnings, Warning{
			Seat: -1,
			Message: fmt.Sprintf("trick points total %v; expected %v",
				trickTotal, ExpectedTrickTotal),
		})
	}

	for seat, t := range in.Tricks {
		if t > ExpectedTrickTotal {
			warnings = append(warnings, Warning{
				Seat: seat,
				Message: fmt.Sprintf("seat %v has %v trick points; maximum possible is %v",
					seat, t, ExpectedTrickTotal),
			})
		}
	}
	for seat, m := range in.Meld {
		if m > MeldSanityMax {
			warnings = append(warnings, Warning{
				Seat: seat,
				Message: fmt.Sprintf("seat %v has unusually high meld %v (above %v)",
					seat, m, MeldSanityMax),
			})
		}
	}

	return warnings
}
