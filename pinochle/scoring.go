/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

// ScoreRound converts one completed round's raw inputs into net per-seat
// scores and a set determination. meld and tricks must each have one entry
// per seat; ScoreRound performs no validation of its own (see
// Game.AddRound) and is a pure function of its inputs.
//
// When the bidding side fails to reach its bid it "goes set": it forfeits
// all meld and trick credit and is penalized the bid amount. In partnership
// play the entire penalty lands in the bidder's seat slot and the partner's
// slot is zeroed, so that a naive per-seat sum still reconstructs the
// correct partnership total. Seat-level history therefore shows the whole
// penalty on the bidder; totals remain correct.
func ScoreRound(mode GameMode, bidderSeat int, bidAmount int, meld []int,
	tricks []int) (netScores []int, wentSet bool) {

	netScores = make([]int, len(meld))
	for i := range meld {
		netScores[i] = meld[i] + tricks[i]
	}

	bidTotal := netScores[bidderSeat]
	partnerSeat := -1
	if mode == FourHanded {
		partnerSeat = (bidderSeat + 2) % 4
		bidTotal += netScores[partnerSeat]
	}

	if bidTotal < bidAmount {
		wentSet = true
		if partnerSeat >= 0 {
			netScores[partnerSeat] = 0
		}
		netScores[bidderSeat] = -bidAmount
	}

	return netScores, wentSet
}
