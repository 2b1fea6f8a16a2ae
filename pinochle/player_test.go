/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package pinochle

import "testing"

func TestNewPlayer(t *testing.T) {
	p, err := NewPlayer("  Alice  ")
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	if p.Name != "Alice" {
		t.Errorf("Name = %q; want %q", p.Name, "Alice")
	}
	if p.ID == "" {
		t.Errorf("player id not generated")
	}
	if p.Stats != (PlayerStats{}) {
		t.Errorf("Stats = %+v; want zeroed", p.Stats)
	}

	if _, err := NewPlayer("   "); err == nil {
		t.Errorf("NewPlayer accepted a blank name")
	}
}

func TestRecordResult(t *testing.T) {
	p, err := NewPlayer("Bob")
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	p.RecordResult(true, 1250)
	p.RecordResult(false, 1500)
	p.RecordResult(false, 900)

	if p.Stats.GamesPlayed != 3 {
		t.Errorf("GamesPlayed = %v; want 3", p.Stats.GamesPlayed)
	}
	if p.Stats.GamesWon != 1 {
		t.Errorf("GamesWon = %v; want 1", p.Stats.GamesWon)
	}
	// high score counts losing totals too
	if p.Stats.HighScore != 1500 {
		t.Errorf("HighScore = %v; want 1500", p.Stats.HighScore)
	}
}
