package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

func TestLoadRules_Default(t *testing.T) {
	rules, err := loadRules("")
	if err != nil {
		t.Fatalf("loadRules(\"\") returned error: %v", err)
	}
	if rules.Name != "classic" {
		t.Errorf("Expected default rules name 'classic', got %q", rules.Name)
	}
}

func TestLoadRules_ValidFile(t *testing.T) {
	validRules := `{
		"name": "Test Profile",
		"min_players": 2,
		"max_players": 4,
		"starting_credits": 10000,
		"pass_start_bonus": 100,
		"battle_winner_reward": 200,
		"battle_loser_penalty": 100,
		"flavor_event_chance": 0.1
	}`

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test.json")
	if err := os.WriteFile(path, []byte(validRules), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	rules, err := loadRules(path)
	if err != nil {
		t.Fatalf("loadRules returned error: %v", err)
	}
	if rules.Name != "Test Profile" {
		t.Errorf("Expected name 'Test Profile', got %q", rules.Name)
	}
	if rules.StartingCredits != 10000 {
		t.Errorf("Expected starting credits 10000, got %d", rules.StartingCredits)
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := loadRules("/non/existent/rules.json"); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestLoadRules_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "test", invalid}`), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	if _, err := loadRules(path); err == nil {
		t.Error("Expected error for invalid JSON, got nil")
	}
}

func TestLoadRules_InvalidProfile(t *testing.T) {
	// min_players below 2 fails validation.
	invalidRules := `{
		"name": "Broken",
		"min_players": 1,
		"max_players": 4,
		"starting_credits": 10000
	}`

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.json")
	if err := os.WriteFile(path, []byte(invalidRules), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	if _, err := loadRules(path); err == nil {
		t.Error("Expected error for invalid profile, got nil")
	}
}

func TestPlayMatch(t *testing.T) {
	rules := engine.DefaultRules()
	rules.FlavorEventChance = 0

	stats := &batchStats{
		winsByMission: make(map[int]int),
		winsByReason:  make(map[string]int),
	}

	if err := playMatch(rules, 2, "medium", 42, stats); err != nil {
		t.Fatalf("playMatch returned error: %v", err)
	}

	if stats.played != 1 {
		t.Errorf("Expected 1 played match, got %d", stats.played)
	}
	if stats.totalRolls == 0 {
		t.Error("Expected at least one roll to be recorded")
	}

	// A decided match records exactly one win; a stalled one records none.
	wins := 0
	for _, n := range stats.winsByReason {
		wins += n
	}
	if stats.stalled == 0 && wins != 1 {
		t.Errorf("Expected exactly 1 recorded win, got %d", wins)
	}
	if stats.stalled == 1 && wins != 0 {
		t.Errorf("Stalled match should record no wins, got %d", wins)
	}
}

func TestPlayMatch_Deterministic(t *testing.T) {
	rules := engine.DefaultRules()

	run := func() *batchStats {
		stats := &batchStats{
			winsByMission: make(map[int]int),
			winsByReason:  make(map[string]int),
		}
		if err := playMatch(rules, 3, "hard", 7, stats); err != nil {
			t.Fatalf("playMatch returned error: %v", err)
		}
		return stats
	}

	a := run()
	b := run()

	if a.totalRolls != b.totalRolls {
		t.Errorf("Same seed produced different roll counts: %d vs %d", a.totalRolls, b.totalRolls)
	}
	if a.stalled != b.stalled {
		t.Errorf("Same seed produced different stall outcomes: %d vs %d", a.stalled, b.stalled)
	}
}

func TestPrintReport_NoPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("printReport panicked: %v", r)
		}
	}()

	// Empty batch.
	printReport(&batchStats{
		winsByMission: make(map[int]int),
		winsByReason:  make(map[string]int),
	})

	// Mixed batch with a stall and an unknown mission ID.
	printReport(&batchStats{
		played:        3,
		stalled:       1,
		totalRolls:    900,
		eliminations:  2,
		winsByMission: map[int]int{1: 1, 99: 1},
		winsByReason:  map[string]int{"mission_complete": 1, "attrition": 1},
	})
}
