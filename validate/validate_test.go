package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validProfileJSON = `{
	"name": "Test Profile",
	"description": "Test rules profile",
	"min_players": 2,
	"max_players": 6,
	"starting_credits": 50000,
	"pass_start_bonus": 150,
	"battle_winner_reward": 200,
	"battle_loser_penalty": 100,
	"consolation_relic": 500,
	"consolation_enigma": 350,
	"consolation_alliance": 300,
	"consolation_prophecy": 400,
	"consolation_energy": 600,
	"consolation_throne": 700,
	"flavor_event_chance": 0.3,
	"ai_shop_chance": {
		"easy": 0.2,
		"medium": 0.3,
		"hard": 0.5
	},
	"ai_delay_ms": 0
}`

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_profile_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write profile: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func TestValidateProfile_ValidProfile(t *testing.T) {
	path := writeProfile(t, validProfileJSON)

	result := validateProfile(path)
	if !result.Valid {
		t.Errorf("Expected valid profile, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}
}

func TestValidateProfile_InvalidJSON(t *testing.T) {
	path := writeProfile(t, `{"name": "test", invalid json}`)

	result := validateProfile(path)
	if result.Valid {
		t.Error("Expected invalid profile due to bad JSON")
	}

	if !hasError(result, "Invalid JSON") {
		t.Error("Expected 'Invalid JSON' error")
	}
}

func TestValidateProfile_MissingFile(t *testing.T) {
	result := validateProfile("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}

	if !hasError(result, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateProfile_EngineRejection(t *testing.T) {
	// min_players below 2 fails the engine's validation.
	profile := strings.Replace(validProfileJSON, `"min_players": 2`, `"min_players": 1`, 1)
	path := writeProfile(t, profile)

	result := validateProfile(path)
	if result.Valid {
		t.Error("Expected invalid profile for min_players below 2")
	}

	if !hasError(result, "Invalid profile") {
		t.Error("Expected 'Invalid profile' error")
	}
}

func TestValidateProfile_MissingDescription(t *testing.T) {
	profile := strings.Replace(validProfileJSON, `"description": "Test rules profile",`, "", 1)
	path := writeProfile(t, profile)

	result := validateProfile(path)
	if result.Valid {
		t.Error("Expected invalid profile without description")
	}

	if !hasError(result, "Missing description") {
		t.Error("Expected 'Missing description' error")
	}
}

func TestValidateProfile_MissingDifficulty(t *testing.T) {
	profile := strings.Replace(validProfileJSON, `"hard": 0.5`, `"hardest": 0.5`, 1)
	path := writeProfile(t, profile)

	result := validateProfile(path)
	if result.Valid {
		t.Error("Expected invalid profile with missing difficulty entry")
	}

	if !hasError(result, "Missing ai_shop_chance entry: hard") {
		t.Error("Expected missing 'hard' difficulty error")
	}
}

func TestValidateProfile_RuinousBattlePenalty(t *testing.T) {
	profile := strings.Replace(validProfileJSON,
		`"battle_loser_penalty": 100`, `"battle_loser_penalty": 50000`, 1)
	path := writeProfile(t, profile)

	result := validateProfile(path)
	if result.Valid {
		t.Error("Expected invalid profile when one loss wipes the bankroll")
	}

	if !hasError(result, "battle_loser_penalty") {
		t.Error("Expected battle_loser_penalty error")
	}
}

func TestValidateProfile_InfoLines(t *testing.T) {
	path := writeProfile(t, validProfileJSON)

	result := validateProfile(path)
	if !result.Valid {
		t.Fatalf("Expected valid profile, got errors: %v", result.Errors)
	}

	if !hasError(result, "✓ Name: Test Profile") {
		t.Error("Expected name info line")
	}
	if !hasError(result, "✓ Players: 2-6") {
		t.Error("Expected players info line")
	}
	if !hasError(result, "✓ Starting credits: 50000") {
		t.Error("Expected starting credits info line")
	}
}

func hasError(result ValidationResult, substr string) bool {
	for _, err := range result.Errors {
		if strings.Contains(err, substr) {
			return true
		}
	}
	return false
}
