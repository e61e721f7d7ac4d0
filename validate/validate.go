// Command validate provides a small CLI that validates rules profile JSON
// files in the ../configs directory. It checks:
//   - JSON structure and required fields
//   - Player limits, bankroll, and battle economy constraints
//   - Consolation credits and probability ranges
//   - AI shop chances for the three supported difficulties
//
// It prints a concise per-file report and exits non-zero if any profile is
// invalid.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validateProfile loads and validates a single rules profile JSON file.
// It runs the engine's structural validation, then adds profile hygiene
// checks that only matter for authored files.
func validateProfile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var rules engine.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}

	if err := rules.Validate(); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid profile: %v", err))
	}

	// Authored profiles should carry a description so config listings are
	// self-explanatory.
	if rules.Description == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing description")
	}

	// The engine falls back to medium when a difficulty is absent, but an
	// authored profile should spell out all three.
	requiredDifficulties := []string{"easy", "medium", "hard"}
	for _, diff := range requiredDifficulties {
		if _, exists := rules.AIShopChance[diff]; !exists {
			result.Valid = false
			result.Errors = append(result.Errors, fmt.Sprintf("Missing ai_shop_chance entry: %s", diff))
		}
	}

	// A losing battle must never wipe a fresh bankroll in one hit.
	if rules.BattleLoserPenalty >= rules.StartingCredits {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(
			"battle_loser_penalty (%d) must be below starting_credits (%d)",
			rules.BattleLoserPenalty, rules.StartingCredits))
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", rules.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Players: %d-%d", rules.MinPlayers, rules.MaxPlayers))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Starting credits: %d", rules.StartingCredits))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Pass-start bonus: %d", rules.PassStartBonus))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Battle: +%d/-%d", rules.BattleWinnerReward, rules.BattleLoserPenalty))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Flavor event chance: %.0f%%", rules.FlavorEventChance*100))
	}

	return result
}

// main scans ../configs for *.json files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding profile files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateProfile(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All profiles are valid!")
	} else {
		fmt.Println("❌ Some profiles have errors")
		os.Exit(1)
	}
}
