// Command analyze prints quick, human-readable heuristics about the rules
// profiles in the project's configs directory. For each profile it summarizes
// player limits, bankroll settings, and battle economics, then estimates how
// many lost battles a fresh player survives and how much consolation income
// an average lap yields. It also reports the fixed board's cell mix and flags
// missions whose thresholds demand many laps.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// AnalysisProfile is a light struct for reading rules files used by analysis.
type AnalysisProfile struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	MinPlayers         int     `json:"min_players"`
	MaxPlayers         int     `json:"max_players"`
	StartingCredits    int     `json:"starting_credits"`
	PassStartBonus     int     `json:"pass_start_bonus"`
	BattleWinnerReward int     `json:"battle_winner_reward"`
	BattleLoserPenalty int     `json:"battle_loser_penalty"`
	ConsolationRelic   int     `json:"consolation_relic"`
	ConsolationEnigma  int     `json:"consolation_enigma"`
	ConsolationAlly    int     `json:"consolation_alliance"`
	ConsolationOracle  int     `json:"consolation_prophecy"`
	ConsolationEnergy  int     `json:"consolation_energy"`
	ConsolationThrone  int     `json:"consolation_throne"`
	FlavorEventChance  float64 `json:"flavor_event_chance"`
}

func main() {
	profiles := []string{
		"classic.json",
		"quick.json",
		"highstakes.json",
	}

	printBoardSummary()

	for _, profileFile := range profiles {
		fmt.Printf("\n=== Analyzing %s ===\n", profileFile)
		analyzeProfile(filepath.Join("configs", profileFile))
	}
}

// printBoardSummary reports the fixed ring's cell mix and mission pacing.
func printBoardSummary() {
	fmt.Printf("=== Board (%d cells) ===\n", board.Size)

	counts := make(map[board.CellType]int)
	for _, cell := range board.Cells {
		counts[cell.Type]++
	}

	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, string(t))
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf("  %-10s %2d\n", t, counts[board.CellType(t)])
	}

	// A 2d6 roll averages 7 cells, so one lap is roughly six rolls. A
	// mission needing more landings on its cell type than the board offers
	// per lap forces multiple laps.
	fmt.Println("\nMission pacing:")
	pacing := []struct {
		title    string
		needed   int
		cellType board.CellType
	}{
		{"relics", board.RelicsNeeded, board.CellRelic},
		{"resources", board.ResourcesNeeded, board.CellResource},
		{"duels", board.DuelsNeeded, board.CellBattle},
		{"alliance marks", board.AllianceNeeded, board.CellAlliance},
		{"prophecies", board.PropheciesNeeded, board.CellProphecy},
		{"energy points", board.EnergyNeeded, board.CellEnergy},
	}
	for _, p := range pacing {
		cells := counts[p.cellType]
		if cells == 0 {
			fmt.Printf("  ⚠️  %s: needs %d but the board has no %s cells\n", p.title, p.needed, p.cellType)
			continue
		}
		minLaps := (p.needed + cells - 1) / cells
		fmt.Printf("  %-16s needs %2d, %d cells on board, at least %d lap(s)\n",
			p.title, p.needed, cells, minLaps)
	}
}

func analyzeProfile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var profile AnalysisProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	fmt.Printf("Name: %s\n", profile.Name)
	fmt.Printf("Players: %d-%d\n", profile.MinPlayers, profile.MaxPlayers)
	fmt.Printf("Starting Credits: %d\n", profile.StartingCredits)
	fmt.Printf("Pass-Start Bonus: %d\n", profile.PassStartBonus)
	fmt.Printf("Battle: +%d winner / -%d loser\n", profile.BattleWinnerReward, profile.BattleLoserPenalty)
	fmt.Printf("Flavor Event Chance: %.0f%%\n", profile.FlavorEventChance*100)

	// Lost battles a fresh player survives before hitting zero.
	if profile.BattleLoserPenalty > 0 {
		losses := profile.StartingCredits / profile.BattleLoserPenalty
		fmt.Printf("Battle attrition: a fresh player survives %d lost battles\n", losses)
		if losses < 10 {
			fmt.Printf("⚠️  WARNING: fewer than 10 lost battles to bankruptcy, expect heavy attrition\n")
		} else {
			fmt.Printf("✅ Bankroll comfortably absorbs early battle losses\n")
		}
	}

	// Expected consolation income for one lap, assuming each mission cell
	// pays its consolation (the common case: the cell rarely matches the
	// lander's own mission).
	consolations := map[board.CellType]int{
		board.CellRelic:    profile.ConsolationRelic,
		board.CellEnigma:   profile.ConsolationEnigma,
		board.CellAlliance: profile.ConsolationAlly,
		board.CellProphecy: profile.ConsolationOracle,
		board.CellEnergy:   profile.ConsolationEnergy,
		board.CellThrone:   profile.ConsolationThrone,
	}
	lapIncome := profile.PassStartBonus
	for _, cell := range board.Cells {
		if c, ok := consolations[cell.Type]; ok {
			// Roughly 7 of 40 cells are visited per lap.
			lapIncome += c * 7 / board.Size
		}
	}
	fmt.Printf("Estimated income per lap (bonus + consolations): ~%d credits\n", lapIncome)

	if profile.PassStartBonus == 0 {
		fmt.Printf("⚠️  WARNING: no pass-start bonus, the economy only drains\n")
	}
}
