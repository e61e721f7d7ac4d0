// Command simulate plays batches of fully automated FlowQuest matches and
// prints outcome statistics: wins per mission, wins per victory path, and
// match length. It is the quickest way to eyeball balance after touching a
// rules profile.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/ivanValieri/jogotabuleiro1/game/board"
	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

// maxRollsPerGame bounds a single simulated match. A match that has not
// resolved by then is reported as stalled instead of spinning forever.
const maxRollsPerGame = 2000

func main() {
	cmd := &cli.Command{
		Name:  "simulate",
		Usage: "run automated FlowQuest matches and report outcome statistics",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "games",
				Value: 100,
				Usage: "number of matches to play",
			},
			&cli.IntFlag{
				Name:  "players",
				Value: 4,
				Usage: "players per match",
			},
			&cli.StringFlag{
				Name:  "difficulty",
				Value: "medium",
				Usage: "AI difficulty: easy, medium, or hard",
			},
			&cli.StringFlag{
				Name:  "rules",
				Usage: "path to a rules profile JSON file (defaults to built-in classic rules)",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Usage: "base random seed, 0 derives one from the clock",
			},
		},
		Action: runSimulation,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "simulate: %v\n", err)
		os.Exit(1)
	}
}

// batchStats accumulates outcomes across a simulation batch.
type batchStats struct {
	played        int
	stalled       int
	winsByMission map[int]int
	winsByReason  map[string]int
	totalRolls    int
	eliminations  int
}

func runSimulation(ctx context.Context, cmd *cli.Command) error {
	games := cmd.Int("games")
	players := cmd.Int("players")
	difficulty := cmd.String("difficulty")

	if games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", games)
	}

	rules, err := loadRules(cmd.String("rules"))
	if err != nil {
		return err
	}
	// Pacing delays would only slow the batch down.
	rules.AIDelayMs = 0

	if players < rules.MinPlayers || players > rules.MaxPlayers {
		return fmt.Errorf("players must be between %d and %d for profile %q, got %d",
			rules.MinPlayers, rules.MaxPlayers, rules.Name, players)
	}

	seed := cmd.Int64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	fmt.Printf("Simulating %d matches of %d AI players (%s) with profile %q, base seed %d\n\n",
		games, players, difficulty, rules.Name, seed)

	stats := &batchStats{
		winsByMission: make(map[int]int),
		winsByReason:  make(map[string]int),
	}

	for i := 0; i < games; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := playMatch(rules, players, difficulty, seed+int64(i), stats); err != nil {
			return fmt.Errorf("match %d: %w", i+1, err)
		}
	}

	printReport(stats)
	return nil
}

// loadRules reads a rules profile from disk, or returns the built-in
// defaults when no path is given.
func loadRules(path string) (*engine.Rules, error) {
	if path == "" {
		return engine.DefaultRules(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	var rules engine.Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules profile: %w", err)
	}
	return &rules, nil
}

// playMatch runs one all-AI match to completion and folds the outcome into
// stats. Automated players never leave a decision pending, so driving the
// match is just rolling for whoever holds the turn.
func playMatch(rules *engine.Rules, players int, difficulty string, seed int64, stats *batchStats) error {
	specs := make([]engine.PlayerSpec, players)
	for i := range specs {
		specs[i] = engine.PlayerSpec{
			Name:         fmt.Sprintf("Bot %d", i+1),
			IsAI:         true,
			AIDifficulty: difficulty,
		}
	}

	game, err := engine.NewGame(rules, specs, seed)
	if err != nil {
		return err
	}

	rolls := 0
	for ; rolls < maxRollsPerGame; rolls++ {
		state := game.State()
		if state.Status != engine.StatusActive {
			break
		}
		cur := state.CurrentPlayer()
		if cur == nil {
			break
		}
		if _, err := game.Roll(cur.ID); err != nil {
			return fmt.Errorf("roll for %s: %w", cur.Name, err)
		}
	}

	final := game.State()
	stats.played++
	stats.totalRolls += rolls
	for _, p := range final.Players {
		if p.Eliminated {
			stats.eliminations++
		}
	}

	if final.Status != engine.StatusFinished {
		stats.stalled++
		return nil
	}

	stats.winsByReason[final.WinReason]++
	if winner := final.PlayerByID(final.WinnerID); winner != nil {
		stats.winsByMission[winner.MissionID]++
	}
	return nil
}

func printReport(stats *batchStats) {
	decided := stats.played - stats.stalled

	fmt.Printf("Matches played:   %d\n", stats.played)
	fmt.Printf("Matches decided:  %d\n", decided)
	if stats.stalled > 0 {
		fmt.Printf("Matches stalled:  %d (hit the %d-roll cap)\n", stats.stalled, maxRollsPerGame)
	}
	if stats.played > 0 {
		fmt.Printf("Average rolls:    %.1f\n", float64(stats.totalRolls)/float64(stats.played))
		fmt.Printf("Eliminations:     %d (%.2f per match)\n",
			stats.eliminations, float64(stats.eliminations)/float64(stats.played))
	}

	if decided == 0 {
		return
	}

	fmt.Printf("\nWins by victory path:\n")
	reasons := make([]string, 0, len(stats.winsByReason))
	for r := range stats.winsByReason {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	for _, r := range reasons {
		n := stats.winsByReason[r]
		fmt.Printf("  %-18s %4d  (%.1f%%)\n", r, n, 100*float64(n)/float64(decided))
	}

	fmt.Printf("\nWins by mission:\n")
	ids := make([]int, 0, len(stats.winsByMission))
	for id := range stats.winsByMission {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		n := stats.winsByMission[id]
		title := fmt.Sprintf("mission %d", id)
		if m, err := board.MissionByID(id); err == nil {
			title = m.Title
		}
		fmt.Printf("  %-28s %4d  (%.1f%%)\n", title, n, 100*float64(n)/float64(decided))
	}
}
