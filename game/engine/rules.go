package engine

import (
	"fmt"
	"time"
)

// Rules is a named tuning profile for a game. Profiles are authored as
// JSON files in the configs directory and validated on load.
type Rules struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	MinPlayers int `json:"min_players"`
	MaxPlayers int `json:"max_players"`

	StartingCredits int `json:"starting_credits"`
	PassStartBonus  int `json:"pass_start_bonus"`

	BattleWinnerReward int `json:"battle_winner_reward"`
	BattleLoserPenalty int `json:"battle_loser_penalty"`

	// Consolation credits for landing on a mission cell that does not
	// match the player's own mission.
	ConsolationRelic    int `json:"consolation_relic"`
	ConsolationEnigma   int `json:"consolation_enigma"`
	ConsolationAlliance int `json:"consolation_alliance"`
	ConsolationProphecy int `json:"consolation_prophecy"`
	ConsolationEnergy   int `json:"consolation_energy"`
	ConsolationThrone   int `json:"consolation_throne"`

	// FlavorEventChance is the probability a normal cell triggers an event.
	FlavorEventChance float64 `json:"flavor_event_chance"`

	// AIShopChance maps AI difficulty to the probability of buying when an
	// affordable item is on offer.
	AIShopChance map[string]float64 `json:"ai_shop_chance,omitempty"`

	// AIDelayMs paces automated decisions for presentation. Zero disables
	// the delay; correctness never depends on it.
	AIDelayMs int `json:"ai_delay_ms"`
}

// DefaultRules returns the canonical profile used when no config file is
// available.
func DefaultRules() *Rules {
	return &Rules{
		Name:               "classic",
		Description:        "Canonical FlowQuest rules",
		MinPlayers:         2,
		MaxPlayers:         8,
		StartingCredits:    50000,
		PassStartBonus:     150,
		BattleWinnerReward: 200,
		BattleLoserPenalty: 100,

		ConsolationRelic:    500,
		ConsolationEnigma:   350,
		ConsolationAlliance: 300,
		ConsolationProphecy: 400,
		ConsolationEnergy:   600,
		ConsolationThrone:   700,

		FlavorEventChance: 0.3,
		AIShopChance: map[string]float64{
			"easy":   0.2,
			"medium": 0.3,
			"hard":   0.5,
		},
		AIDelayMs: 0,
	}
}

// Validate checks that the profile is internally consistent.
func (r *Rules) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("rules name is required")
	}
	if r.MinPlayers < 2 {
		return fmt.Errorf("min_players must be at least 2, got %d", r.MinPlayers)
	}
	if r.MaxPlayers < r.MinPlayers {
		return fmt.Errorf("max_players (%d) below min_players (%d)", r.MaxPlayers, r.MinPlayers)
	}
	if r.StartingCredits <= 0 {
		return fmt.Errorf("starting_credits must be positive, got %d", r.StartingCredits)
	}
	if r.PassStartBonus < 0 {
		return fmt.Errorf("pass_start_bonus must not be negative, got %d", r.PassStartBonus)
	}
	if r.BattleWinnerReward < 0 || r.BattleLoserPenalty < 0 {
		return fmt.Errorf("battle rewards must not be negative: winner %d, loser %d",
			r.BattleWinnerReward, r.BattleLoserPenalty)
	}
	for name, c := range map[string]int{
		"consolation_relic":    r.ConsolationRelic,
		"consolation_enigma":   r.ConsolationEnigma,
		"consolation_alliance": r.ConsolationAlliance,
		"consolation_prophecy": r.ConsolationProphecy,
		"consolation_energy":   r.ConsolationEnergy,
		"consolation_throne":   r.ConsolationThrone,
	} {
		if c < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, c)
		}
	}
	if r.FlavorEventChance < 0 || r.FlavorEventChance > 1 {
		return fmt.Errorf("flavor_event_chance must be in [0,1], got %v", r.FlavorEventChance)
	}
	for diff, p := range r.AIShopChance {
		if p < 0 || p > 1 {
			return fmt.Errorf("ai_shop_chance[%s] must be in [0,1], got %v", diff, p)
		}
	}
	if r.AIDelayMs < 0 {
		return fmt.Errorf("ai_delay_ms must not be negative, got %d", r.AIDelayMs)
	}
	return nil
}

// AIDelay returns the configured pacing delay.
func (r *Rules) AIDelay() time.Duration {
	return time.Duration(r.AIDelayMs) * time.Millisecond
}

// ShopChanceFor returns the AI purchase probability for a difficulty,
// falling back to the medium setting.
func (r *Rules) ShopChanceFor(difficulty string) float64 {
	if p, ok := r.AIShopChance[difficulty]; ok {
		return p
	}
	if p, ok := r.AIShopChance["medium"]; ok {
		return p
	}
	return 0.3
}
