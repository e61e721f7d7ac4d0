package battle

import (
	"fmt"
	"math/rand"
)

// Strategic duel actions.
const (
	ActionHeavyAttack = "heavy_attack"
	ActionQuickAttack = "quick_attack"
	ActionDefend      = "defend"
	ActionDodge       = "dodge"
)

// StrategicActions are the options offered every strategic round.
var StrategicActions = []string{ActionHeavyAttack, ActionQuickAttack, ActionDefend, ActionDodge}

const dodgeChance = 0.6

// runStrategic plays simultaneous action rounds: heavy attacks land 30-40,
// quick attacks 15-25, defending halves incoming damage and dodging avoids
// heavy attacks 60% of the time.
func runStrategic(rng *rand.Rand, p1, p2 Combatant, a1, a2 ActionProvider) Result {
	hp1, hp2 := MaxHP, MaxHP
	var rounds []RoundLog

	for round := 1; round <= MaxRounds; round++ {
		act1 := chooseOr(rng, a1, VariantStrategic, round, StrategicActions)
		act2 := chooseOr(rng, a2, VariantStrategic, round, StrategicActions)

		dmg1 := strategicDamage(rng, act2, act1) // damage taken by p1
		dmg2 := strategicDamage(rng, act1, act2) // damage taken by p2

		hp1 = clampHP(hp1 - dmg1)
		hp2 = clampHP(hp2 - dmg2)
		rounds = append(rounds, RoundLog{
			Round:  round,
			Detail: fmt.Sprintf("%s chose %s (%d dmg taken), %s chose %s (%d dmg taken)", p1.Name, act1, dmg1, p2.Name, act2, dmg2),
			HP1:    hp1,
			HP2:    hp2,
		})
		if hp1 == 0 || hp2 == 0 {
			break
		}
	}
	return finish(p1, p2, hp1, hp2, rounds)
}

// strategicDamage computes the damage an attacker's action deals against
// the defender's action.
func strategicDamage(rng *rand.Rand, attack, defense string) int {
	if attack != ActionHeavyAttack && attack != ActionQuickAttack {
		return 0
	}
	if defense == ActionDodge && attack == ActionHeavyAttack && rng.Float64() < dodgeChance {
		return 0
	}
	var dmg int
	switch attack {
	case ActionHeavyAttack:
		dmg = 30 + rng.Intn(11)
	case ActionQuickAttack:
		dmg = 15 + rng.Intn(11)
	}
	if defense == ActionDefend {
		dmg /= 2
	}
	return dmg
}

func chooseOr(rng *rand.Rand, p ActionProvider, v Variant, round int, options []string) string {
	if p == nil {
		p = RandomProvider{Rng: rng}
	}
	return p.ChooseAction(v, round, options)
}
