package battle

import (
	"fmt"
	"math/rand"
)

// Classic duel weapons. Sword beats bow, bow beats shield, shield beats
// sword.
const (
	WeaponSword  = "sword"
	WeaponBow    = "bow"
	WeaponShield = "shield"
)

// ClassicWeapons are the options offered every classic-duel round.
var ClassicWeapons = []string{WeaponSword, WeaponBow, WeaponShield}

const classicDamage = 30

var classicBeats = map[string]string{
	WeaponSword:  WeaponBow,
	WeaponBow:    WeaponShield,
	WeaponShield: WeaponSword,
}

// runClassic plays the sword/bow/shield duel. The round winner deals a flat
// 30 damage; a matched pick damages no one.
func runClassic(rng *rand.Rand, p1, p2 Combatant, a1, a2 ActionProvider) Result {
	hp1, hp2 := MaxHP, MaxHP
	var rounds []RoundLog

	for round := 1; round <= MaxRounds; round++ {
		w1 := chooseOr(rng, a1, VariantClassic, round, ClassicWeapons)
		w2 := chooseOr(rng, a2, VariantClassic, round, ClassicWeapons)

		detail := fmt.Sprintf("%s drew %s, %s drew %s", p1.Name, w1, p2.Name, w2)
		switch {
		case classicBeats[w1] == w2:
			hp2 = clampHP(hp2 - classicDamage)
			detail += fmt.Sprintf(": %s hits for %d", p1.Name, classicDamage)
		case classicBeats[w2] == w1:
			hp1 = clampHP(hp1 - classicDamage)
			detail += fmt.Sprintf(": %s hits for %d", p2.Name, classicDamage)
		default:
			detail += ": stand-off"
		}

		rounds = append(rounds, RoundLog{Round: round, Detail: detail, HP1: hp1, HP2: hp2})
		if hp1 == 0 || hp2 == 0 {
			break
		}
	}
	return finish(p1, p2, hp1, hp2, rounds)
}
