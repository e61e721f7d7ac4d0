package battle

import (
	"fmt"
	"math/rand"
	"strconv"
)

// runCard deals each combatant three hidden cards valued 70-90. Every
// round both play one remaining card; the higher value wins the clash and
// deals half the difference (floored). Played cards are consumed, so the
// duel always spans exactly three rounds unless someone is knocked out.
func runCard(rng *rand.Rand, p1, p2 Combatant, a1, a2 ActionProvider) Result {
	hand1 := dealHand(rng)
	hand2 := dealHand(rng)
	hp1, hp2 := MaxHP, MaxHP
	var rounds []RoundLog

	for round := 1; round <= MaxRounds; round++ {
		c1 := playCard(rng, a1, round, hand1)
		c2 := playCard(rng, a2, round, hand2)
		v1, v2 := hand1[c1], hand2[c2]
		delete(hand1, c1)
		delete(hand2, c2)

		detail := fmt.Sprintf("%s played %d, %s played %d", p1.Name, v1, p2.Name, v2)
		switch {
		case v1 > v2:
			dmg := (v1 - v2) / 2
			hp2 = clampHP(hp2 - dmg)
			detail += fmt.Sprintf(": %s takes %d", p2.Name, dmg)
		case v2 > v1:
			dmg := (v2 - v1) / 2
			hp1 = clampHP(hp1 - dmg)
			detail += fmt.Sprintf(": %s takes %d", p1.Name, dmg)
		default:
			detail += ": even clash"
		}

		rounds = append(rounds, RoundLog{Round: round, Detail: detail, HP1: hp1, HP2: hp2})
		if hp1 == 0 || hp2 == 0 {
			break
		}
	}
	return finish(p1, p2, hp1, hp2, rounds)
}

// dealHand creates three cards keyed by slot index.
func dealHand(rng *rand.Rand) map[string]int {
	hand := make(map[string]int, 3)
	for i := 0; i < 3; i++ {
		hand[strconv.Itoa(i)] = 70 + rng.Intn(21)
	}
	return hand
}

// playCard asks the provider for one of the remaining slot keys.
func playCard(rng *rand.Rand, p ActionProvider, round int, hand map[string]int) string {
	options := make([]string, 0, len(hand))
	for i := 0; i < 3; i++ {
		key := strconv.Itoa(i)
		if _, ok := hand[key]; ok {
			options = append(options, key)
		}
	}
	return chooseOr(rng, p, VariantCard, round, options)
}
