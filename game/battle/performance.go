package battle

import (
	"fmt"
	"math/rand"
)

// Reflex duel tuning. Reactions are sampled in milliseconds; the faster
// combatant lands 25-40 damage.
const (
	reactionFloorMs = 500
	reactionSpanMs  = 801
)

// runQuickTime plays the reflex duel. Each round both reactions are drawn
// from the same window and the quicker side strikes; identical reactions
// damage no one.
func runQuickTime(rng *rand.Rand, p1, p2 Combatant) Result {
	hp1, hp2 := MaxHP, MaxHP
	var rounds []RoundLog

	for round := 1; round <= MaxRounds; round++ {
		r1 := reactionFloorMs + rng.Intn(reactionSpanMs)
		r2 := reactionFloorMs + rng.Intn(reactionSpanMs)

		detail := fmt.Sprintf("%s reacted in %dms, %s in %dms", p1.Name, r1, p2.Name, r2)
		switch {
		case r1 < r2:
			dmg := 25 + rng.Intn(16)
			hp2 = clampHP(hp2 - dmg)
			detail += fmt.Sprintf(": %s strikes for %d", p1.Name, dmg)
		case r2 < r1:
			dmg := 25 + rng.Intn(16)
			hp1 = clampHP(hp1 - dmg)
			detail += fmt.Sprintf(": %s strikes for %d", p2.Name, dmg)
		default:
			detail += ": dead heat"
		}

		rounds = append(rounds, RoundLog{Round: round, Detail: detail, HP1: hp1, HP2: hp2})
		if hp1 == 0 || hp2 == 0 {
			break
		}
	}
	return finish(p1, p2, hp1, hp2, rounds)
}

// Rhythm duel tuning: five targets per round, each scored by how far off
// the beat the hit lands. Within 3 is a perfect 25, within 7 a good 15,
// anything wider misses.
const (
	rhythmTargets = 5
	perfectScore  = 25
	goodScore     = 15
)

// runRhythm plays the rhythm duel. Both sides score the same five-target
// sheet; the higher total deals a third of its score as damage.
func runRhythm(rng *rand.Rand, p1, p2 Combatant) Result {
	hp1, hp2 := MaxHP, MaxHP
	var rounds []RoundLog

	for round := 1; round <= MaxRounds; round++ {
		s1 := rhythmScore(rng)
		s2 := rhythmScore(rng)

		detail := fmt.Sprintf("%s scored %d, %s scored %d", p1.Name, s1, p2.Name, s2)
		switch {
		case s1 > s2:
			dmg := s1 / 3
			hp2 = clampHP(hp2 - dmg)
			detail += fmt.Sprintf(": %s takes %d", p2.Name, dmg)
		case s2 > s1:
			dmg := s2 / 3
			hp1 = clampHP(hp1 - dmg)
			detail += fmt.Sprintf(": %s takes %d", p1.Name, dmg)
		default:
			detail += ": matched rhythm"
		}

		rounds = append(rounds, RoundLog{Round: round, Detail: detail, HP1: hp1, HP2: hp2})
		if hp1 == 0 || hp2 == 0 {
			break
		}
	}
	return finish(p1, p2, hp1, hp2, rounds)
}

func rhythmScore(rng *rand.Rand) int {
	total := 0
	for i := 0; i < rhythmTargets; i++ {
		distance := rng.Intn(10)
		switch {
		case distance < 3:
			total += perfectScore
		case distance < 7:
			total += goodScore
		}
	}
	return total
}
