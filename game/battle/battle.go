package battle

import (
	"fmt"
	"math/rand"
)

// Variant identifies one of the five duel mini-games.
type Variant string

const (
	VariantStrategic Variant = "strategic"
	VariantQuickTime Variant = "quicktime"
	VariantCard      Variant = "card"
	VariantClassic   Variant = "classic"
	VariantRhythm    Variant = "rhythm"
)

// Variants lists every duel variant. Games draw from this pool without
// repetition until it is exhausted, then refill it.
var Variants = []Variant{VariantStrategic, VariantQuickTime, VariantCard, VariantClassic, VariantRhythm}

const (
	// MaxHP is each combatant's starting health.
	MaxHP = 100
	// MaxRounds caps every battle.
	MaxRounds = 3
)

// Combatant is one side of a duel.
type Combatant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoundLog records one resolved round for the event feed.
type RoundLog struct {
	Round  int    `json:"round"`
	Detail string `json:"detail"`
	HP1    int    `json:"hp1"`
	HP2    int    `json:"hp2"`
}

// Result is the uniform outcome of any battle variant.
type Result struct {
	Variant  Variant    `json:"variant"`
	WinnerID string     `json:"winner_id"`
	LoserID  string     `json:"loser_id"`
	HP1      int        `json:"hp1"`
	HP2      int        `json:"hp2"`
	Rounds   []RoundLog `json:"rounds"`
}

// ActionProvider supplies a combatant's tactical choice for one round.
// The options slice is never empty; implementations must return one of its
// entries.
type ActionProvider interface {
	ChooseAction(v Variant, round int, options []string) string
}

// RandomProvider picks uniformly among the offered options. It is the
// policy for automated players.
type RandomProvider struct {
	Rng *rand.Rand
}

// ChooseAction implements ActionProvider.
func (p RandomProvider) ChooseAction(_ Variant, _ int, options []string) string {
	return options[p.Rng.Intn(len(options))]
}

// ScriptProvider replays a fixed list of choices, one per round, falling
// back to the first offered option once the script runs out or names an
// option that is no longer available. It carries human selections submitted
// up front into the round loop.
type ScriptProvider struct {
	Actions []string
}

// ChooseAction implements ActionProvider.
func (p ScriptProvider) ChooseAction(_ Variant, round int, options []string) string {
	if round-1 < len(p.Actions) {
		want := p.Actions[round-1]
		for _, opt := range options {
			if opt == want {
				return want
			}
		}
	}
	return options[0]
}

// Run plays a full battle of the given variant between p1 (the initiator)
// and p2. a1 and a2 supply tactical choices where the variant has any; they
// may be nil for the performance variants.
func Run(rng *rand.Rand, v Variant, p1, p2 Combatant, a1, a2 ActionProvider) (Result, error) {
	var res Result
	switch v {
	case VariantStrategic:
		res = runStrategic(rng, p1, p2, a1, a2)
	case VariantQuickTime:
		res = runQuickTime(rng, p1, p2)
	case VariantCard:
		res = runCard(rng, p1, p2, a1, a2)
	case VariantClassic:
		res = runClassic(rng, p1, p2, a1, a2)
	case VariantRhythm:
		res = runRhythm(rng, p1, p2)
	default:
		return Result{}, fmt.Errorf("unknown battle variant: %q", v)
	}
	res.Variant = v
	return res, nil
}

// finish settles the winner from the final HP pair. An exact tie goes to
// the initiator.
func finish(p1, p2 Combatant, hp1, hp2 int, rounds []RoundLog) Result {
	winner, loser := p1, p2
	if hp2 > hp1 {
		winner, loser = p2, p1
	}
	return Result{
		WinnerID: winner.ID,
		LoserID:  loser.ID,
		HP1:      hp1,
		HP2:      hp2,
		Rounds:   rounds,
	}
}

func clampHP(hp int) int {
	if hp < 0 {
		return 0
	}
	return hp
}
