// Package battle adjudicates duels between two players.
//
// A battle is one of five variants, all sharing the same outer contract:
// both combatants start at 100 HP, up to three rounds are played, and the
// battle ends early when either side reaches 0 HP. The caller receives the
// winner and both final HP values; how each round's damage is computed is
// variant-specific.
//
// Variants that involve a tactical choice (strategic, classic duel, card
// duel) consult an ActionProvider per round, so human selections can be
// scripted in while automated players pick uniformly at random. The reflex
// and rhythm variants are contests of sampled performance and take no
// actions. All randomness comes from the *rand.Rand handed to Run, which
// keeps battles reproducible under a seeded source.
//
// When the round cap is reached with equal HP the first combatant wins:
// Run's p1 is always the player whose landing (or siege claim) started the
// fight, and the tie goes to the initiator.
package battle
