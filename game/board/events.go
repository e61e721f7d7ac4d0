package board

import "math/rand"

// FlavorKind classifies a normal-cell flavor event.
type FlavorKind string

const (
	FlavorPositive FlavorKind = "positive"
	FlavorNegative FlavorKind = "negative"
	// FlavorNeutral events resolve to +Credits or -Credits with equal odds.
	FlavorNeutral FlavorKind = "neutral"
)

// FlavorEvent is one entry of the normal-cell event table.
type FlavorEvent struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Kind        FlavorKind `json:"kind"`
	Credits     int        `json:"credits"`
}

// FlavorEvents is the fixed table of roadside events.
var FlavorEvents = []FlavorEvent{
	{ID: "rest_inn", Title: "Rest at the Inn",
		Description: "You found a cozy inn and rested well.",
		Kind:        FlavorPositive, Credits: 500},
	{ID: "treasure_chest", Title: "Hidden Chest",
		Description: "You stumbled on an old hidden chest!",
		Kind:        FlavorPositive, Credits: 1000},
	{ID: "merchant", Title: "Travelling Merchant",
		Description: "A merchant pays a small reward for your help.",
		Kind:        FlavorPositive, Credits: 750},
	{ID: "wild_animals", Title: "Wild Animals",
		Description: "You were attacked by wild animals!",
		Kind:        FlavorNegative, Credits: -300},
	{ID: "lost_path", Title: "Lost Path",
		Description: "You got lost and spent supplies finding the road.",
		Kind:        FlavorNegative, Credits: -200},
	{ID: "mysterious_stranger", Title: "Mysterious Stranger",
		Description: "A stranger offers a curious trade...",
		Kind:        FlavorNeutral, Credits: 500},
	{ID: "ancient_ruins", Title: "Ancient Ruins",
		Description: "You explored old ruins and found artifacts.",
		Kind:        FlavorPositive, Credits: 800},
	{ID: "bandit_encounter", Title: "Bandit Encounter",
		Description: "Bandits tried to rob you, but you escaped.",
		Kind:        FlavorNegative, Credits: -400},
	{ID: "friendly_village", Title: "Friendly Village",
		Description: "The villagers offered you their hospitality.",
		Kind:        FlavorPositive, Credits: 600},
	{ID: "storm", Title: "Storm",
		Description: "A storm caught you on the road.",
		Kind:        FlavorNegative, Credits: -250},
}

// DrawFlavorEvent picks one event uniformly and, for neutral events, settles
// the sign of the credit delta with a coin flip.
func DrawFlavorEvent(rng *rand.Rand) FlavorEvent {
	ev := FlavorEvents[rng.Intn(len(FlavorEvents))]
	if ev.Kind == FlavorNeutral && rng.Intn(2) == 0 {
		ev.Credits = -ev.Credits
	}
	return ev
}
