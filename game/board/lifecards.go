package board

import "math/rand"

// LifeCardEffect distinguishes how a drawn life card mutates the owner.
type LifeCardEffect string

const (
	// EffectCredits applies a flat credit delta.
	EffectCredits LifeCardEffect = "credits"
	// EffectPercent applies a percentage of the owner's current credits,
	// floor-rounded, sign carried by the Percent field.
	EffectPercent LifeCardEffect = "percent"
	// EffectStat adjusts a cosmetic stat. No credit or progress change.
	EffectStat LifeCardEffect = "stat"
	// EffectMissionHint reveals a hint about another player's mission.
	EffectMissionHint LifeCardEffect = "mission_hint"
	// EffectShopDiscount grants an informational shop discount.
	EffectShopDiscount LifeCardEffect = "shop_discount"
	// EffectMissionSwap lets the owner exchange missions with a chosen player.
	EffectMissionSwap LifeCardEffect = "mission_swap"
)

// LifeCard is one entry of the fixed life-card deck.
type LifeCard struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Effect      LifeCardEffect `json:"effect"`
	Credits     int            `json:"credits,omitempty"`
	Percent     int            `json:"percent,omitempty"`
	Stat        string         `json:"stat,omitempty"`
	StatDelta   int            `json:"stat_delta,omitempty"`
}

// LifeCards is the full deck. Draws are uniform with replacement.
var LifeCards = []LifeCard{
	{ID: "tax_kingdom", Title: "Kingdom Tax",
		Description: "Pay 10% of your credits to the royal treasury.",
		Effect:      EffectPercent, Percent: -10},
	{ID: "rare_learning", Title: "Rare Learning",
		Description: "You found a wise mentor.",
		Effect:      EffectStat, Stat: "intelligence", StatDelta: 1},
	{ID: "old_sage", Title: "Old Sage",
		Description: "An elder shares a hint about another player's mission.",
		Effect:      EffectMissionHint},
	{ID: "perfect_disguise", Title: "Perfect Disguise",
		Description: "Swap missions with a player of your choice.",
		Effect:      EffectMissionSwap},
	{ID: "treasure_found", Title: "Treasure Found",
		Description: "You discovered a hidden chest!",
		Effect:      EffectCredits, Credits: 5000},
	{ID: "bandits_attack", Title: "Bandit Attack",
		Description: "Thieves made off with part of your coin.",
		Effect:      EffectCredits, Credits: -3000},
	{ID: "strength_training", Title: "Intense Training",
		Description: "You trained with a seasoned warrior.",
		Effect:      EffectStat, Stat: "strength", StatDelta: 2},
	{ID: "cursed_artifact", Title: "Cursed Artifact",
		Description: "A hexed object drained your strength.",
		Effect:      EffectStat, Stat: "strength", StatDelta: -1},
	{ID: "merchant_deal", Title: "Merchant's Deal",
		Description: "A merchant offers a special discount.",
		Effect:      EffectShopDiscount},
	{ID: "mystical_fountain", Title: "Mystical Fountain",
		Description: "Magic waters restore your energy.",
		Effect:      EffectStat, Stat: "agility", StatDelta: 1},
	{ID: "gambling_loss", Title: "Lost Wager",
		Description: "You lost money at games of chance.",
		Effect:      EffectPercent, Percent: -15},
	{ID: "noble_reward", Title: "Noble Reward",
		Description: "A noble rewarded you generously.",
		Effect:      EffectCredits, Credits: 8000},
}

// DrawLifeCard picks one card uniformly from the deck.
func DrawLifeCard(rng *rand.Rand) LifeCard {
	return LifeCards[rng.Intn(len(LifeCards))]
}

// LifeCardByID looks a card up by its identifier.
func LifeCardByID(id string) (LifeCard, bool) {
	for _, c := range LifeCards {
		if c.ID == id {
			return c, true
		}
	}
	return LifeCard{}, false
}
