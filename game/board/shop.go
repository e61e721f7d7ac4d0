package board

// ShopItem is one entry of the bazaar catalog. Stat effects are cosmetic;
// the engine only cares about the price.
type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Stat        string `json:"stat,omitempty"`
	StatDelta   int    `json:"stat_delta,omitempty"`
}

// ShopItems is the fixed bazaar catalog.
var ShopItems = []ShopItem{
	{ID: "sword_basic", Name: "Basic Sword",
		Description: "A plain sword that sharpens your strength in combat.",
		Price:       5000, Stat: "strength", StatDelta: 2},
	{ID: "shield_wood", Name: "Wooden Shield",
		Description: "Basic protection against attacks.",
		Price:       3000, Stat: "defense", StatDelta: 1},
	{ID: "ring_wisdom", Name: "Ring of Wisdom",
		Description: "Raises the bearer's intelligence.",
		Price:       4000, Stat: "intelligence", StatDelta: 3},
	{ID: "strength_potion", Name: "Strength Potion",
		Description: "Permanently raises strength.",
		Price:       8000, Stat: "strength", StatDelta: 5},
	{ID: "wisdom_scroll", Name: "Scroll of Wisdom",
		Description: "Permanently raises intelligence.",
		Price:       7500, Stat: "intelligence", StatDelta: 4},
	{ID: "speed_boots", Name: "Boots of Speed",
		Description: "Permanently raises agility.",
		Price:       6000, Stat: "agility", StatDelta: 3},
}

// ShopItemByID looks an item up by its identifier.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range ShopItems {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}

// ResourceOffer is one of the purchases available at a resource market.
// Buying one always debits the price; only players on the resource mission
// gain progress from it.
type ResourceOffer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ResourceOffers is the fixed market catalog.
var ResourceOffers = []ResourceOffer{
	{ID: "gold", Name: "Gold", Price: 5000},
	{ID: "gem", Name: "Gem", Price: 7000},
	{ID: "artifact", Name: "Artifact", Price: 10000},
}

// ResourceOfferByID looks an offer up by its identifier.
func ResourceOfferByID(id string) (ResourceOffer, bool) {
	for _, r := range ResourceOffers {
		if r.ID == id {
			return r, true
		}
	}
	return ResourceOffer{}, false
}
