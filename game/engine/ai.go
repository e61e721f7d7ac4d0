package engine

import (
	"fmt"

	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// Automated decision policies. Every AI choice is drawn from the game's
// random source, so simulations replay identically under the same seed.

// aiShop buys one random affordable item with a difficulty-scaled
// probability, otherwise walks away.
func (g *Game) aiShop(p *Player) {
	if g.rng.Float64() >= g.rules.ShopChanceFor(p.AIDifficulty) {
		g.info(p, fmt.Sprintf("%s browsed the bazaar and moved on", p.Name))
		return
	}
	var affordable []board.ShopItem
	for _, it := range board.ShopItems {
		if it.Price <= p.Credits {
			affordable = append(affordable, it)
		}
	}
	if len(affordable) == 0 {
		g.info(p, fmt.Sprintf("%s cannot afford anything at the bazaar", p.Name))
		return
	}
	item := affordable[g.rng.Intn(len(affordable))]
	g.emit(Event{
		Type: EventPurchase, PlayerID: p.ID, ItemID: item.ID,
		Message: fmt.Sprintf("%s bought %s for %d credits", p.Name, item.Name, item.Price),
	})
	g.emit(Event{
		Type: EventCredits, PlayerID: p.ID, Delta: -item.Price, Reason: "shop",
	})
}

// aiResource buys a random affordable offer when the resource mission is
// the player's own; other missions never spend here.
func (g *Game) aiResource(p *Player) {
	if p.MissionID != board.MissionResources {
		g.info(p, fmt.Sprintf("%s has no use for the resource market", p.Name))
		return
	}
	var affordable []board.ResourceOffer
	for _, r := range board.ResourceOffers {
		if r.Price <= p.Credits {
			affordable = append(affordable, r)
		}
	}
	if len(affordable) == 0 {
		g.info(p, fmt.Sprintf("%s cannot afford any resources", p.Name))
		return
	}
	g.buyResource(p, affordable[g.rng.Intn(len(affordable))])
}

// aiEnigma collects hints first and only risks an answer once every hint
// is in hand and the lap gate is open. The guess is uniform over the
// options the hints have not ruled out, which the engine models as a
// uniform draw.
func (g *Game) aiEnigma(p *Player) {
	if p.Progress.EnigmaHints < board.EnigmaHintCap {
		hint := ""
		if p.Enigma != nil {
			hint = p.Enigma.Hints[p.Progress.EnigmaHints]
		}
		g.progress(p, CounterEnigmaHints, "",
			fmt.Sprintf("%s received a hint (%d/%d): %s", p.Name, p.Progress.EnigmaHints+1, board.EnigmaHintCap, hint))
		return
	}
	if !p.Progress.CanAnswerEnigma || p.Progress.EnigmaAnswered || p.Enigma == nil {
		g.info(p, fmt.Sprintf("%s studied the runes in silence", p.Name))
		return
	}
	guess := g.rng.Intn(len(p.Enigma.Options))
	if p.Enigma.CheckAnswer(guess) {
		g.progress(p, CounterEnigmaSolved, "",
			fmt.Sprintf("%s solved the rune enigma!", p.Name))
	} else {
		g.emit(Event{
			Type: EventEliminated, PlayerID: p.ID,
			Message: fmt.Sprintf("%s answered the enigma wrong and is eliminated", p.Name),
		})
	}
}
