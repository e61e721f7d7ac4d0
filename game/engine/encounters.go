package engine

import (
	"fmt"

	"github.com/ivanValieri/jogotabuleiro1/game/battle"
	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// resolveLanding dispatches the landed cell to its resolver. Automated
// players resolve everything inline; humans get a pending encounter when a
// choice is theirs to make. from is the position before the move, kept for
// throne claims.
func (g *Game) resolveLanding(p *Player, cell board.Cell, from int) error {
	switch cell.Type {
	case board.CellStart:
		// Landing exactly on the gate has no effect beyond the pass bonus.

	case board.CellBattle:
		g.resolveBattleCell(p, cell, from)

	case board.CellShop:
		if p.IsAI {
			g.aiShop(p)
		} else {
			g.prompt(PendingEncounter{
				Kind: EncounterShop, PlayerID: p.ID, Position: cell.Position,
				Options: shopOptionIDs(), Origin: from,
			})
		}

	case board.CellLifeCard:
		g.resolveLifeCard(p, cell, from)

	case board.CellRelic:
		if p.MissionID == board.MissionRelics {
			g.progress(p, CounterRelics, "",
				fmt.Sprintf("%s collected an ancient relic (%d/%d)", p.Name, p.Progress.Relics+1, board.RelicsNeeded))
		} else {
			g.consolation(p, g.rules.ConsolationRelic, "relic")
		}

	case board.CellResource:
		if p.IsAI {
			g.aiResource(p)
		} else {
			g.prompt(PendingEncounter{
				Kind: EncounterResource, PlayerID: p.ID, Position: cell.Position,
				Options: resourceOptionIDs(), Origin: from,
			})
		}

	case board.CellEnigma:
		g.resolveEnigmaCell(p, cell, from)

	case board.CellAlliance:
		if p.MissionID == board.MissionAlliance {
			if p.Progress.HasAllianceMark(cell.Region) {
				g.info(p, fmt.Sprintf("%s already holds the %s alliance mark", p.Name, cell.Region))
			} else {
				g.progress(p, CounterAlliance, cell.Region,
					fmt.Sprintf("%s forged an alliance with the %s region (%d/%d)",
						p.Name, cell.Region, len(p.Progress.AllianceMarks)+1, board.AllianceNeeded))
			}
		} else {
			g.consolation(p, g.rules.ConsolationAlliance, "alliance")
		}

	case board.CellProphecy:
		if p.MissionID == board.MissionProphecy {
			g.progress(p, CounterProphecies, "",
				fmt.Sprintf("%s fulfilled a prophecy (%d/%d)", p.Name, p.Progress.Prophecies+1, board.PropheciesNeeded))
		} else {
			g.consolation(p, g.rules.ConsolationProphecy, "prophecy")
		}

	case board.CellEnergy:
		if p.MissionID == board.MissionEnergy {
			g.progress(p, CounterEnergy, "",
				fmt.Sprintf("%s activated an energy node (%d/%d)", p.Name, p.Progress.EnergyPoints+1, board.EnergyNeeded))
		} else {
			g.consolation(p, g.rules.ConsolationEnergy, "energy")
		}

	case board.CellThrone:
		g.resolveThroneCell(p, cell, from)

	case board.CellNormal:
		if g.rng.Float64() < g.rules.FlavorEventChance {
			ev := board.DrawFlavorEvent(g.rng)
			g.emit(Event{
				Type: EventFlavor, PlayerID: p.ID, CardID: ev.ID,
				Message: fmt.Sprintf("%s: %s", ev.Title, ev.Description),
			})
			g.emit(Event{
				Type: EventCredits, PlayerID: p.ID, Delta: ev.Credits, Reason: "flavor_event",
				Message: fmt.Sprintf("%s: %+d credits", p.Name, ev.Credits),
			})
		}

	default:
		return fmt.Errorf("no resolver for cell type %q", cell.Type)
	}

	g.checkVictory()
	return nil
}

// resolveDecision completes a pending encounter with the player's choice.
// Every branch validates the whole payload before emitting anything, so a
// rejection leaves the encounter pending and the state untouched.
func (g *Game) resolveDecision(p *Player, pe *PendingEncounter, d Decision) error {
	switch pe.Kind {
	case EncounterShop:
		switch d.Action {
		case DecisionSkip:
			g.info(p, fmt.Sprintf("%s left the bazaar empty-handed", p.Name))
		case DecisionBuy:
			item, ok := board.ShopItemByID(d.ItemID)
			if !ok {
				return fmt.Errorf("%w: unknown shop item %q", ErrInvalidChoice, d.ItemID)
			}
			if p.Credits < item.Price {
				return fmt.Errorf("%w: %s costs %d, %s has %d", ErrInsufficientFunds,
					item.Name, item.Price, p.Name, p.Credits)
			}
			g.emit(Event{
				Type: EventPurchase, PlayerID: p.ID, ItemID: item.ID,
				Message: fmt.Sprintf("%s bought %s for %d credits", p.Name, item.Name, item.Price),
			})
			g.emit(Event{
				Type: EventCredits, PlayerID: p.ID, Delta: -item.Price, Reason: "shop",
			})
		default:
			return fmt.Errorf("%w: shop action %q", ErrInvalidChoice, d.Action)
		}

	case EncounterResource:
		switch d.Action {
		case DecisionSkip:
			g.info(p, fmt.Sprintf("%s passed on the resource market", p.Name))
		case DecisionBuy:
			offer, ok := board.ResourceOfferByID(d.ItemID)
			if !ok {
				return fmt.Errorf("%w: unknown resource offer %q", ErrInvalidChoice, d.ItemID)
			}
			if p.Credits < offer.Price {
				return fmt.Errorf("%w: %s costs %d, %s has %d", ErrInsufficientFunds,
					offer.Name, offer.Price, p.Name, p.Credits)
			}
			g.buyResource(p, offer)
		default:
			return fmt.Errorf("%w: resource action %q", ErrInvalidChoice, d.Action)
		}

	case EncounterEnigma:
		if err := g.resolveEnigmaDecision(p, d); err != nil {
			return err
		}

	case EncounterThrone:
		switch d.Action {
		case DecisionDecline:
			g.info(p, fmt.Sprintf("%s stepped away from the throne", p.Name))
		case DecisionClaim:
			if p.MissionID != board.MissionThrone || !p.LastBattleWon {
				return fmt.Errorf("%w: %s cannot claim the throne", ErrInvalidChoice, p.Name)
			}
			g.runSiege(p, pe.Origin)
		default:
			return fmt.Errorf("%w: throne action %q", ErrInvalidChoice, d.Action)
		}

	case EncounterBattle:
		if d.Action != DecisionFight {
			return fmt.Errorf("%w: battle action %q", ErrInvalidChoice, d.Action)
		}
		opponent := g.state.PlayerByID(pe.OpponentID)
		if opponent == nil || opponent.Eliminated {
			return fmt.Errorf("%w: opponent %q is gone", ErrInvalidChoice, pe.OpponentID)
		}
		g.runBattle(p, opponent, pe.Variant, battle.ScriptProvider{Actions: d.BattleActions})

	case EncounterSwap:
		switch d.Action {
		case DecisionSkip:
			g.info(p, fmt.Sprintf("%s kept their mission", p.Name))
		case DecisionSwap:
			target := g.state.PlayerByID(d.TargetID)
			if target == nil || target.Eliminated || target.ID == p.ID {
				return fmt.Errorf("%w: swap target %q", ErrInvalidChoice, d.TargetID)
			}
			g.emit(Event{
				Type: EventSwap, PlayerID: p.ID, TargetID: target.ID, CardID: pe.CardID,
				Message: fmt.Sprintf("%s swapped missions with %s", p.Name, target.Name),
			})
		default:
			return fmt.Errorf("%w: swap action %q", ErrInvalidChoice, d.Action)
		}

	default:
		return fmt.Errorf("%w: pending encounter kind %q", ErrInvalidChoice, pe.Kind)
	}

	g.checkVictory()
	return nil
}

// resolveBattleCell picks a random opponent and either fights immediately
// (automated players) or hands the variant and options to the human.
func (g *Game) resolveBattleCell(p *Player, cell board.Cell, from int) {
	var others []*Player
	for _, o := range g.state.ActivePlayers() {
		if o.ID != p.ID {
			others = append(others, o)
		}
	}
	if len(others) == 0 {
		g.info(p, "the battle grounds are deserted")
		return
	}
	opponent := others[g.rng.Intn(len(others))]
	variant := g.pickVariant()

	if p.IsAI {
		g.runBattle(p, opponent, variant, battle.RandomProvider{Rng: g.rng})
		return
	}
	g.prompt(PendingEncounter{
		Kind: EncounterBattle, PlayerID: p.ID, Position: cell.Position,
		Options: battleOptions(variant), Variant: variant,
		OpponentID: opponent.ID, Origin: from,
	})
}

// runBattle plays one duel, settles the credit stakes and mission
// progress, and logs every round.
func (g *Game) runBattle(p, opponent *Player, variant battle.Variant, initiatorActions battle.ActionProvider) {
	res, err := battle.Run(g.rng, variant,
		battle.Combatant{ID: p.ID, Name: p.Name},
		battle.Combatant{ID: opponent.ID, Name: opponent.Name},
		initiatorActions,
		battle.RandomProvider{Rng: g.rng},
	)
	if err != nil {
		// Variants come from the engine's own pool.
		panic(fmt.Sprintf("battle resolver rejected variant: %v", err))
	}

	winner, loser := p, opponent
	if res.WinnerID == opponent.ID {
		winner, loser = opponent, p
	}

	g.emit(Event{
		Type: EventBattle, PlayerID: p.ID, TargetID: opponent.ID,
		Variant: string(variant), WinnerID: res.WinnerID,
		HP1: res.HP1, HP2: res.HP2,
		Message: fmt.Sprintf("%s duel: %s defeated %s (%d-%d HP)",
			variant, winner.Name, loser.Name, res.HP1, res.HP2),
	})
	for _, r := range res.Rounds {
		g.info(p, fmt.Sprintf("round %d: %s", r.Round, r.Detail))
	}

	if g.rules.BattleWinnerReward > 0 {
		g.emit(Event{
			Type: EventCredits, PlayerID: winner.ID, Delta: g.rules.BattleWinnerReward,
			Reason:  "battle_won",
			Message: fmt.Sprintf("%s claims %d credits", winner.Name, g.rules.BattleWinnerReward),
		})
	}
	if g.rules.BattleLoserPenalty > 0 {
		g.emit(Event{
			Type: EventCredits, PlayerID: loser.ID, Delta: -g.rules.BattleLoserPenalty,
			Reason:  "battle_lost",
			Message: fmt.Sprintf("%s forfeits %d credits", loser.Name, g.rules.BattleLoserPenalty),
		})
	}
	if winner.MissionID == board.MissionDuels {
		g.progress(winner, CounterDuelsWon, "",
			fmt.Sprintf("%s won a duel (%d/%d)", winner.Name, winner.Progress.DuelsWon+1, board.DuelsNeeded))
	}
}

// resolveLifeCard draws a card and applies it. Only the mission swap needs
// a human decision; every other effect lands immediately.
func (g *Game) resolveLifeCard(p *Player, cell board.Cell, from int) {
	card := board.DrawLifeCard(g.rng)
	g.emit(Event{
		Type: EventLifeCard, PlayerID: p.ID, CardID: card.ID,
		Message: fmt.Sprintf("%s drew %s: %s", p.Name, card.Title, card.Description),
	})

	switch card.Effect {
	case board.EffectCredits:
		g.emit(Event{
			Type: EventCredits, PlayerID: p.ID, Delta: card.Credits, Reason: "life_card",
			Message: fmt.Sprintf("%s: %+d credits", card.Title, card.Credits),
		})
	case board.EffectPercent:
		delta := p.Credits * card.Percent / 100
		if delta != 0 {
			g.emit(Event{
				Type: EventCredits, PlayerID: p.ID, Delta: delta, Reason: "life_card",
				Message: fmt.Sprintf("%s: %+d credits (%d%%)", card.Title, delta, card.Percent),
			})
		}
	case board.EffectStat:
		g.info(p, fmt.Sprintf("%s: %s %+d", card.Title, card.Stat, card.StatDelta))
	case board.EffectMissionHint:
		g.info(p, g.missionHint(p))
	case board.EffectShopDiscount:
		g.info(p, fmt.Sprintf("%s holds a merchant's favor for the next bazaar", p.Name))
	case board.EffectMissionSwap:
		var candidates []string
		for _, o := range g.state.ActivePlayers() {
			if o.ID != p.ID {
				candidates = append(candidates, o.ID)
			}
		}
		if len(candidates) == 0 {
			g.info(p, "no one is left to swap missions with")
			return
		}
		if p.IsAI {
			target := g.state.PlayerByID(candidates[g.rng.Intn(len(candidates))])
			g.emit(Event{
				Type: EventSwap, PlayerID: p.ID, TargetID: target.ID, CardID: card.ID,
				Message: fmt.Sprintf("%s swapped missions with %s", p.Name, target.Name),
			})
			return
		}
		g.prompt(PendingEncounter{
			Kind: EncounterSwap, PlayerID: p.ID, Position: cell.Position,
			Options: candidates, CardID: card.ID, Origin: from,
		})
	}
}

// missionHint peeks at a random rival's mission for the old sage card.
func (g *Game) missionHint(p *Player) string {
	var others []*Player
	for _, o := range g.state.ActivePlayers() {
		if o.ID != p.ID {
			others = append(others, o)
		}
	}
	if len(others) == 0 {
		return "the sage has no secrets left to share"
	}
	target := others[g.rng.Intn(len(others))]
	m, err := board.MissionByID(target.MissionID)
	if err != nil {
		return "the sage mumbles something unintelligible"
	}
	return fmt.Sprintf("the sage whispers: %s pursues \"%s\"", target.Name, m.Title)
}

// resolveEnigmaCell handles rune cells: hints and answers for the rune
// mission, a consolation for everyone else.
func (g *Game) resolveEnigmaCell(p *Player, cell board.Cell, from int) {
	if p.MissionID != board.MissionEnigma {
		g.consolation(p, g.rules.ConsolationEnigma, "enigma")
		return
	}
	if p.IsAI {
		g.aiEnigma(p)
		return
	}

	var options []string
	if p.Progress.EnigmaHints < board.EnigmaHintCap {
		options = append(options, DecisionHint)
	}
	if p.Progress.CanAnswerEnigma && !p.Progress.EnigmaAnswered {
		options = append(options, DecisionAnswer)
	}
	options = append(options, DecisionSkip)
	if len(options) == 1 {
		g.info(p, fmt.Sprintf("%s has nothing left to learn from the runes", p.Name))
		return
	}
	g.prompt(PendingEncounter{
		Kind: EncounterEnigma, PlayerID: p.ID, Position: cell.Position,
		Options: options, Origin: from,
	})
}

// resolveEnigmaDecision validates and applies a hint request or an answer.
// Answering is irreversible: right means victory, wrong means elimination.
func (g *Game) resolveEnigmaDecision(p *Player, d Decision) error {
	switch d.Action {
	case DecisionSkip:
		g.info(p, fmt.Sprintf("%s left the runes untouched", p.Name))
		return nil

	case DecisionHint:
		if p.MissionID != board.MissionEnigma {
			return fmt.Errorf("%w: hints are for the rune mission", ErrInvalidChoice)
		}
		if p.Progress.EnigmaHints >= board.EnigmaHintCap {
			return fmt.Errorf("%w: all hints already collected", ErrInvalidChoice)
		}
		hint := ""
		if p.Enigma != nil {
			hint = p.Enigma.Hints[p.Progress.EnigmaHints]
		}
		g.progress(p, CounterEnigmaHints, "",
			fmt.Sprintf("%s received a hint (%d/%d): %s", p.Name, p.Progress.EnigmaHints+1, board.EnigmaHintCap, hint))
		return nil

	case DecisionAnswer:
		if p.MissionID != board.MissionEnigma || p.Enigma == nil {
			return fmt.Errorf("%w: no enigma to answer", ErrInvalidChoice)
		}
		if !p.Progress.CanAnswerEnigma {
			return fmt.Errorf("%w: complete a full lap before answering", ErrInvalidChoice)
		}
		if p.Progress.EnigmaAnswered {
			return fmt.Errorf("%w: the enigma was already answered", ErrInvalidChoice)
		}
		if d.AnswerIndex < 0 || d.AnswerIndex >= len(p.Enigma.Options) {
			return fmt.Errorf("%w: answer index %d", ErrInvalidChoice, d.AnswerIndex)
		}
		if p.Enigma.CheckAnswer(d.AnswerIndex) {
			g.progress(p, CounterEnigmaSolved, "",
				fmt.Sprintf("%s solved the rune enigma!", p.Name))
		} else {
			g.emit(Event{
				Type: EventEliminated, PlayerID: p.ID,
				Message: fmt.Sprintf("%s answered the enigma wrong and is eliminated", p.Name),
			})
		}
		return nil

	default:
		return fmt.Errorf("%w: enigma action %q", ErrInvalidChoice, d.Action)
	}
}

// resolveThroneCell offers the claim to eligible usurpers and a
// consolation to everyone else.
func (g *Game) resolveThroneCell(p *Player, cell board.Cell, from int) {
	if p.MissionID != board.MissionThrone {
		g.consolation(p, g.rules.ConsolationThrone, "throne")
		return
	}
	if !p.LastBattleWon {
		g.info(p, fmt.Sprintf("%s must win a battle before daring to claim the throne", p.Name))
		return
	}
	if p.IsAI {
		g.runSiege(p, from)
		return
	}
	g.prompt(PendingEncounter{
		Kind: EncounterThrone, PlayerID: p.ID, Position: cell.Position,
		Options: []string{DecisionClaim, DecisionDecline}, Origin: from,
	})
}

// runSiege plays the throne defense: the claimant must beat every other
// active player back to back. One loss sends them back to where they came
// from and voids the claim; a clean sweep holds the throne.
func (g *Game) runSiege(p *Player, origin int) {
	g.emit(Event{
		Type: EventThroneGain, PlayerID: p.ID, From: origin,
		Message: fmt.Sprintf("%s claims the sacred throne", p.Name),
	})

	for _, defender := range g.state.ActivePlayers() {
		if defender.ID == p.ID {
			continue
		}
		variant := g.pickVariant()
		res, err := battle.Run(g.rng, variant,
			battle.Combatant{ID: p.ID, Name: p.Name},
			battle.Combatant{ID: defender.ID, Name: defender.Name},
			battle.RandomProvider{Rng: g.rng},
			battle.RandomProvider{Rng: g.rng},
		)
		if err != nil {
			panic(fmt.Sprintf("battle resolver rejected variant: %v", err))
		}
		g.emit(Event{
			Type: EventBattle, PlayerID: p.ID, TargetID: defender.ID,
			Variant: string(variant), WinnerID: res.WinnerID,
			HP1: res.HP1, HP2: res.HP2,
			Message: fmt.Sprintf("throne defense (%s): %s vs %s", variant, p.Name, defender.Name),
		})
		if res.WinnerID != p.ID {
			g.emit(Event{
				Type: EventThroneLoss, PlayerID: p.ID, To: origin,
				Message: fmt.Sprintf("%s was cast down by %s and retreats", p.Name, defender.Name),
			})
			return
		}
		g.progress(p, CounterThroneWins, "",
			fmt.Sprintf("%s held the throne against %s", p.Name, defender.Name))
	}

	g.emit(Event{
		Type: EventThroneHeld, PlayerID: p.ID,
		Message: fmt.Sprintf("%s defended the throne against all challengers", p.Name),
	})
}

// buyResource debits the offer price and grants progress only to resource
// mission players. The debit is unconditional; relevance gates progress.
func (g *Game) buyResource(p *Player, offer board.ResourceOffer) {
	g.emit(Event{
		Type: EventPurchase, PlayerID: p.ID, ItemID: offer.ID,
		Message: fmt.Sprintf("%s bought %s for %d credits", p.Name, offer.Name, offer.Price),
	})
	g.emit(Event{
		Type: EventCredits, PlayerID: p.ID, Delta: -offer.Price, Reason: "resource",
	})
	if p.MissionID == board.MissionResources {
		g.progress(p, CounterResources, "",
			fmt.Sprintf("%s gathered a resource (%d/%d)", p.Name, p.Progress.Resources+1, board.ResourcesNeeded))
	}
}

// prompt suspends the turn on a pending encounter.
func (g *Game) prompt(pe PendingEncounter) {
	g.emit(Event{
		Type: EventPrompt, PlayerID: pe.PlayerID, Pending: &pe,
		Message: fmt.Sprintf("waiting on %s decision", pe.Kind),
	})
}

// progress increments one mission counter through the log.
func (g *Game) progress(p *Player, counter, region, message string) {
	g.emit(Event{
		Type: EventProgress, PlayerID: p.ID, Counter: counter, Region: region,
		Message: message,
	})
}

// consolation pays the flat bonus for landing on someone else's mission
// cell.
func (g *Game) consolation(p *Player, amount int, kind string) {
	if amount <= 0 {
		return
	}
	g.emit(Event{
		Type: EventCredits, PlayerID: p.ID, Delta: amount,
		Reason:  "consolation_" + kind,
		Message: fmt.Sprintf("%s pockets %d credits at the %s cell", p.Name, amount, kind),
	})
}

// info records a purely narrative event.
func (g *Game) info(p *Player, message string) {
	g.emit(Event{Type: EventInfo, PlayerID: p.ID, Message: message})
}

func shopOptionIDs() []string {
	out := make([]string, len(board.ShopItems))
	for i, it := range board.ShopItems {
		out[i] = it.ID
	}
	return out
}

func resourceOptionIDs() []string {
	out := make([]string, len(board.ResourceOffers))
	for i, r := range board.ResourceOffers {
		out[i] = r.ID
	}
	return out
}

// battleOptions lists the tactical choices a human can script for the
// variant. Performance variants take none.
func battleOptions(v battle.Variant) []string {
	switch v {
	case battle.VariantStrategic:
		return append([]string(nil), battle.StrategicActions...)
	case battle.VariantClassic:
		return append([]string(nil), battle.ClassicWeapons...)
	case battle.VariantCard:
		return []string{"0", "1", "2"}
	default:
		return nil
	}
}
