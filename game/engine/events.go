package engine

import (
	"fmt"
	"time"

	"github.com/ivanValieri/jogotabuleiro1/game/battle"
)

// now is stubbed in tests that need stable timestamps.
var now = time.Now

// EventType enumerates everything the engine records in the game log.
type EventType string

const (
	EventRoll       EventType = "roll"
	EventMove       EventType = "move"
	EventCredits    EventType = "credits"
	EventProgress   EventType = "progress"
	EventPrompt     EventType = "prompt"
	EventPromptDone EventType = "prompt_done"
	EventBattle     EventType = "battle"
	EventLifeCard   EventType = "life_card"
	EventFlavor     EventType = "flavor"
	EventPurchase   EventType = "purchase"
	EventSwap       EventType = "mission_swap"
	EventEliminated EventType = "eliminated"
	EventThroneGain EventType = "throne_claim"
	EventThroneLoss EventType = "throne_revert"
	EventThroneHeld EventType = "throne_defended"
	EventVictory    EventType = "victory"
	EventTurn       EventType = "turn"
	EventInfo       EventType = "info"
)

// Progress counter names carried by EventProgress.
const (
	CounterRelics       = "relics"
	CounterResources    = "resources"
	CounterDuelsWon     = "duels_won"
	CounterEnigmaHints  = "enigma_hints"
	CounterAlliance     = "alliance_marks"
	CounterProphecies   = "prophecies"
	CounterEnergy       = "energy_points"
	CounterThroneWins   = "throne_battles_won"
	CounterEnigmaSolved = "enigmas_solved"
)

// Event is one entry of the append-only game log. The reducer in apply is
// the only code that mutates GameState, so replaying the log over the
// initial snapshot always reproduces the live state.
type Event struct {
	Seq       int       `json:"seq"`
	Type      EventType `json:"type"`
	PlayerID  string    `json:"player_id,omitempty"`
	TargetID  string    `json:"target_id,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp time.Time `json:"timestamp"`

	Die1        int  `json:"die1,omitempty"`
	Die2        int  `json:"die2,omitempty"`
	Dice        int  `json:"dice,omitempty"`
	From        int  `json:"from,omitempty"`
	To          int  `json:"to,omitempty"`
	Laps        int  `json:"laps,omitempty"`
	PassedStart bool `json:"passed_start,omitempty"`

	Delta   int    `json:"delta,omitempty"`
	Counter string `json:"counter,omitempty"`
	Region  string `json:"region,omitempty"`
	CardID  string `json:"card_id,omitempty"`
	ItemID  string `json:"item_id,omitempty"`

	Variant  string `json:"variant,omitempty"`
	WinnerID string `json:"winner_id,omitempty"`
	HP1      int    `json:"hp1,omitempty"`
	HP2      int    `json:"hp2,omitempty"`

	Reason  string            `json:"reason,omitempty"`
	Pending *PendingEncounter `json:"pending,omitempty"`
}

// apply folds one event into the state. It must stay total over the event
// vocabulary: an event the reducer cannot interpret is a bug.
func apply(s *GameState, ev Event) error {
	p := s.PlayerByID(ev.PlayerID)
	switch ev.Type {
	case EventRoll, EventLifeCard, EventFlavor, EventPurchase, EventInfo:
		// Informational; state carried by companion events.

	case EventMove:
		if p == nil {
			return fmt.Errorf("move event for unknown player %q", ev.PlayerID)
		}
		p.Position = ev.To
		p.Laps += ev.Laps
		if p.Laps > 0 && !p.CompletedLap {
			p.CompletedLap = true
			if p.MissionID == missionEnigmaID {
				p.Progress.CanAnswerEnigma = true
			}
		}

	case EventCredits:
		if p == nil {
			return fmt.Errorf("credits event for unknown player %q", ev.PlayerID)
		}
		p.Credits += ev.Delta
		if p.Credits < 0 {
			p.Credits = 0
		}

	case EventProgress:
		if p == nil {
			return fmt.Errorf("progress event for unknown player %q", ev.PlayerID)
		}
		switch ev.Counter {
		case CounterRelics:
			p.Progress.Relics++
		case CounterResources:
			p.Progress.Resources++
		case CounterDuelsWon:
			p.Progress.DuelsWon++
		case CounterEnigmaHints:
			p.Progress.EnigmaHints++
		case CounterAlliance:
			if !p.Progress.HasAllianceMark(ev.Region) {
				p.Progress.AllianceMarks = append(p.Progress.AllianceMarks, ev.Region)
			}
		case CounterProphecies:
			p.Progress.Prophecies++
		case CounterEnergy:
			p.Progress.EnergyPoints++
		case CounterThroneWins:
			p.Progress.ThroneBattlesWon++
		case CounterEnigmaSolved:
			p.Progress.EnigmasSolved++
			p.Progress.EnigmaAnswered = true
		default:
			return fmt.Errorf("unknown progress counter %q", ev.Counter)
		}

	case EventPrompt:
		if ev.Pending == nil {
			return fmt.Errorf("prompt event without pending payload")
		}
		pe := *ev.Pending
		pe.Options = append([]string(nil), ev.Pending.Options...)
		s.Pending = &pe

	case EventPromptDone:
		s.Pending = nil

	case EventBattle:
		if p == nil {
			return fmt.Errorf("battle event for unknown player %q", ev.PlayerID)
		}
		opponent := s.PlayerByID(ev.TargetID)
		if opponent == nil {
			return fmt.Errorf("battle event for unknown opponent %q", ev.TargetID)
		}
		if ev.WinnerID == p.ID {
			p.LastBattleWon = true
			opponent.LastBattleWon = false
		} else {
			p.LastBattleWon = false
			opponent.LastBattleWon = true
		}
		// Consume the variant from the no-repeat pool, refilling it once
		// every variant has been seen.
		if len(s.RemainingVariants) == 0 {
			s.RemainingVariants = append([]battle.Variant(nil), battle.Variants...)
		}
		for i, v := range s.RemainingVariants {
			if string(v) == ev.Variant {
				s.RemainingVariants = append(s.RemainingVariants[:i], s.RemainingVariants[i+1:]...)
				break
			}
		}

	case EventSwap:
		if p == nil {
			return fmt.Errorf("swap event for unknown player %q", ev.PlayerID)
		}
		target := s.PlayerByID(ev.TargetID)
		if target == nil {
			return fmt.Errorf("swap event for unknown target %q", ev.TargetID)
		}
		p.MissionID, target.MissionID = target.MissionID, p.MissionID
		p.Enigma, target.Enigma = target.Enigma, p.Enigma
		p.Progress.CanAnswerEnigma = p.MissionID == missionEnigmaID && p.CompletedLap
		target.Progress.CanAnswerEnigma = target.MissionID == missionEnigmaID && target.CompletedLap

	case EventEliminated:
		if p == nil {
			return fmt.Errorf("elimination event for unknown player %q", ev.PlayerID)
		}
		p.Eliminated = true

	case EventThroneGain:
		if p == nil {
			return fmt.Errorf("throne claim for unknown player %q", ev.PlayerID)
		}
		p.ThroneOrigin = ev.From

	case EventThroneLoss:
		if p == nil {
			return fmt.Errorf("throne revert for unknown player %q", ev.PlayerID)
		}
		p.Position = ev.To
		p.ThroneOrigin = -1
		p.Progress.ThroneBattlesWon = 0
		p.LastBattleWon = false

	case EventThroneHeld:
		if p == nil {
			return fmt.Errorf("throne defense for unknown player %q", ev.PlayerID)
		}
		p.Progress.ThroneDefended = true
		p.ThroneOrigin = -1

	case EventVictory:
		s.Status = StatusFinished
		s.WinnerID = ev.PlayerID
		s.WinReason = ev.Reason

	case EventTurn:
		s.CurrentPlayerID = ev.TargetID

	default:
		return fmt.Errorf("unknown event type %q", ev.Type)
	}
	return nil
}

// Replay rebuilds a state by folding the event log over the initial
// snapshot. The result is a fresh copy; neither input is mutated.
func Replay(initial *GameState, events []Event) (*GameState, error) {
	s := initial.Clone()
	s.Events = nil
	for _, ev := range events {
		if err := apply(s, ev); err != nil {
			return nil, fmt.Errorf("replay event %d: %w", ev.Seq, err)
		}
		s.Events = append(s.Events, ev)
	}
	return s, nil
}
