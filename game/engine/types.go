package engine

import (
	"github.com/ivanValieri/jogotabuleiro1/game/battle"
	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// GameStatus tracks the lifecycle of a game.
type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusFinished GameStatus = "finished"
)

// MissionProgress holds the sparse per-mission counters. Counters only
// grow during normal play; alliance marks are a set union.
type MissionProgress struct {
	Relics           int      `json:"relics,omitempty"`
	Resources        int      `json:"resources,omitempty"`
	DuelsWon         int      `json:"duels_won,omitempty"`
	EnigmasSolved    int      `json:"enigmas_solved,omitempty"`
	EnigmaAnswered   bool     `json:"enigma_answered,omitempty"`
	EnigmaHints      int      `json:"enigma_hints,omitempty"`
	CanAnswerEnigma  bool     `json:"can_answer_enigma,omitempty"`
	AllianceMarks    []string `json:"alliance_marks,omitempty"`
	Prophecies       int      `json:"prophecies,omitempty"`
	EnergyPoints     int      `json:"energy_points,omitempty"`
	ThroneBattlesWon int      `json:"throne_battles_won,omitempty"`
	ThroneDefended   bool     `json:"throne_defended,omitempty"`
}

// HasAllianceMark reports whether the region was already collected.
func (p *MissionProgress) HasAllianceMark(region string) bool {
	for _, r := range p.AllianceMarks {
		if r == region {
			return true
		}
	}
	return false
}

// Player is one participant's full mutable record.
type Player struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TurnOrder    int             `json:"turn_order"`
	Position     int             `json:"position"`
	Credits      int             `json:"credits"`
	MissionID    int             `json:"mission_id"`
	ClassID      string          `json:"class_id,omitempty"`
	Progress     MissionProgress `json:"progress"`
	IsAI         bool            `json:"is_ai,omitempty"`
	AIDifficulty string          `json:"ai_difficulty,omitempty"`
	Enigma       *board.Enigma   `json:"enigma,omitempty"`
	Laps         int             `json:"laps"`
	CompletedLap bool            `json:"completed_lap,omitempty"`
	// ThroneOrigin is the position to fall back to if a throne siege is
	// lost. Negative when no claim is in flight.
	ThroneOrigin  int  `json:"throne_origin"`
	LastBattleWon bool `json:"last_battle_won,omitempty"`
	Eliminated    bool `json:"eliminated,omitempty"`
}

// Clone returns a deep copy of the player.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Progress.AllianceMarks = append([]string(nil), p.Progress.AllianceMarks...)
	if p.Enigma != nil {
		e := *p.Enigma
		e.Options = append([]string(nil), p.Enigma.Options...)
		e.Hints = append([]string(nil), p.Enigma.Hints...)
		cp.Enigma = &e
	}
	return &cp
}

// PlayerSpec describes one roster slot when creating a game.
type PlayerSpec struct {
	Name         string `json:"name"`
	ClassID      string `json:"class_id,omitempty"`
	IsAI         bool   `json:"is_ai,omitempty"`
	AIDifficulty string `json:"ai_difficulty,omitempty"`
}

// EncounterKind names what a pending encounter is waiting on.
type EncounterKind string

const (
	EncounterShop     EncounterKind = "shop"
	EncounterResource EncounterKind = "resource"
	EncounterEnigma   EncounterKind = "enigma"
	EncounterThrone   EncounterKind = "throne"
	EncounterBattle   EncounterKind = "battle"
	EncounterSwap     EncounterKind = "mission_swap"
)

// PendingEncounter is the single suspended decision point of a game. At
// most one exists at a time; it belongs to the active player.
type PendingEncounter struct {
	Kind     EncounterKind  `json:"kind"`
	PlayerID string         `json:"player_id"`
	Position int            `json:"position"`
	Options  []string       `json:"options,omitempty"`
	Variant  battle.Variant `json:"variant,omitempty"`
	// OpponentID is set for battle encounters.
	OpponentID string `json:"opponent_id,omitempty"`
	// CardID is set when a drawn life card needs a swap target.
	CardID string `json:"card_id,omitempty"`
	// Origin is the position the player moved from, kept for throne claims.
	Origin int `json:"origin"`
}

// Decision is the payload resolving a pending encounter.
type Decision struct {
	// Action selects the branch: buy, skip, hint, answer, claim, decline,
	// fight or swap.
	Action string `json:"action"`
	// ItemID picks a shop item or resource offer for buy actions.
	ItemID string `json:"item_id,omitempty"`
	// AnswerIndex picks an enigma option for answer actions.
	AnswerIndex int `json:"answer_index"`
	// TargetID picks another player for mission swaps.
	TargetID string `json:"target_id,omitempty"`
	// BattleActions scripts the initiator's choices for battle rounds that
	// take tactical input. Missing rounds fall back to the first option.
	BattleActions []string `json:"battle_actions,omitempty"`
}

// Decision action names.
const (
	DecisionBuy     = "buy"
	DecisionSkip    = "skip"
	DecisionHint    = "hint"
	DecisionAnswer  = "answer"
	DecisionClaim   = "claim"
	DecisionDecline = "decline"
	DecisionFight   = "fight"
	DecisionSwap    = "swap"
)

// GameState is the complete serializable state of one game: roster, turn
// ownership, any suspended decision, the battle-variant pool and the full
// event log. Everything the engine knows can be rebuilt from the initial
// snapshot plus the log.
type GameState struct {
	ConfigName        string            `json:"config_name"`
	Seed              int64             `json:"seed"`
	Players           []*Player         `json:"players"`
	CurrentPlayerID   string            `json:"current_player_id"`
	Status            GameStatus        `json:"status"`
	WinnerID          string            `json:"winner_id,omitempty"`
	WinReason         string            `json:"win_reason,omitempty"`
	RemainingVariants []battle.Variant  `json:"remaining_variants,omitempty"`
	Pending           *PendingEncounter `json:"pending,omitempty"`
	Events            []Event           `json:"events"`
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	cp := &GameState{
		ConfigName:        s.ConfigName,
		Seed:              s.Seed,
		CurrentPlayerID:   s.CurrentPlayerID,
		Status:            s.Status,
		WinnerID:          s.WinnerID,
		WinReason:         s.WinReason,
		RemainingVariants: append([]battle.Variant(nil), s.RemainingVariants...),
		Events:            append([]Event(nil), s.Events...),
	}
	for _, p := range s.Players {
		cp.Players = append(cp.Players, p.Clone())
	}
	if s.Pending != nil {
		pe := *s.Pending
		pe.Options = append([]string(nil), s.Pending.Options...)
		cp.Pending = &pe
	}
	return cp
}

// PlayerByID finds a player in the roster.
func (s *GameState) PlayerByID(id string) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// ActivePlayers returns the non-eliminated roster in turn order.
func (s *GameState) ActivePlayers() []*Player {
	var out []*Player
	for _, p := range s.Players {
		if !p.Eliminated {
			out = append(out, p)
		}
	}
	return out
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() *Player {
	return s.PlayerByID(s.CurrentPlayerID)
}
