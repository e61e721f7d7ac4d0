package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/ivanValieri/jogotabuleiro1/game/battle"
	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// missionEnigmaID is the mission gated behind a completed lap.
const missionEnigmaID = board.MissionEnigma

// Sentinel errors for rejected actions. Rejections never mutate state.
var (
	ErrNotYourTurn       = errors.New("not your turn")
	ErrGameFinished      = errors.New("game already finished")
	ErrInsufficientFunds = errors.New("insufficient credits")
	ErrInvalidChoice     = errors.New("invalid choice")
	ErrDecisionPending   = errors.New("a decision is pending")
	ErrNoDecisionPending = errors.New("no decision pending")
)

// Game is the turn and cell-resolution engine for one match. It is not
// safe for concurrent use; callers serialize access per game.
type Game struct {
	rules   *Rules
	rng     *rand.Rand
	state   *GameState
	initial *GameState

	// rollDice is swappable in tests; by default it throws two fair dice
	// from the game's random source.
	rollDice func() (int, int)
}

// NewGame builds a match from a roster. Mission assignment shuffles the
// eight missions and deals them out, reshuffling only once the pool is
// exhausted; rune-mission players receive their randomized enigma up
// front. The seed drives every random draw of the match.
func NewGame(rules *Rules, specs []PlayerSpec, seed int64) (*Game, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if len(specs) < rules.MinPlayers || len(specs) > rules.MaxPlayers {
		return nil, fmt.Errorf("player count %d outside [%d,%d]", len(specs), rules.MinPlayers, rules.MaxPlayers)
	}

	rng := rand.New(rand.NewSource(seed))
	state := &GameState{
		ConfigName:        rules.Name,
		Seed:              seed,
		Status:            StatusActive,
		RemainingVariants: append([]battle.Variant(nil), battle.Variants...),
	}

	missions := dealMissions(rng, len(specs))
	for i, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("player %d has no name", i+1)
		}
		p := &Player{
			ID:           uuid.NewString(),
			Name:         spec.Name,
			TurnOrder:    i + 1,
			Position:     0,
			Credits:      rules.StartingCredits,
			MissionID:    missions[i],
			ClassID:      spec.ClassID,
			IsAI:         spec.IsAI,
			AIDifficulty: spec.AIDifficulty,
			ThroneOrigin: -1,
		}
		if p.IsAI && p.AIDifficulty == "" {
			p.AIDifficulty = "medium"
		}
		if p.MissionID == missionEnigmaID {
			e := board.AssignEnigma(rng)
			p.Enigma = &e
		}
		state.Players = append(state.Players, p)
	}
	state.CurrentPlayerID = state.Players[0].ID

	g := &Game{
		rules:   rules,
		rng:     rng,
		state:   state,
		initial: state.Clone(),
	}
	g.rollDice = func() (int, int) {
		return 1 + g.rng.Intn(6), 1 + g.rng.Intn(6)
	}
	return g, nil
}

// Restore rebuilds a match from a persisted snapshot and its event log.
// The random source is reseeded from the original seed offset by the log
// length, so a restored game stays deterministic without reproducing the
// exact draws the unsaved continuation would have made.
func Restore(rules *Rules, initial *GameState, events []Event) (*Game, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if initial == nil {
		return nil, errors.New("restore needs an initial snapshot")
	}
	state, err := Replay(initial, events)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}

	g := &Game{
		rules:   rules,
		rng:     rand.New(rand.NewSource(initial.Seed + int64(len(events)))),
		state:   state,
		initial: initial.Clone(),
	}
	g.rollDice = func() (int, int) {
		return 1 + g.rng.Intn(6), 1 + g.rng.Intn(6)
	}
	return g, nil
}

// dealMissions shuffles mission IDs and deals one per seat, reshuffling
// when the pool runs out.
func dealMissions(rng *rand.Rand, n int) []int {
	var out []int
	for len(out) < n {
		pool := make([]int, len(board.Missions))
		for i, m := range board.Missions {
			pool[i] = m.ID
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		out = append(out, pool...)
	}
	return out[:n]
}

// Rules returns the active rules profile.
func (g *Game) Rules() *Rules { return g.rules }

// State returns a deep copy of the current state.
func (g *Game) State() *GameState { return g.state.Clone() }

// InitialState returns a deep copy of the pre-game snapshot used as the
// replay base.
func (g *Game) InitialState() *GameState { return g.initial.Clone() }

// Events returns a copy of the full event log.
func (g *Game) Events() []Event {
	return append([]Event(nil), g.state.Events...)
}

// emit appends an event to the log and folds it into the live state
// through the same reducer replay uses.
func (g *Game) emit(ev Event) {
	ev.Seq = len(g.state.Events) + 1
	ev.Timestamp = now()
	if err := apply(g.state, ev); err != nil {
		// apply rejects only malformed events; emitting one is a
		// programming error in the resolver that built it.
		panic(fmt.Sprintf("engine emitted unappliable event: %v", err))
	}
	g.state.Events = append(g.state.Events, ev)
}

// RollResult reports everything one roll did, including any encounter now
// waiting on the player.
type RollResult struct {
	PlayerID    string            `json:"player_id"`
	Die1        int               `json:"die1"`
	Die2        int               `json:"die2"`
	Total       int               `json:"total"`
	From        int               `json:"from"`
	To          int               `json:"to"`
	Laps        int               `json:"laps"`
	PassedStart bool              `json:"passed_start"`
	Trail       []int             `json:"trail"`
	Cell        board.Cell        `json:"cell"`
	Pending     *PendingEncounter `json:"pending,omitempty"`
	Finished    bool              `json:"finished"`
	WinnerID    string            `json:"winner_id,omitempty"`
	Events      []Event           `json:"events"`
}

// Roll advances the active player by two dice and resolves the landing
// cell. A roll by anyone but the active player is rejected without any
// state change; a roll while a decision is pending is rejected too.
func (g *Game) Roll(playerID string) (*RollResult, error) {
	if g.state.Status != StatusActive {
		return nil, ErrGameFinished
	}
	cur := g.state.CurrentPlayer()
	if cur == nil || cur.ID != playerID {
		return nil, ErrNotYourTurn
	}
	if g.state.Pending != nil {
		return nil, ErrDecisionPending
	}

	firstSeq := len(g.state.Events)
	die1, die2 := g.rollDice()
	total := die1 + die2

	from := cur.Position
	to, laps, passed := computeMove(from, total)

	g.emit(Event{
		Type: EventRoll, PlayerID: cur.ID,
		Die1: die1, Die2: die2, Dice: total,
		Message: fmt.Sprintf("%s rolled %d+%d", cur.Name, die1, die2),
	})
	g.emit(Event{
		Type: EventMove, PlayerID: cur.ID,
		From: from, To: to, Laps: laps, PassedStart: passed,
		Message: fmt.Sprintf("%s moved from %d to %d", cur.Name, from, to),
	})
	if passed && g.rules.PassStartBonus > 0 {
		g.emit(Event{
			Type: EventCredits, PlayerID: cur.ID,
			Delta:  g.rules.PassStartBonus,
			Reason: "pass_start",
			Message: fmt.Sprintf("%s passed the starting gate: +%d credits",
				cur.Name, g.rules.PassStartBonus),
		})
	}

	cell := board.Cells[to]
	if err := g.resolveLanding(cur, cell, from); err != nil {
		return nil, err
	}
	if g.state.Status == StatusActive && g.state.Pending == nil {
		g.advanceTurn(cur)
	}

	return &RollResult{
		PlayerID:    cur.ID,
		Die1:        die1,
		Die2:        die2,
		Total:       total,
		From:        from,
		To:          to,
		Laps:        laps,
		PassedStart: passed,
		Trail:       trail(from, to),
		Cell:        cell,
		Pending:     g.pendingCopy(),
		Finished:    g.state.Status == StatusFinished,
		WinnerID:    g.state.WinnerID,
		Events:      append([]Event(nil), g.state.Events[firstSeq:]...),
	}, nil
}

// computeMove applies a roll total to a ring position. passedStart is
// judged on the pre-modulo sum crossing the boundary.
func computeMove(from, total int) (to, laps int, passedStart bool) {
	raw := from + total
	return raw % board.Size, raw / board.Size, raw >= board.Size
}

// trail lists the unit steps from one position to the next. Presentation
// only; the final entry always equals the landing position.
func trail(from, to int) []int {
	steps := board.RingDistance(from, to)
	out := make([]int, 0, steps)
	for i := 1; i <= steps; i++ {
		out = append(out, (from+i)%board.Size)
	}
	return out
}

// DecisionResult reports what a submitted decision did.
type DecisionResult struct {
	PlayerID string            `json:"player_id"`
	Pending  *PendingEncounter `json:"pending,omitempty"`
	Finished bool              `json:"finished"`
	WinnerID string            `json:"winner_id,omitempty"`
	Events   []Event           `json:"events"`
}

// SubmitDecision resolves the pending encounter with the player's choice.
// Invalid payloads are rejected whole: the encounter stays pending and no
// state changes.
func (g *Game) SubmitDecision(playerID string, d Decision) (*DecisionResult, error) {
	if g.state.Status != StatusActive {
		return nil, ErrGameFinished
	}
	pe := g.state.Pending
	if pe == nil {
		return nil, ErrNoDecisionPending
	}
	if pe.PlayerID != playerID {
		return nil, ErrNotYourTurn
	}
	player := g.state.PlayerByID(playerID)
	if player == nil {
		return nil, fmt.Errorf("pending encounter for unknown player %q", playerID)
	}

	firstSeq := len(g.state.Events)
	if err := g.resolveDecision(player, pe, d); err != nil {
		return nil, err
	}
	g.emit(Event{Type: EventPromptDone, PlayerID: playerID})
	if g.state.Status == StatusActive {
		g.advanceTurn(player)
	}

	return &DecisionResult{
		PlayerID: playerID,
		Pending:  g.pendingCopy(),
		Finished: g.state.Status == StatusFinished,
		WinnerID: g.state.WinnerID,
		Events:   append([]Event(nil), g.state.Events[firstSeq:]...),
	}, nil
}

func (g *Game) pendingCopy() *PendingEncounter {
	if g.state.Pending == nil {
		return nil
	}
	pe := *g.state.Pending
	pe.Options = append([]string(nil), g.state.Pending.Options...)
	return &pe
}

// advanceTurn hands the turn to the next active player after the given
// one. Works whether or not that player survived their own turn.
func (g *Game) advanceTurn(after *Player) {
	active := g.state.ActivePlayers()
	if len(active) == 0 {
		return
	}
	sort.Slice(active, func(i, j int) bool { return active[i].TurnOrder < active[j].TurnOrder })

	next := active[0]
	for _, p := range active {
		if p.TurnOrder > after.TurnOrder {
			next = p
			break
		}
	}
	g.emit(Event{
		Type:     EventTurn,
		PlayerID: after.ID,
		TargetID: next.ID,
		Message:  fmt.Sprintf("turn passes to %s", next.Name),
	})
}

// pickVariant selects the next battle variant from the no-repeat pool.
// The pool itself is updated by the battle event's reducer so replays see
// the same sequence.
func (g *Game) pickVariant() battle.Variant {
	pool := g.state.RemainingVariants
	if len(pool) == 0 {
		pool = battle.Variants
	}
	return pool[g.rng.Intn(len(pool))]
}
