package engine

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// playAIGame drives a full automated match and returns the engine. Every
// decision path resolves inline for AI seats, so rolling in a loop
// exercises the whole encounter surface.
func playAIGame(t *testing.T, seats int, seed int64, maxRolls int) *Game {
	t.Helper()
	specs := make([]PlayerSpec, seats)
	for i := range specs {
		specs[i] = PlayerSpec{Name: string(rune('a' + i)), IsAI: true, AIDifficulty: "hard"}
	}
	g, err := NewGame(DefaultRules(), specs, seed)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	for i := 0; i < maxRolls && g.state.Status == StatusActive; i++ {
		cur := g.state.CurrentPlayer()
		if cur == nil {
			t.Fatal("no current player in an active game")
		}
		if _, err := g.Roll(cur.ID); err != nil {
			t.Fatalf("roll %d: %v", i, err)
		}
		if g.state.Pending != nil {
			t.Fatalf("automated player %s left a pending encounter", cur.Name)
		}
	}
	return g
}

func TestReplayReproducesLiveState(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Unix(1700000000, 0) }
	defer func() { now = restore }()

	for _, seed := range []int64{1, 7, 42, 1337} {
		g := playAIGame(t, 3, seed, 400)

		replayed, err := Replay(g.InitialState(), g.Events())
		if err != nil {
			t.Fatalf("seed %d: Replay: %v", seed, err)
		}
		live := g.State()
		if !reflect.DeepEqual(replayed, live) {
			t.Errorf("seed %d: replayed state diverges from live state", seed)
		}
	}
}

func TestReplayDoesNotMutateInputs(t *testing.T) {
	g := playAIGame(t, 2, 9, 50)
	initial := g.InitialState()
	events := g.Events()
	before := initial.Clone()

	if _, err := Replay(initial, events); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if !reflect.DeepEqual(initial, before) {
		t.Error("Replay mutated the initial snapshot")
	}
}

func TestEventLogSequencing(t *testing.T) {
	g := playAIGame(t, 2, 13, 60)
	for i, ev := range g.Events() {
		if ev.Seq != i+1 {
			t.Fatalf("event %d has seq %d", i, ev.Seq)
		}
		if ev.Timestamp.IsZero() {
			t.Fatalf("event %d has no timestamp", i)
		}
	}
}

func TestApplyRejectsMalformedEvents(t *testing.T) {
	g := newTestGame(t, []string{"a", "b"}, 3)

	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"unknown type", Event{Type: EventType("teleport")}, "unknown event type"},
		{"move unknown player", Event{Type: EventMove, PlayerID: "ghost", To: 5}, "unknown player"},
		{"credits unknown player", Event{Type: EventCredits, PlayerID: "ghost", Delta: 10}, "unknown player"},
		{"unknown counter", Event{Type: EventProgress, PlayerID: g.state.Players[0].ID, Counter: "karma"}, "unknown progress counter"},
		{"prompt without payload", Event{Type: EventPrompt, PlayerID: g.state.Players[0].ID}, "without pending payload"},
		{"battle unknown opponent", Event{Type: EventBattle, PlayerID: g.state.Players[0].ID, TargetID: "ghost"}, "unknown opponent"},
	}
	for _, tt := range tests {
		err := apply(g.state.Clone(), tt.ev)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.want)
		}
	}
}

func TestReplaySurfacesBadEvent(t *testing.T) {
	g := newTestGame(t, []string{"a", "b"}, 3)
	events := []Event{{Seq: 1, Type: EventType("warp")}}
	if _, err := Replay(g.InitialState(), events); err == nil {
		t.Error("expected replay to fail on an unknown event")
	}
}

func TestSwapRecomputesEnigmaGate(t *testing.T) {
	g := newTestGame(t, []string{"a", "b"}, 19)
	p := setMission(g, 0, 4)
	other := setMission(g, 1, 1)
	p.CompletedLap = true
	p.Progress.CanAnswerEnigma = true
	other.CompletedLap = true

	g.emit(Event{Type: EventSwap, PlayerID: p.ID, TargetID: other.ID})
	if p.Progress.CanAnswerEnigma {
		t.Error("gate stayed open after the mission left")
	}
	if !other.Progress.CanAnswerEnigma {
		t.Error("gate should open for the lapped new holder")
	}
	if other.Enigma == nil || p.Enigma != nil {
		t.Error("enigma did not travel with the mission")
	}
}
