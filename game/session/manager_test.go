package session

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
	"github.com/ivanValieri/jogotabuleiro1/game/service"
)

func testSpecs() []engine.PlayerSpec {
	return []engine.PlayerSpec{
		{Name: "Aria"},
		{Name: "Bardo", IsAI: true},
	}
}

func newTestManager() *Manager {
	return NewManager(zerolog.Nop())
}

func TestManager_Create(t *testing.T) {
	m := newTestManager()

	sess, err := m.Create("abcd", engine.DefaultRules(), testSpecs(), 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if sess.ID != "abcd" {
		t.Errorf("session ID %q", sess.ID)
	}
	if sess.Game == nil {
		t.Fatal("session has no game")
	}
	if len(sess.Game.State().Players) != 2 {
		t.Errorf("game has %d players", len(sess.Game.State().Players))
	}

	if _, err := m.Create("ABCD", engine.DefaultRules(), testSpecs(), 1); !errors.Is(err, ErrSessionAlreadyExists) {
		t.Errorf("expected ErrSessionAlreadyExists for case-variant ID, got %v", err)
	}
}

func TestManager_CreateGeneratesID(t *testing.T) {
	m := newTestManager()

	sess, err := m.Create("", engine.DefaultRules(), testSpecs(), 2)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(sess.ID) != 4 {
		t.Errorf("generated ID %q, want 4 hex chars", sess.ID)
	}
}

func TestManager_CreateRejectsBadRoster(t *testing.T) {
	m := newTestManager()
	if _, err := m.Create("", engine.DefaultRules(), []engine.PlayerSpec{{Name: "solo"}}, 3); err == nil {
		t.Error("expected error for single-player roster")
	}
	if m.Count() != 0 {
		t.Error("failed creation left a session behind")
	}
}

func TestManager_GetCaseInsensitive(t *testing.T) {
	m := newTestManager()
	created, err := m.Create("GaMe", engine.DefaultRules(), testSpecs(), 4)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, id := range []string{"game", "GAME", "GaMe"} {
		got, err := m.Get(id)
		if err != nil {
			t.Fatalf("Get(%q): %v", id, err)
		}
		if got != created {
			t.Errorf("Get(%q) returned a different session", id)
		}
	}

	if _, err := m.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_ListAndDelete(t *testing.T) {
	m := newTestManager()
	m.Create("one", engine.DefaultRules(), testSpecs(), 5)
	m.Create("two", engine.DefaultRules(), testSpecs(), 6)

	if got := len(m.List()); got != 2 {
		t.Fatalf("List returned %d sessions", got)
	}

	if err := m.Delete("ONE"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Count() != 1 {
		t.Errorf("count after delete %d", m.Count())
	}
	if err := m.Delete("one"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_UpdateLastAccessed(t *testing.T) {
	m := newTestManager()
	sess, _ := m.Create("tick", engine.DefaultRules(), testSpecs(), 7)
	before := sess.LastAccessedAt

	time.Sleep(5 * time.Millisecond)
	if err := m.UpdateLastAccessed("TICK"); err != nil {
		t.Fatalf("UpdateLastAccessed: %v", err)
	}
	if !sess.LastAccessedAt.After(before) {
		t.Error("last accessed time did not move forward")
	}

	if err := m.UpdateLastAccessed("gone"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManager_CleanupExpiredSessions(t *testing.T) {
	m := newTestManager()
	stale, _ := m.Create("old", engine.DefaultRules(), testSpecs(), 8)
	m.Create("new", engine.DefaultRules(), testSpecs(), 9)
	stale.LastAccessedAt = time.Now().Add(-2 * time.Hour)

	removed := m.CleanupExpiredSessions(time.Hour)
	if removed != 1 {
		t.Errorf("removed %d sessions, want 1", removed)
	}
	if _, err := m.Get("old"); !errors.Is(err, ErrSessionNotFound) {
		t.Error("stale session still reachable")
	}
	if _, err := m.Get("new"); err != nil {
		t.Errorf("fresh session dropped: %v", err)
	}
}

func TestManager_SaveWithoutPersistence(t *testing.T) {
	m := newTestManager()
	m.Create("mem", engine.DefaultRules(), testSpecs(), 10)
	if err := m.Save("mem"); err != nil {
		t.Errorf("Save without persistence should be a no-op, got %v", err)
	}
}

// fakeConfigManager satisfies service.ConfigManager for persistence tests.
type fakeConfigManager struct {
	rules *engine.Rules
}

func newFakeConfigManager() *fakeConfigManager {
	return &fakeConfigManager{rules: engine.DefaultRules()}
}

func (f *fakeConfigManager) LoadConfig(name string) (*engine.Rules, error) {
	return f.rules, nil
}

func (f *fakeConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	return []*service.ConfigInfo{{
		Filename: "classic.json",
		ConfigID: "classic",
		Name:     f.rules.Name,
	}}, nil
}

func (f *fakeConfigManager) GetDefault() *engine.Rules { return f.rules }

func (f *fakeConfigManager) SaveConfig(name string, rules *engine.Rules) error { return nil }
