package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
	"github.com/ivanValieri/jogotabuleiro1/game/service"
)

// MockSessionManager implements service.SessionManager for testing
type MockSessionManager struct {
	sessions map[string]*service.Session
	saves    int
}

func NewMockSessionManager() *MockSessionManager {
	return &MockSessionManager{
		sessions: make(map[string]*service.Session),
	}
}

func (m *MockSessionManager) Create(id string, rules *engine.Rules, specs []engine.PlayerSpec, seed int64) (*service.Session, error) {
	if id == "" {
		id = fmt.Sprintf("test_%d", len(m.sessions)+1)
	}
	if _, exists := m.sessions[id]; exists {
		return nil, errors.New("session already exists")
	}

	game, err := engine.NewGame(rules, specs, seed)
	if err != nil {
		return nil, err
	}

	session := &service.Session{
		ID:             id,
		Game:           game,
		Rules:          rules,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	m.sessions[id] = session
	return session, nil
}

func (m *MockSessionManager) Get(id string) (*service.Session, error) {
	session, exists := m.sessions[id]
	if !exists {
		return nil, errors.New("session not found")
	}
	return session, nil
}

func (m *MockSessionManager) List() []*service.Session {
	result := make([]*service.Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		result = append(result, session)
	}
	return result
}

func (m *MockSessionManager) Delete(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	delete(m.sessions, id)
	return nil
}

func (m *MockSessionManager) UpdateLastAccessed(id string) error {
	if session, exists := m.sessions[id]; exists {
		session.LastAccessedAt = time.Now()
		return nil
	}
	return errors.New("session not found")
}

func (m *MockSessionManager) Save(id string) error {
	if _, exists := m.sessions[id]; !exists {
		return errors.New("session not found")
	}
	m.saves++
	return nil
}

// MockConfigManager implements service.ConfigManager for testing
type MockConfigManager struct {
	configs map[string]*engine.Rules
}

func NewMockConfigManager() *MockConfigManager {
	classic := engine.DefaultRules()
	quick := engine.DefaultRules()
	quick.Name = "Quick Match"
	quick.StartingCredits = 20000
	return &MockConfigManager{
		configs: map[string]*engine.Rules{
			"classic": classic,
			"quick":   quick,
		},
	}
}

func (m *MockConfigManager) LoadConfig(name string) (*engine.Rules, error) {
	if rules, exists := m.configs[name]; exists {
		return rules, nil
	}
	return nil, errors.New("configuration not found")
}

func (m *MockConfigManager) ListConfigs() ([]*service.ConfigInfo, error) {
	var infos []*service.ConfigInfo
	for id, rules := range m.configs {
		infos = append(infos, &service.ConfigInfo{
			Filename:        id + ".json",
			ConfigID:        id,
			Name:            rules.Name,
			Description:     rules.Description,
			MinPlayers:      rules.MinPlayers,
			MaxPlayers:      rules.MaxPlayers,
			StartingCredits: rules.StartingCredits,
		})
	}
	return infos, nil
}

func (m *MockConfigManager) GetDefault() *engine.Rules {
	return m.configs["classic"]
}

func (m *MockConfigManager) SaveConfig(name string, rules *engine.Rules) error {
	m.configs[name] = rules
	return nil
}

func newTestService() (service.GameService, *MockSessionManager) {
	sessions := NewMockSessionManager()
	return service.NewGameService(sessions, NewMockConfigManager(), zerolog.Nop()), sessions
}

func humanPlayers() []engine.PlayerSpec {
	return []engine.PlayerSpec{{Name: "Aria"}, {Name: "Bardo"}}
}

func seedPtr(v int64) *int64 { return &v }

func TestCreateSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, service.CreateSessionRequest{
		ConfigName: "quick",
		Players:    humanPlayers(),
		Seed:       seedPtr(1),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if info.ConfigName != "quick" {
		t.Errorf("config name %q", info.ConfigName)
	}
	if info.GameState == nil || len(info.GameState.Players) != 2 {
		t.Fatal("session missing game state")
	}
	if info.GameState.Players[0].Credits != 20000 {
		t.Errorf("starting credits %d, want the quick profile's 20000", info.GameState.Players[0].Credits)
	}
}

func TestCreateSessionDefaultsConfig(t *testing.T) {
	svc, _ := newTestService()

	info, err := svc.CreateSession(context.Background(), service.CreateSessionRequest{
		Players: humanPlayers(),
		Seed:    seedPtr(2),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if info.ConfigName != "classic" {
		t.Errorf("default config resolved to %q", info.ConfigName)
	}
}

func TestCreateSessionUnknownConfig(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.CreateSession(context.Background(), service.CreateSessionRequest{
		ConfigName: "legendary",
		Players:    humanPlayers(),
	})
	if err == nil {
		t.Fatal("expected error for unknown config")
	}
}

func TestCreateSessionPlaysOpeningAITurns(t *testing.T) {
	svc, _ := newTestService()

	info, err := svc.CreateSession(context.Background(), service.CreateSessionRequest{
		Players: []engine.PlayerSpec{
			{Name: "Bot", IsAI: true},
			{Name: "Aria"},
		},
		Seed: seedPtr(3),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	state := info.GameState
	if state.Status != engine.StatusActive {
		return
	}
	cur := state.PlayerByID(state.CurrentPlayerID)
	if cur == nil || cur.IsAI {
		t.Error("opening automated turn was not played out")
	}
}

func TestRollAndTurnOutcome(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, service.CreateSessionRequest{
		Players: []engine.PlayerSpec{
			{Name: "Aria"},
			{Name: "Bot", IsAI: true},
		},
		Seed: seedPtr(11),
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	outcome, err := svc.Roll(ctx, info.ID, info.GameState.CurrentPlayerID)
	if err != nil {
		t.Fatalf("Roll: %v", err)
	}
	if outcome.Roll == nil {
		t.Fatal("outcome missing the roll")
	}
	if outcome.GameState == nil {
		t.Fatal("outcome missing the state snapshot")
	}
	// After the human's turn either a decision is pending for them or the
	// automated player has already been rolled for.
	if outcome.GameState.Status == engine.StatusActive && outcome.GameState.Pending == nil {
		if len(outcome.AITurns) == 0 {
			t.Error("automated turn was not driven")
		}
		cur := outcome.GameState.PlayerByID(outcome.GameState.CurrentPlayerID)
		if cur != nil && cur.IsAI {
			t.Error("turn handed back while an automated player is up")
		}
	}
	if sessions.saves == 0 {
		t.Error("session not persisted after the roll")
	}
}

func TestRollUnknownSession(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Roll(context.Background(), "ghost", "p1"); err == nil {
		t.Error("expected error for unknown session")
	}
}

func TestSubmitDecisionPropagatesEngineErrors(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	info, _ := svc.CreateSession(ctx, service.CreateSessionRequest{
		Players: humanPlayers(),
		Seed:    seedPtr(13),
	})

	_, err := svc.SubmitDecision(ctx, info.ID, info.GameState.CurrentPlayerID,
		engine.Decision{Action: engine.DecisionSkip})
	if !errors.Is(err, engine.ErrNoDecisionPending) {
		t.Errorf("expected ErrNoDecisionPending, got %v", err)
	}
}

func TestGetSessionAndList(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, _ := svc.CreateSession(ctx, service.CreateSessionRequest{
		Players: humanPlayers(), Seed: seedPtr(5),
	})

	got, err := svc.GetSession(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("session ID %q", got.ID)
	}

	list, err := svc.ListSessions(ctx)
	if err != nil {
		t.Fatalf("ListSessions: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("listed %d sessions", len(list))
	}
}

func TestDeleteSession(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, _ := svc.CreateSession(ctx, service.CreateSessionRequest{
		Players: humanPlayers(), Seed: seedPtr(6),
	})
	if err := svc.DeleteSession(ctx, created.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, err := svc.GetSession(ctx, created.ID); err == nil {
		t.Error("deleted session still reachable")
	}
}

func TestGetHistoryPagination(t *testing.T) {
	svc, sessions := newTestService()
	ctx := context.Background()

	created, _ := svc.CreateSession(ctx, service.CreateSessionRequest{
		Players: humanPlayers(), Seed: seedPtr(7),
	})

	// Play a few turns to grow the log.
	for i := 0; i < 4; i++ {
		sess, _ := sessions.Get(created.ID)
		state := sess.Game.State()
		if state.Status != engine.StatusActive {
			break
		}
		if state.Pending != nil {
			svc.SubmitDecision(ctx, created.ID, state.Pending.PlayerID,
				engine.Decision{Action: engine.DecisionSkip})
			continue
		}
		svc.Roll(ctx, created.ID, state.CurrentPlayerID)
	}

	first, err := svc.GetHistory(ctx, created.ID, service.HistoryOptions{Page: 1, Limit: 3, Order: "asc"})
	if err != nil {
		t.Fatalf("GetHistory: %v", err)
	}
	if len(first.Events) != 3 {
		t.Fatalf("page 1 holds %d events, want 3", len(first.Events))
	}
	if first.Events[0].Seq != 1 {
		t.Errorf("ascending page 1 starts at seq %d", first.Events[0].Seq)
	}
	if !first.HasNext || first.HasPrevious {
		t.Errorf("page flags HasNext=%v HasPrevious=%v", first.HasNext, first.HasPrevious)
	}

	desc, err := svc.GetHistory(ctx, created.ID, service.HistoryOptions{Page: 1, Limit: 3})
	if err != nil {
		t.Fatalf("GetHistory desc: %v", err)
	}
	if desc.Events[0].Seq != desc.TotalEvents {
		t.Errorf("descending page 1 starts at seq %d of %d", desc.Events[0].Seq, desc.TotalEvents)
	}
}

func TestListConfigs(t *testing.T) {
	svc, _ := newTestService()
	configs, err := svc.ListConfigs(context.Background())
	if err != nil {
		t.Fatalf("ListConfigs: %v", err)
	}
	if len(configs) != 2 {
		t.Errorf("listed %d configs", len(configs))
	}
}
