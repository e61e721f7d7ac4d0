package service

import (
	"context"
	"time"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Roll(ctx context.Context, sessionID, playerID string) (*TurnOutcome, error)
	SubmitDecision(ctx context.Context, sessionID, playerID string, d engine.Decision) (*TurnOutcome, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.Rules, error)
	SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id string, rules *engine.Rules, specs []engine.PlayerSpec, seed int64) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles rules configuration loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.Rules, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.Rules
	SaveConfig(name string, rules *engine.Rules) error
}

// Session represents an active game session
type Session struct {
	ID             string
	Game           *engine.Game
	Rules          *engine.Rules
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
