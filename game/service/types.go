package service

import (
	"time"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	ConfigName     string            `json:"config_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Rules          *engine.Rules     `json:"rules"`
}

// CreateSessionRequest carries everything needed to start a match. A nil
// Seed means the service picks one from the clock.
type CreateSessionRequest struct {
	ConfigName string              `json:"config_name,omitempty"`
	Players    []engine.PlayerSpec `json:"players"`
	Seed       *int64              `json:"seed,omitempty"`
}

// TurnOutcome is the result of a roll or a submitted decision, including
// any automated turns the service played out afterwards.
type TurnOutcome struct {
	SessionID string                 `json:"session_id"`
	Roll      *engine.RollResult     `json:"roll,omitempty"`
	Decision  *engine.DecisionResult `json:"decision,omitempty"`
	AITurns   []*engine.RollResult   `json:"ai_turns,omitempty"`
	GameState *engine.GameState      `json:"game_state"`
	Finished  bool                   `json:"finished"`
	WinnerID  string                 `json:"winner_id,omitempty"`
}

// HistoryOptions configures event history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains a paginated slice of the game event log
type HistoryResponse struct {
	Events      []engine.Event `json:"events"`
	TotalEvents int            `json:"total_events"`
	Page        int            `json:"page"`
	PageSize    int            `json:"page_size"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// ConfigInfo provides information about a rules configuration
type ConfigInfo struct {
	Filename        string `json:"filename"`
	ConfigID        string `json:"config_id"` // The identifier to use for session creation
	Name            string `json:"name"`      // Display name
	Description     string `json:"description"`
	MinPlayers      int    `json:"min_players"`
	MaxPlayers      int    `json:"max_players"`
	StartingCredits int    `json:"starting_credits"`
}
