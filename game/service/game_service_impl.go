package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

// maxAITurns bounds how many automated turns one request may play out,
// so an all-AI table cannot spin a request forever.
const maxAITurns = 64

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	log      zerolog.Logger
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager, log zerolog.Logger) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		log:      log.With().Str("component", "game_service").Logger(),
	}
}

// getConfigID returns the config_id for a given display name, used for
// consistent API responses.
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, req CreateSessionRequest) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rules *engine.Rules
	var err error
	if req.ConfigName != "" {
		rules, err = s.configs.LoadConfig(req.ConfigName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", req.ConfigName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", req.ConfigName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", req.ConfigName, err)
		}
	} else {
		rules = s.configs.GetDefault()
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	session, err := s.sessions.Create("", rules, req.Players, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	// An automated player may hold the opening turn; play until a human
	// is up before returning the snapshot.
	s.driveAITurns(ctx, session, &TurnOutcome{SessionID: session.ID})
	if err := s.sessions.Save(session.ID); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID).Msg("failed to persist new session")
	}

	configID := req.ConfigName
	if configID == "" {
		configID = s.getConfigID(rules.Name)
	}

	s.log.Info().
		Str("session_id", session.ID).
		Str("config", configID).
		Int("players", len(req.Players)).
		Int64("seed", seed).
		Msg("session created")

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Game.State(),
		Rules:          session.Rules,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Rules.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.Game.State(),
		Rules:          session.Rules,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Rules.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.Game.State(),
			Rules:          sess.Rules,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return err
	}
	s.log.Info().Str("session_id", sessionID).Msg("session deleted")
	return nil
}

// Roll throws the dice for the given player, then plays out any automated
// turns that follow before handing control back.
func (s *gameServiceImpl) Roll(ctx context.Context, sessionID, playerID string) (*TurnOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	roll, err := sess.Game.Roll(playerID)
	if err != nil {
		return nil, err
	}

	outcome := &TurnOutcome{
		SessionID: sessionID,
		Roll:      roll,
	}
	s.driveAITurns(ctx, sess, outcome)
	s.finishOutcome(sess, outcome)

	if err := s.sessions.Save(sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist session after roll")
	}
	return outcome, nil
}

// SubmitDecision resolves the pending encounter with the player's choice,
// then plays out any automated turns that follow.
func (s *gameServiceImpl) SubmitDecision(ctx context.Context, sessionID, playerID string, d engine.Decision) (*TurnOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	decision, err := sess.Game.SubmitDecision(playerID, d)
	if err != nil {
		return nil, err
	}

	outcome := &TurnOutcome{
		SessionID: sessionID,
		Decision:  decision,
	}
	s.driveAITurns(ctx, sess, outcome)
	s.finishOutcome(sess, outcome)

	if err := s.sessions.Save(sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to persist session after decision")
	}
	return outcome, nil
}

// driveAITurns rolls for automated players until a human holds the turn,
// the game ends, or the safety bound is hit.
func (s *gameServiceImpl) driveAITurns(ctx context.Context, sess *Session, outcome *TurnOutcome) {
	delay := sess.Game.Rules().AIDelay()
	for i := 0; i < maxAITurns; i++ {
		state := sess.Game.State()
		if state.Status != engine.StatusActive || state.Pending != nil {
			return
		}
		cur := state.CurrentPlayer()
		if cur == nil || !cur.IsAI {
			return
		}
		if ctx.Err() != nil {
			return
		}
		if delay > 0 {
			time.Sleep(delay)
		}
		roll, err := sess.Game.Roll(cur.ID)
		if err != nil {
			s.log.Error().Err(err).Str("player", cur.Name).Msg("automated roll failed")
			return
		}
		outcome.AITurns = append(outcome.AITurns, roll)
	}
	s.log.Warn().Str("session_id", sess.ID).Msg("automated turn bound reached")
}

// finishOutcome snapshots the final state onto the outcome.
func (s *gameServiceImpl) finishOutcome(sess *Session, outcome *TurnOutcome) {
	state := sess.Game.State()
	outcome.GameState = state
	outcome.Finished = state.Status == engine.StatusFinished
	outcome.WinnerID = state.WinnerID
	if outcome.Finished {
		s.log.Info().
			Str("session_id", sess.ID).
			Str("winner_id", state.WinnerID).
			Str("reason", state.WinReason).
			Msg("game finished")
	}
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.Game.State(), nil
}

// GetHistory returns a paginated slice of the game event log
func (s *gameServiceImpl) GetHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	history := sess.Game.Events()
	total := len(history)

	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var events []engine.Event
	if opts.Order == "desc" {
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			events = append(events, history[i])
		}
	} else {
		if start < total {
			events = history[start:end]
		}
	}
	if events == nil {
		events = []engine.Event{}
	}

	return &HistoryResponse{
		Events:      events,
		TotalEvents: total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available rules configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific rules configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.Rules, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a rules configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error {
	return s.configs.SaveConfig(configName, rules)
}
