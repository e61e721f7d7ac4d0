// Package service provides the business logic layer between the transport
// surfaces and the game engine.
//
// The service package handles:
//   - Session lifecycle (create, lookup, listing, deletion)
//   - Turn operations: dice rolls and encounter decisions
//   - Driving automated players until a human holds the turn
//   - Paginated access to the game event log
//   - Rules configuration loading and listing
//
// Architecture:
//
// GameService is the single interface every transport (REST, WebSocket,
// MCP, CLI tools) talks to. It composes a SessionManager for storage and
// a ConfigManager for rules profiles, and serializes game mutations so
// the non-concurrent engine stays safe behind concurrent transports.
//
// Usage:
//
//	svc := service.NewGameService(sessionMgr, configMgr, logger)
//
//	info, err := svc.CreateSession(ctx, service.CreateSessionRequest{
//		ConfigName: "classic",
//		Players: []engine.PlayerSpec{
//			{Name: "Aria"},
//			{Name: "Bardo", IsAI: true, AIDifficulty: "hard"},
//		},
//	})
//
//	outcome, err := svc.Roll(ctx, info.ID, info.GameState.CurrentPlayerID)
//
// After a human roll or decision the service rolls for every automated
// player in turn order until the next human is up, the game ends, or the
// safety bound is reached; those turns come back in TurnOutcome.AITurns.
package service
