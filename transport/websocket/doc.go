// Package websocket provides real-time spectator transport for running
// matches.
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// pair of goroutines that manage reading, writing and cleanup.
//
// Connections are session-aware: clients specify the match they want to
// watch via query parameter (?session=ab12) when establishing the
// connection, and state updates are broadcast only to clients attached to
// that session.
//
// Messages are JSON-encoded envelopes carrying either a full game state
// snapshot (event "state_update") or a named event with arbitrary data.
// Clients do not send game input over the socket; turns are submitted
// through the REST API and the resulting state fans out here.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run()
//
//	// after each turn
//	hub.BroadcastToSession(sessionID, outcome.GameState)
package websocket
