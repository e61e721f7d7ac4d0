// Package mcp provides a Model Context Protocol interface to the board
// game server.
//
// The package is a thin client: every tool call proxies to the REST API,
// so the MCP process carries no game state of its own and can be
// restarted freely.
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_game: Create a new match from a roster of players
//   - get_session: Get specific session details
//   - list_sessions: List all active sessions
//   - game_state: Get current game state with player standings
//   - roll_dice: Roll two dice for the active player
//   - submit_decision: Resolve a pending encounter
//   - game_history: Retrieve the event log with pagination
//   - list_configs: List available rules profiles
//   - game_instructions: Get the complete rules reference
//
// AI Integration:
//
// The MCP interface enables AI agents to:
//   - Play matches autonomously against the built-in opponents
//   - Manage multiple concurrent sessions
//   - Analyze standings and the event log to make decisions
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
