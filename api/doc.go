// Package api provides the HTTP REST surface for the board game server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a new match from a roster and config
//   - GET /api/sessions - List sessions (sort, order, limit query params)
//   - GET /api/sessions/{id} - Get one session
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current game state snapshot
//   - POST /api/sessions/{id}/roll - Roll the dice for the active player
//   - POST /api/sessions/{id}/decision - Resolve a pending encounter
//   - GET /api/sessions/{id}/history - Paginated event log
//
// Configuration:
//   - GET /api/configs - List available rules profiles
//   - GET /api/configs/{name} - Get one rules profile
//   - POST /api/configs - Save a new rules profile
//
// Other:
//   - GET /health - Liveness probe
//   - GET /ws?session={id} - WebSocket upgrade for spectators
//
// Request/Response Format:
//
// All endpoints accept and return JSON. A roll is submitted as:
//
//	{"player_id": "p1"}
//
// and a decision as:
//
//	{
//	  "player_id": "p1",
//	  "decision": {
//	    "action": "buy|skip|hint|answer|claim|decline|fight|swap",
//	    "item_id": "shield_wood",     // buy actions
//	    "answer_index": 2,            // answer actions
//	    "target_id": "p2",            // swap actions
//	    "battle_actions": ["attack"]  // fight actions
//	  }
//	}
//
// Both return a TurnOutcome carrying the roll or decision result, any
// automated turns that were driven afterwards and the resulting state.
//
// Errors are returned as JSON with appropriate HTTP status codes:
//
//	{"error": "error message"}
package api
