package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ivanValieri/jogotabuleiro1/game/board"
	"github.com/ivanValieri/jogotabuleiro1/game/engine"
	"github.com/ivanValieri/jogotabuleiro1/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"FlowQuest Board Game",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`FlowQuest Board Game - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
A race around a 40-cell ring board. Each player carries a secret mission;
the first to complete theirs wins. Rolls move you clockwise and the cell
you land on resolves an encounter: shops, resources, enigmas, battles,
the sacred throne and more.

AVAILABLE TOOLS:
- create_game: Create a new match from a roster of players
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Get the current game state
- roll_dice: Roll two dice for the active player
- submit_decision: Resolve a pending encounter (buy/skip/hint/answer/claim/decline/fight/swap)
- game_history: View the event log with pagination
- list_configs: List available rules profiles
- game_instructions: Get the complete rules reference

TURN FLOW:
1. Call game_state to see whose turn it is and whether a decision is pending.
2. If no decision is pending, call roll_dice for the current player.
3. If the roll lands on an encounter cell, a pending decision is returned;
   resolve it with submit_decision before anyone can roll again.
4. Automated opponents play their turns on the server between your calls.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_game",
		Description: "Create a new match with a roster of human and AI players",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rules profile to use (optional, defaults to classic)",
				},
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name":          map[string]interface{}{"type": "string"},
							"is_ai":         map[string]interface{}{"type": "boolean"},
							"ai_difficulty": map[string]interface{}{"type": "string", "enum": []string{"easy", "medium", "hard"}},
						},
					},
					"description": "Roster of 2 to 6 players",
				},
				"seed": map[string]interface{}{
					"type":        "integer",
					"description": "Dice seed for reproducible matches (optional)",
				},
			},
			Required: []string{"players"},
		},
	}, c.handleCreateGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "roll_dice",
		Description: "Roll two dice for the active player and resolve the landing cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the player rolling (must be the active player)",
				},
			},
			Required: []string{"session_id", "player_id"},
		},
	}, c.handleRollDice)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "submit_decision",
		Description: "Resolve the pending encounter for a player",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"player_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the player deciding",
				},
				"action": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"buy", "skip", "hint", "answer", "claim", "decline", "fight", "swap"},
					"description": "Which branch of the encounter to take",
				},
				"item_id": map[string]interface{}{
					"type":        "string",
					"description": "Shop item or resource offer ID for buy actions",
				},
				"answer_index": map[string]interface{}{
					"type":        "integer",
					"description": "Option index for enigma answer actions",
				},
				"target_id": map[string]interface{}{
					"type":        "string",
					"description": "Target player ID for mission swap actions",
				},
			},
			Required: []string{"session_id", "player_id", "action"},
		},
	}, c.handleSubmitDecision)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_history",
		Description: "Get the event log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameHistory)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rules profiles",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the complete rules reference",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// Tool handlers

func (c *Client) handleCreateGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)
	playersRaw, _ := args["players"].([]interface{})

	players := make([]map[string]interface{}, 0, len(playersRaw))
	for _, p := range playersRaw {
		if spec, ok := p.(map[string]interface{}); ok {
			players = append(players, spec)
		}
	}

	body := map[string]interface{}{
		"players": players,
	}
	if configName != "" {
		body["config_name"] = configName
	}
	if seed, ok := args["seed"].(float64); ok {
		body["seed"] = int64(seed)
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nConfig: %s\n\n%s",
		session.ID, session.ConfigName, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Config: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRollDice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)

	body := map[string]interface{}{
		"player_id": playerID,
	}

	var outcome service.TurnOutcome
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/roll", sessionID), body, &outcome)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnOutcome(&outcome)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleSubmitDecision(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playerID, _ := args["player_id"].(string)
	action, _ := args["action"].(string)

	decision := map[string]interface{}{
		"action": action,
	}
	if itemID, ok := args["item_id"].(string); ok && itemID != "" {
		decision["item_id"] = itemID
	}
	if answerIndex, ok := args["answer_index"].(float64); ok {
		decision["answer_index"] = int(answerIndex)
	}
	if targetID, ok := args["target_id"].(string); ok && targetID != "" {
		decision["target_id"] = targetID
	}

	body := map[string]interface{}{
		"player_id": playerID,
		"decision":  decision,
	}

	var outcome service.TurnOutcome
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/decision", sessionID), body, &outcome)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	response := formatTurnOutcome(&outcome)
	return mcp.NewToolResultText(response), nil
}

func (c *Client) handleGameHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var history service.HistoryResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/history%s", sessionID, params), nil, &history)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatHistory(&history)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Configurations:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s (%s)\n  %s\n  Players: %d-%d, Starting credits: %d\n\n",
			config.Name, config.ConfigID, config.Description,
			config.MinPlayers, config.MaxPlayers, config.StartingCredits)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `FlowQuest Board Game - Complete Rules

GAME OBJECTIVE:
Race around the 40-cell ring board and complete your secret mission before
anyone else. Every player starts on cell 0 with a pile of credits and one
of eight missions, dealt at random.

TURN FLOW:
1. The active player rolls two dice and moves clockwise.
2. The cell they land on resolves immediately. Some cells only adjust
   credits; others suspend the turn on a decision the player must submit.
3. When the turn fully resolves, play passes to the next player.
4. Passing the start cell pays a lap bonus and completes the player's lap.

CELL TYPES:
• start - lap bonus when passed
• shop - buy one equipment item or skip
• resource - buy gold, gems or artifacts (resource-mission players bank them)
• relic - pick up an ancient relic
• enigma - buy hints; rune-mission players who finished a lap may answer
• battle - duel another player for credits
• life_card - draw a life card (one card swaps missions with a rival)
• alliance - collect the region's alliance mark
• throne - claim the sacred throne after winning a battle, then defend it
• normal - usually quiet, occasionally a small flavor payout

MISSIONS:
1. Keeper of Relics - collect 3 ancient relics
2. Master of Resources - amass 12 resource units
3. Arena Champion - win 3 direct duels
4. Rune Enigma - complete a lap, then answer the rune enigma correctly
5. Alliance Builder - collect an alliance mark in all 4 regions
6. Chosen of the Oracle - fulfil 3 prophecies
7. Usurper of the Empty Throne - claim and defend the sacred throne
8. Awakening of the Flow - activate 5 energy nodes

DECISIONS:
When a roll returns a pending encounter, resolve it with submit_decision:
• buy + item_id - purchase a shop item or resource offer
• skip - walk away from the offer
• hint - buy an enigma hint
• answer + answer_index - attempt the enigma (wrong answers eliminate you!)
• claim / decline - attempt or refuse a throne siege
• fight - accept a battle
• swap + target_id - trade missions with a rival (perfect disguise card)

ELIMINATION AND ATTRITION:
A wrong enigma answer eliminates the player. Players who cannot pay a debt
drop to zero credits. A lone human survives automated opponents going broke;
the last player standing wins if everyone else is eliminated.

CREDITS:
Credits never go below zero. Purchases that cost more than you hold are
rejected and the offer stays open.

SESSION MANAGEMENT:
- Multiple matches can run simultaneously
- Each session has a unique 4-character ID
- Automated opponents take their turns on the server between your calls`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nConfig: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("Status: %s", state.Status))
	if state.Status == engine.StatusFinished {
		if winner := state.PlayerByID(state.WinnerID); winner != nil {
			b.WriteString(fmt.Sprintf(" | Winner: %s (%s)", winner.Name, state.WinReason))
		}
	} else if cur := state.CurrentPlayer(); cur != nil {
		b.WriteString(fmt.Sprintf(" | Turn: %s", cur.Name))
	}
	b.WriteString("\n\n")

	for _, p := range state.Players {
		marker := " "
		if p.ID == state.CurrentPlayerID {
			marker = ">"
		}
		status := ""
		if p.Eliminated {
			status = " [ELIMINATED]"
		}
		kind := "human"
		if p.IsAI {
			kind = "ai/" + p.AIDifficulty
		}
		title := fmt.Sprintf("mission %d", p.MissionID)
		if m, err := board.MissionByID(p.MissionID); err == nil {
			title = m.Title
		}
		b.WriteString(fmt.Sprintf("%s %s (%s, %s)%s\n", marker, p.Name, p.ID, kind, status))
		b.WriteString(fmt.Sprintf("    cell %d (%s) | credits %d | laps %d | %s\n",
			p.Position, board.Cells[p.Position].Type, p.Credits, p.Laps, title))
		if progress := formatProgress(p); progress != "" {
			b.WriteString("    " + progress + "\n")
		}
	}

	if pe := state.Pending; pe != nil {
		b.WriteString(fmt.Sprintf("\nPENDING %s for %s at cell %d", pe.Kind, pe.PlayerID, pe.Position))
		if pe.OpponentID != "" {
			b.WriteString(fmt.Sprintf(" vs %s", pe.OpponentID))
		}
		b.WriteString("\n")
		if len(pe.Options) > 0 {
			b.WriteString("Options:\n")
			for i, opt := range pe.Options {
				b.WriteString(fmt.Sprintf("  %d. %s\n", i, opt))
			}
		}
	}

	return b.String()
}

func formatProgress(p *engine.Player) string {
	pr := p.Progress
	switch p.MissionID {
	case board.MissionRelics:
		return fmt.Sprintf("relics %d/%d", pr.Relics, board.RelicsNeeded)
	case board.MissionResources:
		return fmt.Sprintf("resources %d/%d", pr.Resources, board.ResourcesNeeded)
	case board.MissionDuels:
		return fmt.Sprintf("duels won %d/%d", pr.DuelsWon, board.DuelsNeeded)
	case board.MissionEnigma:
		gate := "lap not complete"
		if pr.CanAnswerEnigma {
			gate = "may answer"
		}
		return fmt.Sprintf("hints %d/%d, %s", pr.EnigmaHints, board.EnigmaHintCap, gate)
	case board.MissionAlliance:
		return fmt.Sprintf("alliance marks %d/%d", len(pr.AllianceMarks), board.AllianceNeeded)
	case board.MissionProphecy:
		return fmt.Sprintf("prophecies %d/%d", pr.Prophecies, board.PropheciesNeeded)
	case board.MissionThrone:
		defended := "not defended"
		if pr.ThroneDefended {
			defended = "defended"
		}
		return fmt.Sprintf("throne battles %d, %s", pr.ThroneBattlesWon, defended)
	case board.MissionEnergy:
		return fmt.Sprintf("energy nodes %d/%d", pr.EnergyPoints, board.EnergyNeeded)
	}
	return ""
}

func formatTurnOutcome(outcome *service.TurnOutcome) string {
	var b strings.Builder

	if roll := outcome.Roll; roll != nil {
		b.WriteString(fmt.Sprintf("Rolled %d+%d=%d: cell %d -> %d (%s)\n",
			roll.Die1, roll.Die2, roll.Total, roll.From, roll.To, roll.Cell.Type))
		if roll.PassedStart {
			b.WriteString("Passed the start cell, lap bonus collected\n")
		}
	}

	if dec := outcome.Decision; dec != nil {
		b.WriteString(fmt.Sprintf("Decision resolved for %s\n", dec.PlayerID))
	}

	for _, ai := range outcome.AITurns {
		b.WriteString(fmt.Sprintf("Opponent %s rolled %d+%d, cell %d -> %d (%s)\n",
			ai.PlayerID, ai.Die1, ai.Die2, ai.From, ai.To, ai.Cell.Type))
	}

	if outcome.Finished {
		b.WriteString(fmt.Sprintf("\nGAME OVER. Winner: %s\n", outcome.WinnerID))
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(outcome.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	result := fmt.Sprintf("Event Log (Page %d/%d) - Total events: %d\n\n",
		history.Page, history.TotalPages, history.TotalEvents)

	for _, ev := range history.Events {
		line := fmt.Sprintf("%d. %s", ev.Seq, ev.Type)
		if ev.PlayerID != "" {
			line += fmt.Sprintf(" [%s]", ev.PlayerID)
		}
		if ev.Message != "" {
			line += " " + ev.Message
		}
		result += line + "\n"
	}

	return result
}
