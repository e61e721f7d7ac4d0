package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
)

func newTestHub() *Hub {
	return NewHub(zerolog.Nop())
}

func testState() *engine.GameState {
	return &engine.GameState{
		CurrentPlayerID: "p1",
		Status:          engine.StatusActive,
		Players: []*engine.Player{
			{ID: "p1", Name: "Aria", Position: 7, Credits: 42500},
			{ID: "p2", Name: "Bardo", Position: 3, Credits: 50000},
		},
	}
}

func TestNewHub(t *testing.T) {
	hub := newTestHub()

	if hub == nil {
		t.Fatal("NewHub() returned nil")
	}
	if hub.sessions == nil {
		t.Error("Hub sessions map is nil")
	}
	if hub.broadcast == nil {
		t.Error("Hub broadcast channel is nil")
	}
	if hub.register == nil {
		t.Error("Hub register channel is nil")
	}
	if hub.unregister == nil {
		t.Error("Hub unregister channel is nil")
	}
}

func TestHubRegisterClient(t *testing.T) {
	hub := newTestHub()

	client := &Client{
		hub:       hub,
		sessionID: "abcd",
		send:      make(chan []byte, 256),
	}

	hub.registerClient(client)

	if _, exists := hub.sessions["abcd"]; !exists {
		t.Error("Session room was not created")
	}
	if !hub.sessions["abcd"][client] {
		t.Error("Client was not registered in session")
	}
	if hub.SessionClientCount("abcd") != 1 {
		t.Errorf("Expected 1 client in session, got %d", hub.SessionClientCount("abcd"))
	}
}

func TestHubUnregisterClient(t *testing.T) {
	hub := newTestHub()

	client := &Client{
		hub:       hub,
		sessionID: "abcd",
		send:      make(chan []byte, 256),
	}

	hub.registerClient(client)
	hub.unregisterClient(client)

	if _, exists := hub.sessions["abcd"]; exists {
		t.Error("Session room should have been cleaned up after last client left")
	}
}

func TestHubMultipleClientsInSession(t *testing.T) {
	hub := newTestHub()
	sessionID := "spec"

	client1 := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}
	client2 := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}

	hub.registerClient(client1)
	hub.registerClient(client2)

	if hub.SessionClientCount(sessionID) != 2 {
		t.Errorf("Expected 2 clients in session, got %d", hub.SessionClientCount(sessionID))
	}

	hub.unregisterClient(client1)

	if hub.SessionClientCount(sessionID) != 1 {
		t.Errorf("Expected 1 client remaining, got %d", hub.SessionClientCount(sessionID))
	}
	if !hub.sessions[sessionID][client2] {
		t.Error("client2 should still be registered")
	}
}

func TestHubBroadcastToSession(t *testing.T) {
	hub := newTestHub()
	sessionID := "bcst"

	client := &Client{hub: hub, sessionID: sessionID, send: make(chan []byte, 256)}
	hub.registerClient(client)

	hub.BroadcastToSession(sessionID, testState())

	select {
	case data := <-client.send:
		var message Message
		if err := json.Unmarshal(data, &message); err != nil {
			t.Fatalf("Failed to unmarshal message: %v", err)
		}
		if message.SessionID != sessionID {
			t.Errorf("Expected sessionID %s, got %s", sessionID, message.SessionID)
		}
		if message.Event != "state_update" {
			t.Errorf("Expected event 'state_update', got %s", message.Event)
		}
		if message.GameState.CurrentPlayerID != "p1" {
			t.Error("GameState not correctly transmitted")
		}
		if len(message.GameState.Players) != 2 || message.GameState.Players[0].Position != 7 {
			t.Error("Player positions not correctly transmitted")
		}

	case <-time.After(100 * time.Millisecond):
		t.Error("No message received within timeout")
	}
}

func TestHubBroadcastEvent(t *testing.T) {
	hub := newTestHub()
	done := make(chan bool)

	go func() {
		select {
		case message := <-hub.broadcast:
			if message.SessionID != "evnt" {
				t.Errorf("Expected sessionID 'evnt', got %s", message.SessionID)
			}
			if message.Event != "game_over" {
				t.Errorf("Expected event 'game_over', got %s", message.Event)
			}
			if message.Data != "p2" {
				t.Errorf("Expected data 'p2', got %v", message.Data)
			}
			done <- true
		case <-time.After(100 * time.Millisecond):
			t.Error("No broadcast message received within timeout")
			done <- false
		}
	}()

	hub.BroadcastEvent("evnt", "game_over", "p2")
	<-done
}

func TestWebSocketUpgrade(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=wstt"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	// Give some time for registration
	time.Sleep(50 * time.Millisecond)

	if hub.SessionClientCount("wstt") != 1 {
		t.Errorf("Expected 1 client in session, got %d", hub.SessionClientCount("wstt"))
	}

	conn.Close()
	time.Sleep(10 * time.Millisecond)

	if _, exists := hub.sessions["wstt"]; exists {
		t.Error("Session room should have been cleaned up after WebSocket close")
	}
}

func TestWebSocketMessageReceive(t *testing.T) {
	hub := newTestHub()
	go hub.Run()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.URL.Query().Get("session")
		if sessionID == "" {
			sessionID = "default"
		}
		hub.ServeWS(w, r, sessionID)
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "?session=msgt"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to connect to WebSocket: %v", err)
	}
	defer conn.Close()

	time.Sleep(10 * time.Millisecond)

	hub.BroadcastToSession("msgt", testState())

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	_, messageData, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Failed to read WebSocket message: %v", err)
	}

	var message Message
	if err := json.Unmarshal(messageData, &message); err != nil {
		t.Fatalf("Failed to unmarshal message: %v", err)
	}

	if message.SessionID != "msgt" {
		t.Errorf("Expected sessionID 'msgt', got %s", message.SessionID)
	}
	if message.GameState.Players[1].Credits != 50000 {
		t.Error("Player credits not correctly received")
	}
}
