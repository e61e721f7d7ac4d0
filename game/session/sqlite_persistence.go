package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ivanValieri/jogotabuleiro1/game/engine"
	"github.com/ivanValieri/jogotabuleiro1/game/service"
)

const timeFormat = time.RFC3339Nano

func parseStoredTime(s string) (time.Time, error) {
	return time.Parse(timeFormat, s)
}

// SQLitePersistence implements SessionPersistence on a single SQLite
// database file. Each session is one row holding the initial snapshot and
// the event log as JSON documents.
type SQLitePersistence struct {
	db            *sql.DB
	configManager service.ConfigManager
}

// NewSQLitePersistence opens (and creates if missing) the session database.
func NewSQLitePersistence(dbPath string, configManager service.ConfigManager) (*SQLitePersistence, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	sp := &SQLitePersistence{db: db, configManager: configManager}
	if err := sp.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return sp, nil
}

func (sp *SQLitePersistence) migrate() error {
	_, err := sp.db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id               TEXT PRIMARY KEY,
			config_name      TEXT NOT NULL,
			created_at       TEXT NOT NULL,
			last_accessed_at TEXT NOT NULL,
			initial_state    TEXT NOT NULL,
			events           TEXT NOT NULL
		);`)
	return err
}

// Close releases the underlying database handle.
func (sp *SQLitePersistence) Close() error {
	return sp.db.Close()
}

// Save upserts the session row.
func (sp *SQLitePersistence) Save(session *service.Session) error {
	if session == nil {
		return fmt.Errorf("session cannot be nil")
	}

	configID, err := sp.getConfigIDFromName(session.Rules.Name)
	if err != nil {
		return fmt.Errorf("failed to get config ID: %w", err)
	}

	initialJSON, err := json.Marshal(session.Game.InitialState())
	if err != nil {
		return fmt.Errorf("failed to marshal initial state: %w", err)
	}
	eventsJSON, err := json.Marshal(session.Game.Events())
	if err != nil {
		return fmt.Errorf("failed to marshal events: %w", err)
	}

	_, err = sp.db.Exec(`
		INSERT INTO sessions (id, config_name, created_at, last_accessed_at, initial_state, events)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			config_name      = excluded.config_name,
			last_accessed_at = excluded.last_accessed_at,
			events           = excluded.events`,
		session.ID, configID,
		session.CreatedAt.Format(timeFormat),
		session.LastAccessedAt.Format(timeFormat),
		string(initialJSON), string(eventsJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to write session row: %w", err)
	}
	return nil
}

// Load rebuilds a session from its stored row.
func (sp *SQLitePersistence) Load(id string) (*service.Session, error) {
	var data PersistedSessionData
	var createdAt, lastAccessedAt, initialJSON, eventsJSON string

	err := sp.db.QueryRow(`
		SELECT id, config_name, created_at, last_accessed_at, initial_state, events
		FROM sessions WHERE id = ?`, id,
	).Scan(&data.ID, &data.ConfigName, &createdAt, &lastAccessedAt, &initialJSON, &eventsJSON)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session row: %w", err)
	}

	if data.CreatedAt, err = parseStoredTime(createdAt); err != nil {
		return nil, fmt.Errorf("bad created_at: %w", err)
	}
	if data.LastAccessedAt, err = parseStoredTime(lastAccessedAt); err != nil {
		return nil, fmt.Errorf("bad last_accessed_at: %w", err)
	}
	if err := json.Unmarshal([]byte(initialJSON), &data.InitialState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal initial state: %w", err)
	}
	if err := json.Unmarshal([]byte(eventsJSON), &data.Events); err != nil {
		return nil, fmt.Errorf("failed to unmarshal events: %w", err)
	}

	rules, err := sp.configManager.LoadConfig(data.ConfigName)
	if err != nil {
		return nil, fmt.Errorf("failed to load config '%s': %w", data.ConfigName, err)
	}

	game, err := engine.Restore(rules, data.InitialState, data.Events)
	if err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	return &service.Session{
		ID:             data.ID,
		Game:           game,
		Rules:          rules,
		CreatedAt:      data.CreatedAt,
		LastAccessedAt: data.LastAccessedAt,
	}, nil
}

// Delete removes a session row.
func (sp *SQLitePersistence) Delete(id string) error {
	res, err := sp.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session row: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// ListAll returns all persisted session IDs.
func (sp *SQLitePersistence) ListAll() ([]string, error) {
	rows, err := sp.db.Query(`SELECT id FROM sessions ORDER BY last_accessed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Exists checks whether a session row is present.
func (sp *SQLitePersistence) Exists(id string) bool {
	var cnt int
	if err := sp.db.QueryRow(`SELECT COUNT(1) FROM sessions WHERE id = ?`, id).Scan(&cnt); err != nil {
		return false
	}
	return cnt > 0
}

func (sp *SQLitePersistence) getConfigIDFromName(displayName string) (string, error) {
	configs, err := sp.configManager.ListConfigs()
	if err != nil {
		return "", fmt.Errorf("failed to list configs: %w", err)
	}
	for _, config := range configs {
		if config.Name == displayName {
			return config.ConfigID, nil
		}
	}
	return displayName, nil
}
