// Package storage implements the storage ports over a durable key-value
// mapping backed by SQLite. Each collection lives under its own
// namespaced key as a JSON document, so the encoding stays
// self-describing and forward/backward compatible through optional
// fields. Undecodable values degrade to empty collections or defaults,
// never to a fatal error.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/focuspulse/pulse/internal/ports"
)

// Namespaced keys for the persisted collections.
const (
	keySessions    = "session_history"
	keyTasks       = "focus_tasks"
	keyPreferences = "user_preferences"
	keyPlanner     = "planner_blocks"
	keyActive      = "active_session"
)

// store implements ports.Storage over a single kv table.
type store struct {
	db *sql.DB
}

// Ensure store implements ports.Storage.
var _ ports.Storage = (*store)(nil)

// New opens (or creates) the key-value store at dbPath.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		namespace TEXT PRIMARY KEY,
		value     BLOB NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &store{db: db}, nil
}

// NewMemory creates an in-memory store for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Sessions returns the session history store.
func (s *store) Sessions() ports.SessionStore {
	return &sessionStore{kv: s}
}

// Tasks returns the task store.
func (s *store) Tasks() ports.TaskStore {
	return &taskStore{kv: s}
}

// Preferences returns the preferences store.
func (s *store) Preferences() ports.PreferenceStore {
	return &preferenceStore{kv: s}
}

// Planner returns the planner store.
func (s *store) Planner() ports.PlannerStore {
	return &plannerStore{kv: s}
}

// Active returns the active-session store.
func (s *store) Active() ports.ActiveStore {
	return &activeStore{kv: s}
}

// Close closes the database connection.
func (s *store) Close() error {
	return s.db.Close()
}

// get returns the raw value for a namespace, or nil when absent.
func (s *store) get(ctx context.Context, namespace string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM kv WHERE namespace = ?", namespace).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", namespace, err)
	}
	return value, nil
}

// put replaces the value for a namespace.
func (s *store) put(ctx context.Context, namespace string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO kv (namespace, value) VALUES (?, ?) ON CONFLICT(namespace) DO UPDATE SET value = excluded.value",
		namespace, value)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", namespace, err)
	}
	return nil
}

// delete removes a namespace.
func (s *store) delete(ctx context.Context, namespace string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE namespace = ?", namespace); err != nil {
		return fmt.Errorf("failed to delete %s: %w", namespace, err)
	}
	return nil
}
