// Package ports defines the interfaces (driven and driving ports)
// between the Pulse domain layer and external infrastructure.
package ports

import (
	"context"

	"github.com/focuspulse/pulse/internal/domain"
)

// SessionStore persists the append-only session history.
// This is a driven port (implemented by adapters).
type SessionStore interface {
	// Load returns the full session history. Undecodable data is
	// treated as an empty history, never an error.
	Load(ctx context.Context) ([]domain.FocusSession, error)

	// Append adds one session to the history.
	Append(ctx context.Context, session domain.FocusSession) error

	// Save replaces the whole history. Used by the review step's
	// find-by-id-and-replace.
	Save(ctx context.Context, sessions []domain.FocusSession) error
}

// TaskStore persists the task list.
type TaskStore interface {
	Load(ctx context.Context) ([]domain.FocusTask, error)
	Save(ctx context.Context, tasks []domain.FocusTask) error

	// SearchByTitle performs a fuzzy title match over the stored tasks.
	SearchByTitle(ctx context.Context, query string) ([]domain.FocusTask, error)
}

// PreferenceStore persists the user preferences object. Load returns
// defaults when nothing is stored or the stored data is undecodable;
// Save replaces the whole object.
type PreferenceStore interface {
	Load(ctx context.Context) (domain.UserPreferences, error)
	Save(ctx context.Context, prefs domain.UserPreferences) error
}

// PlannerStore persists the planner blocks.
type PlannerStore interface {
	Load(ctx context.Context) ([]domain.PlanBlock, error)
	Save(ctx context.Context, blocks []domain.PlanBlock) error
}

// ActiveStore persists the controller state for the session on the
// timer, so a separate process invocation can pause, resume or complete
// it. Load returns nil when no session is active.
type ActiveStore interface {
	Load(ctx context.Context) (*domain.ActiveSession, error)
	Save(ctx context.Context, active *domain.ActiveSession) error
	Clear(ctx context.Context) error
}

// Storage is the combined repository interface over the durable
// key-value mapping. This is a driven port (implemented by adapters).
type Storage interface {
	Sessions() SessionStore
	Tasks() TaskStore
	Preferences() PreferenceStore
	Planner() PlannerStore
	Active() ActiveStore

	// Close closes the underlying store.
	Close() error
}
