package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/ports"
)

var (
	_ ports.SessionStore    = (*sessionStore)(nil)
	_ ports.TaskStore       = (*taskStore)(nil)
	_ ports.PreferenceStore = (*preferenceStore)(nil)
	_ ports.PlannerStore    = (*plannerStore)(nil)
	_ ports.ActiveStore     = (*activeStore)(nil)
)

// sessionStore implements ports.SessionStore.
type sessionStore struct {
	kv *store
}

// Load returns the full session history. Missing or undecodable data
// yields an empty history.
func (r *sessionStore) Load(ctx context.Context) ([]domain.FocusSession, error) {
	data, err := r.kv.get(ctx, keySessions)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var sessions []domain.FocusSession
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, nil
	}
	return sessions, nil
}

// Append adds one session to the history. The write is visible to the
// next Load in the same timeline.
func (r *sessionStore) Append(ctx context.Context, session domain.FocusSession) error {
	sessions, err := r.Load(ctx)
	if err != nil {
		return err
	}
	return r.Save(ctx, append(sessions, session))
}

// Save replaces the whole history.
func (r *sessionStore) Save(ctx context.Context, sessions []domain.FocusSession) error {
	data, err := json.Marshal(sessions)
	if err != nil {
		return fmt.Errorf("failed to encode sessions: %w", err)
	}
	return r.kv.put(ctx, keySessions, data)
}

// taskStore implements ports.TaskStore.
type taskStore struct {
	kv *store
}

func (r *taskStore) Load(ctx context.Context) ([]domain.FocusTask, error) {
	data, err := r.kv.get(ctx, keyTasks)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var tasks []domain.FocusTask
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, nil
	}
	return tasks, nil
}

func (r *taskStore) Save(ctx context.Context, tasks []domain.FocusTask) error {
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return r.kv.put(ctx, keyTasks, data)
}

// SearchByTitle performs a fuzzy title match over the stored tasks.
func (r *taskStore) SearchByTitle(ctx context.Context, query string) ([]domain.FocusTask, error) {
	tasks, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}

	matches := fuzzy.Find(query, titles)

	var result []domain.FocusTask
	for _, match := range matches {
		result = append(result, tasks[match.Index])
	}
	return result, nil
}

// preferenceStore implements ports.PreferenceStore.
type preferenceStore struct {
	kv *store
}

// Load returns the stored preferences, or defaults when absent or
// undecodable.
func (r *preferenceStore) Load(ctx context.Context) (domain.UserPreferences, error) {
	data, err := r.kv.get(ctx, keyPreferences)
	if err != nil {
		return domain.DefaultPreferences(), err
	}
	if data == nil {
		return domain.DefaultPreferences(), nil
	}

	prefs := domain.DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return domain.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save replaces the whole preferences object.
func (r *preferenceStore) Save(ctx context.Context, prefs domain.UserPreferences) error {
	data, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}
	return r.kv.put(ctx, keyPreferences, data)
}

// plannerStore implements ports.PlannerStore.
type plannerStore struct {
	kv *store
}

func (r *plannerStore) Load(ctx context.Context) ([]domain.PlanBlock, error) {
	data, err := r.kv.get(ctx, keyPlanner)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var blocks []domain.PlanBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, nil
	}
	return blocks, nil
}

func (r *plannerStore) Save(ctx context.Context, blocks []domain.PlanBlock) error {
	data, err := json.Marshal(blocks)
	if err != nil {
		return fmt.Errorf("failed to encode planner blocks: %w", err)
	}
	return r.kv.put(ctx, keyPlanner, data)
}

// activeStore implements ports.ActiveStore.
type activeStore struct {
	kv *store
}

// Load returns the active session record, or nil when the timer is idle.
func (r *activeStore) Load(ctx context.Context) (*domain.ActiveSession, error) {
	data, err := r.kv.get(ctx, keyActive)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var active domain.ActiveSession
	if err := json.Unmarshal(data, &active); err != nil {
		return nil, nil
	}
	return &active, nil
}

func (r *activeStore) Save(ctx context.Context, active *domain.ActiveSession) error {
	data, err := json.Marshal(active)
	if err != nil {
		return fmt.Errorf("failed to encode active session: %w", err)
	}
	return r.kv.put(ctx, keyActive, data)
}

func (r *activeStore) Clear(ctx context.Context) error {
	return r.kv.delete(ctx, keyActive)
}
