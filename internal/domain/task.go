// Package domain contains the core business entities for Pulse.
// These entities represent the fundamental concepts of the focus timer
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"strings"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrTaskNotFound         = errors.New("task not found")
	ErrSessionAlreadyActive = errors.New("session already active")
	ErrNoActiveSession      = errors.New("no active session")
	ErrInvalidRating        = errors.New("focus rating must be between 1 and 5")
	ErrInvalidPreset        = errors.New("unknown preset")
	ErrInvalidPlanBlock     = errors.New("plan block must end after it starts")
	ErrNothingToReview      = errors.New("no completed focus session to review")
)

// FocusTask is a unit of work that focus sessions can reference.
// A session holds a non-owning TaskID; the reference may dangle after
// the task is removed, and lookups must tolerate that.
type FocusTask struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	IsCompleted bool       `json:"is_completed"`
	Notes       string     `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
}

// NewFocusTask creates a new task with the given title.
func NewFocusTask(title string) (*FocusTask, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return nil, ErrEmptyTaskTitle
	}
	return &FocusTask{
		ID:        generateID(),
		Title:     trimmed,
		CreatedAt: time.Now(),
	}, nil
}

// MarkDone flags the task as completed.
func (t *FocusTask) MarkDone() {
	t.IsCompleted = true
}

// Touch stamps the task as used now. Called when a focus session starts
// with this task attached.
func (t *FocusTask) Touch() {
	now := time.Now()
	t.LastUsedAt = &now
}
