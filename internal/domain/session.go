package domain

import (
	"time"
)

// SessionType represents the kind of timed interval.
type SessionType string

const (
	SessionTypeFocus      SessionType = "focus"
	SessionTypeShortBreak SessionType = "short_break"
	SessionTypeLongBreak  SessionType = "long_break"
)

// IsFocus returns true for focus sessions.
func (t SessionType) IsFocus() bool {
	return t == SessionTypeFocus
}

// IsBreak returns true for short or long break sessions.
func (t SessionType) IsBreak() bool {
	return t == SessionTypeShortBreak || t == SessionTypeLongBreak
}

// Label returns a human-readable label for the session type.
func (t SessionType) Label() string {
	switch t {
	case SessionTypeFocus:
		return "Focus"
	case SessionTypeShortBreak:
		return "Short Break"
	case SessionTypeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}

// SessionState represents the lifecycle state of the active session
// record. Idle and completed need no constant: idle is the absence of a
// record, and completion moves the session into history.
type SessionState string

const (
	SessionStateRunning SessionState = "running"
	SessionStatePaused  SessionState = "paused"
)

// DistractionReason categorizes a logged distraction.
type DistractionReason string

const (
	DistractionMovement   DistractionReason = "movement"
	DistractionAppSwitch  DistractionReason = "app_switch"
	DistractionInactivity DistractionReason = "inactivity"
	DistractionManual     DistractionReason = "manual"
)

// Label returns a human-readable label for the distraction reason.
func (r DistractionReason) Label() string {
	switch r {
	case DistractionMovement:
		return "Movement"
	case DistractionAppSwitch:
		return "App switch"
	case DistractionInactivity:
		return "Inactivity"
	case DistractionManual:
		return "Manual"
	default:
		return "Unknown"
	}
}

// DistractionEvent is one logged distraction occurrence during a session.
type DistractionEvent struct {
	ID        string            `json:"id"`
	SessionID string            `json:"session_id"`
	Timestamp time.Time         `json:"timestamp"`
	Reason    DistractionReason `json:"reason"`
}

// FocusSession is a single timed focus or break interval. Completed
// sessions are immutable history records, except for the review fields
// (FocusRating, Notes) which may be attached afterwards.
type FocusSession struct {
	ID                string             `json:"id"`
	Type              SessionType        `json:"type"`
	StartedAt         time.Time          `json:"started_at"`
	PlannedDuration   time.Duration      `json:"planned_duration"`
	ActualDuration    *time.Duration     `json:"actual_duration,omitempty"`
	WasCompleted      bool               `json:"was_completed"`
	DistractionsCount int                `json:"distractions_count"`
	DistractionEvents []DistractionEvent `json:"distraction_events,omitempty"`
	TaskID            *string            `json:"task_id,omitempty"`
	Preset            PresetProfile      `json:"preset"`
	Tags              []string           `json:"tags,omitempty"`
	FocusRating       *int               `json:"focus_rating,omitempty"`
	Notes             string             `json:"notes,omitempty"`
}

// NewFocusSession creates a new session of the given type. The preset and
// tags are snapshotted onto the session at start time.
func NewFocusSession(sessionType SessionType, planned time.Duration, preset PresetProfile, taskID *string, tags []string) *FocusSession {
	return &FocusSession{
		ID:              generateID(),
		Type:            sessionType,
		StartedAt:       time.Now(),
		PlannedDuration: planned,
		Preset:          preset,
		TaskID:          taskID,
		Tags:            tags,
	}
}

// EffectiveDuration returns the actual duration when recorded, falling
// back to the planned duration.
func (s *FocusSession) EffectiveDuration() time.Duration {
	if s.ActualDuration != nil {
		return *s.ActualDuration
	}
	return s.PlannedDuration
}

// MarkCompleted stamps the session as completed. The recorded actual
// duration equals the planned duration even when completion is triggered
// early by the user.
func (s *FocusSession) MarkCompleted() {
	actual := s.PlannedDuration
	s.ActualDuration = &actual
	s.WasCompleted = true
}

// LogDistraction appends a distraction event and bumps the counter.
func (s *FocusSession) LogDistraction(reason DistractionReason, at time.Time) DistractionEvent {
	event := DistractionEvent{
		ID:        generateID(),
		SessionID: s.ID,
		Timestamp: at,
		Reason:    reason,
	}
	s.DistractionEvents = append(s.DistractionEvents, event)
	s.DistractionsCount++
	return event
}

// AttachReview sets the post-session rating and optional note.
func (s *FocusSession) AttachReview(rating int, note string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	s.FocusRating = &rating
	if note != "" {
		s.Notes = note
	}
	return nil
}

// HasTag reports whether the session carries the given tag.
func (s *FocusSession) HasTag(tag string) bool {
	for _, existing := range s.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// AddTag adds a tag unless it is already present.
func (s *FocusSession) AddTag(tag string) {
	if tag == "" || s.HasTag(tag) {
		return
	}
	s.Tags = append(s.Tags, tag)
}
