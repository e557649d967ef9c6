// Package services contains the application use cases built on the
// domain entities and the storage ports.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/ports"
	"github.com/focuspulse/pulse/internal/stats"
)

// SessionService is the session lifecycle controller: it starts, pauses
// and completes timed sessions and decides what comes next in the chain.
type SessionService struct {
	storage  ports.Storage
	detector ports.WorkspaceDetector
}

// NewSessionService creates a new session service.
func NewSessionService(storage ports.Storage, detector ports.WorkspaceDetector) *SessionService {
	return &SessionService{storage: storage, detector: detector}
}

// StartRequest contains data to start a session.
type StartRequest struct {
	Type       domain.SessionType
	Preset     domain.PresetProfile
	TaskID     *string
	Tags       []string
	Duration   time.Duration // 0 derives from preset/preferences
	WorkingDir string
}

// Start begins a new session. Focus sessions take their planned duration
// from the preset, breaks from the preferences; the preset, tags and
// workspace context are snapshotted onto the session at start.
func (s *SessionService) Start(ctx context.Context, req StartRequest) (*domain.ActiveSession, error) {
	existing, err := s.storage.Active().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check active session: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrSessionAlreadyActive
	}

	prefs, err := s.storage.Preferences().Load(ctx)
	if err != nil {
		prefs = domain.DefaultPreferences()
	}

	planned := req.Duration
	if planned <= 0 {
		if req.Type.IsFocus() {
			planned = req.Preset.FocusDuration()
		} else {
			planned = prefs.DurationFor(req.Type)
		}
	}

	session := domain.NewFocusSession(req.Type, planned, req.Preset, req.TaskID, req.Tags)

	if req.Type.IsFocus() {
		if s.detector != nil && s.detector.IsAvailable() {
			if info, err := s.detector.Detect(ctx, req.WorkingDir); err == nil && info != nil {
				for _, tag := range info.ContextTags() {
					session.AddTag(tag)
				}
			}
		}
		if req.TaskID != nil {
			if err := s.touchTask(ctx, *req.TaskID); err != nil {
				return nil, err
			}
		}
	}

	active := &domain.ActiveSession{
		Session: *session,
		State:   domain.SessionStateRunning,
	}
	if err := s.storage.Active().Save(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to save active session: %w", err)
	}
	return active, nil
}

// touchTask stamps the task's last-used time. A dangling task reference
// is not an error; the stamp is simply skipped.
func (s *SessionService) touchTask(ctx context.Context, taskID string) error {
	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == taskID {
			tasks[i].Touch()
			return s.storage.Tasks().Save(ctx, tasks)
		}
	}
	return nil
}

// Pause freezes the active session's timer.
func (s *SessionService) Pause(ctx context.Context) (*domain.ActiveSession, error) {
	active, err := s.loadActive(ctx)
	if err != nil {
		return nil, err
	}
	active.Pause(time.Now())
	if err := s.storage.Active().Save(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to save active session: %w", err)
	}
	return active, nil
}

// Resume continues a paused session without resetting remaining time.
func (s *SessionService) Resume(ctx context.Context) (*domain.ActiveSession, error) {
	active, err := s.loadActive(ctx)
	if err != nil {
		return nil, err
	}
	active.Resume(time.Now())
	if err := s.storage.Active().Save(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to save active session: %w", err)
	}
	return active, nil
}

// LogDistraction records a distraction on the active session.
func (s *SessionService) LogDistraction(ctx context.Context, reason domain.DistractionReason) (*domain.ActiveSession, error) {
	active, err := s.loadActive(ctx)
	if err != nil {
		return nil, err
	}
	active.Session.LogDistraction(reason, time.Now())
	if err := s.storage.Active().Save(ctx, active); err != nil {
		return nil, fmt.Errorf("failed to save active session: %w", err)
	}
	return active, nil
}

// Discard abandons the active session without recording it.
func (s *SessionService) Discard(ctx context.Context) error {
	if _, err := s.loadActive(ctx); err != nil {
		return err
	}
	return s.storage.Active().Clear(ctx)
}

// CompletionResult describes the outcome of completing a session.
type CompletionResult struct {
	Session domain.FocusSession

	// NextType is the session type the chain continues with, empty when
	// the controller returns to idle.
	NextType domain.SessionType

	// GoalReached is true when today's completed focus count has hit
	// the daily goal; the chain halts in that case.
	GoalReached bool

	// ReviewPending is true after a focus session; the review step may
	// attach a rating and note.
	ReviewPending bool
}

// Complete finishes the active session, appends it to history and
// resolves the next step in the chain. The recorded actual duration
// equals the planned duration even when completion was triggered early.
func (s *SessionService) Complete(ctx context.Context) (*CompletionResult, error) {
	active, err := s.loadActive(ctx)
	if err != nil {
		return nil, err
	}

	session := active.Session
	session.MarkCompleted()

	if err := s.storage.Sessions().Append(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to append session: %w", err)
	}
	if err := s.storage.Active().Clear(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear active session: %w", err)
	}

	prefs, err := s.storage.Preferences().Load(ctx)
	if err != nil {
		prefs = domain.DefaultPreferences()
	}
	history, err := s.storage.Sessions().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	today := stats.Daily(history, time.Now())
	result := &CompletionResult{
		Session:       session,
		ReviewPending: session.Type.IsFocus(),
		GoalReached:   today.SessionsCompleted >= prefs.DailySessionGoal,
	}
	if result.GoalReached {
		return result, nil
	}

	if session.Type.IsFocus() {
		result.NextType = domain.SessionTypeShortBreak
		rotation := prefs.SessionsBeforeLongBreak
		if rotation < 1 {
			rotation = 1
		}
		if today.SessionsCompleted%rotation == 0 {
			result.NextType = domain.SessionTypeLongBreak
		}
	} else {
		result.NextType = domain.SessionTypeFocus
	}
	return result, nil
}

// Review attaches a rating and optional note to the most recently
// completed focus session, replacing the stored record by id.
func (s *SessionService) Review(ctx context.Context, rating int, note string) (*domain.FocusSession, error) {
	history, err := s.storage.Sessions().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	for i := len(history) - 1; i >= 0; i-- {
		if !history[i].Type.IsFocus() || !history[i].WasCompleted {
			continue
		}
		if err := history[i].AttachReview(rating, note); err != nil {
			return nil, err
		}
		if err := s.storage.Sessions().Save(ctx, history); err != nil {
			return nil, fmt.Errorf("failed to save history: %w", err)
		}
		reviewed := history[i]
		return &reviewed, nil
	}
	return nil, domain.ErrNothingToReview
}

// Status returns the active session, or nil when the timer is idle.
func (s *SessionService) Status(ctx context.Context) (*domain.ActiveSession, error) {
	return s.storage.Active().Load(ctx)
}

// History returns the full persisted session history.
func (s *SessionService) History(ctx context.Context) ([]domain.FocusSession, error) {
	return s.storage.Sessions().Load(ctx)
}

// Preferences returns the stored user preferences.
func (s *SessionService) Preferences(ctx context.Context) (domain.UserPreferences, error) {
	return s.storage.Preferences().Load(ctx)
}

func (s *SessionService) loadActive(ctx context.Context) (*domain.ActiveSession, error) {
	active, err := s.storage.Active().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active session: %w", err)
	}
	if active == nil {
		return nil, domain.ErrNoActiveSession
	}
	return active, nil
}
