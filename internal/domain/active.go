package domain

import "time"

// ActiveSession is the controller state for the session currently on
// the timer: the in-flight session record and its lifecycle state.
type ActiveSession struct {
	Session  FocusSession `json:"session"`
	State    SessionState `json:"state"`
	PausedAt *time.Time   `json:"paused_at,omitempty"`
}

// Pause freezes the timer.
func (a *ActiveSession) Pause(now time.Time) {
	if a.State != SessionStateRunning {
		return
	}
	paused := now
	a.PausedAt = &paused
	a.State = SessionStatePaused
}

// Resume continues a paused timer without resetting remaining time. The
// session start is shifted forward by the paused gap so elapsed time
// excludes the pause.
func (a *ActiveSession) Resume(now time.Time) {
	if a.State != SessionStatePaused || a.PausedAt == nil {
		return
	}
	a.Session.StartedAt = a.Session.StartedAt.Add(now.Sub(*a.PausedAt))
	a.PausedAt = nil
	a.State = SessionStateRunning
}

// Remaining returns the time left on the timer, floored at zero.
func (a *ActiveSession) Remaining(now time.Time) time.Duration {
	reference := now
	if a.State == SessionStatePaused && a.PausedAt != nil {
		reference = *a.PausedAt
	}
	remaining := a.Session.PlannedDuration - reference.Sub(a.Session.StartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress returns the elapsed fraction in [0, 1].
func (a *ActiveSession) Progress(now time.Time) float64 {
	if a.Session.PlannedDuration <= 0 {
		return 0
	}
	p := 1 - float64(a.Remaining(now))/float64(a.Session.PlannedDuration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
