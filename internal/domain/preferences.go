package domain

import "time"

// DistractionLevel is the Pulse Guard strictness setting.
type DistractionLevel string

const (
	DistractionRelaxed DistractionLevel = "relaxed"
	DistractionMedium  DistractionLevel = "medium"
	DistractionStrict  DistractionLevel = "strict"
)

// Label returns a human-readable label for the guard level.
func (l DistractionLevel) Label() string {
	switch l {
	case DistractionRelaxed:
		return "Relaxed"
	case DistractionMedium:
		return "Medium"
	case DistractionStrict:
		return "Strict"
	default:
		return "Unknown"
	}
}

// UserPreferences is the single process-wide configuration object for
// session behavior. It is loaded at startup and replaced whole on save;
// there are no partial-update semantics.
type UserPreferences struct {
	FocusDuration           time.Duration    `json:"focus_duration"`
	ShortBreakDuration      time.Duration    `json:"short_break_duration"`
	LongBreakDuration       time.Duration    `json:"long_break_duration"`
	SessionsBeforeLongBreak int              `json:"sessions_before_long_break"`
	DailySessionGoal        int              `json:"daily_session_goal"`
	SoundEnabled            bool             `json:"sound_enabled"`
	GuardLevel              DistractionLevel `json:"guard_level"`
}

// DefaultPreferences returns the standard preferences.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		FocusDuration:           25 * time.Minute,
		ShortBreakDuration:      5 * time.Minute,
		LongBreakDuration:       15 * time.Minute,
		SessionsBeforeLongBreak: 4,
		DailySessionGoal:        8,
		SoundEnabled:            true,
		GuardLevel:              DistractionMedium,
	}
}

// DurationFor returns the configured duration for a session type.
func (p UserPreferences) DurationFor(t SessionType) time.Duration {
	switch t {
	case SessionTypeShortBreak:
		return p.ShortBreakDuration
	case SessionTypeLongBreak:
		return p.LongBreakDuration
	default:
		return p.FocusDuration
	}
}
