package domain

import "time"

// PresetProfile is a named bundle of focus/break durations and a default
// Pulse Guard strictness level.
type PresetProfile string

const (
	PresetDeepWork   PresetProfile = "deep_work"
	PresetLightFocus PresetProfile = "light_focus"
	PresetStudy      PresetProfile = "study"
	PresetSprint     PresetProfile = "sprint"
)

// AllPresets returns the preset catalog in display order.
func AllPresets() []PresetProfile {
	return []PresetProfile{PresetDeepWork, PresetLightFocus, PresetStudy, PresetSprint}
}

// ParsePreset validates a preset identifier.
func ParsePreset(s string) (PresetProfile, error) {
	switch PresetProfile(s) {
	case PresetDeepWork, PresetLightFocus, PresetStudy, PresetSprint:
		return PresetProfile(s), nil
	default:
		return "", ErrInvalidPreset
	}
}

// Name returns the display name of the preset.
func (p PresetProfile) Name() string {
	switch p {
	case PresetDeepWork:
		return "Deep Work"
	case PresetLightFocus:
		return "Light Focus"
	case PresetStudy:
		return "Study"
	case PresetSprint:
		return "Sprint"
	default:
		return "Unknown"
	}
}

// Description summarizes the preset's durations and guard level.
func (p PresetProfile) Description() string {
	switch p {
	case PresetDeepWork:
		return "50 min focus · 10 min break · strict guard"
	case PresetLightFocus:
		return "25 min focus · 5 min break · medium guard"
	case PresetStudy:
		return "40 min focus · 10 min break · medium guard"
	case PresetSprint:
		return "15 min focus · 3 min break · relaxed guard"
	default:
		return ""
	}
}

// FocusDuration returns the focus interval length for the preset.
func (p PresetProfile) FocusDuration() time.Duration {
	switch p {
	case PresetDeepWork:
		return 50 * time.Minute
	case PresetStudy:
		return 40 * time.Minute
	case PresetSprint:
		return 15 * time.Minute
	default:
		return 25 * time.Minute
	}
}

// ShortBreakDuration returns the short break length for the preset.
func (p PresetProfile) ShortBreakDuration() time.Duration {
	switch p {
	case PresetDeepWork, PresetStudy:
		return 10 * time.Minute
	case PresetSprint:
		return 3 * time.Minute
	default:
		return 5 * time.Minute
	}
}

// LongBreakDuration returns the long break length for the preset.
func (p PresetProfile) LongBreakDuration() time.Duration {
	switch p {
	case PresetDeepWork, PresetStudy:
		return 20 * time.Minute
	default:
		return 15 * time.Minute
	}
}

// GuardLevel returns the Pulse Guard strictness the preset activates.
func (p PresetProfile) GuardLevel() DistractionLevel {
	switch p {
	case PresetDeepWork:
		return DistractionStrict
	case PresetSprint:
		return DistractionRelaxed
	default:
		return DistractionMedium
	}
}
