package domain

import (
	"testing"
	"time"
)

func TestParsePreset(t *testing.T) {
	for _, preset := range AllPresets() {
		parsed, err := ParsePreset(string(preset))
		if err != nil {
			t.Errorf("ParsePreset(%q) error = %v", preset, err)
		}
		if parsed != preset {
			t.Errorf("ParsePreset(%q) = %v, want %v", preset, parsed, preset)
		}
	}

	if _, err := ParsePreset("marathon"); err != ErrInvalidPreset {
		t.Errorf("ParsePreset(unknown) error = %v, want ErrInvalidPreset", err)
	}
}

func TestPresetDurations(t *testing.T) {
	tests := []struct {
		preset     PresetProfile
		focus      time.Duration
		shortBreak time.Duration
		longBreak  time.Duration
		guard      DistractionLevel
	}{
		{PresetDeepWork, 50 * time.Minute, 10 * time.Minute, 20 * time.Minute, DistractionStrict},
		{PresetLightFocus, 25 * time.Minute, 5 * time.Minute, 15 * time.Minute, DistractionMedium},
		{PresetStudy, 40 * time.Minute, 10 * time.Minute, 20 * time.Minute, DistractionMedium},
		{PresetSprint, 15 * time.Minute, 3 * time.Minute, 15 * time.Minute, DistractionRelaxed},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			if got := tt.preset.FocusDuration(); got != tt.focus {
				t.Errorf("FocusDuration() = %v, want %v", got, tt.focus)
			}
			if got := tt.preset.ShortBreakDuration(); got != tt.shortBreak {
				t.Errorf("ShortBreakDuration() = %v, want %v", got, tt.shortBreak)
			}
			if got := tt.preset.LongBreakDuration(); got != tt.longBreak {
				t.Errorf("LongBreakDuration() = %v, want %v", got, tt.longBreak)
			}
			if got := tt.preset.GuardLevel(); got != tt.guard {
				t.Errorf("GuardLevel() = %v, want %v", got, tt.guard)
			}
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	prefs := DefaultPreferences()

	if prefs.FocusDuration != 25*time.Minute {
		t.Errorf("FocusDuration = %v, want %v", prefs.FocusDuration, 25*time.Minute)
	}
	if prefs.ShortBreakDuration != 5*time.Minute {
		t.Errorf("ShortBreakDuration = %v, want %v", prefs.ShortBreakDuration, 5*time.Minute)
	}
	if prefs.LongBreakDuration != 15*time.Minute {
		t.Errorf("LongBreakDuration = %v, want %v", prefs.LongBreakDuration, 15*time.Minute)
	}
	if prefs.SessionsBeforeLongBreak != 4 {
		t.Errorf("SessionsBeforeLongBreak = %d, want 4", prefs.SessionsBeforeLongBreak)
	}
	if prefs.DailySessionGoal != 8 {
		t.Errorf("DailySessionGoal = %d, want 8", prefs.DailySessionGoal)
	}
	if !prefs.SoundEnabled {
		t.Error("SoundEnabled should default to true")
	}
	if prefs.GuardLevel != DistractionMedium {
		t.Errorf("GuardLevel = %v, want %v", prefs.GuardLevel, DistractionMedium)
	}
}

func TestPreferencesDurationFor(t *testing.T) {
	prefs := DefaultPreferences()

	if got := prefs.DurationFor(SessionTypeFocus); got != prefs.FocusDuration {
		t.Errorf("DurationFor(focus) = %v, want %v", got, prefs.FocusDuration)
	}
	if got := prefs.DurationFor(SessionTypeShortBreak); got != prefs.ShortBreakDuration {
		t.Errorf("DurationFor(short_break) = %v, want %v", got, prefs.ShortBreakDuration)
	}
	if got := prefs.DurationFor(SessionTypeLongBreak); got != prefs.LongBreakDuration {
		t.Errorf("DurationFor(long_break) = %v, want %v", got, prefs.LongBreakDuration)
	}
}

func TestNewFocusTask(t *testing.T) {
	task, err := NewFocusTask("  Write report  ")
	if err != nil {
		t.Fatalf("NewFocusTask() error = %v", err)
	}
	if task.Title != "Write report" {
		t.Errorf("Title = %q, want trimmed %q", task.Title, "Write report")
	}
	if task.ID == "" {
		t.Error("NewFocusTask() ID is empty")
	}
	if task.IsCompleted {
		t.Error("new task should not be completed")
	}

	if _, err := NewFocusTask("   "); err != ErrEmptyTaskTitle {
		t.Errorf("NewFocusTask(blank) error = %v, want ErrEmptyTaskTitle", err)
	}
}

func TestNewPlanBlock(t *testing.T) {
	start := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)

	block, err := NewPlanBlock(start, start.Add(50*time.Minute), PresetDeepWork, nil)
	if err != nil {
		t.Fatalf("NewPlanBlock() error = %v", err)
	}
	if block.Duration() != 50*time.Minute {
		t.Errorf("Duration() = %v, want %v", block.Duration(), 50*time.Minute)
	}

	if _, err := NewPlanBlock(start, start, PresetDeepWork, nil); err != ErrInvalidPlanBlock {
		t.Errorf("NewPlanBlock(zero window) error = %v, want ErrInvalidPlanBlock", err)
	}
	if _, err := NewPlanBlock(start, start.Add(-time.Minute), PresetDeepWork, nil); err != ErrInvalidPlanBlock {
		t.Errorf("NewPlanBlock(inverted) error = %v, want ErrInvalidPlanBlock", err)
	}
}
