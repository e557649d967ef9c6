package domain

import (
	"testing"
	"time"
)

func TestNewFocusSession(t *testing.T) {
	taskID := "task-123"
	tags := []string{"coding"}

	session := NewFocusSession(SessionTypeFocus, 25*time.Minute, PresetLightFocus, &taskID, tags)

	if session.ID == "" {
		t.Error("NewFocusSession() ID is empty")
	}
	if session.Type != SessionTypeFocus {
		t.Errorf("Type = %v, want %v", session.Type, SessionTypeFocus)
	}
	if session.PlannedDuration != 25*time.Minute {
		t.Errorf("PlannedDuration = %v, want %v", session.PlannedDuration, 25*time.Minute)
	}
	if session.WasCompleted {
		t.Error("new session should not be completed")
	}
	if session.ActualDuration != nil {
		t.Error("new session should have no actual duration")
	}
	if session.TaskID == nil || *session.TaskID != taskID {
		t.Errorf("TaskID = %v, want %v", session.TaskID, taskID)
	}
	if session.Preset != PresetLightFocus {
		t.Errorf("Preset = %v, want %v", session.Preset, PresetLightFocus)
	}
}

func TestSessionType(t *testing.T) {
	if !SessionTypeFocus.IsFocus() {
		t.Error("focus type should report IsFocus")
	}
	if SessionTypeFocus.IsBreak() {
		t.Error("focus type should not report IsBreak")
	}
	if !SessionTypeShortBreak.IsBreak() || !SessionTypeLongBreak.IsBreak() {
		t.Error("break types should report IsBreak")
	}
	if SessionTypeShortBreak.Label() != "Short Break" {
		t.Errorf("Label() = %q, want %q", SessionTypeShortBreak.Label(), "Short Break")
	}
}

func TestMarkCompleted(t *testing.T) {
	session := NewFocusSession(SessionTypeFocus, 50*time.Minute, PresetDeepWork, nil, nil)
	session.MarkCompleted()

	if !session.WasCompleted {
		t.Error("MarkCompleted() should set WasCompleted")
	}
	if session.ActualDuration == nil {
		t.Fatal("MarkCompleted() should record an actual duration")
	}
	// Early completion still records the full planned duration.
	if *session.ActualDuration != 50*time.Minute {
		t.Errorf("ActualDuration = %v, want %v", *session.ActualDuration, 50*time.Minute)
	}
}

func TestEffectiveDuration(t *testing.T) {
	session := NewFocusSession(SessionTypeFocus, 25*time.Minute, PresetLightFocus, nil, nil)

	if session.EffectiveDuration() != 25*time.Minute {
		t.Errorf("EffectiveDuration() = %v, want planned %v", session.EffectiveDuration(), 25*time.Minute)
	}

	actual := 20 * time.Minute
	session.ActualDuration = &actual
	if session.EffectiveDuration() != actual {
		t.Errorf("EffectiveDuration() = %v, want actual %v", session.EffectiveDuration(), actual)
	}
}

func TestLogDistraction(t *testing.T) {
	session := NewFocusSession(SessionTypeFocus, 25*time.Minute, PresetLightFocus, nil, nil)
	at := time.Now()

	event := session.LogDistraction(DistractionAppSwitch, at)

	if event.SessionID != session.ID {
		t.Errorf("event SessionID = %q, want %q", event.SessionID, session.ID)
	}
	if event.Reason != DistractionAppSwitch {
		t.Errorf("event Reason = %v, want %v", event.Reason, DistractionAppSwitch)
	}
	if session.DistractionsCount != 1 {
		t.Errorf("DistractionsCount = %d, want 1", session.DistractionsCount)
	}
	if len(session.DistractionEvents) != 1 {
		t.Errorf("DistractionEvents length = %d, want 1", len(session.DistractionEvents))
	}
}

func TestAttachReview(t *testing.T) {
	session := NewFocusSession(SessionTypeFocus, 25*time.Minute, PresetLightFocus, nil, nil)

	for _, rating := range []int{0, -1, 6} {
		if err := session.AttachReview(rating, ""); err != ErrInvalidRating {
			t.Errorf("AttachReview(%d) error = %v, want ErrInvalidRating", rating, err)
		}
	}

	if err := session.AttachReview(4, "good block"); err != nil {
		t.Fatalf("AttachReview(4) error = %v", err)
	}
	if session.FocusRating == nil || *session.FocusRating != 4 {
		t.Errorf("FocusRating = %v, want 4", session.FocusRating)
	}
	if session.Notes != "good block" {
		t.Errorf("Notes = %q, want %q", session.Notes, "good block")
	}
}

func TestAddTag(t *testing.T) {
	session := NewFocusSession(SessionTypeFocus, 25*time.Minute, PresetLightFocus, nil, nil)

	session.AddTag("repo:pulse")
	session.AddTag("repo:pulse")
	session.AddTag("")

	if len(session.Tags) != 1 {
		t.Errorf("Tags length = %d, want 1 (no duplicates, no empties)", len(session.Tags))
	}
	if !session.HasTag("repo:pulse") {
		t.Error("HasTag should find the added tag")
	}
	if session.HasTag("branch:main") {
		t.Error("HasTag should not find a missing tag")
	}
}
