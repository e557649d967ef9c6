package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/focuspulse/pulse/internal/adapters/storage"
	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
)

// exportFixture wires a task service over an empty in-memory store and
// returns a history holding one focus session and one short break.
func exportFixture(t *testing.T) []domain.FocusSession {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	app.tasks = services.NewTaskService(store)

	startedAt := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.Local)
	focus := domain.NewFocusSession(domain.SessionTypeFocus, 25*time.Minute, domain.PresetLightFocus, nil, nil)
	focus.StartedAt = startedAt
	focus.MarkCompleted()

	brk := domain.NewFocusSession(domain.SessionTypeShortBreak, 5*time.Minute, "", nil, nil)
	brk.StartedAt = startedAt.Add(25 * time.Minute)
	brk.MarkCompleted()

	return []domain.FocusSession{*focus, *brk}
}

// Every export format covers the same sessions for the same period, so
// break entries must show up in markdown output too.
func TestExportFormatsAgreeOnBreaks(t *testing.T) {
	ctx := context.Background()
	sessions := exportFixture(t)

	t.Run("markdown includes breaks", func(t *testing.T) {
		var buf bytes.Buffer
		if err := exportMarkdown(ctx, &buf, sessions); err != nil {
			t.Fatalf("exportMarkdown() error = %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, domain.PresetLightFocus.Name()) {
			t.Errorf("markdown output missing the focus session:\n%s", out)
		}
		if !strings.Contains(out, domain.SessionTypeShortBreak.Label()) {
			t.Errorf("markdown output missing the break session:\n%s", out)
		}
	})

	t.Run("csv includes breaks", func(t *testing.T) {
		var buf bytes.Buffer
		if err := exportCSV(ctx, &buf, sessions); err != nil {
			t.Fatalf("exportCSV() error = %v", err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if got := len(lines); got != 3 {
			t.Fatalf("csv rows = %d, want header + 2 sessions", got)
		}
		if !strings.Contains(lines[2], string(domain.SessionTypeShortBreak)) {
			t.Errorf("csv output missing the break session:\n%s", buf.String())
		}
	})

	t.Run("yaml includes breaks", func(t *testing.T) {
		var buf bytes.Buffer
		if err := exportYAML(&buf, sessions); err != nil {
			t.Fatalf("exportYAML() error = %v", err)
		}
		if !strings.Contains(buf.String(), string(domain.SessionTypeShortBreak)) {
			t.Errorf("yaml output missing the break session:\n%s", buf.String())
		}
	})
}
