package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/focuspulse/pulse/internal/adapters/tui"
	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
)

// runSessionLoop drives the fullscreen timer for the active session and
// keeps the focus/break chain going until the user detaches, discards,
// declines the next session, or hits the daily goal.
func runSessionLoop(ctx context.Context, active *domain.ActiveSession) error {
	for {
		taskTitle, _ := app.tasks.LookupTitle(ctx, active.Session.TaskID)

		nudgeEvery := time.Duration(0)
		if active.Session.Type.IsFocus() {
			nudgeEvery = app.guard.NudgeInterval(active.Session.Preset.GuardLevel())
		}

		opts := tui.TimerOptions{
			Theme:      app.config.Theme,
			TaskTitle:  taskTitle,
			NudgeEvery: nudgeEvery,
		}
		if app.notifier.IsEnabled() {
			opts.OnNudge = func() { _ = app.notifier.NotifyGuardNudge() }
		}

		outcome, err := tui.RunTimer(ctx, app.sessions, active, opts)
		if err != nil {
			return fmt.Errorf("timer failed: %w", err)
		}

		switch outcome {
		case tui.OutcomeDetached:
			fmt.Println("⏳ Session keeps running in the background. Run \"pulse status\" to check on it.")
			return nil
		case tui.OutcomeDiscarded:
			if err := app.sessions.Discard(ctx); err != nil {
				return fmt.Errorf("failed to discard session: %w", err)
			}
			fmt.Println("🗑️  Session discarded.")
			return nil
		}

		result, err := app.sessions.Complete(ctx)
		if err != nil {
			return fmt.Errorf("failed to complete session: %w", err)
		}

		label := result.Session.Type.Label()
		fmt.Printf("✅ %s complete! (%s)\n", label, result.Session.EffectiveDuration())
		_ = app.notifier.NotifySessionComplete(result.Session.Type, result.Session.EffectiveDuration().String())

		if result.ReviewPending {
			promptReview(ctx)
		}

		if result.GoalReached {
			fmt.Println("🎯 Daily session goal reached. Great work — take the rest of the day easy!")
			return nil
		}
		if result.NextType == "" {
			return nil
		}

		if !confirm(fmt.Sprintf("Start %s now?", strings.ToLower(result.NextType.Label()))) {
			fmt.Println("Stopping here. See you next session!")
			return nil
		}

		req := services.StartRequest{Type: result.NextType}
		if result.NextType.IsFocus() {
			req.Preset = result.Session.Preset
			req.TaskID = result.Session.TaskID
			req.Tags = result.Session.Tags
		}
		active, err = app.sessions.Start(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to start next session: %w", err)
		}
	}
}

// promptReview asks for a focus rating and note after a focus session.
func promptReview(ctx context.Context) {
	if !confirm("Rate this session?") {
		return
	}
	result := tui.RunReview(app.config.Theme)
	if result.Aborted {
		return
	}
	if _, err := app.sessions.Review(ctx, result.Rating, result.Note); err != nil {
		fmt.Printf("⚠️  Could not save review: %v\n", err)
		return
	}
	fmt.Println("📝 Review saved.")
}

// confirm prints a [Y/n] prompt and reads a one-line answer.
func confirm(question string) bool {
	fmt.Printf("%s [Y/n] ", question)
	var answer string
	_, _ = fmt.Scanln(&answer)
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "" || answer == "y" || answer == "yes"
}

func formatCmdDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", m, s)
}
