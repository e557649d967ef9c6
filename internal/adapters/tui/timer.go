// Package tui provides the terminal interfaces for Pulse: the running
// session timer, option pickers and the post-session review prompt.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/focuspulse/pulse/internal/config"
	"github.com/focuspulse/pulse/internal/domain"
)

// Controller is the subset of session operations the timer invokes
// while running.
type Controller interface {
	Pause(ctx context.Context) (*domain.ActiveSession, error)
	Resume(ctx context.Context) (*domain.ActiveSession, error)
	LogDistraction(ctx context.Context, reason domain.DistractionReason) (*domain.ActiveSession, error)
}

// TimerOutcome describes how the timer interface ended.
type TimerOutcome int

const (
	// OutcomeDetached leaves the session running in the background.
	OutcomeDetached TimerOutcome = iota
	// OutcomeCompleted means the session finished (naturally or early).
	OutcomeCompleted
	// OutcomeDiscarded abandons the session without recording it.
	OutcomeDiscarded
)

// tickMsg fires once per second while the timer is on screen.
type tickMsg time.Time

// nudgeMsg fires at the Pulse Guard interval.
type nudgeMsg time.Time

type timerModel struct {
	ctx        context.Context
	controller Controller
	active     *domain.ActiveSession
	progress   progress.Model
	theme      config.ThemeConfig
	taskTitle  string
	nudgeEvery time.Duration
	onNudge    func()
	nudged     bool
	outcome    TimerOutcome
	err        error
	width      int
}

// TimerOptions configures the timer interface.
type TimerOptions struct {
	Theme      config.ThemeConfig
	TaskTitle  string
	NudgeEvery time.Duration // 0 disables guard nudges
	OnNudge    func()        // invoked alongside the on-screen nudge
}

// RunTimer displays the fullscreen timer for the active session and
// blocks until the session completes, is discarded, or is detached.
func RunTimer(ctx context.Context, controller Controller, active *domain.ActiveSession, opts TimerOptions) (TimerOutcome, error) {
	model := timerModel{
		ctx:        ctx,
		controller: controller,
		active:     active,
		theme:      opts.Theme,
		taskTitle:  opts.TaskTitle,
		nudgeEvery: opts.NudgeEvery,
		onNudge:    opts.OnNudge,
		progress:   progress.New(progress.WithDefaultGradient()),
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return OutcomeDetached, fmt.Errorf("timer failed: %w", err)
	}

	result := final.(timerModel)
	if result.err != nil {
		return result.outcome, result.err
	}
	return result.outcome, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func nudge(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return nudgeMsg(t)
	})
}

func (m timerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.nudgeEvery > 0 {
		cmds = append(cmds, nudge(m.nudgeEvery))
	}
	return tea.Batch(cmds...)
}

func (m timerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 12
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case tickMsg:
		if m.active.State == domain.SessionStateRunning && m.active.Remaining(time.Now()) == 0 {
			m.outcome = OutcomeCompleted
			return m, tea.Quit
		}
		return m, tick()

	case nudgeMsg:
		if m.active.State == domain.SessionStateRunning {
			m.nudged = true
			if m.onNudge != nil {
				m.onNudge()
			}
		}
		return m, nudge(m.nudgeEvery)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m timerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p", " ":
		var (
			active *domain.ActiveSession
			err    error
		)
		if m.active.State == domain.SessionStatePaused {
			active, err = m.controller.Resume(m.ctx)
		} else {
			active, err = m.controller.Pause(m.ctx)
		}
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.active = active
		return m, nil

	case "d":
		active, err := m.controller.LogDistraction(m.ctx, domain.DistractionManual)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.active = active
		m.nudged = false
		return m, nil

	case "enter", "c":
		m.outcome = OutcomeCompleted
		return m, tea.Quit

	case "x":
		m.outcome = OutcomeDiscarded
		return m, tea.Quit

	case "q", "esc", "ctrl+c":
		m.outcome = OutcomeDetached
		return m, tea.Quit
	}
	return m, nil
}

func (m timerModel) View() string {
	session := m.active.Session
	now := time.Now()

	color := m.theme.ColorFocus
	if session.Type.IsBreak() {
		color = m.theme.ColorBreak
	}
	if m.active.State == domain.SessionStatePaused {
		color = m.theme.ColorPaused
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorTitle))
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorDim))

	var b strings.Builder
	b.WriteString("\n")

	header := session.Type.Label()
	if m.taskTitle != "" {
		header = fmt.Sprintf("%s · %s", header, m.taskTitle)
	}
	b.WriteString("  " + titleStyle.Render(header) + "\n\n")

	remaining := m.active.Remaining(now)
	b.WriteString("  " + clockStyle.Render(formatClock(remaining)) + "\n\n")
	b.WriteString("  " + m.progress.ViewAs(m.active.Progress(now)) + "\n\n")

	if m.active.State == domain.SessionStatePaused {
		b.WriteString("  " + dimStyle.Render("Paused") + "\n")
	}
	if session.DistractionsCount > 0 {
		b.WriteString("  " + dimStyle.Render(fmt.Sprintf("Distractions: %d", session.DistractionsCount)) + "\n")
	}
	if m.nudged {
		b.WriteString("  " + dimStyle.Render("Pulse Guard: still on task? (d logs a distraction)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + dimStyle.Render("p pause · d distraction · enter complete · x discard · q detach") + "\n")
	return b.String()
}

// formatClock renders a duration as mm:ss, or h:mm:ss past an hour.
func formatClock(d time.Duration) string {
	total := int(d.Round(time.Second).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
