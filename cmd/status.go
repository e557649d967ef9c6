package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/stats"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current status",
	Long:  `Display the active session and today's focus statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		active, err := app.sessions.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to get status: %w", err)
		}
		history, err := app.sessions.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		today := stats.Daily(history, time.Now())

		if jsonOutput {
			return outputStatusJSON(active, today)
		}

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorDim))
		valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorValue))

		fmt.Println()
		if active == nil {
			fmt.Printf("  %s\n", dimStyle.Render("No active session."))
		} else {
			session := active.Session
			state := string(active.State)
			fmt.Printf("  %s %s\n", titleStyle.Render(session.Type.Label()), dimStyle.Render("("+state+")"))
			fmt.Printf("  Remaining: %s\n", valueStyle.Render(formatCmdDuration(active.Remaining(time.Now()))))
			if title, ok := app.tasks.LookupTitle(ctx, session.TaskID); ok {
				fmt.Printf("  Task: %s\n", title)
			}
			if len(session.Tags) > 0 {
				fmt.Printf("  Tags: %s\n", dimStyle.Render(fmt.Sprintf("%v", session.Tags)))
			}
			if session.DistractionsCount > 0 {
				fmt.Printf("  Distractions: %d\n", session.DistractionsCount)
			}
		}
		fmt.Println()
		fmt.Printf("  Today: %s focus, %s sessions, %d distractions\n\n",
			valueStyle.Render(today.FocusTime.String()),
			valueStyle.Render(fmt.Sprintf("%d", today.SessionsCompleted)),
			today.Distractions,
		)
		return nil
	},
}

// outputStatusJSON outputs the status in JSON format
func outputStatusJSON(active *domain.ActiveSession, today stats.DailyStats) error {
	result := map[string]interface{}{
		"active_session": nil,
		"today_stats": map[string]interface{}{
			"focus_time":         today.FocusTime.String(),
			"sessions_completed": today.SessionsCompleted,
			"distractions":       today.Distractions,
		},
	}

	if active != nil {
		session := active.Session
		sessionData := map[string]interface{}{
			"id":           session.ID,
			"type":         string(session.Type),
			"state":        string(active.State),
			"preset":       string(session.Preset),
			"remaining":    active.Remaining(time.Now()).String(),
			"started_at":   session.StartedAt.Format(time.RFC3339),
			"distractions": session.DistractionsCount,
			"tags":         session.Tags,
		}
		if session.TaskID != nil {
			sessionData["task_id"] = *session.TaskID
		}
		result["active_session"] = sessionData
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
