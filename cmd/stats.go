package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a dashboard of focus statistics",
	Long:  `Display a terminal dashboard with today's totals, the weekly trend, streaks, the month summary, tag breakdown and recent session notes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		now := time.Now()

		history, err := app.sessions.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		fmt.Println()
		renderDashboard(history, now)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func renderDashboard(history []domain.FocusSession, now time.Time) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorDim))
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorValue))
	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorFocus))

	width := 80
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width = w
	}
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	if barWidth > 40 {
		barWidth = 40
	}

	today := stats.Daily(history, now)
	week := stats.Week(history, now)
	season := stats.Season(history, now)

	// Header
	fmt.Printf("  %s\n", titleStyle.Render("Pulse — "+now.Format("Monday, Jan 2")))
	fmt.Printf("  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	// Today
	fmt.Printf("  Today: %s focus, %s sessions, %d distractions\n\n",
		valueStyle.Render(formatHours(today.FocusTime.Hours())),
		valueStyle.Render(fmt.Sprintf("%d", today.SessionsCompleted)),
		today.Distractions,
	)

	// Weekly trend
	if len(week) == 0 {
		fmt.Printf("  %s\n\n", dimStyle.Render("No focus time recorded this week."))
	} else {
		fmt.Printf("  %s\n", dimStyle.Render("Last 7 days"))
		var maxFocus time.Duration
		for _, day := range week {
			if day.FocusTime > maxFocus {
				maxFocus = day.FocusTime
			}
		}
		for _, day := range week {
			bar := 0
			if maxFocus > 0 {
				bar = int(float64(barWidth) * float64(day.FocusTime) / float64(maxFocus))
			}
			if bar == 0 && day.FocusTime > 0 {
				bar = 1
			}
			fmt.Printf("  %s %s %s\n",
				dimStyle.Render(day.Date.Format("Mon 02")),
				barStyle.Render(strings.Repeat("█", bar)),
				formatHours(day.FocusTime.Hours()),
			)
		}
		fmt.Println()
	}

	// Streaks
	fmt.Printf("  Streak: %s days (best %d)\n\n",
		valueStyle.Render(fmt.Sprintf("%d", stats.CurrentStreak(history, now))),
		stats.LongestStreak(history),
	)

	// Month summary
	fmt.Printf("  %s\n", dimStyle.Render(now.Format("January 2006")))
	fmt.Printf("  %s focus across %d completed sessions\n",
		valueStyle.Render(formatHours(season.TotalFocusTime.Hours())),
		season.SessionsCompleted,
	)
	if season.BestDay != nil {
		fmt.Printf("  Best day: %s\n", season.BestDay.Format("Jan 2"))
	}
	fmt.Println()

	// Today's tag breakdown
	tags := stats.TagBreakdown(history, now)
	if len(tags) > 0 {
		fmt.Printf("  %s\n", dimStyle.Render("Today by tag"))
		limit := len(tags)
		if limit > 5 {
			limit = 5
		}
		for _, entry := range tags[:limit] {
			fmt.Printf("  %-20s %s\n", entry.Tag, formatHours(entry.Total.Hours()))
		}
		fmt.Println()
	}

	// Recent notes
	noted := stats.RecentNotes(history, 3)
	if len(noted) > 0 {
		fmt.Printf("  %s\n", dimStyle.Render("Recent notes"))
		for _, session := range noted {
			fmt.Printf("  %s %s\n", dimStyle.Render(session.StartedAt.Format("Jan 2")), session.Notes)
		}
		fmt.Println()
	}
}

func formatHours(h float64) string {
	if h < 1 {
		return fmt.Sprintf("%dm", int(h*60))
	}
	return fmt.Sprintf("%.1fh", h)
}
