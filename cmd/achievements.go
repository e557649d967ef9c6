package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/stats"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievements and challenges",
	Long:  `Display your achievement unlock states and progress on the daily and weekly session challenges.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		history, err := app.sessions.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}
		prefs, err := app.sessions.Preferences(ctx)
		if err != nil {
			prefs = domain.DefaultPreferences()
		}

		achievements := stats.Achievements(history)
		daily, weekly := stats.Challenges(history, prefs, time.Now())

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))
		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorDim))

		fmt.Println()
		fmt.Printf("  %s\n\n", titleStyle.Render("Achievements"))
		for _, a := range achievements {
			marker := "🔒"
			if a.IsUnlocked {
				marker = "🏆"
			}
			fmt.Printf("  %s %-18s %s\n", marker, a.Title, dimStyle.Render(a.Description))
		}

		fmt.Printf("\n  %s\n\n", titleStyle.Render("Challenges"))
		renderChallenge(daily, dimStyle)
		renderChallenge(weekly, dimStyle)
		fmt.Println()
		return nil
	},
}

func renderChallenge(c stats.Challenge, dimStyle lipgloss.Style) {
	const barWidth = 20
	filled := int(c.ProgressRatio() * barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	status := fmt.Sprintf("%d/%d", c.Progress, c.Target)
	if c.IsCompleted {
		status += " ✔"
	}
	fmt.Printf("  %-18s %s %s\n", c.Title, bar, status)
	fmt.Printf("  %s\n\n", dimStyle.Render(c.Description))
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
