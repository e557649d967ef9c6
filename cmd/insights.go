package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/stats"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show productivity insights",
	Long:  `Display insights derived from your session history, like your most productive weekday and focus fatigue after long stretches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		history, err := app.sessions.History(ctx)
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		insights := stats.Insights(history)

		if jsonOutput {
			data, err := json.MarshalIndent(map[string]interface{}{"insights": insights}, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal insights: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(app.config.Theme.ColorTitle))

		fmt.Println()
		fmt.Printf("  %s\n\n", titleStyle.Render("Insights"))
		for _, insight := range insights {
			fmt.Printf("  💡 %s\n", insight)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}
