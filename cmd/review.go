package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/adapters/tui"
)

var (
	reviewRating int
	reviewNote   string
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Rate your last focus session",
	Long: `Attach a focus rating (1-5) and an optional note to the most recently
completed focus session. Without flags, an interactive prompt opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		rating := reviewRating
		note := reviewNote
		if rating == 0 {
			result := tui.RunReview(app.config.Theme)
			if result.Aborted {
				fmt.Println("Review skipped.")
				return nil
			}
			rating = result.Rating
			note = result.Note
		}

		session, err := app.sessions.Review(ctx, rating, note)
		if err != nil {
			return fmt.Errorf("failed to save review: %w", err)
		}

		fmt.Printf("📝 Review saved: %d/5 for the %s session on %s.\n",
			rating, session.Preset.Name(), session.StartedAt.Format("Jan 2 15:04"))
		return nil
	},
}

func init() {
	reviewCmd.Flags().IntVarP(&reviewRating, "rating", "r", 0, "Focus rating from 1 (scattered) to 5 (locked in)")
	reviewCmd.Flags().StringVarP(&reviewNote, "note", "n", "", "Optional note about the session")
}
