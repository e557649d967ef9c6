package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var stopDiscard bool

// stopCmd represents the stop command
var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the current session",
	Long: `Complete the current active session and record it in your history.
Pass --discard to abandon the session without recording it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if stopDiscard {
			if err := app.sessions.Discard(ctx); err != nil {
				return fmt.Errorf("failed to discard session: %w", err)
			}
			fmt.Println("🗑️  Session discarded.")
			return nil
		}

		result, err := app.sessions.Complete(ctx)
		if err != nil {
			return fmt.Errorf("failed to stop session: %w", err)
		}

		fmt.Printf("✅ %s completed! Duration: %s\n", result.Session.Type.Label(), result.Session.EffectiveDuration())
		if result.ReviewPending {
			fmt.Println("   Run \"pulse review\" to rate this session.")
		}
		if result.GoalReached {
			fmt.Println("🎯 Daily session goal reached!")
		} else if result.NextType != "" {
			fmt.Printf("   Next up: %s\n", strings.ToLower(result.NextType.Label()))
		}
		return nil
	},
}

func init() {
	stopCmd.Flags().BoolVar(&stopDiscard, "discard", false, "Abandon the session without recording it")
}
