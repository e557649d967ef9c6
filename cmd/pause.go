package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// pauseCmd represents the pause command
var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause the current session",
	Long:  `Pause the currently running session. The timer freezes until resumed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		active, err := app.sessions.Pause(ctx)
		if err != nil {
			return fmt.Errorf("failed to pause session: %w", err)
		}

		fmt.Printf("⏸️  Session paused. Remaining: %s\n", formatCmdDuration(active.Remaining(time.Now())))
		return nil
	},
}
