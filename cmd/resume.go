package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// resumeCmd represents the resume command
var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume a paused session",
	Long:  `Resume a paused session. Time spent paused does not count against the timer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		active, err := app.sessions.Resume(ctx)
		if err != nil {
			return fmt.Errorf("failed to resume session: %w", err)
		}

		fmt.Printf("▶️  Session resumed. Remaining: %s\n", formatCmdDuration(active.Remaining(time.Now())))
		return nil
	},
}
