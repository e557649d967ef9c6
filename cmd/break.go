package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
)

var breakLong bool

// breakCmd represents the break command
var breakCmd = &cobra.Command{
	Use:   "break",
	Short: "Start a break session",
	Long: `Start a break session. Breaks use the durations from your
preferences; pass --long for a long break.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()

		breakType := domain.SessionTypeShortBreak
		if breakLong {
			breakType = domain.SessionTypeLongBreak
		}

		active, err := app.sessions.Start(ctx, services.StartRequest{Type: breakType})
		if err != nil {
			if err == domain.ErrSessionAlreadyActive {
				return fmt.Errorf("a session is already active — run \"pulse status\" or \"pulse stop\" first")
			}
			return fmt.Errorf("failed to start break: %w", err)
		}

		fmt.Printf("☕ %s started! (%s)\n", active.Session.Type.Label(), active.Session.PlannedDuration)
		return runSessionLoop(ctx, active)
	},
}

func init() {
	breakCmd.Flags().BoolVarP(&breakLong, "long", "l", false, "Take a long break instead of a short one")
}
