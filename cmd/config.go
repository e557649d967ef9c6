package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit session preferences",
	Long: `Show the stored timer preferences. Use "config set <key> <value>" to
change one of: focus, short_break, long_break, sessions_before_long,
daily_goal, sound, guard_level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		prefs, err := app.sessions.Preferences(ctx)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		fmt.Println()
		fmt.Println("  Current preferences:")
		fmt.Println()
		fmt.Printf("    focus                 %s\n", formatMinutes(prefs.FocusDuration))
		fmt.Printf("    short_break           %s\n", formatMinutes(prefs.ShortBreakDuration))
		fmt.Printf("    long_break            %s\n", formatMinutes(prefs.LongBreakDuration))
		fmt.Printf("    sessions_before_long  %d\n", prefs.SessionsBeforeLongBreak)
		fmt.Printf("    daily_goal            %d\n", prefs.DailySessionGoal)
		fmt.Printf("    sound                 %v\n", prefs.SoundEnabled)
		fmt.Printf("    guard_level           %s\n", prefs.GuardLevel)
		fmt.Println()
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		key, value := args[0], args[1]

		prefs, err := app.sessions.Preferences(ctx)
		if err != nil {
			return fmt.Errorf("failed to load preferences: %w", err)
		}

		switch key {
		case "focus", "short_break", "long_break":
			d, err := time.ParseDuration(value)
			if err != nil {
				return fmt.Errorf("invalid duration %q (try 25m)", value)
			}
			if d <= 0 {
				return fmt.Errorf("duration must be positive")
			}
			switch key {
			case "focus":
				prefs.FocusDuration = d
			case "short_break":
				prefs.ShortBreakDuration = d
			case "long_break":
				prefs.LongBreakDuration = d
			}
		case "sessions_before_long", "daily_goal":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid count %q", value)
			}
			if key == "daily_goal" {
				prefs.DailySessionGoal = n
			} else {
				prefs.SessionsBeforeLongBreak = n
			}
		case "sound":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("invalid boolean %q", value)
			}
			prefs.SoundEnabled = b
		case "guard_level":
			switch domain.DistractionLevel(value) {
			case domain.DistractionRelaxed, domain.DistractionMedium, domain.DistractionStrict:
				prefs.GuardLevel = domain.DistractionLevel(value)
			default:
				return fmt.Errorf("invalid guard level %q (relaxed, medium, strict)", value)
			}
		default:
			return fmt.Errorf("unknown preference %q", key)
		}

		if err := app.storage.Preferences().Save(ctx, prefs); err != nil {
			return fmt.Errorf("failed to save preferences: %w", err)
		}
		fmt.Printf("⚙️  %s updated.\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func formatMinutes(d time.Duration) string {
	return fmt.Sprintf("%d min", int(d.Minutes()))
}
