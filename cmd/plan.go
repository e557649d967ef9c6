package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
)

var (
	planFrom   string
	planTo     string
	planPreset string
	planTask   string
)

// planCmd groups the planner subcommands
var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Manage the daily planner",
	Long:  `Schedule focus blocks for the day and tick them off as you go.`,
}

var planAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a focus block",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		start, err := parseClock(planFrom)
		if err != nil {
			return fmt.Errorf("invalid --from time %q (expected HH:MM)", planFrom)
		}
		end, err := parseClock(planTo)
		if err != nil {
			return fmt.Errorf("invalid --to time %q (expected HH:MM)", planTo)
		}

		preset := domain.PresetLightFocus
		if planPreset != "" {
			preset, err = domain.ParsePreset(planPreset)
			if err != nil {
				return fmt.Errorf("unknown preset %q", planPreset)
			}
		}

		var taskID *string
		if planTask != "" {
			task, err := app.tasks.FindTask(ctx, planTask)
			if err != nil {
				return fmt.Errorf("task %q not found", planTask)
			}
			taskID = &task.ID
		}

		block, err := domain.NewPlanBlock(start, end, preset, taskID)
		if err != nil {
			return fmt.Errorf("invalid block: %w", err)
		}

		blocks, err := app.storage.Planner().Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load planner: %w", err)
		}
		blocks = append(blocks, *block)
		if err := app.storage.Planner().Save(ctx, blocks); err != nil {
			return fmt.Errorf("failed to save planner: %w", err)
		}

		fmt.Printf("🗓️  Block scheduled: %s–%s (%s)\n",
			block.StartTime.Format("15:04"), block.EndTime.Format("15:04"), preset.Name())
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "List today's planned blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		blocks, err := app.storage.Planner().Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load planner: %w", err)
		}
		if len(blocks) == 0 {
			fmt.Println("Nothing planned. Add a block with \"pulse plan add --from 09:00 --to 09:50\".")
			return nil
		}

		sort.Slice(blocks, func(i, j int) bool {
			return blocks[i].StartTime.Before(blocks[j].StartTime)
		})

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorDim))

		fmt.Println()
		for _, block := range blocks {
			marker := "[ ]"
			if block.IsCompleted {
				marker = "[x]"
			}
			line := fmt.Sprintf("  %s %s–%s  %s", marker,
				block.StartTime.Format("15:04"), block.EndTime.Format("15:04"), block.Preset.Name())
			if title, ok := app.tasks.LookupTitle(ctx, block.TaskID); ok {
				line += dimStyle.Render("  " + title)
			}
			fmt.Println(line)
		}
		fmt.Println()
		return nil
	},
}

var planDoneCmd = &cobra.Command{
	Use:   "done <start-time>",
	Short: "Mark a planned block as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		target, err := parseClock(args[0])
		if err != nil {
			return fmt.Errorf("invalid start time %q (expected HH:MM)", args[0])
		}

		blocks, err := app.storage.Planner().Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load planner: %w", err)
		}

		for i := range blocks {
			if blocks[i].StartTime.Hour() == target.Hour() && blocks[i].StartTime.Minute() == target.Minute() {
				blocks[i].IsCompleted = true
				if err := app.storage.Planner().Save(ctx, blocks); err != nil {
					return fmt.Errorf("failed to save planner: %w", err)
				}
				fmt.Printf("✔️  Block %s–%s completed.\n",
					blocks[i].StartTime.Format("15:04"), blocks[i].EndTime.Format("15:04"))
				return nil
			}
		}
		return fmt.Errorf("no block starting at %s", args[0])
	},
}

// parseClock resolves an HH:MM string against today's date.
func parseClock(value string) (time.Time, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, err
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, now.Location()), nil
}

func init() {
	planAddCmd.Flags().StringVar(&planFrom, "from", "", "Block start time (HH:MM)")
	planAddCmd.Flags().StringVar(&planTo, "to", "", "Block end time (HH:MM)")
	planAddCmd.Flags().StringVarP(&planPreset, "preset", "p", "", "Preset profile for the block")
	planAddCmd.Flags().StringVarP(&planTask, "task", "t", "", "Task id or title for the block")
	_ = planAddCmd.MarkFlagRequired("from")
	_ = planAddCmd.MarkFlagRequired("to")

	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planListCmd)
	planCmd.AddCommand(planDoneCmd)
	rootCmd.AddCommand(planCmd)
}
