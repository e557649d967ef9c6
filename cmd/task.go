package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
)

var taskListAll bool

// taskCmd groups the task subcommands
var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage focus tasks",
	Long:  `Add, list and complete the tasks you attach focus sessions to.`,
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := app.tasks.AddTask(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to add task: %w", err)
		}

		fmt.Printf("➕ Task added: %s (%s)\n", task.Title, task.ID[:8])
		return nil
	},
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		tasks, err := app.tasks.ListTasks(ctx, !taskListAll)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks yet. Add one with \"pulse task add <title>\".")
			return nil
		}

		dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(app.config.Theme.ColorDim))
		doneStyle := lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color(app.config.Theme.ColorDim))

		fmt.Println()
		for _, task := range tasks {
			marker := "[ ]"
			title := task.Title
			if task.IsCompleted {
				marker = "[x]"
				title = doneStyle.Render(title)
			}
			line := fmt.Sprintf("  %s %s  %s", marker, dimStyle.Render(task.ID[:8]), title)
			if task.LastUsedAt != nil {
				line += dimStyle.Render(fmt.Sprintf("  (last used %s)", task.LastUsedAt.Format("Jan 2")))
			}
			fmt.Println(line)
		}
		fmt.Println()
		return nil
	},
}

var taskDoneCmd = &cobra.Command{
	Use:   "done <id-or-title>",
	Short: "Mark a task as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		task, err := app.tasks.CompleteTask(ctx, strings.Join(args, " "))
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		fmt.Printf("✔️  Task completed: %s\n", task.Title)
		return nil
	},
}

var taskUseCmd = &cobra.Command{
	Use:   "use <id-or-title>",
	Short: "Start a focus session on a task",
	Long:  `Find a task by id or fuzzy title match and start a focus session on it.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()
		workingDir, _ := os.Getwd()

		query := strings.Join(args, " ")
		task, err := app.tasks.FindTask(ctx, query)
		if err != nil {
			return fmt.Errorf("task %q not found", query)
		}

		active, err := app.sessions.Start(ctx, services.StartRequest{
			Type:       domain.SessionTypeFocus,
			Preset:     domain.PresetLightFocus,
			TaskID:     &task.ID,
			WorkingDir: workingDir,
		})
		if err != nil {
			if err == domain.ErrSessionAlreadyActive {
				return fmt.Errorf("a session is already active — run \"pulse status\" or \"pulse stop\" first")
			}
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Printf("🔵 Focusing on %q (%s)\n", task.Title, active.Session.PlannedDuration)
		return runSessionLoop(ctx, active)
	},
}

func init() {
	taskListCmd.Flags().BoolVarP(&taskListAll, "all", "a", false, "Include completed tasks")
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUseCmd)
}
