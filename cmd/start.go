package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/focuspulse/pulse/internal/adapters/tui"
	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
)

var (
	startPreset   string
	startTask     string
	startTags     string
	startDuration time.Duration
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [task]",
	Short: "Start a focus session",
	Long: `Start a new focus session. Pick a preset profile with --preset and
optionally attach a task by id or fuzzy title match. If you are inside
a git repository, workspace tags (repo and branch) are added
automatically.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()
		workingDir, _ := os.Getwd()

		preset := domain.PresetLightFocus
		if startPreset != "" {
			parsed, err := domain.ParsePreset(startPreset)
			if err != nil {
				return fmt.Errorf("unknown preset %q (try: deep_work, light_focus, study, sprint)", startPreset)
			}
			preset = parsed
		} else if term.IsTerminal(os.Stdin.Fd()) {
			preset = pickPreset()
		}

		// Determine task: flag wins over positional arg
		query := startTask
		if query == "" && len(args) > 0 {
			query = args[0]
		}
		var taskID *string
		if query != "" {
			task, err := app.tasks.FindTask(ctx, query)
			if err != nil {
				return fmt.Errorf("task %q not found", query)
			}
			taskID = &task.ID
		}

		// Parse tags
		var tags []string
		for _, t := range strings.Split(startTags, ",") {
			t = strings.TrimSpace(t)
			if t != "" {
				tags = append(tags, t)
			}
		}

		active, err := app.sessions.Start(ctx, services.StartRequest{
			Type:       domain.SessionTypeFocus,
			Preset:     preset,
			TaskID:     taskID,
			Tags:       tags,
			Duration:   startDuration,
			WorkingDir: workingDir,
		})
		if err != nil {
			if err == domain.ErrSessionAlreadyActive {
				return fmt.Errorf("a session is already active — run \"pulse status\" or \"pulse stop\" first")
			}
			return fmt.Errorf("failed to start session: %w", err)
		}

		fmt.Printf("🔵 Focus session started! %s (%s)\n", preset.Name(), active.Session.PlannedDuration)
		return runSessionLoop(ctx, active)
	},
}

// pickPreset shows an interactive preset picker; aborting falls back to
// the default preset.
func pickPreset() domain.PresetProfile {
	presets := domain.AllPresets()
	items := make([]tui.PickerItem, len(presets))
	for i, preset := range presets {
		items[i] = tui.PickerItem{Label: preset.Name(), Desc: preset.Description()}
	}

	result := tui.RunPicker("Pick a focus preset", items, app.config.Theme)
	if result.Aborted {
		return domain.PresetLightFocus
	}
	return presets[result.Index]
}

func init() {
	startCmd.Flags().StringVarP(&startPreset, "preset", "p", "", "Preset profile: deep_work, light_focus, study, sprint")
	startCmd.Flags().StringVarP(&startTask, "task", "t", "", "Task id or title to attach to this session")
	startCmd.Flags().StringVar(&startTags, "tag", "", "Comma-separated tags for this session (e.g. coding,backend)")
	startCmd.Flags().DurationVarP(&startDuration, "duration", "d", 0, "Override the preset focus duration (e.g. 30m)")
}
