// Package mcp provides the MCP (Model Context Protocol) server for
// Pulse, exposing session control and statistics as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/services"
	"github.com/focuspulse/pulse/internal/stats"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server   *server.MCPServer
	sessions *services.SessionService
	tasks    *services.TaskService
}

// NewServer creates a new MCP server instance.
func NewServer(sessions *services.SessionService, tasks *services.TaskService) *Server {
	s := &Server{
		sessions: sessions,
		tasks:    tasks,
	}

	s.server = server.NewMCPServer(
		"pulse-focus-timer",
		"1.0.0",
		server.WithLogging(),
	)
	s.registerTools()
	return s
}

// Serve runs the server over stdio until the client disconnects.
func (s *Server) Serve() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	s.server.AddTool(
		mcp.NewTool(
			"get_status",
			mcp.WithDescription("Get the active session state and today's focus statistics"),
		),
		s.handleGetStatus,
	)

	startTool := mcp.NewTool(
		"start_focus",
		mcp.WithDescription("Start a new focus session"),
		mcp.WithString(
			"preset",
			mcp.Description("Preset profile: deep_work, light_focus, study, sprint (default light_focus)"),
			mcp.Enum("deep_work", "light_focus", "study", "sprint"),
		),
		mcp.WithString(
			"task",
			mcp.Description("Optional task id or fuzzy title to attach"),
		),
	)
	s.server.AddTool(startTool, s.handleStartFocus)

	breakTool := mcp.NewTool(
		"start_break",
		mcp.WithDescription("Start a break session"),
		mcp.WithString(
			"kind",
			mcp.Description("Break kind: short or long (default short)"),
			mcp.Enum("short", "long"),
		),
	)
	s.server.AddTool(breakTool, s.handleStartBreak)

	s.server.AddTool(
		mcp.NewTool(
			"pause_session",
			mcp.WithDescription("Pause the active session"),
		),
		s.handlePause,
	)

	s.server.AddTool(
		mcp.NewTool(
			"resume_session",
			mcp.WithDescription("Resume a paused session"),
		),
		s.handleResume,
	)

	s.server.AddTool(
		mcp.NewTool(
			"complete_session",
			mcp.WithDescription("Complete the active session and report what comes next"),
		),
		s.handleComplete,
	)

	s.server.AddTool(
		mcp.NewTool(
			"log_distraction",
			mcp.WithDescription("Log a distraction on the active session"),
		),
		s.handleLogDistraction,
	)

	s.server.AddTool(
		mcp.NewTool(
			"list_tasks",
			mcp.WithDescription("List open tasks"),
		),
		s.handleListTasks,
	)

	addTaskTool := mcp.NewTool(
		"add_task",
		mcp.WithDescription("Create a new task"),
		mcp.WithString(
			"title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
	)
	s.server.AddTool(addTaskTool, s.handleAddTask)

	s.server.AddTool(
		mcp.NewTool(
			"get_stats",
			mcp.WithDescription("Get daily/weekly focus statistics, streaks and the month summary"),
		),
		s.handleGetStats,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_achievements",
			mcp.WithDescription("Get achievement unlock states and challenge progress"),
		),
		s.handleGetAchievements,
	)

	s.server.AddTool(
		mcp.NewTool(
			"get_insights",
			mcp.WithDescription("Get derived productivity insights"),
		),
		s.handleGetInsights,
	)
}

// textResult marshals a value as indented JSON tool output.
func textResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := s.sessions.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	history, err := s.sessions.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	today := stats.Daily(history, time.Now())
	result := map[string]interface{}{
		"active_session": nil,
		"today": map[string]interface{}{
			"focus_time":         today.FocusTime.String(),
			"sessions_completed": today.SessionsCompleted,
			"distractions":       today.Distractions,
		},
	}

	if active != nil {
		session := active.Session
		sessionData := map[string]interface{}{
			"id":           session.ID,
			"type":         string(session.Type),
			"state":        string(active.State),
			"preset":       string(session.Preset),
			"remaining":    active.Remaining(time.Now()).String(),
			"progress":     active.Progress(time.Now()),
			"started_at":   session.StartedAt.Format(time.RFC3339),
			"distractions": session.DistractionsCount,
			"tags":         session.Tags,
		}
		if session.TaskID != nil {
			sessionData["task_id"] = *session.TaskID
		}
		result["active_session"] = sessionData
	}

	return textResult(result)
}

func (s *Server) handleStartFocus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	preset := domain.PresetLightFocus
	if presetStr := request.GetString("preset", ""); presetStr != "" {
		parsed, err := domain.ParsePreset(presetStr)
		if err != nil {
			return mcp.NewToolResultError("unknown preset: " + presetStr), nil
		}
		preset = parsed
	}

	var taskID *string
	if query := request.GetString("task", ""); query != "" {
		task, err := s.tasks.FindTask(ctx, query)
		if err != nil {
			return mcp.NewToolResultError("task not found: " + query), nil
		}
		taskID = &task.ID
	}

	active, err := s.sessions.Start(ctx, services.StartRequest{
		Type:   domain.SessionTypeFocus,
		Preset: preset,
		TaskID: taskID,
	})
	if err != nil {
		if err == domain.ErrSessionAlreadyActive {
			return mcp.NewToolResultError("a session is already active"), nil
		}
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return textResult(map[string]interface{}{
		"session_id": active.Session.ID,
		"preset":     string(active.Session.Preset),
		"planned":    active.Session.PlannedDuration.String(),
	})
}

func (s *Server) handleStartBreak(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionType := domain.SessionTypeShortBreak
	if request.GetString("kind", "short") == "long" {
		sessionType = domain.SessionTypeLongBreak
	}

	active, err := s.sessions.Start(ctx, services.StartRequest{Type: sessionType})
	if err != nil {
		if err == domain.ErrSessionAlreadyActive {
			return mcp.NewToolResultError("a session is already active"), nil
		}
		return nil, fmt.Errorf("failed to start break: %w", err)
	}

	return textResult(map[string]interface{}{
		"session_id": active.Session.ID,
		"type":       string(active.Session.Type),
		"planned":    active.Session.PlannedDuration.String(),
	})
}

func (s *Server) handlePause(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := s.sessions.Pause(ctx)
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return mcp.NewToolResultError("no active session"), nil
		}
		return nil, err
	}
	return textResult(map[string]interface{}{
		"state":     string(active.State),
		"remaining": active.Remaining(time.Now()).String(),
	})
}

func (s *Server) handleResume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := s.sessions.Resume(ctx)
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return mcp.NewToolResultError("no active session"), nil
		}
		return nil, err
	}
	return textResult(map[string]interface{}{
		"state":     string(active.State),
		"remaining": active.Remaining(time.Now()).String(),
	})
}

func (s *Server) handleComplete(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := s.sessions.Complete(ctx)
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return mcp.NewToolResultError("no active session"), nil
		}
		return nil, err
	}

	response := map[string]interface{}{
		"completed_type": string(result.Session.Type),
		"goal_reached":   result.GoalReached,
		"review_pending": result.ReviewPending,
	}
	if result.NextType != "" {
		response["next_type"] = string(result.NextType)
	}
	return textResult(response)
}

func (s *Server) handleLogDistraction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	active, err := s.sessions.LogDistraction(ctx, domain.DistractionManual)
	if err != nil {
		if err == domain.ErrNoActiveSession {
			return mcp.NewToolResultError("no active session"), nil
		}
		return nil, err
	}
	return textResult(map[string]interface{}{
		"distractions": active.Session.DistractionsCount,
	})
}

func (s *Server) handleListTasks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tasks, err := s.tasks.ListTasks(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	var taskList []map[string]interface{}
	for _, task := range tasks {
		entry := map[string]interface{}{
			"id":         task.ID,
			"title":      task.Title,
			"created_at": task.CreatedAt.Format(time.RFC3339),
		}
		if task.LastUsedAt != nil {
			entry["last_used_at"] = task.LastUsedAt.Format(time.RFC3339)
		}
		taskList = append(taskList, entry)
	}

	return textResult(map[string]interface{}{
		"tasks":       taskList,
		"total_count": len(taskList),
	})
}

func (s *Server) handleAddTask(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title, err := request.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError("title is required: " + err.Error()), nil
	}

	task, err := s.tasks.AddTask(ctx, title)
	if err != nil {
		return mcp.NewToolResultError("failed to add task: " + err.Error()), nil
	}

	return textResult(map[string]interface{}{
		"id":    task.ID,
		"title": task.Title,
	})
}

func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.sessions.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	now := time.Now()
	today := stats.Daily(history, now)
	week := stats.Week(history, now)
	season := stats.Season(history, now)

	weekData := make([]map[string]interface{}, 0, len(week))
	for _, day := range week {
		weekData = append(weekData, map[string]interface{}{
			"date":               day.Date.Format("2006-01-02"),
			"focus_time":         day.FocusTime.String(),
			"sessions_completed": day.SessionsCompleted,
			"distractions":       day.Distractions,
		})
	}

	result := map[string]interface{}{
		"today": map[string]interface{}{
			"focus_time":         today.FocusTime.String(),
			"sessions_completed": today.SessionsCompleted,
			"distractions":       today.Distractions,
		},
		"week":           weekData,
		"current_streak": stats.CurrentStreak(history, now),
		"longest_streak": stats.LongestStreak(history),
		"month": map[string]interface{}{
			"total_focus_time":   season.TotalFocusTime.String(),
			"sessions_completed": season.SessionsCompleted,
		},
	}
	if season.BestDay != nil {
		result["month"].(map[string]interface{})["best_day"] = season.BestDay.Format("2006-01-02")
	}

	return textResult(result)
}

func (s *Server) handleGetAchievements(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.sessions.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	prefs, err := s.sessions.Preferences(ctx)
	if err != nil {
		prefs = domain.DefaultPreferences()
	}

	achievements := stats.Achievements(history)
	daily, weekly := stats.Challenges(history, prefs, time.Now())

	var achievementList []map[string]interface{}
	for _, a := range achievements {
		achievementList = append(achievementList, map[string]interface{}{
			"id":          a.ID,
			"title":       a.Title,
			"description": a.Description,
			"is_unlocked": a.IsUnlocked,
		})
	}

	challengeData := func(c stats.Challenge) map[string]interface{} {
		return map[string]interface{}{
			"id":           c.ID,
			"title":        c.Title,
			"target":       c.Target,
			"progress":     c.Progress,
			"ratio":        c.ProgressRatio(),
			"is_completed": c.IsCompleted,
		}
	}

	return textResult(map[string]interface{}{
		"achievements":     achievementList,
		"daily_challenge":  challengeData(daily),
		"weekly_challenge": challengeData(weekly),
	})
}

func (s *Server) handleGetInsights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.sessions.History(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return textResult(map[string]interface{}{
		"insights": stats.Insights(history),
	})
}
