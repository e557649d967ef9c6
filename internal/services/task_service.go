package services

import (
	"context"
	"fmt"

	"github.com/focuspulse/pulse/internal/domain"
	"github.com/focuspulse/pulse/internal/ports"
)

// TaskService handles task list use cases.
type TaskService struct {
	storage ports.Storage
}

// NewTaskService creates a new task service.
func NewTaskService(storage ports.Storage) *TaskService {
	return &TaskService{storage: storage}
}

// AddTask creates a task with the given title.
func (s *TaskService) AddTask(ctx context.Context, title string) (*domain.FocusTask, error) {
	task, err := domain.NewFocusTask(title)
	if err != nil {
		return nil, err
	}

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if err := s.storage.Tasks().Save(ctx, append(tasks, *task)); err != nil {
		return nil, fmt.Errorf("failed to save tasks: %w", err)
	}
	return task, nil
}

// ListTasks returns all tasks, optionally filtered to open ones.
func (s *TaskService) ListTasks(ctx context.Context, openOnly bool) ([]domain.FocusTask, error) {
	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	if !openOnly {
		return tasks, nil
	}

	var open []domain.FocusTask
	for _, task := range tasks {
		if !task.IsCompleted {
			open = append(open, task)
		}
	}
	return open, nil
}

// FindTask resolves a task by exact id, falling back to a fuzzy title
// match. Returns ErrTaskNotFound when nothing matches.
func (s *TaskService) FindTask(ctx context.Context, idOrQuery string) (*domain.FocusTask, error) {
	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == idOrQuery {
			return &tasks[i], nil
		}
	}

	matches, err := s.storage.Tasks().SearchByTitle(ctx, idOrQuery)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, domain.ErrTaskNotFound
	}
	return &matches[0], nil
}

// CompleteTask marks a task done.
func (s *TaskService) CompleteTask(ctx context.Context, idOrQuery string) (*domain.FocusTask, error) {
	target, err := s.FindTask(ctx, idOrQuery)
	if err != nil {
		return nil, err
	}

	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	for i := range tasks {
		if tasks[i].ID == target.ID {
			tasks[i].MarkDone()
			if err := s.storage.Tasks().Save(ctx, tasks); err != nil {
				return nil, fmt.Errorf("failed to save tasks: %w", err)
			}
			done := tasks[i]
			return &done, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

// LookupTitle resolves a session's task reference against the current
// task list. A dangling reference yields ok=false rather than an error.
func (s *TaskService) LookupTitle(ctx context.Context, taskID *string) (string, bool) {
	if taskID == nil {
		return "", false
	}
	tasks, err := s.storage.Tasks().Load(ctx)
	if err != nil {
		return "", false
	}
	for _, task := range tasks {
		if task.ID == *taskID {
			return task.Title, true
		}
	}
	return "", false
}
