package services

import (
	"context"
	"testing"

	"github.com/focuspulse/pulse/internal/adapters/storage"
	"github.com/focuspulse/pulse/internal/domain"
)

func newTaskTestService(t *testing.T) *TaskService {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("NewMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return NewTaskService(store)
}

func TestTaskService_AddTask(t *testing.T) {
	ctx := context.Background()
	svc := newTaskTestService(t)

	t.Run("adds a trimmed task", func(t *testing.T) {
		task, err := svc.AddTask(ctx, "  Ship release  ")
		if err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if task.Title != "Ship release" {
			t.Errorf("Title = %q, want %q", task.Title, "Ship release")
		}
	})

	t.Run("rejects blank titles", func(t *testing.T) {
		if _, err := svc.AddTask(ctx, "   "); err != domain.ErrEmptyTaskTitle {
			t.Errorf("AddTask(blank) error = %v, want ErrEmptyTaskTitle", err)
		}
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	ctx := context.Background()
	svc := newTaskTestService(t)

	first, err := svc.AddTask(ctx, "Open task")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	done, err := svc.AddTask(ctx, "Done task")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}
	if _, err := svc.CompleteTask(ctx, done.ID); err != nil {
		t.Fatalf("CompleteTask() error = %v", err)
	}

	t.Run("open only filters completed tasks", func(t *testing.T) {
		open, err := svc.ListTasks(ctx, true)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if len(open) != 1 || open[0].ID != first.ID {
			t.Errorf("ListTasks(openOnly) = %d tasks, want just the open one", len(open))
		}
	})

	t.Run("all includes completed tasks", func(t *testing.T) {
		all, err := svc.ListTasks(ctx, false)
		if err != nil {
			t.Fatalf("ListTasks() error = %v", err)
		}
		if len(all) != 2 {
			t.Errorf("ListTasks(all) = %d tasks, want 2", len(all))
		}
	})
}

func TestTaskService_FindTask(t *testing.T) {
	ctx := context.Background()
	svc := newTaskTestService(t)

	task, err := svc.AddTask(ctx, "Refactor storage layer")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	t.Run("exact id wins", func(t *testing.T) {
		found, err := svc.FindTask(ctx, task.ID)
		if err != nil {
			t.Fatalf("FindTask() error = %v", err)
		}
		if found.ID != task.ID {
			t.Errorf("FindTask(id) = %q, want %q", found.ID, task.ID)
		}
	})

	t.Run("fuzzy title fallback", func(t *testing.T) {
		found, err := svc.FindTask(ctx, "refactor")
		if err != nil {
			t.Fatalf("FindTask() error = %v", err)
		}
		if found.ID != task.ID {
			t.Errorf("FindTask(title) = %q, want %q", found.ID, task.ID)
		}
	})

	t.Run("nothing matches", func(t *testing.T) {
		if _, err := svc.FindTask(ctx, "zzzzzz"); err != domain.ErrTaskNotFound {
			t.Errorf("FindTask() error = %v, want ErrTaskNotFound", err)
		}
	})
}

func TestTaskService_LookupTitle(t *testing.T) {
	ctx := context.Background()
	svc := newTaskTestService(t)

	task, err := svc.AddTask(ctx, "Plan sprint")
	if err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	if title, ok := svc.LookupTitle(ctx, &task.ID); !ok || title != "Plan sprint" {
		t.Errorf("LookupTitle() = %q, %v; want %q, true", title, ok, "Plan sprint")
	}

	dangling := "missing-id"
	if _, ok := svc.LookupTitle(ctx, &dangling); ok {
		t.Error("LookupTitle(dangling) should report ok=false")
	}
	if _, ok := svc.LookupTitle(ctx, nil); ok {
		t.Error("LookupTitle(nil) should report ok=false")
	}
}
