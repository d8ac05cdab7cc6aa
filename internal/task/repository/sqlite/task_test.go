package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"conversational-task-manager/internal/db"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
	"conversational-task-manager/internal/task/repository/sqlite"
	pkgLog "conversational-task-manager/pkg/log"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)   {}

var _ pkgLog.Logger = (*mockLogger)(nil)

func setupRepo(t *testing.T) repository.Repository {
	t.Helper()

	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	for _, id := range []string{"user-1", "user-2"} {
		_, err := database.Exec(
			`INSERT INTO users (id, email, name, api_key_hash) VALUES (?, ?, ?, ?)`,
			id, id+"@example.com", id, "hash-"+id,
		)
		if err != nil {
			t.Fatalf("failed to seed user %s: %v", id, err)
		}
	}

	return sqlite.New(database, &mockLogger{})
}

func TestTaskRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And Get", func(t *testing.T) {
		repo := setupRepo(t)

		created, err := repo.Create(ctx, repository.CreateOptions{
			UserID:   "user-1",
			Title:    "Buy milk",
			Priority: model.PriorityHigh,
		})
		if err != nil {
			t.Fatalf("unexpected create error: %v", err)
		}
		if created.ID == 0 || created.Title != "Buy milk" || created.Completed {
			t.Errorf("unexpected created task: %+v", created)
		}
		if created.Priority != model.PriorityHigh {
			t.Errorf("expected high priority, got %q", created.Priority)
		}

		got, err := repo.GetByID(ctx, "user-1", created.ID)
		if err != nil {
			t.Fatalf("unexpected get error: %v", err)
		}
		if got.Title != "Buy milk" {
			t.Errorf("unexpected fetched task: %+v", got)
		}
	})

	t.Run("Ownership Isolation", func(t *testing.T) {
		repo := setupRepo(t)

		created, _ := repo.Create(ctx, repository.CreateOptions{UserID: "user-1", Title: "Private"})

		if _, err := repo.GetByID(ctx, "user-2", created.ID); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound for foreign owner, got %v", err)
		}
		if _, err := repo.Update(ctx, repository.UpdateOptions{UserID: "user-2", TaskID: created.ID, Title: strPtr("Stolen")}); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound updating foreign task, got %v", err)
		}
		if err := repo.Delete(ctx, "user-2", created.ID); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound deleting foreign task, got %v", err)
		}

		// Still intact for the owner.
		if _, err := repo.GetByID(ctx, "user-1", created.ID); err != nil {
			t.Errorf("owner lost access to own task: %v", err)
		}
	})

	t.Run("List With Filters", func(t *testing.T) {
		repo := setupRepo(t)

		a, _ := repo.Create(ctx, repository.CreateOptions{UserID: "user-1", Title: "Task A", Priority: model.PriorityHigh})
		repo.Create(ctx, repository.CreateOptions{UserID: "user-1", Title: "Task B"})
		repo.Create(ctx, repository.CreateOptions{UserID: "user-2", Title: "Other user task"})

		completed := true
		if _, err := repo.Update(ctx, repository.UpdateOptions{UserID: "user-1", TaskID: a.ID, Completed: &completed}); err != nil {
			t.Fatalf("unexpected update error: %v", err)
		}

		all, err := repo.List(ctx, repository.ListOptions{UserID: "user-1"})
		if err != nil {
			t.Fatalf("unexpected list error: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 tasks for user-1, got %d", len(all))
		}

		incomplete := false
		pending, _ := repo.List(ctx, repository.ListOptions{UserID: "user-1", Completed: &incomplete})
		if len(pending) != 1 || pending[0].Title != "Task B" {
			t.Errorf("unexpected pending tasks: %+v", pending)
		}

		high, _ := repo.List(ctx, repository.ListOptions{UserID: "user-1", Priority: model.PriorityHigh})
		if len(high) != 1 || high[0].Title != "Task A" {
			t.Errorf("unexpected high-priority tasks: %+v", high)
		}
	})

	t.Run("Update Fields", func(t *testing.T) {
		repo := setupRepo(t)

		created, _ := repo.Create(ctx, repository.CreateOptions{UserID: "user-1", Title: "Old title"})

		updated, err := repo.Update(ctx, repository.UpdateOptions{
			UserID:      "user-1",
			TaskID:      created.ID,
			Title:       strPtr("New title"),
			Description: strPtr("now with details"),
		})
		if err != nil {
			t.Fatalf("unexpected update error: %v", err)
		}
		if updated.Title != "New title" || updated.Description != "now with details" {
			t.Errorf("unexpected updated task: %+v", updated)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		repo := setupRepo(t)

		created, _ := repo.Create(ctx, repository.CreateOptions{UserID: "user-1", Title: "Doomed"})

		if err := repo.Delete(ctx, "user-1", created.ID); err != nil {
			t.Fatalf("unexpected delete error: %v", err)
		}
		if _, err := repo.GetByID(ctx, "user-1", created.ID); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound after delete, got %v", err)
		}
		if err := repo.Delete(ctx, "user-1", created.ID); !errors.Is(err, task.ErrNotFound) {
			t.Errorf("expected ErrNotFound on double delete, got %v", err)
		}
	})
}

func strPtr(s string) *string { return &s }
