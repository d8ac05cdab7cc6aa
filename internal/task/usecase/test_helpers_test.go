package usecase_test

import (
	"context"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// Mock repository with function fields, overridden per test.
type mockRepository struct {
	createFunc  func(opt repository.CreateOptions) (model.Task, error)
	getByIDFunc func(userID string, taskID int64) (model.Task, error)
	listFunc    func(opt repository.ListOptions) ([]model.Task, error)
	updateFunc  func(opt repository.UpdateOptions) (model.Task, error)
	deleteFunc  func(userID string, taskID int64) error
}

func (m *mockRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return model.Task{ID: 1, UserID: opt.UserID, Title: opt.Title, Description: opt.Description, Priority: opt.Priority, DueDate: opt.DueDate}, nil
}

func (m *mockRepository) GetByID(ctx context.Context, userID string, taskID int64) (model.Task, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(userID, taskID)
	}
	return model.Task{ID: taskID, UserID: userID, Title: "task"}, nil
}

func (m *mockRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return []model.Task{}, nil
}

func (m *mockRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Task, error) {
	if m.updateFunc != nil {
		return m.updateFunc(opt)
	}
	t := model.Task{ID: opt.TaskID, UserID: opt.UserID, Title: "task"}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Completed != nil {
		t.Completed = *opt.Completed
	}
	return t, nil
}

func (m *mockRepository) Delete(ctx context.Context, userID string, taskID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(userID, taskID)
	}
	return nil
}

var _ repository.Repository = (*mockRepository)(nil)
