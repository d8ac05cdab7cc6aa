package task

import (
	"context"

	"conversational-task-manager/internal/model"
)

// UseCase is the Task Store: exactly five typed operations, each scoped
// to the authenticated caller. Ownership is re-verified inside every
// operation regardless of what the caller resolved beforehand.
type UseCase interface {
	// Create adds a task owned by the scope user.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// List returns the scope user's tasks, optionally filtered.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)

	// SetCompletion marks a task done or not done.
	SetCompletion(ctx context.Context, sc model.Scope, input SetCompletionInput) (model.Task, error)

	// Update changes the title and/or description of a task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
}
