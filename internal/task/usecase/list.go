package usecase

import (
	"context"
	"fmt"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
)

// List returns the caller's tasks with optional completion/priority filters.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return nil, fmt.Errorf("%w: priority must be low, medium or high", task.ErrValidation)
	}

	tasks, err := uc.repo.List(ctx, repository.ListOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Priority:  input.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}
