package usecase

import (
	"context"
	"fmt"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
)

// SetCompletion marks a task done or not done.
func (uc *implUseCase) SetCompletion(ctx context.Context, sc model.Scope, input task.SetCompletionInput) (model.Task, error) {
	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{
		UserID:    sc.UserID,
		TaskID:    input.TaskID,
		Completed: &input.Completed,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to set completion on task %d: %w", input.TaskID, err)
	}

	uc.l.Infof(ctx, "task completion set: id=%d user=%s completed=%t", input.TaskID, sc.UserID, input.Completed)
	return updated, nil
}
