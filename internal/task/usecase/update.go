package usecase

import (
	"context"
	"fmt"
	"strings"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
)

// Update changes the title and/or description of a task.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.NewTitle == nil && input.NewDescription == nil {
		return model.Task{}, fmt.Errorf("%w: at least one of title or description must be provided", task.ErrValidation)
	}

	opt := repository.UpdateOptions{
		UserID: sc.UserID,
		TaskID: input.TaskID,
	}

	if input.NewTitle != nil {
		title := strings.TrimSpace(*input.NewTitle)
		if title == "" {
			return model.Task{}, fmt.Errorf("%w: title cannot be empty", task.ErrValidation)
		}
		if len(title) > model.TaskTitleMaxLen {
			return model.Task{}, fmt.Errorf("%w: title must be at most %d characters", task.ErrValidation, model.TaskTitleMaxLen)
		}
		opt.Title = &title
	}

	if input.NewDescription != nil {
		desc := strings.TrimSpace(*input.NewDescription)
		if len(desc) > model.TaskDescriptionMaxLen {
			return model.Task{}, fmt.Errorf("%w: description must be at most %d characters", task.ErrValidation, model.TaskDescriptionMaxLen)
		}
		opt.Description = &desc
	}

	updated, err := uc.repo.Update(ctx, opt)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to update task %d: %w", input.TaskID, err)
	}

	uc.l.Infof(ctx, "task updated: id=%d user=%s", input.TaskID, sc.UserID)
	return updated, nil
}
