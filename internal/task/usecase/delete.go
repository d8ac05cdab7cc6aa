package usecase

import (
	"context"
	"fmt"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
)

// Delete removes a task and its calendar mirror, if any.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input task.DeleteInput) error {
	// Read first so the calendar event id survives the delete.
	existing, err := uc.repo.GetByID(ctx, sc.UserID, input.TaskID)
	if err != nil {
		return fmt.Errorf("failed to load task %d: %w", input.TaskID, err)
	}

	if err := uc.repo.Delete(ctx, sc.UserID, input.TaskID); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", input.TaskID, err)
	}

	uc.l.Infof(ctx, "task deleted: id=%d user=%s", input.TaskID, sc.UserID)

	if uc.calendar != nil && existing.CalendarEventID != "" {
		if delErr := uc.calendar.DeleteEvent(ctx, uc.calendarID, existing.CalendarEventID); delErr != nil {
			uc.l.Warnf(ctx, "calendar event cleanup failed for task %d (non-fatal): %v", input.TaskID, delErr)
		}
	}

	return nil
}
