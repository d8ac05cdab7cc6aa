package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
	"conversational-task-manager/pkg/gcalendar"
)

// Create validates input, stores the task and mirrors due-dated tasks
// into Google Calendar when a calendar client is configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, fmt.Errorf("%w: title is required", task.ErrValidation)
	}
	if len(title) > model.TaskTitleMaxLen {
		return model.Task{}, fmt.Errorf("%w: title must be at most %d characters", task.ErrValidation, model.TaskTitleMaxLen)
	}
	if len(input.Description) > model.TaskDescriptionMaxLen {
		return model.Task{}, fmt.Errorf("%w: description must be at most %d characters", task.ErrValidation, model.TaskDescriptionMaxLen)
	}
	if input.Priority != "" && !model.ValidPriority(input.Priority) {
		return model.Task{}, fmt.Errorf("%w: priority must be low, medium or high", task.ErrValidation)
	}

	created, err := uc.repo.Create(ctx, repository.CreateOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Priority:    input.Priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	uc.l.Infof(ctx, "task created: id=%d user=%s", created.ID, sc.UserID)

	// Calendar mirror is best-effort: a calendar outage must never fail
	// the task creation itself.
	if eventID := uc.tryCreateCalendarEvent(ctx, created); eventID != "" {
		mirrored, updErr := uc.repo.Update(ctx, repository.UpdateOptions{
			UserID:          sc.UserID,
			TaskID:          created.ID,
			CalendarEventID: &eventID,
		})
		if updErr != nil {
			uc.l.Warnf(ctx, "failed to record calendar event id for task %d: %v", created.ID, updErr)
		} else {
			created = mirrored
		}
	}

	return created, nil
}

// tryCreateCalendarEvent creates a calendar event for a due-dated task.
// Returns the event id, or empty string when skipped or failed.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil || t.DueDate == nil {
		return ""
	}

	start := *t.DueDate
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "calendar event creation failed for task %d (non-fatal): %v", t.ID, err)
		return ""
	}

	return event.ID
}
