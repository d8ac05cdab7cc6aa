package repository

import (
	"time"

	"conversational-task-manager/internal/model"
)

// CreateOptions defines the fields for inserting a task.
type CreateOptions struct {
	UserID          string
	Title           string
	Description     string
	Priority        model.Priority
	DueDate         *time.Time
	CalendarEventID string
}

// ListOptions defines list filters. Nil pointers mean "no filter".
type ListOptions struct {
	UserID    string
	Completed *bool
	Priority  model.Priority
}

// UpdateOptions defines a partial update. Only non-nil fields change.
type UpdateOptions struct {
	UserID          string
	TaskID          int64
	Title           *string
	Description     *string
	Completed       *bool
	CalendarEventID *string
}
