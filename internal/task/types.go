package task

import (
	"time"

	"conversational-task-manager/internal/model"
)

// CreateInput is the input for Create.
type CreateInput struct {
	Title       string
	Description string         // optional
	Priority    model.Priority // optional
	DueDate     *time.Time     // optional
}

// ListInput is the input for List. Nil filters mean "no filter".
type ListInput struct {
	Completed *bool
	Priority  model.Priority
}

// SetCompletionInput is the input for SetCompletion.
type SetCompletionInput struct {
	TaskID    int64
	Completed bool
}

// UpdateInput is the input for Update. At least one of NewTitle or
// NewDescription must be set.
type UpdateInput struct {
	TaskID         int64
	NewTitle       *string
	NewDescription *string
}

// DeleteInput is the input for Delete.
type DeleteInput struct {
	TaskID int64
}
