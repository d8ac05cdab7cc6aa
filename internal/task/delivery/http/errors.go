package http

import "errors"

var (
	errInvalidDueDate = errors.New("due_date must be RFC 3339")
	errNoUpdateFields = errors.New("at least one of title or description is required")
	errInvalidTaskID  = errors.New("task id must be a positive integer")
)
