package task

import "errors"

// Domain-specific errors for the task package.
//
// ErrNotFound covers both a nonexistent task and a task owned by
// another user: callers must not be able to tell the two apart.
var (
	ErrNotFound   = errors.New("task not found")
	ErrValidation = errors.New("invalid task input")
)
