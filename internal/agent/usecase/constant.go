package usecase

import "time"

// Message length bounds, enforced before classification.
const (
	MessageMinLen = 1
	MessageMaxLen = 1000
)

// DefaultStoreTimeout bounds each task store call. On expiry the
// outcome is a store failure; nothing is retried.
const DefaultStoreTimeout = 5 * time.Second

// ListReplyMaxTasks caps how many tasks a LIST reply enumerates.
const ListReplyMaxTasks = 10

// Fixed reply templates. Exact strings are part of the contract:
// tests assert on them verbatim.
const (
	replyUnknown      = "I can only help with task management. Try 'create a task' or 'show my tasks'."
	replyNotFound     = "I couldn't find that task. Try listing your tasks first."
	replyStoreFailure = "Something went wrong. Please try again."
	replyNoTasks      = "You have no tasks"

	replyInvalidMessage = "Invalid input: message must be between 1 and 1000 characters"
)
