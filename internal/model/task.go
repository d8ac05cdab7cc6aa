package model

import "time"

// Priority is the task priority level.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ValidPriority reports whether p is one of the known levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a todo item owned by a single user.
type Task struct {
	ID              int64
	UserID          string // owner, never accepted from clients
	Title           string // 1-200 chars
	Description     string // optional, max 2000 chars
	Completed       bool
	Priority        Priority   // optional: low | medium | high
	DueDate         *time.Time // optional
	CalendarEventID string     // Google Calendar mirror, empty when not mirrored
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Field length bounds, shared by store validation and HTTP binding.
const (
	TaskTitleMaxLen       = 200
	TaskDescriptionMaxLen = 2000
)
