package agent

import (
	"time"

	"conversational-task-manager/internal/model"
)

// Intent is the category of task operation a message requests.
type Intent string

const (
	IntentCreate   Intent = "CREATE"
	IntentList     Intent = "LIST"
	IntentComplete Intent = "COMPLETE"
	IntentUpdate   Intent = "UPDATE"
	IntentDelete   Intent = "DELETE"
	IntentUnknown  Intent = "UNKNOWN"
)

// Classification is the classifier's verdict on a message. Confidence
// is a fixed per-rule constant used for reply hedging, never for
// control flow.
type Classification struct {
	Intent     Intent
	Confidence float64
}

// TargetKind says how a message identifies the task it refers to.
type TargetKind string

const (
	TargetID            TargetKind = "ID"
	TargetTitleFragment TargetKind = "TITLE_FRAGMENT"
)

// TargetRef points at the task an operation applies to, either by
// numeric id or by a fragment of its title.
type TargetRef struct {
	Kind     TargetKind
	ID       int64
	Fragment string
}

// Params holds the structured fields extracted from a message. Only
// the fields the classified intent needs are populated.
type Params struct {
	Title       string
	Description string
	Priority    model.Priority
	DueDate     *time.Time

	// List filters.
	CompletedFilter *bool
	PriorityFilter  model.Priority

	// Completion flag for COMPLETE ("undo" flips it to false).
	Completed bool

	// Replacement values for UPDATE.
	NewTitle       string
	NewDescription string

	Target *TargetRef
}

// Tool names the store operation the dispatcher invoked, reported in
// reply metadata.
type Tool string

const (
	ToolAddTask      Tool = "add_task"
	ToolListTasks    Tool = "list_tasks"
	ToolCompleteTask Tool = "complete_task"
	ToolUpdateTask   Tool = "update_task"
	ToolDeleteTask   Tool = "delete_task"
)

// ErrorKind classifies a failed pipeline stage.
type ErrorKind string

const (
	ErrorKindNone         ErrorKind = ""
	ErrorKindValidation   ErrorKind = "VALIDATION"
	ErrorKindNotFound     ErrorKind = "NOT_FOUND"
	ErrorKindStoreFailure ErrorKind = "STORE_FAILURE"
)

// Outcome is the result of one dispatched store operation.
type Outcome struct {
	Tool      Tool
	Success   bool
	Task      *model.Task
	Tasks     []model.Task
	OldTitle  string // previous title for UPDATE replies
	ErrorKind ErrorKind
	ErrorText string
}

// Reply is the sole artifact handed back to the caller.
type Reply struct {
	Response        string
	Intent          Intent
	ToolCalled      Tool // empty when no store call was made
	Confidence      float64
	ExecutionTimeMS int64
}
