package http

import (
	"time"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title       string `json:"title"       binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Priority    string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"    binding:"omitempty"` // RFC 3339
}

func (r createReq) toInput() (task.CreateInput, error) {
	input := task.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
	}
	if r.DueDate != "" {
		due, err := time.Parse(time.RFC3339, r.DueDate)
		if err != nil {
			return input, errInvalidDueDate
		}
		input.DueDate = &due
	}
	return input, nil
}

// ---

type listReq struct {
	Completed *bool  `form:"completed"`
	Priority  string `form:"priority" binding:"omitempty,oneof=low medium high"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Completed: r.Completed,
		Priority:  model.Priority(r.Priority),
	}
}

// ---

type updateReq struct {
	TaskID      int64   `json:"-"` // populated from URI param
	Title       *string `json:"title"       binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
}

func (r updateReq) validate() error {
	if r.Title == nil && r.Description == nil {
		return errNoUpdateFields
	}
	return nil
}

func (r updateReq) toInput() task.UpdateInput {
	return task.UpdateInput{
		TaskID:         r.TaskID,
		NewTitle:       r.Title,
		NewDescription: r.Description,
	}
}

// ---

type completeReq struct {
	TaskID    int64 `json:"-"` // populated from URI param
	Completed *bool `json:"completed" binding:"required"`
}

func (r completeReq) toInput() task.SetCompletionInput {
	return task.SetCompletionInput{
		TaskID:    r.TaskID,
		Completed: *r.Completed,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Completed   bool       `json:"completed"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(tasks []model.Task) listResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = newTaskResp(t)
	}
	return listResp{Tasks: out, Total: len(out)}
}
