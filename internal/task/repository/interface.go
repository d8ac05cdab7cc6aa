package repository

import (
	"context"

	"conversational-task-manager/internal/model"
)

// Repository is the interface for task persistence. Every operation
// filters by owner; a missing row and a foreign-owned row are both
// reported as task.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, opt CreateOptions) (model.Task, error)
	GetByID(ctx context.Context, userID string, taskID int64) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, opt UpdateOptions) (model.Task, error)
	Delete(ctx context.Context, userID string, taskID int64) error
}
