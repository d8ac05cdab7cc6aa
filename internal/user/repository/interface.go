package repository

import (
	"context"

	"conversational-task-manager/internal/model"
)

// Repository is the interface for user directory persistence.
type Repository interface {
	GetByID(ctx context.Context, id string) (model.User, error)
	GetByAPIKeyHash(ctx context.Context, keyHash string) (model.User, error)
}
