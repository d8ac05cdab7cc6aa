package user

import (
	"context"

	"conversational-task-manager/internal/model"
)

// Directory supplies authenticated user identities. It is a
// collaborator of the agent pipeline, not part of it.
type Directory interface {
	// GetByID returns the user with the given id.
	GetByID(ctx context.Context, id string) (model.User, error)

	// Authenticate resolves an API key to its user.
	Authenticate(ctx context.Context, apiKey string) (model.User, error)
}
