package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/user"
)

// GetByID returns the user with the given id.
func (d *implDirectory) GetByID(ctx context.Context, id string) (model.User, error) {
	u, err := d.repo.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to load user %s: %w", id, err)
	}
	return u, nil
}

// Authenticate resolves an API key to its user. Keys are stored hashed;
// an unknown key maps to ErrInvalidAPIKey without revealing whether any
// key exists.
func (d *implDirectory) Authenticate(ctx context.Context, apiKey string) (model.User, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return model.User{}, user.ErrInvalidAPIKey
	}

	u, err := d.repo.GetByAPIKeyHash(ctx, HashAPIKey(apiKey))
	if errors.Is(err, user.ErrNotFound) {
		return model.User{}, user.ErrInvalidAPIKey
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to authenticate api key: %w", err)
	}

	return u, nil
}

// HashAPIKey returns the hex SHA-256 of an API key, the format stored
// in the users table.
func HashAPIKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:])
}
