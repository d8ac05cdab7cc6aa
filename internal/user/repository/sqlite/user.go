package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"conversational-task-manager/internal/db"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/user"
	"conversational-task-manager/internal/user/repository"
	pkgLog "conversational-task-manager/pkg/log"
)

type implRepository struct {
	db *db.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed user repository.
func New(database *db.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: database, l: l}
}

// GetByID fetches a user by id.
func (r *implRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, created_at FROM users WHERE id = ?`, id)
}

// GetByAPIKeyHash fetches the user owning the given API key hash.
func (r *implRepository) GetByAPIKeyHash(ctx context.Context, keyHash string) (model.User, error) {
	return r.getOne(ctx, `SELECT id, email, name, created_at FROM users WHERE api_key_hash = ?`, keyHash)
}

func (r *implRepository) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return model.User{}, user.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}
