package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"conversational-task-manager/internal/db"
	"conversational-task-manager/internal/model"
	"conversational-task-manager/internal/task"
	"conversational-task-manager/internal/task/repository"
	pkgLog "conversational-task-manager/pkg/log"
)

type implRepository struct {
	db *db.DB
	l  pkgLog.Logger
}

// New creates a SQLite-backed task repository.
func New(database *db.DB, l pkgLog.Logger) repository.Repository {
	return &implRepository{db: database, l: l}
}

const taskColumns = `id, user_id, title, description, completed, priority, due_date, calendar_event_id, created_at, updated_at`

// Create inserts a task and returns the stored row.
func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	now := time.Now().UTC()

	var priority any
	if opt.Priority != "" {
		priority = string(opt.Priority)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (user_id, title, description, completed, priority, due_date, calendar_event_id, created_at, updated_at)
		 VALUES (?, ?, ?, 0, ?, ?, ?, ?, ?)`,
		opt.UserID, opt.Title, opt.Description, priority, opt.DueDate, opt.CalendarEventID, now, now,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, fmt.Errorf("reading inserted task id: %w", err)
	}

	return r.GetByID(ctx, opt.UserID, id)
}

// GetByID fetches one task owned by userID.
func (r *implRepository) GetByID(ctx context.Context, userID string, taskID int64) (model.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`,
		taskID, userID,
	)
	return scanTask(row)
}

// List returns the user's tasks, newest first.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{opt.UserID}

	if opt.Completed != nil {
		query += ` AND completed = ?`
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.Priority != "" {
		query += ` AND priority = ?`
		args = append(args, string(opt.Priority))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, scanErr := scanTask(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

// Update applies the non-nil fields of opt to a task owned by userID.
func (r *implRepository) Update(ctx context.Context, opt repository.UpdateOptions) (model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC()}

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	if opt.CalendarEventID != nil {
		sets = append(sets, "calendar_event_id = ?")
		args = append(args, *opt.CalendarEventID)
	}

	args = append(args, opt.TaskID, opt.UserID)

	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+` WHERE id = ? AND user_id = ?`,
		args...,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("updating task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return model.Task{}, fmt.Errorf("reading update result: %w", err)
	}
	if affected == 0 {
		return model.Task{}, task.ErrNotFound
	}

	return r.GetByID(ctx, opt.UserID, opt.TaskID)
}

// Delete removes a task owned by userID.
func (r *implRepository) Delete(ctx context.Context, userID string, taskID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = ? AND user_id = ?`,
		taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading delete result: %w", err)
	}
	if affected == 0 {
		return task.ErrNotFound
	}

	return nil
}

// scanner abstracts *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t         model.Task
		completed int
		priority  sql.NullString
		dueDate   sql.NullTime
	)

	err := s.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &completed, &priority, &dueDate, &t.CalendarEventID, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Task{}, task.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("scanning task: %w", err)
	}

	t.Completed = completed != 0
	if priority.Valid {
		t.Priority = model.Priority(priority.String)
	}
	if dueDate.Valid {
		due := dueDate.Time
		t.DueDate = &due
	}

	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
