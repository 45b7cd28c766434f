package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/task-manager/internal/model"
)

// TaskRepo provides CRUD operations for the tasks table. Tasks carry no
// ownership information; every operation is keyed only by the task ID.
type TaskRepo struct{ DB *sql.DB }

func NewTaskRepo(db *sql.DB) *TaskRepo { return &TaskRepo{DB: db} }

// List returns all tasks ordered by ID.
func (r *TaskRepo) List(ctx context.Context) ([]model.Task, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title,description,completed,created_at,updated_at FROM tasks ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tasks := []model.Task{}
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// Get fetches a single task by ID.
func (r *TaskRepo) Get(ctx context.Context, id uint64) (model.Task, error) {
	var t model.Task
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,description,completed,created_at,updated_at FROM tasks WHERE id=? LIMIT 1",
		id).Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.Task{}, ErrNotFound
	}
	return t, err
}

// Create inserts a task and returns the stored row.
func (r *TaskRepo) Create(ctx context.Context, title, description string, completed bool) (model.Task, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO tasks (title, description, completed) VALUES (?,?,?)",
		title, description, completed)
	if err != nil {
		return model.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return r.Get(ctx, uint64(id))
}

// Update overwrites a task's fields and returns the stored row.
func (r *TaskRepo) Update(ctx context.Context, id uint64, title, description string, completed bool) (model.Task, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET title=?, description=?, completed=? WHERE id=?",
		title, description, completed, id)
	if err != nil {
		return model.Task{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Distinguish "no such row" from "row unchanged".
		if _, getErr := r.Get(ctx, id); getErr != nil {
			return model.Task{}, getErr
		}
	}
	return r.Get(ctx, id)
}

// Delete removes a task by ID, returning ErrNotFound when no row matched.
func (r *TaskRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id=?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
