package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// TaskPostgres is a PostgreSQL implementation of repository.TaskRepository.
type TaskPostgres struct {
	db *sql.DB
}

// NewTaskPostgres creates a new TaskPostgres repository.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

var _ repository.TaskRepository = (*TaskPostgres)(nil)

const taskColumns = `id, name, project_id, status, due_date, description, created_at`

func scanTask(row interface{ Scan(...any) error }) (*model.Task, error) {
	var (
		t       model.Task
		dueDate sql.NullTime
	)
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.ProjectID,
		&t.Status,
		&dueDate,
		&t.Description,
		&t.CreatedAt,
	); err != nil {
		return nil, err
	}
	t.DueDate = dateFromNull(dueDate)
	return &t, nil
}

// Create inserts a new task row and returns the stored record.
// A dangling project_id maps to repository.ErrInvalidReference.
func (r *TaskPostgres) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	const q = `
		INSERT INTO tasks (id, name, project_id, status, due_date, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.Name,
		t.ProjectID,
		t.Status,
		nullDate(t.DueDate),
		t.Description,
		t.CreatedAt,
	)
	out, err := scanTask(row)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single task by its ID.
func (r *TaskPostgres) FindByID(ctx context.Context, id string) (*model.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	return scanTask(r.db.QueryRowContext(ctx, q, id))
}

// List returns tasks sorted by due date with NULL due dates last.
// A non-empty projectID restricts the result to that project's tasks.
func (r *TaskPostgres) List(ctx context.Context, projectID string) ([]model.Task, error) {
	const base = `SELECT ` + taskColumns + ` FROM tasks`
	const order = ` ORDER BY due_date ASC NULLS LAST, created_at ASC, id ASC`

	var (
		rows *sql.Rows
		err  error
	)
	if projectID != "" {
		rows, err = r.db.QueryContext(ctx, base+` WHERE project_id = $1`+order, projectID)
	} else {
		rows, err = r.db.QueryContext(ctx, base+order)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the full row and returns the stored result.
func (r *TaskPostgres) Update(ctx context.Context, t *model.Task) (*model.Task, error) {
	const q = `
		UPDATE tasks
		SET name = $2, project_id = $3, status = $4, due_date = $5, description = $6
		WHERE id = $1
		RETURNING ` + taskColumns
	row := r.db.QueryRowContext(ctx, q,
		t.ID,
		t.Name,
		t.ProjectID,
		t.Status,
		nullDate(t.DueDate),
		t.Description,
	)
	out, err := scanTask(row)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// Delete removes a task by ID. Tasks are leaf entities so there is nothing
// to cascade to; sql.ErrNoRows surfaces when the id does not exist.
func (r *TaskPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
