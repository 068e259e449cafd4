package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// ProjectPostgres is a PostgreSQL implementation of repository.ProjectRepository.
type ProjectPostgres struct {
	db *sql.DB
}

// NewProjectPostgres creates a new ProjectPostgres repository.
func NewProjectPostgres(db *sql.DB) *ProjectPostgres {
	return &ProjectPostgres{db: db}
}

var _ repository.ProjectRepository = (*ProjectPostgres)(nil)

const projectColumns = `id, name, client_id, start_date, deadline, budget, description, status, progress, created_at`

func scanProject(row interface{ Scan(...any) error }) (*model.Project, error) {
	var (
		p         model.Project
		startDate sql.NullTime
		deadline  sql.NullTime
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.ClientID,
		&startDate,
		&deadline,
		&p.Budget,
		&p.Description,
		&p.Status,
		&p.Progress,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.StartDate = dateFromNull(startDate)
	p.Deadline = dateFromNull(deadline)
	return &p, nil
}

// Create inserts a new project row and returns the stored record.
// A dangling client_id maps to repository.ErrInvalidReference.
func (r *ProjectPostgres) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		INSERT INTO projects (id, name, client_id, start_date, deadline, budget, description, status, progress, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.ClientID,
		nullDate(p.StartDate),
		nullDate(p.Deadline),
		p.Budget,
		p.Description,
		p.Status,
		p.Progress,
		p.CreatedAt,
	)
	out, err := scanProject(row)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single project by its ID.
func (r *ProjectPostgres) FindByID(ctx context.Context, id string) (*model.Project, error) {
	const q = `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRowContext(ctx, q, id))
}

// List returns projects sorted by deadline with NULL deadlines last.
// A non-empty clientID restricts the result to that client's projects.
func (r *ProjectPostgres) List(ctx context.Context, clientID string) ([]model.Project, error) {
	const base = `SELECT ` + projectColumns + ` FROM projects`
	const order = ` ORDER BY deadline ASC NULLS LAST, created_at ASC, id ASC`

	var (
		rows *sql.Rows
		err  error
	)
	if clientID != "" {
		rows, err = r.db.QueryContext(ctx, base+` WHERE client_id = $1`+order, clientID)
	} else {
		rows, err = r.db.QueryContext(ctx, base+order)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the full row and returns the stored result.
func (r *ProjectPostgres) Update(ctx context.Context, p *model.Project) (*model.Project, error) {
	const q = `
		UPDATE projects
		SET name = $2, client_id = $3, start_date = $4, deadline = $5,
		    budget = $6, description = $7, status = $8, progress = $9
		WHERE id = $1
		RETURNING ` + projectColumns
	row := r.db.QueryRowContext(ctx, q,
		p.ID,
		p.Name,
		p.ClientID,
		nullDate(p.StartDate),
		nullDate(p.Deadline),
		p.Budget,
		p.Description,
		p.Status,
		p.Progress,
	)
	out, err := scanProject(row)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// DeleteCascade removes the project and its tasks in a single transaction,
// returning the number of tasks removed. Sibling projects and the owning
// client are untouched.
func (r *ProjectPostgres) DeleteCascade(ctx context.Context, id string) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM tasks WHERE project_id = $1`, id)
	if err != nil {
		return 0, err
	}
	tasks, _ := res.RowsAffected()

	res, err = tx.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return 0, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return int(tasks), nil
}
