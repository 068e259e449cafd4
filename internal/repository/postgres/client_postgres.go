package postgres

import (
	"context"
	"database/sql"

	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// ClientPostgres is a PostgreSQL implementation of repository.ClientRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type ClientPostgres struct {
	db *sql.DB
}

// NewClientPostgres creates a new ClientPostgres repository.
func NewClientPostgres(db *sql.DB) *ClientPostgres {
	return &ClientPostgres{db: db}
}

var _ repository.ClientRepository = (*ClientPostgres)(nil)

const clientColumns = `id, name, email, company, phone, logo_path, created_at`

func scanClient(row interface{ Scan(...any) error }) (*model.Client, error) {
	var c model.Client
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Company,
		&c.Phone,
		&c.LogoPath,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new client row and returns the stored record.
func (r *ClientPostgres) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		INSERT INTO clients (id, name, email, company, phone, logo_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Email,
		c.Company,
		c.Phone,
		c.LogoPath,
		c.CreatedAt,
	)
	out, err := scanClient(row)
	if err != nil {
		return nil, mapWriteError(err)
	}
	return out, nil
}

// FindByID fetches a single client by its ID.
func (r *ClientPostgres) FindByID(ctx context.Context, id string) (*model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	return scanClient(r.db.QueryRowContext(ctx, q, id))
}

// List returns all clients sorted by name, id as tie-break for a stable order.
func (r *ClientPostgres) List(ctx context.Context) ([]model.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients ORDER BY name ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update writes the full row and returns the stored result.
// sql.ErrNoRows surfaces when the id does not exist.
func (r *ClientPostgres) Update(ctx context.Context, c *model.Client) (*model.Client, error) {
	const q = `
		UPDATE clients
		SET name = $2, email = $3, company = $4, phone = $5, logo_path = $6
		WHERE id = $1
		RETURNING ` + clientColumns
	row := r.db.QueryRowContext(ctx, q,
		c.ID,
		c.Name,
		c.Email,
		c.Company,
		c.Phone,
		c.LogoPath,
	)
	return scanClient(row)
}

// DeleteCascade removes the client, its projects, and those projects' tasks
// in a single transaction. The dependent collections are filtered explicitly
// rather than relying on ON DELETE CASCADE so the row counts are observable.
func (r *ClientPostgres) DeleteCascade(ctx context.Context, id string) (repository.CascadeResult, error) {
	var result repository.CascadeResult

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return result, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		DELETE FROM tasks
		WHERE project_id IN (SELECT id FROM projects WHERE client_id = $1)`, id)
	if err != nil {
		return result, err
	}
	tasks, _ := res.RowsAffected()
	result.TasksDeleted = int(tasks)

	res, err = tx.ExecContext(ctx, `DELETE FROM projects WHERE client_id = $1`, id)
	if err != nil {
		return result, err
	}
	projects, _ := res.RowsAffected()
	result.ProjectsDeleted = int(projects)

	res, err = tx.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return result, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.CascadeResult{}, sql.ErrNoRows
	}

	if err := tx.Commit(); err != nil {
		return repository.CascadeResult{}, err
	}
	return result, nil
}
