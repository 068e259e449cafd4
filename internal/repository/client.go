package repository

import (
	"context"

	"clienthub/internal/model"
)

// ClientRepository defines data access for clients using SQL queries only.
// No business logic here — strictly persistence operations.
type ClientRepository interface {
	// Create inserts a new client record and returns the stored row.
	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// FindByID returns a client by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Client, error)

	// List returns all clients ordered by name.
	List(ctx context.Context) ([]model.Client, error)

	// Update writes the full row for the given client ID and returns the
	// stored result. Missing rows surface as sql.ErrNoRows.
	Update(ctx context.Context, c *model.Client) (*model.Client, error)

	// DeleteCascade removes the client together with its projects and their
	// tasks inside one transaction. Missing rows surface as sql.ErrNoRows.
	DeleteCascade(ctx context.Context, id string) (CascadeResult, error)
}
