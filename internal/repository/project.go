package repository

import (
	"context"

	"clienthub/internal/model"
)

// ProjectRepository defines data access for projects.
type ProjectRepository interface {
	// Create inserts a new project. A dangling ClientID surfaces as
	// ErrInvalidReference.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// FindByID returns a project by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Project, error)

	// List returns projects ordered by deadline, NULL deadlines last.
	// A non-empty clientID restricts the result to that client.
	List(ctx context.Context, clientID string) ([]model.Project, error)

	// Update writes the full row for the given project ID.
	Update(ctx context.Context, p *model.Project) (*model.Project, error)

	// DeleteCascade removes the project and its tasks inside one transaction,
	// returning the number of tasks removed.
	DeleteCascade(ctx context.Context, id string) (int, error)
}
