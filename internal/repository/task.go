package repository

import (
	"context"

	"clienthub/internal/model"
)

// TaskRepository defines data access for tasks.
type TaskRepository interface {
	// Create inserts a new task. A dangling ProjectID surfaces as
	// ErrInvalidReference.
	Create(ctx context.Context, t *model.Task) (*model.Task, error)

	// FindByID returns a task by its ID. Missing rows surface as sql.ErrNoRows.
	FindByID(ctx context.Context, id string) (*model.Task, error)

	// List returns tasks ordered by due date, NULL due dates last.
	// A non-empty projectID restricts the result to that project.
	List(ctx context.Context, projectID string) ([]model.Task, error)

	// Update writes the full row for the given task ID.
	Update(ctx context.Context, t *model.Task) (*model.Task, error)

	// Delete removes a task by ID. Missing rows surface as sql.ErrNoRows.
	Delete(ctx context.Context, id string) error
}
