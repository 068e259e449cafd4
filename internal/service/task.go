package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/cache"
	"clienthub/internal/event"
	"clienthub/internal/model"
	"clienthub/internal/repository"
)

// TaskPatch carries the fields of a partial task update. Nil fields are
// left unchanged.
type TaskPatch struct {
	Name        *string       `json:"name"`
	ProjectID   *string       `json:"project_id"`
	Status      *model.Status `json:"status"`
	DueDate     *model.Date   `json:"due_date"`
	Description *string       `json:"description"`
}

// TaskService defines the use cases for handling tasks.
type TaskService interface {
	// List returns tasks sorted by due date (missing due dates last),
	// optionally restricted to one project.
	List(ctx context.Context, projectID string) ([]model.Task, error)

	// Create stores a new task referencing an existing project. Any
	// caller-supplied ID is discarded and a fresh one assigned.
	Create(ctx context.Context, t *model.Task) (*model.Task, error)

	// Update applies a partial merge by ID.
	Update(ctx context.Context, id string, patch TaskPatch) (*model.Task, error)

	// Delete removes a task. Tasks are leaf entities, nothing cascades.
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	repo   repository.TaskRepository
	cache  *cache.DashboardCache
	events event.Publisher
	log    *zap.Logger
}

// NewTaskService constructs a new TaskService.
func NewTaskService(repo repository.TaskRepository, dc *cache.DashboardCache, events event.Publisher, log *zap.Logger) TaskService {
	return &taskService{repo: repo, cache: dc, events: events, log: log}
}

func (s *taskService) List(ctx context.Context, projectID string) ([]model.Task, error) {
	return s.repo.List(ctx, projectID)
}

func (s *taskService) Create(ctx context.Context, t *model.Task) (*model.Task, error) {
	t.ID = uuid.New().String()
	t.CreatedAt = time.Now().UTC()
	if t.Status == "" {
		t.Status = model.StatusTodo
	}
	if err := validateTask(t); err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, t)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrInvalidRef
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.TaskCreated, stored.ID, stored)
	return stored, nil
}

func (s *taskService) Update(ctx context.Context, id string, patch TaskPatch) (*model.Task, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.ProjectID != nil {
		existing.ProjectID = *patch.ProjectID
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.DueDate != nil {
		existing.DueDate = patch.DueDate
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}

	if err := validateTask(existing); err != nil {
		return nil, err
	}

	stored, err := s.repo.Update(ctx, existing)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrTaskNotFound
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrInvalidRef
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.TaskUpdated, stored.ID, stored)
	return stored, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.TaskDeleted, id, nil)
	return nil
}

func validateTask(t *model.Task) error {
	if t.ProjectID == "" {
		return ErrInvalidRef
	}
	if _, err := uuid.Parse(t.ProjectID); err != nil {
		return ErrInvalidRef
	}
	if !t.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
