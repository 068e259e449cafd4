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

// ProjectPatch carries the fields of a partial project update. Nil fields
// are left unchanged.
type ProjectPatch struct {
	Name        *string       `json:"name"`
	ClientID    *string       `json:"client_id"`
	StartDate   *model.Date   `json:"start_date"`
	Deadline    *model.Date   `json:"deadline"`
	Budget      *float64      `json:"budget"`
	Description *string       `json:"description"`
	Status      *model.Status `json:"status"`
	Progress    *int          `json:"progress"`
}

// ProjectService defines the use cases for handling projects.
type ProjectService interface {
	// List returns projects sorted by deadline (missing deadlines last),
	// optionally restricted to one client.
	List(ctx context.Context, clientID string) ([]model.Project, error)

	// Create stores a new project referencing an existing client. Any
	// caller-supplied ID is discarded and a fresh one assigned.
	Create(ctx context.Context, p *model.Project) (*model.Project, error)

	// Update applies a partial merge by ID.
	Update(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error)

	// Delete removes the project and all its tasks; the owning client and
	// sibling projects are untouched.
	Delete(ctx context.Context, id string) error
}

type projectService struct {
	repo   repository.ProjectRepository
	cache  *cache.DashboardCache
	events event.Publisher
	log    *zap.Logger
}

// NewProjectService constructs a new ProjectService.
func NewProjectService(repo repository.ProjectRepository, dc *cache.DashboardCache, events event.Publisher, log *zap.Logger) ProjectService {
	return &projectService{repo: repo, cache: dc, events: events, log: log}
}

func (s *projectService) List(ctx context.Context, clientID string) ([]model.Project, error) {
	return s.repo.List(ctx, clientID)
}

func (s *projectService) Create(ctx context.Context, p *model.Project) (*model.Project, error) {
	p.ID = uuid.New().String()
	p.CreatedAt = time.Now().UTC()
	if p.Status == "" {
		p.Status = model.StatusTodo
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}

	stored, err := s.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidReference) {
			return nil, ErrInvalidRef
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ProjectCreated, stored.ID, stored)
	return stored, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch ProjectPatch) (*model.Project, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.ClientID != nil {
		existing.ClientID = *patch.ClientID
	}
	if patch.StartDate != nil {
		existing.StartDate = patch.StartDate
	}
	if patch.Deadline != nil {
		existing.Deadline = patch.Deadline
	}
	if patch.Budget != nil {
		existing.Budget = *patch.Budget
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
	}
	if patch.Status != nil {
		existing.Status = *patch.Status
	}
	if patch.Progress != nil {
		existing.Progress = *patch.Progress
	}

	if err := validateProject(existing); err != nil {
		return nil, err
	}

	stored, err := s.repo.Update(ctx, existing)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrProjectNotFound
		case errors.Is(err, repository.ErrInvalidReference):
			return nil, ErrInvalidRef
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ProjectUpdated, stored.ID, stored)
	return stored, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	tasksDeleted, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrProjectNotFound
		}
		return err
	}

	s.log.Info("project deleted",
		zap.String("project_id", id),
		zap.Int("tasks_deleted", tasksDeleted))

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ProjectDeleted, id, map[string]int{"tasks_deleted": tasksDeleted})
	return nil
}

func validateProject(p *model.Project) error {
	if p.ClientID == "" {
		return ErrInvalidRef
	}
	if _, err := uuid.Parse(p.ClientID); err != nil {
		return ErrInvalidRef
	}
	if !p.Status.Valid() {
		return ErrInvalidStatus
	}
	if p.Progress < 0 || p.Progress > 100 {
		return ErrInvalidProgress
	}
	if p.Budget < 0 {
		return ErrInvalidBudget
	}
	return nil
}
