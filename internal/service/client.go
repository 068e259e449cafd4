package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"clienthub/internal/cache"
	"clienthub/internal/event"
	"clienthub/internal/model"
	"clienthub/internal/repository"
	"clienthub/internal/storage"
)

// logoURLExpiry bounds how long a presigned logo download link stays valid.
const logoURLExpiry = 15 * time.Minute

// ClientPatch carries the fields of a partial client update. Nil fields are
// left unchanged (last-write-wins, no row locking).
type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

// ClientService defines the use cases for handling clients, including the
// logo object lifecycle and the cascading delete over owned projects/tasks.
type ClientService interface {
	// List returns all clients sorted by name.
	List(ctx context.Context) ([]model.Client, error)

	// Create stores a new client. Any caller-supplied ID is discarded and a
	// fresh one assigned.
	Create(ctx context.Context, c *model.Client) (*model.Client, error)

	// Update applies a partial merge by ID.
	Update(ctx context.Context, id string, patch ClientPatch) (*model.Client, error)

	// Delete removes the client, all its projects, those projects' tasks,
	// and the logo object if one exists.
	Delete(ctx context.Context, id string) error

	// UploadLogo stores the logo in object storage and records its path,
	// replacing any previous logo object.
	UploadLogo(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Client, error)

	// LogoURL returns a presigned download URL for the client's logo.
	LogoURL(ctx context.Context, id string) (string, error)

	// DeleteLogo removes the logo object and clears the stored path.
	DeleteLogo(ctx context.Context, id string) error
}

type clientService struct {
	repo   repository.ClientRepository
	store  storage.Storage
	cache  *cache.DashboardCache
	events event.Publisher
	log    *zap.Logger
}

// NewClientService constructs a new ClientService.
func NewClientService(repo repository.ClientRepository, store storage.Storage, dc *cache.DashboardCache, events event.Publisher, log *zap.Logger) ClientService {
	return &clientService{repo: repo, store: store, cache: dc, events: events, log: log}
}

func (s *clientService) List(ctx context.Context) ([]model.Client, error) {
	return s.repo.List(ctx)
}

func (s *clientService) Create(ctx context.Context, c *model.Client) (*model.Client, error) {
	c.ID = uuid.New().String()
	c.LogoPath = "" // logo arrives through UploadLogo only
	c.CreatedAt = time.Now().UTC()

	stored, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ClientCreated, stored.ID, stored)
	return stored, nil
}

func (s *clientService) Update(ctx context.Context, id string, patch ClientPatch) (*model.Client, error) {
	if id == "" {
		return nil, ErrIDRequired
	}

	existing, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Company != nil {
		existing.Company = *patch.Company
	}
	if patch.Phone != nil {
		existing.Phone = *patch.Phone
	}

	stored, err := s.repo.Update(ctx, existing)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ClientUpdated, stored.ID, stored)
	return stored, nil
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	// Fetch first: the cascade needs the logo path before the row is gone.
	existing, err := s.findClient(ctx, id)
	if err != nil {
		return err
	}

	result, err := s.repo.DeleteCascade(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		return err
	}

	// The DB cascade is committed; losing the logo object cleanup only
	// leaks storage, so it is best-effort.
	if existing.LogoPath != "" {
		if err := s.store.Delete(ctx, existing.LogoPath); err != nil {
			s.log.Warn("logo cleanup failed after client delete",
				zap.String("client_id", id),
				zap.String("logo_path", existing.LogoPath),
				zap.Error(err))
		}
	}

	s.log.Info("client deleted",
		zap.String("client_id", id),
		zap.Int("projects_deleted", result.ProjectsDeleted),
		zap.Int("tasks_deleted", result.TasksDeleted))

	s.cache.Invalidate(ctx)
	emit(ctx, s.events, s.log, event.ClientDeleted, id, result)
	return nil
}

func (s *clientService) UploadLogo(ctx context.Context, id string, r io.Reader, filename, contentType string, size int64) (*model.Client, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if r == nil {
		return nil, ErrReaderNil
	}

	existing, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	key := filepath.ToSlash(filepath.Join("logos", id+ext))

	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
		},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	oldPath := existing.LogoPath
	existing.LogoPath = key

	stored, err := s.repo.Update(ctx, existing)
	if err != nil {
		// Roll back the freshly uploaded object so storage and DB stay aligned.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	// A previous logo with a different extension lives under another key.
	if oldPath != "" && oldPath != key {
		if err := s.store.Delete(ctx, oldPath); err != nil {
			s.log.Warn("stale logo cleanup failed",
				zap.String("client_id", id),
				zap.String("logo_path", oldPath),
				zap.Error(err))
		}
	}

	emit(ctx, s.events, s.log, event.ClientUpdated, stored.ID, stored)
	return stored, nil
}

func (s *clientService) LogoURL(ctx context.Context, id string) (string, error) {
	if id == "" {
		return "", ErrIDRequired
	}

	existing, err := s.findClient(ctx, id)
	if err != nil {
		return "", err
	}
	if existing.LogoPath == "" {
		return "", ErrLogoNotFound
	}

	return s.store.PresignGet(ctx, existing.LogoPath, logoURLExpiry)
}

func (s *clientService) DeleteLogo(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}

	existing, err := s.findClient(ctx, id)
	if err != nil {
		return err
	}
	if existing.LogoPath == "" {
		return ErrLogoNotFound
	}

	// Delete from storage first; if this fails, keep the path so the object
	// is not orphaned without a reference.
	if err := s.store.Delete(ctx, existing.LogoPath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}

	existing.LogoPath = ""
	if _, err := s.repo.Update(ctx, existing); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrClientNotFound
		}
		return err
	}

	emit(ctx, s.events, s.log, event.ClientUpdated, id, nil)
	return nil
}

func (s *clientService) findClient(ctx context.Context, id string) (*model.Client, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}
