package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"clienthub/internal/event"
)

// Sentinel errors mapped to HTTP statuses at the handler layer.
var (
	ErrIDRequired      = errors.New("id is required")
	ErrClientNotFound  = errors.New("client not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task not found")
	ErrLogoNotFound    = errors.New("client has no logo")
	ErrInvalidStatus   = errors.New("status must be one of: To Do, In Progress, Done")
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")
	ErrInvalidBudget   = errors.New("budget must be non-negative")
	ErrInvalidRef      = errors.New("referenced entity does not exist")
	ErrReaderNil       = errors.New("reader is nil")
)

// emit publishes a lifecycle event best-effort. API responses never depend
// on broker availability, so failures are only logged.
func emit(ctx context.Context, events event.Publisher, log *zap.Logger, routingKey, id string, payload any) {
	err := events.Publish(ctx, routingKey, event.Envelope{
		EntityID: id,
		At:       time.Now().UTC(),
		Payload:  payload,
	})
	if err != nil {
		log.Warn("event publish failed",
			zap.String("routing_key", routingKey),
			zap.String("entity_id", id),
			zap.Error(err))
	}
}
