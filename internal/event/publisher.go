package event

import (
	"context"
	"time"
)

// Routing keys for entity lifecycle events, "<entity>.<action>".
const (
	ClientCreated  = "client.created"
	ClientUpdated  = "client.updated"
	ClientDeleted  = "client.deleted"
	ProjectCreated = "project.created"
	ProjectUpdated = "project.updated"
	ProjectDeleted = "project.deleted"
	TaskCreated    = "task.created"
	TaskUpdated    = "task.updated"
	TaskDeleted    = "task.deleted"
)

// Envelope is the JSON body published for every lifecycle event.
type Envelope struct {
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
	Payload  any       `json:"payload,omitempty"`
}

// Publisher emits entity lifecycle events. Publishing is best-effort:
// callers log failures and never surface them to API clients.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, env Envelope) error
	Close()
}

// Noop discards all events. Used when no message broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, Envelope) error { return nil }
func (Noop) Close()                                          {}
