package shared

import (
	"context"
	"time"
)

// DomainEvent represents an event that has occurred in the domain
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventHandler handles domain events
type EventHandler func(ctx context.Context, event DomainEvent) error

// EventDispatcher dispatches domain events to handlers
type EventDispatcher interface {
	Dispatch(ctx context.Context, events ...DomainEvent) error
	Register(eventName string, handler EventHandler)
}
