// Package events provides the in-process domain event dispatcher
package events

import (
	"context"
	"errors"
	"sync"

	"github.com/culinaryos/kitchen/internal/domain/shared"
	"go.uber.org/zap"
)

// Dispatcher delivers domain events synchronously to registered handlers
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
	log      *zap.Logger
}

var _ shared.EventDispatcher = (*Dispatcher)(nil)

// NewDispatcher creates a new event dispatcher
func NewDispatcher(log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]shared.EventHandler),
		log:      log.Named("events"),
	}
}

// Dispatch runs every handler registered for each event in order.
// A failing handler does not stop the others; all failures are joined into the returned error.
func (d *Dispatcher) Dispatch(ctx context.Context, events ...shared.DomainEvent) error {
	var errs []error

	for _, event := range events {
		d.mu.RLock()
		handlers := d.handlers[event.EventName()]
		d.mu.RUnlock()

		if len(handlers) == 0 {
			d.log.Debug("No handlers registered for event", zap.String("event", event.EventName()))
			continue
		}

		for _, handler := range handlers {
			if err := handler(ctx, event); err != nil {
				d.log.Error("Failed to handle event",
					zap.String("event", event.EventName()),
					zap.Error(err),
				)
				errs = append(errs, err)
			}
		}
	}

	return errors.Join(errs...)
}

// Register registers an event handler
func (d *Dispatcher) Register(eventName string, handler shared.EventHandler) {
	d.mu.Lock()
	d.handlers[eventName] = append(d.handlers[eventName], handler)
	d.mu.Unlock()

	d.log.Debug("Registered event handler", zap.String("event", eventName))
}
