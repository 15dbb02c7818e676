// Package event provides the in-process domain event bus.
package event

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// InMemoryEventBus implements EventBus with in-memory pub/sub.
// Handlers run synchronously on the publisher's goroutine. A failing or
// panicking handler is logged and never fails the publisher.
type InMemoryEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
	running  atomic.Bool
	inFlight sync.WaitGroup
	failures atomic.Int64
}

// NewInMemoryEventBus creates a new in-memory event bus
func NewInMemoryEventBus(logger *zap.Logger) *InMemoryEventBus {
	b := &InMemoryEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger.Named("event_bus"),
	}
	b.running.Store(true)
	return b
}

// Publish delivers events to their handlers in registration order.
// Events published after Stop are dropped.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	if !b.running.Load() {
		b.logger.Warn("event bus stopped, dropping events", zap.Int("count", len(events)))
		return nil
	}
	b.inFlight.Add(1)
	defer b.inFlight.Done()

	log := logger.WithTraceContext(ctx, b.logger)
	for _, event := range events {
		for _, handler := range b.registry.GetHandlers(event.EventType()) {
			if err := b.dispatchToHandler(ctx, handler, event); err != nil {
				b.failures.Add(1)
				log.Error("handler failed to process event",
					zap.String("event_type", event.EventType()),
					zap.String("event_id", event.EventID().String()),
					zap.String("owner_id", event.OwnerID()),
					zap.Error(err),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler for specific event types.
// Without explicit types the handler's own EventTypes are used.
func (b *InMemoryEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}
	b.registry.Register(handler, eventTypes...)
	b.logger.Debug("handler subscribed",
		zap.String("handler", fmt.Sprintf("%T", handler)),
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler
func (b *InMemoryEventBus) Unsubscribe(handler shared.EventHandler) {
	b.registry.Unregister(handler)
	b.logger.Debug("handler unsubscribed", zap.String("handler", fmt.Sprintf("%T", handler)))
}

// Start (re)opens the bus for publishing
func (b *InMemoryEventBus) Start(_ context.Context) error {
	b.running.Store(true)
	b.logger.Info("event bus started", zap.Int("handlers", b.registry.Count()))
	return nil
}

// Stop stops accepting events and waits for in-flight publishes, or for
// ctx to expire.
func (b *InMemoryEventBus) Stop(ctx context.Context) error {
	b.running.Store(false)

	done := make(chan struct{})
	go func() {
		b.inFlight.Wait()
		close(done)
	}()

	select {
	case <-done:
		b.logger.Info("event bus stopped", zap.Int64("handler_failures", b.failures.Load()))
		return nil
	case <-ctx.Done():
		return fmt.Errorf("event bus stop: %w", ctx.Err())
	}
}

// Failures returns the number of handler failures since start
func (b *InMemoryEventBus) Failures() int64 {
	return b.failures.Load()
}

// dispatchToHandler calls the handler, turning a panic into an error
func (b *InMemoryEventBus) dispatchToHandler(ctx context.Context, handler shared.EventHandler, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Handle(ctx, event)
}

var _ shared.EventBus = (*InMemoryEventBus)(nil)
