package shared

import "context"

// EventHandler reacts to published domain events, e.g. the projector that
// appends wizard and document events to the owner's event log.
type EventHandler interface {
	Handle(ctx context.Context, event DomainEvent) error
	// EventTypes lists the types the handler wants. Empty means every event.
	EventTypes() []string
}

// EventPublisher is what application services depend on. Publishing is
// best effort: a failing handler never fails the operation that produced
// the events.
type EventPublisher interface {
	Publish(ctx context.Context, events ...DomainEvent) error
}

// EventBus is the publisher plus subscription and lifecycle management,
// owned by the process entry point.
type EventBus interface {
	EventPublisher
	Subscribe(handler EventHandler, eventTypes ...string)
	Unsubscribe(handler EventHandler)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}
