package event

import (
	"slices"
	"sync"

	"github.com/owneriq/backend/internal/domain/shared"
)

// HandlerRegistry maps event types to their handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler // eventType -> handlers
	wildcard []shared.EventHandler            // handlers for all events
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string][]shared.EventHandler),
	}
}

// Register adds a handler for specific event types. Without event types
// the handler receives all events. Registering the same handler twice for
// a type has no effect.
func (r *HandlerRegistry) Register(handler shared.EventHandler, eventTypes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(eventTypes) == 0 {
		if !slices.Contains(r.wildcard, handler) {
			r.wildcard = append(r.wildcard, handler)
		}
		return
	}

	for _, eventType := range eventTypes {
		if !slices.Contains(r.handlers[eventType], handler) {
			r.handlers[eventType] = append(r.handlers[eventType], handler)
		}
	}
}

// Unregister removes a handler from all event types
func (r *HandlerRegistry) Unregister(handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.wildcard = slices.DeleteFunc(r.wildcard, func(h shared.EventHandler) bool { return h == handler })
	for eventType, handlers := range r.handlers {
		remaining := slices.DeleteFunc(handlers, func(h shared.EventHandler) bool { return h == handler })
		if len(remaining) == 0 {
			delete(r.handlers, eventType)
			continue
		}
		r.handlers[eventType] = remaining
	}
}

// GetHandlers returns the type-specific handlers of eventType followed by
// the wildcard handlers
func (r *HandlerRegistry) GetHandlers(eventType string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	typeHandlers := r.handlers[eventType]
	result := make([]shared.EventHandler, 0, len(typeHandlers)+len(r.wildcard))
	result = append(result, typeHandlers...)
	for _, h := range r.wildcard {
		if !slices.Contains(typeHandlers, h) {
			result = append(result, h)
		}
	}
	return result
}

// Count returns the number of distinct registered handlers
func (r *HandlerRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[shared.EventHandler]struct{})
	for _, h := range r.wildcard {
		seen[h] = struct{}{}
	}
	for _, handlers := range r.handlers {
		for _, h := range handlers {
			seen[h] = struct{}{}
		}
	}
	return len(seen)
}
