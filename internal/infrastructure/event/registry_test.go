package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerRegistry_Register(t *testing.T) {
	r := NewHandlerRegistry()
	h := newTestHandler()

	r.Register(h, "onboarding.started", "onboarding.completed")
	r.Register(h, "onboarding.started")

	assert.Len(t, r.GetHandlers("onboarding.started"), 1, "duplicate registration is ignored")
	assert.Len(t, r.GetHandlers("onboarding.completed"), 1)
	assert.Empty(t, r.GetHandlers("onboarding.profile_saved"))
	assert.Equal(t, 1, r.Count())
}

func TestHandlerRegistry_WildcardOrdering(t *testing.T) {
	r := NewHandlerRegistry()
	specific := newTestHandler()
	wildcard := newTestHandler()

	r.Register(wildcard)
	r.Register(specific, "e")

	handlers := r.GetHandlers("e")
	assert.Len(t, handlers, 2)
	assert.Same(t, specific, handlers[0])
	assert.Same(t, wildcard, handlers[1])

	assert.Len(t, r.GetHandlers("other"), 1)
	assert.Equal(t, 2, r.Count())
}

func TestHandlerRegistry_HandlerOnBothLists(t *testing.T) {
	r := NewHandlerRegistry()
	h := newTestHandler()
	r.Register(h)
	r.Register(h, "e")

	assert.Len(t, r.GetHandlers("e"), 1)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	r := NewHandlerRegistry()
	h1 := newTestHandler()
	h2 := newTestHandler()
	r.Register(h1, "e", "f")
	r.Register(h2, "e")
	r.Register(h1)

	r.Unregister(h1)

	assert.Len(t, r.GetHandlers("e"), 1)
	assert.Empty(t, r.GetHandlers("f"))
	assert.Equal(t, 1, r.Count())
}
