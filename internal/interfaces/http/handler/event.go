package handler

import (
	"github.com/gin-gonic/gin"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
)

// EventHandler records and lists onboarding events
type EventHandler struct {
	BaseHandler
	events *onboardingapp.EventLogService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(events *onboardingapp.EventLogService) *EventHandler {
	return &EventHandler{events: events}
}

// Log godoc
// @ID           logOnboardingEvent
// @Summary      Record a client side event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request body onboardingapp.LogEventRequest true "Event"
// @Success      201 {object} APIResponse[onboardingapp.LogEntryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /events/log [post]
func (h *EventHandler) Log(c *gin.Context) {
	var req onboardingapp.LogEventRequest
	if !h.BindJSON(c, &req) {
		return
	}
	entry, err := h.events.Log(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entry)
}

// Recent godoc
// @ID           listOnboardingEvents
// @Summary      Latest events
// @Description  The 100 most recent events of the caller, newest first
// @Tags         events
// @Produce      json
// @Success      200 {object} APIResponse[[]onboardingapp.LogEntryResponse]
// @Security     BearerAuth
// @Router       /events [get]
func (h *EventHandler) Recent(c *gin.Context) {
	entries, err := h.events.Recent(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entries)
}
