package handler

import (
	"github.com/gin-gonic/gin"
	ownershipapp "github.com/owneriq/backend/internal/application/ownership"
)

// EntityHandler serves the legal entities that can hold properties
type EntityHandler struct {
	BaseHandler
	entities *ownershipapp.EntityService
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(entities *ownershipapp.EntityService) *EntityHandler {
	return &EntityHandler{entities: entities}
}

// List godoc
// @ID           listEntities
// @Summary      List legal entities
// @Tags         entities
// @Produce      json
// @Success      200 {object} APIResponse[[]ownershipapp.EntityResponse]
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/entities [get]
func (h *EntityHandler) List(c *gin.Context) {
	entities, err := h.entities.List(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entities)
}

// Get godoc
// @ID           getEntity
// @Summary      Get a legal entity
// @Tags         entities
// @Produce      json
// @Param        id path string true "Entity ID" format(uuid)
// @Success      200 {object} APIResponse[ownershipapp.EntityResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/entities/{id} [get]
func (h *EntityHandler) Get(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	entity, err := h.entities.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entity)
}

// Create godoc
// @ID           createEntity
// @Summary      Create a legal entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        request body ownershipapp.EntityRequest true "Entity"
// @Success      201 {object} APIResponse[ownershipapp.EntityResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/entities [post]
func (h *EntityHandler) Create(c *gin.Context) {
	var req ownershipapp.EntityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	entity, err := h.entities.Create(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, entity)
}

// Update godoc
// @ID           updateEntity
// @Summary      Update a legal entity
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        id path string true "Entity ID" format(uuid)
// @Param        request body ownershipapp.EntityRequest true "Entity"
// @Success      200 {object} APIResponse[ownershipapp.EntityResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/entities/{id} [put]
func (h *EntityHandler) Update(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req ownershipapp.EntityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	entity, err := h.entities.Update(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, entity)
}

// Delete godoc
// @ID           deleteEntity
// @Summary      Delete a legal entity
// @Description  Rejected while properties still reference the entity
// @Tags         entities
// @Param        id path string true "Entity ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/entities/{id} [delete]
func (h *EntityHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	if err := h.entities.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
