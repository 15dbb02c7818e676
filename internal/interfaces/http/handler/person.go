package handler

import (
	"github.com/gin-gonic/gin"
	ownerapp "github.com/owneriq/backend/internal/application/owner"
)

// PersonHandler serves the caller's person record and addresses
type PersonHandler struct {
	BaseHandler
	persons *ownerapp.PersonService
}

// NewPersonHandler creates a new PersonHandler
func NewPersonHandler(persons *ownerapp.PersonService) *PersonHandler {
	return &PersonHandler{persons: persons}
}

// GetMe godoc
// @ID           getMe
// @Summary      Get the caller's person record
// @Tags         persons
// @Produce      json
// @Success      200 {object} APIResponse[ownerapp.PersonResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me [get]
func (h *PersonHandler) GetMe(c *gin.Context) {
	person, err := h.persons.GetMe(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, person)
}

// UpdateMe godoc
// @ID           updateMe
// @Summary      Update the caller's person record
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        request body ownerapp.UpdatePersonRequest true "Person"
// @Success      200 {object} APIResponse[ownerapp.PersonResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me [put]
func (h *PersonHandler) UpdateMe(c *gin.Context) {
	var req ownerapp.UpdatePersonRequest
	if !h.BindJSON(c, &req) {
		return
	}
	person, err := h.persons.UpdateMe(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, person)
}

// ListAddresses godoc
// @ID           listMyAddresses
// @Summary      List addresses, primary first
// @Tags         persons
// @Produce      json
// @Success      200 {object} APIResponse[[]ownerapp.AddressResponse]
// @Security     BearerAuth
// @Router       /persons/me/addresses [get]
func (h *PersonHandler) ListAddresses(c *gin.Context) {
	addresses, err := h.persons.ListAddresses(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, addresses)
}

// AddAddress godoc
// @ID           addMyAddress
// @Summary      Add an address
// @Description  The first address becomes primary; is_primary switches the primary atomically
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        request body ownerapp.AddressRequest true "Address"
// @Success      201 {object} APIResponse[ownerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me/addresses [post]
func (h *PersonHandler) AddAddress(c *gin.Context) {
	var req ownerapp.AddressRequest
	if !h.BindJSON(c, &req) {
		return
	}
	address, err := h.persons.AddAddress(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, address)
}

// UpdateAddress godoc
// @ID           updateMyAddress
// @Summary      Update an address
// @Tags         persons
// @Accept       json
// @Produce      json
// @Param        aid path string true "Address ID" format(uuid)
// @Param        request body ownerapp.AddressRequest true "Address"
// @Success      200 {object} APIResponse[ownerapp.AddressResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me/addresses/{aid} [put]
func (h *PersonHandler) UpdateAddress(c *gin.Context) {
	id, ok := h.ParamUUID(c, "aid")
	if !ok {
		return
	}
	var req ownerapp.AddressRequest
	if !h.BindJSON(c, &req) {
		return
	}
	address, err := h.persons.UpdateAddress(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, address)
}

// DeleteAddress godoc
// @ID           deleteMyAddress
// @Summary      Delete an address
// @Description  The primary address cannot be deleted
// @Tags         persons
// @Param        aid path string true "Address ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me/addresses/{aid} [delete]
func (h *PersonHandler) DeleteAddress(c *gin.Context) {
	id, ok := h.ParamUUID(c, "aid")
	if !ok {
		return
	}
	if err := h.persons.DeleteAddress(c.Request.Context(), ownerID(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// SetPrimaryAddress godoc
// @ID           setMyPrimaryAddress
// @Summary      Make an address primary
// @Tags         persons
// @Produce      json
// @Param        aid path string true "Address ID" format(uuid)
// @Success      200 {object} APIResponse[ownerapp.AddressResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /persons/me/addresses/{aid}/primary [post]
func (h *PersonHandler) SetPrimaryAddress(c *gin.Context) {
	id, ok := h.ParamUUID(c, "aid")
	if !ok {
		return
	}
	address, err := h.persons.SetPrimaryAddress(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, address)
}
