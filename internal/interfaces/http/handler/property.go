package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/owneriq/backend/internal/application/property"
)

// PropertyHandler serves properties and their command-center editors
type PropertyHandler struct {
	BaseHandler
	properties *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(properties *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

// List godoc
// @ID           listProperties
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Param        page          query int    false "Page number" default(1)
// @Param        page_size     query int    false "Page size" default(20) maximum(100)
// @Param        order_by      query string false "Sort column" default(created_at)
// @Param        order_dir     query string false "Sort direction" Enums(asc, desc)
// @Param        search        query string false "Matches nickname and address"
// @Param        property_type query string false "Property kind" Enums(primary, investment)
// @Param        entity_id     query string false "Entity id, or personal"
// @Success      200 {object} APIResponse[[]propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties [get]
func (h *PropertyHandler) List(c *gin.Context) {
	var req propertyapp.ListPropertiesRequest
	if !h.BindQuery(c, &req) {
		return
	}
	page, err := h.properties.List(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get godoc
// @ID           getProperty
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	prop, err := h.properties.Get(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, prop)
}

// Create godoc
// @ID           createProperty
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body propertyapp.PropertyRequest true "Property"
// @Success      201 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyapp.PropertyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	prop, err := h.properties.Create(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, prop)
}

// Update godoc
// @ID           updateProperty
// @Summary      Update a property
// @Description  Fields absent from the payload keep their value; the response is the reloaded row
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.PropertyRequest true "Property"
// @Success      200 {object} APIResponse[propertyapp.PropertyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.PropertyRequest
	if !h.BindJSON(c, &req) {
		return
	}
	prop, err := h.properties.Update(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, prop)
}

// Delete godoc
// @ID           deleteProperty
// @Summary      Delete a property
// @Tags         properties
// @Param        id path string true "Property ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	if err := h.properties.Delete(c.Request.Context(), ownerID(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Overview godoc
// @ID           getPropertyOverview
// @Summary      Property overview
// @Description  Valuation, equity, LTV, mortgage and primary insurance in one payload
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.OverviewResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/overview [get]
func (h *PropertyHandler) Overview(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	overview, err := h.properties.Overview(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, overview)
}

// GetMortgage godoc
// @ID           getPropertyMortgage
// @Summary      Mortgage editor
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.MortgageResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/mortgage [get]
func (h *PropertyHandler) GetMortgage(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.GetMortgage(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateMortgage godoc
// @ID           updatePropertyMortgage
// @Summary      Save the mortgage editor
// @Description  Every field is written; null clears a value
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.MortgageRequest true "Mortgage"
// @Success      200 {object} APIResponse[propertyapp.MortgageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/mortgage [put]
func (h *PropertyHandler) UpdateMortgage(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.MortgageRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdateMortgage(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetTaxes godoc
// @ID           getPropertyTaxes
// @Summary      Tax editor
// @Tags         properties
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.TaxResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/taxes [get]
func (h *PropertyHandler) GetTaxes(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.GetTaxes(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateTaxes godoc
// @ID           updatePropertyTaxes
// @Summary      Save the tax editor
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.TaxRequest true "Taxes"
// @Success      200 {object} APIResponse[propertyapp.TaxResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/taxes [put]
func (h *PropertyHandler) UpdateTaxes(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.TaxRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdateTaxes(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
