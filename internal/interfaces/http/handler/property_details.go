package handler

import (
	"github.com/gin-gonic/gin"
	propertyapp "github.com/owneriq/backend/internal/application/property"
)

// GetInsurance godoc
// @ID           getPropertyInsurance
// @Summary      Insurance editor
// @Description  The primary policy, or an empty object when the property has none
// @Tags         property-insurance
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.InsuranceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance [get]
func (h *PropertyHandler) GetInsurance(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.GetInsurance(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateInsurance godoc
// @ID           updatePropertyInsurance
// @Summary      Save the insurance editor
// @Description  Creates or updates the primary policy
// @Tags         property-insurance
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.InsuranceRequest true "Policy"
// @Success      200 {object} APIResponse[propertyapp.InsuranceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance [put]
func (h *PropertyHandler) UpdateInsurance(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.InsuranceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdateInsurance(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// ListPolicies godoc
// @ID           listPropertyPolicies
// @Summary      List insurance policies, primary first
// @Tags         property-insurance
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[[]propertyapp.InsuranceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance/policies [get]
func (h *PropertyHandler) ListPolicies(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.ListPolicies(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreatePolicy godoc
// @ID           createPropertyPolicy
// @Summary      Add an insurance policy
// @Tags         property-insurance
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.InsuranceRequest true "Policy"
// @Success      201 {object} APIResponse[propertyapp.InsuranceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance/policies [post]
func (h *PropertyHandler) CreatePolicy(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.InsuranceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.CreatePolicy(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdatePolicy godoc
// @ID           updatePropertyPolicy
// @Summary      Update an insurance policy
// @Tags         property-insurance
// @Accept       json
// @Produce      json
// @Param        id  path string true "Property ID" format(uuid)
// @Param        pid path string true "Policy ID" format(uuid)
// @Param        request body propertyapp.InsuranceRequest true "Policy"
// @Success      200 {object} APIResponse[propertyapp.InsuranceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance/policies/{pid} [put]
func (h *PropertyHandler) UpdatePolicy(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	pid, ok := h.ParamUUID(c, "pid")
	if !ok {
		return
	}
	var req propertyapp.InsuranceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdatePolicy(c.Request.Context(), ownerID(c), id, pid, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// SetPrimaryPolicy godoc
// @ID           setPropertyPrimaryPolicy
// @Summary      Make a policy primary
// @Description  Clears the previous primary in the same transaction
// @Tags         property-insurance
// @Produce      json
// @Param        id  path string true "Property ID" format(uuid)
// @Param        pid path string true "Policy ID" format(uuid)
// @Success      200 {object} APIResponse[propertyapp.InsuranceResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance/policies/{pid}/primary [post]
func (h *PropertyHandler) SetPrimaryPolicy(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	pid, ok := h.ParamUUID(c, "pid")
	if !ok {
		return
	}
	resp, err := h.properties.SetPrimaryPolicy(c.Request.Context(), ownerID(c), id, pid)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeletePolicy godoc
// @ID           deletePropertyPolicy
// @Summary      Delete an insurance policy
// @Description  The primary policy cannot be deleted
// @Tags         property-insurance
// @Param        id  path string true "Property ID" format(uuid)
// @Param        pid path string true "Policy ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/insurance/policies/{pid} [delete]
func (h *PropertyHandler) DeletePolicy(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	pid, ok := h.ParamUUID(c, "pid")
	if !ok {
		return
	}
	if err := h.properties.DeletePolicy(c.Request.Context(), ownerID(c), id, pid); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListUtilities godoc
// @ID           listPropertyUtilities
// @Summary      List utilities
// @Tags         property-utilities
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[[]propertyapp.UtilityResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/utilities [get]
func (h *PropertyHandler) ListUtilities(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.ListUtilities(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateUtility godoc
// @ID           createPropertyUtility
// @Summary      Add a utility
// @Tags         property-utilities
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.UtilityRequest true "Utility"
// @Success      201 {object} APIResponse[propertyapp.UtilityResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/utilities [post]
func (h *PropertyHandler) CreateUtility(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.UtilityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.CreateUtility(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateUtility godoc
// @ID           updatePropertyUtility
// @Summary      Update a utility
// @Tags         property-utilities
// @Accept       json
// @Produce      json
// @Param        id  path string true "Property ID" format(uuid)
// @Param        uid path string true "Utility ID" format(uuid)
// @Param        request body propertyapp.UtilityRequest true "Utility"
// @Success      200 {object} APIResponse[propertyapp.UtilityResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/utilities/{uid} [put]
func (h *PropertyHandler) UpdateUtility(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	uid, ok := h.ParamUUID(c, "uid")
	if !ok {
		return
	}
	var req propertyapp.UtilityRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdateUtility(c.Request.Context(), ownerID(c), id, uid, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteUtility godoc
// @ID           deletePropertyUtility
// @Summary      Delete a utility
// @Tags         property-utilities
// @Param        id  path string true "Property ID" format(uuid)
// @Param        uid path string true "Utility ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/utilities/{uid} [delete]
func (h *PropertyHandler) DeleteUtility(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	uid, ok := h.ParamUUID(c, "uid")
	if !ok {
		return
	}
	if err := h.properties.DeleteUtility(c.Request.Context(), ownerID(c), id, uid); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAppliances godoc
// @ID           listPropertyAppliances
// @Summary      List appliances
// @Tags         property-appliances
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[[]propertyapp.ApplianceResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/appliances [get]
func (h *PropertyHandler) ListAppliances(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.ListAppliances(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateAppliance godoc
// @ID           createPropertyAppliance
// @Summary      Add an appliance
// @Tags         property-appliances
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.ApplianceRequest true "Appliance"
// @Success      201 {object} APIResponse[propertyapp.ApplianceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/appliances [post]
func (h *PropertyHandler) CreateAppliance(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.ApplianceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.CreateAppliance(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// UpdateAppliance godoc
// @ID           updatePropertyAppliance
// @Summary      Update an appliance
// @Tags         property-appliances
// @Accept       json
// @Produce      json
// @Param        id  path string true "Property ID" format(uuid)
// @Param        aid path string true "Appliance ID" format(uuid)
// @Param        request body propertyapp.ApplianceRequest true "Appliance"
// @Success      200 {object} APIResponse[propertyapp.ApplianceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/appliances/{aid} [put]
func (h *PropertyHandler) UpdateAppliance(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	aid, ok := h.ParamUUID(c, "aid")
	if !ok {
		return
	}
	var req propertyapp.ApplianceRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.UpdateAppliance(c.Request.Context(), ownerID(c), id, aid, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteAppliance godoc
// @ID           deletePropertyAppliance
// @Summary      Delete an appliance
// @Tags         property-appliances
// @Param        id  path string true "Property ID" format(uuid)
// @Param        aid path string true "Appliance ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/appliances/{aid} [delete]
func (h *PropertyHandler) DeleteAppliance(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	aid, ok := h.ParamUUID(c, "aid")
	if !ok {
		return
	}
	if err := h.properties.DeleteAppliance(c.Request.Context(), ownerID(c), id, aid); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListDocuments godoc
// @ID           listPropertyDocuments
// @Summary      List property documents, newest first
// @Tags         property-documents
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[[]propertyapp.DocumentResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/documents [get]
func (h *PropertyHandler) ListDocuments(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.properties.ListDocuments(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CreateDocument godoc
// @ID           createPropertyDocument
// @Summary      Attach a document record
// @Tags         property-documents
// @Accept       json
// @Produce      json
// @Param        id path string true "Property ID" format(uuid)
// @Param        request body propertyapp.DocumentRequest true "Document"
// @Success      201 {object} APIResponse[propertyapp.DocumentResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/documents [post]
func (h *PropertyHandler) CreateDocument(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	var req propertyapp.DocumentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.properties.CreateDocument(c.Request.Context(), ownerID(c), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// DeleteDocument godoc
// @ID           deletePropertyDocument
// @Summary      Delete a document record
// @Tags         property-documents
// @Param        id  path string true "Property ID" format(uuid)
// @Param        did path string true "Document ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /properties/{id}/documents/{did} [delete]
func (h *PropertyHandler) DeleteDocument(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	did, ok := h.ParamUUID(c, "did")
	if !ok {
		return
	}
	if err := h.properties.DeleteDocument(c.Request.Context(), ownerID(c), id, did); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
