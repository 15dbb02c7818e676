package handler

import (
	"github.com/gin-gonic/gin"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
)

// IdempotencyKeyHeader de-duplicates retried uploads
const IdempotencyKeyHeader = "Idempotency-Key"

// DocumentHandler serves import batches, the document checklist and uploads
type DocumentHandler struct {
	BaseHandler
	documents *onboardingapp.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(documents *onboardingapp.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// ListDocumentTypes godoc
// @ID           listDocumentTypes
// @Summary      List document types
// @Description  Required, investor-only and optional document types for a property kind
// @Tags         onboarding-documents
// @Produce      json
// @Param        property_type query string false "Property kind" Enums(primary, investment)
// @Success      200 {object} APIResponse[[]onboardingapp.DocumentTypeResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/document-types [get]
func (h *DocumentHandler) ListDocumentTypes(c *gin.Context) {
	types, err := h.documents.ListDocumentTypes(c.Request.Context(), c.Query("property_type"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, types)
}

// ListBatches godoc
// @ID           listImportBatches
// @Summary      List import batches
// @Tags         onboarding-documents
// @Produce      json
// @Success      200 {object} APIResponse[[]onboardingapp.BatchResponse]
// @Security     BearerAuth
// @Router       /onboarding/batches [get]
func (h *DocumentHandler) ListBatches(c *gin.Context) {
	batches, err := h.documents.ListBatches(c.Request.Context(), ownerID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, batches)
}

// CreateBatch godoc
// @ID           createImportBatch
// @Summary      Open an import batch
// @Tags         onboarding-documents
// @Accept       json
// @Produce      json
// @Param        request body onboardingapp.CreateBatchRequest true "Batch"
// @Success      201 {object} APIResponse[onboardingapp.BatchResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/batches [post]
func (h *DocumentHandler) CreateBatch(c *gin.Context) {
	var req onboardingapp.CreateBatchRequest
	if !h.BindJSON(c, &req) {
		return
	}
	batch, err := h.documents.CreateBatch(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, batch)
}

// GetBatch godoc
// @ID           getImportBatch
// @Summary      Get an import batch with its uploads
// @Tags         onboarding-documents
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[onboardingapp.BatchDetailResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/batches/{id} [get]
func (h *DocumentHandler) GetBatch(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	batch, err := h.documents.GetBatch(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, batch)
}

// Checklist godoc
// @ID           getImportBatchChecklist
// @Summary      Document checklist of a batch
// @Description  Each document type of the batch's property kind with status missing, uploaded or validated
// @Tags         onboarding-documents
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[[]onboardingapp.ChecklistItemResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/batches/{id}/checklist [get]
func (h *DocumentHandler) Checklist(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	items, err := h.documents.Checklist(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, items)
}

// CompleteBatch godoc
// @ID           completeImportBatch
// @Summary      Complete a batch
// @Tags         onboarding-documents
// @Produce      json
// @Param        id path string true "Batch ID" format(uuid)
// @Success      200 {object} APIResponse[onboardingapp.CompleteBatchResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/batches/{id}/complete [post]
func (h *DocumentHandler) CompleteBatch(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.documents.CompleteBatch(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Upload godoc
// @ID           uploadOnboardingDocument
// @Summary      Upload a document
// @Description  Stores a base64 encoded document in the batch. A repeated Idempotency-Key returns the first result.
// @Tags         onboarding-documents
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Client generated key of this upload"
// @Param        request body onboardingapp.UploadRequest true "Document"
// @Success      201 {object} APIResponse[onboardingapp.UploadResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/upload [post]
func (h *DocumentHandler) Upload(c *gin.Context) {
	var req onboardingapp.UploadRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.documents.Upload(c.Request.Context(), ownerID(c), c.GetHeader(IdempotencyKeyHeader), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// ValidateUpload godoc
// @ID           validateOnboardingDocument
// @Summary      Mark an upload as validated
// @Tags         onboarding-documents
// @Produce      json
// @Param        id path string true "Upload ID" format(uuid)
// @Success      200 {object} APIResponse[onboardingapp.UploadResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /onboarding/uploads/{id}/validate [post]
func (h *DocumentHandler) ValidateUpload(c *gin.Context) {
	id, ok := h.ParamUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.documents.ValidateUpload(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}
