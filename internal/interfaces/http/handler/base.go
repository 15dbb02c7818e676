package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"github.com/owneriq/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// BaseHandler is embedded by every resource handler. It writes the response
// envelope and maps domain errors onto status codes.
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return id
	}
	return c.GetHeader("X-Request-ID")
}

// ownerID is the data scope every repository call filters on. In demo mode
// it is shared.DemoOwnerID rather than the caller's subject.
func ownerID(c *gin.Context) string {
	return middleware.GetOwnerID(c)
}

func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta wraps a page of results together with its pagination meta.
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes an error envelope carrying the request id.
func (h *BaseHandler) Error(c *gin.Context, status int, code, message string) {
	c.JSON(status, dto.NewErrorResponseWithRequestID(code, message, getRequestID(c)))
}

func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// BindJSON decodes and validates the body into req. When it returns false
// the error response has been written.
func (h *BaseHandler) BindJSON(c *gin.Context, req any) bool {
	return h.bind(c, c.ShouldBindJSON(req))
}

// BindQuery is BindJSON for query string parameters.
func (h *BaseHandler) BindQuery(c *gin.Context, req any) bool {
	return h.bind(c, c.ShouldBindQuery(req))
}

func (h *BaseHandler) bind(c *gin.Context, err error) bool {
	if err == nil {
		return true
	}
	var verrs validator.ValidationErrors
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &verrs):
		middleware.HandleValidationError(c, verrs)
	case errors.As(err, &tooLarge):
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size")
	default:
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidJSON, "Invalid request body")
	}
	return false
}

// ParamUUID reads a uuid path parameter. A malformed value answers 400
// "Invalid <name>".
func (h *BaseHandler) ParamUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// HandleDomainError writes the response for an error returned by a service.
// Domain errors keep their code and message; anything else is logged and
// hidden behind ERR_INTERNAL.
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if !errors.As(err, &domainErr) {
		logger.FromGin(c).Error("Request failed", zap.Error(err))
		h.InternalError(c, "An unexpected error occurred")
		return
	}

	status := dto.DomainHTTPStatus(domainErr.Code)
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		logger.FromGin(c).Error("Unmapped domain error", zap.String("code", domainErr.Code), zap.Error(err))
	}
	h.Error(c, status, domainErr.Code, domainErr.Message)
}
