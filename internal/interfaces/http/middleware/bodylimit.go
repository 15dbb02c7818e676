package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
)

// BodyLimit rejects bodies larger than maxBytes. A declared Content-Length
// over the limit is refused up front; bodies of unknown length fail with
// *http.MaxBytesError when the handler reads past the limit. maxBytes <= 0
// disables the check.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
				dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size", c.GetString(RequestIDKey)))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
