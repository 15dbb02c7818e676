package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// maxRequestIDLength caps client-supplied ids before they reach logs
const maxRequestIDLength = 128

// RequestID propagates X-Request-ID, generating one when absent or oversized.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// RequestContextLogger hands the root logger to the request context so that
// logger.L(ctx) in services picks up request, user and owner fields.
func RequestContextLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))
		c.Next()
	}
}
