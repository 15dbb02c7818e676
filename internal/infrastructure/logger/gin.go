package logger

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ginLoggerKey holds the per-request logger in the gin context.
const ginLoggerKey = "logger"

// GinMiddleware writes one access log entry per request, at warn for 4xx
// and error for 5xx, and exposes a request logger through FromGin.
// Owner and demo fields are read after the handler chain ran, since the
// data scope middleware sets them on the route group.
func GinMiddleware(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLogger := WithTraceContext(c.Request.Context(), base).With(
			zap.String("request_id", c.GetString("request_id")),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.Set(ginLoggerKey, reqLogger)

		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("route", c.FullPath()),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if q := c.Request.URL.RawQuery; q != "" {
			fields = append(fields, zap.String("query", q))
		}
		if ownerID := c.GetString("owner_id"); ownerID != "" {
			fields = append(fields, zap.String("owner_id", ownerID))
		}
		if c.GetBool("demo_mode") {
			fields = append(fields, zap.Bool("demo", true))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", c.Errors.Errors()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			reqLogger.Error("HTTP Request", fields...)
		case status >= http.StatusBadRequest:
			reqLogger.Warn("HTTP Request", fields...)
		default:
			reqLogger.Info("HTTP Request", fields...)
		}
	}
}

// Recovery turns a panic into a 500 error envelope and logs the stack.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := c.GetString("request_id")
			WithTraceContext(c.Request.Context(), base).Error("Panic recovered",
				zap.String("request_id", requestID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Any("panic", rec),
				zap.Stack("stacktrace"),
			)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":       "ERR_INTERNAL",
					"message":    "An unexpected error occurred",
					"request_id": requestID,
				},
			})
		}()
		c.Next()
	}
}

// FromGin returns the request logger set by GinMiddleware, or a no-op logger.
func FromGin(c *gin.Context) *zap.Logger {
	if l, ok := c.Get(ginLoggerKey); ok {
		if zl, ok := l.(*zap.Logger); ok {
			return zl
		}
	}
	return zap.NewNop()
}
