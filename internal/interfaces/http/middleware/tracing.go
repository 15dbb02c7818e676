// Package middleware provides the gin middleware of the OwnerIQ API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// TracingWithConfig opens one server span per request through otelgin. The
// span is named after the route pattern, e.g. "GET /api/properties/:id".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return otelgin.Middleware(cfg.ServiceName)
}

// SpanErrorMarker marks the request span as failed for 4xx and 5xx responses.
// It must run inside the tracing middleware.
func SpanErrorMarker() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		span.SetStatus(codes.Error, http.StatusText(status))
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
}

// TracingAttributeInjector tags the request span with the caller scope. It
// runs after JWT and DataScope so the ids are known.
func TracingAttributeInjector() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			attrs := make([]attribute.KeyValue, 0, 4)
			if id := c.GetString(RequestIDKey); id != "" {
				attrs = append(attrs, attribute.String("request_id", id))
			}
			if ownerID := GetOwnerID(c); ownerID != "" {
				attrs = append(attrs, attribute.String("owner_id", ownerID))
			}
			if userID := GetJWTUserID(c); userID != "" {
				attrs = append(attrs, attribute.String("user_id", userID))
			}
			if IsDemoScope(c) {
				attrs = append(attrs, attribute.Bool("demo", true))
			}
			span.SetAttributes(attrs...)
		}
		c.Next()
	}
}
