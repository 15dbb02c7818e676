package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status   string `json:"status" example:"healthy"`
	Time     string `json:"time" example:"2024-01-01T00:00:00Z"`
	Database string `json:"database" example:"ok"`
	Version  string `json:"version,omitempty" example:"1.0.0"`
}

// SystemHandler serves unauthenticated system endpoints
type SystemHandler struct {
	db      Pinger
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db Pinger, version string) *SystemHandler {
	return &SystemHandler{db: db, version: version}
}

// Health reports liveness and database reachability. It is served outside
// the API prefix and is not part of the API documentation.
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{
		Status:   "healthy",
		Time:     time.Now().UTC().Format(time.RFC3339),
		Database: "ok",
		Version:  h.version,
	}
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
			resp.Status = "unhealthy"
			resp.Database = "error"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}
