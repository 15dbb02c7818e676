package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/logger"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// Data scope context keys. The names match what logger.GinMiddleware reads.
const (
	OwnerIDKey     = "owner_id"
	DemoModeKey    = "demo_mode"
	DemoModeHeader = "x-demo-mode"
)

// DataScopeConfig configures how the authenticated user maps to a data owner
type DataScopeConfig struct {
	// DemoUserID is the user the demo token maps to; that user always reads demo data
	DemoUserID string
	// AllowDemoHeader lets any user switch to demo data with x-demo-mode: true
	AllowDemoHeader bool
	Logger          *zap.Logger
}

// DataScope resolves the owner every query is scoped to. Must run after Authenticate.
func DataScope(cfg DataScopeConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetJWTUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", c.GetString(RequestIDKey)))
			return
		}

		ownerID, demo := ResolveOwner(userID, c.GetHeader(DemoModeHeader), cfg)
		c.Set(OwnerIDKey, ownerID)
		c.Set(DemoModeKey, demo)

		c.Request = c.Request.WithContext(logger.WithOwnerID(c.Request.Context(), ownerID))

		if demo && cfg.Logger != nil {
			cfg.Logger.Debug("Request scoped to demo data", zap.String("user_id", userID))
		}
		c.Next()
	}
}

// ResolveOwner returns the owner id for a user and whether demo data is served
func ResolveOwner(userID, demoHeader string, cfg DataScopeConfig) (string, bool) {
	if cfg.DemoUserID != "" && userID == cfg.DemoUserID {
		return shared.DemoOwnerID, true
	}
	if cfg.AllowDemoHeader && strings.EqualFold(strings.TrimSpace(demoHeader), "true") {
		return shared.DemoOwnerID, true
	}
	return userID, false
}

// GetOwnerID returns the owner resolved by DataScope
func GetOwnerID(c *gin.Context) string {
	return c.GetString(OwnerIDKey)
}

// IsDemoScope reports whether the request reads the shared demo data
func IsDemoScope(c *gin.Context) bool {
	return c.GetBool(DemoModeKey)
}
