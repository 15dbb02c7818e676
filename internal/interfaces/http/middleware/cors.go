package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CORSConfig holds CORS middleware configuration. An empty AllowOrigins
// admits no cross-origin caller; "*" admits every origin without credentials.
type CORSConfig struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	ExposeHeaders    []string
	AllowCredentials bool
	MaxAge           time.Duration
}

// CORSWithConfig answers preflight requests itself and decorates the rest.
func CORSWithConfig(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowOrigins))
	wildcard := false
	for _, o := range cfg.AllowOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = struct{}{}
	}

	methods := strings.Join(cfg.AllowMethods, ", ")
	headers := strings.Join(cfg.AllowHeaders, ", ")
	expose := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := ""
	if cfg.MaxAge > 0 {
		maxAge = strconv.Itoa(int(cfg.MaxAge.Seconds()))
	}

	// allowOrigin resolves the Access-Control-Allow-Origin value, or "".
	allowOrigin := func(origin string) string {
		if wildcard {
			return "*"
		}
		if _, ok := allowed[origin]; ok && origin != "" {
			return origin
		}
		return ""
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		if value := allowOrigin(c.GetHeader("Origin")); value != "" {
			h.Set("Access-Control-Allow-Origin", value)
			if value != "*" {
				h.Add("Vary", "Origin")
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}
			h.Set("Access-Control-Allow-Methods", methods)
			h.Set("Access-Control-Allow-Headers", headers)
			if expose != "" {
				h.Set("Access-Control-Expose-Headers", expose)
			}
			if maxAge != "" {
				h.Set("Access-Control-Max-Age", maxAge)
			}
		}

		// Preflights never reach the router, allowed or not.
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
