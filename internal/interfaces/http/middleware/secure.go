package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// SecurityConfig selects the optional security headers. The API serves JSON
// and report documents only, so the CSP locks everything to self.
type SecurityConfig struct {
	HSTS       bool
	HSTSMaxAge int // seconds
	CSP        string
}

// DefaultSecurityConfig leaves HSTS off; it only makes sense behind TLS.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		HSTSMaxAge: 31536000,
		CSP:        "default-src 'self'; img-src 'self' data:; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'; base-uri 'self'",
	}
}

// Secure adds security headers using DefaultSecurityConfig.
func Secure() gin.HandlerFunc {
	return SecureWithConfig(DefaultSecurityConfig())
}

// SecureWithConfig adds security headers to every response.
func SecureWithConfig(cfg SecurityConfig) gin.HandlerFunc {
	hsts := ""
	if cfg.HSTS {
		hsts = fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge)
	}

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), geolocation=(), microphone=(), payment=()")
		if cfg.CSP != "" {
			h.Set("Content-Security-Policy", cfg.CSP)
		}
		if hsts != "" {
			h.Set("Strict-Transport-Security", hsts)
		}
		c.Next()
	}
}
