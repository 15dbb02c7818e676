package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSWithConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const app = "https://app.owneriq.test"
	base := CORSConfig{
		AllowOrigins:     []string{app},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	withOrigins := func(origins ...string) CORSConfig {
		cfg := base
		cfg.AllowOrigins = origins
		return cfg
	}

	tests := []struct {
		name    string
		cfg     CORSConfig
		method  string
		origin  string
		code    int
		headers map[string]string
	}{
		{
			name: "allowed origin", cfg: base, method: http.MethodGet, origin: app, code: http.StatusOK,
			headers: map[string]string{
				"Access-Control-Allow-Origin":      app,
				"Access-Control-Allow-Credentials": "true",
				"Access-Control-Expose-Headers":    "X-Request-ID",
				"Access-Control-Max-Age":           "43200",
				"Vary":                             "Origin",
			},
		},
		{
			name: "unknown origin", cfg: base, method: http.MethodGet, origin: "https://evil.test", code: http.StatusOK,
			headers: map[string]string{"Access-Control-Allow-Origin": ""},
		},
		{
			name: "preflight", cfg: base, method: http.MethodOptions, origin: app, code: http.StatusNoContent,
			headers: map[string]string{
				"Access-Control-Allow-Methods": "GET, POST",
				"Access-Control-Allow-Headers": "Content-Type, Authorization",
			},
		},
		{
			name: "preflight from unknown origin", cfg: base, method: http.MethodOptions, origin: "https://evil.test", code: http.StatusNoContent,
			headers: map[string]string{"Access-Control-Allow-Origin": ""},
		},
		{
			name: "wildcard drops credentials", cfg: withOrigins("*"), method: http.MethodGet, origin: "https://anything.test", code: http.StatusOK,
			headers: map[string]string{
				"Access-Control-Allow-Origin":      "*",
				"Access-Control-Allow-Credentials": "",
				"Vary":                             "",
			},
		},
		{
			name: "empty allow list", cfg: withOrigins(), method: http.MethodGet, origin: app, code: http.StatusOK,
			headers: map[string]string{"Access-Control-Allow-Origin": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSWithConfig(tt.cfg))
			r.GET("/api/properties", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(tt.method, "/api/properties", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			for name, want := range tt.headers {
				assert.Equal(t, want, w.Header().Get(name), name)
			}
		})
	}
}
