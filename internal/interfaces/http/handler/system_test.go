package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		status   int
		expected string
	}{
		{name: "no database", db: nil, status: http.StatusOK, expected: "healthy"},
		{name: "database ok", db: pingerFunc(func(context.Context) error { return nil }), status: http.StatusOK, expected: "healthy"},
		{name: "database down", db: pingerFunc(func(context.Context) error { return errors.New("connection refused") }), status: http.StatusServiceUnavailable, expected: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewSystemHandler(tt.db, "1.2.3").Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.status, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp.Status)
			assert.Equal(t, "1.2.3", resp.Version)
		})
	}
}
