package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"github.com/owneriq/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// setOwnerContext stands in for the JWT and DataScope middleware.
func setOwnerContext(c *gin.Context, userID, ownerID string) {
	c.Set(middleware.JWTUserIDKey, userID)
	c.Set(middleware.OwnerIDKey, ownerID)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

// testContext returns a context for a request with an optional JSON body.
func testContext(method, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, "/", r)
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	return c, w
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name   string
		ctxID  string
		header string
		want   string
	}{
		{name: "gin context", ctxID: "ctx-id", want: "ctx-id"},
		{name: "header fallback", header: "hdr-id", want: "hdr-id"},
		{name: "context wins", ctxID: "ctx-id", header: "hdr-id", want: "ctx-id"},
		{name: "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext(http.MethodGet, "")
			if tt.ctxID != "" {
				c.Set(middleware.RequestIDKey, tt.ctxID)
			}
			if tt.header != "" {
				c.Request.Header.Set("X-Request-ID", tt.header)
			}
			assert.Equal(t, tt.want, getRequestID(c))
		})
	}
}

func TestOwnerID_Demo(t *testing.T) {
	c, _ := testContext(http.MethodGet, "")
	setOwnerContext(c, "auth0|owner-7", shared.DemoOwnerID)
	assert.Equal(t, shared.DemoOwnerID, ownerID(c))
}

func TestBaseHandler_SuccessResponses(t *testing.T) {
	h := &BaseHandler{}

	c, w := testContext(http.MethodGet, "")
	h.Success(c, gin.H{"address": "12 Elm St"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)

	c, w = testContext(http.MethodPost, "")
	h.Created(c, gin.H{"id": uuid.NewString()})
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = testContext(http.MethodGet, "")
	h.SuccessWithMeta(c, []string{"a", "b"}, 45, 2, 20)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)

	r := gin.New()
	r.DELETE("/x", h.NoContent)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len())
}

func TestBaseHandler_Error(t *testing.T) {
	c, w := testContext(http.MethodGet, "")
	c.Set(middleware.RequestIDKey, "req-err")
	(&BaseHandler{}).InternalError(c, "boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrCodeInternal, resp.Error.Code)
	assert.Equal(t, "boom", resp.Error.Message)
	assert.Equal(t, "req-err", resp.Error.RequestID)
}

type entityInput struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"omitempty,email"`
}

func TestBaseHandler_BindJSON(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		code   string
		field  string
		status int
	}{
		{name: "valid", body: `{"name":"Maple LLC"}`},
		{name: "missing name", body: `{}`, status: http.StatusBadRequest, code: dto.ErrCodeValidation, field: "name"},
		{name: "blank name", body: `{"name":"  "}`, status: http.StatusBadRequest, code: dto.ErrCodeValidation, field: "name"},
		{name: "bad email", body: `{"name":"x","email":"nope"}`, status: http.StatusBadRequest, code: dto.ErrCodeValidation, field: "email"},
		{name: "malformed", body: `{"name":`, status: http.StatusBadRequest, code: dto.ErrCodeInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := testContext(http.MethodPost, tt.body)
			var in entityInput
			ok := (&BaseHandler{}).BindJSON(c, &in)

			if tt.code == "" {
				require.True(t, ok)
				assert.Equal(t, "Maple LLC", in.Name)
				return
			}
			require.False(t, ok)
			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, tt.code, resp.Error.Code)
			if tt.field != "" {
				require.NotEmpty(t, resp.Error.Details)
				assert.Equal(t, tt.field, resp.Error.Details[0].Field)
			}
		})
	}
}

func TestBaseHandler_BindJSON_TooLarge(t *testing.T) {
	c, w := testContext(http.MethodPost, `{"name":"`+strings.Repeat("a", 64)+`"}`)
	c.Request.Body = http.MaxBytesReader(w, c.Request.Body, 16)

	var in entityInput
	assert.False(t, (&BaseHandler{}).BindJSON(c, &in))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, dto.ErrCodePayloadTooLarge, decodeResponse(t, w).Error.Code)
}

func TestBaseHandler_ParamUUID(t *testing.T) {
	h := &BaseHandler{}
	id := uuid.New()

	c, _ := testContext(http.MethodGet, "")
	c.Params = gin.Params{{Key: "id", Value: id.String()}}
	got, ok := h.ParamUUID(c, "id")
	require.True(t, ok)
	assert.Equal(t, id, got)

	c, w := testContext(http.MethodGet, "")
	c.Params = gin.Params{{Key: "pid", Value: "42"}}
	_, ok = h.ParamUUID(c, "pid")
	require.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeInvalidInput, resp.Error.Code)
	assert.Equal(t, "Invalid pid", resp.Error.Message)
}

func TestBaseHandler_HandleDomainError(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{shared.ErrNotFound, http.StatusNotFound, dto.ErrCodeNotFound},
		{shared.ErrAlreadyExists, http.StatusConflict, dto.ErrCodeAlreadyExists},
		{shared.ErrInvalidInput, http.StatusBadRequest, dto.ErrCodeInvalidInput},
		{shared.ErrUnauthorized, http.StatusUnauthorized, dto.ErrCodeUnauthorized},
		{shared.ErrForbidden, http.StatusForbidden, dto.ErrCodeForbidden},
		{shared.ErrInvalidState, http.StatusUnprocessableEntity, dto.ErrCodeInvalidState},
		{shared.ErrInUse, http.StatusConflict, dto.ErrCodeInUse},
		{shared.ErrNotImplemented, http.StatusNotImplemented, dto.ErrCodeNotImplemented},
		{shared.ErrPrimaryRecord, http.StatusConflict, "PRIMARY_RECORD"},
		{shared.NewDomainError("DOCUMENTS_MISSING", "Required documents are missing"), http.StatusBadRequest, "DOCUMENTS_MISSING"},
		{shared.NewDomainError("INVALID_FORMAT", "format must be markdown, html or pdf"), http.StatusBadRequest, "INVALID_FORMAT"},
		{fmt.Errorf("load property: %w", shared.ErrNotFound), http.StatusNotFound, dto.ErrCodeNotFound},
		{assert.AnError, http.StatusInternalServerError, dto.ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			c, w := testContext(http.MethodGet, "")
			c.Set(middleware.RequestIDKey, "req-domain")

			(&BaseHandler{}).HandleDomainError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			resp := decodeResponse(t, w)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "req-domain", resp.Error.RequestID)
		})
	}

	t.Run("internal errors are not leaked", func(t *testing.T) {
		c, w := testContext(http.MethodGet, "")
		(&BaseHandler{}).HandleDomainError(c, fmt.Errorf("pq: connection refused"))
		assert.Equal(t, "An unexpected error occurred", decodeResponse(t, w).Error.Message)
	})

	t.Run("nil writes nothing", func(t *testing.T) {
		c, w := testContext(http.MethodGet, "")
		(&BaseHandler{}).HandleDomainError(c, nil)
		assert.Zero(t, w.Body.Len())
	})
}
