package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	propertyapp "github.com/owneriq/backend/internal/application/property"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*property.Property, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*property.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAllForOwner(ctx context.Context, ownerID string, filter shared.Filter) ([]property.Property, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]property.Property), args.Error(1)
}

func (m *MockPropertyRepository) CountForOwner(ctx context.Context, ownerID string, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) CountByEntity(ctx context.Context, ownerID string, entityID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID, entityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPropertyRepository) DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	return m.Called(ctx, ownerID, id).Error(0)
}

func setupPropertyRouter(props *MockPropertyRepository) *gin.Engine {
	svc := propertyapp.NewPropertyService(propertyapp.Repositories{Properties: props}, zap.NewNop())
	h := NewPropertyHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		setOwnerContext(c, "user-1", "owner-1")
		c.Next()
	})
	g := r.Group("/api/properties")
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.DELETE("/:id", h.Delete)
	return r
}

func TestPropertyHandler_List(t *testing.T) {
	props := new(MockPropertyRepository)
	p, err := property.NewProperty("owner-1", property.KindInvestment, valueobject.PostalAddress{
		Line1: "12 Elm St", City: "Austin", StateCode: "TX", PostalCode: "78701", CountryCode: "US",
	})
	require.NoError(t, err)

	pageTwo := mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 1 && f.Filters["property_type"] == "investment"
	})
	props.On("FindAllForOwner", mock.Anything, "owner-1", pageTwo).Return([]property.Property{*p}, nil)
	props.On("CountForOwner", mock.Anything, "owner-1", pageTwo).Return(int64(3), nil)

	w := httptest.NewRecorder()
	setupPropertyRouter(props).ServeHTTP(w,
		httptest.NewRequest(http.MethodGet, "/api/properties?page=2&page_size=1&property_type=investment", nil))

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
	assert.Contains(t, w.Body.String(), "12 Elm St")
	props.AssertExpectations(t)
}

func TestPropertyHandler_List_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		code  string
	}{
		{name: "unknown property type", query: "?property_type=condo", code: dto.ErrCodeValidation},
		{name: "page size over limit", query: "?page_size=500", code: dto.ErrCodeValidation},
		{name: "malformed entity id", query: "?entity_id=abc", code: dto.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			setupPropertyRouter(new(MockPropertyRepository)).ServeHTTP(w,
				httptest.NewRequest(http.MethodGet, "/api/properties"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, decodeResponse(t, w).Error.Code)
		})
	}
}

func TestPropertyHandler_Get_OtherOwnersPropertyIsNotFound(t *testing.T) {
	props := new(MockPropertyRepository)
	id := uuid.New()
	props.On("FindByIDForOwner", mock.Anything, "owner-1", id).Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	setupPropertyRouter(props).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/properties/"+id.String(), nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	props.AssertExpectations(t)
}
