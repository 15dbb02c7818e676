package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	mortgageapp "github.com/owneriq/backend/internal/application/mortgage"
	"github.com/owneriq/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupMortgageRouter() *gin.Engine {
	h := NewMortgageHandler(mortgageapp.NewMortgageService(nil, nil, zap.NewNop()))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		setOwnerContext(c, "user-1", "owner-1")
		c.Next()
	})
	g := r.Group("/api/mortgage")
	g.POST("/calculate-payment", h.CalculatePayment)
	g.POST("/calculate-piti", h.CalculatePITI)
	g.POST("/balance-at-year", h.BalanceAtYear)
	g.GET("/schedule/:propertyId", h.Schedule)
	return r
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestMortgageHandler_CalculatePayment(t *testing.T) {
	r := setupMortgageRouter()

	tests := []struct {
		name string
		body string
	}{
		{name: "rate as percent", body: `{"loan_amount":200000,"annual_interest_rate":6,"term_years":30}`},
		{name: "rate as fraction", body: `{"loan_amount":"200000","annual_interest_rate":"0.06","term_years":30}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/mortgage/calculate-payment", tt.body)
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp struct {
				Data struct {
					MonthlyPayment string `json:"monthly_payment"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "1199.1", resp.Data.MonthlyPayment)
		})
	}
}

func TestMortgageHandler_CalculatePayment_Errors(t *testing.T) {
	r := setupMortgageRouter()

	t.Run("missing term fails validation", func(t *testing.T) {
		w := postJSON(r, "/api/mortgage/calculate-payment", `{"loan_amount":200000,"annual_interest_rate":6}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeValidation, decodeResponse(t, w).Error.Code)
	})

	t.Run("zero loan is invalid input", func(t *testing.T) {
		w := postJSON(r, "/api/mortgage/calculate-payment", `{"loan_amount":0,"annual_interest_rate":6,"term_years":30}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, dto.ErrCodeInvalidInput, decodeResponse(t, w).Error.Code)
	})
}

func TestMortgageHandler_CalculatePITI(t *testing.T) {
	r := setupMortgageRouter()

	w := postJSON(r, "/api/mortgage/calculate-piti",
		`{"monthly_payment_pi":1199.10,"yearly_property_taxes":3600,"yearly_hoi":1200,"monthly_pmi":50}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"piti":"1649.1"`)

	w = postJSON(r, "/api/mortgage/calculate-piti", `{"yearly_property_taxes":3600}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMortgageHandler_Schedule_BadPropertyID(t *testing.T) {
	w := httptest.NewRecorder()
	setupMortgageRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/mortgage/schedule/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid propertyId", decodeResponse(t, w).Error.Message)
}
