package handler

import (
	"github.com/gin-gonic/gin"
	mortgageapp "github.com/owneriq/backend/internal/application/mortgage"
)

// MortgageHandler serves the mortgage calculators and stored schedules
type MortgageHandler struct {
	BaseHandler
	mortgages *mortgageapp.MortgageService
}

// NewMortgageHandler creates a new MortgageHandler
func NewMortgageHandler(mortgages *mortgageapp.MortgageService) *MortgageHandler {
	return &MortgageHandler{mortgages: mortgages}
}

// CalculatePayment godoc
// @ID           calculateMortgagePayment
// @Summary      Monthly principal and interest
// @Description  Rates above 1 are read as percentages
// @Tags         mortgage
// @Accept       json
// @Produce      json
// @Param        request body mortgageapp.CalculatePaymentRequest true "Loan"
// @Success      200 {object} APIResponse[mortgageapp.PaymentResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/calculate-payment [post]
func (h *MortgageHandler) CalculatePayment(c *gin.Context) {
	var req mortgageapp.CalculatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.mortgages.CalculatePayment(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// CalculatePITI godoc
// @ID           calculateMortgagePITI
// @Summary      Monthly principal, interest, taxes and insurance
// @Tags         mortgage
// @Accept       json
// @Produce      json
// @Param        request body mortgageapp.CalculatePITIRequest true "PITI inputs"
// @Success      200 {object} APIResponse[mortgageapp.PITIResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/calculate-piti [post]
func (h *MortgageHandler) CalculatePITI(c *gin.Context) {
	var req mortgageapp.CalculatePITIRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.mortgages.CalculatePITI(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// GenerateSchedule godoc
// @ID           generateMortgageSchedule
// @Summary      Generate and store an amortization schedule
// @Description  Replaces the property's stored schedule
// @Tags         mortgage
// @Accept       json
// @Produce      json
// @Param        request body mortgageapp.GenerateScheduleRequest true "Schedule inputs"
// @Success      201 {object} APIResponse[mortgageapp.GenerateScheduleResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/generate-schedule [post]
func (h *MortgageHandler) GenerateSchedule(c *gin.Context) {
	var req mortgageapp.GenerateScheduleRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.mortgages.GenerateSchedule(c.Request.Context(), ownerID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// BalanceAtYear godoc
// @ID           mortgageBalanceAtYear
// @Summary      Projected balance after a number of years
// @Tags         mortgage
// @Accept       json
// @Produce      json
// @Param        request body mortgageapp.BalanceAtYearRequest true "Projection inputs"
// @Success      200 {object} APIResponse[mortgageapp.ProjectionResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/balance-at-year [post]
func (h *MortgageHandler) BalanceAtYear(c *gin.Context) {
	var req mortgageapp.BalanceAtYearRequest
	if !h.BindJSON(c, &req) {
		return
	}
	resp, err := h.mortgages.BalanceAtYear(req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Schedule godoc
// @ID           getMortgageSchedule
// @Summary      Stored schedule rows
// @Tags         mortgage
// @Produce      json
// @Param        propertyId path  string true  "Property ID" format(uuid)
// @Param        year       query int    false "Loan year, 1-based"
// @Param        limit      query int    false "Maximum rows"
// @Success      200 {object} APIResponse[[]mortgageapp.ScheduleRowResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/schedule/{propertyId} [get]
func (h *MortgageHandler) Schedule(c *gin.Context) {
	id, ok := h.ParamUUID(c, "propertyId")
	if !ok {
		return
	}
	var q mortgageapp.ScheduleQuery
	if !h.BindQuery(c, &q) {
		return
	}
	rows, err := h.mortgages.Schedule(c.Request.Context(), ownerID(c), id, q)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, rows)
}

// Yearly godoc
// @ID           getMortgageYearly
// @Summary      Stored schedule rolled up per year
// @Tags         mortgage
// @Produce      json
// @Param        propertyId path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[[]mortgageapp.YearResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/schedule/{propertyId}/yearly [get]
func (h *MortgageHandler) Yearly(c *gin.Context) {
	id, ok := h.ParamUUID(c, "propertyId")
	if !ok {
		return
	}
	years, err := h.mortgages.Yearly(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, years)
}

// Summary godoc
// @ID           getMortgageSummary
// @Summary      Stored schedule summary
// @Tags         mortgage
// @Produce      json
// @Param        propertyId path string true "Property ID" format(uuid)
// @Success      200 {object} APIResponse[mortgageapp.SummaryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/summary/{propertyId} [get]
func (h *MortgageHandler) Summary(c *gin.Context) {
	id, ok := h.ParamUUID(c, "propertyId")
	if !ok {
		return
	}
	resp, err := h.mortgages.Summary(c.Request.Context(), ownerID(c), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// DeleteSchedule godoc
// @ID           deleteMortgageSchedule
// @Summary      Delete the stored schedule
// @Tags         mortgage
// @Param        propertyId path string true "Property ID" format(uuid)
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /mortgage/schedule/{propertyId} [delete]
func (h *MortgageHandler) DeleteSchedule(c *gin.Context) {
	id, ok := h.ParamUUID(c, "propertyId")
	if !ok {
		return
	}
	if err := h.mortgages.DeleteSchedule(c.Request.Context(), ownerID(c), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
