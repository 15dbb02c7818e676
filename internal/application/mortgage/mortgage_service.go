// Package mortgage serves the mortgage calculator and the stored
// amortization schedules of properties.
package mortgage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/mortgage"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

var one = decimal.NewFromInt(1)

// Metrics receives schedule counters. *metrics.Registry implements it.
type Metrics interface {
	ScheduleGenerated()
}

type noopMetrics struct{}

func (noopMetrics) ScheduleGenerated() {}

// MortgageService runs mortgage calculations and manages stored schedules
type MortgageService struct {
	properties property.PropertyRepository
	schedules  mortgage.ScheduleRepository
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewMortgageService creates a new MortgageService
func NewMortgageService(properties property.PropertyRepository, schedules mortgage.ScheduleRepository, logger *zap.Logger) *MortgageService {
	return &MortgageService{
		properties: properties,
		schedules:  schedules,
		metrics:    noopMetrics{},
		logger:     logger,
		now:        time.Now,
	}
}

// SetMetrics sets the metrics sink
func (s *MortgageService) SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	s.metrics = m
}

// CalculatePayment returns the monthly principal and interest payment
func (s *MortgageService) CalculatePayment(req CalculatePaymentRequest) (*PaymentResponse, error) {
	payment, err := mortgage.MonthlyPayment(req.LoanAmount, annualRate(req.AnnualInterestRate), req.TermYears)
	if err != nil {
		return nil, err
	}
	return &PaymentResponse{MonthlyPayment: payment}, nil
}

// CalculatePITI returns the monthly payment including escrow items
func (s *MortgageService) CalculatePITI(req CalculatePITIRequest) (*PITIResponse, error) {
	if !req.MonthlyPaymentPI.IsPositive() {
		return nil, shared.NewDomainError("INVALID_INPUT", "monthly_payment_pi is required")
	}
	return &PITIResponse{
		PITI: mortgage.PITI(req.MonthlyPaymentPI, req.YearlyPropertyTaxes, req.YearlyHOI, req.MonthlyPMI),
	}, nil
}

// BalanceAtYear projects the balance after the given number of years
func (s *MortgageService) BalanceAtYear(req BalanceAtYearRequest) (*ProjectionResponse, error) {
	p, err := mortgage.BalanceAtYear(req.LoanAmount, annualRate(req.AnnualInterestRate), req.TermYears, req.Year)
	if err != nil {
		return nil, err
	}
	return &ProjectionResponse{
		Year:          req.Year,
		Balance:       p.Balance,
		InterestPaid:  p.InterestPaid,
		PrincipalPaid: p.PrincipalPaid,
	}, nil
}

// GenerateSchedule computes the amortization schedule of a property and
// replaces its stored schedule and summary in one transaction. Payment ids
// are derived from the property and payment number, so regenerating with
// the same inputs yields the same ids.
func (s *MortgageService) GenerateSchedule(ctx context.Context, ownerID string, req GenerateScheduleRequest) (resp *GenerateScheduleResponse, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "MortgageService", "GenerateSchedule",
		telemetry.WithAttribute(telemetry.SpanAttrOwnerID, ownerID),
		telemetry.WithAttribute(telemetry.SpanAttrPropertyID, req.PropertyID.String()),
	)
	defer func() {
		telemetry.End(span, err)
	}()

	if _, err = s.properties.FindByIDForOwner(ctx, ownerID, req.PropertyID); err != nil {
		return nil, err
	}
	first, err := time.Parse(dateLayout, strings.TrimSpace(req.FirstPaymentDate))
	if err != nil {
		return nil, shared.NewDomainError("INVALID_DATE", "first_payment_date must be in YYYY-MM-DD format")
	}

	rate := annualRate(req.AnnualInterestRate)
	schedule, summary, err := mortgage.Schedule(mortgage.Params{
		LoanAmount:          req.LoanAmount,
		AnnualRate:          rate,
		TermYears:           req.TermYears,
		FirstPaymentDate:    first,
		HomeValue:           req.HomeValue,
		TaxBracket:          req.TaxBracket,
		ExtraPayment:        req.ExtraPayment,
		ExtraPaymentStartAt: req.ExtraPaymentStartAt,
	})
	if err != nil {
		return nil, err
	}

	stored := mortgage.StoredSummary{
		PropertyID:          req.PropertyID,
		Summary:             summary,
		MonthlyPaymentPITI:  mortgage.PITI(summary.MonthlyPaymentPI, req.YearlyPropertyTaxes, req.YearlyHOI, req.MonthlyPMI),
		YearlyPropertyTaxes: req.YearlyPropertyTaxes,
		YearlyHOI:           req.YearlyHOI,
		MonthlyPMI:          req.MonthlyPMI,
		UpdatedAt:           s.now(),
	}
	if err = s.schedules.Replace(ctx, req.PropertyID, mortgage.Attach(req.PropertyID, schedule), stored); err != nil {
		s.logger.Error("Failed to store amortization schedule",
			zap.String("property_id", req.PropertyID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	s.metrics.ScheduleGenerated()

	s.logger.Info("Amortization schedule generated",
		zap.String("property_id", req.PropertyID.String()),
		zap.Int("payments", len(schedule)),
	)
	return &GenerateScheduleResponse{
		PaymentsGenerated: len(schedule),
		Summary:           toSummaryResponse(&stored),
	}, nil
}

// Schedule lists the stored schedule of a property
func (s *MortgageService) Schedule(ctx context.Context, ownerID string, propertyID uuid.UUID, q ScheduleQuery) ([]ScheduleRowResponse, error) {
	if _, err := s.properties.FindByIDForOwner(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	payments, err := s.schedules.FindPayments(ctx, propertyID, q.Year, q.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]ScheduleRowResponse, len(payments))
	for i, p := range payments {
		out[i] = toScheduleRow(p)
	}
	return out, nil
}

// Yearly totals the stored schedule per loan year. A property without a
// schedule is not found.
func (s *MortgageService) Yearly(ctx context.Context, ownerID string, propertyID uuid.UUID) ([]YearResponse, error) {
	if _, err := s.properties.FindByIDForOwner(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	stored, err := s.schedules.FindPayments(ctx, propertyID, 0, 0)
	if err != nil {
		return nil, err
	}
	if len(stored) == 0 {
		return nil, shared.NewDomainError("NOT_FOUND", "No amortization schedule found for this property")
	}
	payments := make([]mortgage.Payment, len(stored))
	for i := range stored {
		payments[i] = stored[i].Payment
	}
	years := mortgage.YearlySummary(payments)
	out := make([]YearResponse, len(years))
	for i, y := range years {
		out[i] = toYearResponse(y)
	}
	return out, nil
}

// Summary returns the stored schedule summary of a property
func (s *MortgageService) Summary(ctx context.Context, ownerID string, propertyID uuid.UUID) (*SummaryResponse, error) {
	if _, err := s.properties.FindByIDForOwner(ctx, ownerID, propertyID); err != nil {
		return nil, err
	}
	summary, err := s.schedules.FindSummary(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	resp := toSummaryResponse(summary)
	return &resp, nil
}

// DeleteSchedule removes the stored schedule and summary of a property
func (s *MortgageService) DeleteSchedule(ctx context.Context, ownerID string, propertyID uuid.UUID) error {
	if _, err := s.properties.FindByIDForOwner(ctx, ownerID, propertyID); err != nil {
		return err
	}
	if err := s.schedules.Delete(ctx, propertyID); err != nil {
		return err
	}
	s.logger.Info("Amortization schedule deleted", zap.String("property_id", propertyID.String()))
	return nil
}

// annualRate reads rates above 1 as percentages
func annualRate(rate decimal.Decimal) decimal.Decimal {
	if rate.GreaterThan(one) {
		return rate.Div(decimal.NewFromInt(100))
	}
	return rate
}
