package mortgage

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/mortgage"
	"github.com/shopspring/decimal"
)

// Rates in requests are annual. A value above 1 is read as a percentage
// (6.5 means 6.5%), anything else as a fraction (0.065).

// CalculatePaymentRequest is the body of POST /mortgage/calculate-payment
type CalculatePaymentRequest struct {
	LoanAmount         decimal.Decimal `json:"loan_amount" swaggertype:"number"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate" swaggertype:"number"`
	TermYears          int             `json:"term_years" binding:"required,min=1,max=50"`
}

// PaymentResponse is the monthly principal and interest payment
type PaymentResponse struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment" swaggertype:"number"`
}

// CalculatePITIRequest is the body of POST /mortgage/calculate-piti
type CalculatePITIRequest struct {
	MonthlyPaymentPI    decimal.Decimal `json:"monthly_payment_pi" swaggertype:"number"`
	YearlyPropertyTaxes decimal.Decimal `json:"yearly_property_taxes" swaggertype:"number"`
	YearlyHOI           decimal.Decimal `json:"yearly_hoi" swaggertype:"number"`
	MonthlyPMI          decimal.Decimal `json:"monthly_pmi" swaggertype:"number"`
}

// PITIResponse is the monthly principal, interest, taxes and insurance payment
type PITIResponse struct {
	PITI decimal.Decimal `json:"piti" swaggertype:"number"`
}

// GenerateScheduleRequest is the body of POST /mortgage/generate-schedule
type GenerateScheduleRequest struct {
	PropertyID          uuid.UUID           `json:"property_id" binding:"required"`
	LoanAmount          decimal.Decimal     `json:"loan_amount" swaggertype:"number"`
	AnnualInterestRate  decimal.Decimal     `json:"annual_interest_rate" swaggertype:"number"`
	TermYears           int                 `json:"term_years" binding:"required,min=1,max=50"`
	FirstPaymentDate    string              `json:"first_payment_date" binding:"required" example:"2024-02-01"`
	HomeValue           decimal.NullDecimal `json:"home_value" swaggertype:"number"`
	YearlyPropertyTaxes decimal.Decimal     `json:"yearly_property_taxes" swaggertype:"number"`
	YearlyHOI           decimal.Decimal     `json:"yearly_hoi" swaggertype:"number"`
	MonthlyPMI          decimal.Decimal     `json:"monthly_pmi" swaggertype:"number"`
	TaxBracket          decimal.NullDecimal `json:"tax_bracket" swaggertype:"number"`
	ExtraPayment        decimal.Decimal     `json:"extra_payment" swaggertype:"number"`
	ExtraPaymentStartAt int                 `json:"extra_payment_start_at" binding:"min=0"`
}

// GenerateScheduleResponse reports a regenerated schedule
type GenerateScheduleResponse struct {
	PaymentsGenerated int             `json:"payments_generated"`
	Summary           SummaryResponse `json:"summary"`
}

// ScheduleQuery filters a stored schedule
type ScheduleQuery struct {
	Year  int `form:"year" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=600"`
}

// ScheduleRowResponse is one stored schedule row
type ScheduleRowResponse struct {
	PaymentID             uuid.UUID           `json:"payment_id"`
	PaymentNumber         int                 `json:"payment_number"`
	PaymentDate           string              `json:"payment_date"`
	PaymentYear           int                 `json:"payment_year"`
	InterestRate          decimal.Decimal     `json:"interest_rate" swaggertype:"number"`
	InterestDue           decimal.Decimal     `json:"interest_due" swaggertype:"number"`
	PaymentDue            decimal.Decimal     `json:"payment_due" swaggertype:"number"`
	ExtraPayment          decimal.Decimal     `json:"extra_payment" swaggertype:"number"`
	PrincipalPaid         decimal.Decimal     `json:"principal_paid" swaggertype:"number"`
	Balance               decimal.Decimal     `json:"balance" swaggertype:"number"`
	LTV                   decimal.NullDecimal `json:"ltv" swaggertype:"number"`
	TaxReturned           decimal.Decimal     `json:"tax_returned" swaggertype:"number"`
	CumulativeTaxReturned decimal.Decimal     `json:"cumulative_tax_returned" swaggertype:"number"`
}

func toScheduleRow(p mortgage.StoredPayment) ScheduleRowResponse {
	return ScheduleRowResponse{
		PaymentID:             p.PaymentID,
		PaymentNumber:         p.PaymentNumber,
		PaymentDate:           p.PaymentDate.Format(dateLayout),
		PaymentYear:           p.PaymentYear,
		InterestRate:          p.InterestRate,
		InterestDue:           p.InterestDue,
		PaymentDue:            p.PaymentDue,
		ExtraPayment:          p.ExtraPayment,
		PrincipalPaid:         p.PrincipalPaid,
		Balance:               p.Balance,
		LTV:                   p.LTV,
		TaxReturned:           p.TaxReturned,
		CumulativeTaxReturned: p.CumulativeTaxReturned,
	}
}

// YearResponse totals one loan year
type YearResponse struct {
	Year           int             `json:"year"`
	Payments       int             `json:"payments"`
	TotalInterest  decimal.Decimal `json:"total_interest" swaggertype:"number"`
	TotalPrincipal decimal.Decimal `json:"total_principal" swaggertype:"number"`
	TotalPayment   decimal.Decimal `json:"total_payment" swaggertype:"number"`
	EndingBalance  decimal.Decimal `json:"ending_balance" swaggertype:"number"`
	TaxReturned    decimal.Decimal `json:"tax_returned" swaggertype:"number"`
}

func toYearResponse(y mortgage.YearSummary) YearResponse {
	return YearResponse{
		Year:           y.Year,
		Payments:       y.Payments,
		TotalInterest:  y.TotalInterest,
		TotalPrincipal: y.TotalPrincipal,
		TotalPayment:   y.TotalPayment,
		EndingBalance:  y.EndingBalance,
		TaxReturned:    y.TaxReturned,
	}
}

// BalanceAtYearRequest is the body of POST /mortgage/balance-at-year
type BalanceAtYearRequest struct {
	LoanAmount         decimal.Decimal `json:"loan_amount" swaggertype:"number"`
	AnnualInterestRate decimal.Decimal `json:"annual_interest_rate" swaggertype:"number"`
	TermYears          int             `json:"term_years" binding:"required,min=1,max=50"`
	Year               int             `json:"year" binding:"min=0"`
}

// ProjectionResponse is the loan position after a number of years
type ProjectionResponse struct {
	Year          int             `json:"year"`
	Balance       decimal.Decimal `json:"balance" swaggertype:"number"`
	InterestPaid  decimal.Decimal `json:"interest_paid" swaggertype:"number"`
	PrincipalPaid decimal.Decimal `json:"principal_paid" swaggertype:"number"`
}

// SummaryResponse is the stored summary of a property's schedule
type SummaryResponse struct {
	PropertyID             uuid.UUID           `json:"property_id"`
	LoanAmount             decimal.Decimal     `json:"loan_amount" swaggertype:"number"`
	InterestRate           decimal.Decimal     `json:"interest_rate" swaggertype:"number"`
	TermYears              int                 `json:"term_years"`
	FirstPaymentDate       string              `json:"first_payment_date"`
	MonthlyPaymentPI       decimal.Decimal     `json:"monthly_payment_pi" swaggertype:"number"`
	MonthlyPaymentPITI     decimal.Decimal     `json:"monthly_payment_piti" swaggertype:"number"`
	HomeValue              decimal.NullDecimal `json:"home_value" swaggertype:"number"`
	YearlyPropertyTaxes    decimal.Decimal     `json:"yearly_property_taxes" swaggertype:"number"`
	YearlyHOI              decimal.Decimal     `json:"yearly_hoi" swaggertype:"number"`
	MonthlyPMI             decimal.Decimal     `json:"monthly_pmi" swaggertype:"number"`
	TotalPayments          decimal.Decimal     `json:"total_payments" swaggertype:"number"`
	TotalInterest          decimal.Decimal     `json:"total_interest" swaggertype:"number"`
	TotalPrincipal         decimal.Decimal     `json:"total_principal" swaggertype:"number"`
	TaxBracket             decimal.Decimal     `json:"tax_bracket" swaggertype:"number"`
	TotalTaxReturned       decimal.Decimal     `json:"total_tax_returned" swaggertype:"number"`
	EffectiveInterestRate  decimal.Decimal     `json:"effective_interest_rate" swaggertype:"number"`
	ActualNumberOfPayments int                 `json:"actual_number_of_payments"`
	LastPaymentDate        string              `json:"last_payment_date,omitempty"`
	UpdatedAt              time.Time           `json:"updated_at"`
}

func toSummaryResponse(s *mortgage.StoredSummary) SummaryResponse {
	resp := SummaryResponse{
		PropertyID:             s.PropertyID,
		LoanAmount:             s.LoanAmount,
		InterestRate:           s.InterestRate,
		TermYears:              s.TermYears,
		FirstPaymentDate:       s.FirstPaymentDate.Format(dateLayout),
		MonthlyPaymentPI:       s.MonthlyPaymentPI,
		MonthlyPaymentPITI:     s.MonthlyPaymentPITI,
		HomeValue:              s.HomeValue,
		YearlyPropertyTaxes:    s.YearlyPropertyTaxes,
		YearlyHOI:              s.YearlyHOI,
		MonthlyPMI:             s.MonthlyPMI,
		TotalPayments:          s.TotalPayments,
		TotalInterest:          s.TotalInterest,
		TotalPrincipal:         s.TotalPrincipal,
		TaxBracket:             s.TaxBracket,
		TotalTaxReturned:       s.TotalTaxReturned,
		EffectiveInterestRate:  s.EffectiveInterestRate,
		ActualNumberOfPayments: s.ActualNumberOfPayments,
		UpdatedAt:              s.UpdatedAt,
	}
	if !s.LastPaymentDate.IsZero() {
		resp.LastPaymentDate = s.LastPaymentDate.Format(dateLayout)
	}
	return resp
}
