package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/mortgage"
	"github.com/shopspring/decimal"
)

// MortgagePaymentModel is one stored row of an amortization schedule.
type MortgagePaymentModel struct {
	PaymentID             uuid.UUID           `gorm:"column:payment_id;type:uuid;primary_key"`
	PropertyID            uuid.UUID           `gorm:"column:property_id;type:uuid;not null;index"`
	PaymentNumber         int                 `gorm:"column:payment_number;not null"`
	PaymentDate           time.Time           `gorm:"column:payment_date;type:date;not null"`
	PaymentYear           int                 `gorm:"column:payment_year;not null;index"`
	InterestRate          decimal.Decimal     `gorm:"column:interest_rate;type:decimal(9,6);not null"`
	InterestDue           decimal.Decimal     `gorm:"column:interest_due;type:decimal(14,2);not null"`
	PaymentDue            decimal.Decimal     `gorm:"column:payment_due;type:decimal(14,2);not null"`
	ExtraPayment          decimal.Decimal     `gorm:"column:extra_payment;type:decimal(14,2);not null;default:0"`
	PrincipalPaid         decimal.Decimal     `gorm:"column:principal_paid;type:decimal(14,2);not null"`
	Balance               decimal.Decimal     `gorm:"column:balance;type:decimal(14,2);not null"`
	LTV                   decimal.NullDecimal `gorm:"column:ltv;type:decimal(9,6)"`
	TaxReturned           decimal.Decimal     `gorm:"column:tax_returned;type:decimal(14,2);not null"`
	CumulativeTaxReturned decimal.Decimal     `gorm:"column:cumulative_tax_returned;type:decimal(14,2);not null"`
	CreatedAt             time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MortgagePaymentModel) TableName() string {
	return "mortgage_payment_schedule"
}

// ToDomain converts the persistence model to a domain StoredPayment.
func (m *MortgagePaymentModel) ToDomain() mortgage.StoredPayment {
	return mortgage.StoredPayment{
		PaymentID:  m.PaymentID,
		PropertyID: m.PropertyID,
		Payment: mortgage.Payment{
			PaymentNumber:         m.PaymentNumber,
			PaymentDate:           m.PaymentDate,
			PaymentYear:           m.PaymentYear,
			InterestRate:          m.InterestRate,
			InterestDue:           m.InterestDue,
			PaymentDue:            m.PaymentDue,
			ExtraPayment:          m.ExtraPayment,
			PrincipalPaid:         m.PrincipalPaid,
			Balance:               m.Balance,
			LTV:                   m.LTV,
			TaxReturned:           m.TaxReturned,
			CumulativeTaxReturned: m.CumulativeTaxReturned,
		},
	}
}

// MortgagePaymentModelFromDomain creates a persistence model from a domain StoredPayment.
func MortgagePaymentModelFromDomain(p mortgage.StoredPayment, createdAt time.Time) MortgagePaymentModel {
	return MortgagePaymentModel{
		PaymentID:             p.PaymentID,
		PropertyID:            p.PropertyID,
		PaymentNumber:         p.PaymentNumber,
		PaymentDate:           p.PaymentDate,
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
		CreatedAt:             createdAt,
	}
}

// MortgageSummaryModel is the stored summary of a property's schedule.
type MortgageSummaryModel struct {
	PropertyID             uuid.UUID           `gorm:"column:property_id;type:uuid;primary_key"`
	LoanAmount             decimal.Decimal     `gorm:"column:loan_amount;type:decimal(14,2);not null"`
	InterestRate           decimal.Decimal     `gorm:"column:interest_rate;type:decimal(9,6);not null"`
	TermYears              int                 `gorm:"column:term_years;not null"`
	FirstPaymentDate       time.Time           `gorm:"column:first_payment_date;type:date;not null"`
	MonthlyPaymentPI       decimal.Decimal     `gorm:"column:monthly_payment_pi;type:decimal(12,2);not null"`
	MonthlyPaymentPITI     decimal.Decimal     `gorm:"column:monthly_payment_piti;type:decimal(12,2);not null"`
	YearlyPropertyTaxes    decimal.Decimal     `gorm:"column:yearly_property_taxes;type:decimal(12,2);not null;default:0"`
	YearlyHOI              decimal.Decimal     `gorm:"column:yearly_hoi;type:decimal(12,2);not null;default:0"`
	MonthlyPMI             decimal.Decimal     `gorm:"column:monthly_pmi;type:decimal(12,2);not null;default:0"`
	HomeValue              decimal.NullDecimal `gorm:"column:home_value;type:decimal(14,2)"`
	TotalPayments          decimal.Decimal     `gorm:"column:total_payments;type:decimal(14,2);not null"`
	TotalInterest          decimal.Decimal     `gorm:"column:total_interest;type:decimal(14,2);not null"`
	TotalPrincipal         decimal.Decimal     `gorm:"column:total_principal;type:decimal(14,2);not null"`
	TaxBracket             decimal.Decimal     `gorm:"column:tax_bracket;type:decimal(5,4);not null"`
	TotalTaxReturned       decimal.Decimal     `gorm:"column:total_tax_returned;type:decimal(14,2);not null"`
	EffectiveInterestRate  decimal.Decimal     `gorm:"column:effective_interest_rate;type:decimal(9,6);not null"`
	ActualNumberOfPayments int                 `gorm:"column:actual_number_of_payments;not null"`
	LastPaymentDate        time.Time           `gorm:"column:last_payment_date;type:date;not null"`
	UpdatedAt              time.Time           `gorm:"not null"`
}

// TableName returns the table name for GORM
func (MortgageSummaryModel) TableName() string {
	return "mortgage_summary"
}

// ToDomain converts the persistence model to a domain StoredSummary.
func (m *MortgageSummaryModel) ToDomain() *mortgage.StoredSummary {
	return &mortgage.StoredSummary{
		PropertyID: m.PropertyID,
		Summary: mortgage.Summary{
			LoanAmount:             m.LoanAmount,
			InterestRate:           m.InterestRate,
			TermYears:              m.TermYears,
			FirstPaymentDate:       m.FirstPaymentDate,
			MonthlyPaymentPI:       m.MonthlyPaymentPI,
			HomeValue:              m.HomeValue,
			TotalPayments:          m.TotalPayments,
			TotalInterest:          m.TotalInterest,
			TotalPrincipal:         m.TotalPrincipal,
			TaxBracket:             m.TaxBracket,
			TotalTaxReturned:       m.TotalTaxReturned,
			EffectiveInterestRate:  m.EffectiveInterestRate,
			ActualNumberOfPayments: m.ActualNumberOfPayments,
			LastPaymentDate:        m.LastPaymentDate,
		},
		MonthlyPaymentPITI:  m.MonthlyPaymentPITI,
		YearlyPropertyTaxes: m.YearlyPropertyTaxes,
		YearlyHOI:           m.YearlyHOI,
		MonthlyPMI:          m.MonthlyPMI,
		UpdatedAt:           m.UpdatedAt,
	}
}

// MortgageSummaryModelFromDomain creates a persistence model from a domain StoredSummary.
func MortgageSummaryModelFromDomain(s mortgage.StoredSummary) *MortgageSummaryModel {
	return &MortgageSummaryModel{
		PropertyID:             s.PropertyID,
		LoanAmount:             s.LoanAmount,
		InterestRate:           s.InterestRate,
		TermYears:              s.TermYears,
		FirstPaymentDate:       s.FirstPaymentDate,
		MonthlyPaymentPI:       s.MonthlyPaymentPI,
		MonthlyPaymentPITI:     s.MonthlyPaymentPITI,
		YearlyPropertyTaxes:    s.YearlyPropertyTaxes,
		YearlyHOI:              s.YearlyHOI,
		MonthlyPMI:             s.MonthlyPMI,
		HomeValue:              s.HomeValue,
		TotalPayments:          s.TotalPayments,
		TotalInterest:          s.TotalInterest,
		TotalPrincipal:         s.TotalPrincipal,
		TaxBracket:             s.TaxBracket,
		TotalTaxReturned:       s.TotalTaxReturned,
		EffectiveInterestRate:  s.EffectiveInterestRate,
		ActualNumberOfPayments: s.ActualNumberOfPayments,
		LastPaymentDate:        s.LastPaymentDate,
		UpdatedAt:              s.UpdatedAt,
	}
}
