package property

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Kind tells a primary residence from an investment property
type Kind string

const (
	KindPrimary    Kind = "primary"
	KindInvestment Kind = "investment"
)

// IsValid reports whether the kind is known
func (k Kind) IsValid() bool {
	return k == KindPrimary || k == KindInvestment
}

// Property is the central record of a physical property. Several numeric
// fields exist under both a current and a legacy column name; readers go
// through the resolvers in resolve.go instead of reading them directly.
type Property struct {
	shared.OwnedAggregateRoot
	EntityID  *uuid.UUID
	Kind      Kind
	Nickname  string
	Address   valueobject.PostalAddress
	Valuation Valuation
	Loan      Loan
	Tax       Tax
	Income    Income
}

// Valuation holds price, value and balance columns
type Valuation struct {
	PurchasePrice              decimal.NullDecimal
	RefinancePrice             decimal.NullDecimal
	CurrentMarketValueEstimate decimal.NullDecimal
	Valuation                  decimal.NullDecimal
	LoanAmount                 decimal.NullDecimal
	LoanBalance                decimal.NullDecimal
	CurrentBalance             decimal.NullDecimal
}

// Loan holds mortgage terms and the monthly payment breakdown
type Loan struct {
	LenderName                      string
	ServicerName                    string
	LoanNumber                      string
	ClosingDate                     *time.Time
	FirstPaymentDate                *time.Time
	MaturityDate                    *time.Time
	InterestRate                    decimal.NullDecimal
	LoanRate                        decimal.NullDecimal
	TermMonths                      *int
	TermYears                       *int
	PrincipalInterestMonthly        decimal.NullDecimal
	MonthlyPaymentPrincipalInterest decimal.NullDecimal
	PropertyTaxesMonthly            decimal.NullDecimal
	EscrowPropertyTax               decimal.NullDecimal
	InsuranceMonthly                decimal.NullDecimal
	EscrowHomeOwnerInsurance        decimal.NullDecimal
	HOAMonthly                      decimal.NullDecimal
	HOA                             decimal.NullDecimal
	PMIMonthly                      decimal.NullDecimal
	OtherMonthly                    decimal.NullDecimal
	YTDPrincipalPaid                decimal.NullDecimal
	YTDInterestPaid                 decimal.NullDecimal
}

// Tax holds property tax columns
type Tax struct {
	LegalDescription                string
	PropertyAddressLegalDescription string
	County                          string
	PropertyTaxCounty               string
	TaxAuthority                    string
	AccountNumber                   string
	AssessedValue                   decimal.NullDecimal
	TaxableValue                    decimal.NullDecimal
	TaxRatePercent                  decimal.NullDecimal
	PropertyTaxPercentage           decimal.NullDecimal
	TaxesPaidLastYear               decimal.NullDecimal
	TaxesPaidYTD                    decimal.NullDecimal
	AnnualTaxAmount                 decimal.NullDecimal
	Year1                           decimal.NullDecimal
}

// Income holds rental income and operating expense columns
type Income struct {
	MonthlyRent              decimal.NullDecimal
	RentalIncome             decimal.NullDecimal
	MonthlyOperatingExpenses decimal.NullDecimal
}

// NewProperty creates a property for the owner
func NewProperty(ownerID string, kind Kind, address valueobject.PostalAddress) (*Property, error) {
	if ownerID == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner id cannot be empty")
	}
	if kind == "" {
		kind = KindPrimary
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_PROPERTY_TYPE", "Property type must be primary or investment")
	}
	return &Property{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Kind:               kind,
		Address:            address,
	}, nil
}

// AssignEntity links the property to a legal entity, or to personal
// ownership when entityID is nil.
func (p *Property) AssignEntity(entityID *uuid.UUID) {
	if entityID != nil && *entityID == uuid.Nil {
		entityID = nil
	}
	p.EntityID = entityID
	p.Touch()
}

// GroupKey is the entity id, or "personal" for direct ownership
func (p *Property) GroupKey() string {
	if p.EntityID == nil {
		return "personal"
	}
	return p.EntityID.String()
}

// Validate checks field ranges after an edit
func (p *Property) Validate() error {
	if !p.Kind.IsValid() {
		return shared.NewDomainError("INVALID_PROPERTY_TYPE", "Property type must be primary or investment")
	}
	money := map[string]decimal.NullDecimal{
		"purchase_price":                p.Valuation.PurchasePrice,
		"refinance_price":               p.Valuation.RefinancePrice,
		"current_market_value_estimate": p.Valuation.CurrentMarketValueEstimate,
		"valuation":                     p.Valuation.Valuation,
		"loan_amount":                   p.Valuation.LoanAmount,
		"loan_balance":                  p.Valuation.LoanBalance,
		"current_balance":               p.Valuation.CurrentBalance,
	}
	for field, v := range money {
		if v.Valid && v.Decimal.IsNegative() {
			return shared.NewDomainError("INVALID_AMOUNT", field+" cannot be negative")
		}
	}
	for _, rate := range []decimal.NullDecimal{p.Loan.InterestRate, p.Loan.LoanRate} {
		if rate.Valid && (rate.Decimal.IsNegative() || rate.Decimal.GreaterThan(decimal.NewFromInt(100))) {
			return shared.NewDomainError("INVALID_RATE", "Interest rate must be between 0 and 100")
		}
	}
	if p.Loan.TermMonths != nil && (*p.Loan.TermMonths < 0 || *p.Loan.TermMonths > 600) {
		return shared.NewDomainError("INVALID_TERM", "Term must be between 0 and 600 months")
	}
	if p.Loan.TermYears != nil && (*p.Loan.TermYears < 0 || *p.Loan.TermYears > 50) {
		return shared.NewDomainError("INVALID_TERM", "Term must be between 0 and 50 years")
	}
	return nil
}
