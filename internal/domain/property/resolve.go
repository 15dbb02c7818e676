package property

import (
	"time"

	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

var (
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// MarketValue resolves current_market_value_estimate, then valuation
func (p *Property) MarketValue() decimal.Decimal {
	return valueobject.FirstNonZero(p.Valuation.CurrentMarketValueEstimate, p.Valuation.Valuation)
}

// LoanBalance resolves current_balance, then loan_balance
func (p *Property) LoanBalance() decimal.Decimal {
	return valueobject.FirstNonZero(p.Valuation.CurrentBalance, p.Valuation.LoanBalance)
}

// PurchasePrice resolves purchase_price, then refinance_price
func (p *Property) PurchasePrice() decimal.Decimal {
	return valueobject.FirstNonZero(p.Valuation.PurchasePrice, p.Valuation.RefinancePrice)
}

// MonthlyRent resolves monthly_rent, then rental_income
func (p *Property) MonthlyRent() decimal.Decimal {
	return valueobject.FirstNonZero(p.Income.MonthlyRent, p.Income.RentalIncome)
}

// MortgageView is the mortgage editor's read model
type MortgageView struct {
	LenderName               string
	ServicerName             string
	LoanNumber               string
	ClosingDate              *time.Time
	FirstPaymentDate         *time.Time
	MaturityDate             *time.Time
	LoanAmount               decimal.NullDecimal
	InterestRate             decimal.NullDecimal
	TermMonths               *int
	PrincipalInterestMonthly decimal.NullDecimal
	PropertyTaxesMonthly     decimal.NullDecimal
	InsuranceMonthly         decimal.NullDecimal
	HOAMonthly               decimal.NullDecimal
	PMIMonthly               decimal.NullDecimal
	OtherMonthly             decimal.NullDecimal
	YTDPrincipalPaid         decimal.NullDecimal
	YTDInterestPaid          decimal.NullDecimal
	CurrentBalance           decimal.NullDecimal

	TotalMonthlyPayment decimal.Decimal
	YTDPaid             decimal.Decimal
	RemainingTermMonths int
}

// Mortgage builds the mortgage read model. Escrowed yearly amounts are
// spread over twelve months when the monthly column is empty.
func (p *Property) Mortgage(now time.Time) MortgageView {
	l := p.Loan
	v := MortgageView{
		LenderName:               l.LenderName,
		ServicerName:             l.ServicerName,
		LoanNumber:               l.LoanNumber,
		ClosingDate:              l.ClosingDate,
		FirstPaymentDate:         l.FirstPaymentDate,
		MaturityDate:             l.MaturityDate,
		LoanAmount:               p.Valuation.LoanAmount,
		InterestRate:             valueobject.FirstPresent(l.InterestRate, l.LoanRate),
		TermMonths:               p.termMonths(),
		PrincipalInterestMonthly: valueobject.FirstPresent(l.PrincipalInterestMonthly, l.MonthlyPaymentPrincipalInterest),
		PropertyTaxesMonthly:     valueobject.FirstPresent(l.PropertyTaxesMonthly, valueobject.Divided(l.EscrowPropertyTax, 12)),
		InsuranceMonthly:         valueobject.FirstPresent(l.InsuranceMonthly, valueobject.Divided(l.EscrowHomeOwnerInsurance, 12)),
		HOAMonthly:               valueobject.FirstPresent(l.HOAMonthly, l.HOA),
		PMIMonthly:               l.PMIMonthly,
		OtherMonthly:             l.OtherMonthly,
		YTDPrincipalPaid:         l.YTDPrincipalPaid,
		YTDInterestPaid:          l.YTDInterestPaid,
		CurrentBalance:           p.Valuation.CurrentBalance,
	}

	v.TotalMonthlyPayment = valueobject.FirstNonZero(v.PrincipalInterestMonthly).
		Add(valueobject.FirstNonZero(v.PropertyTaxesMonthly)).
		Add(valueobject.FirstNonZero(v.InsuranceMonthly)).
		Add(valueobject.FirstNonZero(v.HOAMonthly)).
		Add(valueobject.FirstNonZero(v.PMIMonthly)).
		Add(valueobject.FirstNonZero(v.OtherMonthly))
	v.YTDPaid = valueobject.FirstNonZero(v.YTDPrincipalPaid).Add(valueobject.FirstNonZero(v.YTDInterestPaid))
	v.RemainingTermMonths = RemainingMonths(l.MaturityDate, now)
	return v
}

func (p *Property) termMonths() *int {
	if p.Loan.TermMonths != nil && *p.Loan.TermMonths != 0 {
		m := *p.Loan.TermMonths
		return &m
	}
	if p.Loan.TermYears != nil && *p.Loan.TermYears != 0 {
		m := *p.Loan.TermYears * 12
		return &m
	}
	return nil
}

// RemainingMonths counts whole calendar months from now until maturity, never negative
func RemainingMonths(maturity *time.Time, now time.Time) int {
	if maturity == nil {
		return 0
	}
	months := (maturity.Year()-now.Year())*12 + int(maturity.Month()) - int(now.Month())
	if months < 0 {
		return 0
	}
	return months
}

// TaxView is the tax editor's read model
type TaxView struct {
	LegalDescription  string
	County            string
	TaxAuthority      string
	AccountNumber     string
	AssessedValue     decimal.NullDecimal
	TaxableValue      decimal.NullDecimal
	TaxRatePercent    decimal.NullDecimal
	TaxesPaidLastYear decimal.NullDecimal
	AnnualTaxAmount   decimal.NullDecimal
}

// Taxes builds the tax read model
func (p *Property) Taxes() TaxView {
	t := p.Tax
	return TaxView{
		LegalDescription:  valueobject.FirstNonEmpty(t.LegalDescription, t.PropertyAddressLegalDescription),
		County:            valueobject.FirstNonEmpty(t.County, t.PropertyTaxCounty),
		TaxAuthority:      t.TaxAuthority,
		AccountNumber:     t.AccountNumber,
		AssessedValue:     t.AssessedValue,
		TaxableValue:      t.TaxableValue,
		TaxRatePercent:    valueobject.FirstPresent(t.TaxRatePercent, t.PropertyTaxPercentage),
		TaxesPaidLastYear: valueobject.FirstPresent(t.TaxesPaidLastYear, t.TaxesPaidYTD),
		AnnualTaxAmount:   valueobject.FirstPresent(t.AnnualTaxAmount, t.Year1),
	}
}

// OverviewView is the property overview read model with derived metrics
type OverviewView struct {
	PurchaseOrRefinancePrice   decimal.NullDecimal
	CurrentMarketValueEstimate decimal.NullDecimal
	LoanBalance                decimal.NullDecimal

	AppreciationAmount  decimal.Decimal
	AppreciationPercent decimal.Decimal
	EquityAmount        decimal.Decimal
	EquityPercent       decimal.Decimal
	LTVRatio            decimal.Decimal
}

// Overview builds the overview read model. The overview screen prefers
// loan_balance over current_balance, the reverse of the portfolio order.
// All metrics are zero unless price, value and balance are all present.
func (p *Property) Overview() OverviewView {
	v := OverviewView{
		PurchaseOrRefinancePrice:   valueobject.FirstPresent(p.Valuation.PurchasePrice, p.Valuation.RefinancePrice),
		CurrentMarketValueEstimate: valueobject.FirstPresent(p.Valuation.CurrentMarketValueEstimate),
		LoanBalance:                valueobject.FirstPresent(p.Valuation.LoanBalance, p.Valuation.CurrentBalance),
	}
	if !v.PurchaseOrRefinancePrice.Valid || !v.CurrentMarketValueEstimate.Valid || !v.LoanBalance.Valid {
		return v
	}

	price := v.PurchaseOrRefinancePrice.Decimal
	value := v.CurrentMarketValueEstimate.Decimal
	loan := v.LoanBalance.Decimal

	v.AppreciationAmount = value.Sub(price)
	if price.IsPositive() {
		v.AppreciationPercent = v.AppreciationAmount.Div(price).Mul(hundred)
	}
	v.EquityAmount = value.Sub(loan)
	if value.IsPositive() {
		v.EquityPercent = v.EquityAmount.Div(value).Mul(hundred)
		v.LTVRatio = loan.Div(value).Mul(hundred)
	}
	return v
}

// AnnualNOI is net operating income: rent minus operating expenses, annualised
func (p *Property) AnnualNOI() decimal.Decimal {
	opex := valueobject.FirstNonZero(p.Income.MonthlyOperatingExpenses)
	return p.MonthlyRent().Sub(opex).Mul(twelve)
}

// MonthlyCashFlow is rent minus operating expenses minus principal and interest
func (p *Property) MonthlyCashFlow() decimal.Decimal {
	opex := valueobject.FirstNonZero(p.Income.MonthlyOperatingExpenses)
	debt := valueobject.FirstNonZero(p.Loan.PrincipalInterestMonthly, p.Loan.MonthlyPaymentPrincipalInterest)
	return p.MonthlyRent().Sub(opex).Sub(debt)
}
