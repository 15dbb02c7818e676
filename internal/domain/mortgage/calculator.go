// Package mortgage implements the amortization calculator: monthly payment,
// PITI, full schedules and balance projections. Rates are annual fractions
// (0.06 for 6%).
package mortgage

import (
	"crypto/sha256"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultTaxBracket is the marginal rate used for the interest deduction
var DefaultTaxBracket = decimal.RequireFromString("0.15")

var twelve = decimal.NewFromInt(12)

// working precision of the running balance
const balancePlaces int32 = 10

// ErrMissingParameters is returned when a required input is absent or zero
var ErrMissingParameters = shared.NewDomainError("INVALID_INPUT", "Missing required parameters for mortgage calculation")

// MonthlyPayment is the principal and interest payment
// M = P * r(1+r)^n / ((1+r)^n - 1), rounded to cents.
func MonthlyPayment(principal, annualRate decimal.Decimal, termYears int) (decimal.Decimal, error) {
	if !principal.IsPositive() || !annualRate.IsPositive() || termYears <= 0 {
		return decimal.Zero, ErrMissingParameters
	}
	p := principal.InexactFloat64()
	r := annualRate.InexactFloat64() / 12
	n := float64(termYears * 12)

	factor := math.Pow(1+r, n)
	payment := p * (r * factor) / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2), nil
}

// PITI adds monthly taxes, insurance and PMI to the P&I payment
func PITI(monthlyPI, yearlyTaxes, yearlyHOI, monthlyPMI decimal.Decimal) decimal.Decimal {
	return monthlyPI.
		Add(yearlyTaxes.Div(twelve)).
		Add(yearlyHOI.Div(twelve)).
		Add(monthlyPMI).
		Round(2)
}

// Params are the inputs of a schedule
type Params struct {
	LoanAmount          decimal.Decimal
	AnnualRate          decimal.Decimal
	TermYears           int
	FirstPaymentDate    time.Time
	HomeValue           decimal.NullDecimal
	TaxBracket          decimal.NullDecimal
	ExtraPayment        decimal.Decimal
	ExtraPaymentStartAt int
}

// Payment is one row of an amortization schedule
type Payment struct {
	PaymentNumber         int
	PaymentDate           time.Time
	PaymentYear           int
	InterestRate          decimal.Decimal
	InterestDue           decimal.Decimal
	PaymentDue            decimal.Decimal
	ExtraPayment          decimal.Decimal
	PrincipalPaid         decimal.Decimal
	Balance               decimal.Decimal
	LTV                   decimal.NullDecimal
	TaxReturned           decimal.Decimal
	CumulativeTaxReturned decimal.Decimal
}

// Summary aggregates a schedule
type Summary struct {
	LoanAmount             decimal.Decimal
	InterestRate           decimal.Decimal
	TermYears              int
	FirstPaymentDate       time.Time
	MonthlyPaymentPI       decimal.Decimal
	HomeValue              decimal.NullDecimal
	TotalPayments          decimal.Decimal
	TotalInterest          decimal.Decimal
	TotalPrincipal         decimal.Decimal
	TaxBracket             decimal.Decimal
	TotalTaxReturned       decimal.Decimal
	EffectiveInterestRate  decimal.Decimal
	ActualNumberOfPayments int
	LastPaymentDate        time.Time
}

// Schedule builds the amortization schedule. It stops early once the
// balance reaches zero, which happens with extra payments.
func Schedule(params Params) ([]Payment, Summary, error) {
	if !params.LoanAmount.IsPositive() || !params.AnnualRate.IsPositive() || params.TermYears <= 0 || params.FirstPaymentDate.IsZero() {
		return nil, Summary{}, ErrMissingParameters
	}
	monthly, err := MonthlyPayment(params.LoanAmount, params.AnnualRate, params.TermYears)
	if err != nil {
		return nil, Summary{}, err
	}

	bracket := DefaultTaxBracket
	if params.TaxBracket.Valid && !params.TaxBracket.Decimal.IsZero() {
		bracket = params.TaxBracket.Decimal
	}
	startExtra := params.ExtraPaymentStartAt
	if startExtra < 1 {
		startExtra = 1
	}
	hasHomeValue := params.HomeValue.Valid && params.HomeValue.Decimal.IsPositive()

	monthlyRate := params.AnnualRate.Div(twelve)
	n := params.TermYears * 12
	balance := params.LoanAmount

	var (
		cumulativeTax  decimal.Decimal
		totalInterest  decimal.Decimal
		totalPrincipal decimal.Decimal
	)
	schedule := make([]Payment, 0, n)
	for num := 1; num <= n; num++ {
		if !balance.IsPositive() {
			break
		}
		interest := balance.Mul(monthlyRate).Round(balancePlaces)
		extra := decimal.Zero
		if num >= startExtra {
			extra = params.ExtraPayment
		}
		principal := monthly.Sub(interest).Add(extra)
		if principal.GreaterThan(balance) {
			principal = balance
		}
		newBalance := balance.Sub(principal)
		tax := interest.Mul(bracket)

		cumulativeTax = cumulativeTax.Add(tax)
		totalInterest = totalInterest.Add(interest)
		totalPrincipal = totalPrincipal.Add(principal)

		row := Payment{
			PaymentNumber:         num,
			PaymentDate:           params.FirstPaymentDate.AddDate(0, num-1, 0),
			PaymentYear:           (num + 11) / 12,
			InterestRate:          params.AnnualRate,
			InterestDue:           interest.Round(2),
			PaymentDue:            monthly,
			ExtraPayment:          extra.Round(2),
			PrincipalPaid:         principal.Round(2),
			Balance:               newBalance.Round(2),
			TaxReturned:           tax.Round(2),
			CumulativeTaxReturned: cumulativeTax.Round(2),
		}
		if hasHomeValue && !newBalance.IsZero() {
			row.LTV = decimal.NewNullDecimal(newBalance.Div(params.HomeValue.Decimal).Round(6))
		}
		schedule = append(schedule, row)
		balance = newBalance
	}

	summary := Summary{
		LoanAmount:             params.LoanAmount,
		InterestRate:           params.AnnualRate,
		TermYears:              params.TermYears,
		FirstPaymentDate:       params.FirstPaymentDate,
		MonthlyPaymentPI:       monthly,
		HomeValue:              params.HomeValue,
		TotalPayments:          totalInterest.Add(totalPrincipal).Round(2),
		TotalInterest:          totalInterest.Round(2),
		TotalPrincipal:         totalPrincipal.Round(2),
		TaxBracket:             bracket,
		TotalTaxReturned:       cumulativeTax.Round(2),
		EffectiveInterestRate:  params.AnnualRate.Mul(decimal.NewFromInt(1).Sub(bracket)),
		ActualNumberOfPayments: len(schedule),
	}
	if len(schedule) > 0 {
		summary.LastPaymentDate = schedule[len(schedule)-1].PaymentDate
	}
	return schedule, summary, nil
}

// Projection is the loan position after a number of years
type Projection struct {
	Balance       decimal.Decimal
	InterestPaid  decimal.Decimal
	PrincipalPaid decimal.Decimal
}

// BalanceAtYear projects the balance after atYear years of regular payments
func BalanceAtYear(principal, annualRate decimal.Decimal, termYears, atYear int) (Projection, error) {
	monthly, err := MonthlyPayment(principal, annualRate, termYears)
	if err != nil {
		return Projection{}, err
	}
	if atYear < 0 {
		return Projection{}, shared.NewDomainError("INVALID_INPUT", "Year cannot be negative")
	}
	monthlyRate := annualRate.Div(twelve)
	balance := principal
	var totalInterest, totalPrincipal decimal.Decimal
	for i := 1; i <= atYear*12 && i <= termYears*12; i++ {
		interest := balance.Mul(monthlyRate).Round(balancePlaces)
		paid := monthly.Sub(interest)
		balance = balance.Sub(paid)
		totalInterest = totalInterest.Add(interest)
		totalPrincipal = totalPrincipal.Add(paid)
	}
	return Projection{
		Balance:       balance.Round(2),
		InterestPaid:  totalInterest.Round(2),
		PrincipalPaid: totalPrincipal.Round(2),
	}, nil
}

// YearSummary totals the payments of one loan year
type YearSummary struct {
	Year           int
	Payments       int
	TotalInterest  decimal.Decimal
	TotalPrincipal decimal.Decimal
	TotalPayment   decimal.Decimal
	EndingBalance  decimal.Decimal
	TaxReturned    decimal.Decimal
}

// YearlySummary groups a schedule by payment year in year order
func YearlySummary(schedule []Payment) []YearSummary {
	var years []YearSummary
	index := make(map[int]int)
	for _, p := range schedule {
		pos, ok := index[p.PaymentYear]
		if !ok {
			years = append(years, YearSummary{Year: p.PaymentYear})
			pos = len(years) - 1
			index[p.PaymentYear] = pos
		}
		y := &years[pos]
		y.Payments++
		y.TotalInterest = y.TotalInterest.Add(p.InterestDue)
		y.TotalPrincipal = y.TotalPrincipal.Add(p.PrincipalPaid)
		y.TotalPayment = y.TotalPayment.Add(p.PaymentDue)
		y.EndingBalance = p.Balance
		y.TaxReturned = y.TaxReturned.Add(p.TaxReturned)
	}
	return years
}

// PaymentID derives a stable id from the property and payment number so that
// regenerating a schedule yields the same ids.
func PaymentID(propertyID uuid.UUID, paymentNumber int) uuid.UUID {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s-%d", propertyID, paymentNumber)))
	id, _ := uuid.FromBytes(sum[:16])
	return id
}
