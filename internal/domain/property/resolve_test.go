package property

import (
	"testing"
	"time"

	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func newTestProperty(t *testing.T, kind Kind) *Property {
	t.Helper()
	addr, err := valueobject.NewPostalAddress("12 Main St", "", "Austin", "tx", "78701", "")
	require.NoError(t, err)
	p, err := NewProperty("user-1", kind, addr)
	require.NoError(t, err)
	return p
}

func TestResolvers(t *testing.T) {
	t.Run("market value prefers estimate then valuation", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		p.Valuation.Valuation = amount("300000")
		assert.True(t, p.MarketValue().Equal(decimal.NewFromInt(300000)))

		p.Valuation.CurrentMarketValueEstimate = amount("350000")
		assert.True(t, p.MarketValue().Equal(decimal.NewFromInt(350000)))
	})

	t.Run("zero falls through to the legacy column", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		p.Valuation.CurrentBalance = amount("0")
		p.Valuation.LoanBalance = amount("120000")
		assert.True(t, p.LoanBalance().Equal(decimal.NewFromInt(120000)))
	})

	t.Run("purchase price falls back to refinance price", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		p.Valuation.RefinancePrice = amount("210000")
		assert.True(t, p.PurchasePrice().Equal(decimal.NewFromInt(210000)))
	})

	t.Run("all absent resolves to zero", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		assert.True(t, p.MarketValue().IsZero())
		assert.True(t, p.LoanBalance().IsZero())
		assert.True(t, p.MonthlyRent().IsZero())
	})
}

func TestMortgageView(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	maturity := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	years := 30

	p := newTestProperty(t, KindPrimary)
	p.Loan.MonthlyPaymentPrincipalInterest = amount("1199.10")
	p.Loan.EscrowPropertyTax = amount("3600")
	p.Loan.InsuranceMonthly = amount("100")
	p.Loan.HOA = amount("50")
	p.Loan.LoanRate = amount("6")
	p.Loan.TermYears = &years
	p.Loan.MaturityDate = &maturity
	p.Loan.YTDPrincipalPaid = amount("500")
	p.Loan.YTDInterestPaid = amount("1000")

	v := p.Mortgage(now)
	assert.True(t, v.PrincipalInterestMonthly.Decimal.Equal(decimal.RequireFromString("1199.10")))
	assert.True(t, v.PropertyTaxesMonthly.Decimal.Equal(decimal.NewFromInt(300)))
	assert.True(t, v.HOAMonthly.Decimal.Equal(decimal.NewFromInt(50)))
	assert.True(t, v.InterestRate.Decimal.Equal(decimal.NewFromInt(6)))
	require.NotNil(t, v.TermMonths)
	assert.Equal(t, 360, *v.TermMonths)
	assert.True(t, v.TotalMonthlyPayment.Equal(decimal.RequireFromString("1649.10")))
	assert.True(t, v.YTDPaid.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 12, v.RemainingTermMonths)
}

func TestRemainingMonths(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, RemainingMonths(nil, now))
	assert.Equal(t, 0, RemainingMonths(&past, now))
}

func TestTaxes(t *testing.T) {
	p := newTestProperty(t, KindPrimary)
	p.Tax.PropertyAddressLegalDescription = "LOT 4 BLK 2"
	p.Tax.PropertyTaxCounty = "Travis"
	p.Tax.PropertyTaxPercentage = amount("2.1")
	p.Tax.Year1 = amount("7000")

	v := p.Taxes()
	assert.Equal(t, "LOT 4 BLK 2", v.LegalDescription)
	assert.Equal(t, "Travis", v.County)
	assert.True(t, v.TaxRatePercent.Decimal.Equal(decimal.RequireFromString("2.1")))
	assert.True(t, v.AnnualTaxAmount.Decimal.Equal(decimal.NewFromInt(7000)))
	assert.False(t, v.TaxesPaidLastYear.Valid)
}

func TestOverview(t *testing.T) {
	t.Run("computes metrics when all inputs are present", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		p.Valuation.PurchasePrice = amount("200000")
		p.Valuation.CurrentMarketValueEstimate = amount("250000")
		p.Valuation.LoanBalance = amount("150000")
		p.Valuation.CurrentBalance = amount("140000")

		v := p.Overview()
		assert.True(t, v.LoanBalance.Decimal.Equal(decimal.NewFromInt(150000)))
		assert.True(t, v.AppreciationAmount.Equal(decimal.NewFromInt(50000)))
		assert.True(t, v.AppreciationPercent.Equal(decimal.NewFromInt(25)))
		assert.True(t, v.EquityAmount.Equal(decimal.NewFromInt(100000)))
		assert.True(t, v.EquityPercent.Equal(decimal.NewFromInt(40)))
		assert.True(t, v.LTVRatio.Equal(decimal.NewFromInt(60)))
	})

	t.Run("metrics stay zero when an input is missing", func(t *testing.T) {
		p := newTestProperty(t, KindPrimary)
		p.Valuation.PurchasePrice = amount("200000")
		p.Valuation.CurrentMarketValueEstimate = amount("250000")

		v := p.Overview()
		assert.True(t, v.AppreciationAmount.IsZero())
		assert.True(t, v.EquityAmount.IsZero())
		assert.True(t, v.LTVRatio.IsZero())
	})
}

func TestCashFlow(t *testing.T) {
	p := newTestProperty(t, KindInvestment)
	p.Income.RentalIncome = amount("2500")
	p.Income.MonthlyOperatingExpenses = amount("500")
	p.Loan.PrincipalInterestMonthly = amount("1200")

	assert.True(t, p.AnnualNOI().Equal(decimal.NewFromInt(24000)))
	assert.True(t, p.MonthlyCashFlow().Equal(decimal.NewFromInt(800)))
}
