// Package portfolio reduces a list of properties into portfolio KPIs and
// per-entity groups. All functions are pure.
package portfolio

import (
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Resolve returns the first present, non-zero value, else zero
func Resolve(values ...decimal.NullDecimal) decimal.Decimal {
	return valueobject.FirstNonZero(values...)
}

// Summary holds the portfolio KPIs
type Summary struct {
	TotalProperties        int
	TotalMarketValue       decimal.Decimal
	TotalLoanBalance       decimal.Decimal
	TotalEquity            decimal.Decimal
	TotalAppreciation      decimal.Decimal
	AvgAppreciationPercent decimal.Decimal
	PortfolioLTV           decimal.Decimal
	MonthlyRent            decimal.Decimal
	AnnualNOI              decimal.Decimal
	MonthlyCashFlow        decimal.Decimal
}

// Summarize computes the portfolio KPIs.
//
// Missing values count as zero everywhere except the appreciation average,
// which only includes properties with a positive purchase price.
func Summarize(props []property.Property) Summary {
	s := Summary{TotalProperties: len(props)}

	var (
		pctSum   decimal.Decimal
		pctCount int64
	)
	for i := range props {
		p := &props[i]
		value := p.MarketValue()
		loan := p.LoanBalance()
		purchase := p.PurchasePrice()

		s.TotalMarketValue = s.TotalMarketValue.Add(value)
		s.TotalLoanBalance = s.TotalLoanBalance.Add(loan)
		s.MonthlyRent = s.MonthlyRent.Add(p.MonthlyRent())
		s.AnnualNOI = s.AnnualNOI.Add(p.AnnualNOI())
		s.MonthlyCashFlow = s.MonthlyCashFlow.Add(p.MonthlyCashFlow())

		if purchase.IsPositive() {
			gain := value.Sub(purchase)
			s.TotalAppreciation = s.TotalAppreciation.Add(gain)
			pctSum = pctSum.Add(gain.Div(purchase).Mul(hundred))
			pctCount++
		}
	}

	s.TotalEquity = s.TotalMarketValue.Sub(s.TotalLoanBalance)
	if pctCount > 0 {
		s.AvgAppreciationPercent = pctSum.Div(decimal.NewFromInt(pctCount))
	}
	if !s.TotalMarketValue.IsZero() {
		s.PortfolioLTV = s.TotalLoanBalance.Div(s.TotalMarketValue).Mul(hundred)
	}
	return s
}
