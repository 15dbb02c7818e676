package portfolio

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/portfolio"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SummaryResponse holds the portfolio KPIs. Money figures are repeated as
// whole-unit display strings under formatted.
type SummaryResponse struct {
	TotalProperties        int              `json:"total_properties"`
	TotalMarketValue       decimal.Decimal  `json:"total_market_value" swaggertype:"string"`
	TotalLoanBalance       decimal.Decimal  `json:"total_loan_balance" swaggertype:"string"`
	TotalEquity            decimal.Decimal  `json:"total_equity" swaggertype:"string"`
	TotalAppreciation      decimal.Decimal  `json:"total_appreciation" swaggertype:"string"`
	AvgAppreciationPercent decimal.Decimal  `json:"avg_appreciation_percent" swaggertype:"string"`
	PortfolioLTV           decimal.Decimal  `json:"portfolio_ltv" swaggertype:"string"`
	MonthlyRent            decimal.Decimal  `json:"monthly_rent" swaggertype:"string"`
	AnnualNOI              decimal.Decimal  `json:"annual_noi" swaggertype:"string"`
	MonthlyCashFlow        decimal.Decimal  `json:"monthly_cash_flow" swaggertype:"string"`
	Formatted              FormattedSummary `json:"formatted"`
}

// FormattedSummary holds display strings of the summary figures
type FormattedSummary struct {
	TotalMarketValue       string `json:"total_market_value"`
	TotalLoanBalance       string `json:"total_loan_balance"`
	TotalEquity            string `json:"total_equity"`
	TotalAppreciation      string `json:"total_appreciation"`
	AvgAppreciationPercent string `json:"avg_appreciation_percent"`
	PortfolioLTV           string `json:"portfolio_ltv"`
	MonthlyRent            string `json:"monthly_rent"`
	AnnualNOI              string `json:"annual_noi"`
	MonthlyCashFlow        string `json:"monthly_cash_flow"`
}

// GroupResponse is the subtotal of one ownership group
type GroupResponse struct {
	Key                string          `json:"key"`
	Name               string          `json:"name"`
	EntityID           *uuid.UUID      `json:"entity_id,omitempty"`
	EntityType         string          `json:"entity_type,omitempty"`
	PropertyCount      int             `json:"property_count"`
	TotalValue         decimal.Decimal `json:"total_value" swaggertype:"string"`
	TotalLoan          decimal.Decimal `json:"total_loan" swaggertype:"string"`
	TotalEquity        decimal.Decimal `json:"total_equity" swaggertype:"string"`
	TotalValueDisplay  string          `json:"total_value_display"`
	TotalEquityDisplay string          `json:"total_equity_display"`
	PropertyIDs        []uuid.UUID     `json:"property_ids"`
	Properties         []PropertyLine  `json:"properties"`
}

// PropertyLine is one property row inside a group
type PropertyLine struct {
	ID           uuid.UUID       `json:"id"`
	Nickname     string          `json:"nickname"`
	PropertyType string          `json:"property_type"`
	Address      string          `json:"address"`
	MarketValue  decimal.Decimal `json:"market_value" swaggertype:"string"`
	LoanBalance  decimal.Decimal `json:"loan_balance" swaggertype:"string"`
	Equity       decimal.Decimal `json:"equity" swaggertype:"string"`
	MonthlyRent  decimal.Decimal `json:"monthly_rent" swaggertype:"string"`
}

// PortfolioResponse is the body of GET /portfolio/summary
type PortfolioResponse struct {
	Currency string          `json:"currency"`
	Summary  SummaryResponse `json:"summary"`
	Groups   []GroupResponse `json:"groups"`
}

// formatter renders money in one currency
type formatter struct {
	currency valueobject.Currency
}

func (f formatter) money(d decimal.Decimal) string {
	m, err := valueobject.NewMoney(d, f.currency)
	if err != nil {
		m = valueobject.USDAmount(d)
	}
	return m.DisplayWhole()
}

func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}

func (f formatter) summary(s portfolio.Summary) SummaryResponse {
	return SummaryResponse{
		TotalProperties:        s.TotalProperties,
		TotalMarketValue:       s.TotalMarketValue,
		TotalLoanBalance:       s.TotalLoanBalance,
		TotalEquity:            s.TotalEquity,
		TotalAppreciation:      s.TotalAppreciation,
		AvgAppreciationPercent: s.AvgAppreciationPercent.Round(2),
		PortfolioLTV:           s.PortfolioLTV.Round(2),
		MonthlyRent:            s.MonthlyRent,
		AnnualNOI:              s.AnnualNOI,
		MonthlyCashFlow:        s.MonthlyCashFlow,
		Formatted: FormattedSummary{
			TotalMarketValue:       f.money(s.TotalMarketValue),
			TotalLoanBalance:       f.money(s.TotalLoanBalance),
			TotalEquity:            f.money(s.TotalEquity),
			TotalAppreciation:      f.money(s.TotalAppreciation),
			AvgAppreciationPercent: percent(s.AvgAppreciationPercent),
			PortfolioLTV:           percent(s.PortfolioLTV),
			MonthlyRent:            f.money(s.MonthlyRent),
			AnnualNOI:              f.money(s.AnnualNOI),
			MonthlyCashFlow:        f.money(s.MonthlyCashFlow),
		},
	}
}

func (f formatter) group(g portfolio.Group, byID map[uuid.UUID]*property.Property) GroupResponse {
	resp := GroupResponse{
		Key:                g.Key,
		Name:               g.Name,
		EntityID:           g.EntityID,
		EntityType:         string(g.EntityType),
		PropertyCount:      g.PropertyCount,
		TotalValue:         g.TotalValue,
		TotalLoan:          g.TotalLoan,
		TotalEquity:        g.TotalEquity,
		TotalValueDisplay:  f.money(g.TotalValue),
		TotalEquityDisplay: f.money(g.TotalEquity),
		PropertyIDs:        g.PropertyIDs,
		Properties:         make([]PropertyLine, 0, len(g.PropertyIDs)),
	}
	for _, id := range g.PropertyIDs {
		p, ok := byID[id]
		if !ok {
			continue
		}
		value := p.MarketValue()
		loan := p.LoanBalance()
		resp.Properties = append(resp.Properties, PropertyLine{
			ID:           p.ID,
			Nickname:     p.Nickname,
			PropertyType: string(p.Kind),
			Address:      p.Address.String(),
			MarketValue:  value,
			LoanBalance:  loan,
			Equity:       value.Sub(loan),
			MonthlyRent:  p.MonthlyRent(),
		})
	}
	return resp
}
