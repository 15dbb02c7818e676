package portfolio

import (
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func prop(entityID *uuid.UUID, purchase, value, loan int64) property.Property {
	p := property.Property{EntityID: entityID, Kind: property.KindInvestment}
	p.ID = uuid.New()
	if purchase != 0 {
		p.Valuation.PurchasePrice = amount(purchase)
	}
	if value != 0 {
		p.Valuation.CurrentMarketValueEstimate = amount(value)
	}
	if loan != 0 {
		p.Valuation.CurrentBalance = amount(loan)
	}
	return p
}

func TestSummarize(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		s := Summarize(nil)
		assert.Equal(t, 0, s.TotalProperties)
		assert.True(t, s.TotalEquity.IsZero())
		assert.True(t, s.PortfolioLTV.IsZero())
		assert.True(t, s.AvgAppreciationPercent.IsZero())
	})

	t.Run("equity is value minus loan", func(t *testing.T) {
		s := Summarize([]property.Property{prop(nil, 100, 300, 120), prop(nil, 0, 200, 80)})
		assert.True(t, s.TotalMarketValue.Equal(decimal.NewFromInt(500)))
		assert.True(t, s.TotalLoanBalance.Equal(decimal.NewFromInt(200)))
		assert.True(t, s.TotalEquity.Equal(s.TotalMarketValue.Sub(s.TotalLoanBalance)))
		assert.True(t, s.PortfolioLTV.Equal(decimal.NewFromInt(40)))
	})

	t.Run("appreciation average excludes missing purchase price", func(t *testing.T) {
		s := Summarize([]property.Property{prop(nil, 0, 90, 0), prop(nil, 100, 150, 0)})
		assert.True(t, s.AvgAppreciationPercent.Equal(decimal.NewFromInt(50)), s.AvgAppreciationPercent.String())
		assert.True(t, s.TotalAppreciation.Equal(decimal.NewFromInt(50)))
	})

	t.Run("legacy columns are used as fallback", func(t *testing.T) {
		p := property.Property{}
		p.Valuation.Valuation = amount(400)
		p.Valuation.LoanBalance = amount(100)
		p.Valuation.RefinancePrice = amount(200)
		s := Summarize([]property.Property{p})
		assert.True(t, s.TotalMarketValue.Equal(decimal.NewFromInt(400)))
		assert.True(t, s.TotalLoanBalance.Equal(decimal.NewFromInt(100)))
		assert.True(t, s.AvgAppreciationPercent.Equal(decimal.NewFromInt(100)))
	})

	t.Run("cash flow", func(t *testing.T) {
		p := prop(nil, 0, 0, 0)
		p.Income.MonthlyRent = amount(2000)
		p.Income.MonthlyOperatingExpenses = amount(300)
		p.Loan.PrincipalInterestMonthly = amount(1000)
		s := Summarize([]property.Property{p})
		assert.True(t, s.MonthlyRent.Equal(decimal.NewFromInt(2000)))
		assert.True(t, s.AnnualNOI.Equal(decimal.NewFromInt(20400)))
		assert.True(t, s.MonthlyCashFlow.Equal(decimal.NewFromInt(700)))
	})
}

func TestGroupByEntity(t *testing.T) {
	e1, err := ownership.NewLegalEntity("user-1", ownership.Details{Name: "Oak LLC", Type: ownership.EntityTypeLLC})
	require.NoError(t, err)
	e1ID := e1.ID
	orphan := uuid.New()

	props := []property.Property{
		prop(nil, 0, 100, 0),
		prop(&e1ID, 0, 200, 50),
		prop(&orphan, 0, 10, 0),
		prop(&e1ID, 0, 300, 0),
	}

	groups := GroupByEntity(props, []ownership.LegalEntity{*e1})
	require.Len(t, groups, 3)

	assert.Equal(t, "personal", groups[0].Key)
	assert.Equal(t, PersonalGroupName, groups[0].Name)
	assert.True(t, groups[0].TotalValue.Equal(decimal.NewFromInt(100)))

	assert.Equal(t, e1ID.String(), groups[1].Key)
	assert.Equal(t, "Oak LLC", groups[1].Name)
	assert.Equal(t, ownership.EntityTypeLLC, groups[1].EntityType)
	assert.Equal(t, 2, groups[1].PropertyCount)
	assert.True(t, groups[1].TotalValue.Equal(decimal.NewFromInt(500)))
	assert.True(t, groups[1].TotalEquity.Equal(decimal.NewFromInt(450)))
	assert.Equal(t, []uuid.UUID{props[1].ID, props[3].ID}, groups[1].PropertyIDs)

	assert.Equal(t, UnknownEntityName, groups[2].Name)
}

func TestGroupByEntity_PersonalAndEntity(t *testing.T) {
	e1 := uuid.New()
	props := []property.Property{prop(nil, 0, 100, 0), prop(&e1, 0, 200, 0)}

	groups := GroupByEntity(props, nil)
	require.Len(t, groups, 2)
	assert.True(t, groups[0].TotalValue.Equal(decimal.NewFromInt(100)))
	assert.True(t, groups[1].TotalValue.Equal(decimal.NewFromInt(200)))
	assert.True(t, Summarize(props).TotalMarketValue.Equal(decimal.NewFromInt(300)))
}
