package property

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const owner = "user-1"

func newTestService(t *testing.T) (*PropertyService, *testRepos) {
	t.Helper()
	repos := newTestRepos()
	svc := NewPropertyService(repos.repositories(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) }
	return svc, repos
}

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func createProperty(t *testing.T, svc *PropertyService) *PropertyResponse {
	t.Helper()
	req := decode[PropertyRequest](t, `{
		"property_type": "investment",
		"nickname": "Maple Duplex",
		"address": {"line1": "12 Maple St", "city": "Austin", "state_code": "TX", "postal_code": "78701"},
		"purchase_price": "$300,000",
		"current_market_value_estimate": 400000,
		"loan_balance": "200000",
		"monthly_rent": 2500
	}`)
	resp, err := svc.Create(context.Background(), owner, req)
	require.NoError(t, err)
	return resp
}

func TestPropertyService_CreateAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	created := createProperty(t, svc)

	got, err := svc.Get(context.Background(), owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "investment", got.PropertyType)
	assert.Equal(t, "Maple Duplex", got.Nickname)
	assert.Equal(t, "US", got.Address.CountryCode)
	assert.True(t, got.PurchasePrice.Decimal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, got.Equity.Decimal.Equal(decimal.NewFromInt(200000)))
	assert.Nil(t, got.EntityID)

	_, err = svc.Get(context.Background(), "user-2", created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPropertyService_Update(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	created := createProperty(t, svc)

	t.Run("absent fields are unchanged", func(t *testing.T) {
		resp, err := svc.Update(ctx, owner, created.ID, decode[PropertyRequest](t, `{"monthly_rent": "2,750"}`))
		require.NoError(t, err)
		assert.Equal(t, "Maple Duplex", resp.Nickname)
		assert.True(t, resp.MonthlyRent.Decimal.Equal(decimal.NewFromInt(2750)))
		assert.True(t, resp.MarketValue.Decimal.Equal(decimal.NewFromInt(400000)))
	})

	t.Run("unknown entity", func(t *testing.T) {
		_, err := svc.Update(ctx, owner, created.ID, decode[PropertyRequest](t, `{"entity_id": "`+uuid.NewString()+`"}`))
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_ENTITY", de.Code)
	})

	t.Run("assign and release entity", func(t *testing.T) {
		entity, err := ownership.NewLegalEntity(owner, ownership.Details{Name: "Oak LLC", Type: ownership.EntityTypeLLC})
		require.NoError(t, err)
		require.NoError(t, repos.entities.Save(ctx, entity))

		resp, err := svc.Update(ctx, owner, created.ID, PropertyRequest{EntityID: &entity.ID})
		require.NoError(t, err)
		require.NotNil(t, resp.EntityID)
		assert.Equal(t, entity.ID, *resp.EntityID)

		nilID := uuid.Nil
		resp, err = svc.Update(ctx, owner, created.ID, PropertyRequest{EntityID: &nilID})
		require.NoError(t, err)
		assert.Nil(t, resp.EntityID)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, owner, created.ID, decode[PropertyRequest](t, `{"loan_balance": -5}`))
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_AMOUNT", de.Code)
	})
}

func TestPropertyService_List(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	createProperty(t, svc)
	createProperty(t, svc)

	page, err := svc.List(ctx, owner, ListPropertiesRequest{EntityID: "personal", PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "personal", repos.properties.lastFilter.Filters["entity_id"])

	_, err = svc.List(ctx, owner, ListPropertiesRequest{EntityID: "not-a-uuid"})
	assert.Error(t, err)
}

func TestPropertyService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created := createProperty(t, svc)

	assert.ErrorIs(t, svc.Delete(ctx, "user-2", created.ID), shared.ErrNotFound)
	require.NoError(t, svc.Delete(ctx, owner, created.ID))
	_, err := svc.Get(ctx, owner, created.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestPropertyService_Mortgage(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	created := createProperty(t, svc)

	req := decode[MortgageRequest](t, `{
		"lender_name": "First Bank",
		"interest_rate": "6.5%",
		"term_months": 360,
		"maturity_date": "2053-01-01",
		"principal_interest_monthly": 1500,
		"property_taxes_monthly": 400,
		"insurance_monthly": 100,
		"ytd_principal_paid": 1000,
		"ytd_interest_paid": 5000
	}`)
	resp, err := svc.UpdateMortgage(ctx, owner, created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "First Bank", resp.LenderName)
	assert.True(t, resp.TotalMonthlyPayment.Decimal.Equal(decimal.NewFromInt(2000)))
	assert.True(t, resp.YTDPaid.Decimal.Equal(decimal.NewFromInt(6000)))
	assert.Equal(t, 331, resp.RemainingTermMonths)

	t.Run("null clears the current column", func(t *testing.T) {
		resp, err := svc.UpdateMortgage(ctx, owner, created.ID, decode[MortgageRequest](t, `{"lender_name": "First Bank"}`))
		require.NoError(t, err)
		assert.False(t, resp.PrincipalInterestMonthly.Valid)
		stored := repos.properties.items[created.ID]
		assert.False(t, stored.Loan.InterestRate.Valid)
	})

	t.Run("rate out of range", func(t *testing.T) {
		_, err := svc.UpdateMortgage(ctx, owner, created.ID, decode[MortgageRequest](t, `{"interest_rate": 150}`))
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_RATE", de.Code)
	})

	t.Run("maturity before first payment", func(t *testing.T) {
		_, err := svc.UpdateMortgage(ctx, owner, created.ID, decode[MortgageRequest](t,
			`{"first_payment_date": "2030-01-01", "maturity_date": "2020-01-01"}`))
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "INVALID_DATES", de.Code)
	})
}

func TestPropertyService_Taxes(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	created := createProperty(t, svc)

	stored := repos.properties.items[created.ID]
	stored.Tax.PropertyTaxCounty = "Travis"
	stored.Tax.Year1 = decimal.NewNullDecimal(decimal.NewFromInt(7200))

	got, err := svc.GetTaxes(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travis", got.County)
	assert.True(t, got.AnnualTaxAmount.Decimal.Equal(decimal.NewFromInt(7200)))

	updated, err := svc.UpdateTaxes(ctx, owner, created.ID, decode[TaxRequest](t, `{"county": "Hays", "annual_tax_amount": "8,000"}`))
	require.NoError(t, err)
	assert.Equal(t, "Hays", updated.County)
	assert.True(t, updated.AnnualTaxAmount.Decimal.Equal(decimal.NewFromInt(8000)))

	_, err = svc.UpdateTaxes(ctx, owner, created.ID, decode[TaxRequest](t, `{"assessed_value": -1}`))
	assert.Error(t, err)
}

func TestPropertyService_Overview(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	created := createProperty(t, svc)

	resp, err := svc.Overview(ctx, owner, created.ID)
	require.NoError(t, err)
	assert.True(t, resp.EquityAmount.Decimal.Equal(decimal.NewFromInt(200000)))
	assert.True(t, resp.LTVRatio.Decimal.Equal(decimal.NewFromInt(50)))
	assert.NotNil(t, resp.Mortgage)
	assert.Nil(t, resp.Insurance)

	_, err = svc.UpdateInsurance(ctx, owner, created.ID, decode[InsuranceRequest](t,
		`{"insurance_company": "Acme Mutual", "expiration_date": "2025-07-01"}`))
	require.NoError(t, err)

	resp, err = svc.Overview(ctx, owner, created.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Insurance)
	assert.Equal(t, "Acme Mutual", resp.Insurance.InsuranceCompany)
	assert.True(t, resp.Insurance.ExpiringSoon)
}

// roundCents mimics DECIMAL(14,2) columns
func roundCents(d *decimal.NullDecimal) {
	if d.Valid {
		d.Decimal = d.Decimal.Round(2)
	}
}

func TestPropertyService_EditorsReturnStoredRow(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestService(t)
	created := createProperty(t, svc)

	repos.properties.onSave = func(p *property.Property) {
		roundCents(&p.Valuation.PurchasePrice)
		roundCents(&p.Loan.PrincipalInterestMonthly)
		roundCents(&p.Tax.AssessedValue)
	}
	repos.policies.onSave = func(p *property.InsurancePolicy) { roundCents(&p.InitialPremium) }
	repos.utilities.onSave = func(u *property.Utility) { roundCents(&u.MonthlyAverageCost) }

	cents := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	updated, err := svc.Update(ctx, owner, created.ID, decode[PropertyRequest](t, `{"purchase_price": "123.456"}`))
	require.NoError(t, err)
	assert.True(t, updated.PurchasePrice.Decimal.Equal(cents("123.46")), updated.PurchasePrice.Decimal.String())

	mortgage, err := svc.UpdateMortgage(ctx, owner, created.ID, decode[MortgageRequest](t, `{"principal_interest_monthly": "1500.129"}`))
	require.NoError(t, err)
	assert.True(t, mortgage.PrincipalInterestMonthly.Decimal.Equal(cents("1500.13")))

	taxes, err := svc.UpdateTaxes(ctx, owner, created.ID, decode[TaxRequest](t, `{"assessed_value": "250000.004"}`))
	require.NoError(t, err)
	assert.True(t, taxes.AssessedValue.Decimal.Equal(cents("250000")))

	policy, err := svc.UpdateInsurance(ctx, owner, created.ID, decode[InsuranceRequest](t, `{"insurance_company": "Acme", "annual_premium": "1200.999"}`))
	require.NoError(t, err)
	assert.True(t, policy.AnnualPremium.Decimal.Equal(cents("1201")))

	utility, err := svc.CreateUtility(ctx, owner, created.ID, decode[UtilityRequest](t, `{"utility_type": "water", "monthly_average_cost": "45.555"}`))
	require.NoError(t, err)
	assert.True(t, utility.MonthlyAverageCost.Decimal.Equal(cents("45.56")))

	utility, err = svc.UpdateUtility(ctx, owner, created.ID, utility.ID, decode[UtilityRequest](t, `{"utility_type": "water", "monthly_average_cost": "60.001"}`))
	require.NoError(t, err)
	assert.True(t, utility.MonthlyAverageCost.Decimal.Equal(cents("60")))
}
