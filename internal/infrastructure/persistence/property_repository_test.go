package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func nullAmount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func newStoredProperty(t *testing.T, ownerID string, kind property.Kind) *property.Property {
	addr, err := valueobject.NewPostalAddress("12 Oak Ave", "", "Austin", "TX", "78701", "")
	require.NoError(t, err)
	p, err := property.NewProperty(ownerID, kind, addr)
	require.NoError(t, err)
	return p
}

func TestGormPropertyRepository_FindByIDForOwner(t *testing.T) {
	t.Run("scopes the lookup to the owner", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormPropertyRepository(gormDB)

		id := uuid.New()
		rows := sqlmock.NewRows([]string{"id", "owner_id", "property_type", "address", "purchase_price", "loan_balance"}).
			AddRow(id.String(), "user-1", "investment", "12 Oak Ave", "250000.00", nil)

		mock.ExpectQuery(`SELECT \* FROM "properties" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("user-1", id, 1).
			WillReturnRows(rows)

		p, err := repo.FindByIDForOwner(context.Background(), "user-1", id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID)
		assert.Equal(t, property.KindInvestment, p.Kind)
		assert.True(t, p.Valuation.PurchasePrice.Valid)
		assert.False(t, p.Valuation.LoanBalance.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps missing rows to not found", func(t *testing.T) {
		gormDB, mock, mockDB := newMockGorm(t)
		defer mockDB.Close()
		repo := NewGormPropertyRepository(gormDB)

		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "properties" WHERE owner_id = \$1 AND id = \$2 ORDER BY .* LIMIT .*`).
			WithArgs("user-1", id, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		p, err := repo.FindByIDForOwner(context.Background(), "user-1", id)
		assert.Nil(t, p)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormPropertyRepository_FindAllForOwner_Pagination(t *testing.T) {
	gormDB, mock, mockDB := newMockGorm(t)
	defer mockDB.Close()
	repo := NewGormPropertyRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "properties" WHERE owner_id = \$1 AND property_type = \$2 ORDER BY nickname DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("user-1", "investment", 10, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id"}))

	filter := shared.Filter{
		Page:     2,
		PageSize: 10,
		OrderBy:  "nickname",
		OrderDir: "desc",
		Filters:  map[string]any{"property_type": "investment"},
	}
	list, err := repo.FindAllForOwner(context.Background(), "user-1", filter)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormPropertyRepository_RoundTrip(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormPropertyRepository(db)
	ctx := context.Background()

	p := newStoredProperty(t, "user-1", property.KindInvestment)
	p.Nickname = "Duplex"
	p.Valuation.PurchasePrice = nullAmount("300000")
	p.Valuation.CurrentMarketValueEstimate = nullAmount("350000")
	p.Loan.LoanRate = nullAmount("0.065")
	years := 30
	p.Loan.TermYears = &years
	closing := time.Date(2021, 5, 14, 0, 0, 0, 0, time.UTC)
	p.Loan.ClosingDate = &closing
	entityID := uuid.New()
	p.AssignEntity(&entityID)
	require.NoError(t, repo.Save(ctx, p))

	other := newStoredProperty(t, "user-2", property.KindPrimary)
	require.NoError(t, repo.Save(ctx, other))

	found, err := repo.FindByIDForOwner(ctx, "user-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Duplex", found.Nickname)
	assert.True(t, found.Valuation.PurchasePrice.Decimal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, found.Loan.LoanRate.Decimal.Equal(decimal.RequireFromString("0.065")))
	assert.False(t, found.Valuation.LoanBalance.Valid)
	require.NotNil(t, found.Loan.TermYears)
	assert.Equal(t, 30, *found.Loan.TermYears)
	require.NotNil(t, found.EntityID)
	assert.Equal(t, entityID, *found.EntityID)

	_, err = repo.FindByIDForOwner(ctx, "user-2", p.ID)
	assert.ErrorIs(t, err, shared.ErrNotFound, "other owners cannot read the property")

	n, err := repo.CountByEntity(ctx, "user-1", entityID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountForOwner(ctx, "user-1", shared.Filter{Filters: map[string]any{"entity_id": "personal"}})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.ErrorIs(t, repo.DeleteForOwner(ctx, "user-2", p.ID), shared.ErrNotFound)
	require.NoError(t, repo.DeleteForOwner(ctx, "user-1", p.ID))
}

func TestGormInsurancePolicyRepository_SinglePrimary(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormInsurancePolicyRepository(db)
	ctx := context.Background()
	propertyID := uuid.New()

	newPolicy := func(company string) *property.InsurancePolicy {
		p, err := property.NewInsurancePolicy(propertyID, property.PolicyDetails{
			InsuranceCompany: company,
			AnnualPremium:    nullAmount("1200"),
		})
		require.NoError(t, err)
		return p
	}

	a := newPolicy("Acme Mutual")
	a.MarkPrimary()
	require.NoError(t, repo.Save(ctx, a))

	b := newPolicy("Lone Star Insurance")
	b.MarkPrimary()
	require.NoError(t, repo.Save(ctx, b))

	primary, err := repo.FindPrimary(ctx, propertyID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, primary.ID)

	require.NoError(t, repo.SetPrimary(ctx, propertyID, a.ID))
	list, err := repo.FindByProperty(ctx, propertyID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, a.ID, list[0].ID)
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)

	assert.ErrorIs(t, repo.SetPrimary(ctx, uuid.New(), a.ID), shared.ErrNotFound)
}

func TestGormPropertyDetailRepositories(t *testing.T) {
	db := setupSQLiteDB(t)
	ctx := context.Background()
	propertyID := uuid.New()

	t.Run("utilities ordered by type", func(t *testing.T) {
		repo := NewGormUtilityRepository(db)
		water, err := property.NewUtility(propertyID, property.UtilityDetails{Type: property.UtilityWater, CompanyName: "City Water", IsActive: true})
		require.NoError(t, err)
		electric, err := property.NewUtility(propertyID, property.UtilityDetails{Type: property.UtilityElectric, CompanyName: "Austin Energy", MonthlyAverageCost: nullAmount("140.25")})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, water))
		require.NoError(t, repo.Save(ctx, electric))

		list, err := repo.FindByProperty(ctx, propertyID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, property.UtilityElectric, list[0].Type)
		assert.True(t, list[0].MonthlyAverageCost.Decimal.Equal(decimal.RequireFromString("140.25")))

		require.NoError(t, repo.Delete(ctx, water.ID))
		assert.ErrorIs(t, repo.Delete(ctx, water.ID), shared.ErrNotFound)
	})

	t.Run("appliances keep defaults", func(t *testing.T) {
		repo := NewGormApplianceRepository(db)
		a, err := property.NewAppliance(propertyID, property.ApplianceDetails{Type: property.ApplianceDishwasher, Brand: "Bosch"})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, a))

		found, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, found.Quantity)
		assert.Equal(t, property.ConditionGood, found.Condition)
	})

	t.Run("documents carry metadata", func(t *testing.T) {
		repo := NewGormDocumentRepository(db)
		d, err := property.NewDocument(propertyID, "user-1", "", "deed.pdf", "imports/user-1/deed.pdf")
		require.NoError(t, err)
		d.Metadata = map[string]any{"pages": float64(3)}
		require.NoError(t, repo.Save(ctx, d))

		list, err := repo.FindByProperty(ctx, propertyID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "unknown", list[0].DocumentType)
		assert.Equal(t, float64(3), list[0].Metadata["pages"])
	})
}
