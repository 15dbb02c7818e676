package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/mortgage"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSchedule(t *testing.T, termYears int) ([]mortgage.Payment, mortgage.Summary) {
	payments, summary, err := mortgage.Schedule(mortgage.Params{
		LoanAmount:       decimal.NewFromInt(200000),
		AnnualRate:       decimal.RequireFromString("0.06"),
		TermYears:        termYears,
		FirstPaymentDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return payments, summary
}

func TestGormScheduleRepository_Replace(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormScheduleRepository(db)
	ctx := context.Background()
	propertyID := uuid.New()

	payments, summary := buildSchedule(t, 30)
	stored := mortgage.StoredSummary{Summary: summary, MonthlyPaymentPITI: decimal.RequireFromString("1499.10")}
	require.NoError(t, repo.Replace(ctx, propertyID, mortgage.Attach(propertyID, payments), stored))

	all, err := repo.FindPayments(ctx, propertyID, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 360)
	assert.Equal(t, 1, all[0].PaymentNumber)
	assert.Equal(t, mortgage.PaymentID(propertyID, 1), all[0].PaymentID)

	year, err := repo.FindPayments(ctx, propertyID, 2, 0)
	require.NoError(t, err)
	assert.Len(t, year, 12)

	limited, err := repo.FindPayments(ctx, propertyID, 0, 5)
	require.NoError(t, err)
	assert.Len(t, limited, 5)

	t.Run("replacing keeps only the new schedule", func(t *testing.T) {
		shorter, summary := buildSchedule(t, 15)
		require.NoError(t, repo.Replace(ctx, propertyID, mortgage.Attach(propertyID, shorter), mortgage.StoredSummary{Summary: summary}))

		all, err := repo.FindPayments(ctx, propertyID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 180)

		s, err := repo.FindSummary(ctx, propertyID)
		require.NoError(t, err)
		assert.Equal(t, 15, s.TermYears)
		assert.Equal(t, 180, s.ActualNumberOfPayments)
	})

	t.Run("delete removes schedule and summary", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, propertyID))

		all, err := repo.FindPayments(ctx, propertyID, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, all)

		_, err = repo.FindSummary(ctx, propertyID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}
