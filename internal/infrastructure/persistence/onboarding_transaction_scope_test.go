package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormTransactionScope_Commit(t *testing.T) {
	db := setupSQLiteDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()

	batchID := uuid.New()
	err := scope.Execute(ctx, func(repos onboardingapp.TransactionalRepositories) error {
		entity, err := ownership.NewLegalEntity("user-1", ownership.Details{Name: "Oak LLC"})
		if err != nil {
			return err
		}
		if err := repos.Entities().Save(ctx, entity); err != nil {
			return err
		}
		prop, err := property.NewProperty("user-1", property.KindInvestment, valueobject.PostalAddress{})
		if err != nil {
			return err
		}
		prop.AssignEntity(&entity.ID)
		if err := repos.Properties().Save(ctx, prop); err != nil {
			return err
		}
		batch := onboarding.NewDocumentBatch(batchID, "user-1", property.KindInvestment, 1)
		batch.PropertyID = &prop.ID
		batch.EntityID = &entity.ID
		return repos.Batches().Save(ctx, batch)
	})
	require.NoError(t, err)

	batch, err := NewGormBatchRepository(db).FindByIDForOwner(ctx, "user-1", batchID)
	require.NoError(t, err)
	require.NotNil(t, batch.PropertyID)
	count, err := NewGormPropertyRepository(db).CountByEntity(ctx, "user-1", *batch.EntityID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestGormTransactionScope_RollbackOnError(t *testing.T) {
	db := setupSQLiteDB(t)
	scope := NewGormTransactionScope(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := scope.Execute(ctx, func(repos onboardingapp.TransactionalRepositories) error {
		p := onboarding.NewProfile("user-1")
		if err := repos.Profiles().Save(ctx, p); err != nil {
			return err
		}
		person, err := owner.NewPerson("user-1", "Jane Doe", "jane@example.com", "")
		if err != nil {
			return err
		}
		if err := repos.Persons().Save(ctx, person); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewGormProfileRepository(db).FindByOwner(ctx, "user-1")
	assert.ErrorIs(t, err, shared.ErrNotFound)
	_, err = NewGormPersonRepository(db).FindByOwner(ctx, "user-1")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
