package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddress(t *testing.T, personID uuid.UUID, line1 string) *owner.Address {
	postal, err := valueobject.NewPostalAddress(line1, "", "Austin", "tx", "78701", "")
	require.NoError(t, err)
	a, err := owner.NewAddress(personID, owner.AddressKindHome, postal)
	require.NoError(t, err)
	return a
}

func TestGormPersonRepository_SaveUpsertsByOwner(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormPersonRepository(db)
	ctx := context.Background()

	p, err := owner.NewPerson("user-1", "Jane Doe", "Jane@Example.com", "555-0100")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, p))

	// a second person for the same owner updates the stored row
	again, err := owner.NewPerson("user-1", "Jane Q. Doe", "jane@example.com", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, again))

	found, err := repo.FindByOwner(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, p.ID, found.ID)
	assert.Equal(t, "Jane Q. Doe", found.FullName)
	assert.Equal(t, "jane@example.com", found.PrimaryEmail)

	_, err = repo.FindByOwner(ctx, "someone-else")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestGormAddressRepository_SinglePrimary(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewGormAddressRepository(db)
	ctx := context.Background()
	personID := uuid.New()

	first := newTestAddress(t, personID, "1 First St")
	first.MarkPrimary()
	require.NoError(t, repo.Save(ctx, first))

	second := newTestAddress(t, personID, "2 Second St")
	second.MarkPrimary()
	require.NoError(t, repo.Save(ctx, second))

	third := newTestAddress(t, personID, "3 Third St")
	require.NoError(t, repo.Save(ctx, third))

	list, err := repo.FindByPerson(ctx, personID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, second.ID, list[0].ID, "primary is listed first")
	assert.True(t, list[0].IsPrimary)
	assert.False(t, list[1].IsPrimary)
	assert.False(t, list[2].IsPrimary)

	t.Run("SetPrimary moves the flag", func(t *testing.T) {
		require.NoError(t, repo.SetPrimary(ctx, personID, third.ID))

		list, err := repo.FindByPerson(ctx, personID)
		require.NoError(t, err)
		primaries := 0
		for _, a := range list {
			if a.IsPrimary {
				primaries++
				assert.Equal(t, third.ID, a.ID)
			}
		}
		assert.Equal(t, 1, primaries)
	})

	t.Run("SetPrimary of a foreign address is not found", func(t *testing.T) {
		err := repo.SetPrimary(ctx, personID, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		// the failed switch rolled back; the old primary survives
		found, err := repo.FindByID(ctx, third.ID)
		require.NoError(t, err)
		assert.True(t, found.IsPrimary)
	})

	t.Run("count and delete", func(t *testing.T) {
		n, err := repo.CountByPerson(ctx, personID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)

		require.NoError(t, repo.Delete(ctx, first.ID))
		assert.ErrorIs(t, repo.Delete(ctx, first.ID), shared.ErrNotFound)
	})
}
