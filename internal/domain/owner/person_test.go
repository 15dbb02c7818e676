package owner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("trims and lowercases contact fields", func(t *testing.T) {
		p, err := NewPerson("user-1", "  Jane Doe ", " Jane@Example.COM ", " 555-0100 ")
		require.NoError(t, err)
		assert.Equal(t, "user-1", p.OwnerID)
		assert.Equal(t, "Jane Doe", p.FullName)
		assert.Equal(t, "jane@example.com", p.PrimaryEmail)
		assert.Equal(t, "555-0100", p.PrimaryPhone)
		assert.Equal(t, PersonKindIndividual, p.Kind)
	})

	t.Run("requires owner and name", func(t *testing.T) {
		_, err := NewPerson("", "Jane", "", "")
		assert.Error(t, err)
		_, err = NewPerson("user-1", " ", "", "")
		assert.Error(t, err)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := NewPerson("user-1", "Jane", "not-an-email", "")
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_EMAIL", domainErr.Code)
	})
}

func TestAddress(t *testing.T) {
	postal, err := valueobject.NewPostalAddress("1 Elm St", "", "Dallas", "TX", "75201", "")
	require.NoError(t, err)

	t.Run("defaults kind to home", func(t *testing.T) {
		a, err := NewAddress(uuid.New(), "", postal)
		require.NoError(t, err)
		assert.Equal(t, AddressKindHome, a.Kind)
		assert.False(t, a.IsPrimary)
		assert.NoError(t, a.EnsureDeletable())
	})

	t.Run("primary address cannot be deleted", func(t *testing.T) {
		a, err := NewAddress(uuid.New(), AddressKindMailing, postal)
		require.NoError(t, err)
		a.MarkPrimary()
		assert.ErrorIs(t, a.EnsureDeletable(), shared.ErrPrimaryRecord)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewAddress(uuid.New(), "vacation", postal)
		assert.Error(t, err)
	})
}
