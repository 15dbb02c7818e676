package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPostalAddress(t *testing.T) {
	t.Run("normalizes fields", func(t *testing.T) {
		a, err := NewPostalAddress(" 12 Main St ", "", " Austin ", "tx", "78701", "")
		require.NoError(t, err)
		assert.Equal(t, "12 Main St", a.Line1)
		assert.Equal(t, "Austin", a.City)
		assert.Equal(t, "TX", a.StateCode)
		assert.Equal(t, "US", a.CountryCode)
		assert.True(t, a.Complete())
		assert.Equal(t, "12 Main St, Austin, TX 78701", a.String())
	})

	t.Run("requires line1", func(t *testing.T) {
		_, err := NewPostalAddress("  ", "", "Austin", "TX", "78701", "US")
		assert.Error(t, err)
	})

	t.Run("rejects bad country", func(t *testing.T) {
		_, err := NewPostalAddress("1 A St", "", "", "", "", "USA")
		assert.Error(t, err)
	})

	t.Run("partial address is not complete", func(t *testing.T) {
		a, err := NewPostalAddress("1 A St", "", "", "", "", "")
		require.NoError(t, err)
		assert.False(t, a.Complete())
		assert.False(t, a.IsZero())
	})
}
