package ownership

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLegalEntity(t *testing.T) {
	tests := []struct {
		name    string
		details Details
		wantErr bool
		want    EntityType
	}{
		{"defaults to company", Details{Name: " Acme Holdings "}, false, EntityTypeCompany},
		{"keeps llc", Details{Type: EntityTypeLLC, Name: "Elm LLC"}, false, EntityTypeLLC},
		{"rejects blank name", Details{Type: EntityTypeTrust, Name: "  "}, true, ""},
		{"rejects unknown type", Details{Type: "personal", Name: "Me"}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewLegalEntity("owner-1", tt.details)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Type)
			assert.Equal(t, "owner-1", e.OwnerID)
		})
	}
}

func TestLegalEntity_UpdateTrims(t *testing.T) {
	e, err := NewLegalEntity("owner-1", Details{Name: "A"})
	require.NoError(t, err)

	require.NoError(t, e.Update(Details{Type: EntityTypePartnership, Name: " B Partners ", EIN: " 12-3456789 ", Email: " Ops@B.com ", Phone: " 555 "}))
	assert.Equal(t, "B Partners", e.Name)
	assert.Equal(t, "12-3456789", e.EIN)
	assert.Equal(t, "ops@b.com", e.Email)
	assert.Equal(t, "555", e.Phone)
}
