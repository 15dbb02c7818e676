package owner

import (
	"context"

	"github.com/google/uuid"
)

// PersonRepository defines the interface for person persistence
type PersonRepository interface {
	// FindByOwner finds the person of an owner
	FindByOwner(ctx context.Context, ownerID string) (*Person, error)

	// Save creates or updates a person
	Save(ctx context.Context, person *Person) error
}

// AddressRepository defines the interface for address persistence
type AddressRepository interface {
	// FindByID finds an address by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Address, error)

	// FindByPerson lists a person's addresses, primary first then oldest first
	FindByPerson(ctx context.Context, personID uuid.UUID) ([]Address, error)

	// CountByPerson counts a person's addresses
	CountByPerson(ctx context.Context, personID uuid.UUID) (int64, error)

	// Save creates or updates an address. When the address is primary the
	// flag is cleared on the person's other addresses in the same transaction.
	Save(ctx context.Context, address *Address) error

	// SetPrimary makes addressID the only primary address of the person
	SetPrimary(ctx context.Context, personID, addressID uuid.UUID) error

	// Delete deletes an address
	Delete(ctx context.Context, id uuid.UUID) error
}
