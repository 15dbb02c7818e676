package ownership

import (
	"context"

	"github.com/google/uuid"
)

// EntityRepository defines the interface for legal entity persistence
type EntityRepository interface {
	// FindByIDForOwner finds an entity owned by ownerID
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*LegalEntity, error)

	// FindAllForOwner lists the owner's entities ordered by name
	FindAllForOwner(ctx context.Context, ownerID string) ([]LegalEntity, error)

	// Save creates or updates an entity
	Save(ctx context.Context, entity *LegalEntity) error

	// DeleteForOwner deletes an entity owned by ownerID
	DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error
}
