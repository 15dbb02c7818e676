package property

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// PropertyRepository defines the interface for property persistence
type PropertyRepository interface {
	// FindByIDForOwner finds a property owned by ownerID
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*Property, error)

	// FindAllForOwner lists the owner's properties
	FindAllForOwner(ctx context.Context, ownerID string, filter shared.Filter) ([]Property, error)

	// CountForOwner counts the owner's properties
	CountForOwner(ctx context.Context, ownerID string, filter shared.Filter) (int64, error)

	// CountByEntity counts properties referencing a legal entity
	CountByEntity(ctx context.Context, ownerID string, entityID uuid.UUID) (int64, error)

	// Save creates or updates a property
	Save(ctx context.Context, property *Property) error

	// DeleteForOwner deletes a property owned by ownerID
	DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error
}

// UtilityRepository defines the interface for utility persistence
type UtilityRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Utility, error)
	// FindByProperty lists utilities ordered by utility type
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Utility, error)
	Save(ctx context.Context, utility *Utility) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplianceRepository defines the interface for appliance persistence
type ApplianceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Appliance, error)
	// FindByProperty lists appliances ordered by appliance type
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Appliance, error)
	Save(ctx context.Context, appliance *Appliance) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// InsurancePolicyRepository defines the interface for insurance policy persistence
type InsurancePolicyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*InsurancePolicy, error)
	// FindPrimary finds the primary policy of a property
	FindPrimary(ctx context.Context, propertyID uuid.UUID) (*InsurancePolicy, error)
	// FindByProperty lists policies, primary first
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]InsurancePolicy, error)
	// Save creates or updates a policy; a primary policy clears the flag on
	// the property's other policies in the same transaction
	Save(ctx context.Context, policy *InsurancePolicy) error
	// SetPrimary makes policyID the only primary policy of the property
	SetPrimary(ctx context.Context, propertyID, policyID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentRepository defines the interface for property document persistence
type DocumentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	// FindByProperty lists documents newest first
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]Document, error)
	Save(ctx context.Context, doc *Document) error
	Delete(ctx context.Context, id uuid.UUID) error
}
