package ownership

import (
	"strings"

	"github.com/owneriq/backend/internal/domain/shared"
)

// EntityType is the legal form of an ownership vehicle
type EntityType string

const (
	EntityTypeLLC         EntityType = "llc"
	EntityTypeCompany     EntityType = "company"
	EntityTypeTrust       EntityType = "trust"
	EntityTypePartnership EntityType = "partnership"
)

// DefaultEntityType is used when no type is given
const DefaultEntityType = EntityTypeCompany

// IsValid reports whether the type is known
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeLLC, EntityTypeCompany, EntityTypeTrust, EntityTypePartnership:
		return true
	}
	return false
}

// PersonalGroupID is the synthetic grouping key for properties without an entity
const PersonalGroupID = "personal"

// LegalEntity is a legal ownership vehicle. Properties reference it by id;
// a property without one is owned personally.
type LegalEntity struct {
	shared.OwnedAggregateRoot
	Type  EntityType
	Name  string
	EIN   string
	Email string
	Phone string
}

// Details carries the editable fields of a legal entity
type Details struct {
	Type  EntityType
	Name  string
	EIN   string
	Email string
	Phone string
}

// NewLegalEntity creates a legal entity for the owner
func NewLegalEntity(ownerID string, d Details) (*LegalEntity, error) {
	e := &LegalEntity{OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID)}
	if err := e.Update(d); err != nil {
		return nil, err
	}
	return e, nil
}

// Update replaces all editable fields. Strings are trimmed.
func (e *LegalEntity) Update(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	d.EIN = strings.TrimSpace(d.EIN)
	d.Email = strings.ToLower(strings.TrimSpace(d.Email))
	d.Phone = strings.TrimSpace(d.Phone)
	if d.Type == "" {
		d.Type = DefaultEntityType
	}

	if !d.Type.IsValid() {
		return shared.NewDomainError("INVALID_ENTITY_TYPE", "Entity type must be llc, company, trust or partnership")
	}
	if d.Name == "" {
		return shared.NewDomainError("INVALID_ENTITY_NAME", "Entity name cannot be empty")
	}
	if len(d.Name) > 200 {
		return shared.NewDomainError("INVALID_ENTITY_NAME", "Entity name cannot exceed 200 characters")
	}
	if len(d.EIN) > 20 {
		return shared.NewDomainError("INVALID_EIN", "EIN cannot exceed 20 characters")
	}

	e.Type = d.Type
	e.Name = d.Name
	e.EIN = d.EIN
	e.Email = d.Email
	e.Phone = d.Phone
	e.Touch()
	return nil
}
