package owner

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// AddressKind classifies a person's address
type AddressKind string

const (
	AddressKindHome    AddressKind = "home"
	AddressKindMailing AddressKind = "mailing"
	AddressKindWork    AddressKind = "work"
	AddressKindOther   AddressKind = "other"
)

// IsValid reports whether the kind is known
func (k AddressKind) IsValid() bool {
	switch k {
	case AddressKindHome, AddressKindMailing, AddressKindWork, AddressKindOther:
		return true
	}
	return false
}

// Address belongs to exactly one Person. At most one address per person is
// primary; the repository switches the flag inside a single transaction.
type Address struct {
	shared.BaseEntity
	PersonID  uuid.UUID
	Kind      AddressKind
	Postal    valueobject.PostalAddress
	IsPrimary bool
}

// NewAddress creates an address for the person
func NewAddress(personID uuid.UUID, kind AddressKind, postal valueobject.PostalAddress) (*Address, error) {
	if personID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PERSON", "Person id cannot be empty")
	}
	a := &Address{
		BaseEntity: shared.NewBaseEntity(),
		PersonID:   personID,
	}
	if err := a.Update(kind, postal); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces kind and postal fields
func (a *Address) Update(kind AddressKind, postal valueobject.PostalAddress) error {
	if kind == "" {
		kind = AddressKindHome
	}
	if !kind.IsValid() {
		return shared.NewDomainError("INVALID_ADDRESS_KIND", "Address kind must be home, mailing, work or other")
	}
	if postal.Line1 == "" {
		return shared.NewDomainError("INVALID_ADDRESS", "Address line1 cannot be empty")
	}
	a.Kind = kind
	a.Postal = postal
	a.Touch()
	return nil
}

// MarkPrimary flags the address as primary. Other addresses of the same
// person are cleared by the repository in the same transaction.
func (a *Address) MarkPrimary() {
	a.IsPrimary = true
	a.Touch()
}

// EnsureDeletable rejects deleting the primary address
func (a *Address) EnsureDeletable() error {
	if a.IsPrimary {
		return shared.ErrPrimaryRecord
	}
	return nil
}
