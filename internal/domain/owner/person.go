package owner

import (
	"net/mail"
	"strings"

	"github.com/owneriq/backend/internal/domain/shared"
)

// PersonKind distinguishes natural persons from other record kinds
type PersonKind string

const (
	PersonKindIndividual PersonKind = "individual"
)

// Person is the identity record of an authenticated owner.
// There is exactly one Person per owner id.
type Person struct {
	shared.OwnedAggregateRoot
	FullName     string
	PrimaryEmail string
	PrimaryPhone string
	Kind         PersonKind
}

// NewPerson creates a person for the owner
func NewPerson(ownerID, fullName, email, phone string) (*Person, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner id cannot be empty")
	}
	p := &Person{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Kind:               PersonKindIndividual,
	}
	if err := p.Update(fullName, email, phone); err != nil {
		return nil, err
	}
	return p, nil
}

// Update replaces the contact details. Name and email are trimmed; email is
// lowercased.
func (p *Person) Update(fullName, email, phone string) error {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	phone = strings.TrimSpace(phone)

	if fullName == "" {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if len(fullName) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Full name cannot exceed 200 characters")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return shared.NewDomainError("INVALID_EMAIL", "Email address is not valid")
		}
	}
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_PHONE", "Phone cannot exceed 50 characters")
	}

	p.FullName = fullName
	p.PrimaryEmail = email
	p.PrimaryPhone = phone
	p.Touch()
	return nil
}
