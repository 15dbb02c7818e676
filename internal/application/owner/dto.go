package owner

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// PersonResponse represents the current owner's person record
type PersonResponse struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      string    `json:"owner_id"`
	FullName     string    `json:"full_name"`
	PrimaryEmail string    `json:"primary_email"`
	PrimaryPhone string    `json:"primary_phone"`
	Kind         string    `json:"kind"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UpdatePersonRequest is the body of PUT /persons/me
type UpdatePersonRequest struct {
	FullName     string `json:"full_name" binding:"required,notblank,max=200"`
	PrimaryEmail string `json:"primary_email" binding:"omitempty,email"`
	PrimaryPhone string `json:"primary_phone" binding:"max=50"`
}

// AddressRequest is the body of address create and update
type AddressRequest struct {
	Kind        string `json:"kind" binding:"omitempty,oneof=home mailing work other"`
	Line1       string `json:"line1" binding:"required,notblank,max=255"`
	Line2       string `json:"line2" binding:"max=255"`
	City        string `json:"city" binding:"max=100"`
	StateCode   string `json:"state_code" binding:"max=50"`
	PostalCode  string `json:"postal_code" binding:"max=20"`
	CountryCode string `json:"country_code" binding:"omitempty,len=2"`
	IsPrimary   bool   `json:"is_primary"`
}

func (r AddressRequest) postal() (valueobject.PostalAddress, error) {
	addr, err := valueobject.NewPostalAddress(r.Line1, r.Line2, r.City, r.StateCode, r.PostalCode, r.CountryCode)
	if err != nil {
		return addr, shared.NewDomainError("INVALID_ADDRESS", err.Error())
	}
	return addr, nil
}

// AddressResponse represents a person's address
type AddressResponse struct {
	ID          uuid.UUID `json:"id"`
	PersonID    uuid.UUID `json:"person_id"`
	Kind        string    `json:"kind"`
	Line1       string    `json:"line1"`
	Line2       string    `json:"line2,omitempty"`
	City        string    `json:"city"`
	StateCode   string    `json:"state_code"`
	PostalCode  string    `json:"postal_code"`
	CountryCode string    `json:"country_code"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPersonResponse converts a domain Person to a response
func ToPersonResponse(p *owner.Person) PersonResponse {
	return PersonResponse{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		FullName:     p.FullName,
		PrimaryEmail: p.PrimaryEmail,
		PrimaryPhone: p.PrimaryPhone,
		Kind:         string(p.Kind),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ToAddressResponse converts a domain Address to a response
func ToAddressResponse(a *owner.Address) AddressResponse {
	return AddressResponse{
		ID:          a.ID,
		PersonID:    a.PersonID,
		Kind:        string(a.Kind),
		Line1:       a.Postal.Line1,
		Line2:       a.Postal.Line2,
		City:        a.Postal.City,
		StateCode:   a.Postal.StateCode,
		PostalCode:  a.Postal.PostalCode,
		CountryCode: a.Postal.CountryCode,
		IsPrimary:   a.IsPrimary,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
