package models

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// PersonModel is the persistence model for the Person aggregate root.
type PersonModel struct {
	BaseModel
	OwnerID      string           `gorm:"column:owner_id;type:varchar(255);not null;uniqueIndex"`
	FullName     string           `gorm:"column:full_name;type:varchar(200);not null"`
	PrimaryEmail string           `gorm:"column:primary_email;type:varchar(255)"`
	PrimaryPhone string           `gorm:"column:primary_phone;type:varchar(50)"`
	Kind         owner.PersonKind `gorm:"column:kind;type:varchar(20);not null;default:'individual'"`
}

// TableName returns the table name for GORM
func (PersonModel) TableName() string {
	return "persons"
}

// ToDomain converts the persistence model to a domain Person.
func (m *PersonModel) ToDomain() *owner.Person {
	return &owner.Person{
		OwnedAggregateRoot: shared.OwnedAggregateRoot{
			BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain()},
			OwnerID:           m.OwnerID,
		},
		FullName:     m.FullName,
		PrimaryEmail: m.PrimaryEmail,
		PrimaryPhone: m.PrimaryPhone,
		Kind:         m.Kind,
	}
}

// PersonModelFromDomain creates a persistence model from a domain Person.
func PersonModelFromDomain(p *owner.Person) *PersonModel {
	m := &PersonModel{
		OwnerID:      p.OwnerID,
		FullName:     p.FullName,
		PrimaryEmail: p.PrimaryEmail,
		PrimaryPhone: p.PrimaryPhone,
		Kind:         p.Kind,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// AddressModel is the persistence model for a person's address.
type AddressModel struct {
	BaseModel
	PersonID    uuid.UUID         `gorm:"column:person_id;type:uuid;not null;index"`
	Kind        owner.AddressKind `gorm:"column:kind;type:varchar(20);not null"`
	Line1       string            `gorm:"column:line1;type:varchar(255);not null"`
	Line2       string            `gorm:"column:line2;type:varchar(255)"`
	City        string            `gorm:"column:city;type:varchar(100)"`
	StateCode   string            `gorm:"column:state_code;type:varchar(50)"`
	PostalCode  string            `gorm:"column:postal_code;type:varchar(20)"`
	CountryCode string            `gorm:"column:country_code;type:varchar(2);not null;default:'US'"`
	IsPrimary   bool              `gorm:"column:is_primary;not null;default:false"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "person_addresses"
}

// ToDomain converts the persistence model to a domain Address.
func (m *AddressModel) ToDomain() *owner.Address {
	return &owner.Address{
		BaseEntity: m.BaseModel.ToDomain(),
		PersonID:   m.PersonID,
		Kind:       m.Kind,
		Postal: valueobject.PostalAddress{
			Line1:       m.Line1,
			Line2:       m.Line2,
			City:        m.City,
			StateCode:   m.StateCode,
			PostalCode:  m.PostalCode,
			CountryCode: m.CountryCode,
		},
		IsPrimary: m.IsPrimary,
	}
}

// AddressModelFromDomain creates a persistence model from a domain Address.
func AddressModelFromDomain(a *owner.Address) *AddressModel {
	m := &AddressModel{
		PersonID:    a.PersonID,
		Kind:        a.Kind,
		Line1:       a.Postal.Line1,
		Line2:       a.Postal.Line2,
		City:        a.Postal.City,
		StateCode:   a.Postal.StateCode,
		PostalCode:  a.Postal.PostalCode,
		CountryCode: a.Postal.CountryCode,
		IsPrimary:   a.IsPrimary,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
