package models

import (
	"github.com/owneriq/backend/internal/domain/ownership"
)

// EntityModel is the persistence model for the LegalEntity aggregate root.
type EntityModel struct {
	OwnedModel
	EntityType  ownership.EntityType `gorm:"column:entity_type;type:varchar(20);not null;default:'company'"`
	EntityName  string               `gorm:"column:entity_name;type:varchar(200);not null"`
	EIN         string               `gorm:"column:ein;type:varchar(20)"`
	EntityEmail string               `gorm:"column:entity_email;type:varchar(255)"`
	EntityPhone string               `gorm:"column:entity_phone;type:varchar(50)"`
}

// TableName returns the table name for GORM
func (EntityModel) TableName() string {
	return "entities"
}

// ToDomain converts the persistence model to a domain LegalEntity.
func (m *EntityModel) ToDomain() *ownership.LegalEntity {
	return &ownership.LegalEntity{
		OwnedAggregateRoot: m.ToOwnedAggregateRoot(),
		Type:               m.EntityType,
		Name:               m.EntityName,
		EIN:                m.EIN,
		Email:              m.EntityEmail,
		Phone:              m.EntityPhone,
	}
}

// EntityModelFromDomain creates a persistence model from a domain LegalEntity.
func EntityModelFromDomain(e *ownership.LegalEntity) *EntityModel {
	m := &EntityModel{
		EntityType:  e.Type,
		EntityName:  e.Name,
		EIN:         e.EIN,
		EntityEmail: e.Email,
		EntityPhone: e.Phone,
	}
	m.FromDomainOwnedAggregateRoot(e.OwnedAggregateRoot)
	return m
}
