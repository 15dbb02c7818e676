package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// BaseModel provides common persistence fields for all models.
// It maps to the domain's BaseEntity.
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// ToDomain converts BaseModel to domain BaseEntity
func (m *BaseModel) ToDomain() shared.BaseEntity {
	return shared.BaseEntity{
		ID:        m.ID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainBaseEntity populates BaseModel from domain BaseEntity
func (m *BaseModel) FromDomainBaseEntity(e shared.BaseEntity) {
	m.ID = e.ID
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}

// OwnedModel provides common persistence fields for owner-scoped aggregate roots.
type OwnedModel struct {
	BaseModel
	OwnerID string `gorm:"column:owner_id;type:varchar(255);not null;index"`
}

// FromDomainOwnedAggregateRoot populates OwnedModel from domain OwnedAggregateRoot
func (m *OwnedModel) FromDomainOwnedAggregateRoot(o shared.OwnedAggregateRoot) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.OwnerID = o.OwnerID
}

// ToOwnedAggregateRoot builds the domain OwnedAggregateRoot from the model
func (m *OwnedModel) ToOwnedAggregateRoot() shared.OwnedAggregateRoot {
	return shared.OwnedAggregateRoot{
		BaseAggregateRoot: shared.BaseAggregateRoot{BaseEntity: m.BaseModel.ToDomain()},
		OwnerID:           m.OwnerID,
	}
}
