package shared

import (
	"time"

	"github.com/google/uuid"
)

// BaseEntity carries the identity and timestamps shared by every record:
// properties, addresses, policies, appliances, utilities and documents.
type BaseEntity struct {
	ID        uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

// Touch marks the entity as modified.
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now()
}
