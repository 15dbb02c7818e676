package ownership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// EntityRequest is the body of entity create and update
type EntityRequest struct {
	EntityType string `json:"entity_type" binding:"omitempty,oneof=llc company trust partnership"`
	Name       string `json:"name" binding:"required,notblank,max=200"`
	EIN        string `json:"ein" binding:"max=20"`
	Email      string `json:"email" binding:"omitempty,email"`
	Phone      string `json:"phone" binding:"max=50"`
}

func (r EntityRequest) details() ownership.Details {
	return ownership.Details{
		Type:  ownership.EntityType(r.EntityType),
		Name:  r.Name,
		EIN:   r.EIN,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// EntityResponse represents a legal entity
type EntityResponse struct {
	ID         uuid.UUID `json:"id"`
	EntityType string    `json:"entity_type"`
	Name       string    `json:"name"`
	EIN        string    `json:"ein,omitempty"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToEntityResponse converts a domain LegalEntity to a response
func ToEntityResponse(e *ownership.LegalEntity) EntityResponse {
	return EntityResponse{
		ID:         e.ID,
		EntityType: string(e.Type),
		Name:       e.Name,
		EIN:        e.EIN,
		Email:      e.Email,
		Phone:      e.Phone,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// EntityService manages the owner's legal entities
type EntityService struct {
	entities   ownership.EntityRepository
	properties property.PropertyRepository
	logger     *zap.Logger
}

// NewEntityService creates a new EntityService
func NewEntityService(entities ownership.EntityRepository, properties property.PropertyRepository, logger *zap.Logger) *EntityService {
	return &EntityService{
		entities:   entities,
		properties: properties,
		logger:     logger,
	}
}

// List lists the owner's entities ordered by name
func (s *EntityService) List(ctx context.Context, ownerID string) ([]EntityResponse, error) {
	entities, err := s.entities.FindAllForOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]EntityResponse, len(entities))
	for i := range entities {
		out[i] = ToEntityResponse(&entities[i])
	}
	return out, nil
}

// Get returns one entity
func (s *EntityService) Get(ctx context.Context, ownerID string, id uuid.UUID) (*EntityResponse, error) {
	entity, err := s.entities.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := ToEntityResponse(entity)
	return &resp, nil
}

// Create creates an entity
func (s *EntityService) Create(ctx context.Context, ownerID string, req EntityRequest) (*EntityResponse, error) {
	entity, err := ownership.NewLegalEntity(ownerID, req.details())
	if err != nil {
		return nil, err
	}
	if err := s.entities.Save(ctx, entity); err != nil {
		return nil, err
	}
	s.logger.Info("legal entity created",
		zap.String("owner_id", ownerID),
		zap.String("entity_id", entity.ID.String()),
	)
	resp := ToEntityResponse(entity)
	return &resp, nil
}

// Update replaces an entity's details
func (s *EntityService) Update(ctx context.Context, ownerID string, id uuid.UUID, req EntityRequest) (*EntityResponse, error) {
	entity, err := s.entities.FindByIDForOwner(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := entity.Update(req.details()); err != nil {
		return nil, err
	}
	if err := s.entities.Save(ctx, entity); err != nil {
		return nil, err
	}
	resp := ToEntityResponse(entity)
	return &resp, nil
}

// Delete deletes an entity no property references. The foreign key
// rejects a delete racing with a property assignment the same way.
func (s *EntityService) Delete(ctx context.Context, ownerID string, id uuid.UUID) error {
	if _, err := s.entities.FindByIDForOwner(ctx, ownerID, id); err != nil {
		return err
	}
	count, err := s.properties.CountByEntity(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("IN_USE", "Entity still owns properties; reassign them first")
	}
	return s.entities.DeleteForOwner(ctx, ownerID, id)
}
