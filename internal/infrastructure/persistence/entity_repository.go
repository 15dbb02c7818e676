package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEntityRepository implements EntityRepository using GORM
type GormEntityRepository struct {
	db *gorm.DB
}

// NewGormEntityRepository creates a new GormEntityRepository
func NewGormEntityRepository(db *gorm.DB) *GormEntityRepository {
	return &GormEntityRepository{db: db}
}

// FindByIDForOwner finds an entity owned by ownerID
func (r *GormEntityRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*ownership.LegalEntity, error) {
	var model models.EntityModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForOwner lists the owner's entities ordered by name
func (r *GormEntityRepository) FindAllForOwner(ctx context.Context, ownerID string) ([]ownership.LegalEntity, error) {
	var rows []models.EntityModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Order("entity_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	entities := make([]ownership.LegalEntity, len(rows))
	for i := range rows {
		entities[i] = *rows[i].ToDomain()
	}
	return entities, nil
}

// Save creates or updates an entity
func (r *GormEntityRepository) Save(ctx context.Context, entity *ownership.LegalEntity) error {
	return translateError(r.db.WithContext(ctx).Save(models.EntityModelFromDomain(entity)).Error)
}

// DeleteForOwner deletes an entity owned by ownerID. Properties still
// referencing it surface as IN_USE through the foreign key.
func (r *GormEntityRepository) DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Delete(&models.EntityModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormEntityRepository implements EntityRepository
var _ ownership.EntityRepository = (*GormEntityRepository)(nil)
