package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPropertyRepository implements PropertyRepository using GORM
type GormPropertyRepository struct {
	db *gorm.DB
}

// NewGormPropertyRepository creates a new GormPropertyRepository
func NewGormPropertyRepository(db *gorm.DB) *GormPropertyRepository {
	return &GormPropertyRepository{db: db}
}

// FindByIDForOwner finds a property owned by ownerID
func (r *GormPropertyRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*property.Property, error) {
	var model models.PropertyModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForOwner lists the owner's properties
func (r *GormPropertyRepository) FindAllForOwner(ctx context.Context, ownerID string, filter shared.Filter) ([]property.Property, error) {
	var rows []models.PropertyModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.PropertyModel{}).Scopes(OwnerScope(ownerID)), filter)
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	properties := make([]property.Property, len(rows))
	for i := range rows {
		properties[i] = *rows[i].ToDomain()
	}
	return properties, nil
}

// CountForOwner counts the owner's properties
func (r *GormPropertyRepository) CountForOwner(ctx context.Context, ownerID string, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.PropertyModel{}).Scopes(OwnerScope(ownerID)), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByEntity counts properties referencing a legal entity
func (r *GormPropertyRepository) CountByEntity(ctx context.Context, ownerID string, entityID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.PropertyModel{}).
		Scopes(OwnerScope(ownerID)).
		Where("entity_id = ?", entityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a property
func (r *GormPropertyRepository) Save(ctx context.Context, p *property.Property) error {
	return translateError(r.db.WithContext(ctx).Save(models.PropertyModelFromDomain(p)).Error)
}

// DeleteForOwner deletes a property owned by ownerID. Child rows go with it
// through ON DELETE CASCADE.
func (r *GormPropertyRepository) DeleteForOwner(ctx context.Context, ownerID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Delete(&models.PropertyModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options with pagination and ordering
func (r *GormPropertyRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PropertySortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	if filter.OrderBy == "" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPropertyRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("nickname ILIKE ? OR address ILIKE ? OR city ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "property_type":
			query = query.Where("property_type = ?", value)
		case "entity_id":
			if value == nil || value == ownershipPersonal {
				query = query.Where("entity_id IS NULL")
			} else {
				query = query.Where("entity_id = ?", value)
			}
		case "state":
			query = query.Where("state = ?", value)
		}
	}

	return query
}

// ownershipPersonal selects properties without an entity
const ownershipPersonal = "personal"

// Ensure GormPropertyRepository implements PropertyRepository
var _ property.PropertyRepository = (*GormPropertyRepository)(nil)
