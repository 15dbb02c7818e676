package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPersonRepository implements PersonRepository using GORM
type GormPersonRepository struct {
	db *gorm.DB
}

// NewGormPersonRepository creates a new GormPersonRepository
func NewGormPersonRepository(db *gorm.DB) *GormPersonRepository {
	return &GormPersonRepository{db: db}
}

// FindByOwner finds the person of an owner
func (r *GormPersonRepository) FindByOwner(ctx context.Context, ownerID string) (*owner.Person, error) {
	var model models.PersonModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Save upserts the person keyed by owner id
func (r *GormPersonRepository) Save(ctx context.Context, person *owner.Person) error {
	model := models.PersonModelFromDomain(person)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "primary_email", "primary_phone", "updated_at"}),
		}).
		Create(model).Error
	return translateError(err)
}

// GormAddressRepository implements AddressRepository using GORM
type GormAddressRepository struct {
	db *gorm.DB
}

// NewGormAddressRepository creates a new GormAddressRepository
func NewGormAddressRepository(db *gorm.DB) *GormAddressRepository {
	return &GormAddressRepository{db: db}
}

// FindByID finds an address by its ID
func (r *GormAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*owner.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByPerson lists a person's addresses, primary first then oldest first
func (r *GormAddressRepository) FindByPerson(ctx context.Context, personID uuid.UUID) ([]owner.Address, error) {
	var rows []models.AddressModel
	if err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("is_primary DESC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	addresses := make([]owner.Address, len(rows))
	for i := range rows {
		addresses[i] = *rows[i].ToDomain()
	}
	return addresses, nil
}

// CountByPerson counts a person's addresses
func (r *GormAddressRepository) CountByPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.AddressModel{}).
		Where("person_id = ?", personID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an address. A primary address clears the flag on
// the person's other addresses first, inside one transaction.
func (r *GormAddressRepository) Save(ctx context.Context, address *owner.Address) error {
	model := models.AddressModelFromDomain(address)
	if !address.IsPrimary {
		return translateError(r.db.WithContext(ctx).Save(model).Error)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AddressModel{}).
			Where("person_id = ? AND id <> ? AND is_primary = ?", address.PersonID, address.ID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
	return translateError(err)
}

// SetPrimary makes addressID the only primary address of the person
func (r *GormAddressRepository) SetPrimary(ctx context.Context, personID, addressID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AddressModel{}).
			Where("person_id = ? AND id <> ? AND is_primary = ?", personID, addressID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.AddressModel{}).
			Where("person_id = ? AND id = ?", personID, addressID).
			Update("is_primary", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
	return translateError(err)
}

// Delete deletes an address
func (r *GormAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure the GORM repositories implement the owner repositories
var (
	_ owner.PersonRepository  = (*GormPersonRepository)(nil)
	_ owner.AddressRepository = (*GormAddressRepository)(nil)
)
