package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// deleteByID deletes one row of model and reports NOT_FOUND when nothing matched
func deleteByID(ctx context.Context, db *gorm.DB, model any, id uuid.UUID) error {
	result := db.WithContext(ctx).Delete(model, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// GormUtilityRepository implements UtilityRepository using GORM
type GormUtilityRepository struct {
	db *gorm.DB
}

// NewGormUtilityRepository creates a new GormUtilityRepository
func NewGormUtilityRepository(db *gorm.DB) *GormUtilityRepository {
	return &GormUtilityRepository{db: db}
}

// FindByID finds a utility by its ID
func (r *GormUtilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Utility, error) {
	var model models.UtilityModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByProperty lists utilities ordered by utility type
func (r *GormUtilityRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Utility, error) {
	var rows []models.UtilityModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("utility_type ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.Utility, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a utility
func (r *GormUtilityRepository) Save(ctx context.Context, u *property.Utility) error {
	return translateError(r.db.WithContext(ctx).Save(models.UtilityModelFromDomain(u)).Error)
}

// Delete deletes a utility
func (r *GormUtilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.UtilityModel{}, id)
}

// GormApplianceRepository implements ApplianceRepository using GORM
type GormApplianceRepository struct {
	db *gorm.DB
}

// NewGormApplianceRepository creates a new GormApplianceRepository
func NewGormApplianceRepository(db *gorm.DB) *GormApplianceRepository {
	return &GormApplianceRepository{db: db}
}

// FindByID finds an appliance by its ID
func (r *GormApplianceRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Appliance, error) {
	var model models.ApplianceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByProperty lists appliances ordered by appliance type
func (r *GormApplianceRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Appliance, error) {
	var rows []models.ApplianceModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("appliance_type ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.Appliance, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates an appliance
func (r *GormApplianceRepository) Save(ctx context.Context, a *property.Appliance) error {
	return translateError(r.db.WithContext(ctx).Save(models.ApplianceModelFromDomain(a)).Error)
}

// Delete deletes an appliance
func (r *GormApplianceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.ApplianceModel{}, id)
}

// GormInsurancePolicyRepository implements InsurancePolicyRepository using GORM
type GormInsurancePolicyRepository struct {
	db *gorm.DB
}

// NewGormInsurancePolicyRepository creates a new GormInsurancePolicyRepository
func NewGormInsurancePolicyRepository(db *gorm.DB) *GormInsurancePolicyRepository {
	return &GormInsurancePolicyRepository{db: db}
}

// FindByID finds a policy by its ID
func (r *GormInsurancePolicyRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.InsurancePolicy, error) {
	var model models.InsurancePolicyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindPrimary finds the primary policy of a property
func (r *GormInsurancePolicyRepository) FindPrimary(ctx context.Context, propertyID uuid.UUID) (*property.InsurancePolicy, error) {
	var model models.InsurancePolicyModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ? AND is_primary = ?", propertyID, true).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByProperty lists policies, primary first
func (r *GormInsurancePolicyRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.InsurancePolicy, error) {
	var rows []models.InsurancePolicyModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("is_primary DESC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.InsurancePolicy, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a policy. A primary policy clears the flag on the
// property's other policies first, inside one transaction.
func (r *GormInsurancePolicyRepository) Save(ctx context.Context, p *property.InsurancePolicy) error {
	model := models.InsurancePolicyModelFromDomain(p)
	if !p.IsPrimary {
		return translateError(r.db.WithContext(ctx).Save(model).Error)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InsurancePolicyModel{}).
			Where("property_id = ? AND id <> ? AND is_primary = ?", p.PropertyID, p.ID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		return tx.Save(model).Error
	})
	return translateError(err)
}

// SetPrimary makes policyID the only primary policy of the property
func (r *GormInsurancePolicyRepository) SetPrimary(ctx context.Context, propertyID, policyID uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.InsurancePolicyModel{}).
			Where("property_id = ? AND id <> ? AND is_primary = ?", propertyID, policyID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.InsurancePolicyModel{}).
			Where("property_id = ? AND id = ?", propertyID, policyID).
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

// Delete deletes a policy
func (r *GormInsurancePolicyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.InsurancePolicyModel{}, id)
}

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByID finds a document by its ID
func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*property.Document, error) {
	var model models.PropertyDocumentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByProperty lists documents newest first
func (r *GormDocumentRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.Document, error) {
	var rows []models.PropertyDocumentModel
	if err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("uploaded_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]property.Document, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a document
func (r *GormDocumentRepository) Save(ctx context.Context, d *property.Document) error {
	return translateError(r.db.WithContext(ctx).Save(models.PropertyDocumentModelFromDomain(d)).Error)
}

// Delete deletes a document
func (r *GormDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, &models.PropertyDocumentModel{}, id)
}

// Ensure the GORM repositories implement the property repositories
var (
	_ property.UtilityRepository         = (*GormUtilityRepository)(nil)
	_ property.ApplianceRepository       = (*GormApplianceRepository)(nil)
	_ property.InsurancePolicyRepository = (*GormInsurancePolicyRepository)(nil)
	_ property.DocumentRepository        = (*GormDocumentRepository)(nil)
)
