package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByOwner finds the owner's profile
func (r *GormProfileRepository) FindByOwner(ctx context.Context, ownerID string) (*onboarding.Profile, error) {
	var model models.OnboardingProfileModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Save upserts the profile keyed by owner id
func (r *GormProfileRepository) Save(ctx context.Context, profile *onboarding.Profile) error {
	model := models.OnboardingProfileModelFromDomain(profile)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"owner_name", "owner_email", "owner_phone", "user_type",
				"has_primary_residence", "investment_property_count", "onboarding_status",
				"current_step", "property_index", "current_batch_id", "updated_at",
			}),
		}).
		Create(model).Error
	return translateError(err)
}

// GormBatchRepository implements BatchRepository using GORM
type GormBatchRepository struct {
	db *gorm.DB
}

// NewGormBatchRepository creates a new GormBatchRepository
func NewGormBatchRepository(db *gorm.DB) *GormBatchRepository {
	return &GormBatchRepository{db: db}
}

// FindByIDForOwner finds a batch owned by ownerID
func (r *GormBatchRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*onboarding.DocumentBatch, error) {
	var model models.ImportBatchModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindAllForOwner lists batches by property index
func (r *GormBatchRepository) FindAllForOwner(ctx context.Context, ownerID string) ([]onboarding.DocumentBatch, error) {
	var rows []models.ImportBatchModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Order("property_index ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]onboarding.DocumentBatch, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates a batch
func (r *GormBatchRepository) Save(ctx context.Context, batch *onboarding.DocumentBatch) error {
	return translateError(r.db.WithContext(ctx).Save(models.ImportBatchModelFromDomain(batch)).Error)
}

// ResetForOwner moves every batch of the owner back to PENDING
func (r *GormBatchRepository) ResetForOwner(ctx context.Context, ownerID string) error {
	return r.db.WithContext(ctx).
		Model(&models.ImportBatchModel{}).
		Scopes(OwnerScope(ownerID)).
		Update("status", onboarding.BatchPending).Error
}

// CountOpenForOwner counts batches that are not completed
func (r *GormBatchRepository) CountOpenForOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ImportBatchModel{}).
		Scopes(OwnerScope(ownerID)).
		Where("status <> ?", onboarding.BatchCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormDocumentTypeRepository reads the seeded document type catalog
type GormDocumentTypeRepository struct {
	db *gorm.DB
}

// NewGormDocumentTypeRepository creates a new GormDocumentTypeRepository
func NewGormDocumentTypeRepository(db *gorm.DB) *GormDocumentTypeRepository {
	return &GormDocumentTypeRepository{db: db}
}

// FindAll lists the catalog in sort order
func (r *GormDocumentTypeRepository) FindAll(ctx context.Context) ([]onboarding.DocumentType, error) {
	var rows []models.DocumentTypeModel
	if err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]onboarding.DocumentType, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindByID finds a catalog entry by its string key
func (r *GormDocumentTypeRepository) FindByID(ctx context.Context, docTypeID string) (*onboarding.DocumentType, error) {
	var model models.DocumentTypeModel
	if err := r.db.WithContext(ctx).Where("doc_type_id = ?", docTypeID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	t := model.ToDomain()
	return &t, nil
}

// GormUploadRepository implements UploadRepository using GORM
type GormUploadRepository struct {
	db *gorm.DB
}

// NewGormUploadRepository creates a new GormUploadRepository
func NewGormUploadRepository(db *gorm.DB) *GormUploadRepository {
	return &GormUploadRepository{db: db}
}

// FindByIDForOwner finds an upload owned by ownerID
func (r *GormUploadRepository) FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*onboarding.DocumentUpload, error) {
	var model models.DocumentUploadModel
	if err := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// FindByBatch lists the uploads of a batch, oldest first
func (r *GormUploadRepository) FindByBatch(ctx context.Context, batchID uuid.UUID) ([]onboarding.DocumentUpload, error) {
	var rows []models.DocumentUploadModel
	if err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]onboarding.DocumentUpload, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Save creates or updates an upload
func (r *GormUploadRepository) Save(ctx context.Context, upload *onboarding.DocumentUpload) error {
	return translateError(r.db.WithContext(ctx).Save(models.DocumentUploadModelFromDomain(upload)).Error)
}

// GormEventLogRepository implements EventLogRepository using GORM
type GormEventLogRepository struct {
	db *gorm.DB
}

// NewGormEventLogRepository creates a new GormEventLogRepository
func NewGormEventLogRepository(db *gorm.DB) *GormEventLogRepository {
	return &GormEventLogRepository{db: db}
}

// Append inserts a log entry
func (r *GormEventLogRepository) Append(ctx context.Context, entry *onboarding.LogEntry) error {
	return r.db.WithContext(ctx).Create(models.OnboardingEventModelFromDomain(entry)).Error
}

// FindRecent lists the owner's latest entries, newest first
func (r *GormEventLogRepository) FindRecent(ctx context.Context, ownerID string, limit int) ([]onboarding.LogEntry, error) {
	var rows []models.OnboardingEventModel
	query := r.db.WithContext(ctx).
		Scopes(OwnerScope(ownerID)).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]onboarding.LogEntry, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out, nil
}

// Ensure the GORM repositories implement the onboarding repositories
var (
	_ onboarding.ProfileRepository      = (*GormProfileRepository)(nil)
	_ onboarding.BatchRepository        = (*GormBatchRepository)(nil)
	_ onboarding.DocumentTypeRepository = (*GormDocumentTypeRepository)(nil)
	_ onboarding.UploadRepository       = (*GormUploadRepository)(nil)
	_ onboarding.EventLogRepository     = (*GormEventLogRepository)(nil)
)
