package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/mortgage"
	"github.com/owneriq/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// scheduleInsertBatchSize bounds the rows per INSERT; a 30 year schedule has 360
const scheduleInsertBatchSize = 120

// GormScheduleRepository implements ScheduleRepository using GORM
type GormScheduleRepository struct {
	db *gorm.DB
}

// NewGormScheduleRepository creates a new GormScheduleRepository
func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// Replace deletes the property's schedule and summary and stores the new ones
// in one transaction
func (r *GormScheduleRepository) Replace(ctx context.Context, propertyID uuid.UUID, payments []mortgage.StoredPayment, summary mortgage.StoredSummary) error {
	now := time.Now()
	rows := make([]models.MortgagePaymentModel, len(payments))
	for i, p := range payments {
		rows[i] = models.MortgagePaymentModelFromDomain(p, now)
	}
	summary.PropertyID = propertyID
	summary.UpdatedAt = now

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteSchedule(tx, propertyID); err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.CreateInBatches(rows, scheduleInsertBatchSize).Error; err != nil {
				return err
			}
		}
		return tx.Create(models.MortgageSummaryModelFromDomain(summary)).Error
	})
}

// FindPayments lists the schedule ordered by payment number
func (r *GormScheduleRepository) FindPayments(ctx context.Context, propertyID uuid.UUID, year, limit int) ([]mortgage.StoredPayment, error) {
	query := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("payment_number ASC")
	if year > 0 {
		query = query.Where("payment_year = ?", year)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.MortgagePaymentModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]mortgage.StoredPayment, len(rows))
	for i := range rows {
		out[i] = rows[i].ToDomain()
	}
	return out, nil
}

// FindSummary finds the stored summary of a property
func (r *GormScheduleRepository) FindSummary(ctx context.Context, propertyID uuid.UUID) (*mortgage.StoredSummary, error) {
	var model models.MortgageSummaryModel
	if err := r.db.WithContext(ctx).Where("property_id = ?", propertyID).First(&model).Error; err != nil {
		return nil, translateError(err)
	}
	return model.ToDomain(), nil
}

// Delete removes the schedule and summary of a property
func (r *GormScheduleRepository) Delete(ctx context.Context, propertyID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteSchedule(tx, propertyID)
	})
}

func deleteSchedule(tx *gorm.DB, propertyID uuid.UUID) error {
	if err := tx.Where("property_id = ?", propertyID).Delete(&models.MortgagePaymentModel{}).Error; err != nil {
		return err
	}
	return tx.Where("property_id = ?", propertyID).Delete(&models.MortgageSummaryModel{}).Error
}

// Ensure GormScheduleRepository implements ScheduleRepository
var _ mortgage.ScheduleRepository = (*GormScheduleRepository)(nil)
