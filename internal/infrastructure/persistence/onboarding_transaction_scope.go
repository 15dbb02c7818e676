package persistence

import (
	"context"

	onboardingapp "github.com/owneriq/backend/internal/application/onboarding"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// It provides atomic execution of the multi-table effects of a wizard step.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos onboardingapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) Profiles() onboarding.ProfileRepository {
	return NewGormProfileRepository(r.tx)
}

func (r *gormTransactionalRepositories) Batches() onboarding.BatchRepository {
	return NewGormBatchRepository(r.tx)
}

func (r *gormTransactionalRepositories) Uploads() onboarding.UploadRepository {
	return NewGormUploadRepository(r.tx)
}

func (r *gormTransactionalRepositories) Persons() owner.PersonRepository {
	return NewGormPersonRepository(r.tx)
}

func (r *gormTransactionalRepositories) Entities() ownership.EntityRepository {
	return NewGormEntityRepository(r.tx)
}

func (r *gormTransactionalRepositories) Properties() property.PropertyRepository {
	return NewGormPropertyRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ onboardingapp.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ onboardingapp.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
