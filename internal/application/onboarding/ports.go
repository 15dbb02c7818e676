package onboarding

import (
	"context"
	"time"

	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
)

// ObjectStorage stores uploaded document bytes
type ObjectStorage interface {
	// Upload writes data under storageKey
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error

	// GenerateDownloadURL returns a URL the client can fetch the object from
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// TransactionalRepositories are the repositories bound to one database
// transaction. Effects of a wizard step that touch several tables go
// through these so they commit or roll back together.
type TransactionalRepositories interface {
	Profiles() onboarding.ProfileRepository
	Batches() onboarding.BatchRepository
	Uploads() onboarding.UploadRepository
	Persons() owner.PersonRepository
	Entities() ownership.EntityRepository
	Properties() property.PropertyRepository
}

// TransactionScope runs fn inside a database transaction. fn's error rolls
// the transaction back.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// Metrics receives onboarding counters. *metrics.Registry implements it.
type Metrics interface {
	WizardEvent(event string, err error)
	Upload(docType string, size int64, err error)
	BatchCompleted()
	OnboardingCompleted()
	Idempotency(result string)
	EventLogFailure()
}

type noopMetrics struct{}

func (noopMetrics) WizardEvent(string, error)   {}
func (noopMetrics) Upload(string, int64, error) {}
func (noopMetrics) BatchCompleted()             {}
func (noopMetrics) OnboardingCompleted()        {}
func (noopMetrics) Idempotency(string)          {}
func (noopMetrics) EventLogFailure()            {}
