package onboarding

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for onboarding profile persistence
type ProfileRepository interface {
	// FindByOwner finds the owner's profile, or shared.ErrNotFound
	FindByOwner(ctx context.Context, ownerID string) (*Profile, error)

	// Save upserts the profile keyed by owner id
	Save(ctx context.Context, profile *Profile) error
}

// BatchRepository defines the interface for document batch persistence
type BatchRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*DocumentBatch, error)
	// FindAllForOwner lists batches by property index
	FindAllForOwner(ctx context.Context, ownerID string) ([]DocumentBatch, error)
	Save(ctx context.Context, batch *DocumentBatch) error
	// ResetForOwner moves every batch of the owner back to PENDING
	ResetForOwner(ctx context.Context, ownerID string) error
	// CountOpenForOwner counts batches that are not completed
	CountOpenForOwner(ctx context.Context, ownerID string) (int64, error)
}

// DocumentTypeRepository reads the document type catalog
type DocumentTypeRepository interface {
	FindAll(ctx context.Context) ([]DocumentType, error)
	FindByID(ctx context.Context, docTypeID string) (*DocumentType, error)
}

// UploadRepository defines the interface for document upload persistence
type UploadRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID string, id uuid.UUID) (*DocumentUpload, error)
	FindByBatch(ctx context.Context, batchID uuid.UUID) ([]DocumentUpload, error)
	Save(ctx context.Context, upload *DocumentUpload) error
}

// EventLogRepository defines the interface for the onboarding event log
type EventLogRepository interface {
	Append(ctx context.Context, entry *LogEntry) error
	// FindRecent lists the owner's latest entries, newest first
	FindRecent(ctx context.Context, ownerID string, limit int) ([]LogEntry, error)
}
