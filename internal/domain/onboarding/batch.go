package onboarding

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// BatchStatus is the status of a document batch
type BatchStatus string

const (
	BatchPending   BatchStatus = "PENDING"
	BatchUploading BatchStatus = "UPLOADING"
	BatchCompleted BatchStatus = "COMPLETED"
)

// ErrBatchNotUploadable is returned when uploading into a closed batch
var ErrBatchNotUploadable = shared.NewDomainError("BATCH_NOT_UPLOADABLE", "Batch is not in uploadable state")

// DocumentBatch groups the uploads of one property iteration
type DocumentBatch struct {
	shared.OwnedAggregateRoot
	PropertyID         *uuid.UUID
	PropertyType       property.Kind
	EntityID           *uuid.UUID
	Address            valueobject.PostalAddress
	Refinanced         bool
	OwnedByCompany     bool
	Status             BatchStatus
	DocumentsRequired  int
	DocumentsCompleted int
	PropertyIndex      int
}

// NewDocumentBatch opens a batch under a caller-chosen id
func NewDocumentBatch(id uuid.UUID, ownerID string, kind property.Kind, propertyIndex int) *DocumentBatch {
	b := &DocumentBatch{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		PropertyType:       kind,
		Status:             BatchPending,
		DocumentsRequired:  RequiredDocumentCount(kind),
		PropertyIndex:      propertyIndex,
	}
	if id != uuid.Nil {
		b.ID = id
	}
	return b
}

// Uploadable reports whether uploads are accepted
func (b *DocumentBatch) Uploadable() bool {
	return b.Status == BatchPending || b.Status == BatchUploading
}

// RecordUpload moves the batch to UPLOADING and stores the completed count,
// the number of distinct required document types uploaded so far.
func (b *DocumentBatch) RecordUpload(distinctRequired int) error {
	if !b.Uploadable() {
		return ErrBatchNotUploadable
	}
	b.Status = BatchUploading
	b.DocumentsCompleted = distinctRequired
	b.Touch()
	return nil
}

// Complete closes the batch once every required document is uploaded
func (b *DocumentBatch) Complete() error {
	if b.Status == BatchCompleted {
		return nil
	}
	if b.DocumentsCompleted < b.DocumentsRequired {
		return shared.NewDomainError("DOCUMENTS_MISSING", "Not all required documents have been uploaded")
	}
	b.Status = BatchCompleted
	b.AddDomainEvent(NewBatchCompletedEvent(b))
	b.Touch()
	return nil
}

// Reopen moves a batch back to PENDING
func (b *DocumentBatch) Reopen() {
	b.Status = BatchPending
	b.Touch()
}
