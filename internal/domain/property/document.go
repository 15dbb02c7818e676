package property

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// Document is a file record attached to a property
type Document struct {
	shared.BaseEntity
	PropertyID   uuid.UUID
	OwnerID      string
	DocumentType string
	FileName     string
	FilePath     string
	FileURL      string
	FileSize     int64
	Metadata     map[string]any
	UploadedAt   time.Time
}

// NewDocument creates a document record. Document type defaults to "unknown".
func NewDocument(propertyID uuid.UUID, ownerID, docType, fileName, filePath string) (*Document, error) {
	fileName = strings.TrimSpace(fileName)
	filePath = strings.TrimSpace(filePath)
	if propertyID == uuid.Nil || fileName == "" || filePath == "" {
		return nil, shared.NewDomainError("MISSING_FIELDS", "property_id, file_name and file_path are required")
	}
	if strings.TrimSpace(docType) == "" {
		docType = "unknown"
	}
	return &Document{
		BaseEntity:   shared.NewBaseEntity(),
		PropertyID:   propertyID,
		OwnerID:      ownerID,
		DocumentType: docType,
		FileName:     fileName,
		FilePath:     filePath,
		UploadedAt:   time.Now(),
	}, nil
}
