package onboarding

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
)

// Document counts of the seeded catalog
const (
	requiredForAllCount      = 7
	requiredForInvestorCount = 1
)

// RequiredDocumentCount is the number of required document types for a kind
func RequiredDocumentCount(kind property.Kind) int {
	if kind == property.KindInvestment {
		return requiredForAllCount + requiredForInvestorCount
	}
	return requiredForAllCount
}

// DocumentType is a catalog entry of uploadable document kinds
type DocumentType struct {
	DocTypeID             string
	Name                  string
	Description           string
	IsRequiredForAll      bool
	IsRequiredForInvestor bool
	IsOptional            bool
	SortOrder             int
}

// AppliesTo reports whether the type is shown for the property kind
func (t DocumentType) AppliesTo(kind property.Kind) bool {
	if t.IsRequiredForAll || t.IsOptional {
		return true
	}
	return t.IsRequiredForInvestor && kind == property.KindInvestment
}

// RequiredFor reports whether the type must be uploaded for the property kind
func (t DocumentType) RequiredFor(kind property.Kind) bool {
	return t.IsRequiredForAll || (t.IsRequiredForInvestor && kind == property.KindInvestment)
}

// FilterTypes returns the types shown for kind in catalog order
func FilterTypes(types []DocumentType, kind property.Kind) []DocumentType {
	out := make([]DocumentType, 0, len(types))
	for _, t := range types {
		if t.AppliesTo(kind) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// UploadStatus is the status of a stored upload
type UploadStatus string

const (
	UploadUploaded  UploadStatus = "uploaded"
	UploadValidated UploadStatus = "validated"
)

// DocumentUpload is one file uploaded into a batch
type DocumentUpload struct {
	shared.BaseEntity
	BatchID      uuid.UUID
	OwnerID      string
	DocTypeID    string
	FileName     string
	FilePath     string
	FileSize     int64
	ContentType  string
	UploadStatus UploadStatus
}

// NewDocumentUpload creates an upload record in the uploaded state
func NewDocumentUpload(batchID uuid.UUID, ownerID, docTypeID, fileName, filePath, contentType string, size int64) *DocumentUpload {
	return &DocumentUpload{
		BaseEntity:   shared.NewBaseEntity(),
		BatchID:      batchID,
		OwnerID:      ownerID,
		DocTypeID:    docTypeID,
		FileName:     fileName,
		FilePath:     filePath,
		FileSize:     size,
		ContentType:  contentType,
		UploadStatus: UploadUploaded,
	}
}

// Validate moves an upload from uploaded to validated
func (u *DocumentUpload) Validate() error {
	if u.UploadStatus == UploadValidated {
		return nil
	}
	if u.UploadStatus != UploadUploaded {
		return shared.NewDomainError("INVALID_STATE", "Only uploaded documents can be validated")
	}
	u.UploadStatus = UploadValidated
	u.Touch()
	return nil
}

// BuildChecklist joins the catalog with a batch's uploads. A validated upload
// wins over an uploaded one for the same type.
func BuildChecklist(types []DocumentType, uploads []DocumentUpload, kind property.Kind) []ChecklistItem {
	status := make(map[string]DocStatus, len(uploads))
	for _, u := range uploads {
		switch u.UploadStatus {
		case UploadValidated:
			status[u.DocTypeID] = DocValidated
		case UploadUploaded:
			if status[u.DocTypeID] != DocValidated {
				status[u.DocTypeID] = DocUploaded
			}
		}
	}

	shown := FilterTypes(types, kind)
	items := make([]ChecklistItem, 0, len(shown))
	for _, t := range shown {
		s, ok := status[t.DocTypeID]
		if !ok {
			s = DocMissing
		}
		items = append(items, ChecklistItem{
			DocTypeID: t.DocTypeID,
			Name:      t.Name,
			Required:  t.RequiredFor(kind),
			Status:    s,
		})
	}
	return items
}

// CountRequiredUploaded counts the distinct required types with an upload
func CountRequiredUploaded(types []DocumentType, uploads []DocumentUpload, kind property.Kind) int {
	required := make(map[string]bool)
	for _, t := range types {
		if t.RequiredFor(kind) {
			required[t.DocTypeID] = true
		}
	}
	seen := make(map[string]bool)
	for _, u := range uploads {
		if required[u.DocTypeID] {
			seen[u.DocTypeID] = true
		}
	}
	return len(seen)
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFileName strips directories and replaces characters that are not
// safe in an object key.
func SanitizeFileName(name string) string {
	name = path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "document"
	}
	return name
}

// ObjectKey is the storage key of an upload:
// imports/{owner}/{batch}/{unix_ms}_{filename}
func ObjectKey(ownerID string, batchID uuid.UUID, fileName string, at time.Time) string {
	if ownerID == "" {
		ownerID = shared.DemoOwnerID
	}
	return fmt.Sprintf("imports/%s/%s/%d_%s", ownerID, batchID, at.UnixMilli(), SanitizeFileName(fileName))
}
