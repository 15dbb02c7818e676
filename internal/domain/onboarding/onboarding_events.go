package onboarding

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeProfile = "OnboardingProfile"
	AggregateTypeBatch   = "DocumentBatch"
)

// Event type constants
const (
	EventTypeOnboardingStarted   = "onboarding.started"
	EventTypeStepCompleted       = "onboarding.step_completed"
	EventTypeDocumentUploaded    = "onboarding.document_uploaded"
	EventTypeBatchCompleted      = "onboarding.batch_completed"
	EventTypeOnboardingCompleted = "onboarding.completed"
	EventTypeProfileSaved        = "onboarding.profile_saved"
)

// Loggable is implemented by events that are written to the onboarding event log
type Loggable interface {
	shared.DomainEvent
	LogEntry() *LogEntry
}

func baseEntry(e shared.DomainEvent, category EventCategory) *LogEntry {
	return &LogEntry{
		ID:            e.EventID(),
		OwnerID:       e.OwnerID(),
		EventType:     e.EventType(),
		EventCategory: category,
		Metadata:      map[string]any{},
		CreatedAt:     e.OccurredAt(),
	}
}

// OnboardingStartedEvent is raised when step 1 is first submitted
type OnboardingStartedEvent struct {
	shared.BaseDomainEvent
	UserType        UserType `json:"user_type"`
	TotalProperties int      `json:"total_properties"`
}

// NewOnboardingStartedEvent creates a new OnboardingStartedEvent
func NewOnboardingStartedEvent(p *Profile) *OnboardingStartedEvent {
	return &OnboardingStartedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOnboardingStarted, AggregateTypeProfile, p.ID, p.OwnerID),
		UserType:        p.UserType,
		TotalProperties: TotalProperties(p.Answers()),
	}
}

// LogEntry converts the event to an event log row
func (e *OnboardingStartedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategorySystem)
	entry.Status = string(StatusInProgress)
	entry.Metadata["user_type"] = string(e.UserType)
	entry.Metadata["total_properties"] = e.TotalProperties
	return entry
}

// StepCompletedEvent is raised whenever the wizard position changes
type StepCompletedEvent struct {
	shared.BaseDomainEvent
	Step          Step       `json:"step"`
	PropertyIndex int        `json:"property_index"`
	BatchID       *uuid.UUID `json:"batch_id,omitempty"`
}

// NewStepCompletedEvent creates a new StepCompletedEvent
func NewStepCompletedEvent(p *Profile) *StepCompletedEvent {
	return &StepCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStepCompleted, AggregateTypeProfile, p.ID, p.OwnerID),
		Step:            p.CurrentStep,
		PropertyIndex:   p.PropertyIndex,
		BatchID:         p.CurrentBatchID,
	}
}

// LogEntry converts the event to an event log row
func (e *StepCompletedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategoryUserAction)
	step := int(e.Step)
	entry.StepNumber = &step
	entry.BatchID = e.BatchID
	entry.Metadata["property_index"] = e.PropertyIndex
	return entry
}

// DocumentUploadedEvent is raised after an upload is stored
type DocumentUploadedEvent struct {
	shared.BaseDomainEvent
	BatchID   uuid.UUID `json:"batch_id"`
	UploadID  uuid.UUID `json:"upload_id"`
	DocTypeID string    `json:"doc_type_id"`
	FileName  string    `json:"file_name"`
	FileSize  int64     `json:"file_size"`
}

// NewDocumentUploadedEvent creates a new DocumentUploadedEvent
func NewDocumentUploadedEvent(b *DocumentBatch, u *DocumentUpload) *DocumentUploadedEvent {
	return &DocumentUploadedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeDocumentUploaded, AggregateTypeBatch, b.ID, b.OwnerID),
		BatchID:         b.ID,
		UploadID:        u.ID,
		DocTypeID:       u.DocTypeID,
		FileName:        u.FileName,
		FileSize:        u.FileSize,
	}
}

// LogEntry converts the event to an event log row
func (e *DocumentUploadedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategoryDocument)
	batchID, uploadID := e.BatchID, e.UploadID
	entry.BatchID = &batchID
	entry.UploadID = &uploadID
	entry.DocumentType = e.DocTypeID
	entry.Status = string(UploadUploaded)
	entry.Metadata["file_name"] = e.FileName
	entry.Metadata["file_size"] = e.FileSize
	return entry
}

// BatchCompletedEvent is raised when a document batch is closed
type BatchCompletedEvent struct {
	shared.BaseDomainEvent
	BatchID            uuid.UUID `json:"batch_id"`
	DocumentsCompleted int       `json:"documents_completed"`
}

// NewBatchCompletedEvent creates a new BatchCompletedEvent
func NewBatchCompletedEvent(b *DocumentBatch) *BatchCompletedEvent {
	return &BatchCompletedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeBatchCompleted, AggregateTypeBatch, b.ID, b.OwnerID),
		BatchID:            b.ID,
		DocumentsCompleted: b.DocumentsCompleted,
	}
}

// LogEntry converts the event to an event log row
func (e *BatchCompletedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategorySystem)
	batchID := e.BatchID
	entry.BatchID = &batchID
	entry.Status = string(BatchCompleted)
	entry.Metadata["documents_completed"] = e.DocumentsCompleted
	return entry
}

// OnboardingCompletedEvent is raised when the last batch is completed
type OnboardingCompletedEvent struct {
	shared.BaseDomainEvent
	TotalProperties int `json:"total_properties"`
}

// NewOnboardingCompletedEvent creates a new OnboardingCompletedEvent
func NewOnboardingCompletedEvent(p *Profile) *OnboardingCompletedEvent {
	return &OnboardingCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOnboardingCompleted, AggregateTypeProfile, p.ID, p.OwnerID),
		TotalProperties: TotalProperties(p.Answers()),
	}
}

// LogEntry converts the event to an event log row
func (e *OnboardingCompletedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategorySystem)
	step := int(StepDone)
	entry.StepNumber = &step
	entry.Status = string(StatusCompleted)
	entry.Metadata["total_properties"] = e.TotalProperties
	return entry
}

// ProfileSavedEvent is raised when the profile is saved directly
type ProfileSavedEvent struct {
	shared.BaseDomainEvent
	Status      Status `json:"status"`
	CurrentStep Step   `json:"current_step"`
}

// NewProfileSavedEvent creates a new ProfileSavedEvent
func NewProfileSavedEvent(p *Profile) *ProfileSavedEvent {
	return &ProfileSavedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeProfileSaved, AggregateTypeProfile, p.ID, p.OwnerID),
		Status:          p.Status,
		CurrentStep:     p.CurrentStep,
	}
}

// LogEntry converts the event to an event log row
func (e *ProfileSavedEvent) LogEntry() *LogEntry {
	entry := baseEntry(e, CategoryUserAction)
	step := int(e.CurrentStep)
	entry.StepNumber = &step
	entry.Status = string(e.Status)
	return entry
}
