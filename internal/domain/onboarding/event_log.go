package onboarding

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// EventCategory groups onboarding log entries
type EventCategory string

const (
	CategoryUserAction EventCategory = "user_action"
	CategorySystem     EventCategory = "system"
	CategoryDocument   EventCategory = "document"
	CategoryError      EventCategory = "error"
)

// LogEntry is a row of the onboarding event log
type LogEntry struct {
	ID            uuid.UUID
	OwnerID       string
	BatchID       *uuid.UUID
	UploadID      *uuid.UUID
	EventType     string
	EventCategory EventCategory
	StepNumber    *int
	DocumentType  string
	Status        string
	Metadata      map[string]any
	ErrorMessage  string
	ErrorCode     string
	CreatedAt     time.Time
}

// NewLogEntry creates a log entry. Category defaults to user_action.
func NewLogEntry(ownerID, eventType string, category EventCategory) (*LogEntry, error) {
	eventType = strings.TrimSpace(eventType)
	if eventType == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "event_type is required")
	}
	if category == "" {
		category = CategoryUserAction
	}
	return &LogEntry{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		EventType:     eventType,
		EventCategory: category,
		Metadata:      map[string]any{},
		CreatedAt:     time.Now(),
	}, nil
}
