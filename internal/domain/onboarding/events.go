package onboarding

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
)

// Event is an input to the wizard reducer
type Event interface {
	eventName() string
}

// SubmitInfo submits step 1
type SubmitInfo struct {
	Answers Answers
}

// SubmitSetup submits step 2 for the current property
type SubmitSetup struct {
	Property PropertyAnswers
}

// SubmitDocuments submits step 3 with the current checklist
type SubmitDocuments struct {
	Checklist []ChecklistItem
}

// Back goes back one step
type Back struct{}

func (SubmitInfo) eventName() string { return "submit_info" }
func (SubmitSetup) eventName() string { return "submit_setup" }
func (SubmitDocuments) eventName() string { return "submit_documents" }
func (Back) eventName() string { return "back" }

// EventName returns the wire name of a wizard event
func EventName(e Event) string {
	return e.eventName()
}

// Effect is a side effect requested by the reducer. The application layer
// executes effects in the order they are returned.
type Effect interface {
	effectName() string
}

// RegisterUser upserts the owner's person record
type RegisterUser struct {
	Answers Answers
}

// PersistProgress stores the wizard position in the profile
type PersistProgress struct {
	Step          Step
	PropertyIndex int
	BatchID       *uuid.UUID
}

// CreateCompany creates a legal entity for the current property
type CreateCompany struct {
	Company NewCompany
}

// OpenBatch creates the property and the document batch for one iteration
type OpenBatch struct {
	BatchID         uuid.UUID
	PropertyIndex   int
	InvestmentIndex int
	Kind            property.Kind
	Property        PropertyAnswers
	DocsRequired    int
}

// CompleteBatch marks a batch as completed
type CompleteBatch struct {
	BatchID uuid.UUID
}

// CompleteOnboarding marks the profile as completed
type CompleteOnboarding struct{}

func (RegisterUser) effectName() string { return "register_user" }
func (PersistProgress) effectName() string { return "persist_progress" }
func (CreateCompany) effectName() string { return "create_company" }
func (OpenBatch) effectName() string { return "open_batch" }
func (CompleteBatch) effectName() string { return "complete_batch" }
func (CompleteOnboarding) effectName() string { return "complete_onboarding" }

// EffectName returns the name of an effect, used in logs
func EffectName(e Effect) string {
	return e.effectName()
}
