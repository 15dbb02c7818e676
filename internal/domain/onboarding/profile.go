package onboarding

import (
	"strings"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/shared"
)

// Status is the onboarding status of a profile
type Status string

const (
	StatusIncomplete Status = "INCOMPLETE"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

// IsValid reports whether the status is known
func (s Status) IsValid() bool {
	return s == StatusIncomplete || s == StatusInProgress || s == StatusCompleted
}

// Profile is the per-owner onboarding progress record
type Profile struct {
	shared.OwnedAggregateRoot
	OwnerName               string
	OwnerEmail              string
	OwnerPhone              string
	UserType                UserType
	HasPrimaryResidence     bool
	InvestmentPropertyCount int
	Status                  Status
	CurrentStep             Step
	PropertyIndex           int
	CurrentBatchID          *uuid.UUID
}

// NewProfile creates a profile with the defaults of a fresh owner
func NewProfile(ownerID string) *Profile {
	return &Profile{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		UserType:           UserTypeHomeowner,
		Status:             StatusIncomplete,
		CurrentStep:        StepInfo,
		PropertyIndex:      1,
	}
}

// DemoProfile is returned for the demo scope when no profile is stored
func DemoProfile() *Profile {
	p := NewProfile(shared.DemoOwnerID)
	p.OwnerName = "Demo User"
	p.OwnerEmail = "demo@owneriq.com"
	p.OwnerPhone = "555-0123"
	return p
}

// ProfileUpdate carries the fields of a profile save
type ProfileUpdate struct {
	OwnerName               string
	OwnerEmail              string
	OwnerPhone              string
	UserType                UserType
	HasPrimaryResidence     bool
	InvestmentPropertyCount int
	Status                  Status
	CurrentStep             Step
}

// Update applies a profile save. Status defaults to IN_PROGRESS and step to 1.
func (p *Profile) Update(u ProfileUpdate) error {
	if u.UserType == "" {
		u.UserType = UserTypeHomeowner
	}
	if !u.UserType.IsValid() {
		return shared.NewDomainError("INVALID_USER_TYPE", "User type must be HOMEOWNER or INVESTOR")
	}
	if u.Status == "" {
		u.Status = StatusInProgress
	}
	if !u.Status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown onboarding status: "+string(u.Status))
	}
	if u.CurrentStep == 0 {
		u.CurrentStep = StepInfo
	}
	if !u.CurrentStep.IsValid() {
		return shared.NewDomainError("INVALID_STEP", "Current step must be between 1 and 4")
	}
	if u.InvestmentPropertyCount < 0 {
		u.InvestmentPropertyCount = 0
	}
	if u.CurrentStep != StepInfo || u.Status == StatusCompleted {
		answers := Answers{
			UserType:                u.UserType,
			HasPrimaryResidence:     u.HasPrimaryResidence,
			InvestmentPropertyCount: u.InvestmentPropertyCount,
		}
		if TotalProperties(answers) < 1 {
			return shared.NewDomainError("INVALID_PROPERTY_COUNT",
				"An investor without a primary residence needs at least one investment property")
		}
	}

	p.OwnerName = strings.TrimSpace(u.OwnerName)
	p.OwnerEmail = strings.ToLower(strings.TrimSpace(u.OwnerEmail))
	p.OwnerPhone = strings.TrimSpace(u.OwnerPhone)
	p.UserType = u.UserType
	p.HasPrimaryResidence = u.HasPrimaryResidence
	p.InvestmentPropertyCount = u.InvestmentPropertyCount
	p.Status = u.Status
	p.CurrentStep = u.CurrentStep
	p.Touch()
	return nil
}

// Answers returns the step 1 answers stored in the profile
func (p *Profile) Answers() Answers {
	return Answers{
		FullName:                p.OwnerName,
		Email:                   p.OwnerEmail,
		Phone:                   p.OwnerPhone,
		UserType:                p.UserType,
		HasPrimaryResidence:     p.HasPrimaryResidence,
		InvestmentPropertyCount: p.InvestmentPropertyCount,
	}
}

// ApplyAnswers stores step 1 answers and marks the wizard started
func (p *Profile) ApplyAnswers(a Answers) {
	p.OwnerName = a.FullName
	p.OwnerEmail = a.Email
	p.OwnerPhone = a.Phone
	p.UserType = a.UserType
	p.HasPrimaryResidence = a.HasPrimaryResidence
	p.InvestmentPropertyCount = a.InvestmentPropertyCount
	if p.Status == StatusIncomplete {
		p.Status = StatusInProgress
		p.AddDomainEvent(NewOnboardingStartedEvent(p))
	}
	p.Touch()
}

// Progress records the wizard position
func (p *Profile) Progress(step Step, propertyIndex int, batchID *uuid.UUID) {
	p.CurrentStep = step
	p.PropertyIndex = propertyIndex
	p.CurrentBatchID = batchID
	if p.Status == StatusIncomplete {
		p.Status = StatusInProgress
	}
	p.AddDomainEvent(NewStepCompletedEvent(p))
	p.Touch()
}

// Complete marks onboarding as completed
func (p *Profile) Complete() {
	if p.Status == StatusCompleted {
		return
	}
	p.Status = StatusCompleted
	p.CurrentStep = StepDone
	p.CurrentBatchID = nil
	p.AddDomainEvent(NewOnboardingCompletedEvent(p))
	p.Touch()
}

// Reset moves the profile back to the start of the wizard
func (p *Profile) Reset() {
	p.Status = StatusIncomplete
	p.CurrentStep = StepInfo
	p.PropertyIndex = 1
	p.CurrentBatchID = nil
	p.Touch()
}

// IsCompleted reports whether onboarding has finished
func (p *Profile) IsCompleted() bool {
	return p.Status == StatusCompleted
}
