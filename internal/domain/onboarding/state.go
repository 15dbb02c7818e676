package onboarding

import (
	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
)

// Step is a wizard step
type Step int

const (
	StepInfo      Step = 1
	StepSetup     Step = 2
	StepDocuments Step = 3
	StepDone      Step = 4
)

// IsValid reports whether the step is one of the four wizard steps
func (s Step) IsValid() bool {
	return s >= StepInfo && s <= StepDone
}

// UserType tells homeowners from investors
type UserType string

const (
	UserTypeHomeowner UserType = "HOMEOWNER"
	UserTypeInvestor  UserType = "INVESTOR"
)

// IsValid reports whether the user type is known
func (u UserType) IsValid() bool {
	return u == UserTypeHomeowner || u == UserTypeInvestor
}

// Answers are the step 1 answers, kept for the whole wizard
type Answers struct {
	FullName                string
	Email                   string
	Phone                   string
	UserType                UserType
	HasPrimaryResidence     bool
	InvestmentPropertyCount int
}

// TotalProperties is the number of properties the wizard iterates over
func TotalProperties(a Answers) int {
	if a.UserType != UserTypeInvestor {
		return 1
	}
	total := a.InvestmentPropertyCount
	if a.HasPrimaryResidence {
		total++
	}
	return total
}

// onboardsPrimary reports whether the first iteration is the primary residence
func onboardsPrimary(a Answers) bool {
	return a.UserType != UserTypeInvestor || a.HasPrimaryResidence
}

// PropertyKindAt returns the kind of the property at the 1-based index
func PropertyKindAt(a Answers, index int) property.Kind {
	if index == 1 && onboardsPrimary(a) {
		return property.KindPrimary
	}
	return property.KindInvestment
}

// InvestmentIndex returns the 1-based investment ordinal of the property at
// index, or 0 for the primary residence.
func InvestmentIndex(a Answers, index int) int {
	if PropertyKindAt(a, index) == property.KindPrimary {
		return 0
	}
	if onboardsPrimary(a) {
		return index - 1
	}
	return index
}

// CompanyChoice selects an existing legal entity or a new one
type CompanyChoice string

const (
	CompanyExisting CompanyChoice = "existing"
	CompanyNew      CompanyChoice = "new"
)

// NewCompany holds the details of a company created during setup
type NewCompany struct {
	Name  string
	Email string
	Phone string
	TaxID string
}

// DocStatus is the status of a document type within a batch
type DocStatus string

const (
	DocMissing   DocStatus = "missing"
	DocUploaded  DocStatus = "uploaded"
	DocValidated DocStatus = "validated"
)

// ChecklistItem is one document type on the step 3 checklist
type ChecklistItem struct {
	DocTypeID string
	Name      string
	Required  bool
	Status    DocStatus
}

// PropertyAnswers are the answers for one property iteration
type PropertyAnswers struct {
	Refinanced       *bool
	OwnedByCompany   bool
	CompanyChoice    CompanyChoice
	ExistingEntityID *uuid.UUID
	NewCompany       NewCompany
	Address          valueobject.PostalAddress
	BatchID          uuid.UUID
	Checklist        []ChecklistItem
}

// State is the whole wizard state
type State struct {
	Step          Step
	Answers       Answers
	PropertyIndex int
	PerProperty   []PropertyAnswers
}

// InitialState is the state of a wizard that has not been started
func InitialState() State {
	return State{Step: StepInfo, PropertyIndex: 1}
}

// TotalProperties is the number of property iterations for the state's answers
func (s State) TotalProperties() int {
	return TotalProperties(s.Answers)
}

// CurrentKind is the kind of the property being configured
func (s State) CurrentKind() property.Kind {
	return PropertyKindAt(s.Answers, s.PropertyIndex)
}

// Current returns the answers of the current iteration, or the zero value
// before the first setup.
func (s State) Current() PropertyAnswers {
	if s.PropertyIndex < 1 || s.PropertyIndex > len(s.PerProperty) {
		return PropertyAnswers{}
	}
	return s.PerProperty[s.PropertyIndex-1]
}

// clone deep-copies the per-property slice so the reducer never mutates its input
func (s State) clone() State {
	out := s
	out.PerProperty = make([]PropertyAnswers, len(s.PerProperty))
	for i, pa := range s.PerProperty {
		pa.Checklist = append([]ChecklistItem(nil), pa.Checklist...)
		out.PerProperty[i] = pa
	}
	return out
}

// setCurrent stores pa as the answers of the current iteration
func (s *State) setCurrent(pa PropertyAnswers) {
	for len(s.PerProperty) < s.PropertyIndex {
		s.PerProperty = append(s.PerProperty, PropertyAnswers{})
	}
	s.PerProperty[s.PropertyIndex-1] = pa
}
