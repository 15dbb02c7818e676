package onboarding

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
)

// Wizard is the onboarding step machine. Apply is a pure function of its
// inputs apart from the batch id generator.
type Wizard struct {
	newBatchID func() uuid.UUID
}

// NewWizard creates a wizard. A nil generator uses random uuids.
func NewWizard(newBatchID func() uuid.UUID) *Wizard {
	if newBatchID == nil {
		newBatchID = uuid.New
	}
	return &Wizard{newBatchID: newBatchID}
}

func validationError(format string, args ...any) error {
	return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf(format, args...))
}

func stateError(format string, args ...any) error {
	return shared.NewDomainError("INVALID_STATE", fmt.Sprintf(format, args...))
}

// Apply runs one event through the wizard. On error the returned state is
// the input state unchanged and no effects are returned.
func (w *Wizard) Apply(state State, event Event) (State, []Effect, error) {
	if state.Step == StepDone {
		return state, nil, stateError("Onboarding is already completed")
	}

	var (
		next    State
		effects []Effect
		err     error
	)
	switch ev := event.(type) {
	case SubmitInfo:
		next, effects, err = w.submitInfo(state, ev)
	case SubmitSetup:
		next, effects, err = w.submitSetup(state, ev)
	case SubmitDocuments:
		next, effects, err = w.submitDocuments(state, ev)
	case Back:
		next, effects = w.back(state)
	default:
		err = validationError("Unknown wizard event %T", event)
	}
	if err != nil {
		return state, nil, err
	}
	return next, effects, nil
}

func requireStep(state State, step Step) error {
	if state.Step != step {
		return stateError("Wizard is at step %d, not step %d", state.Step, step)
	}
	return nil
}

func (w *Wizard) submitInfo(state State, ev SubmitInfo) (State, []Effect, error) {
	if err := requireStep(state, StepInfo); err != nil {
		return state, nil, err
	}
	a := ev.Answers
	a.FullName = strings.TrimSpace(a.FullName)
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	a.Phone = strings.TrimSpace(a.Phone)

	var missing []string
	if a.FullName == "" {
		missing = append(missing, "full name")
	}
	if a.Email == "" {
		missing = append(missing, "email")
	}
	if a.Phone == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return state, nil, validationError("Please fill in: %s", strings.Join(missing, ", "))
	}
	if !a.UserType.IsValid() {
		return state, nil, validationError("Please select whether you are a homeowner or an investor")
	}
	if a.InvestmentPropertyCount < 0 {
		return state, nil, validationError("Investment property count cannot be negative")
	}
	if a.UserType == UserTypeInvestor && !a.HasPrimaryResidence && a.InvestmentPropertyCount == 0 {
		return state, nil, validationError("Investors must onboard a primary residence or at least one investment property")
	}
	if a.UserType == UserTypeHomeowner {
		a.HasPrimaryResidence = true
		a.InvestmentPropertyCount = 0
	}

	next := state.clone()
	next.Answers = a
	next.Step = StepSetup
	next.PropertyIndex = 1
	next.PerProperty = []PropertyAnswers{{}}

	return next, []Effect{
		RegisterUser{Answers: a},
		PersistProgress{Step: StepSetup, PropertyIndex: 1},
	}, nil
}

func (w *Wizard) submitSetup(state State, ev SubmitSetup) (State, []Effect, error) {
	if err := requireStep(state, StepSetup); err != nil {
		return state, nil, err
	}
	pa := ev.Property
	kind := state.CurrentKind()

	if pa.Refinanced == nil {
		return state, nil, validationError("Please tell us whether this property was refinanced")
	}
	if kind != property.KindInvestment {
		pa.OwnedByCompany = false
	}
	if !pa.OwnedByCompany {
		pa.CompanyChoice = ""
		pa.ExistingEntityID = nil
		pa.NewCompany = NewCompany{}
	} else {
		switch pa.CompanyChoice {
		case CompanyExisting:
			if pa.ExistingEntityID == nil || *pa.ExistingEntityID == uuid.Nil {
				return state, nil, validationError("Please select the company that owns this property")
			}
			pa.NewCompany = NewCompany{}
		case CompanyNew:
			c := NewCompany{
				Name:  strings.TrimSpace(pa.NewCompany.Name),
				Email: strings.TrimSpace(pa.NewCompany.Email),
				Phone: strings.TrimSpace(pa.NewCompany.Phone),
				TaxID: strings.TrimSpace(pa.NewCompany.TaxID),
			}
			if c.Name == "" || c.Email == "" || c.Phone == "" || c.TaxID == "" {
				return state, nil, validationError("Company name, email, phone and tax id are required")
			}
			pa.NewCompany = c
			pa.ExistingEntityID = nil
		default:
			return state, nil, validationError("Please choose an existing company or create a new one")
		}
	}

	pa.BatchID = w.newBatchID()
	pa.Checklist = nil

	next := state.clone()
	next.Step = StepDocuments
	next.setCurrent(pa)

	batchID := pa.BatchID
	effects := make([]Effect, 0, 3)
	if pa.OwnedByCompany && pa.CompanyChoice == CompanyNew {
		effects = append(effects, CreateCompany{Company: pa.NewCompany})
	}
	effects = append(effects,
		OpenBatch{
			BatchID:         batchID,
			PropertyIndex:   state.PropertyIndex,
			InvestmentIndex: InvestmentIndex(state.Answers, state.PropertyIndex),
			Kind:            kind,
			Property:        pa,
			DocsRequired:    RequiredDocumentCount(kind),
		},
		PersistProgress{Step: StepDocuments, PropertyIndex: state.PropertyIndex, BatchID: &batchID},
	)
	return next, effects, nil
}

func (w *Wizard) submitDocuments(state State, ev SubmitDocuments) (State, []Effect, error) {
	if err := requireStep(state, StepDocuments); err != nil {
		return state, nil, err
	}
	if missing := MissingRequired(ev.Checklist); len(missing) > 0 {
		return state, nil, validationError("Please upload all required documents: %s", strings.Join(missing, ", "))
	}

	current := state.Current()
	current.Checklist = append([]ChecklistItem(nil), ev.Checklist...)

	next := state.clone()
	next.setCurrent(current)
	effects := []Effect{CompleteBatch{BatchID: current.BatchID}}

	if state.PropertyIndex < state.TotalProperties() {
		next.Step = StepSetup
		next.PropertyIndex = state.PropertyIndex + 1
		next.setCurrent(PropertyAnswers{})
		effects = append(effects, PersistProgress{Step: StepSetup, PropertyIndex: next.PropertyIndex})
		return next, effects, nil
	}

	next.Step = StepDone
	return next, append(effects, CompleteOnboarding{}), nil
}

func (w *Wizard) back(state State) (State, []Effect) {
	next := state.clone()
	switch state.Step {
	case StepDocuments:
		next.Step = StepSetup
	case StepSetup:
		if state.PropertyIndex != 1 {
			return state, nil
		}
		next.Step = StepInfo
	default:
		return state, nil
	}
	return next, []Effect{PersistProgress{Step: next.Step, PropertyIndex: next.PropertyIndex}}
}

// MissingRequired returns the ids of required checklist items that are
// neither uploaded nor validated. Optional items are ignored.
func MissingRequired(items []ChecklistItem) []string {
	var missing []string
	for _, it := range items {
		if !it.Required {
			continue
		}
		if it.Status != DocUploaded && it.Status != DocValidated {
			missing = append(missing, it.DocTypeID)
		}
	}
	return missing
}
