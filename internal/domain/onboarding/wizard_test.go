package onboarding

import (
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() (func() uuid.UUID, *[]uuid.UUID) {
	var issued []uuid.UUID
	return func() uuid.UUID {
		id := uuid.New()
		issued = append(issued, id)
		return id
	}, &issued
}

func yes() *bool {
	b := true
	return &b
}

func no() *bool {
	b := false
	return &b
}

func completeChecklist() []ChecklistItem {
	return []ChecklistItem{
		{DocTypeID: "closing_alta", Required: true, Status: DocUploaded},
		{DocTypeID: "tax_bill", Required: true, Status: DocValidated},
		{DocTypeID: "appraisal", Required: false, Status: DocMissing},
	}
}

func investorAnswers(primary bool, count int) Answers {
	return Answers{
		FullName:                "Ana Investor",
		Email:                   "Ana@Example.com",
		Phone:                   "555-0100",
		UserType:                UserTypeInvestor,
		HasPrimaryResidence:     primary,
		InvestmentPropertyCount: count,
	}
}

func effectNames(effects []Effect) []string {
	names := make([]string, 0, len(effects))
	for _, e := range effects {
		names = append(names, EffectName(e))
	}
	return names
}

func TestTotalProperties(t *testing.T) {
	home := Answers{UserType: UserTypeHomeowner, InvestmentPropertyCount: 4}
	assert.Equal(t, 1, TotalProperties(home))
	assert.Equal(t, property.KindPrimary, PropertyKindAt(home, 1))

	inv := investorAnswers(false, 3)
	assert.Equal(t, 3, TotalProperties(inv))
	assert.Equal(t, property.KindInvestment, PropertyKindAt(inv, 1))
	assert.Equal(t, 1, InvestmentIndex(inv, 1))
	assert.Equal(t, 3, InvestmentIndex(inv, 3))

	mixed := investorAnswers(true, 1)
	assert.Equal(t, 2, TotalProperties(mixed))
	assert.Equal(t, property.KindPrimary, PropertyKindAt(mixed, 1))
	assert.Equal(t, 0, InvestmentIndex(mixed, 1))
	assert.Equal(t, property.KindInvestment, PropertyKindAt(mixed, 2))
	assert.Equal(t, 1, InvestmentIndex(mixed, 2))
}

func TestWizard_InvestorEndToEnd(t *testing.T) {
	gen, issued := sequentialIDs()
	w := NewWizard(gen)
	state := InitialState()

	state, effects, err := w.Apply(state, SubmitInfo{Answers: investorAnswers(true, 1)})
	require.NoError(t, err)
	assert.Equal(t, StepSetup, state.Step)
	assert.Equal(t, 2, state.TotalProperties())
	assert.Equal(t, property.KindPrimary, state.CurrentKind())
	assert.Equal(t, "ana@example.com", state.Answers.Email)
	assert.Equal(t, []string{"register_user", "persist_progress"}, effectNames(effects))

	state, effects, err = w.Apply(state, SubmitSetup{Property: PropertyAnswers{Refinanced: no()}})
	require.NoError(t, err)
	assert.Equal(t, StepDocuments, state.Step)
	require.Len(t, *issued, 1)
	assert.Equal(t, (*issued)[0], state.Current().BatchID)
	assert.Equal(t, []string{"open_batch", "persist_progress"}, effectNames(effects))
	open := effects[0].(OpenBatch)
	assert.Equal(t, property.KindPrimary, open.Kind)
	assert.Equal(t, 7, open.DocsRequired)

	state, effects, err = w.Apply(state, SubmitDocuments{Checklist: completeChecklist()})
	require.NoError(t, err)
	assert.Equal(t, StepSetup, state.Step)
	assert.Equal(t, 2, state.PropertyIndex)
	assert.Equal(t, property.KindInvestment, state.CurrentKind())
	assert.Equal(t, 1, InvestmentIndex(state.Answers, state.PropertyIndex))
	assert.Nil(t, state.Current().Refinanced)
	assert.Equal(t, []string{"complete_batch", "persist_progress"}, effectNames(effects))

	entityID := uuid.New()
	state, effects, err = w.Apply(state, SubmitSetup{Property: PropertyAnswers{
		Refinanced:       yes(),
		OwnedByCompany:   true,
		CompanyChoice:    CompanyExisting,
		ExistingEntityID: &entityID,
	}})
	require.NoError(t, err)
	assert.Equal(t, StepDocuments, state.Step)
	open = effects[0].(OpenBatch)
	assert.Equal(t, 8, open.DocsRequired)
	assert.Equal(t, 1, open.InvestmentIndex)

	state, effects, err = w.Apply(state, SubmitDocuments{Checklist: completeChecklist()})
	require.NoError(t, err)
	assert.Equal(t, StepDone, state.Step)
	assert.Equal(t, []string{"complete_batch", "complete_onboarding"}, effectNames(effects))
	assert.Equal(t, (*issued)[1], effects[0].(CompleteBatch).BatchID)

	_, _, err = w.Apply(state, Back{})
	assert.ErrorIs(t, err, shared.ErrInvalidState)
}

func TestWizard_InfoValidation(t *testing.T) {
	w := NewWizard(nil)

	t.Run("requires contact fields", func(t *testing.T) {
		state := InitialState()
		next, effects, err := w.Apply(state, SubmitInfo{Answers: Answers{FullName: "Ana", UserType: UserTypeHomeowner}})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Nil(t, effects)
		assert.Equal(t, state, next)
	})

	t.Run("investor needs at least one property", func(t *testing.T) {
		_, _, err := w.Apply(InitialState(), SubmitInfo{Answers: investorAnswers(false, 0)})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("user type is required", func(t *testing.T) {
		a := investorAnswers(true, 0)
		a.UserType = ""
		_, _, err := w.Apply(InitialState(), SubmitInfo{Answers: a})
		assert.Error(t, err)
	})

	t.Run("wrong step is rejected", func(t *testing.T) {
		_, _, err := w.Apply(InitialState(), SubmitDocuments{Checklist: completeChecklist()})
		assert.ErrorIs(t, err, shared.ErrInvalidState)
	})
}

func setupState(t *testing.T, w *Wizard, answers Answers) State {
	t.Helper()
	state, _, err := w.Apply(InitialState(), SubmitInfo{Answers: answers})
	require.NoError(t, err)
	return state
}

func TestWizard_SetupValidation(t *testing.T) {
	w := NewWizard(nil)
	investor := setupState(t, w, investorAnswers(false, 2))

	t.Run("refinance answer is mandatory", func(t *testing.T) {
		_, _, err := w.Apply(investor, SubmitSetup{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("company choice is mandatory when owned by a company", func(t *testing.T) {
		_, _, err := w.Apply(investor, SubmitSetup{Property: PropertyAnswers{Refinanced: no(), OwnedByCompany: true}})
		assert.Error(t, err)
	})

	t.Run("new company needs every field", func(t *testing.T) {
		_, _, err := w.Apply(investor, SubmitSetup{Property: PropertyAnswers{
			Refinanced:     no(),
			OwnedByCompany: true,
			CompanyChoice:  CompanyNew,
			NewCompany:     NewCompany{Name: "Acme LLC", Email: "a@acme.com", Phone: "555"},
		}})
		assert.Error(t, err)
	})

	t.Run("new company emits create effect first", func(t *testing.T) {
		_, effects, err := w.Apply(investor, SubmitSetup{Property: PropertyAnswers{
			Refinanced:     no(),
			OwnedByCompany: true,
			CompanyChoice:  CompanyNew,
			NewCompany:     NewCompany{Name: " Acme LLC ", Email: "a@acme.com", Phone: "555", TaxID: "12-3456789"},
		}})
		require.NoError(t, err)
		assert.Equal(t, []string{"create_company", "open_batch", "persist_progress"}, effectNames(effects))
		assert.Equal(t, "Acme LLC", effects[0].(CreateCompany).Company.Name)
	})

	t.Run("existing company needs an entity id", func(t *testing.T) {
		_, _, err := w.Apply(investor, SubmitSetup{Property: PropertyAnswers{
			Refinanced:     no(),
			OwnedByCompany: true,
			CompanyChoice:  CompanyExisting,
		}})
		assert.Error(t, err)
	})

	t.Run("company answers are ignored for a primary residence", func(t *testing.T) {
		home := setupState(t, w, Answers{FullName: "H", Email: "h@x.io", Phone: "1", UserType: UserTypeHomeowner})
		next, effects, err := w.Apply(home, SubmitSetup{Property: PropertyAnswers{Refinanced: yes(), OwnedByCompany: true}})
		require.NoError(t, err)
		assert.False(t, next.Current().OwnedByCompany)
		assert.Equal(t, []string{"open_batch", "persist_progress"}, effectNames(effects))
	})
}

func TestWizard_DocumentsValidation(t *testing.T) {
	w := NewWizard(nil)
	state := setupState(t, w, Answers{FullName: "H", Email: "h@x.io", Phone: "1", UserType: UserTypeHomeowner})
	state, _, err := w.Apply(state, SubmitSetup{Property: PropertyAnswers{Refinanced: no()}})
	require.NoError(t, err)

	t.Run("missing required document blocks", func(t *testing.T) {
		items := completeChecklist()
		items[0].Status = DocMissing
		next, _, err := w.Apply(state, SubmitDocuments{Checklist: items})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Contains(t, err.Error(), "closing_alta")
		assert.Equal(t, StepDocuments, next.Step)
	})

	t.Run("optional documents do not block", func(t *testing.T) {
		next, effects, err := w.Apply(state, SubmitDocuments{Checklist: completeChecklist()})
		require.NoError(t, err)
		assert.Equal(t, StepDone, next.Step)
		assert.Equal(t, []string{"complete_batch", "complete_onboarding"}, effectNames(effects))
	})
}

func TestWizard_Back(t *testing.T) {
	w := NewWizard(nil)
	state := setupState(t, w, investorAnswers(false, 2))

	t.Run("setup goes back to info on the first iteration", func(t *testing.T) {
		next, effects, err := w.Apply(state, Back{})
		require.NoError(t, err)
		assert.Equal(t, StepInfo, next.Step)
		assert.Len(t, effects, 1)
	})

	t.Run("documents goes back to setup", func(t *testing.T) {
		docs, _, err := w.Apply(state, SubmitSetup{Property: PropertyAnswers{Refinanced: no()}})
		require.NoError(t, err)
		next, _, err := w.Apply(docs, Back{})
		require.NoError(t, err)
		assert.Equal(t, StepSetup, next.Step)
		assert.Equal(t, 1, next.PropertyIndex)
	})

	t.Run("setup of a later iteration stays put", func(t *testing.T) {
		docs, _, err := w.Apply(state, SubmitSetup{Property: PropertyAnswers{Refinanced: no()}})
		require.NoError(t, err)
		second, _, err := w.Apply(docs, SubmitDocuments{Checklist: completeChecklist()})
		require.NoError(t, err)
		next, effects, err := w.Apply(second, Back{})
		require.NoError(t, err)
		assert.Equal(t, StepSetup, next.Step)
		assert.Equal(t, 2, next.PropertyIndex)
		assert.Empty(t, effects)
	})

	t.Run("info is a no-op", func(t *testing.T) {
		next, effects, err := w.Apply(InitialState(), Back{})
		require.NoError(t, err)
		assert.Equal(t, StepInfo, next.Step)
		assert.Empty(t, effects)
	})
}

func TestWizard_DoesNotMutateInput(t *testing.T) {
	w := NewWizard(nil)
	state := setupState(t, w, investorAnswers(false, 2))
	docs, _, err := w.Apply(state, SubmitSetup{Property: PropertyAnswers{Refinanced: no()}})
	require.NoError(t, err)

	_, _, err = w.Apply(docs, SubmitDocuments{Checklist: completeChecklist()})
	require.NoError(t, err)
	assert.Equal(t, StepDocuments, docs.Step)
	assert.Empty(t, docs.Current().Checklist)
}
