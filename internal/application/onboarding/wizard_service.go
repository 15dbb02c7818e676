package onboarding

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	ownerapp "github.com/owneriq/backend/internal/application/owner"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// WizardService drives the onboarding wizard. The step machine decides the
// transition and the effects; this service loads the state and runs the
// effects in one transaction.
type WizardService struct {
	wizard         *onboarding.Wizard
	profiles       onboarding.ProfileRepository
	batches        onboarding.BatchRepository
	uploads        onboarding.UploadRepository
	docTypes       onboarding.DocumentTypeRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	metrics        Metrics
	logger         *zap.Logger
}

// NewWizardService creates a new WizardService
func NewWizardService(
	profiles onboarding.ProfileRepository,
	batches onboarding.BatchRepository,
	uploads onboarding.UploadRepository,
	docTypes onboarding.DocumentTypeRepository,
	txScope TransactionScope,
	logger *zap.Logger,
) *WizardService {
	return &WizardService{
		wizard:   onboarding.NewWizard(nil),
		profiles: profiles,
		batches:  batches,
		uploads:  uploads,
		docTypes: docTypes,
		txScope:  txScope,
		metrics:  noopMetrics{},
		logger:   logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *WizardService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetMetrics sets the metrics sink
func (s *WizardService) SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	s.metrics = m
}

// SetBatchIDGenerator replaces the batch id generator. Used by tests.
func (s *WizardService) SetBatchIDGenerator(gen func() uuid.UUID) {
	s.wizard = onboarding.NewWizard(gen)
}

// GetWizard returns the wizard position restored from the stored profile
func (s *WizardService) GetWizard(ctx context.Context, ownerID string) (*WizardResponse, error) {
	profile, state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := toWizardResponse(state, profile.Status)
	return &resp, nil
}

// SubmitInfo submits step 1
func (s *WizardService) SubmitInfo(ctx context.Context, ownerID string, req SubmitInfoRequest) (*WizardResponse, error) {
	return s.Advance(ctx, ownerID, req.event())
}

// SubmitSetup submits step 2 for the current property
func (s *WizardService) SubmitSetup(ctx context.Context, ownerID string, req SubmitSetupRequest) (*WizardResponse, error) {
	ev, err := req.event()
	if err != nil {
		return nil, err
	}
	return s.Advance(ctx, ownerID, ev)
}

// SubmitDocuments submits step 3. The checklist is rebuilt from the stored
// uploads, so the client cannot claim documents it never uploaded.
func (s *WizardService) SubmitDocuments(ctx context.Context, ownerID string) (*WizardResponse, error) {
	return s.Advance(ctx, ownerID, onboarding.SubmitDocuments{})
}

// Back moves the wizard one step back
func (s *WizardService) Back(ctx context.Context, ownerID string) (*WizardResponse, error) {
	return s.Advance(ctx, ownerID, onboarding.Back{})
}

// Advance applies one wizard event and commits its effects
func (s *WizardService) Advance(ctx context.Context, ownerID string, event onboarding.Event) (resp *WizardResponse, err error) {
	name := onboarding.EventName(event)
	ctx, span := telemetry.StartServiceSpan(ctx, "WizardService", "Advance",
		telemetry.WithAttribute(telemetry.SpanAttrOwnerID, ownerID),
		telemetry.WithAttribute(telemetry.SpanAttrEvent, name),
	)
	defer func() {
		s.metrics.WizardEvent(name, err)
		telemetry.End(span, err)
	}()

	_, state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if _, ok := event.(onboarding.SubmitDocuments); ok {
		event = onboarding.SubmitDocuments{Checklist: state.Current().Checklist}
	}

	next, effects, err := s.wizard.Apply(state, event)
	if err != nil {
		return nil, err
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrStep, int(next.Step))

	run := &effectRunner{ownerID: ownerID, docTypes: s.docTypes}
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		run.repos = repos
		profile, err := repos.Profiles().FindByOwner(ctx, ownerID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			profile = onboarding.NewProfile(ownerID)
		case err != nil:
			return err
		}
		run.profile = profile
		for _, effect := range effects {
			if err := run.apply(ctx, effect); err != nil {
				return fmt.Errorf("%s: %w", onboarding.EffectName(effect), err)
			}
		}
		return repos.Profiles().Save(ctx, profile)
	})
	if err != nil {
		return nil, unwrapDomain(err)
	}

	if run.batchID != nil {
		next = withBatchID(next, *run.batchID)
	}
	publish(ctx, s.eventPublisher, run.collect())
	if run.batchCompleted {
		s.metrics.BatchCompleted()
	}
	if run.onboardingCompleted {
		s.metrics.OnboardingCompleted()
	}

	s.logger.Info("Wizard advanced",
		zap.String("owner_id", ownerID),
		zap.String("event", name),
		zap.Int("step", int(next.Step)),
		zap.Int("property_index", next.PropertyIndex),
	)
	out := toWizardResponse(next, run.profile.Status)
	return &out, nil
}

// load restores the wizard state from the profile and the open batch
func (s *WizardService) load(ctx context.Context, ownerID string) (*onboarding.Profile, onboarding.State, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		profile = onboarding.NewProfile(ownerID)
	case err != nil:
		return nil, onboarding.State{}, err
	}

	var (
		batch     *onboarding.DocumentBatch
		checklist []onboarding.ChecklistItem
	)
	if profile.CurrentStep == onboarding.StepDocuments && profile.CurrentBatchID != nil && !profile.IsCompleted() {
		batch, err = s.batches.FindByIDForOwner(ctx, ownerID, *profile.CurrentBatchID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			batch = nil
		case err != nil:
			return nil, onboarding.State{}, err
		default:
			checklist, err = batchChecklist(ctx, s.docTypes, s.uploads, batch)
			if err != nil {
				return nil, onboarding.State{}, err
			}
		}
	}
	return profile, onboarding.Restore(profile, batch, checklist), nil
}

// batchChecklist joins the catalog with the batch's uploads
func batchChecklist(ctx context.Context, docTypes onboarding.DocumentTypeRepository, uploads onboarding.UploadRepository, batch *onboarding.DocumentBatch) ([]onboarding.ChecklistItem, error) {
	types, err := docTypes.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stored, err := uploads.FindByBatch(ctx, batch.ID)
	if err != nil {
		return nil, err
	}
	return onboarding.BuildChecklist(types, stored, batch.PropertyType), nil
}

// withBatchID points the current iteration at the batch that was actually opened
func withBatchID(state onboarding.State, batchID uuid.UUID) onboarding.State {
	if state.PropertyIndex < 1 || state.PropertyIndex > len(state.PerProperty) {
		return state
	}
	current := state.PerProperty[state.PropertyIndex-1]
	if current.BatchID == uuid.Nil {
		return state
	}
	current.BatchID = batchID
	state.PerProperty[state.PropertyIndex-1] = current
	return state
}

// unwrapDomain returns the domain error inside an effect error so the
// HTTP layer can map its code
func unwrapDomain(err error) error {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return de
	}
	return err
}

// effectRunner executes the effects of one wizard step against the
// transactional repositories
type effectRunner struct {
	ownerID  string
	repos    TransactionalRepositories
	docTypes onboarding.DocumentTypeRepository
	profile  *onboarding.Profile

	createdEntityID *uuid.UUID
	batchID         *uuid.UUID
	batches         []*onboarding.DocumentBatch

	batchCompleted      bool
	onboardingCompleted bool
}

func (r *effectRunner) apply(ctx context.Context, effect onboarding.Effect) error {
	switch e := effect.(type) {
	case onboarding.RegisterUser:
		if _, err := ownerapp.EnsurePerson(ctx, r.repos.Persons(), r.ownerID, e.Answers.FullName, e.Answers.Email, e.Answers.Phone); err != nil {
			return err
		}
		r.profile.ApplyAnswers(e.Answers)
	case onboarding.CreateCompany:
		entity, err := ownership.NewLegalEntity(r.ownerID, ownership.Details{
			Name:  e.Company.Name,
			EIN:   e.Company.TaxID,
			Email: e.Company.Email,
			Phone: e.Company.Phone,
		})
		if err != nil {
			return err
		}
		if err := r.repos.Entities().Save(ctx, entity); err != nil {
			return err
		}
		id := entity.ID
		r.createdEntityID = &id
	case onboarding.OpenBatch:
		return r.openBatch(ctx, e)
	case onboarding.PersistProgress:
		batchID := e.BatchID
		if batchID != nil && r.batchID != nil {
			batchID = r.batchID
		}
		r.profile.Progress(e.Step, e.PropertyIndex, batchID)
	case onboarding.CompleteBatch:
		batch, err := r.repos.Batches().FindByIDForOwner(ctx, r.ownerID, e.BatchID)
		if err != nil {
			return err
		}
		if err := batch.Complete(); err != nil {
			return err
		}
		if err := r.repos.Batches().Save(ctx, batch); err != nil {
			return err
		}
		r.batches = append(r.batches, batch)
		r.batchCompleted = true
	case onboarding.CompleteOnboarding:
		r.profile.Complete()
		r.onboardingCompleted = true
	default:
		return shared.NewDomainError("INVALID_STATE", "Unknown wizard effect")
	}
	return nil
}

// openBatch creates the property and the document batch of one iteration.
// An unfinished batch left behind for the same iteration by Back is reused
// together with its property and uploads.
func (r *effectRunner) openBatch(ctx context.Context, e onboarding.OpenBatch) error {
	entityID, err := r.entityFor(ctx, e.Property)
	if err != nil {
		return err
	}

	existing, err := r.abandonedBatch(ctx, e.PropertyIndex)
	if err != nil {
		return err
	}

	var prop *property.Property
	if existing != nil && existing.PropertyID != nil {
		prop, err = r.repos.Properties().FindByIDForOwner(ctx, r.ownerID, *existing.PropertyID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}
	}
	if prop == nil {
		prop, err = property.NewProperty(r.ownerID, e.Kind, e.Property.Address)
		if err != nil {
			return err
		}
	}
	prop.Kind = e.Kind
	prop.Address = e.Property.Address
	prop.Nickname = nickname(e.Kind, e.InvestmentIndex)
	prop.AssignEntity(entityID)
	if err := r.repos.Properties().Save(ctx, prop); err != nil {
		return err
	}

	batch := existing
	if batch == nil {
		batch = onboarding.NewDocumentBatch(e.BatchID, r.ownerID, e.Kind, e.PropertyIndex)
	}
	propertyID := prop.ID
	batch.PropertyID = &propertyID
	batch.PropertyType = e.Kind
	batch.EntityID = entityID
	batch.Address = e.Property.Address
	batch.Refinanced = e.Property.Refinanced != nil && *e.Property.Refinanced
	batch.OwnedByCompany = e.Property.OwnedByCompany
	batch.DocumentsRequired = e.DocsRequired
	if existing != nil {
		if err := r.recount(ctx, batch); err != nil {
			return err
		}
	}
	if err := r.repos.Batches().Save(ctx, batch); err != nil {
		return err
	}

	id := batch.ID
	r.batchID = &id
	return nil
}

// entityFor resolves the legal entity of the property being set up
func (r *effectRunner) entityFor(ctx context.Context, pa onboarding.PropertyAnswers) (*uuid.UUID, error) {
	if !pa.OwnedByCompany {
		return nil, nil
	}
	if r.createdEntityID != nil {
		return r.createdEntityID, nil
	}
	if pa.ExistingEntityID == nil {
		return nil, nil
	}
	entity, err := r.repos.Entities().FindByIDForOwner(ctx, r.ownerID, *pa.ExistingEntityID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("INVALID_INPUT", "Selected company does not exist")
		}
		return nil, err
	}
	id := entity.ID
	return &id, nil
}

// abandonedBatch finds an unfinished batch of the same property index
func (r *effectRunner) abandonedBatch(ctx context.Context, propertyIndex int) (*onboarding.DocumentBatch, error) {
	batches, err := r.repos.Batches().FindAllForOwner(ctx, r.ownerID)
	if err != nil {
		return nil, err
	}
	for i := range batches {
		if batches[i].PropertyIndex == propertyIndex && batches[i].Status != onboarding.BatchCompleted {
			b := batches[i]
			return &b, nil
		}
	}
	return nil, nil
}

// recount refreshes the completed count after the property kind may have changed
func (r *effectRunner) recount(ctx context.Context, batch *onboarding.DocumentBatch) error {
	types, err := r.docTypes.FindAll(ctx)
	if err != nil {
		return err
	}
	stored, err := r.repos.Uploads().FindByBatch(ctx, batch.ID)
	if err != nil {
		return err
	}
	batch.DocumentsCompleted = onboarding.CountRequiredUploaded(types, stored, batch.PropertyType)
	return nil
}

func (r *effectRunner) collect() []shared.DomainEvent {
	sources := make([]eventSource, 0, len(r.batches)+1)
	for _, b := range r.batches {
		sources = append(sources, b)
	}
	if r.profile != nil {
		sources = append(sources, r.profile)
	}
	return collectEvents(sources...)
}

func nickname(kind property.Kind, investmentIndex int) string {
	if kind == property.KindPrimary {
		return "Primary Residence"
	}
	return fmt.Sprintf("Investment Property %d", investmentIndex)
}
