package onboarding

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// memStore is an in-memory implementation of every repository the
// onboarding services use. The transaction scope snapshots and restores it
// so a failing effect rolls back like the database would.
type memStore struct {
	mu         sync.Mutex
	profiles   map[string]onboarding.Profile
	batches    map[uuid.UUID]onboarding.DocumentBatch
	uploads    map[uuid.UUID]onboarding.DocumentUpload
	persons    map[string]owner.Person
	entities   map[uuid.UUID]ownership.LegalEntity
	properties map[uuid.UUID]property.Property
	logs       []onboarding.LogEntry
	types      []onboarding.DocumentType

	failBatchSave error
}

func newMemStore() *memStore {
	return &memStore{
		profiles:   map[string]onboarding.Profile{},
		batches:    map[uuid.UUID]onboarding.DocumentBatch{},
		uploads:    map[uuid.UUID]onboarding.DocumentUpload{},
		persons:    map[string]owner.Person{},
		entities:   map[uuid.UUID]ownership.LegalEntity{},
		properties: map[uuid.UUID]property.Property{},
		types:      testCatalog(),
	}
}

// testCatalog mirrors the seeded catalog: seven types required for every
// property, one for investment properties and one optional.
func testCatalog() []onboarding.DocumentType {
	types := make([]onboarding.DocumentType, 0, 9)
	for i := 1; i <= 7; i++ {
		types = append(types, onboarding.DocumentType{
			DocTypeID:        fmt.Sprintf("req_%d", i),
			Name:             fmt.Sprintf("Required %d", i),
			IsRequiredForAll: true,
			SortOrder:        i,
		})
	}
	types = append(types,
		onboarding.DocumentType{DocTypeID: "appraisal", Name: "Appraisal", IsRequiredForInvestor: true, SortOrder: 8},
		onboarding.DocumentType{DocTypeID: "hoa_docs", Name: "HOA Documents", IsOptional: true, SortOrder: 9},
	)
	return types
}

func requiredIDs(kind property.Kind) []string {
	var ids []string
	for _, t := range testCatalog() {
		if t.RequiredFor(kind) {
			ids = append(ids, t.DocTypeID)
		}
	}
	return ids
}

type memSnapshot struct {
	profiles   map[string]onboarding.Profile
	batches    map[uuid.UUID]onboarding.DocumentBatch
	uploads    map[uuid.UUID]onboarding.DocumentUpload
	persons    map[string]owner.Person
	entities   map[uuid.UUID]ownership.LegalEntity
	properties map[uuid.UUID]property.Property
}

func copyMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memSnapshot{
		profiles:   copyMap(s.profiles),
		batches:    copyMap(s.batches),
		uploads:    copyMap(s.uploads),
		persons:    copyMap(s.persons),
		entities:   copyMap(s.entities),
		properties: copyMap(s.properties),
	}
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = snap.profiles
	s.batches = snap.batches
	s.uploads = snap.uploads
	s.persons = snap.persons
	s.entities = snap.entities
	s.properties = snap.properties
}

// TransactionScope

type memTxScope struct{ store *memStore }

func (t memTxScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	snap := t.store.snapshot()
	if err := fn(memRepos{t.store}); err != nil {
		t.store.restore(snap)
		return err
	}
	return nil
}

type memRepos struct{ s *memStore }

func (r memRepos) Profiles() onboarding.ProfileRepository  { return memProfiles{r.s} }
func (r memRepos) Batches() onboarding.BatchRepository     { return memBatches{r.s} }
func (r memRepos) Uploads() onboarding.UploadRepository    { return memUploads{r.s} }
func (r memRepos) Persons() owner.PersonRepository         { return memPersons{r.s} }
func (r memRepos) Entities() ownership.EntityRepository    { return memEntities{r.s} }
func (r memRepos) Properties() property.PropertyRepository { return memProperties{r.s} }

// Profiles

type memProfiles struct{ s *memStore }

func (r memProfiles) FindByOwner(_ context.Context, ownerID string) (*onboarding.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[ownerID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	p.ClearDomainEvents()
	return &p, nil
}

func (r memProfiles) Save(_ context.Context, p *onboarding.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.profiles[p.OwnerID] = *p
	return nil
}

// Batches

type memBatches struct{ s *memStore }

func (r memBatches) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*onboarding.DocumentBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok || b.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	b.ClearDomainEvents()
	return &b, nil
}

func (r memBatches) FindAllForOwner(_ context.Context, ownerID string) ([]onboarding.DocumentBatch, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []onboarding.DocumentBatch
	for _, b := range r.s.batches {
		if b.OwnerID == ownerID {
			b.ClearDomainEvents()
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PropertyIndex < out[j].PropertyIndex })
	return out, nil
}

func (r memBatches) Save(_ context.Context, b *onboarding.DocumentBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failBatchSave != nil {
		return r.s.failBatchSave
	}
	r.s.batches[b.ID] = *b
	return nil
}

func (r memBatches) ResetForOwner(_ context.Context, ownerID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, b := range r.s.batches {
		if b.OwnerID == ownerID {
			b.Status = onboarding.BatchPending
			r.s.batches[id] = b
		}
	}
	return nil
}

func (r memBatches) CountOpenForOwner(_ context.Context, ownerID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, b := range r.s.batches {
		if b.OwnerID == ownerID && b.Status != onboarding.BatchCompleted {
			n++
		}
	}
	return n, nil
}

// Uploads

type memUploads struct{ s *memStore }

func (r memUploads) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*onboarding.DocumentUpload, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.uploads[id]
	if !ok || u.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	return &u, nil
}

func (r memUploads) FindByBatch(_ context.Context, batchID uuid.UUID) ([]onboarding.DocumentUpload, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []onboarding.DocumentUpload
	for _, u := range r.s.uploads {
		if u.BatchID == batchID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r memUploads) Save(_ context.Context, u *onboarding.DocumentUpload) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.uploads[u.ID] = *u
	return nil
}

// Document types

type memDocTypes struct{ s *memStore }

func (r memDocTypes) FindAll(context.Context) ([]onboarding.DocumentType, error) {
	return append([]onboarding.DocumentType(nil), r.s.types...), nil
}

func (r memDocTypes) FindByID(_ context.Context, id string) (*onboarding.DocumentType, error) {
	for _, t := range r.s.types {
		if t.DocTypeID == id {
			t := t
			return &t, nil
		}
	}
	return nil, shared.ErrNotFound
}

// Persons

type memPersons struct{ s *memStore }

func (r memPersons) FindByOwner(_ context.Context, ownerID string) (*owner.Person, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.persons[ownerID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r memPersons) Save(_ context.Context, p *owner.Person) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.persons[p.OwnerID] = *p
	return nil
}

// Entities

type memEntities struct{ s *memStore }

func (r memEntities) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*ownership.LegalEntity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	e, ok := r.s.entities[id]
	if !ok || e.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	return &e, nil
}

func (r memEntities) FindAllForOwner(_ context.Context, ownerID string) ([]ownership.LegalEntity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []ownership.LegalEntity
	for _, e := range r.s.entities {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r memEntities) Save(_ context.Context, e *ownership.LegalEntity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.entities[e.ID] = *e
	return nil
}

func (r memEntities) DeleteForOwner(_ context.Context, ownerID string, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.entities, id)
	return nil
}

// Properties

type memProperties struct{ s *memStore }

func (r memProperties) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*property.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.properties[id]
	if !ok || p.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	return &p, nil
}

func (r memProperties) FindAllForOwner(_ context.Context, ownerID string, _ shared.Filter) ([]property.Property, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []property.Property
	for _, p := range r.s.properties {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r memProperties) CountForOwner(ctx context.Context, ownerID string, f shared.Filter) (int64, error) {
	all, _ := r.FindAllForOwner(ctx, ownerID, f)
	return int64(len(all)), nil
}

func (r memProperties) CountByEntity(_ context.Context, ownerID string, entityID uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.properties {
		if p.OwnerID == ownerID && p.EntityID != nil && *p.EntityID == entityID {
			n++
		}
	}
	return n, nil
}

func (r memProperties) Save(_ context.Context, p *property.Property) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.properties[p.ID] = *p
	return nil
}

func (r memProperties) DeleteForOwner(_ context.Context, _ string, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.properties, id)
	return nil
}

// Event log

type memEventLog struct {
	s   *memStore
	err error
}

func (r *memEventLog) Append(_ context.Context, e *onboarding.LogEntry) error {
	if r.err != nil {
		return r.err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.logs = append(r.s.logs, *e)
	return nil
}

func (r *memEventLog) FindRecent(_ context.Context, ownerID string, limit int) ([]onboarding.LogEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []onboarding.LogEntry
	for i := len(r.s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if r.s.logs[i].OwnerID == ownerID {
			out = append(out, r.s.logs[i])
		}
	}
	return out, nil
}

// recordingPublisher captures published events

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

// MockObjectStorage is a mock implementation of ObjectStorage
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, expiresIn)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockObjectStorage) DeleteObject(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) ObjectExists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// countingMetrics records the metric calls the services make

type countingMetrics struct {
	mu          sync.Mutex
	wizard      map[string]int
	uploads     int
	batches     int
	completions int
	idempotency map[string]int
	logFailures int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{wizard: map[string]int{}, idempotency: map[string]int{}}
}

func (m *countingMetrics) WizardEvent(event string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.wizard[event+":"+outcome]++
}

func (m *countingMetrics) Upload(string, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads++
}

func (m *countingMetrics) BatchCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.batches++
}

func (m *countingMetrics) OnboardingCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completions++
}

func (m *countingMetrics) Idempotency(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.idempotency[result]++
}

func (m *countingMetrics) EventLogFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logFailures++
}
