package property

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/ownership"
	"github.com/owneriq/backend/internal/domain/property"
	"github.com/owneriq/backend/internal/domain/shared"
)

type memProperties struct {
	items      map[uuid.UUID]*property.Property
	lastFilter shared.Filter
	// onSave, when set, rewrites the stored copy the way column types would
	onSave func(*property.Property)
}

func (m *memProperties) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*property.Property, error) {
	p, ok := m.items[id]
	if !ok || p.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (m *memProperties) FindAllForOwner(_ context.Context, ownerID string, filter shared.Filter) ([]property.Property, error) {
	m.lastFilter = filter
	var out []property.Property
	for _, p := range m.items {
		if p.OwnerID == ownerID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (m *memProperties) CountForOwner(ctx context.Context, ownerID string, filter shared.Filter) (int64, error) {
	all, _ := m.FindAllForOwner(ctx, ownerID, filter)
	return int64(len(all)), nil
}

func (m *memProperties) CountByEntity(_ context.Context, ownerID string, entityID uuid.UUID) (int64, error) {
	var n int64
	for _, p := range m.items {
		if p.OwnerID == ownerID && p.EntityID != nil && *p.EntityID == entityID {
			n++
		}
	}
	return n, nil
}

func (m *memProperties) Save(_ context.Context, p *property.Property) error {
	c := *p
	if m.onSave != nil {
		m.onSave(&c)
	}
	m.items[p.ID] = &c
	return nil
}

func (m *memProperties) DeleteForOwner(_ context.Context, ownerID string, id uuid.UUID) error {
	p, ok := m.items[id]
	if !ok || p.OwnerID != ownerID {
		return shared.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memEntities struct {
	items map[uuid.UUID]*ownership.LegalEntity
}

func (m *memEntities) FindByIDForOwner(_ context.Context, ownerID string, id uuid.UUID) (*ownership.LegalEntity, error) {
	e, ok := m.items[id]
	if !ok || e.OwnerID != ownerID {
		return nil, shared.ErrNotFound
	}
	return e, nil
}

func (m *memEntities) FindAllForOwner(context.Context, string) ([]ownership.LegalEntity, error) {
	return nil, nil
}

func (m *memEntities) Save(_ context.Context, e *ownership.LegalEntity) error {
	m.items[e.ID] = e
	return nil
}

func (m *memEntities) DeleteForOwner(_ context.Context, _ string, id uuid.UUID) error {
	delete(m.items, id)
	return nil
}

// memChildren is a generic in-memory store for property child records
type memChildren[T any] struct {
	items      map[uuid.UUID]*T
	id         func(*T) uuid.UUID
	propertyID func(*T) uuid.UUID
	onSave     func(*T)
}

func newMemChildren[T any](id, propertyID func(*T) uuid.UUID) *memChildren[T] {
	return &memChildren[T]{items: map[uuid.UUID]*T{}, id: id, propertyID: propertyID}
}

func (m *memChildren[T]) FindByID(_ context.Context, id uuid.UUID) (*T, error) {
	v, ok := m.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	c := *v
	return &c, nil
}

func (m *memChildren[T]) FindByProperty(_ context.Context, propertyID uuid.UUID) ([]T, error) {
	var out []T
	for _, v := range m.items {
		if m.propertyID(v) == propertyID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (m *memChildren[T]) Save(_ context.Context, v *T) error {
	c := *v
	if m.onSave != nil {
		m.onSave(&c)
	}
	m.items[m.id(v)] = &c
	return nil
}

func (m *memChildren[T]) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memPolicies struct {
	*memChildren[property.InsurancePolicy]
}

func (m memPolicies) FindPrimary(_ context.Context, propertyID uuid.UUID) (*property.InsurancePolicy, error) {
	for _, p := range m.items {
		if p.PropertyID == propertyID && p.IsPrimary {
			c := *p
			return &c, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (m memPolicies) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]property.InsurancePolicy, error) {
	out, _ := m.memChildren.FindByProperty(ctx, propertyID)
	sort.SliceStable(out, func(i, j int) bool { return out[i].IsPrimary && !out[j].IsPrimary })
	return out, nil
}

func (m memPolicies) Save(ctx context.Context, p *property.InsurancePolicy) error {
	if p.IsPrimary {
		m.clearPrimary(p.PropertyID, p.ID)
	}
	return m.memChildren.Save(ctx, p)
}

func (m memPolicies) SetPrimary(_ context.Context, propertyID, policyID uuid.UUID) error {
	p, ok := m.items[policyID]
	if !ok || p.PropertyID != propertyID {
		return shared.ErrNotFound
	}
	m.clearPrimary(propertyID, policyID)
	p.IsPrimary = true
	return nil
}

func (m memPolicies) clearPrimary(propertyID, keep uuid.UUID) {
	for id, other := range m.items {
		if other.PropertyID == propertyID && id != keep {
			other.IsPrimary = false
		}
	}
}

type testRepos struct {
	properties *memProperties
	entities   *memEntities
	utilities  *memChildren[property.Utility]
	appliances *memChildren[property.Appliance]
	policies   memPolicies
	documents  *memChildren[property.Document]
}

func newTestRepos() *testRepos {
	return &testRepos{
		properties: &memProperties{items: map[uuid.UUID]*property.Property{}},
		entities:   &memEntities{items: map[uuid.UUID]*ownership.LegalEntity{}},
		utilities: newMemChildren(
			func(u *property.Utility) uuid.UUID { return u.ID },
			func(u *property.Utility) uuid.UUID { return u.PropertyID }),
		appliances: newMemChildren(
			func(a *property.Appliance) uuid.UUID { return a.ID },
			func(a *property.Appliance) uuid.UUID { return a.PropertyID }),
		policies: memPolicies{newMemChildren(
			func(p *property.InsurancePolicy) uuid.UUID { return p.ID },
			func(p *property.InsurancePolicy) uuid.UUID { return p.PropertyID })},
		documents: newMemChildren(
			func(d *property.Document) uuid.UUID { return d.ID },
			func(d *property.Document) uuid.UUID { return d.PropertyID }),
	}
}

func (r *testRepos) repositories() Repositories {
	return Repositories{
		Properties: r.properties,
		Entities:   r.entities,
		Utilities:  r.utilities,
		Appliances: r.appliances,
		Policies:   r.policies,
		Documents:  r.documents,
	}
}
