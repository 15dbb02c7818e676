package shared

// BaseAggregateRoot is an entity that records domain events until the
// application service publishes them.
type BaseAggregateRoot struct {
	BaseEntity
	domainEvents []DomainEvent
}

func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{BaseEntity: NewBaseEntity()}
}

func (a *BaseAggregateRoot) AddDomainEvent(event DomainEvent) {
	a.domainEvents = append(a.domainEvents, event)
}

// GetDomainEvents returns the events recorded since the last clear.
func (a *BaseAggregateRoot) GetDomainEvents() []DomainEvent {
	return a.domainEvents
}

func (a *BaseAggregateRoot) ClearDomainEvents() {
	a.domainEvents = nil
}

// OwnedAggregateRoot is an aggregate root scoped to one owner.
// OwnerID is the subject issued by the external auth service, or DemoOwnerID
// for the shared demo data set.
type OwnedAggregateRoot struct {
	BaseAggregateRoot
	OwnerID string
}

func NewOwnedAggregateRoot(ownerID string) OwnedAggregateRoot {
	return OwnedAggregateRoot{BaseAggregateRoot: NewBaseAggregateRoot(), OwnerID: ownerID}
}

// BelongsTo reports whether the aggregate is owned by ownerID.
func (o *OwnedAggregateRoot) BelongsTo(ownerID string) bool {
	return o.OwnerID == ownerID
}

// DemoOwnerID scopes every record created through demo mode.
const DemoOwnerID = "demo"
