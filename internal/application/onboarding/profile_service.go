package onboarding

import (
	"context"
	"errors"

	"github.com/owneriq/backend/internal/domain/onboarding"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// eventSource is an aggregate that buffers domain events
type eventSource interface {
	GetDomainEvents() []shared.DomainEvent
	ClearDomainEvents()
}

// collectEvents drains the events of the given aggregates in order
func collectEvents(sources ...eventSource) []shared.DomainEvent {
	var events []shared.DomainEvent
	for _, src := range sources {
		if src == nil {
			continue
		}
		events = append(events, src.GetDomainEvents()...)
		src.ClearDomainEvents()
	}
	return events
}

// publish sends events after commit. Errors are logged by the event bus, not propagated.
func publish(ctx context.Context, publisher shared.EventPublisher, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	_ = publisher.Publish(ctx, events...)
}

// ProfileService reads and writes the onboarding profile
type ProfileService struct {
	profiles       onboarding.ProfileRepository
	txScope        TransactionScope
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(profiles onboarding.ProfileRepository, txScope TransactionScope, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		txScope:  txScope,
		logger:   logger,
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ProfileService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// GetProfile returns the owner's profile, creating a fresh one on first
// access. The demo scope gets the demo profile without persisting it.
func (s *ProfileService) GetProfile(ctx context.Context, ownerID string) (*ProfileResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	if err == nil {
		resp := ToProfileResponse(profile)
		return &resp, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if ownerID == shared.DemoOwnerID {
		resp := ToProfileResponse(onboarding.DemoProfile())
		return &resp, nil
	}

	profile = onboarding.NewProfile(ownerID)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	s.logger.Info("Created onboarding profile", zap.String("owner_id", ownerID))
	resp := ToProfileResponse(profile)
	return &resp, nil
}

// SaveProfile upserts the profile from a form save
func (s *ProfileService) SaveProfile(ctx context.Context, ownerID string, req SaveProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profiles.FindByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		profile = onboarding.NewProfile(ownerID)
	case err != nil:
		return nil, err
	}

	if err := profile.Update(req.update()); err != nil {
		return nil, err
	}
	profile.AddDomainEvent(onboarding.NewProfileSavedEvent(profile))
	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}
	publish(ctx, s.eventPublisher, collectEvents(profile))

	resp := ToProfileResponse(profile)
	return &resp, nil
}

// Reset moves the wizard back to step 1 and reopens every batch. Uploaded
// documents and created properties are kept.
func (s *ProfileService) Reset(ctx context.Context, ownerID string) (*ProfileResponse, error) {
	var profile *onboarding.Profile
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		profile, err = repos.Profiles().FindByOwner(ctx, ownerID)
		switch {
		case errors.Is(err, shared.ErrNotFound):
			profile = onboarding.NewProfile(ownerID)
		case err != nil:
			return err
		}
		profile.Reset()
		if err := repos.Profiles().Save(ctx, profile); err != nil {
			return err
		}
		return repos.Batches().ResetForOwner(ctx, ownerID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reset onboarding", zap.String("owner_id", ownerID))
	resp := ToProfileResponse(profile)
	return &resp, nil
}
