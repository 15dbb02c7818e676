package owner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// PersonService manages the authenticated owner's person record and addresses
type PersonService struct {
	persons   owner.PersonRepository
	addresses owner.AddressRepository
	logger    *zap.Logger
}

// NewPersonService creates a new PersonService
func NewPersonService(persons owner.PersonRepository, addresses owner.AddressRepository, logger *zap.Logger) *PersonService {
	return &PersonService{
		persons:   persons,
		addresses: addresses,
		logger:    logger,
	}
}

// EnsurePerson creates the owner's person record, or updates its contact
// details when it already exists. Calling it twice with the same input is a no-op.
func EnsurePerson(ctx context.Context, repo owner.PersonRepository, ownerID, fullName, email, phone string) (*owner.Person, error) {
	person, err := repo.FindByOwner(ctx, ownerID)
	switch {
	case errors.Is(err, shared.ErrNotFound):
		person, err = owner.NewPerson(ownerID, fullName, email, phone)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if err := person.Update(fullName, email, phone); err != nil {
			return nil, err
		}
	}
	if err := repo.Save(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// GetMe returns the owner's person record
func (s *PersonService) GetMe(ctx context.Context, ownerID string) (*PersonResponse, error) {
	person, err := s.persons.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	resp := ToPersonResponse(person)
	return &resp, nil
}

// UpdateMe upserts the owner's person record
func (s *PersonService) UpdateMe(ctx context.Context, ownerID string, req UpdatePersonRequest) (*PersonResponse, error) {
	person, err := EnsurePerson(ctx, s.persons, ownerID, req.FullName, req.PrimaryEmail, req.PrimaryPhone)
	if err != nil {
		return nil, err
	}
	resp := ToPersonResponse(person)
	return &resp, nil
}

// ListAddresses lists the owner's addresses, primary first
func (s *PersonService) ListAddresses(ctx context.Context, ownerID string) ([]AddressResponse, error) {
	person, err := s.persons.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	addresses, err := s.addresses.FindByPerson(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	out := make([]AddressResponse, len(addresses))
	for i := range addresses {
		out[i] = ToAddressResponse(&addresses[i])
	}
	return out, nil
}

// AddAddress adds an address. The first address of a person becomes primary;
// is_primary on a later one moves the flag to it.
func (s *PersonService) AddAddress(ctx context.Context, ownerID string, req AddressRequest) (*AddressResponse, error) {
	person, err := s.persons.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	postal, err := req.postal()
	if err != nil {
		return nil, err
	}
	address, err := owner.NewAddress(person.ID, owner.AddressKind(req.Kind), postal)
	if err != nil {
		return nil, err
	}

	count, err := s.addresses.CountByPerson(ctx, person.ID)
	if err != nil {
		return nil, err
	}
	if count == 0 || req.IsPrimary {
		address.MarkPrimary()
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}

	s.logger.Info("address added",
		zap.String("owner_id", ownerID),
		zap.String("address_id", address.ID.String()),
		zap.Bool("primary", address.IsPrimary),
	)
	resp := ToAddressResponse(address)
	return &resp, nil
}

// UpdateAddress replaces an address. is_primary=true moves the primary flag;
// false never clears it, use SetPrimaryAddress on another address instead.
func (s *PersonService) UpdateAddress(ctx context.Context, ownerID string, addressID uuid.UUID, req AddressRequest) (*AddressResponse, error) {
	_, address, err := s.ownedAddress(ctx, ownerID, addressID)
	if err != nil {
		return nil, err
	}
	postal, err := req.postal()
	if err != nil {
		return nil, err
	}
	if err := address.Update(owner.AddressKind(req.Kind), postal); err != nil {
		return nil, err
	}
	if req.IsPrimary {
		address.MarkPrimary()
	}
	if err := s.addresses.Save(ctx, address); err != nil {
		return nil, err
	}
	resp := ToAddressResponse(address)
	return &resp, nil
}

// DeleteAddress deletes a non-primary address
func (s *PersonService) DeleteAddress(ctx context.Context, ownerID string, addressID uuid.UUID) error {
	_, address, err := s.ownedAddress(ctx, ownerID, addressID)
	if err != nil {
		return err
	}
	if err := address.EnsureDeletable(); err != nil {
		return err
	}
	return s.addresses.Delete(ctx, address.ID)
}

// SetPrimaryAddress makes the address the person's only primary address
func (s *PersonService) SetPrimaryAddress(ctx context.Context, ownerID string, addressID uuid.UUID) (*AddressResponse, error) {
	person, address, err := s.ownedAddress(ctx, ownerID, addressID)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.SetPrimary(ctx, person.ID, address.ID); err != nil {
		return nil, err
	}
	address.MarkPrimary()
	resp := ToAddressResponse(address)
	return &resp, nil
}

// ownedAddress loads an address and checks it belongs to the owner's person.
// Someone else's address is reported as not found.
func (s *PersonService) ownedAddress(ctx context.Context, ownerID string, addressID uuid.UUID) (*owner.Person, *owner.Address, error) {
	person, err := s.persons.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}
	address, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		return nil, nil, err
	}
	if address.PersonID != person.ID {
		return nil, nil, shared.ErrNotFound
	}
	return person, address, nil
}
