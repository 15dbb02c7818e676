package owner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/owneriq/backend/internal/domain/owner"
	"github.com/owneriq/backend/internal/domain/shared"
	"github.com/owneriq/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPersonRepository struct {
	mock.Mock
}

func (m *MockPersonRepository) FindByOwner(ctx context.Context, ownerID string) (*owner.Person, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*owner.Person), args.Error(1)
}

func (m *MockPersonRepository) Save(ctx context.Context, person *owner.Person) error {
	return m.Called(ctx, person).Error(0)
}

type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) FindByID(ctx context.Context, id uuid.UUID) (*owner.Address, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*owner.Address), args.Error(1)
}

func (m *MockAddressRepository) FindByPerson(ctx context.Context, personID uuid.UUID) ([]owner.Address, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).([]owner.Address), args.Error(1)
}

func (m *MockAddressRepository) CountByPerson(ctx context.Context, personID uuid.UUID) (int64, error) {
	args := m.Called(ctx, personID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAddressRepository) Save(ctx context.Context, address *owner.Address) error {
	return m.Called(ctx, address).Error(0)
}

func (m *MockAddressRepository) SetPrimary(ctx context.Context, personID, addressID uuid.UUID) error {
	return m.Called(ctx, personID, addressID).Error(0)
}

func (m *MockAddressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestService() (*PersonService, *MockPersonRepository, *MockAddressRepository) {
	persons := new(MockPersonRepository)
	addresses := new(MockAddressRepository)
	return NewPersonService(persons, addresses, zap.NewNop()), persons, addresses
}

func newTestPerson(t *testing.T) *owner.Person {
	t.Helper()
	p, err := owner.NewPerson("user-1", "Jane Doe", "jane@example.com", "555-0100")
	require.NoError(t, err)
	return p
}

func newTestAddress(t *testing.T, personID uuid.UUID, primary bool) *owner.Address {
	t.Helper()
	postal, err := valueobject.NewPostalAddress("1 Main St", "", "Austin", "tx", "78701", "")
	require.NoError(t, err)
	a, err := owner.NewAddress(personID, owner.AddressKindHome, postal)
	require.NoError(t, err)
	a.IsPrimary = primary
	return a
}

func TestEnsurePerson(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		repo := new(MockPersonRepository)
		repo.On("FindByOwner", ctx, "user-1").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*owner.Person")).Return(nil)

		p, err := EnsurePerson(ctx, repo, "user-1", "  Jane Doe ", "JANE@Example.com", "555")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", p.FullName)
		assert.Equal(t, "jane@example.com", p.PrimaryEmail)
		repo.AssertExpectations(t)
	})

	t.Run("updates existing", func(t *testing.T) {
		existing := newTestPerson(t)
		repo := new(MockPersonRepository)
		repo.On("FindByOwner", ctx, "user-1").Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)

		p, err := EnsurePerson(ctx, repo, "user-1", "Jane Smith", "jane@example.com", "555")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, p.ID)
		assert.Equal(t, "Jane Smith", p.FullName)
	})

	t.Run("invalid name is rejected before saving", func(t *testing.T) {
		repo := new(MockPersonRepository)
		repo.On("FindByOwner", ctx, "user-1").Return(nil, shared.ErrNotFound)

		_, err := EnsurePerson(ctx, repo, "user-1", "   ", "", "")
		require.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestPersonService_AddAddress(t *testing.T) {
	ctx := context.Background()
	req := AddressRequest{Line1: "1 Main St", City: "Austin", StateCode: "TX", PostalCode: "78701"}

	t.Run("first address becomes primary", func(t *testing.T) {
		svc, persons, addresses := newTestService()
		person := newTestPerson(t)
		persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
		addresses.On("CountByPerson", ctx, person.ID).Return(int64(0), nil)
		addresses.On("Save", ctx, mock.AnythingOfType("*owner.Address")).Return(nil)

		resp, err := svc.AddAddress(ctx, "user-1", req)
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
		assert.Equal(t, "home", resp.Kind)
		assert.Equal(t, "US", resp.CountryCode)
	})

	t.Run("later address stays secondary unless requested", func(t *testing.T) {
		svc, persons, addresses := newTestService()
		person := newTestPerson(t)
		persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
		addresses.On("CountByPerson", ctx, person.ID).Return(int64(2), nil)
		addresses.On("Save", ctx, mock.AnythingOfType("*owner.Address")).Return(nil)

		resp, err := svc.AddAddress(ctx, "user-1", req)
		require.NoError(t, err)
		assert.False(t, resp.IsPrimary)

		withPrimary := req
		withPrimary.IsPrimary = true
		resp, err = svc.AddAddress(ctx, "user-1", withPrimary)
		require.NoError(t, err)
		assert.True(t, resp.IsPrimary)
	})

	t.Run("no person yet", func(t *testing.T) {
		svc, persons, _ := newTestService()
		persons.On("FindByOwner", ctx, "user-1").Return(nil, shared.ErrNotFound)

		_, err := svc.AddAddress(ctx, "user-1", req)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPersonService_DeleteAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("primary is rejected", func(t *testing.T) {
		svc, persons, addresses := newTestService()
		person := newTestPerson(t)
		addr := newTestAddress(t, person.ID, true)
		persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
		addresses.On("FindByID", ctx, addr.ID).Return(addr, nil)

		err := svc.DeleteAddress(ctx, "user-1", addr.ID)
		assert.ErrorIs(t, err, shared.ErrPrimaryRecord)
		addresses.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("secondary is deleted", func(t *testing.T) {
		svc, persons, addresses := newTestService()
		person := newTestPerson(t)
		addr := newTestAddress(t, person.ID, false)
		persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
		addresses.On("FindByID", ctx, addr.ID).Return(addr, nil)
		addresses.On("Delete", ctx, addr.ID).Return(nil)

		require.NoError(t, svc.DeleteAddress(ctx, "user-1", addr.ID))
		addresses.AssertExpectations(t)
	})

	t.Run("another person's address is not found", func(t *testing.T) {
		svc, persons, addresses := newTestService()
		person := newTestPerson(t)
		addr := newTestAddress(t, uuid.New(), false)
		persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
		addresses.On("FindByID", ctx, addr.ID).Return(addr, nil)

		err := svc.DeleteAddress(ctx, "user-1", addr.ID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPersonService_SetPrimaryAddress(t *testing.T) {
	ctx := context.Background()
	svc, persons, addresses := newTestService()
	person := newTestPerson(t)
	addr := newTestAddress(t, person.ID, false)
	persons.On("FindByOwner", ctx, "user-1").Return(person, nil)
	addresses.On("FindByID", ctx, addr.ID).Return(addr, nil)
	addresses.On("SetPrimary", ctx, person.ID, addr.ID).Return(nil)

	resp, err := svc.SetPrimaryAddress(ctx, "user-1", addr.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsPrimary)
	addresses.AssertExpectations(t)
}

func TestPersonService_UpdateMe(t *testing.T) {
	ctx := context.Background()
	svc, persons, _ := newTestService()
	persons.On("FindByOwner", ctx, "user-1").Return(nil, shared.ErrNotFound)
	persons.On("Save", ctx, mock.AnythingOfType("*owner.Person")).Return(nil)

	resp, err := svc.UpdateMe(ctx, "user-1", UpdatePersonRequest{FullName: "Jane", PrimaryEmail: "J@X.COM"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.OwnerID)
	assert.Equal(t, "j@x.com", resp.PrimaryEmail)
}
