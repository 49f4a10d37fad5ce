package commands_test

import (
	"context"
	"testing"
	"time"

	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/domain/model/contact"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/core/domain/model/serverprofile"
	"procserve/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByBidID(ctx context.Context, bidID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, bidID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByRecipientID(ctx context.Context, recipientID kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllWithStalePendingBids(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockContactRepository struct{ mock.Mock }

func (m *MockContactRepository) Add(ctx context.Context, entry *contact.ContactEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockContactRepository) Update(ctx context.Context, entry *contact.ContactEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockContactRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.ContactEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactEntry), args.Error(1)
}

func (m *MockContactRepository) GetByOwnerAndServer(ctx context.Context, ownerID, serverID kernel.UUID) (*contact.ContactEntry, error) {
	args := m.Called(ctx, ownerID, serverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactEntry), args.Error(1)
}

func (m *MockContactRepository) GetByOwnerAndEmail(ctx context.Context, ownerID kernel.UUID, email string) (*contact.ContactEntry, error) {
	args := m.Called(ctx, ownerID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactEntry), args.Error(1)
}

func (m *MockContactRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*contact.ContactEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contact.ContactEntry), args.Error(1)
}

func (m *MockContactRepository) GetAllInvitedByEmail(ctx context.Context, email string) ([]*contact.ContactEntry, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contact.ContactEntry), args.Error(1)
}

type MockServerProfileRepository struct{ mock.Mock }

func (m *MockServerProfileRepository) Add(ctx context.Context, profile *serverprofile.ProcessServerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockServerProfileRepository) Update(ctx context.Context, profile *serverprofile.ProcessServerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockServerProfileRepository) Get(ctx context.Context, id kernel.UUID) (*serverprofile.ProcessServerProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serverprofile.ProcessServerProfile), args.Error(1)
}

func (m *MockServerProfileRepository) GetByEmail(ctx context.Context, email string) (*serverprofile.ProcessServerProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serverprofile.ProcessServerProfile), args.Error(1)
}

func (m *MockServerProfileRepository) GetAllGloballyVisible(ctx context.Context, filter ports.GlobalServerFilter) ([]*serverprofile.ProcessServerProfile, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serverprofile.ProcessServerProfile), args.Error(1)
}

type MockDirectoryUoW struct{ mock.Mock }

func (m *MockDirectoryUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDirectoryUoW) ContactRepository() ports.ContactRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactRepository)
}

func (m *MockDirectoryUoW) ServerProfileRepository() ports.ServerProfileRepository {
	args := m.Called()
	return args.Get(0).(ports.ServerProfileRepository)
}

type MockDirectoryUoWFactory struct{ mock.Mock }

func (m *MockDirectoryUoWFactory) Create() commands.DirectoryUoW {
	args := m.Called()
	return args.Get(0).(commands.DirectoryUoW)
}

// newTestOrder builds an order with one open bidding-market recipient and
// returns both.
func newTestOrder(t *testing.T) (*order.Order, *order.Recipient) {
	t.Helper()

	address, err := kernel.NewAddress("742 Evergreen Terrace", "Springfield", "IL", "62704")
	require.NoError(t, err)

	recipient, err := order.NewRecipient(
		kernel.NewUUID(), 1, "John Doe", address,
		order.BiddingMarket, order.ServiceOptions{}, 3, nil,
	)
	require.NoError(t, err)

	document, err := order.NewDocumentMeta("Summons and Complaint", "2026-CV-01482")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		time.Now().Add(14*24*time.Hour), document, []*order.Recipient{recipient},
	)
	require.NoError(t, err)

	return aggregate, recipient
}

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	money, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return money
}

// placeTestBid appends a pending bid to the recipient through the aggregate.
func placeTestBid(t *testing.T, aggregate *order.Order, recipient *order.Recipient, cents int64) kernel.UUID {
	t.Helper()
	bidID := kernel.NewUUID()
	_, err := aggregate.PlaceBid(recipient.ID(), bidID, kernel.NewUUID(), testMoney(t, cents), "", time.Now())
	require.NoError(t, err)
	return bidID
}
