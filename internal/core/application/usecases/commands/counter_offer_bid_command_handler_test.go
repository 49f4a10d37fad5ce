package commands_test

import (
	"testing"
	"time"

	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCounterOfferBidCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate, recipient := newTestOrder(t)
	bidID := placeTestBid(t, aggregate, recipient, 50000)

	command, err := commands.NewCounterOfferBidCommand(
		bidID, order.PartyCustomer, testMoney(t, 42000), "closer to the usual rate",
	)
	require.NoError(t, err)

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetByBidID", ctx, bidID).Return(aggregate, nil),
		orderRepo.On("Update", ctx, aggregate).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewCounterOfferBidCommandHandler(uowFactory, 10)
	err = handler.Handle(ctx, command)

	require.NoError(t, err)
	bid, err := recipient.BidByID(bidID)
	require.NoError(t, err)
	require.NotNil(t, bid.Counter())
	require.Equal(t, int64(42000), bid.Counter().Amount().Cents())
	require.Equal(t, order.PartyCustomer, bid.LastCounterBy())
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCounterOfferBidCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	uowFactory := &MockOrderUoWFactory{}
	handler := commands.NewCounterOfferBidCommandHandler(uowFactory, 10)

	err := handler.Handle(ctx, commands.CounterOfferBidCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCounterOfferBidCommandIsNotConstructed)
	uowFactory.AssertNotCalled(t, "Create")
}

func TestCounterOfferBidCommandHandler_Handle_OutOfTurn(t *testing.T) {
	ctx := t.Context()
	aggregate, recipient := newTestOrder(t)
	bidID := placeTestBid(t, aggregate, recipient, 50000)

	// The server's own proposal is on the table; only the customer may move.
	command, err := commands.NewCounterOfferBidCommand(
		bidID, order.PartyProcessServer, testMoney(t, 52000), "",
	)
	require.NoError(t, err)

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetByBidID", ctx, bidID).Return(aggregate, nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewCounterOfferBidCommandHandler(uowFactory, 10)
	err = handler.Handle(ctx, command)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrOutOfTurn)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCounterOfferBidCommandHandler_Handle_RoundLimit(t *testing.T) {
	ctx := t.Context()
	aggregate, recipient := newTestOrder(t)
	bidID := placeTestBid(t, aggregate, recipient, 50000)

	now := time.Now()
	require.NoError(t, aggregate.CounterBid(bidID, order.PartyCustomer, testMoney(t, 42000), "", 2, now))
	require.NoError(t, aggregate.CounterBid(bidID, order.PartyProcessServer, testMoney(t, 46000), "", 2, now))

	command, err := commands.NewCounterOfferBidCommand(
		bidID, order.PartyCustomer, testMoney(t, 44000), "",
	)
	require.NoError(t, err)

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetByBidID", ctx, bidID).Return(aggregate, nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewCounterOfferBidCommandHandler(uowFactory, 2)
	err = handler.Handle(ctx, command)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
