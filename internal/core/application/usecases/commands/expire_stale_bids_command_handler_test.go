package commands_test

import (
	"errors"
	"testing"
	"time"

	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireStaleBidsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	staleOrder, staleRecipient := newTestOrder(t)
	staleBid := kernel.NewUUID()
	_, err := staleOrder.PlaceBid(
		staleRecipient.ID(), staleBid, kernel.NewUUID(),
		testMoney(t, 30000), "", time.Now().Add(-72*time.Hour),
	)
	require.NoError(t, err)

	freshOrder, freshRecipient := newTestOrder(t)
	placeTestBid(t, freshOrder, freshRecipient, 35000)

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetAllWithStalePendingBids", ctx, mock.Anything).
			Return([]*order.Order{staleOrder, freshOrder}, nil),
		orderRepo.On("Update", ctx, staleOrder).Return(nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewExpireStaleBidsCommandHandler(uowFactory, 48*time.Hour)
	err = handler.Handle(ctx, commands.NewExpireStaleBidsCommand())

	require.NoError(t, err)

	expired, err := staleRecipient.BidByID(staleBid)
	require.NoError(t, err)
	require.Equal(t, order.BidRejected, expired.Status())

	// The fresh order had nothing to expire and was not written back.
	orderRepo.AssertNotCalled(t, "Update", ctx, freshOrder)
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestExpireStaleBidsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()

	uowFactory := &MockOrderUoWFactory{}
	handler := commands.NewExpireStaleBidsCommandHandler(uowFactory, 48*time.Hour)

	err := handler.Handle(ctx, commands.ExpireStaleBidsCommand{})

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrExpireStaleBidsCommandIsNotConstructed)
	uowFactory.AssertNotCalled(t, "Create")
}

func TestExpireStaleBidsCommandHandler_Handle_NothingStale(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetAllWithStalePendingBids", ctx, mock.Anything).
			Return([]*order.Order{}, nil),
		uow.On("Commit", ctx).Return(nil),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewExpireStaleBidsCommandHandler(uowFactory, 48*time.Hour)
	err := handler.Handle(ctx, commands.NewExpireStaleBidsCommand())

	require.NoError(t, err)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestExpireStaleBidsCommandHandler_Handle_ScanError(t *testing.T) {
	ctx := t.Context()

	orderRepo := &MockOrderRepository{}
	uow := &MockOrderUoW{}
	uowFactory := &MockOrderUoWFactory{}

	uowFactory.On("Create").Return(uow)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil),
		uow.On("OrderRepository").Return(orderRepo),
		orderRepo.On("GetAllWithStalePendingBids", ctx, mock.Anything).
			Return(nil, errors.New("query failed")),
		uow.On("Rollback", ctx).Return(nil),
	)

	handler := commands.NewExpireStaleBidsCommandHandler(uowFactory, 48*time.Hour)
	err := handler.Handle(ctx, commands.NewExpireStaleBidsCommand())

	require.Error(t, err)
	require.Contains(t, err.Error(), "query failed")
	uow.AssertNotCalled(t, "Commit", ctx)
	uowFactory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}
