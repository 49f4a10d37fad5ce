package commands

import (
	"context"
	"time"
)

// AcceptCounterCommandHandler resolves a bid at its countered amount. Runs
// under the same row lock as plain acceptance: it settles the recipient and
// rejects every competing bid.
type AcceptCounterCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptCounterCommandHandler creates a handler for counter acceptance.
func NewAcceptCounterCommandHandler(uowFactory OrderUoWFactory) AcceptCounterCommandHandler {
	return AcceptCounterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the counter acceptance command.
func (h AcceptCounterCommandHandler) Handle(ctx context.Context, command AcceptCounterCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetByBidID(ctx, command.BidID())
	if err != nil {
		return err
	}

	if err = aggregate.AcceptCounter(command.BidID(), command.By(), time.Now().UTC()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
