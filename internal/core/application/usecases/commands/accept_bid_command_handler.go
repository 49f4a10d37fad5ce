package commands

import (
	"context"
	"time"
)

// AcceptBidCommandHandler resolves a bid as accepted.
//
// The at-most-one-accepted invariant is a check-then-act on recipient state,
// so the order row is locked for the whole transaction: two customers
// accepting competing bids serialize, and the loser gets a conflict instead
// of a double assignment.
type AcceptBidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAcceptBidCommandHandler creates a handler for bid acceptance.
func NewAcceptBidCommandHandler(uowFactory OrderUoWFactory) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid acceptance command.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, command AcceptBidCommand) error {
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

	if err = aggregate.AcceptBid(command.BidID(), time.Now().UTC()); err != nil {
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
