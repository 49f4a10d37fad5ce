package commands

import (
	"context"
	"time"
)

// CounterOfferBidCommandHandler records a counter-offer on a pending bid.
//
// Alternation is a read-then-write on the bid's last-counter marker, so the
// order row is locked for the transaction: two simultaneous counters cannot
// both read "my turn". The handler carries the configured round cap.
type CounterOfferBidCommandHandler struct {
	uowFactory OrderUoWFactory
	maxRounds  int
}

// NewCounterOfferBidCommandHandler creates a handler for counter-offers.
// maxRounds caps the total counters per bid; zero means uncapped.
func NewCounterOfferBidCommandHandler(uowFactory OrderUoWFactory, maxRounds int) CounterOfferBidCommandHandler {
	return CounterOfferBidCommandHandler{
		uowFactory: uowFactory,
		maxRounds:  maxRounds,
	}
}

// Handle processes the counter-offer command.
func (h CounterOfferBidCommandHandler) Handle(ctx context.Context, command CounterOfferBidCommand) error {
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

	if err = aggregate.CounterBid(
		command.BidID(), command.By(), command.Amount(),
		command.Notes(), h.maxRounds, time.Now().UTC(),
	); err != nil {
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
