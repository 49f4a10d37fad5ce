package commands

import (
	"context"
	"time"
)

// ExpireStaleBidsCommandHandler sweeps active orders for pending bids whose
// last negotiation activity predates the TTL and rejects them.
type ExpireStaleBidsCommandHandler struct {
	uowFactory OrderUoWFactory
	ttl        time.Duration
}

// NewExpireStaleBidsCommandHandler creates a handler for the expiry sweep.
// ttl is how long a pending bid may sit without negotiation activity.
func NewExpireStaleBidsCommandHandler(uowFactory OrderUoWFactory, ttl time.Duration) ExpireStaleBidsCommandHandler {
	return ExpireStaleBidsCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
	}
}

// Handle processes the expiry sweep. Each affected order is updated within
// the same transaction; orders without stale bids are not touched.
func (h ExpireStaleBidsCommandHandler) Handle(ctx context.Context, command ExpireStaleBidsCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	cutoff := now.Add(-h.ttl)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregates, err := orderRepo.GetAllWithStalePendingBids(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, aggregate := range aggregates {
		if expired := aggregate.ExpireStaleBids(cutoff, now); len(expired) == 0 {
			continue
		}

		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
