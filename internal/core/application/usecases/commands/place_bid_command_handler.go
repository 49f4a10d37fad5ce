package commands

import (
	"context"
	"time"
)

// PlaceBidCommandHandler appends a bid to a recipient.
//
// The order is loaded with a row lock so competing bids on the same
// recipient serialize; the status transition then happens against fresh
// state.
type PlaceBidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPlaceBidCommandHandler creates a handler for bid placement.
func NewPlaceBidCommandHandler(uowFactory OrderUoWFactory) PlaceBidCommandHandler {
	return PlaceBidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the bid placement command.
func (h PlaceBidCommandHandler) Handle(ctx context.Context, command PlaceBidCommand) error {
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
	aggregate, err := orderRepo.GetByRecipientID(ctx, command.RecipientID())
	if err != nil {
		return err
	}

	if _, err = aggregate.PlaceBid(
		command.RecipientID(), command.BidID(), command.ServerID(),
		command.Amount(), command.Comment(), time.Now().UTC(),
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
