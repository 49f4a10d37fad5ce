package commands

import (
	"context"
	"time"
)

// RecordDeliveryAttemptCommandHandler appends a delivery attempt to a
// recipient. The attempt number and the ceiling check are computed from
// locked state so concurrent attempts cannot share a number or slip past the
// maximum.
type RecordDeliveryAttemptCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordDeliveryAttemptCommandHandler creates a handler for attempt recording.
func NewRecordDeliveryAttemptCommandHandler(uowFactory OrderUoWFactory) RecordDeliveryAttemptCommandHandler {
	return RecordDeliveryAttemptCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attempt recording command.
func (h RecordDeliveryAttemptCommandHandler) Handle(ctx context.Context, command RecordDeliveryAttemptCommand) error {
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

	if _, err = aggregate.RecordAttempt(
		command.RecipientID(), command.AttemptID(), command.ServerID(),
		command.WasSuccessful(), command.Notes(), command.Geolocation(), time.Now().UTC(),
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
