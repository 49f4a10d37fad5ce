package commands

import (
	"context"
)

// RemoveContactCommandHandler removes a server from a customer's personal
// directory.
type RemoveContactCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewRemoveContactCommandHandler creates a handler for contact removal.
func NewRemoveContactCommandHandler(uowFactory DirectoryUoWFactory) RemoveContactCommandHandler {
	return RemoveContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contact removal command.
func (h RemoveContactCommandHandler) Handle(ctx context.Context, command RemoveContactCommand) error {
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

	contactRepo := uow.ContactRepository()
	existing, err := contactRepo.GetByOwnerAndServer(ctx, command.OwnerID(), command.ServerID())
	if err != nil {
		return err
	}
	if existing == nil {
		return uow.Commit(ctx)
	}

	if err = contactRepo.Remove(ctx, existing.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
