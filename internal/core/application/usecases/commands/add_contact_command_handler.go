package commands

import (
	"context"
	"time"

	"procserve/internal/core/domain/model/contact"
)

// AddContactCommandHandler adds a registered server to a customer's personal
// directory. The server must exist; its profile email becomes the entry's
// email.
type AddContactCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewAddContactCommandHandler creates a handler for contact addition.
func NewAddContactCommandHandler(uowFactory DirectoryUoWFactory) AddContactCommandHandler {
	return AddContactCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the contact addition command. Re-adding a server already
// in the directory updates its nickname in place.
func (h AddContactCommandHandler) Handle(ctx context.Context, command AddContactCommand) error {
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

	profile, err := uow.ServerProfileRepository().Get(ctx, command.ServerID())
	if err != nil {
		return err
	}

	contactRepo := uow.ContactRepository()
	existing, err := contactRepo.GetByOwnerAndServer(ctx, command.OwnerID(), command.ServerID())
	if err != nil {
		return err
	}

	if existing != nil {
		existing.Rename(command.Nickname())
		if err = contactRepo.Update(ctx, existing); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	entry, err := contact.NewContactEntry(
		command.EntryID(), command.OwnerID(), profile.ID(),
		profile.Email(), command.Nickname(), time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = contactRepo.Add(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
