package commands

import (
	"context"
	"time"

	"procserve/internal/core/domain/model/contact"
)

// InviteProcessServerCommandHandler creates a directory entry for an email
// invitation. If the email already belongs to a registered server, the entry
// is created activated right away; otherwise it waits for registration.
type InviteProcessServerCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewInviteProcessServerCommandHandler creates a handler for invitations.
func NewInviteProcessServerCommandHandler(uowFactory DirectoryUoWFactory) InviteProcessServerCommandHandler {
	return InviteProcessServerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invitation command. Re-inviting an email already in
// the owner's directory is a no-op.
func (h InviteProcessServerCommandHandler) Handle(ctx context.Context, command InviteProcessServerCommand) error {
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
	existing, err := contactRepo.GetByOwnerAndEmail(ctx, command.OwnerID(), command.Email())
	if err != nil {
		return err
	}
	if existing != nil {
		return uow.Commit(ctx)
	}

	profile, err := uow.ServerProfileRepository().GetByEmail(ctx, command.Email())
	if err != nil {
		return err
	}

	var entry *contact.ContactEntry
	if profile != nil {
		entry, err = contact.NewContactEntry(
			command.EntryID(), command.OwnerID(), profile.ID(),
			command.Email(), command.Nickname(), time.Now().UTC(),
		)
	} else {
		entry, err = contact.NewInvitedContactEntry(
			command.EntryID(), command.OwnerID(),
			command.Email(), command.Nickname(), time.Now().UTC(),
		)
	}
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
