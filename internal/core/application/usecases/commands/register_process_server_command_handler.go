package commands

import (
	"context"

	"procserve/internal/core/domain/model/serverprofile"
)

// RegisterProcessServerCommandHandler creates a server profile and activates
// every pending invitation addressed to the registered email, in one
// transaction.
type RegisterProcessServerCommandHandler struct {
	uowFactory DirectoryUoWFactory
}

// NewRegisterProcessServerCommandHandler creates a handler for registration.
func NewRegisterProcessServerCommandHandler(uowFactory DirectoryUoWFactory) RegisterProcessServerCommandHandler {
	return RegisterProcessServerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterProcessServerCommandHandler) Handle(ctx context.Context, command RegisterProcessServerCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	profile, err := serverprofile.NewProcessServerProfile(
		command.ServerID(), command.ServerName(), command.Email(),
		command.Zips(), command.GloballyVisible(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ServerProfileRepository().Add(ctx, profile); err != nil {
		return err
	}

	contactRepo := uow.ContactRepository()
	invited, err := contactRepo.GetAllInvitedByEmail(ctx, command.Email())
	if err != nil {
		return err
	}

	for _, entry := range invited {
		if err = entry.Activate(profile.ID()); err != nil {
			return err
		}
		if err = contactRepo.Update(ctx, entry); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
