package commands

import (
	"errors"
	"net/mail"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var (
	ErrInviteProcessServerCommandIsNotConstructed = errors.New(
		"InviteProcessServerCommand must be created via NewInviteProcessServerCommand constructor",
	)
	ErrEmailIsInvalid = errors.New("email is invalid")
)

// InviteProcessServerCommand represents a customer inviting an unregistered
// process server by email. The resulting directory entry stays NOT_ACTIVATED
// until the invitee registers.
type InviteProcessServerCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	ownerID  kernel.UUID
	email    string
	nickname string

	guard guard.ConstructorGuard
}

// NewInviteProcessServerCommand creates a command to invite a server by email.
func NewInviteProcessServerCommand(entryID, ownerID kernel.UUID, email, nickname string) (InviteProcessServerCommand, error) {
	command := InviteProcessServerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entryID.Validate(),
		ownerID.Validate(),
		command.setEmail(email),
	); err != nil {
		return InviteProcessServerCommand{}, err
	}

	command.entryID = entryID
	command.ownerID = ownerID
	command.nickname = nickname
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InviteProcessServerCommand) Validate() error {
	return c.guard.Validate(ErrInviteProcessServerCommandIsNotConstructed)
}

// EntryID returns the client-supplied identifier for a newly created entry.
func (c InviteProcessServerCommand) EntryID() kernel.UUID {
	return c.entryID
}

// OwnerID returns the inviting customer.
func (c InviteProcessServerCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Email returns the invitee's email address.
func (c InviteProcessServerCommand) Email() string {
	return c.email
}

// Nickname returns the customer-chosen display name, possibly empty.
func (c InviteProcessServerCommand) Nickname() string {
	return c.nickname
}

func (c *InviteProcessServerCommand) setEmail(email string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrEmailIsInvalid
	}

	c.email = email
	return nil
}
