package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrAddContactCommandIsNotConstructed = errors.New(
	"AddContactCommand must be created via NewAddContactCommand constructor",
)

// AddContactCommand represents a customer adding a registered process server
// to their personal directory. Adding a server that is already present
// updates the nickname instead of creating a duplicate.
type AddContactCommand struct { //nolint:recvcheck //using for validation
	entryID  kernel.UUID
	ownerID  kernel.UUID
	serverID kernel.UUID
	nickname string

	guard guard.ConstructorGuard
}

// NewAddContactCommand creates a command to add a directory contact.
func NewAddContactCommand(entryID, ownerID, serverID kernel.UUID, nickname string) (AddContactCommand, error) {
	if err := errors.Join(
		entryID.Validate(),
		ownerID.Validate(),
		serverID.Validate(),
	); err != nil {
		return AddContactCommand{}, err
	}

	return AddContactCommand{
		entryID:  entryID,
		ownerID:  ownerID,
		serverID: serverID,
		nickname: nickname,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddContactCommand) Validate() error {
	return c.guard.Validate(ErrAddContactCommandIsNotConstructed)
}

// EntryID returns the client-supplied identifier for a newly created entry.
func (c AddContactCommand) EntryID() kernel.UUID {
	return c.entryID
}

// OwnerID returns the customer who owns the directory.
func (c AddContactCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ServerID returns the server being added.
func (c AddContactCommand) ServerID() kernel.UUID {
	return c.serverID
}

// Nickname returns the customer-chosen display name, possibly empty.
func (c AddContactCommand) Nickname() string {
	return c.nickname
}
