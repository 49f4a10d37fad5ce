package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrRemoveContactCommandIsNotConstructed = errors.New(
	"RemoveContactCommand must be created via NewRemoveContactCommand constructor",
)

// RemoveContactCommand represents a customer removing a server from their
// personal directory. Removal is idempotent: removing an absent server is a
// no-op.
type RemoveContactCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	serverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveContactCommand creates a command to remove a directory contact.
func NewRemoveContactCommand(ownerID, serverID kernel.UUID) (RemoveContactCommand, error) {
	if err := errors.Join(ownerID.Validate(), serverID.Validate()); err != nil {
		return RemoveContactCommand{}, err
	}

	return RemoveContactCommand{
		ownerID:  ownerID,
		serverID: serverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveContactCommand) Validate() error {
	return c.guard.Validate(ErrRemoveContactCommandIsNotConstructed)
}

// OwnerID returns the customer who owns the directory.
func (c RemoveContactCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ServerID returns the server being removed.
func (c RemoveContactCommand) ServerID() kernel.UUID {
	return c.serverID
}
