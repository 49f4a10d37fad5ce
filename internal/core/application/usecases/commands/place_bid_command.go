package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrPlaceBidCommandIsNotConstructed = errors.New(
	"PlaceBidCommand must be created via NewPlaceBidCommand constructor",
)

// PlaceBidCommand represents a process server's price proposal for serving
// one recipient. For guided recipients only the designated server's proposal
// is accepted; the domain enforces that.
type PlaceBidCommand struct { //nolint:recvcheck //using for validation
	bidID       kernel.UUID
	recipientID kernel.UUID
	serverID    kernel.UUID
	amount      kernel.Money
	comment     string

	guard guard.ConstructorGuard
}

// NewPlaceBidCommand creates a command to place a bid on a recipient.
func NewPlaceBidCommand(
	bidID, recipientID, serverID kernel.UUID,
	amount kernel.Money,
	comment string,
) (PlaceBidCommand, error) {
	command := PlaceBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bidID.Validate(),
		recipientID.Validate(),
		serverID.Validate(),
		amount.Validate(),
	); err != nil {
		return PlaceBidCommand{}, err
	}

	command.bidID = bidID
	command.recipientID = recipientID
	command.serverID = serverID
	command.amount = amount
	command.comment = comment
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceBidCommand) Validate() error {
	return c.guard.Validate(ErrPlaceBidCommandIsNotConstructed)
}

// BidID returns the client-supplied identifier of the new bid.
func (c PlaceBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// RecipientID returns the recipient being bid on.
func (c PlaceBidCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// ServerID returns the proposing process server.
func (c PlaceBidCommand) ServerID() kernel.UUID {
	return c.serverID
}

// Amount returns the proposed price.
func (c PlaceBidCommand) Amount() kernel.Money {
	return c.amount
}

// Comment returns the optional proposal comment.
func (c PlaceBidCommand) Comment() string {
	return c.comment
}
