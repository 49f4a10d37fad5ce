package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand represents the customer accepting a bid at its proposed
// amount. Acceptance assigns the recipient and rejects every competing bid.
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	bidID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptBidCommand creates a command to accept a bid.
func NewAcceptBidCommand(bidID kernel.UUID) (AcceptBidCommand, error) {
	if err := bidID.Validate(); err != nil {
		return AcceptBidCommand{}, err
	}

	return AcceptBidCommand{
		bidID: bidID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

// BidID returns the bid being accepted.
func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}
