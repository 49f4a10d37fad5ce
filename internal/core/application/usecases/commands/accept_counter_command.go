package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/guard"
)

var ErrAcceptCounterCommandIsNotConstructed = errors.New(
	"AcceptCounterCommand must be created via NewAcceptCounterCommand constructor",
)

// AcceptCounterCommand represents a party accepting the counter-offer
// currently on the table as the final price. Only the party that did not
// issue the latest counter may accept it.
type AcceptCounterCommand struct { //nolint:recvcheck //using for validation
	bidID kernel.UUID
	by    order.Party

	guard guard.ConstructorGuard
}

// NewAcceptCounterCommand creates a command to accept a counter-offer.
func NewAcceptCounterCommand(bidID kernel.UUID, by order.Party) (AcceptCounterCommand, error) {
	if err := errors.Join(bidID.Validate(), by.Validate()); err != nil {
		return AcceptCounterCommand{}, err
	}

	return AcceptCounterCommand{
		bidID: bidID,
		by:    by,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptCounterCommand) Validate() error {
	return c.guard.Validate(ErrAcceptCounterCommandIsNotConstructed)
}

// BidID returns the bid whose counter is being accepted.
func (c AcceptCounterCommand) BidID() kernel.UUID {
	return c.bidID
}

// By returns the accepting party.
func (c AcceptCounterCommand) By() order.Party {
	return c.by
}
