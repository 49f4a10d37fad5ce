package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/guard"
)

var ErrCounterOfferBidCommandIsNotConstructed = errors.New(
	"CounterOfferBidCommand must be created via NewCounterOfferBidCommand constructor",
)

// CounterOfferBidCommand represents one party countering the price currently
// on the table. The acting party is an explicit parameter: the engine never
// infers identity from ambient state.
type CounterOfferBidCommand struct { //nolint:recvcheck //using for validation
	bidID  kernel.UUID
	by     order.Party
	amount kernel.Money
	notes  string

	guard guard.ConstructorGuard
}

// NewCounterOfferBidCommand creates a command to record a counter-offer.
func NewCounterOfferBidCommand(
	bidID kernel.UUID,
	by order.Party,
	amount kernel.Money,
	notes string,
) (CounterOfferBidCommand, error) {
	command := CounterOfferBidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bidID.Validate(),
		by.Validate(),
		amount.Validate(),
	); err != nil {
		return CounterOfferBidCommand{}, err
	}

	command.bidID = bidID
	command.by = by
	command.amount = amount
	command.notes = notes
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CounterOfferBidCommand) Validate() error {
	return c.guard.Validate(ErrCounterOfferBidCommandIsNotConstructed)
}

// BidID returns the bid being countered.
func (c CounterOfferBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// By returns the countering party.
func (c CounterOfferBidCommand) By() order.Party {
	return c.by
}

// Amount returns the countered price.
func (c CounterOfferBidCommand) Amount() kernel.Money {
	return c.amount
}

// Notes returns the optional counter notes.
func (c CounterOfferBidCommand) Notes() string {
	return c.notes
}
