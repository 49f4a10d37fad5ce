package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrReasonIsRequired = errors.New("reason is required")
)

// CancelOrderCommand represents the customer cancelling an order. Allowed
// only while the order is still editable: once any recipient has an accepted
// bid, cancellation conflicts.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	reason      string
	notes       string
	cancelledBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID kernel.UUID, reason, notes string, cancelledBy kernel.UUID) (CancelOrderCommand, error) {
	command := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		command.setReason(reason),
		cancelledBy.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	command.orderID = orderID
	command.notes = notes
	command.cancelledBy = cancelledBy
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the order being cancelled.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// Notes returns optional free-form notes.
func (c CancelOrderCommand) Notes() string {
	return c.notes
}

// CancelledBy returns the acting customer.
func (c CancelOrderCommand) CancelledBy() kernel.UUID {
	return c.cancelledBy
}

func (c *CancelOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrReasonIsRequired
	}

	c.reason = reason
	return nil
}
