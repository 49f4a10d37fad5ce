package order

import (
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrCancellationIsNotConstructed indicates that a Cancellation was not
// created through the newCancellation or RestoreCancellation constructor.
var ErrCancellationIsNotConstructed = errors.New(
	"Cancellation must be created via newCancellation or RestoreCancellation constructor",
)

// Cancellation records who cancelled an order, when, and why. Its presence
// on an order is what makes the order cancelled.
type Cancellation struct {
	reason      string
	notes       string
	cancelledBy kernel.UUID
	cancelledAt time.Time

	guard kernel.ConstructorGuard
}

func newCancellation(reason, notes string, cancelledBy kernel.UUID, cancelledAt time.Time) (*Cancellation, error) {
	if reason == "" {
		return nil, errs.NewValueIsRequiredError("reason is required")
	}
	if err := cancelledBy.Validate(); err != nil {
		return nil, err
	}
	if cancelledAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("cancelledAt is required")
	}

	return &Cancellation{
		reason:      reason,
		notes:       notes,
		cancelledBy: cancelledBy,
		cancelledAt: cancelledAt,
		guard:       kernel.NewConstructorGuard(),
	}, nil
}

// RestoreCancellation reconstructs a cancellation record from persistence.
func RestoreCancellation(reason, notes string, cancelledBy kernel.UUID, cancelledAt time.Time) (*Cancellation, error) {
	return newCancellation(reason, notes, cancelledBy, cancelledAt)
}

// Reason returns the customer-supplied cancellation reason.
func (c *Cancellation) Reason() string {
	return c.reason
}

// Notes returns free-form notes accompanying the cancellation.
func (c *Cancellation) Notes() string {
	return c.notes
}

// CancelledBy returns the actor who cancelled the order.
func (c *Cancellation) CancelledBy() kernel.UUID {
	return c.cancelledBy
}

// CancelledAt returns when the order was cancelled.
func (c *Cancellation) CancelledAt() time.Time {
	return c.cancelledAt
}

// Validate checks that the Cancellation was properly constructed.
func (c *Cancellation) Validate() error {
	if c == nil {
		return ErrCancellationIsNotConstructed
	}
	return c.guard.Validate(ErrCancellationIsNotConstructed)
}
