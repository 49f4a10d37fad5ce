package order

import (
	"errors"
	"fmt"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrOrderIsNotConstructed indicates that an Order was not created through
// the NewOrder or RestoreOrder constructor.
var ErrOrderIsNotConstructed = errors.New(
	"Order must be created via NewOrder or RestoreOrder constructor",
)

// Order is the aggregate root of the engine. Every mutation of a recipient,
// a bid or a delivery attempt is routed through the order so that the
// cancellation overlay is checked in exactly one place.
//
// The order-level status is never stored. It is derived from the recipients
// on every read; only the cancellation record is the order's own state.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	tenantID   kernel.UUID
	deadline   time.Time
	document   DocumentMeta

	recipients   []*Recipient
	cancellation *Cancellation

	guard kernel.ConstructorGuard
}

// NewOrder creates an order with its full set of recipients. Orders are
// created whole: recipients are not added after the fact.
func NewOrder(
	id, customerID, tenantID kernel.UUID,
	deadline time.Time,
	document DocumentMeta,
	recipients []*Recipient,
) (*Order, error) {
	order := &Order{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setTenantID(tenantID),
		order.setDeadline(deadline),
		order.setDocument(document),
		order.setRecipients(recipients),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
func RestoreOrder(
	id, customerID, tenantID kernel.UUID,
	deadline time.Time,
	document DocumentMeta,
	recipients []*Recipient,
	cancellation *Cancellation,
) (*Order, error) {
	order, err := NewOrder(id, customerID, tenantID, deadline, document, recipients)
	if err != nil {
		return nil, err
	}

	if cancellation != nil {
		if err := cancellation.Validate(); err != nil {
			return nil, err
		}
		order.cancellation = cancellation
	}

	return order, nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TenantID returns the tenant the order belongs to.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// Deadline returns the service deadline.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// Document returns the metadata of the documents being served.
func (o *Order) Document() DocumentMeta {
	return o.document
}

// Recipients returns the order's recipients.
func (o *Order) Recipients() []*Recipient {
	return o.recipients
}

// Cancellation returns the cancellation record, nil while the order is
// active.
func (o *Order) Cancellation() *Cancellation {
	return o.cancellation
}

// IsCancelled reports whether the order was cancelled.
func (o *Order) IsCancelled() bool {
	return o.cancellation != nil
}

// Status derives the order-level status from the recipients, with
// cancellation overriding everything.
func (o *Order) Status() OrderStatus {
	if o.IsCancelled() {
		return OrderStatusCancelled
	}
	return deriveOrderStatus(o.recipients)
}

// Editability reports whether the order's structure may still be changed.
// Editing locks as soon as any recipient has an accepted bid, with the lock
// reason reflecting the most advanced recipient.
func (o *Order) Editability() Editability {
	statuses := make([]Status, 0, len(o.recipients))
	for _, recipient := range o.recipients {
		statuses = append(statuses, recipient.Status())
	}
	return DeriveEditability(o.IsCancelled(), statuses)
}

// Cancel freezes the order in the cancelled state. It fails with a conflict
// once any recipient has an accepted bid, since an assigned server is owed
// the work.
func (o *Order) Cancel(reason, notes string, cancelledBy kernel.UUID, now time.Time) error {
	if o.IsCancelled() {
		return errs.NewOrderCancelledError(o.id.String())
	}

	if editability := o.Editability(); !editability.CanEdit {
		return errs.NewConflictErrorWithCause(
			"order can no longer be cancelled",
			fmt.Errorf("order %s is locked: %s", o.id, editability.LockReason),
		)
	}

	cancellation, err := newCancellation(reason, notes, cancelledBy, now)
	if err != nil {
		return err
	}

	o.cancellation = cancellation
	return nil
}

// RecipientByID looks up a recipient of this order.
func (o *Order) RecipientByID(recipientID kernel.UUID) (*Recipient, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}
	for _, recipient := range o.recipients {
		if recipient.ID().IsEqual(recipientID) {
			return recipient, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("recipientId", recipientID.String())
}

// RecipientByBidID finds the recipient that owns the given bid.
func (o *Order) RecipientByBidID(bidID kernel.UUID) (*Recipient, error) {
	if err := bidID.Validate(); err != nil {
		return nil, err
	}
	for _, recipient := range o.recipients {
		for _, bid := range recipient.Bids() {
			if bid.ID().IsEqual(bidID) {
				return recipient, nil
			}
		}
	}
	return nil, errs.NewObjectNotFoundError("bidId", bidID.String())
}

// PlaceBid places a bid on one of the order's recipients.
func (o *Order) PlaceBid(
	recipientID, bidID, serverID kernel.UUID,
	amount kernel.Money,
	comment string,
	now time.Time,
) (*Bid, error) {
	if err := o.ensureActive(); err != nil {
		return nil, err
	}

	recipient, err := o.RecipientByID(recipientID)
	if err != nil {
		return nil, err
	}

	return recipient.PlaceBid(bidID, serverID, amount, comment, now)
}

// AcceptBid accepts a bid at its proposed amount.
func (o *Order) AcceptBid(bidID kernel.UUID, now time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}

	recipient, err := o.RecipientByBidID(bidID)
	if err != nil {
		return err
	}

	return recipient.AcceptBid(bidID, now)
}

// CounterBid records a counter-offer on a pending bid.
func (o *Order) CounterBid(
	bidID kernel.UUID,
	by Party,
	amount kernel.Money,
	notes string,
	maxRounds int,
	now time.Time,
) error {
	if err := o.ensureActive(); err != nil {
		return err
	}

	recipient, err := o.RecipientByBidID(bidID)
	if err != nil {
		return err
	}

	return recipient.CounterBid(bidID, by, amount, notes, maxRounds, now)
}

// AcceptCounter accepts the standing counter-offer on a bid.
func (o *Order) AcceptCounter(bidID kernel.UUID, by Party, now time.Time) error {
	if err := o.ensureActive(); err != nil {
		return err
	}

	recipient, err := o.RecipientByBidID(bidID)
	if err != nil {
		return err
	}

	return recipient.AcceptCounter(bidID, by, now)
}

// RecordAttempt records a delivery attempt for one of the order's
// recipients.
func (o *Order) RecordAttempt(
	recipientID, attemptID, serverID kernel.UUID,
	wasSuccessful bool,
	notes string,
	geo *Geolocation,
	now time.Time,
) (*DeliveryAttempt, error) {
	if err := o.ensureActive(); err != nil {
		return nil, err
	}

	recipient, err := o.RecipientByID(recipientID)
	if err != nil {
		return nil, err
	}

	return recipient.RecordAttempt(attemptID, serverID, wasSuccessful, notes, geo, now)
}

// ExpireStaleBids rejects pending bids across all recipients whose last
// negotiation activity is older than the cutoff. Cancelled orders are left
// untouched: their bids are already moot.
func (o *Order) ExpireStaleBids(cutoff, now time.Time) []kernel.UUID {
	if o.IsCancelled() {
		return nil
	}

	var expired []kernel.UUID
	for _, recipient := range o.recipients {
		expired = append(expired, recipient.ExpireStaleBids(cutoff, now)...)
	}
	return expired
}

func (o *Order) ensureActive() error {
	if o.IsCancelled() {
		return errs.NewOrderCancelledError(o.id.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerId is invalid", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tenantId is invalid", err)
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline is required")
	}
	o.deadline = deadline
	return nil
}

func (o *Order) setDocument(document DocumentMeta) error {
	if err := document.Validate(); err != nil {
		return err
	}
	o.document = document
	return nil
}

func (o *Order) setRecipients(recipients []*Recipient) error {
	if len(recipients) == 0 {
		return errs.NewValueIsRequiredError("at least one recipient is required")
	}

	seen := make(map[int]bool, len(recipients))
	for _, recipient := range recipients {
		if err := recipient.Validate(); err != nil {
			return err
		}
		if seen[recipient.Sequence()] {
			return errs.NewValueIsInvalidErrorWithCause(
				"recipient sequence is invalid",
				fmt.Errorf("sequence %d is duplicated", recipient.Sequence()),
			)
		}
		seen[recipient.Sequence()] = true
	}

	o.recipients = recipients
	return nil
}

// Validate checks that the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}
