package order

import (
	"errors"
	"fmt"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrRecipientIsNotConstructed indicates that a Recipient was not created
// through the NewRecipient or RestoreRecipient constructor.
var ErrRecipientIsNotConstructed = errors.New(
	"Recipient must be created via NewRecipient or RestoreRecipient constructor",
)

// Recipient is one delivery destination within an order. It owns the bids
// placed on it and the delivery attempts made against it, and it is the only
// place where either collection is mutated.
//
// Recipient enforces the two hard invariants of the engine:
//
//   - At most one of its bids is ever accepted. Acceptance fixes the assigned
//     server and the agreed price and rejects every sibling pending bid.
//   - Delivery attempts are numbered contiguously from 1 and never exceed the
//     ceiling. A successful attempt is always the last one recorded.
type Recipient struct {
	id            kernel.UUID
	sequence      int
	recipientName string
	address       kernel.Address
	mode          AssignmentMode
	options       ServiceOptions
	maxAttempts   int

	status             Status
	designatedServerID *kernel.UUID
	assignedServerID   *kernel.UUID
	agreedPrice        *kernel.Money

	bids     []*Bid
	attempts []*DeliveryAttempt

	guard kernel.ConstructorGuard
}

// NewRecipient creates a recipient in its initial state: Open for the bidding
// market, AwaitingQuote for guided-direct assignment.
//
// Guided recipients must designate a server; bidding-market recipients must
// not, since any eligible server may bid.
func NewRecipient(
	id kernel.UUID,
	sequence int,
	recipientName string,
	address kernel.Address,
	mode AssignmentMode,
	options ServiceOptions,
	maxAttempts int,
	designatedServerID *kernel.UUID,
) (*Recipient, error) {
	recipient := &Recipient{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipient.setID(id),
		recipient.setSequence(sequence),
		recipient.setRecipientName(recipientName),
		recipient.setAddress(address),
		recipient.setMode(mode),
		recipient.setMaxAttempts(maxAttempts),
	); err != nil {
		return nil, err
	}

	switch mode {
	case GuidedDirect:
		if designatedServerID == nil {
			return nil, errs.NewValueIsRequiredError("designatedServerId is required for guided recipients")
		}
		if err := designatedServerID.Validate(); err != nil {
			return nil, err
		}
		recipient.designatedServerID = designatedServerID
		recipient.status = StatusAwaitingQuote
	default:
		if designatedServerID != nil {
			return nil, errs.NewValueIsInvalidError("designatedServerId is only valid for guided recipients")
		}
		recipient.status = StatusOpen
	}

	recipient.options = options
	return recipient, nil
}

// RestoreRecipient reconstructs a recipient from persistence, including its
// bids and delivery attempts.
func RestoreRecipient(
	id kernel.UUID,
	sequence int,
	recipientName string,
	address kernel.Address,
	mode AssignmentMode,
	options ServiceOptions,
	maxAttempts int,
	status Status,
	designatedServerID, assignedServerID *kernel.UUID,
	agreedPrice *kernel.Money,
	bids []*Bid,
	attempts []*DeliveryAttempt,
) (*Recipient, error) {
	recipient := &Recipient{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		recipient.setID(id),
		recipient.setSequence(sequence),
		recipient.setRecipientName(recipientName),
		recipient.setAddress(address),
		recipient.setMode(mode),
		recipient.setMaxAttempts(maxAttempts),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if designatedServerID != nil {
		if err := designatedServerID.Validate(); err != nil {
			return nil, err
		}
	}
	if assignedServerID != nil {
		if err := assignedServerID.Validate(); err != nil {
			return nil, err
		}
	}
	if agreedPrice != nil {
		if err := agreedPrice.Validate(); err != nil {
			return nil, err
		}
	}

	recipient.options = options
	recipient.status = status
	recipient.designatedServerID = designatedServerID
	recipient.assignedServerID = assignedServerID
	recipient.agreedPrice = agreedPrice
	recipient.bids = bids
	recipient.attempts = attempts
	return recipient, nil
}

// IsEqual compares two recipients by identity.
func (r *Recipient) IsEqual(other *Recipient) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the recipient's unique identifier.
func (r *Recipient) ID() kernel.UUID {
	return r.id
}

// Sequence returns the recipient's 1-based position within its order.
func (r *Recipient) Sequence() int {
	return r.sequence
}

// RecipientName returns the name of the person or entity being served.
func (r *Recipient) RecipientName() string {
	return r.recipientName
}

// Address returns the service destination.
func (r *Recipient) Address() kernel.Address {
	return r.address
}

// Mode returns the assignment mode.
func (r *Recipient) Mode() AssignmentMode {
	return r.mode
}

// Options returns the service option flags.
func (r *Recipient) Options() ServiceOptions {
	return r.options
}

// MaxAttempts returns the delivery attempt ceiling.
func (r *Recipient) MaxAttempts() int {
	return r.maxAttempts
}

// AttemptCount returns the number of attempts recorded so far.
func (r *Recipient) AttemptCount() int {
	return len(r.attempts)
}

// Status returns the recipient's lifecycle state.
func (r *Recipient) Status() Status {
	return r.status
}

// DesignatedServerID returns the server designated for a guided recipient,
// nil for bidding-market recipients.
func (r *Recipient) DesignatedServerID() *kernel.UUID {
	return r.designatedServerID
}

// AssignedServerID returns the server whose bid was accepted, nil until then.
func (r *Recipient) AssignedServerID() *kernel.UUID {
	return r.assignedServerID
}

// AgreedPrice returns the final agreed price, nil until a bid is accepted.
func (r *Recipient) AgreedPrice() *kernel.Money {
	return r.agreedPrice
}

// Bids returns all bids placed on this recipient.
func (r *Recipient) Bids() []*Bid {
	return r.bids
}

// Attempts returns all delivery attempts recorded for this recipient.
func (r *Recipient) Attempts() []*DeliveryAttempt {
	return r.attempts
}

// AcceptedBid returns the single accepted bid, nil if none.
func (r *Recipient) AcceptedBid() *Bid {
	for _, bid := range r.bids {
		if bid.Status() == BidAccepted {
			return bid
		}
	}
	return nil
}

// BidByID looks up one of this recipient's bids.
func (r *Recipient) BidByID(bidID kernel.UUID) (*Bid, error) {
	if err := bidID.Validate(); err != nil {
		return nil, err
	}
	for _, bid := range r.bids {
		if bid.ID().IsEqual(bidID) {
			return bid, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("bidId", bidID.String())
}

// PlaceBid creates a pending bid on this recipient.
//
// Bidding-market recipients accept bids from any server while Open or
// Bidding; the first bid moves the recipient to Bidding. Guided recipients
// accept a quote only from their designated server, and only while awaiting
// one.
func (r *Recipient) PlaceBid(
	bidID, serverID kernel.UUID,
	amount kernel.Money,
	comment string,
	now time.Time,
) (*Bid, error) {
	switch r.mode {
	case BiddingMarket:
		newStatus, err := r.status.StartBidding()
		if err != nil {
			return nil, err
		}

		bid, err := NewBid(bidID, serverID, amount, comment, now)
		if err != nil {
			return nil, err
		}

		r.bids = append(r.bids, bid)
		r.status = newStatus
		return bid, nil

	case GuidedDirect:
		if r.status != StatusAwaitingQuote {
			return nil, errs.NewConflictErrorWithCause(
				"recipient is not awaiting a quote",
				fmt.Errorf("%s is not a valid status for a guided quote", r.status),
			)
		}
		if err := serverID.Validate(); err != nil {
			return nil, err
		}
		if !r.designatedServerID.IsEqual(serverID) {
			return nil, errs.NewUnauthorizedErrorWithCause(
				serverID.String(),
				fmt.Errorf("only the designated server may quote recipient %s", r.id),
			)
		}

		bid, err := NewBid(bidID, serverID, amount, comment, now)
		if err != nil {
			return nil, err
		}

		r.bids = append(r.bids, bid)
		return bid, nil

	default:
		return nil, errs.NewValueIsInvalidError("assignment mode is invalid")
	}
}

// AcceptBid accepts a pending bid at its proposed amount.
//
// Acceptance is the point where the at-most-one-accepted invariant is
// enforced: it fails with a conflict if any sibling bid was already accepted
// or the recipient has moved past negotiation. On success the recipient is
// Assigned, every sibling pending bid is rejected, and the assigned server
// and agreed price are fixed.
func (r *Recipient) AcceptBid(bidID kernel.UUID, now time.Time) error {
	bid, err := r.BidByID(bidID)
	if err != nil {
		return err
	}

	return r.acceptAtPrice(bid, bid.Amount(), now)
}

// AcceptCounter accepts the standing counter-offer on a bid as the final
// price. Only the party that did not issue the latest counter may accept it.
func (r *Recipient) AcceptCounter(bidID kernel.UUID, by Party, now time.Time) error {
	bid, err := r.BidByID(bidID)
	if err != nil {
		return err
	}
	if err := by.Validate(); err != nil {
		return err
	}

	counter := bid.Counter()
	if counter == nil {
		return errs.NewConflictErrorWithCause("bid has no counter-offer", ErrNoCounterOffer)
	}
	if by == bid.LastCounterBy() {
		return errs.NewOutOfTurnError(by.String())
	}

	return r.acceptAtPrice(bid, counter.Amount(), now)
}

// CounterBid records a counter-offer on a pending bid.
func (r *Recipient) CounterBid(
	bidID kernel.UUID,
	by Party,
	amount kernel.Money,
	notes string,
	maxRounds int,
	now time.Time,
) error {
	if !r.status.IsNegotiable() {
		return errs.NewConflictErrorWithCause(
			"recipient is no longer negotiating",
			fmt.Errorf("%s is not a valid status to counter", r.status),
		)
	}

	bid, err := r.BidByID(bidID)
	if err != nil {
		return err
	}

	return bid.CounterBy(by, amount, notes, maxRounds, now)
}

// RecordAttempt appends a delivery attempt and advances the recipient.
//
// Only the assigned server may record attempts, only while the recipient is
// Assigned or InProgress, and never past the ceiling. A successful attempt
// completes the recipient; a failed one moves it to InProgress while
// attempts remain and fails it when the ceiling is reached.
func (r *Recipient) RecordAttempt(
	attemptID, serverID kernel.UUID,
	wasSuccessful bool,
	notes string,
	geo *Geolocation,
	now time.Time,
) (*DeliveryAttempt, error) {
	if err := serverID.Validate(); err != nil {
		return nil, err
	}
	if r.assignedServerID == nil || !r.assignedServerID.IsEqual(serverID) {
		return nil, errs.NewUnauthorizedErrorWithCause(
			serverID.String(),
			fmt.Errorf("only the assigned server may record attempts for recipient %s", r.id),
		)
	}

	if r.status != StatusAssigned && r.status != StatusInProgress {
		return nil, errs.NewConflictErrorWithCause(
			"recipient is not accepting delivery attempts",
			fmt.Errorf("%s is not a valid status to record an attempt", r.status),
		)
	}

	if len(r.attempts) >= r.maxAttempts {
		return nil, errs.NewConflictErrorWithCause(
			"attempt ceiling reached",
			errs.NewValueIsOutOfRangeError("attemptNumber", len(r.attempts)+1, 1, r.maxAttempts),
		)
	}

	number := len(r.attempts) + 1
	attempt, err := NewDeliveryAttempt(attemptID, serverID, number, wasSuccessful, notes, geo, now)
	if err != nil {
		return nil, err
	}

	var newStatus Status
	switch {
	case wasSuccessful:
		newStatus, err = r.status.Complete()
	case number < r.maxAttempts:
		newStatus, err = r.status.BeginAttempt()
	default:
		newStatus, err = r.status.Fail()
	}
	if err != nil {
		return nil, err
	}

	r.attempts = append(r.attempts, attempt)
	r.status = newStatus
	return attempt, nil
}

// ExpireStaleBids rejects pending bids whose last negotiation activity is
// older than the cutoff. Returns the IDs of the bids that were expired.
// Recipients past negotiation are left untouched.
func (r *Recipient) ExpireStaleBids(cutoff, now time.Time) []kernel.UUID {
	if !r.status.IsNegotiable() {
		return nil
	}

	var expired []kernel.UUID
	for _, bid := range r.bids {
		if bid.Status() == BidPending && bid.LastActionAt().Before(cutoff) {
			bid.reject(now)
			expired = append(expired, bid.ID())
		}
	}
	return expired
}

// acceptAtPrice performs the shared acceptance path: verify the invariant,
// freeze the winning bid, reject the siblings, assign the recipient.
func (r *Recipient) acceptAtPrice(bid *Bid, price kernel.Money, now time.Time) error {
	if accepted := r.AcceptedBid(); accepted != nil {
		return errs.NewConflictErrorWithCause(
			"recipient already has an accepted bid",
			fmt.Errorf("bid %s was accepted first", accepted.ID()),
		)
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	if err := bid.accept(now); err != nil {
		return err
	}

	for _, sibling := range r.bids {
		if !sibling.IsEqual(bid) {
			sibling.reject(now)
		}
	}

	serverID := bid.ServerID()
	r.assignedServerID = &serverID
	r.agreedPrice = &price
	r.status = newStatus
	return nil
}

func (r *Recipient) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Recipient) setSequence(sequence int) error {
	if sequence < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"sequence is invalid",
			fmt.Errorf("%d is not greater than 0", sequence),
		)
	}
	r.sequence = sequence
	return nil
}

func (r *Recipient) setRecipientName(recipientName string) error {
	if recipientName == "" {
		return errs.NewValueIsRequiredError("recipientName is required")
	}
	r.recipientName = recipientName
	return nil
}

func (r *Recipient) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	r.address = address
	return nil
}

func (r *Recipient) setMode(mode AssignmentMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	r.mode = mode
	return nil
}

func (r *Recipient) setMaxAttempts(maxAttempts int) error {
	if maxAttempts < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxAttempts is invalid",
			fmt.Errorf("%d is not greater than 0", maxAttempts),
		)
	}
	r.maxAttempts = maxAttempts
	return nil
}

// Validate checks that the Recipient was properly constructed.
func (r *Recipient) Validate() error {
	if r == nil {
		return ErrRecipientIsNotConstructed
	}
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}
