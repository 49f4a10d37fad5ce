package order

import (
	"errors"
	"fmt"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

var (
	// ErrBidIsNotConstructed indicates that a Bid was not created through
	// the NewBid or RestoreBid constructor.
	ErrBidIsNotConstructed = errors.New("Bid must be created via NewBid or RestoreBid constructor")

	// ErrNoCounterOffer indicates an attempt to accept a counter-offer on
	// a bid that has none.
	ErrNoCounterOffer = errors.New("bid has no counter-offer to accept")
)

// CounterOffer is the negotiation state of a bid once either party has
// countered the standing price. It replaces the loose bag of nullable
// counter fields with one explicit variant: a bid is either at its proposed
// amount (counter == nil) or at the latest counter (counter != nil).
type CounterOffer struct {
	by     Party
	amount kernel.Money
	notes  string
	round  int
}

// RestoreCounterOffer reconstructs a CounterOffer from persistence.
func RestoreCounterOffer(by Party, amount kernel.Money, notes string, round int) (CounterOffer, error) {
	if err := by.Validate(); err != nil {
		return CounterOffer{}, err
	}
	if err := amount.Validate(); err != nil {
		return CounterOffer{}, err
	}
	if round < 1 {
		return CounterOffer{}, errs.NewValueIsInvalidErrorWithCause(
			"round is invalid",
			fmt.Errorf("%d is not greater than 0", round),
		)
	}

	return CounterOffer{by: by, amount: amount, notes: notes, round: round}, nil
}

// By returns the party that issued this counter.
func (c CounterOffer) By() Party {
	return c.by
}

// Amount returns the countered price.
func (c CounterOffer) Amount() kernel.Money {
	return c.amount
}

// Notes returns the free-text notes attached to the counter.
func (c CounterOffer) Notes() string {
	return c.notes
}

// Round returns the 1-based counter round. The original proposal is round 0.
func (c CounterOffer) Round() int {
	return c.round
}

// Bid is a price proposal by a process server for one recipient.
//
// A bid starts Pending at the proposed amount. While Pending, the customer
// and the proposing server alternate counter-offers; the party that issued
// the latest counter may not counter again. Acceptance by either side
// resolves the bid and freezes it. At most one bid per recipient is ever
// accepted; that invariant is owned by the Recipient, which is the only
// place bids are resolved.
type Bid struct {
	id           kernel.UUID
	serverID     kernel.UUID
	amount       kernel.Money
	comment      string
	status       BidStatus
	counter      *CounterOffer
	placedAt     time.Time
	lastActionAt time.Time

	guard kernel.ConstructorGuard
}

// NewBid creates a pending bid at the proposed amount.
// The amount must be strictly positive.
func NewBid(id, serverID kernel.UUID, amount kernel.Money, comment string, placedAt time.Time) (*Bid, error) {
	bid := &Bid{
		status: BidPending,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		bid.setID(id),
		bid.setServerID(serverID),
		bid.setAmount(amount),
	); err != nil {
		return nil, err
	}

	bid.comment = comment
	bid.placedAt = placedAt
	bid.lastActionAt = placedAt
	return bid, nil
}

// RestoreBid reconstructs a bid from persistence, including its resolution
// and any standing counter-offer.
func RestoreBid(
	id, serverID kernel.UUID,
	amount kernel.Money,
	comment string,
	status BidStatus,
	counter *CounterOffer,
	placedAt, lastActionAt time.Time,
) (*Bid, error) {
	bid := &Bid{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		bid.setID(id),
		bid.setServerID(serverID),
		bid.setAmount(amount),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	bid.comment = comment
	bid.status = status
	bid.counter = counter
	bid.placedAt = placedAt
	bid.lastActionAt = lastActionAt
	return bid, nil
}

// IsEqual compares two bids by identity.
func (b *Bid) IsEqual(other *Bid) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bid's unique identifier.
func (b *Bid) ID() kernel.UUID {
	return b.id
}

// ServerID returns the proposing process server's identifier.
func (b *Bid) ServerID() kernel.UUID {
	return b.serverID
}

// Amount returns the originally proposed price.
func (b *Bid) Amount() kernel.Money {
	return b.amount
}

// Comment returns the free-text comment attached to the proposal.
func (b *Bid) Comment() string {
	return b.comment
}

// Status returns the bid's resolution state.
func (b *Bid) Status() BidStatus {
	return b.status
}

// Counter returns the standing counter-offer, nil while the bid is at its
// proposed amount.
func (b *Bid) Counter() *CounterOffer {
	return b.counter
}

// PlacedAt returns when the bid was proposed.
func (b *Bid) PlacedAt() time.Time {
	return b.placedAt
}

// LastActionAt returns when the bid last saw negotiation activity.
// The negotiation expiry policy keys off this timestamp.
func (b *Bid) LastActionAt() time.Time {
	return b.lastActionAt
}

// LastCounterBy returns the party whose price is currently on the table:
// the proposing server until a counter lands, then whoever countered last.
func (b *Bid) LastCounterBy() Party {
	if b.counter == nil {
		return PartyProcessServer
	}
	return b.counter.by
}

// CounterRound returns the number of counters issued so far.
func (b *Bid) CounterRound() int {
	if b.counter == nil {
		return 0
	}
	return b.counter.round
}

// CurrentAmount returns the price currently on the table: the latest counter
// amount if one exists, the proposed amount otherwise.
func (b *Bid) CurrentAmount() kernel.Money {
	if b.counter != nil {
		return b.counter.amount
	}
	return b.amount
}

// CounterBy records a counter-offer from the given party.
//
// Counters strictly alternate: the party whose price is already on the table
// may not counter again before the other side responds. maxRounds caps the
// total number of counters (0 means uncapped).
func (b *Bid) CounterBy(by Party, amount kernel.Money, notes string, maxRounds int, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("counter amount %s is not greater than 0", amount),
		)
	}

	if b.status.IsResolved() {
		return errs.NewConflictErrorWithCause(
			"bid is already resolved",
			fmt.Errorf("bid %s is %s", b.id, b.status),
		)
	}

	if by == b.LastCounterBy() {
		return errs.NewOutOfTurnError(by.String())
	}

	round := b.CounterRound() + 1
	if maxRounds > 0 && round > maxRounds {
		return errs.NewConflictErrorWithCause(
			"negotiation round limit reached",
			fmt.Errorf("round %d exceeds the limit of %d", round, maxRounds),
		)
	}

	b.counter = &CounterOffer{by: by, amount: amount, notes: notes, round: round}
	b.lastActionAt = now
	return nil
}

// accept resolves the bid as Accepted. Only the owning Recipient calls this,
// after it has verified the at-most-one-accepted invariant.
func (b *Bid) accept(now time.Time) error {
	if b.status != BidPending {
		return errs.NewConflictErrorWithCause(
			"bid is already resolved",
			fmt.Errorf("bid %s is %s", b.id, b.status),
		)
	}

	b.status = BidAccepted
	b.lastActionAt = now
	return nil
}

// reject resolves the bid as Rejected. No-op on already resolved bids so
// sibling rejection during acceptance is idempotent.
func (b *Bid) reject(now time.Time) {
	if b.status != BidPending {
		return
	}

	b.status = BidRejected
	b.lastActionAt = now
}

func (b *Bid) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bid) setServerID(serverID kernel.UUID) error {
	if err := serverID.Validate(); err != nil {
		return err
	}
	b.serverID = serverID
	return nil
}

func (b *Bid) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("bid amount %s is not greater than 0", amount),
		)
	}
	b.amount = amount
	return nil
}

// Validate checks that the Bid was properly constructed.
func (b *Bid) Validate() error {
	if b == nil {
		return ErrBidIsNotConstructed
	}
	return b.guard.Validate(ErrBidIsNotConstructed)
}
