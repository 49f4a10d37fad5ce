package order

import (
	"fmt"

	"procserve/internal/pkg/errs"
)

// Status represents the recipient lifecycle state. It implements a state
// machine with defined transitions so recipients follow the correct workflow.
//
// State transitions:
//
//	Open ──> Bidding ──┐
//	                   ├──> Assigned ──> InProgress ──> Completed
//	AwaitingQuote ─────┘         │            │
//	                             └────────────┴────────> Failed
//
// Open and Bidding belong to bidding-market recipients; AwaitingQuote is the
// initial state of guided-direct recipients, which skip the open market and
// wait for the designated server's quote. Completed and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusOpen is the initial status of a bidding-market recipient.
	// No bid has been placed yet.
	StatusOpen

	// StatusBidding indicates at least one bid has landed on a
	// bidding-market recipient and negotiation may be underway.
	StatusBidding

	// StatusAwaitingQuote is the initial status of a guided-direct
	// recipient: a server is designated but no price is agreed.
	StatusAwaitingQuote

	// StatusAssigned indicates a bid was accepted. The assigned server and
	// agreed price are fixed from this point on.
	StatusAssigned

	// StatusInProgress indicates at least one delivery attempt has been
	// recorded and attempts remain.
	StatusInProgress

	// StatusCompleted indicates a successful delivery. Terminal.
	StatusCompleted

	// StatusFailed indicates the attempt ceiling was exhausted without a
	// successful delivery. Terminal.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "UNKNOWN",
		StatusOpen:          "OPEN",
		StatusBidding:       "BIDDING",
		StatusAwaitingQuote: "AWAITING_QUOTE",
		StatusAssigned:      "ASSIGNED",
		StatusInProgress:    "IN_PROGRESS",
		StatusCompleted:     "COMPLETED",
		StatusFailed:        "FAILED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusOpen:          "OPEN",
		StatusBidding:       "BIDDING",
		StatusAwaitingQuote: "AWAITING_QUOTE",
		StatusAssigned:      "ASSIGNED",
		StatusInProgress:    "IN_PROGRESS",
		StatusCompleted:     "COMPLETED",
		StatusFailed:        "FAILED",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire token of the status, e.g. "AWAITING_QUOTE".
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// progressRank orders statuses by how far the recipient has advanced.
// Used when deriving the order-level status from its recipients.
func (s Status) progressRank() int {
	switch s {
	case StatusOpen:
		return 0
	case StatusAwaitingQuote:
		return 1
	case StatusBidding:
		return 2
	case StatusAssigned:
		return 3
	case StatusInProgress:
		return 4
	case StatusFailed:
		return 5
	case StatusCompleted:
		return 6
	default:
		return -1
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// HasAcceptedPrice reports whether the recipient has passed the acceptance
// point, i.e. exactly one of its bids is accepted.
func (s Status) HasAcceptedPrice() bool {
	return s == StatusAssigned || s == StatusInProgress || s.IsTerminal()
}

// IsNegotiable reports whether new bids or counter-offers may still arrive.
func (s Status) IsNegotiable() bool {
	return s == StatusOpen || s == StatusBidding || s == StatusAwaitingQuote
}

// StartBidding transitions Open to Bidding when the first bid lands on a
// bidding-market recipient. Bidding to Bidding is allowed for later bids.
func (s Status) StartBidding() (Status, error) {
	if s != StatusOpen && s != StatusBidding {
		return 0, errs.NewConflictErrorWithCause(
			"recipient is not accepting bids",
			fmt.Errorf("%s is not a valid status to start bidding", s),
		)
	}

	return StatusBidding, nil
}

// Assign transitions to Assigned when a bid is accepted.
//
// Valid from Open, Bidding and AwaitingQuote. Accepting a second bid once
// Assigned (or later) is the classic double-acceptance race and fails with a
// conflict.
func (s Status) Assign() (Status, error) {
	if !s.IsNegotiable() {
		return 0, errs.NewConflictErrorWithCause(
			"recipient already has an accepted bid",
			fmt.Errorf("%s is not a valid status to assign", s),
		)
	}

	return StatusAssigned, nil
}

// BeginAttempt transitions to InProgress on a recorded delivery attempt that
// leaves attempts remaining. Valid from Assigned and InProgress.
func (s Status) BeginAttempt() (Status, error) {
	if s != StatusAssigned && s != StatusInProgress {
		return 0, errs.NewConflictErrorWithCause(
			"recipient is not ready for delivery attempts",
			fmt.Errorf("%s is not a valid status to record an attempt", s),
		)
	}

	return StatusInProgress, nil
}

// Complete transitions to Completed on a successful delivery attempt.
// Valid from Assigned and InProgress. Terminal.
func (s Status) Complete() (Status, error) {
	if s != StatusAssigned && s != StatusInProgress {
		return 0, errs.NewConflictErrorWithCause(
			"recipient cannot be completed",
			fmt.Errorf("%s is not a valid status to complete", s),
		)
	}

	return StatusCompleted, nil
}

// Fail transitions to Failed when the attempt ceiling is exhausted.
// Valid from Assigned and InProgress. Terminal.
func (s Status) Fail() (Status, error) {
	if s != StatusAssigned && s != StatusInProgress {
		return 0, errs.NewConflictErrorWithCause(
			"recipient cannot be failed",
			fmt.Errorf("%s is not a valid status to fail", s),
		)
	}

	return StatusFailed, nil
}
