package order

import (
	"fmt"

	"procserve/internal/pkg/errs"
)

// BidStatus represents the resolution state of a bid.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Accepted and Rejected are terminal. At most one bid per recipient may ever
// reach Accepted; acceptance rejects all sibling pending bids.
type BidStatus int

const (
	// BidStatusUnknown represents an invalid or undefined bid status.
	BidStatusUnknown BidStatus = iota

	// BidPending means the bid is open for acceptance or counter-offers.
	BidPending

	// BidAccepted means the customer (or server, via a counter) accepted
	// this bid's price. The bid and its recipient are frozen.
	BidAccepted

	// BidRejected means the bid lost: explicitly, by a sibling's
	// acceptance, or by negotiation expiry.
	BidRejected
)

func getBidStatusStrings() map[BidStatus]string {
	return map[BidStatus]string{
		BidStatusUnknown: "UNKNOWN",
		BidPending:       "PENDING",
		BidAccepted:      "ACCEPTED",
		BidRejected:      "REJECTED",
	}
}

// Validate checks if the BidStatus value is valid.
func (s BidStatus) Validate() error {
	if s != BidPending && s != BidAccepted && s != BidRejected {
		return errs.NewValueIsInvalidErrorWithCause("bid status is invalid",
			fmt.Errorf("%d is not a valid bid status", s))
	}
	return nil
}

// String returns the wire token of the bid status, e.g. "PENDING".
func (s BidStatus) String() string {
	if str, ok := getBidStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsResolved reports whether the bid reached a terminal state.
func (s BidStatus) IsResolved() bool {
	return s == BidAccepted || s == BidRejected
}
