package order

// LockReason explains why an order's structural fields may no longer be
// edited.
type LockReason int

const (
	// LockReasonNone means the order is still editable.
	LockReasonNone LockReason = iota
	// LockReasonAcceptedBid means a recipient already has an accepted bid.
	LockReasonAcceptedBid
	// LockReasonInProgress means delivery attempts have started.
	LockReasonInProgress
	// LockReasonCompleted means at least one recipient was served.
	LockReasonCompleted
	// LockReasonCancelled means the order was cancelled.
	LockReasonCancelled
)

func getLockReasonStrings() map[LockReason]string {
	return map[LockReason]string{
		LockReasonNone:        "",
		LockReasonAcceptedBid: "HAS_ACCEPTED_BID",
		LockReasonInProgress:  "IN_PROGRESS",
		LockReasonCompleted:   "COMPLETED",
		LockReasonCancelled:   "CANCELLED",
	}
}

// String returns the wire token for the lock reason.
func (r LockReason) String() string {
	return getLockReasonStrings()[r]
}

// Editability reports whether an order's structure may still be changed,
// and why not when it may not.
type Editability struct {
	CanEdit    bool
	LockReason LockReason
}

// DeriveEditability computes editability from the cancellation flag and the
// recipient statuses. The lock reason reflects the most advanced recipient.
func DeriveEditability(cancelled bool, statuses []Status) Editability {
	if cancelled {
		return Editability{CanEdit: false, LockReason: LockReasonCancelled}
	}

	reason := LockReasonNone
	for _, status := range statuses {
		var candidate LockReason
		switch status {
		case StatusCompleted:
			candidate = LockReasonCompleted
		case StatusInProgress, StatusFailed:
			candidate = LockReasonInProgress
		case StatusAssigned:
			candidate = LockReasonAcceptedBid
		default:
			continue
		}
		if candidate > reason {
			reason = candidate
		}
	}

	return Editability{CanEdit: reason == LockReasonNone, LockReason: reason}
}
