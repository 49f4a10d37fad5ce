package order

import (
	"procserve/internal/pkg/errs"
)

// OrderStatus is the order-level lifecycle state. It is never stored: apart
// from cancellation, which is recorded on the order itself, it is derived
// from the recipients' statuses on every read.
type OrderStatus int

const (
	// OrderStatusUnknown is an invalid zero value.
	OrderStatusUnknown OrderStatus = iota
	// OrderStatusOpen means no recipient has received a bid yet.
	OrderStatusOpen
	// OrderStatusBidding means at least one recipient is negotiating and
	// none has been assigned.
	OrderStatusBidding
	// OrderStatusPartiallyAssigned means some recipients have an accepted
	// bid while others are still negotiating.
	OrderStatusPartiallyAssigned
	// OrderStatusAssigned means every recipient has an accepted bid and
	// none has started delivery.
	OrderStatusAssigned
	// OrderStatusInProgress means delivery attempts are underway.
	OrderStatusInProgress
	// OrderStatusCompleted means every recipient was served.
	OrderStatusCompleted
	// OrderStatusFailed means at least one recipient exhausted its
	// attempts and none is still negotiating.
	OrderStatusFailed
	// OrderStatusCancelled means the customer cancelled the order. It is
	// terminal and overrides every derived state.
	OrderStatusCancelled
)

func getOrderStatusStrings() map[OrderStatus]string {
	return map[OrderStatus]string{
		OrderStatusUnknown:           "",
		OrderStatusOpen:              "OPEN",
		OrderStatusBidding:           "BIDDING",
		OrderStatusPartiallyAssigned: "PARTIALLY_ASSIGNED",
		OrderStatusAssigned:          "ASSIGNED",
		OrderStatusInProgress:        "IN_PROGRESS",
		OrderStatusCompleted:         "COMPLETED",
		OrderStatusFailed:            "FAILED",
		OrderStatusCancelled:         "CANCELLED",
	}
}

// Validate checks that the OrderStatus is one of the known states.
func (s OrderStatus) Validate() error {
	if s == OrderStatusUnknown {
		return errs.NewValueIsRequiredError("order status")
	}
	if _, ok := getOrderStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("order status")
	}
	return nil
}

// String returns the wire token for the status.
func (s OrderStatus) String() string {
	return getOrderStatusStrings()[s]
}

// deriveOrderStatus computes the order-level status from the recipients.
// It is a pure function: calling it twice against unchanged recipients
// yields the same result.
func deriveOrderStatus(recipients []*Recipient) OrderStatus {
	statuses := make([]Status, 0, len(recipients))
	for _, recipient := range recipients {
		statuses = append(statuses, recipient.Status())
	}
	return DeriveOrderStatus(statuses)
}

// DeriveOrderStatus computes the order-level status from recipient statuses.
// Read models use it to report the same status the aggregate would, without
// reconstructing it.
func DeriveOrderStatus(statuses []Status) OrderStatus {
	var (
		total      = len(statuses)
		completed  int
		failed     int
		negotiable int
		advanced   int
		dominant   = StatusOpen
	)

	for _, status := range statuses {
		switch status {
		case StatusCompleted:
			completed++
		case StatusFailed:
			failed++
		}
		if status.IsNegotiable() {
			negotiable++
		} else {
			advanced++
		}
		if status.progressRank() > dominant.progressRank() {
			dominant = status
		}
	}

	switch {
	case completed == total:
		return OrderStatusCompleted
	case failed > 0 && negotiable == 0:
		return OrderStatusFailed
	case advanced > 0 && advanced < total:
		return OrderStatusPartiallyAssigned
	}

	switch dominant {
	case StatusCompleted, StatusFailed, StatusInProgress:
		return OrderStatusInProgress
	case StatusAssigned:
		return OrderStatusAssigned
	case StatusBidding, StatusAwaitingQuote:
		return OrderStatusBidding
	default:
		return OrderStatusOpen
	}
}
