package queries

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrCheckOrderEditabilityQueryIsNotConstructed = errors.New(
	"CheckOrderEditabilityQuery must be created via NewCheckOrderEditabilityQuery constructor",
)

// CheckOrderEditabilityQuery reports whether an order's structural fields
// may still be edited, and the lock reason when they may not. Clients call
// it before offering an edit or cancel action.
//
// Example:
//
//	query, err := NewCheckOrderEditabilityQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewCheckOrderEditabilityQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !result.CanEdit {
//	    fmt.Printf("Order locked: %s\n", result.LockReason)
//	}
type CheckOrderEditabilityQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCheckOrderEditabilityQuery creates an editability query.
func NewCheckOrderEditabilityQuery(orderID kernel.UUID) (CheckOrderEditabilityQuery, error) {
	if err := orderID.Validate(); err != nil {
		return CheckOrderEditabilityQuery{}, err
	}

	return CheckOrderEditabilityQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CheckOrderEditabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckOrderEditabilityQueryIsNotConstructed)
}

// OrderID returns the order being checked.
func (q CheckOrderEditabilityQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CheckOrderEditabilityQueryResponse reports the editability verdict.
// LockReason is empty while CanEdit is true, otherwise one of the lock
// reason wire tokens: HAS_ACCEPTED_BID, IN_PROGRESS, COMPLETED, CANCELLED.
type CheckOrderEditabilityQueryResponse struct {
	CanEdit    bool
	LockReason string
}
