package queries

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrGetOrderPricingQueryIsNotConstructed = errors.New(
	"GetOrderPricingQuery must be created via NewGetOrderPricingQuery constructor",
)

// GetOrderPricingQuery retrieves the price breakdown of an order: the
// confirmed total over recipients with an agreed price, the pending
// subtotal of recipients still negotiating, and the processing surcharge.
type GetOrderPricingQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderPricingQuery creates a pricing query for one order.
func NewGetOrderPricingQuery(orderID kernel.UUID) (GetOrderPricingQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderPricingQuery{}, err
	}

	return GetOrderPricingQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPricingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPricingQueryIsNotConstructed)
}

// OrderID returns the order being priced.
func (q GetOrderPricingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderPricingQueryResponse is the order-level price breakdown.
// PendingSubtotal is an estimate over unassigned recipients and is never
// folded into ConfirmedTotal.
type GetOrderPricingQueryResponse struct {
	OrderID         kernel.UUID
	Recipients      []RecipientPricingResponse
	Surcharge       kernel.Money
	ConfirmedTotal  kernel.Money
	PendingSubtotal kernel.Money
}

// RecipientPricingResponse is the price breakdown of one recipient.
type RecipientPricingResponse struct {
	RecipientID kernel.UUID
	Confirmed   bool
	Base        kernel.Money
	AddOns      kernel.Money
	Total       kernel.Money
}
