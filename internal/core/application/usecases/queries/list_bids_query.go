package queries

import (
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrListBidsQueryIsNotConstructed = errors.New(
	"ListBidsQuery must be created via NewListBidsQuery constructor",
)

// ListBidsQuery retrieves every bid on an order across all its recipients,
// including the standing counter-offer where one exists. Clients use it to
// render the negotiation board for an order.
type ListBidsQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListBidsQuery creates a query for an order's bids.
func NewListBidsQuery(orderID kernel.UUID) (ListBidsQuery, error) {
	if err := orderID.Validate(); err != nil {
		return ListBidsQuery{}, err
	}

	return ListBidsQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBidsQuery) Validate() error {
	return q.guard.Validate(ErrListBidsQueryIsNotConstructed)
}

// OrderID returns the order whose bids are being listed.
func (q ListBidsQuery) OrderID() kernel.UUID {
	return q.orderID
}

// ListBidsQueryResponse is one bid row. Counter-offer fields are nil while
// no counter stands; CurrentAmount is the counter amount when one does,
// the proposed amount otherwise.
type ListBidsQueryResponse struct {
	ID            kernel.UUID
	RecipientID   kernel.UUID
	ServerID      kernel.UUID
	Amount        kernel.Money
	CurrentAmount kernel.Money
	Comment       string
	Status        string
	CounterBy     string
	CounterAmount *kernel.Money
	CounterNotes  string
	CounterRound  int
	PlacedAt      time.Time
	LastActionAt  time.Time
}
