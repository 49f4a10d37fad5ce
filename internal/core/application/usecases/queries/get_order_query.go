// Package queries implements the read side of the use case layer. Handlers
// run raw SQL against the read database and map rows into response structs,
// bypassing the aggregate repositories for cheap, purpose-shaped reads.
package queries

import (
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its recipients for display.
// The order status in the response is derived from the recipient rows,
// matching what the aggregate would report.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	detail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", detail.ID, detail.Status)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the order being fetched.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the detail view of one order. Status and
// Editability carry wire tokens, not internal enum values.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	CustomerID         kernel.UUID
	TenantID           kernel.UUID
	Deadline           time.Time
	DocumentTitle      string
	DocumentCaseNumber string
	Status             string
	Cancelled          bool
	CancelReason       string
	CancelNotes        string
	Recipients         []GetOrderRecipientResponse
}

// GetOrderRecipientResponse is the detail view of one recipient row.
type GetOrderRecipientResponse struct {
	ID               kernel.UUID
	Sequence         int
	Name             string
	Street           string
	City             string
	State            string
	Zip              string
	Mode             string
	Status           string
	MaxAttempts      int
	AttemptCount     int
	AssignedServerID *kernel.UUID
	AgreedPrice      *kernel.Money
}
