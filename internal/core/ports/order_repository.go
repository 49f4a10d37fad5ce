// Package ports defines repository interfaces for the service-of-process domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are loaded whole: every recipient with its bids and delivery
// attempts.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// its recipients, bids and delivery attempts.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order aggregate and locks its row for the
	// duration of the surrounding transaction. Commands that mutate a
	// recipient (bid acceptance, counters, delivery attempts) load through
	// this method so concurrent actors on the same recipient serialize
	// instead of both reading a stale state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByBidID retrieves the order owning the given bid, locked for
	// update.
	GetByBidID(ctx context.Context, bidID kernel.UUID) (*order.Order, error)

	// GetByRecipientID retrieves the order owning the given recipient,
	// locked for update.
	GetByRecipientID(ctx context.Context, recipientID kernel.UUID) (*order.Order, error)

	// GetAllByCustomer retrieves all orders placed by the given customer,
	// newest first.
	GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error)

	// GetAllWithStalePendingBids retrieves active orders carrying at least
	// one pending bid whose last negotiation activity predates the cutoff.
	// Used by the bid expiry job.
	GetAllWithStalePendingBids(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
