package queries

import (
	"context"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerOrdersQueryHandler retrieves order summaries for one customer.
// One joined query fetches every recipient status; the handler groups rows
// per order and derives each order's status in memory.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order queries.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve a customer's order summaries,
// soonest deadline first.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]GetCustomerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCustomerOrdersQueryResponse, 0)
	statuses := make([]order.Status, 0)
	var current *GetCustomerOrdersQueryResponse
	var currentID uuid.UUID

	flush := func() {
		if current == nil {
			return
		}
		if current.Cancelled {
			current.Status = order.OrderStatusCancelled.String()
		} else {
			current.Status = order.DeriveOrderStatus(statuses).String()
		}
		orders = append(orders, *current)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.deadline,
			o.doc_title,
			o.cancelled_at IS NOT NULL,
			r.status
		FROM orders o
		JOIN recipients r ON r.order_id = o.id
		WHERE o.customer_id = ?
		ORDER BY o.deadline, o.id, r.sequence
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var deadline time.Time
		var title string
		var cancelled bool
		var status int

		err = rows.Scan(&id, &deadline, &title, &cancelled, &status)
		if err != nil {
			return nil, err
		}

		if current == nil || id != currentID {
			flush()

			orderID, idErr := kernel.UUIDFromBytes(id[:])
			if idErr != nil {
				return nil, idErr
			}
			current = &GetCustomerOrdersQueryResponse{
				ID:            orderID,
				Deadline:      deadline,
				DocumentTitle: title,
				Cancelled:     cancelled,
			}
			currentID = id
			statuses = statuses[:0]
		}

		current.RecipientCount++
		statuses = append(statuses, order.Status(status))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	flush()

	return orders, nil
}
