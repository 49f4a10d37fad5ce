package queries

import (
	"context"
	"database/sql"
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves order detail from the database.
// Order status is computed from the recipient status column on every read,
// the same derivation the aggregate applies, so the read model never drifts
// from the write model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order with its recipients.
// Returns ObjectNotFoundError when no order has the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var orderID uuid.UUID
	var customerID, tenantID uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			tenant_id,
			deadline,
			doc_title,
			doc_case_num,
			cancelled_at IS NOT NULL,
			cancel_cause,
			cancel_note
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&orderID,
		&customerID,
		&tenantID,
		&response.Deadline,
		&response.DocumentTitle,
		&response.DocumentCaseNumber,
		&response.Cancelled,
		&response.CancelReason,
		&response.CancelNotes,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TenantID, err = kernel.UUIDFromBytes(tenantID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}

	recipients, statuses, err := h.loadRecipients(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Recipients = recipients

	if response.Cancelled {
		response.Status = order.OrderStatusCancelled.String()
	} else {
		response.Status = order.DeriveOrderStatus(statuses).String()
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadRecipients(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderRecipientResponse, []order.Status, error) {
	recipients := make([]GetOrderRecipientResponse, 0)
	statuses := make([]order.Status, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			r.sequence,
			r.name,
			r.address_street,
			r.address_city,
			r.address_state,
			r.address_zip,
			r.mode,
			r.status,
			r.max_attempts,
			r.assigned_server_id,
			r.agreed_price_cents,
			(SELECT COUNT(*) FROM delivery_attempts WHERE recipient_id = r.id)
		FROM recipients r
		WHERE r.order_id = ?
		ORDER BY r.sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var recipient GetOrderRecipientResponse
		var id uuid.UUID
		var mode, status int
		var assignedServerID uuid.NullUUID
		var agreedPriceCents sql.NullInt64

		err = rows.Scan(
			&id,
			&recipient.Sequence,
			&recipient.Name,
			&recipient.Street,
			&recipient.City,
			&recipient.State,
			&recipient.Zip,
			&mode,
			&status,
			&recipient.MaxAttempts,
			&assignedServerID,
			&agreedPriceCents,
			&recipient.AttemptCount,
		)
		if err != nil {
			return nil, nil, err
		}

		recipientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, nil, idErr
		}
		recipient.ID = recipientID
		recipient.Mode = order.AssignmentMode(mode).String()
		recipient.Status = order.Status(status).String()

		if assignedServerID.Valid {
			serverID, serverErr := kernel.UUIDFromBytes(assignedServerID.UUID[:])
			if serverErr != nil {
				return nil, nil, serverErr
			}
			recipient.AssignedServerID = &serverID
		}
		if agreedPriceCents.Valid {
			price, priceErr := kernel.NewMoneyFromCents(agreedPriceCents.Int64)
			if priceErr != nil {
				return nil, nil, priceErr
			}
			recipient.AgreedPrice = &price
		}

		recipients = append(recipients, recipient)
		statuses = append(statuses, order.Status(status))
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	return recipients, statuses, nil
}
