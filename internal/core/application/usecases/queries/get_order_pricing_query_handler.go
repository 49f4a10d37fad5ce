package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/core/domain/services"
	"procserve/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderPricingQueryHandler derives the price breakdown of an order.
// Fee math belongs to the PricingCalculator domain service, so the handler
// reconstructs the recipients from their rows and delegates, rather than
// re-implementing the schedule in SQL.
type GetOrderPricingQueryHandler struct {
	db         *gorm.DB
	calculator services.PricingCalculator
}

// NewGetOrderPricingQueryHandler creates a handler for pricing queries.
func NewGetOrderPricingQueryHandler(
	db *gorm.DB,
	calculator services.PricingCalculator,
) GetOrderPricingQueryHandler {
	return GetOrderPricingQueryHandler{db: db, calculator: calculator}
}

// Handle executes the pricing query.
// Returns ObjectNotFoundError when no order has the given ID.
func (h GetOrderPricingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderPricingQuery,
) (GetOrderPricingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	aggregate, err := h.loadOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	pricing, err := h.calculator.PriceOrder(aggregate)
	if err != nil {
		return GetOrderPricingQueryResponse{}, err
	}

	response := GetOrderPricingQueryResponse{
		OrderID:         pricing.OrderID,
		Recipients:      make([]RecipientPricingResponse, 0, len(pricing.Recipients)),
		Surcharge:       pricing.Surcharge,
		ConfirmedTotal:  pricing.ConfirmedTotal,
		PendingSubtotal: pricing.PendingSubtotal,
	}
	for _, recipient := range pricing.Recipients {
		response.Recipients = append(response.Recipients, RecipientPricingResponse{
			RecipientID: recipient.RecipientID,
			Confirmed:   recipient.Confirmed,
			Base:        recipient.Base,
			AddOns:      recipient.AddOns,
			Total:       recipient.Total,
		})
	}

	return response, nil
}

// loadOrder reconstructs the order aggregate from its rows, without bids or
// attempts: pricing only needs recipient state.
func (h GetOrderPricingQueryHandler) loadOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.Order, error) {
	var customerIDRaw, tenantIDRaw uuid.UUID
	var deadline time.Time
	var docTitle, docCaseNum string

	row := h.db.WithContext(ctx).Raw(`
		SELECT customer_id, tenant_id, deadline, doc_title, doc_case_num
		FROM orders
		WHERE id = ?
	`, orderID.Bytes()).Row()

	err := row.Scan(&customerIDRaw, &tenantIDRaw, &deadline, &docTitle, &docCaseNum)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(customerIDRaw[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(tenantIDRaw[:])
	if err != nil {
		return nil, err
	}
	document, err := order.NewDocumentMeta(docTitle, docCaseNum)
	if err != nil {
		return nil, err
	}

	recipients, err := h.loadRecipients(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(orderID, customerID, tenantID, deadline, document, recipients, nil)
}

func (h GetOrderPricingQueryHandler) loadRecipients(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.Recipient, error) {
	recipients := make([]*order.Recipient, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sequence,
			name,
			address_street,
			address_city,
			address_state,
			address_zip,
			mode,
			process_service,
			certified_mail,
			rush_service,
			remote_location,
			max_attempts,
			status,
			designated_server_id,
			assigned_server_id,
			agreed_price_cents
		FROM recipients
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var sequence, mode, status, maxAttempts int
		var name, street, city, state, zip string
		var options order.ServiceOptions
		var designatedServerID, assignedServerID uuid.NullUUID
		var agreedPriceCents sql.NullInt64

		err = rows.Scan(
			&id,
			&sequence,
			&name,
			&street,
			&city,
			&state,
			&zip,
			&mode,
			&options.ProcessService,
			&options.CertifiedMail,
			&options.RushService,
			&options.RemoteLocation,
			&maxAttempts,
			&status,
			&designatedServerID,
			&assignedServerID,
			&agreedPriceCents,
		)
		if err != nil {
			return nil, err
		}

		recipientID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		address, addrErr := kernel.NewAddress(street, city, state, zip)
		if addrErr != nil {
			return nil, addrErr
		}

		designated, idErr := nullableUUID(designatedServerID)
		if idErr != nil {
			return nil, idErr
		}
		assigned, idErr := nullableUUID(assignedServerID)
		if idErr != nil {
			return nil, idErr
		}

		var agreedPrice *kernel.Money
		if agreedPriceCents.Valid {
			price, priceErr := kernel.NewMoneyFromCents(agreedPriceCents.Int64)
			if priceErr != nil {
				return nil, priceErr
			}
			agreedPrice = &price
		}

		recipient, restoreErr := order.RestoreRecipient(
			recipientID, sequence, name, address,
			order.AssignmentMode(mode), options, maxAttempts,
			order.Status(status),
			designated, assigned, agreedPrice,
			nil, nil,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		recipients = append(recipients, recipient)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return recipients, nil
}

func nullableUUID(raw uuid.NullUUID) (*kernel.UUID, error) {
	if !raw.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(raw.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
