package queries

import (
	"context"
	"database/sql"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListBidsQueryHandler retrieves the bids of an order from the database.
type ListBidsQueryHandler struct {
	db *gorm.DB
}

// NewListBidsQueryHandler creates a handler for bid listing queries.
func NewListBidsQueryHandler(db *gorm.DB) ListBidsQueryHandler {
	return ListBidsQueryHandler{db: db}
}

// Handle executes the query to retrieve all bids on an order.
// Results are grouped by recipient sequence, oldest bid first within each.
func (h ListBidsQueryHandler) Handle(
	ctx context.Context,
	query ListBidsQuery,
) ([]ListBidsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bids := make([]ListBidsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.recipient_id,
			b.server_id,
			b.amount_cents,
			b.comment,
			b.status,
			b.counter_by,
			b.counter_amount_cents,
			b.counter_notes,
			b.counter_round,
			b.placed_at,
			b.last_action_at
		FROM bids b
		JOIN recipients r ON r.id = b.recipient_id
		WHERE r.order_id = ?
		ORDER BY r.sequence, b.placed_at
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var bid ListBidsQueryResponse
		var id, recipientID, serverID uuid.UUID
		var amountCents int64
		var status int
		var counterBy, counterRound sql.NullInt64
		var counterAmountCents sql.NullInt64
		var counterNotes sql.NullString

		err = rows.Scan(
			&id,
			&recipientID,
			&serverID,
			&amountCents,
			&bid.Comment,
			&status,
			&counterBy,
			&counterAmountCents,
			&counterNotes,
			&counterRound,
			&bid.PlacedAt,
			&bid.LastActionAt,
		)
		if err != nil {
			return nil, err
		}

		if bid.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if bid.RecipientID, err = kernel.UUIDFromBytes(recipientID[:]); err != nil {
			return nil, err
		}
		if bid.ServerID, err = kernel.UUIDFromBytes(serverID[:]); err != nil {
			return nil, err
		}
		if bid.Amount, err = kernel.NewMoneyFromCents(amountCents); err != nil {
			return nil, err
		}

		bid.Status = order.BidStatus(status).String()
		bid.CurrentAmount = bid.Amount

		if counterBy.Valid && counterAmountCents.Valid {
			counterAmount, amountErr := kernel.NewMoneyFromCents(counterAmountCents.Int64)
			if amountErr != nil {
				return nil, amountErr
			}
			bid.CounterBy = order.Party(counterBy.Int64).String()
			bid.CounterAmount = &counterAmount
			bid.CounterNotes = counterNotes.String
			bid.CounterRound = int(counterRound.Int64)
			bid.CurrentAmount = counterAmount
		}

		bids = append(bids, bid)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
