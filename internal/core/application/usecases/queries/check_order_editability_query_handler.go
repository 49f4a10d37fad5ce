package queries

import (
	"context"
	"database/sql"
	"errors"

	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"gorm.io/gorm"
)

// CheckOrderEditabilityQueryHandler computes order editability from the
// cancellation flag and recipient statuses, using the same derivation the
// aggregate applies.
type CheckOrderEditabilityQueryHandler struct {
	db *gorm.DB
}

// NewCheckOrderEditabilityQueryHandler creates a handler for editability queries.
func NewCheckOrderEditabilityQueryHandler(db *gorm.DB) CheckOrderEditabilityQueryHandler {
	return CheckOrderEditabilityQueryHandler{db: db}
}

// Handle executes the editability check.
// Returns ObjectNotFoundError when no order has the given ID.
func (h CheckOrderEditabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckOrderEditabilityQuery,
) (CheckOrderEditabilityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CheckOrderEditabilityQueryResponse{}, err
	}

	var cancelled bool
	row := h.db.WithContext(ctx).Raw(`
		SELECT cancelled_at IS NOT NULL
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&cancelled)
	if errors.Is(err, sql.ErrNoRows) {
		return CheckOrderEditabilityQueryResponse{},
			errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return CheckOrderEditabilityQueryResponse{}, err
	}

	statuses := make([]order.Status, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status
		FROM recipients
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return CheckOrderEditabilityQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var status int
		if err = rows.Scan(&status); err != nil {
			return CheckOrderEditabilityQueryResponse{}, err
		}
		statuses = append(statuses, order.Status(status))
	}

	if err = rows.Err(); err != nil {
		return CheckOrderEditabilityQueryResponse{}, err
	}

	editability := order.DeriveEditability(cancelled, statuses)
	return CheckOrderEditabilityQueryResponse{
		CanEdit:    editability.CanEdit,
		LockReason: editability.LockReason.String(),
	}, nil
}
