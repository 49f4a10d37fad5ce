package orderrepo

import (
	"context"
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM. The aggregate
// spans four tables; writes use full association saving so bids and attempts
// added in memory reach the database in the same statement batch.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with all its recipients to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order, upserting recipients, bids and attempts.
// The domain never removes child rows, so association rows only ever grow or
// change in place.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with all its recipients, bids and attempts.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return r.getOne(r.db.WithContext(ctx), id.Bytes())
}

// GetForUpdate retrieves an order by ID holding a row lock on the order for
// the rest of the transaction. Callers use it to serialize check-then-act
// state transitions against concurrent writers.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	if err := r.lockOrder(ctx, id.Bytes()); err != nil {
		return nil, err
	}
	return r.getOne(r.db.WithContext(ctx), id.Bytes())
}

// GetByBidID retrieves the order owning the given bid, locked for update.
func (r *GormOrderRepository) GetByBidID(ctx context.Context, bidID kernel.UUID) (*order.Order, error) {
	if err := bidID.Validate(); err != nil {
		return nil, err
	}

	var bidRow BidDTO
	if err := r.db.WithContext(ctx).
		Select("recipient_id").
		First(&bidRow, "id = ?", bidID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bid", bidID.String())
		}
		return nil, err
	}

	return r.getByRecipientRow(ctx, bidRow.RecipientID)
}

// GetByRecipientID retrieves the order owning the given recipient, locked
// for update.
func (r *GormOrderRepository) GetByRecipientID(ctx context.Context, recipientID kernel.UUID) (*order.Order, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, err
	}

	return r.getByRecipientRow(ctx, recipientID.Bytes())
}

// GetAllByCustomer retrieves all orders placed by the given customer.
func (r *GormOrderRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := withAssociations(r.db.WithContext(ctx)).
		Order("deadline").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithStalePendingBids retrieves, locked for update, every active
// order holding at least one pending bid whose last negotiation activity
// predates the cutoff.
func (r *GormOrderRepository) GetAllWithStalePendingBids(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var orderIDs []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Distinct().
		Joins("JOIN recipients ON recipients.id = bids.recipient_id").
		Joins("JOIN orders ON orders.id = recipients.order_id").
		Where("bids.status = ?", int(order.BidPending)).
		Where("bids.last_action_at < ?", cutoff).
		Where("orders.cancelled_at IS NULL").
		Pluck("recipients.order_id", &orderIDs).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(orderIDs))
	for _, orderID := range orderIDs {
		if lockErr := r.lockOrder(ctx, orderID); lockErr != nil {
			return nil, lockErr
		}
		aggregate, getErr := r.getOne(r.db.WithContext(ctx), orderID)
		if getErr != nil {
			return nil, getErr
		}
		orders = append(orders, aggregate)
	}

	return orders, nil
}

func (r *GormOrderRepository) getByRecipientRow(ctx context.Context, recipientID uuid.UUID) (*order.Order, error) {
	var recipientRow RecipientDTO
	if err := r.db.WithContext(ctx).
		Select("order_id").
		First(&recipientRow, "id = ?", recipientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("recipient", recipientID.String())
		}
		return nil, err
	}

	if err := r.lockOrder(ctx, recipientRow.OrderID); err != nil {
		return nil, err
	}
	return r.getOne(r.db.WithContext(ctx), recipientRow.OrderID)
}

func (r *GormOrderRepository) getOne(db *gorm.DB, id uuid.UUID) (*order.Order, error) {
	var dto OrderDTO
	if err := withAssociations(db).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// lockOrder takes FOR UPDATE on the orders row for the rest of the
// transaction. Child tables are not locked: every mutation path rereads them
// through the locked parent, so the parent lock is the serialization point.
func (r *GormOrderRepository) lockOrder(ctx context.Context, id uuid.UUID) error {
	var locked []uuid.UUID
	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Pluck("id", &locked).Error
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Recipients", func(db *gorm.DB) *gorm.DB {
			return db.Order("recipients.sequence")
		}).
		Preload("Recipients.Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order("bids.placed_at")
		}).
		Preload("Recipients.Attempts", func(db *gorm.DB) *gorm.DB {
			return db.Order("delivery_attempts.number")
		})
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}
