// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and their relational
// representation across the orders, recipients, bids and delivery_attempts
// tables.
package orderrepo

import (
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order status is intentionally absent: it is derived from the recipients on
// every read, so only the cancellation record is the order's own state.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID `gorm:"type:uuid;index"`
	TenantID    uuid.UUID `gorm:"type:uuid;index"`
	Deadline    time.Time
	DocTitle    string
	DocCaseNum  string
	CancelledBy *uuid.UUID `gorm:"type:uuid"`
	CancelledAt *time.Time
	CancelNote  string
	CancelCause string

	Recipients []RecipientDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RecipientDTO represents one delivery destination row of an order.
type RecipientDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID            uuid.UUID `gorm:"type:uuid;index"`
	Sequence           int
	Name               string
	Address            AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Mode               int
	ProcessService     bool
	CertifiedMail      bool
	RushService        bool
	RemoteLocation     bool
	MaxAttempts        int
	Status             int
	DesignatedServerID *uuid.UUID `gorm:"type:uuid"`
	AssignedServerID   *uuid.UUID `gorm:"type:uuid"`
	AgreedPriceCents   *int64

	Bids     []BidDTO             `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Attempts []DeliveryAttemptDTO `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for recipient entities.
func (RecipientDTO) TableName() string {
	return "recipients"
}

// AddressDTO represents the embedded service address within the recipient
// table.
type AddressDTO struct {
	Street string
	City   string
	State  string
	Zip    string `gorm:"index"`
}

// BidDTO represents a bid row, with the standing counter-offer flattened
// into nullable columns.
type BidDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID        uuid.UUID `gorm:"type:uuid;index"`
	ServerID           uuid.UUID `gorm:"type:uuid;index"`
	AmountCents        int64
	Comment            string
	Status             int `gorm:"index"`
	CounterBy          *int
	CounterAmountCents *int64
	CounterNotes       *string
	CounterRound       *int
	PlacedAt           time.Time
	LastActionAt       time.Time `gorm:"index"`
}

// TableName specifies the database table name for bid entities.
func (BidDTO) TableName() string {
	return "bids"
}

// DeliveryAttemptDTO represents one delivery attempt row.
type DeliveryAttemptDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID   uuid.UUID `gorm:"type:uuid;index"`
	ServerID      uuid.UUID `gorm:"type:uuid"`
	Number        int
	WasSuccessful bool
	Notes         string
	GeoLatitude   *float64
	GeoLongitude  *float64
	RecordedAt    time.Time
}

// TableName specifies the database table name for delivery attempt entities.
func (DeliveryAttemptDTO) TableName() string {
	return "delivery_attempts"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		TenantID:   aggregate.TenantID().Bytes(),
		Deadline:   aggregate.Deadline(),
		DocTitle:   aggregate.Document().Title(),
		DocCaseNum: aggregate.Document().CaseNumber(),
	}

	if cancellation := aggregate.Cancellation(); cancellation != nil {
		by := cancellation.CancelledBy().Bytes()
		at := cancellation.CancelledAt()
		dto.CancelledBy = &by
		dto.CancelledAt = &at
		dto.CancelCause = cancellation.Reason()
		dto.CancelNote = cancellation.Notes()
	}

	for _, recipient := range aggregate.Recipients() {
		dto.Recipients = append(dto.Recipients, recipientFromDomain(aggregate.ID(), recipient))
	}

	return dto
}

func recipientFromDomain(orderID kernel.UUID, recipient *order.Recipient) RecipientDTO {
	dto := RecipientDTO{
		ID:       recipient.ID().Bytes(),
		OrderID:  orderID.Bytes(),
		Sequence: recipient.Sequence(),
		Name:     recipient.RecipientName(),
		Address: AddressDTO{
			Street: recipient.Address().Street(),
			City:   recipient.Address().City(),
			State:  recipient.Address().State(),
			Zip:    recipient.Address().Zip(),
		},
		Mode:           int(recipient.Mode()),
		ProcessService: recipient.Options().ProcessService,
		CertifiedMail:  recipient.Options().CertifiedMail,
		RushService:    recipient.Options().RushService,
		RemoteLocation: recipient.Options().RemoteLocation,
		MaxAttempts:    recipient.MaxAttempts(),
		Status:         int(recipient.Status()),
	}

	if id := recipient.DesignatedServerID(); id != nil {
		raw := id.Bytes()
		dto.DesignatedServerID = &raw
	}
	if id := recipient.AssignedServerID(); id != nil {
		raw := id.Bytes()
		dto.AssignedServerID = &raw
	}
	if price := recipient.AgreedPrice(); price != nil {
		cents := price.Cents()
		dto.AgreedPriceCents = &cents
	}

	for _, bid := range recipient.Bids() {
		dto.Bids = append(dto.Bids, bidFromDomain(recipient.ID(), bid))
	}
	for _, attempt := range recipient.Attempts() {
		dto.Attempts = append(dto.Attempts, attemptFromDomain(recipient.ID(), attempt))
	}

	return dto
}

func bidFromDomain(recipientID kernel.UUID, bid *order.Bid) BidDTO {
	dto := BidDTO{
		ID:           bid.ID().Bytes(),
		RecipientID:  recipientID.Bytes(),
		ServerID:     bid.ServerID().Bytes(),
		AmountCents:  bid.Amount().Cents(),
		Comment:      bid.Comment(),
		Status:       int(bid.Status()),
		PlacedAt:     bid.PlacedAt(),
		LastActionAt: bid.LastActionAt(),
	}

	if counter := bid.Counter(); counter != nil {
		by := int(counter.By())
		cents := counter.Amount().Cents()
		notes := counter.Notes()
		round := counter.Round()
		dto.CounterBy = &by
		dto.CounterAmountCents = &cents
		dto.CounterNotes = &notes
		dto.CounterRound = &round
	}

	return dto
}

func attemptFromDomain(recipientID kernel.UUID, attempt *order.DeliveryAttempt) DeliveryAttemptDTO {
	dto := DeliveryAttemptDTO{
		ID:            attempt.ID().Bytes(),
		RecipientID:   recipientID.Bytes(),
		ServerID:      attempt.ServerID().Bytes(),
		Number:        attempt.Number(),
		WasSuccessful: attempt.WasSuccessful(),
		Notes:         attempt.Notes(),
		RecordedAt:    attempt.RecordedAt(),
	}

	if geo := attempt.Geo(); geo != nil {
		lat := geo.Latitude
		lon := geo.Longitude
		dto.GeoLatitude = &lat
		dto.GeoLongitude = &lon
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	tenantID, err := kernel.UUIDFromBytes(dto.TenantID[:])
	if err != nil {
		return nil, err
	}

	document, err := order.NewDocumentMeta(dto.DocTitle, dto.DocCaseNum)
	if err != nil {
		return nil, err
	}

	recipients := make([]*order.Recipient, 0, len(dto.Recipients))
	for _, recipientDTO := range dto.Recipients {
		recipient, recipientErr := recipientToDomain(recipientDTO)
		if recipientErr != nil {
			return nil, recipientErr
		}
		recipients = append(recipients, recipient)
	}

	var cancellation *order.Cancellation
	if dto.CancelledBy != nil && dto.CancelledAt != nil {
		by, byErr := kernel.UUIDFromBytes((*dto.CancelledBy)[:])
		if byErr != nil {
			return nil, byErr
		}
		cancellation, err = order.RestoreCancellation(dto.CancelCause, dto.CancelNote, by, *dto.CancelledAt)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(id, customerID, tenantID, dto.Deadline, document, recipients, cancellation)
}

func recipientToDomain(dto RecipientDTO) (*order.Recipient, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.Zip)
	if err != nil {
		return nil, err
	}

	designatedServerID, err := optionalUUID(dto.DesignatedServerID)
	if err != nil {
		return nil, err
	}
	assignedServerID, err := optionalUUID(dto.AssignedServerID)
	if err != nil {
		return nil, err
	}

	var agreedPrice *kernel.Money
	if dto.AgreedPriceCents != nil {
		price, priceErr := kernel.NewMoneyFromCents(*dto.AgreedPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		agreedPrice = &price
	}

	bids := make([]*order.Bid, 0, len(dto.Bids))
	for _, bidDTO := range dto.Bids {
		bid, bidErr := bidToDomain(bidDTO)
		if bidErr != nil {
			return nil, bidErr
		}
		bids = append(bids, bid)
	}

	attempts := make([]*order.DeliveryAttempt, 0, len(dto.Attempts))
	for _, attemptDTO := range dto.Attempts {
		attempt, attemptErr := attemptToDomain(attemptDTO)
		if attemptErr != nil {
			return nil, attemptErr
		}
		attempts = append(attempts, attempt)
	}

	return order.RestoreRecipient(
		id, dto.Sequence, dto.Name, address,
		order.AssignmentMode(dto.Mode),
		order.ServiceOptions{
			ProcessService: dto.ProcessService,
			CertifiedMail:  dto.CertifiedMail,
			RushService:    dto.RushService,
			RemoteLocation: dto.RemoteLocation,
		},
		dto.MaxAttempts,
		order.Status(dto.Status),
		designatedServerID, assignedServerID, agreedPrice,
		bids, attempts,
	)
}

func bidToDomain(dto BidDTO) (*order.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serverID, err := kernel.UUIDFromBytes(dto.ServerID[:])
	if err != nil {
		return nil, err
	}
	amount, err := kernel.NewMoneyFromCents(dto.AmountCents)
	if err != nil {
		return nil, err
	}

	var counter *order.CounterOffer
	if dto.CounterBy != nil && dto.CounterAmountCents != nil && dto.CounterRound != nil {
		counterAmount, amountErr := kernel.NewMoneyFromCents(*dto.CounterAmountCents)
		if amountErr != nil {
			return nil, amountErr
		}

		var notes string
		if dto.CounterNotes != nil {
			notes = *dto.CounterNotes
		}

		restored, counterErr := order.RestoreCounterOffer(
			order.Party(*dto.CounterBy), counterAmount, notes, *dto.CounterRound,
		)
		if counterErr != nil {
			return nil, counterErr
		}
		counter = &restored
	}

	return order.RestoreBid(
		id, serverID, amount, dto.Comment,
		order.BidStatus(dto.Status), counter,
		dto.PlacedAt, dto.LastActionAt,
	)
}

func attemptToDomain(dto DeliveryAttemptDTO) (*order.DeliveryAttempt, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	serverID, err := kernel.UUIDFromBytes(dto.ServerID[:])
	if err != nil {
		return nil, err
	}

	var geo *order.Geolocation
	if dto.GeoLatitude != nil && dto.GeoLongitude != nil {
		geo = &order.Geolocation{
			Latitude:  *dto.GeoLatitude,
			Longitude: *dto.GeoLongitude,
		}
	}

	return order.RestoreDeliveryAttempt(
		id, serverID, dto.Number, dto.WasSuccessful, dto.Notes, geo, dto.RecordedAt,
	)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
