package order

import (
	"errors"
	"fmt"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrDeliveryAttemptIsNotConstructed indicates that a DeliveryAttempt was not
// created through the NewDeliveryAttempt or RestoreDeliveryAttempt constructor.
var ErrDeliveryAttemptIsNotConstructed = errors.New(
	"DeliveryAttempt must be created via NewDeliveryAttempt or RestoreDeliveryAttempt constructor",
)

// Geolocation is an optional lat/lon fix recorded with a delivery attempt.
type Geolocation struct {
	Latitude  float64
	Longitude float64
}

// DeliveryAttempt records one physical attempt to serve a recipient.
// Attempt numbers are 1-based and contiguous per recipient; the Recipient
// owns the numbering and the ceiling, an attempt only records the outcome.
type DeliveryAttempt struct {
	id            kernel.UUID
	number        int
	serverID      kernel.UUID
	wasSuccessful bool
	notes         string
	geo           *Geolocation
	recordedAt    time.Time

	guard kernel.ConstructorGuard
}

// NewDeliveryAttempt creates a delivery attempt record.
// The attempt number must be positive; contiguity against prior attempts is
// enforced by the owning Recipient.
func NewDeliveryAttempt(
	id, serverID kernel.UUID,
	number int,
	wasSuccessful bool,
	notes string,
	geo *Geolocation,
	recordedAt time.Time,
) (*DeliveryAttempt, error) {
	attempt := &DeliveryAttempt{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		attempt.setID(id),
		attempt.setServerID(serverID),
		attempt.setNumber(number),
	); err != nil {
		return nil, err
	}

	attempt.wasSuccessful = wasSuccessful
	attempt.notes = notes
	attempt.geo = geo
	attempt.recordedAt = recordedAt
	return attempt, nil
}

// RestoreDeliveryAttempt reconstructs a delivery attempt from persistence.
func RestoreDeliveryAttempt(
	id, serverID kernel.UUID,
	number int,
	wasSuccessful bool,
	notes string,
	geo *Geolocation,
	recordedAt time.Time,
) (*DeliveryAttempt, error) {
	return NewDeliveryAttempt(id, serverID, number, wasSuccessful, notes, geo, recordedAt)
}

// IsEqual compares two attempts by identity.
func (a *DeliveryAttempt) IsEqual(other *DeliveryAttempt) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the attempt's unique identifier.
func (a *DeliveryAttempt) ID() kernel.UUID {
	return a.id
}

// Number returns the 1-based attempt number.
func (a *DeliveryAttempt) Number() int {
	return a.number
}

// ServerID returns the identifier of the server who made the attempt.
func (a *DeliveryAttempt) ServerID() kernel.UUID {
	return a.serverID
}

// WasSuccessful reports whether the documents were served on this attempt.
func (a *DeliveryAttempt) WasSuccessful() bool {
	return a.wasSuccessful
}

// Notes returns the outcome notes.
func (a *DeliveryAttempt) Notes() string {
	return a.notes
}

// Geo returns the recorded geolocation, nil if none was captured.
func (a *DeliveryAttempt) Geo() *Geolocation {
	return a.geo
}

// RecordedAt returns when the attempt was recorded.
func (a *DeliveryAttempt) RecordedAt() time.Time {
	return a.recordedAt
}

func (a *DeliveryAttempt) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *DeliveryAttempt) setServerID(serverID kernel.UUID) error {
	if err := serverID.Validate(); err != nil {
		return err
	}
	a.serverID = serverID
	return nil
}

func (a *DeliveryAttempt) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"attemptNumber is invalid",
			fmt.Errorf("%d is not greater than 0", number),
		)
	}
	a.number = number
	return nil
}

// Validate checks that the DeliveryAttempt was properly constructed.
func (a *DeliveryAttempt) Validate() error {
	if a == nil {
		return ErrDeliveryAttemptIsNotConstructed
	}
	return a.guard.Validate(ErrDeliveryAttemptIsNotConstructed)
}
