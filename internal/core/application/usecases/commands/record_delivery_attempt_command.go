package commands

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/order"
	"procserve/internal/pkg/guard"
)

var ErrRecordDeliveryAttemptCommandIsNotConstructed = errors.New(
	"RecordDeliveryAttemptCommand must be created via NewRecordDeliveryAttemptCommand constructor",
)

// RecordDeliveryAttemptCommand represents the assigned server logging one
// service attempt against a recipient, with an optional capture location.
type RecordDeliveryAttemptCommand struct { //nolint:recvcheck //using for validation
	attemptID     kernel.UUID
	recipientID   kernel.UUID
	serverID      kernel.UUID
	wasSuccessful bool
	notes         string
	geo           *order.Geolocation

	guard guard.ConstructorGuard
}

// NewRecordDeliveryAttemptCommand creates a command to record a delivery attempt.
func NewRecordDeliveryAttemptCommand(
	attemptID, recipientID, serverID kernel.UUID,
	wasSuccessful bool,
	notes string,
	geo *order.Geolocation,
) (RecordDeliveryAttemptCommand, error) {
	command := RecordDeliveryAttemptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		attemptID.Validate(),
		recipientID.Validate(),
		serverID.Validate(),
	); err != nil {
		return RecordDeliveryAttemptCommand{}, err
	}

	command.attemptID = attemptID
	command.recipientID = recipientID
	command.serverID = serverID
	command.wasSuccessful = wasSuccessful
	command.notes = notes
	command.geo = geo
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryAttemptCommandIsNotConstructed)
}

// AttemptID returns the client-supplied identifier of the new attempt.
func (c RecordDeliveryAttemptCommand) AttemptID() kernel.UUID {
	return c.attemptID
}

// RecipientID returns the recipient the attempt was made against.
func (c RecordDeliveryAttemptCommand) RecipientID() kernel.UUID {
	return c.recipientID
}

// ServerID returns the acting process server.
func (c RecordDeliveryAttemptCommand) ServerID() kernel.UUID {
	return c.serverID
}

// WasSuccessful reports whether the papers were served.
func (c RecordDeliveryAttemptCommand) WasSuccessful() bool {
	return c.wasSuccessful
}

// Notes returns the server's field notes.
func (c RecordDeliveryAttemptCommand) Notes() string {
	return c.notes
}

// Geolocation returns where the attempt was recorded, nil if not captured.
func (c RecordDeliveryAttemptCommand) Geolocation() *order.Geolocation {
	return c.geo
}
