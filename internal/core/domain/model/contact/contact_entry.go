package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrContactEntryIsNotConstructed indicates that a ContactEntry was not
// created through one of its constructors.
var ErrContactEntryIsNotConstructed = errors.New(
	"ContactEntry must be created via NewContactEntry, NewInvitedContactEntry or RestoreContactEntry constructor",
)

// ContactEntry is one row of a customer's personal directory.
//
// An activated entry references a registered server profile. An invited entry
// is keyed by email only; its server reference stays nil until the invitee
// registers and the entry is activated.
type ContactEntry struct {
	id       kernel.UUID
	ownerID  kernel.UUID
	serverID *kernel.UUID
	email    string
	nickname string
	status   ActivationStatus
	addedAt  time.Time

	guard kernel.ConstructorGuard
}

// NewContactEntry creates an activated entry for a registered server.
func NewContactEntry(
	id, ownerID, serverID kernel.UUID,
	email, nickname string,
	addedAt time.Time,
) (*ContactEntry, error) {
	entry, err := newEntry(id, ownerID, email, nickname, addedAt)
	if err != nil {
		return nil, err
	}

	if err := serverID.Validate(); err != nil {
		return nil, err
	}

	entry.serverID = &serverID
	entry.status = Activated
	return entry, nil
}

// NewInvitedContactEntry creates a pending entry for an email invitation.
// The entry has no server reference until the invitee registers.
func NewInvitedContactEntry(
	id, ownerID kernel.UUID,
	email, nickname string,
	addedAt time.Time,
) (*ContactEntry, error) {
	entry, err := newEntry(id, ownerID, email, nickname, addedAt)
	if err != nil {
		return nil, err
	}

	entry.status = NotActivated
	return entry, nil
}

func newEntry(id, ownerID kernel.UUID, email, nickname string, addedAt time.Time) (*ContactEntry, error) {
	entry := &ContactEntry{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setID(id),
		entry.setOwnerID(ownerID),
		entry.setEmail(email),
	); err != nil {
		return nil, err
	}

	entry.nickname = nickname
	entry.addedAt = addedAt
	return entry, nil
}

// RestoreContactEntry reconstructs an entry from persistence.
func RestoreContactEntry(
	id, ownerID kernel.UUID,
	serverID *kernel.UUID,
	email, nickname string,
	status ActivationStatus,
	addedAt time.Time,
) (*ContactEntry, error) {
	entry, err := newEntry(id, ownerID, email, nickname, addedAt)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if serverID != nil {
		if err := serverID.Validate(); err != nil {
			return nil, err
		}
	}
	if status == Activated && serverID == nil {
		return nil, errs.NewValueIsRequiredError("serverId is required for an activated contact")
	}

	entry.serverID = serverID
	entry.status = status
	return entry, nil
}

// IsEqual compares two entries by identity.
func (e *ContactEntry) IsEqual(other *ContactEntry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the entry's unique identifier.
func (e *ContactEntry) ID() kernel.UUID {
	return e.id
}

// OwnerID returns the customer who owns the entry.
func (e *ContactEntry) OwnerID() kernel.UUID {
	return e.ownerID
}

// ServerID returns the referenced server profile, nil while the contact is
// an unregistered invitee.
func (e *ContactEntry) ServerID() *kernel.UUID {
	return e.serverID
}

// Email returns the contact's email address. Invited entries are keyed by it.
func (e *ContactEntry) Email() string {
	return e.email
}

// Nickname returns the customer-chosen display name, possibly empty.
func (e *ContactEntry) Nickname() string {
	return e.nickname
}

// Status returns the activation state.
func (e *ContactEntry) Status() ActivationStatus {
	return e.status
}

// AddedAt returns when the entry was created.
func (e *ContactEntry) AddedAt() time.Time {
	return e.addedAt
}

// Rename updates the customer-chosen display name.
func (e *ContactEntry) Rename(nickname string) {
	e.nickname = nickname
}

// Activate reconciles an invited entry with the profile the invitee
// registered. It fails with a conflict on an already activated entry.
func (e *ContactEntry) Activate(serverID kernel.UUID) error {
	if e.status == Activated {
		return errs.NewConflictErrorWithCause(
			"contact is already activated",
			fmt.Errorf("contact %s is %s", e.id, e.status),
		)
	}
	if err := serverID.Validate(); err != nil {
		return err
	}

	e.serverID = &serverID
	e.status = Activated
	return nil
}

func (e *ContactEntry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *ContactEntry) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("ownerId is invalid", err)
	}
	e.ownerID = ownerID
	return nil
}

func (e *ContactEntry) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", err)
	}
	e.email = email
	return nil
}

// Validate checks that the ContactEntry was properly constructed.
func (e *ContactEntry) Validate() error {
	if e == nil {
		return ErrContactEntryIsNotConstructed
	}
	return e.guard.Validate(ErrContactEntryIsNotConstructed)
}
