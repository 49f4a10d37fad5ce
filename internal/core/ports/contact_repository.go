package ports

import (
	"context"

	"procserve/internal/core/domain/model/contact"
	"procserve/internal/core/domain/model/kernel"
)

// ContactRepository defines the persistence contract for a customer's
// personal process-server directory.
type ContactRepository interface {
	// Add persists a new contact entry.
	Add(ctx context.Context, entry *contact.ContactEntry) error

	// Update persists changes to an existing contact entry.
	Update(ctx context.Context, entry *contact.ContactEntry) error

	// Remove deletes a contact entry.
	Remove(ctx context.Context, id kernel.UUID) error

	// Get retrieves a contact entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*contact.ContactEntry, error)

	// GetByOwnerAndServer retrieves the owner's entry referencing the given
	// server, if any. Used to keep the personal list idempotent.
	GetByOwnerAndServer(ctx context.Context, ownerID, serverID kernel.UUID) (*contact.ContactEntry, error)

	// GetByOwnerAndEmail retrieves the owner's entry keyed by the given
	// email, if any. Invited entries are looked up this way.
	GetByOwnerAndEmail(ctx context.Context, ownerID kernel.UUID, email string) (*contact.ContactEntry, error)

	// GetAllByOwner retrieves the owner's full personal list, including
	// not-yet-activated invitations.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*contact.ContactEntry, error)

	// GetAllInvitedByEmail retrieves every not-yet-activated entry keyed by
	// the given email, across all owners. Used to reconcile invitations
	// when the invitee registers.
	GetAllInvitedByEmail(ctx context.Context, email string) ([]*contact.ContactEntry, error)
}
