// Package contactrepo provides data transfer objects and mapping functions
// for contact directory persistence. A row is one entry in one customer's
// personal directory; invited entries carry a null server id until the
// invitee registers.
package contactrepo

import (
	"time"

	"procserve/internal/core/domain/model/contact"
	"procserve/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ContactEntryDTO represents the database structure for persisting contact
// entries.
type ContactEntryDTO struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID  uuid.UUID  `gorm:"type:uuid;index:idx_contacts_owner_email,priority:1;index:idx_contacts_owner_server,priority:1"`
	ServerID *uuid.UUID `gorm:"type:uuid;index:idx_contacts_owner_server,priority:2"`
	Email    string     `gorm:"index:idx_contacts_owner_email,priority:2;index"`
	Nickname string
	Status   int
	AddedAt  time.Time
}

// TableName specifies the database table name for contact entries.
func (ContactEntryDTO) TableName() string {
	return "contact_entries"
}

func fromDomain(entry *contact.ContactEntry) ContactEntryDTO {
	dto := ContactEntryDTO{
		ID:       entry.ID().Bytes(),
		OwnerID:  entry.OwnerID().Bytes(),
		Email:    entry.Email(),
		Nickname: entry.Nickname(),
		Status:   int(entry.Status()),
		AddedAt:  entry.AddedAt(),
	}

	if id := entry.ServerID(); id != nil {
		raw := id.Bytes()
		dto.ServerID = &raw
	}

	return dto
}

func toDomain(dto ContactEntryDTO) (*contact.ContactEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	var serverID *kernel.UUID
	if dto.ServerID != nil {
		sID, serverErr := kernel.UUIDFromBytes((*dto.ServerID)[:])
		if serverErr != nil {
			return nil, serverErr
		}
		serverID = &sID
	}

	return contact.RestoreContactEntry(
		id, ownerID, serverID,
		dto.Email, dto.Nickname,
		contact.ActivationStatus(dto.Status),
		dto.AddedAt,
	)
}
