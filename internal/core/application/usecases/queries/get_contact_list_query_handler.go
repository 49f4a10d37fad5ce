package queries

import (
	"context"

	"procserve/internal/core/domain/model/contact"
	"procserve/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetContactListQueryHandler retrieves a customer's contact entries from
// the database.
type GetContactListQueryHandler struct {
	db *gorm.DB
}

// NewGetContactListQueryHandler creates a handler for contact list queries.
func NewGetContactListQueryHandler(db *gorm.DB) GetContactListQueryHandler {
	return GetContactListQueryHandler{db: db}
}

// Handle executes the query to retrieve all contact entries of a customer,
// oldest first.
func (h GetContactListQueryHandler) Handle(
	ctx context.Context,
	query GetContactListQuery,
) ([]GetContactListQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetContactListQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			server_id,
			email,
			nickname,
			status,
			added_at
		FROM contact_entries
		WHERE owner_id = ?
		ORDER BY added_at
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetContactListQueryResponse
		var id uuid.UUID
		var serverID uuid.NullUUID
		var status int

		err = rows.Scan(
			&id,
			&serverID,
			&entry.Email,
			&entry.Nickname,
			&status,
			&entry.AddedAt,
		)
		if err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if serverID.Valid {
			server, serverErr := kernel.UUIDFromBytes(serverID.UUID[:])
			if serverErr != nil {
				return nil, serverErr
			}
			entry.ServerID = &server
		}
		entry.Status = contact.ActivationStatus(status).String()

		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
