package queries

import (
	"errors"
	"time"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrGetContactListQueryIsNotConstructed = errors.New(
	"GetContactListQuery must be created via NewGetContactListQuery constructor",
)

// GetContactListQuery retrieves a customer's personal contact directory.
// Invited-but-unregistered entries appear verbatim with a nil server
// reference and NOT_ACTIVATED status; no profile enrichment is attempted.
type GetContactListQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetContactListQuery creates a query for a customer's contacts.
func NewGetContactListQuery(customerID kernel.UUID) (GetContactListQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetContactListQuery{}, err
	}

	return GetContactListQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetContactListQuery) Validate() error {
	return q.guard.Validate(ErrGetContactListQueryIsNotConstructed)
}

// CustomerID returns the customer whose contacts are being listed.
func (q GetContactListQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetContactListQueryResponse is one contact entry row. ServerID is nil for
// invitations not yet accepted.
type GetContactListQueryResponse struct {
	ID       kernel.UUID
	ServerID *kernel.UUID
	Email    string
	Nickname string
	Status   string
	AddedAt  time.Time
}
