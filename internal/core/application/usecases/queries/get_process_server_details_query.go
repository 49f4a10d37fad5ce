package queries

import (
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/guard"
)

var ErrGetProcessServerDetailsQueryIsNotConstructed = errors.New(
	"GetProcessServerDetailsQuery must be created via NewGetProcessServerDetailsQuery constructor",
)

// GetProcessServerDetailsQuery retrieves one server's profile and track
// record for a detail view.
type GetProcessServerDetailsQuery struct {
	serverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProcessServerDetailsQuery creates a query for one server profile.
func NewGetProcessServerDetailsQuery(serverID kernel.UUID) (GetProcessServerDetailsQuery, error) {
	if err := serverID.Validate(); err != nil {
		return GetProcessServerDetailsQuery{}, err
	}

	return GetProcessServerDetailsQuery{
		serverID: serverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProcessServerDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetProcessServerDetailsQueryIsNotConstructed)
}

// ServerID returns the server whose profile is being fetched.
func (q GetProcessServerDetailsQuery) ServerID() kernel.UUID {
	return q.serverID
}

// GetProcessServerDetailsQueryResponse is the profile detail view.
type GetProcessServerDetailsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Rating          float64
	TotalJobs       int
	CompletedJobs   int
	Zips            []string
	GloballyVisible bool
}
