package queries

import (
	"context"
	"database/sql"
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetProcessServerDetailsQueryHandler retrieves one server profile from the
// database.
type GetProcessServerDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetProcessServerDetailsQueryHandler creates a handler for profile
// detail queries.
func NewGetProcessServerDetailsQueryHandler(db *gorm.DB) GetProcessServerDetailsQueryHandler {
	return GetProcessServerDetailsQueryHandler{db: db}
}

// Handle executes the query to retrieve one server profile.
// Returns ObjectNotFoundError when no profile has the given ID.
func (h GetProcessServerDetailsQueryHandler) Handle(
	ctx context.Context,
	query GetProcessServerDetailsQuery,
) (GetProcessServerDetailsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProcessServerDetailsQueryResponse{}, err
	}

	var response GetProcessServerDetailsQueryResponse
	var id uuid.UUID
	var zips pq.StringArray

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			rating,
			total_jobs,
			completed_jobs,
			zips,
			globally_visible
		FROM server_profiles
		WHERE id = ?
	`, query.ServerID().Bytes()).Row()

	err := row.Scan(
		&id,
		&response.Name,
		&response.Email,
		&response.Rating,
		&response.TotalJobs,
		&response.CompletedJobs,
		&zips,
		&response.GloballyVisible,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProcessServerDetailsQueryResponse{},
			errs.NewObjectNotFoundError("processServer", query.ServerID().String())
	}
	if err != nil {
		return GetProcessServerDetailsQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetProcessServerDetailsQueryResponse{}, err
	}
	response.Zips = zips

	return response, nil
}
