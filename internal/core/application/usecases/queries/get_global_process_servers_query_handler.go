package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// DirectoryCache caches global directory listings keyed by query parameters.
// The redis adapter implements it; a nil cache disables caching.
type DirectoryCache interface {
	// GetListing returns the cached listing for the key and whether one was found.
	GetListing(ctx context.Context, key string) ([]GetGlobalProcessServersQueryResponse, bool, error)

	// SetListing stores a listing under the key.
	SetListing(ctx context.Context, key string, listing []GetGlobalProcessServersQueryResponse) error
}

// GetGlobalProcessServersQueryHandler retrieves the globally visible server
// directory. The listing is read-mostly and render-heavy, so results are
// cached per parameter set; cache failures never fail the read.
type GetGlobalProcessServersQueryHandler struct {
	db    *gorm.DB
	cache DirectoryCache
}

// NewGetGlobalProcessServersQueryHandler creates a handler for global
// directory queries. Pass a nil cache to read the database directly.
func NewGetGlobalProcessServersQueryHandler(
	db *gorm.DB,
	cache DirectoryCache,
) GetGlobalProcessServersQueryHandler {
	return GetGlobalProcessServersQueryHandler{db: db, cache: cache}
}

// Handle executes the directory query, serving from cache when possible.
func (h GetGlobalProcessServersQueryHandler) Handle(
	ctx context.Context,
	query GetGlobalProcessServersQuery,
) ([]GetGlobalProcessServersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if h.cache != nil {
		if listing, found, err := h.cache.GetListing(ctx, query.CacheKey()); err == nil && found {
			return listing, nil
		}
	}

	listing, err := h.queryDatabase(ctx, query)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		_ = h.cache.SetListing(ctx, query.CacheKey(), listing)
	}

	return listing, nil
}

func (h GetGlobalProcessServersQueryHandler) queryDatabase(
	ctx context.Context,
	query GetGlobalProcessServersQuery,
) ([]GetGlobalProcessServersQueryResponse, error) {
	servers := make([]GetGlobalProcessServersQueryResponse, 0)

	sqlQuery := `
		SELECT
			id,
			name,
			email,
			rating,
			total_jobs,
			completed_jobs,
			zips
		FROM server_profiles
		WHERE globally_visible`
	args := make([]any, 0, 2)

	if query.Zip() != "" {
		sqlQuery += `
		AND ? = ANY(zips)`
		args = append(args, query.Zip())
	}
	if query.MinRating() > 0 {
		sqlQuery += `
		AND rating >= ?`
		args = append(args, query.MinRating())
	}

	if query.SortBy() == SortByOrderCount {
		sqlQuery += `
		ORDER BY total_jobs DESC, name`
	} else {
		sqlQuery += `
		ORDER BY rating DESC, name`
	}

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var server GetGlobalProcessServersQueryResponse
		var id uuid.UUID
		var zips pq.StringArray

		err = rows.Scan(
			&id,
			&server.Name,
			&server.Email,
			&server.Rating,
			&server.TotalJobs,
			&server.CompletedJobs,
			&zips,
		)
		if err != nil {
			return nil, err
		}

		server.ID = id.String()
		server.Zips = zips
		servers = append(servers, server)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return servers, nil
}
