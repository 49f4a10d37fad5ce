package queries

import (
	"errors"
	"fmt"

	"procserve/internal/pkg/errs"
	"procserve/internal/pkg/guard"
)

var ErrGetGlobalProcessServersQueryIsNotConstructed = errors.New(
	"GetGlobalProcessServersQuery must be created via NewGetGlobalProcessServersQuery constructor",
)

// Sort orders accepted by the global directory listing.
const (
	SortByRating     = "RATING"
	SortByOrderCount = "ORDER_COUNT"
)

// GetGlobalProcessServersQuery retrieves the global pool of process servers
// who opted into visibility, optionally filtered by serviceable zip code and
// minimum rating, sorted by rating or order count.
//
// Example:
//
//	query, err := NewGetGlobalProcessServersQuery("62704", 4.0, SortByRating)
//	if err != nil {
//	    return err
//	}
//
//	servers, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, s := range servers {
//	    fmt.Printf("%s (%.1f)\n", s.Name, s.Rating)
//	}
type GetGlobalProcessServersQuery struct {
	zip       string
	minRating float64
	sortBy    string

	guard guard.ConstructorGuard
}

// NewGetGlobalProcessServersQuery creates a global directory query.
// Zip and minRating are optional filters: an empty zip and a zero rating
// disable them. An empty sortBy defaults to rating order.
func NewGetGlobalProcessServersQuery(zip string, minRating float64, sortBy string) (GetGlobalProcessServersQuery, error) {
	if minRating < 0 || minRating > 5 {
		return GetGlobalProcessServersQuery{},
			errs.NewValueIsOutOfRangeError("minRating", minRating, 0, 5)
	}

	switch sortBy {
	case "", SortByRating:
		sortBy = SortByRating
	case SortByOrderCount:
	default:
		return GetGlobalProcessServersQuery{},
			errs.NewValueIsInvalidError("sortBy must be RATING or ORDER_COUNT")
	}

	return GetGlobalProcessServersQuery{
		zip:       zip,
		minRating: minRating,
		sortBy:    sortBy,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetGlobalProcessServersQuery) Validate() error {
	return q.guard.Validate(ErrGetGlobalProcessServersQueryIsNotConstructed)
}

// Zip returns the serviceable zip filter, empty when disabled.
func (q GetGlobalProcessServersQuery) Zip() string {
	return q.zip
}

// MinRating returns the minimum rating filter, zero when disabled.
func (q GetGlobalProcessServersQuery) MinRating() float64 {
	return q.minRating
}

// SortBy returns the sort order, SortByRating or SortByOrderCount.
func (q GetGlobalProcessServersQuery) SortBy() string {
	return q.sortBy
}

// CacheKey returns a stable key identifying this query's parameter set.
func (q GetGlobalProcessServersQuery) CacheKey() string {
	return fmt.Sprintf("directory:global:%s:%.2f:%s", q.zip, q.minRating, q.sortBy)
}

// GetGlobalProcessServersQueryResponse is one directory listing row.
type GetGlobalProcessServersQueryResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Rating        float64  `json:"rating"`
	TotalJobs     int      `json:"totalJobs"`
	CompletedJobs int      `json:"completedJobs"`
	Zips          []string `json:"zips"`
}
