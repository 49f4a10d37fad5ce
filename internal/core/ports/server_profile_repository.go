package ports

import (
	"context"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/serverprofile"
)

// GlobalServerFilter narrows the global directory listing. Zero values mean
// no filtering on that axis.
type GlobalServerFilter struct {
	// Zip keeps only servers covering the given zip code.
	Zip string
	// MinRating keeps only servers rated at or above the given value.
	MinRating float64
}

// ServerProfileRepository defines the persistence contract for process-server
// profiles.
type ServerProfileRepository interface {
	// Add persists a new server profile.
	Add(ctx context.Context, profile *serverprofile.ProcessServerProfile) error

	// Update persists changes to an existing server profile.
	Update(ctx context.Context, profile *serverprofile.ProcessServerProfile) error

	// Get retrieves a server profile by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*serverprofile.ProcessServerProfile, error)

	// GetByEmail retrieves a server profile by its contact email, nil if no
	// server registered with it.
	GetByEmail(ctx context.Context, email string) (*serverprofile.ProcessServerProfile, error)

	// GetAllGloballyVisible retrieves the global directory listing, filtered
	// and sorted by rating, best first.
	GetAllGloballyVisible(ctx context.Context, filter GlobalServerFilter) ([]*serverprofile.ProcessServerProfile, error)
}
