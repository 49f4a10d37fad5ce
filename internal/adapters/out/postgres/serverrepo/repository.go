package serverrepo

import (
	"context"
	"errors"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/serverprofile"
	"procserve/internal/core/ports"
	"procserve/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormServerProfileRepository implements ServerProfileRepository using GORM.
type GormServerProfileRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServerProfileRepository creates a new GORM server profile repository.
func NewGormServerProfileRepository(db *gorm.DB, tracker aggregateTracker) *GormServerProfileRepository {
	return &GormServerProfileRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new server profile to the database.
func (r *GormServerProfileRepository) Add(ctx context.Context, profile *serverprofile.ProcessServerProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Update saves an existing server profile to the database.
func (r *GormServerProfileRepository) Update(ctx context.Context, profile *serverprofile.ProcessServerProfile) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	dto := fromDomain(profile)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(profile.ID(), profile)
	return nil
}

// Get retrieves a server profile by ID.
func (r *GormServerProfileRepository) Get(ctx context.Context, id kernel.UUID) (*serverprofile.ProcessServerProfile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServerProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serverProfile", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail finds the profile registered under the given email. Returns nil
// without error when no server registered that email.
func (r *GormServerProfileRepository) GetByEmail(ctx context.Context, email string) (*serverprofile.ProcessServerProfile, error) {
	var dto ServerProfileDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllGloballyVisible retrieves globally visible profiles matching the
// filter, best rated first. A zip filter matches profiles covering that zip;
// a minimum rating filter drops profiles below it.
func (r *GormServerProfileRepository) GetAllGloballyVisible(ctx context.Context, filter ports.GlobalServerFilter) ([]*serverprofile.ProcessServerProfile, error) {
	query := r.db.WithContext(ctx).
		Where("globally_visible = ?", true).
		Order("rating DESC, name")

	if filter.Zip != "" {
		query = query.Where("? = ANY(zips)", filter.Zip)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}

	var dtos []ServerProfileDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	profiles := make([]*serverprofile.ProcessServerProfile, 0, len(dtos))
	for _, dto := range dtos {
		profile, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}
