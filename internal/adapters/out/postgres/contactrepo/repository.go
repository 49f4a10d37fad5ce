package contactrepo

import (
	"context"
	"errors"

	"procserve/internal/core/domain/model/contact"
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormContactRepository implements ContactRepository using GORM.
type GormContactRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContactRepository creates a new GORM contact repository.
func NewGormContactRepository(db *gorm.DB, tracker aggregateTracker) *GormContactRepository {
	return &GormContactRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contact entry to the database.
func (r *GormContactRepository) Add(ctx context.Context, entry *contact.ContactEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Update saves an existing contact entry to the database.
func (r *GormContactRepository) Update(ctx context.Context, entry *contact.ContactEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(entry.ID(), entry)
	return nil
}

// Remove deletes a contact entry by ID.
func (r *GormContactRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ContactEntryDTO{}, "id = ?", id.Bytes()).Error
}

// Get retrieves a contact entry by ID.
func (r *GormContactRepository) Get(ctx context.Context, id kernel.UUID) (*contact.ContactEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContactEntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contactEntry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwnerAndServer finds the owner's entry for a given server. Returns
// nil without error when the directory has no such entry.
func (r *GormContactRepository) GetByOwnerAndServer(ctx context.Context, ownerID, serverID kernel.UUID) (*contact.ContactEntry, error) {
	if err := errors.Join(ownerID.Validate(), serverID.Validate()); err != nil {
		return nil, err
	}

	var dto ContactEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "owner_id = ? AND server_id = ?", ownerID.Bytes(), serverID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOwnerAndEmail finds the owner's entry for a given email. Returns nil
// without error when the directory has no such entry.
func (r *GormContactRepository) GetByOwnerAndEmail(ctx context.Context, ownerID kernel.UUID, email string) (*contact.ContactEntry, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto ContactEntryDTO
	err := r.db.WithContext(ctx).
		First(&dto, "owner_id = ? AND email = ?", ownerID.Bytes(), email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves the owner's full directory, oldest entries first.
func (r *GormContactRepository) GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*contact.ContactEntry, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ContactEntryDTO
	if err := r.db.WithContext(ctx).
		Order("added_at").
		Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllInvitedByEmail retrieves every not-yet-activated entry addressed to
// the given email, across all owners. Registration uses it to activate
// pending invitations.
func (r *GormContactRepository) GetAllInvitedByEmail(ctx context.Context, email string) ([]*contact.ContactEntry, error) {
	var dtos []ContactEntryDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "email = ? AND status = ?", email, int(contact.NotActivated)).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []ContactEntryDTO) ([]*contact.ContactEntry, error) {
	entries := make([]*contact.ContactEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
