// Package serverrepo provides data transfer objects and mapping functions
// for process server profile persistence. Coverage zips are stored as a
// postgres text array.
package serverrepo

import (
	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/core/domain/model/serverprofile"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ServerProfileDTO represents the database structure for persisting process
// server profiles.
type ServerProfileDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Email           string `gorm:"uniqueIndex"`
	Rating          float64
	TotalJobs       int
	CompletedJobs   int
	Zips            pq.StringArray `gorm:"type:text[]"`
	GloballyVisible bool           `gorm:"index"`
}

// TableName specifies the database table name for server profiles.
func (ServerProfileDTO) TableName() string {
	return "server_profiles"
}

func fromDomain(profile *serverprofile.ProcessServerProfile) ServerProfileDTO {
	return ServerProfileDTO{
		ID:              profile.ID().Bytes(),
		Name:            profile.ServerName(),
		Email:           profile.Email(),
		Rating:          profile.Rating(),
		TotalJobs:       profile.TotalJobs(),
		CompletedJobs:   profile.CompletedJobs(),
		Zips:            pq.StringArray(profile.Zips()),
		GloballyVisible: profile.IsGloballyVisible(),
	}
}

func toDomain(dto ServerProfileDTO) (*serverprofile.ProcessServerProfile, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return serverprofile.RestoreProcessServerProfile(
		id, dto.Name, dto.Email,
		dto.Rating, dto.TotalJobs, dto.CompletedJobs,
		[]string(dto.Zips), dto.GloballyVisible,
	)
}
