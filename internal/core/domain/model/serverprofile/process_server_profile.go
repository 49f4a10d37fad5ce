package serverprofile

import (
	"errors"
	"fmt"
	"net/mail"
	"slices"

	"procserve/internal/core/domain/model/kernel"
	"procserve/internal/pkg/errs"
)

// ErrProfileIsNotConstructed indicates that a ProcessServerProfile was not
// created through the NewProcessServerProfile or RestoreProcessServerProfile
// constructor.
var ErrProfileIsNotConstructed = errors.New(
	"ProcessServerProfile must be created via NewProcessServerProfile or RestoreProcessServerProfile constructor",
)

const (
	// RatingMin is the lowest possible rating.
	RatingMin = 0.0
	// RatingMax is the highest possible rating.
	RatingMax = 5.0
)

// ProcessServerProfile is a registered process server as seen by the
// directory: who they are, where they serve, and how they have performed.
type ProcessServerProfile struct {
	id              kernel.UUID
	serverName      string
	email           string
	rating          float64
	totalJobs       int
	completedJobs   int
	zips            []string
	globallyVisible bool

	guard kernel.ConstructorGuard
}

// NewProcessServerProfile creates a fresh profile with no job history.
func NewProcessServerProfile(
	id kernel.UUID,
	serverName, email string,
	zips []string,
	globallyVisible bool,
) (*ProcessServerProfile, error) {
	profile := &ProcessServerProfile{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		profile.setID(id),
		profile.setServerName(serverName),
		profile.setEmail(email),
		profile.setZips(zips),
	); err != nil {
		return nil, err
	}

	profile.globallyVisible = globallyVisible
	return profile, nil
}

// RestoreProcessServerProfile reconstructs a profile from persistence.
func RestoreProcessServerProfile(
	id kernel.UUID,
	serverName, email string,
	rating float64,
	totalJobs, completedJobs int,
	zips []string,
	globallyVisible bool,
) (*ProcessServerProfile, error) {
	profile, err := NewProcessServerProfile(id, serverName, email, zips, globallyVisible)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		profile.setRating(rating),
		profile.setJobCounts(totalJobs, completedJobs),
	); err != nil {
		return nil, err
	}

	return profile, nil
}

// IsEqual compares two profiles by identity.
func (p *ProcessServerProfile) IsEqual(other *ProcessServerProfile) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the profile's unique identifier.
func (p *ProcessServerProfile) ID() kernel.UUID {
	return p.id
}

// ServerName returns the server's display name.
func (p *ProcessServerProfile) ServerName() string {
	return p.serverName
}

// Email returns the server's contact email.
func (p *ProcessServerProfile) Email() string {
	return p.email
}

// Rating returns the server's average rating in [0, 5].
func (p *ProcessServerProfile) Rating() float64 {
	return p.rating
}

// TotalJobs returns the number of jobs the server has taken on.
func (p *ProcessServerProfile) TotalJobs() int {
	return p.totalJobs
}

// CompletedJobs returns the number of jobs served successfully.
func (p *ProcessServerProfile) CompletedJobs() int {
	return p.completedJobs
}

// Zips returns the zip codes the server covers.
func (p *ProcessServerProfile) Zips() []string {
	return p.zips
}

// IsGloballyVisible reports whether the profile appears in the global
// directory listing.
func (p *ProcessServerProfile) IsGloballyVisible() bool {
	return p.globallyVisible
}

// ServesZip reports whether the server covers the given zip code.
func (p *ProcessServerProfile) ServesZip(zip string) bool {
	return slices.Contains(p.zips, zip)
}

// SetGlobalVisibility toggles the profile's presence in the global listing.
func (p *ProcessServerProfile) SetGlobalVisibility(visible bool) {
	p.globallyVisible = visible
}

// UpdateRating replaces the server's rating.
func (p *ProcessServerProfile) UpdateRating(rating float64) error {
	return p.setRating(rating)
}

// RecordJobOutcome adds one finished job to the server's record.
func (p *ProcessServerProfile) RecordJobOutcome(wasCompleted bool) {
	p.totalJobs++
	if wasCompleted {
		p.completedJobs++
	}
}

// AddZip extends the coverage area. Adding an already covered zip is a no-op.
func (p *ProcessServerProfile) AddZip(zip string) error {
	if err := validateZip(zip); err != nil {
		return err
	}
	if p.ServesZip(zip) {
		return nil
	}
	p.zips = append(p.zips, zip)
	return nil
}

func (p *ProcessServerProfile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ProcessServerProfile) setServerName(serverName string) error {
	if serverName == "" {
		return errs.NewValueIsRequiredError("serverName is required")
	}
	p.serverName = serverName
	return nil
}

func (p *ProcessServerProfile) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", err)
	}
	p.email = email
	return nil
}

func (p *ProcessServerProfile) setZips(zips []string) error {
	for _, zip := range zips {
		if err := validateZip(zip); err != nil {
			return err
		}
	}
	p.zips = slices.Compact(slices.Clone(zips))
	return nil
}

func (p *ProcessServerProfile) setRating(rating float64) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	p.rating = rating
	return nil
}

func (p *ProcessServerProfile) setJobCounts(totalJobs, completedJobs int) error {
	if totalJobs < 0 {
		return errs.NewValueIsInvalidError("totalJobs is invalid")
	}
	if completedJobs < 0 || completedJobs > totalJobs {
		return errs.NewValueIsInvalidErrorWithCause(
			"completedJobs is invalid",
			fmt.Errorf("%d completed of %d total", completedJobs, totalJobs),
		)
	}
	p.totalJobs = totalJobs
	p.completedJobs = completedJobs
	return nil
}

func validateZip(zip string) error {
	if len(zip) != 5 {
		return errs.NewValueIsInvalidError("zip is invalid")
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidError("zip is invalid")
		}
	}
	return nil
}

// Validate checks that the ProcessServerProfile was properly constructed.
func (p *ProcessServerProfile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}
