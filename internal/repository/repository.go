package repository

import (
	"context"
	"errors"
	"time"

	"encore-backend/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row. Callers treat it
// as a normal control-flow outcome, not a failure.
var ErrNotFound = errors.New("not found")

// ErrDuplicateKey is returned when an insert violates a uniqueness
// constraint, e.g. a second profile row for the same user.
var ErrDuplicateKey = errors.New("duplicate key")

type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	// GetDraft fetches the unique draft for a (user, type) pair.
	GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error)
	Update(ctx context.Context, app *domain.Application) error
	// List returns all applications, most recent first.
	List(ctx context.Context) ([]domain.Application, error)
	ListByStatus(ctx context.Context, status domain.ApplicationStatus) ([]domain.Application, error)
	ListDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) ([]domain.Application, error)
	Delete(ctx context.Context, id string) error
}

type UserProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*domain.UserProfile, error)
	// MarkApplied flips has_applied and links the submitted application.
	MarkApplied(ctx context.Context, userID, applicationID string) error
	SetRole(ctx context.Context, userID, role string) error
}

type TalentRepository interface {
	// HasProfile reports whether the destination table for appType
	// already holds a row for userID.
	HasProfile(ctx context.Context, appType domain.ApplicationType, userID string) (bool, error)

	CreateArtist(ctx context.Context, p *domain.ArtistProfile) error
	CreateIndustryPro(ctx context.Context, p *domain.IndustryProProfile) error
	CreateInstrumentalist(ctx context.Context, p *domain.InstrumentalistProfile) error

	ListArtists(ctx context.Context) ([]domain.ArtistProfile, error)
	ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error)
	ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error)
}
