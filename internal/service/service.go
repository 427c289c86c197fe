package service

import (
	"context"
	"errors"

	"encore-backend/internal/domain"
)

var (
	// ErrDuplicateProfile means a profile row already exists for the
	// application's user in the destination table.
	ErrDuplicateProfile = errors.New("a profile already exists for this user")
	// ErrMissingApprovedProfile means finalization was attempted before
	// an admin attached the approved profile payload.
	ErrMissingApprovedProfile = errors.New("no approved profile data found")
	// ErrRoleMismatch means a non-admin invoked an admin-only operation.
	ErrRoleMismatch = errors.New("caller is not an admin")
)

// StagedPhoto is a file attachment staged for upload at submission.
// Staging a second photo replaces the first; at most one photo rides
// along with a submission.
type StagedPhoto struct {
	FileName    string
	ContentType string
	Data        []byte
}

// TransformFunc maps the raw form state plus the uploaded photo URL (or
// "" when no photo was staged) to the type-specific payload stored on
// the application.
type TransformFunc func(form map[string]any, photoURL string) map[string]any

type ApplicationService interface {
	// GetDraft returns the unique draft for (user, type), or nil when
	// none exists. Absence is not an error.
	GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error)
	// SaveDraft creates or updates the single draft per (user, type).
	// When a draft already exists it is updated in place; the existing
	// application is returned rather than a duplicate created.
	SaveDraft(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any) (*domain.Application, error)
	// Submit uploads the staged photo, builds the application record via
	// transform and moves it to pending.
	Submit(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any, photo *StagedPhoto, transform TransformFunc) (*domain.Application, error)
}

type ReviewService interface {
	ListApplications(ctx context.Context, adminID string) ([]domain.Application, error)
	Approve(ctx context.Context, adminID, applicationID string, approved *domain.ApprovedProfile) (*domain.Application, error)
	Reject(ctx context.Context, adminID, applicationID, reason string) (*domain.Application, error)
	// Finalize promotes an approved application into its destination
	// profile table, updates the user's role and stamps the application
	// finalized. Guarded against double-materialization.
	Finalize(ctx context.Context, adminID, applicationID string) (*domain.Application, error)
}

type TalentService interface {
	ListArtists(ctx context.Context) ([]domain.ArtistProfile, error)
	ListIndustryPros(ctx context.Context) ([]domain.IndustryProProfile, error)
	ListInstrumentalists(ctx context.Context) ([]domain.InstrumentalistProfile, error)
	// InvalidateListings drops the cached listing for the given type.
	InvalidateListings(appType domain.ApplicationType)
}

type EmailService interface {
	SendApplicationReceived(ctx context.Context, email, name string, appType domain.ApplicationType) error
	SendDecisionNotification(ctx context.Context, email, name string, appType domain.ApplicationType, status domain.ApplicationStatus, reason string) error
	SendProfileLive(ctx context.Context, email, name string, appType domain.ApplicationType) error
}

// FilterByStatus derives the subset of apps in the given status. The
// admin dashboard re-derives its view from the full list instead of
// re-fetching per status.
func FilterByStatus(apps []domain.Application, status domain.ApplicationStatus) []domain.Application {
	var out []domain.Application
	for _, app := range apps {
		if app.Status == status {
			out = append(out, app)
		}
	}
	return out
}
