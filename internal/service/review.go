package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"encore-backend/internal/domain"
	"encore-backend/internal/logger"
	"encore-backend/internal/repository"
)

type reviewService struct {
	appRepo     repository.ApplicationRepository
	profileRepo repository.UserProfileRepository
	talentRepo  repository.TalentRepository
	talentSvc   TalentService
	emailSvc    EmailService
}

func NewReviewService(
	appRepo repository.ApplicationRepository,
	profileRepo repository.UserProfileRepository,
	talentRepo repository.TalentRepository,
	talentSvc TalentService,
	emailSvc EmailService,
) ReviewService {
	return &reviewService{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		talentRepo:  talentRepo,
		talentSvc:   talentSvc,
		emailSvc:    emailSvc,
	}
}

// ensureAdmin gates every review operation on the caller's profile role.
func (s *reviewService) ensureAdmin(ctx context.Context, adminID string) error {
	profile, err := s.profileRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRoleMismatch
		}
		return fmt.Errorf("load caller profile: %w", err)
	}
	if profile.Role != domain.RoleAdmin {
		return ErrRoleMismatch
	}
	return nil
}

func (s *reviewService) ListApplications(ctx context.Context, adminID string) ([]domain.Application, error) {
	if err := s.ensureAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	apps, err := s.appRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (s *reviewService) Approve(ctx context.Context, adminID, applicationID string, approved *domain.ApprovedProfile) (*domain.Application, error) {
	if err := s.ensureAdmin(ctx, adminID); err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, ErrMissingApprovedProfile
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	now := time.Now().UTC()
	app.ApprovedProfile = approved
	if err := app.Transition(domain.ApplicationStatusApproved, adminID, now); err != nil {
		return nil, err
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.notifyDecision(ctx, app, "")
	return app, nil
}

func (s *reviewService) Reject(ctx context.Context, adminID, applicationID, reason string) (*domain.Application, error) {
	if err := s.ensureAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	now := time.Now().UTC()
	if err := app.Transition(domain.ApplicationStatusRejected, adminID, now); err != nil {
		return nil, err
	}
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.notifyDecision(ctx, app, reason)
	return app, nil
}

// Finalize runs the multi-step promotion. Each step is an independent
// commit; a failure aborts the remainder without rolling back prior
// steps. The reconciliation job re-drives the tail steps for
// applications stranded between them.
func (s *reviewService) Finalize(ctx context.Context, adminID, applicationID string) (*domain.Application, error) {
	if err := s.ensureAdmin(ctx, adminID); err != nil {
		return nil, err
	}

	app, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.ApprovedProfile == nil {
		return nil, ErrMissingApprovedProfile
	}
	if !app.Type.Valid() {
		return nil, fmt.Errorf("invalid application type %q", app.Type)
	}

	// Duplicate guard before any write. A "not found" from the lookup is
	// the expected success path.
	exists, err := s.talentRepo.HasProfile(ctx, app.Type, app.UserID)
	if err != nil {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}
	if exists {
		return nil, ErrDuplicateProfile
	}

	now := time.Now().UTC()
	if err := s.insertProfile(ctx, app, now); err != nil {
		// Two finalizations can race past the lookup; the unique
		// constraint on user_id settles it.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateProfile
		}
		return nil, err
	}

	if err := s.profileRepo.SetRole(ctx, app.UserID, string(app.Type)); err != nil {
		return nil, fmt.Errorf("set role: %w", err)
	}

	if err := app.Transition(domain.ApplicationStatusFinalized, adminID, now); err != nil {
		return nil, err
	}
	app.FinalizedAt = &now
	finalizedBy := adminID
	app.FinalizedBy = &finalizedBy
	if err := s.appRepo.Update(ctx, app); err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	if s.talentSvc != nil {
		s.talentSvc.InvalidateListings(app.Type)
	}

	if s.emailSvc != nil {
		if err := s.emailSvc.SendProfileLive(ctx, app.ApprovedProfile.Email, app.ApprovedProfile.Name, app.Type); err != nil {
			logger.Warn("Failed to send profile-live email", "application_id", app.ID, "error", err)
		}
	}

	return app, nil
}

func (s *reviewService) insertProfile(ctx context.Context, app *domain.Application, now time.Time) error {
	switch app.Type {
	case domain.ApplicationTypeArtist:
		return s.talentRepo.CreateArtist(ctx, BuildArtistProfile(app.UserID, app.ApprovedProfile, now))
	case domain.ApplicationTypeIndustry:
		return s.talentRepo.CreateIndustryPro(ctx, BuildIndustryProProfile(app.UserID, app.ApprovedProfile, now))
	case domain.ApplicationTypeInstrumentalist:
		return s.talentRepo.CreateInstrumentalist(ctx, BuildInstrumentalistProfile(app.UserID, app.ApprovedProfile, now))
	}
	return fmt.Errorf("invalid application type %q", app.Type)
}

func (s *reviewService) notifyDecision(ctx context.Context, app *domain.Application, reason string) {
	if s.emailSvc == nil {
		return
	}
	profile, err := s.profileRepo.GetByID(ctx, app.UserID)
	if err != nil {
		logger.Warn("Failed to load applicant profile for notification", "user_id", app.UserID, "error", err)
		return
	}
	if err := s.emailSvc.SendDecisionNotification(ctx, profile.Email, profile.Name, app.Type, app.Status, reason); err != nil {
		logger.Warn("Failed to send decision email", "application_id", app.ID, "error", err)
	}
}
