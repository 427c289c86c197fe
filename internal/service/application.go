package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"encore-backend/internal/domain"
	"encore-backend/internal/imageutil"
	"encore-backend/internal/logger"
	"encore-backend/internal/repository"
	"encore-backend/internal/storage"
)

type applicationService struct {
	appRepo     repository.ApplicationRepository
	profileRepo repository.UserProfileRepository
	store       storage.ObjectStorage
	emailSvc    EmailService
}

func NewApplicationService(
	appRepo repository.ApplicationRepository,
	profileRepo repository.UserProfileRepository,
	store storage.ObjectStorage,
	emailSvc EmailService,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		profileRepo: profileRepo,
		store:       store,
		emailSvc:    emailSvc,
	}
}

func (s *applicationService) GetDraft(ctx context.Context, userID string, appType domain.ApplicationType) (*domain.Application, error) {
	if !appType.Valid() {
		return nil, fmt.Errorf("invalid application type %q", appType)
	}
	draft, err := s.appRepo.GetDraft(ctx, userID, appType)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	return draft, nil
}

func (s *applicationService) SaveDraft(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any) (*domain.Application, error) {
	if !appType.Valid() {
		return nil, fmt.Errorf("invalid application type %q", appType)
	}
	form = clampNote(form)
	now := time.Now().UTC()

	// One draft per (user, type): the lookup decides between update and
	// create, so a second save lands on the first draft's row.
	existing, err := s.appRepo.GetDraft(ctx, userID, appType)
	if err == nil {
		existing.Form = form
		existing.Note = noteValue(form)
		existing.UpdatedAt = now
		if err := s.appRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update draft: %w", err)
		}
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("load draft: %w", err)
	}

	app := &domain.Application{
		UserID: userID,
		Type:   appType,
		Status: domain.ApplicationStatusDraft,
		Form:   form,
		Note:   noteValue(form),
		StatusHistory: []domain.StatusHistoryEntry{
			{Status: domain.ApplicationStatusDraft, Timestamp: now, ActorID: userID},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.appRepo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return app, nil
}

func (s *applicationService) Submit(ctx context.Context, userID string, appType domain.ApplicationType, form map[string]any, photo *StagedPhoto, transform TransformFunc) (*domain.Application, error) {
	if !appType.Valid() {
		return nil, fmt.Errorf("invalid application type %q", appType)
	}
	form = clampNote(form)
	now := time.Now().UTC()

	app, err := s.appRepo.GetDraft(ctx, userID, appType)
	if errors.Is(err, repository.ErrNotFound) {
		app = &domain.Application{
			UserID: userID,
			Type:   appType,
			Status: domain.ApplicationStatusDraft,
			StatusHistory: []domain.StatusHistoryEntry{
				{Status: domain.ApplicationStatusDraft, Timestamp: now, ActorID: userID},
			},
			CreatedAt: now,
			UpdatedAt: now,
		}
	} else if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	// The id is fixed before the upload so the photo always lands at the
	// application's own storage slot, never a shared placeholder.
	isNew := app.ID == ""
	if isNew {
		app.ID = uuid.NewString()
	}

	// The photo upload runs first so the application record never
	// references a URL whose upload failed.
	photoURL := ""
	if photo != nil {
		compressed, err := imageutil.Compress(photo.Data)
		if err != nil {
			return nil, fmt.Errorf("compress photo: %w", err)
		}
		key := PhotoKey(userID, app.ID)
		url, err := s.store.Upload(ctx, key, bytes.NewReader(compressed), "image/jpeg", true)
		if err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
		photoURL = url
	}

	if transform == nil {
		transform = passthroughTransform
	}
	app.Form = transform(form, photoURL)
	app.Note = noteValue(app.Form)
	if photoURL != "" {
		app.PhotoURL = photoURL
	}
	if err := app.Transition(domain.ApplicationStatusPending, userID, now); err != nil {
		return nil, err
	}
	app.CurrentRevision = 1

	if isNew {
		err = s.appRepo.Create(ctx, app)
	} else {
		err = s.appRepo.Update(ctx, app)
	}
	if err != nil {
		return nil, fmt.Errorf("save application: %w", err)
	}

	// The application row exists by now, so has_applied can never point
	// at a record that was never written.
	if err := s.profileRepo.MarkApplied(ctx, userID, app.ID); err != nil {
		return nil, fmt.Errorf("mark applied: %w", err)
	}

	if s.emailSvc != nil {
		if profile, err := s.profileRepo.GetByID(ctx, userID); err == nil {
			if err := s.emailSvc.SendApplicationReceived(ctx, profile.Email, profile.Name, appType); err != nil {
				logger.Warn("Failed to send receipt email", "user_id", userID, "error", err)
			}
		}
	}

	return app, nil
}

// PhotoKey is the per-user, per-application storage path. An upload
// that never reached submission is cleaned up under the same key by the
// draft sweeper.
func PhotoKey(userID, applicationID string) string {
	return fmt.Sprintf("applications/%s/%s.jpg", userID, applicationID)
}

// clampNote applies the note word cap, truncating overflow silently.
func clampNote(form map[string]any) map[string]any {
	note, ok := form["note"].(string)
	if !ok {
		return form
	}
	out := make(map[string]any, len(form))
	for k, v := range form {
		out[k] = v
	}
	out["note"] = domain.TruncateWords(note, domain.NoteWordLimit)
	return out
}

func noteValue(form map[string]any) string {
	note, _ := form["note"].(string)
	return note
}

func passthroughTransform(form map[string]any, photoURL string) map[string]any {
	out := make(map[string]any, len(form)+1)
	for k, v := range form {
		out[k] = v
	}
	if photoURL != "" {
		out["photo_url"] = photoURL
	}
	return out
}
