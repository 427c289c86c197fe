package jobs

import (
	"context"
	"time"

	"encore-backend/internal/domain"
	"encore-backend/internal/logger"
	"encore-backend/internal/service"
)

// reconcilerActor stamps history entries written by the reconciliation
// job rather than a human admin.
const reconcilerActor = "system"

// SweepAbandonedDrafts deletes drafts that have not been touched within
// the configured TTL, along with their staged temp photos.
func (jr *JobRunner) SweepAbandonedDrafts() {
	jr.runWithRecovery("SweepAbandonedDrafts", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -jr.config.Jobs.DraftTTLDays)

		drafts, err := jr.store.ListDraftsUpdatedBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list abandoned drafts", "error", err)
			return
		}

		swept := 0
		for _, draft := range drafts {
			// A failed submission can leave a photo parked under the
			// draft's own slot. Only the draft's key is touched; keys of
			// submitted applications belong to live rows.
			key := service.PhotoKey(draft.UserID, draft.ID)
			if err := jr.photos.Delete(ctx, key); err != nil {
				logger.Warn("Failed to delete staged photo", "key", key, "error", err)
			}
			if err := jr.store.Delete(ctx, draft.ID); err != nil {
				logger.Error("Failed to delete abandoned draft", "application_id", draft.ID, "error", err)
				continue
			}
			swept++
		}
		logger.Info("Swept abandoned drafts", "cutoff", cutoff, "swept", swept)
	})
}

// ReconcileFinalizations re-drives the tail of the finalization
// sequence for approved applications whose profile row already exists.
// The finalization steps commit independently, so a crash between the
// profile insert and the status stamp strands the application in
// approved; this job completes the role update and finalized stamp.
func (jr *JobRunner) ReconcileFinalizations() {
	jr.runWithRecovery("ReconcileFinalizations", func() {
		ctx := context.Background()

		apps, err := jr.store.ListByStatus(ctx, domain.ApplicationStatusApproved)
		if err != nil {
			logger.Error("Failed to list approved applications", "error", err)
			return
		}

		for _, app := range apps {
			if app.ApprovedProfile == nil || !app.Type.Valid() {
				continue
			}
			exists, err := jr.store.HasProfile(ctx, app.Type, app.UserID)
			if err != nil {
				logger.Error("Failed to check profile row", "application_id", app.ID, "error", err)
				continue
			}
			if !exists {
				continue
			}

			logger.Warn("Found stranded finalization, re-driving",
				"application_id", app.ID, "user_id", app.UserID, "type", app.Type)

			if err := jr.store.SetRole(ctx, app.UserID, string(app.Type)); err != nil {
				logger.Error("Failed to set role", "application_id", app.ID, "error", err)
				continue
			}

			now := time.Now().UTC()
			a := app
			if err := a.Transition(domain.ApplicationStatusFinalized, reconcilerActor, now); err != nil {
				logger.Error("Failed to transition application", "application_id", app.ID, "error", err)
				continue
			}
			a.FinalizedAt = &now
			actor := reconcilerActor
			a.FinalizedBy = &actor
			if err := jr.store.Update(ctx, &a); err != nil {
				logger.Error("Failed to stamp finalized application", "application_id", app.ID, "error", err)
			}
		}
	})
}
