package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"encore-backend/internal/jobs"
	"encore-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Jobs

	if _, err := s.cron.AddFunc(cfg.SweepAbandonedDrafts, s.jobs.SweepAbandonedDrafts); err != nil {
		logger.Error("Failed to register SweepAbandonedDrafts job", "error", err)
	}

	if _, err := s.cron.AddFunc(cfg.ReconcileFinalizations, s.jobs.ReconcileFinalizations); err != nil {
		logger.Error("Failed to register ReconcileFinalizations job", "error", err)
	}
}

// Start begins running scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started",
		"sweep_abandoned_drafts", s.jobs.Config().Jobs.SweepAbandonedDrafts,
		"reconcile_finalizations", s.jobs.Config().Jobs.ReconcileFinalizations)
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
