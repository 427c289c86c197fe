package jobs

import (
	"encore-backend/internal/config"
	"encore-backend/internal/logger"
	"encore-backend/internal/repository/postgres"
	"encore-backend/internal/storage"
)

// JobRunner coordinates the scheduled maintenance jobs.
type JobRunner struct {
	store  *postgres.Store
	photos storage.ObjectStorage
	config *config.Config
}

func NewJobRunner(store *postgres.Store, photos storage.ObjectStorage, cfg *config.Config) *JobRunner {
	return &JobRunner{
		store:  store,
		photos: photos,
		config: cfg,
	}
}

// Config exposes the loaded configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
