package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	matchingJob *MatchingJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	matchStoragesHandler commands.MatchStoragesCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		matchingJob: NewMatchingJob(matchStoragesHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.matchingJob.Start(); err != nil {
		return fmt.Errorf("failed to start matching job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.matchingJob.Stop()
}
