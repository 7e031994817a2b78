package jobs

import (
	"fmt"
	"log/slog"

	"dispatch/internal/pkg/metrics"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	driverLocationJob *DriverLocationJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	syncHandler LocationSyncHandler,
	fetchSpec string,
	m metrics.Metrics,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		driverLocationJob: NewDriverLocationJob(syncHandler, fetchSpec, m, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.driverLocationJob.Start(); err != nil {
		return fmt.Errorf("failed to start driver location job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.driverLocationJob.Stop()
}
