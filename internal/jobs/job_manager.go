package jobs

import (
	"fmt"
	"log/slog"

	"jobshop/internal/core/application/usecases/queries"
)

// DefaultUrgentWatchSpec runs the urgent sweep at 07:00 every day, before
// the morning shift plans the floor.
const DefaultUrgentWatchSpec = "0 0 7 * * *"

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	urgentWatchJob *UrgentWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getWorkOrdersHandler queries.GetWorkOrdersQueryHandler,
	urgentWatchSpec string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		urgentWatchJob: NewUrgentWatchJob(getWorkOrdersHandler, urgentWatchSpec, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.urgentWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start urgent watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.urgentWatchJob.Stop()
}
