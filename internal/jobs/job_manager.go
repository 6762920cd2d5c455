package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"urbanmart/internal/core/application/usecases/commands"
)

// JobManager coordinates the scheduled jobs in the application.
type JobManager struct {
	staleDeliveryRequestsJob *StaleDeliveryRequestsJob
}

// NewJobManager creates a job manager with every background job wired to its
// command handler.
func NewJobManager(
	cancelStaleHandler commands.CancelStaleDeliveryRequestsCommandHandler,
	sweepSpec string,
	requestMaxAge time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleDeliveryRequestsJob: NewStaleDeliveryRequestsJob(
			cancelStaleHandler, sweepSpec, requestMaxAge, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.staleDeliveryRequestsJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale delivery request sweep: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleDeliveryRequestsJob.Stop()
}
