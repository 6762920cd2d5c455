package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"urbanmart/internal/core/application/usecases/commands"
)

// StaleDeliveryRequestsJob periodically cancels delivery requests that no
// organization or courier claimed within the configured age.
type StaleDeliveryRequestsJob struct {
	handler commands.CancelStaleDeliveryRequestsCommandHandler
	cron    *cron.Cron
	spec    string
	maxAge  time.Duration
	logger  *slog.Logger
}

// NewStaleDeliveryRequestsJob creates the sweep job. The cron spec controls
// how often the sweep runs, maxAge how old a request must be to be cancelled.
func NewStaleDeliveryRequestsJob(
	handler commands.CancelStaleDeliveryRequestsCommandHandler,
	spec string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleDeliveryRequestsJob {
	return &StaleDeliveryRequestsJob{
		handler: handler,
		cron:    cron.New(),
		spec:    spec,
		maxAge:  maxAge,
		logger:  logger.With("component", "stale_delivery_requests_job"),
	}
}

// Start schedules the sweep.
func (j *StaleDeliveryRequestsJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleDeliveryRequestsCommand(j.maxAge)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery request sweep misconfigured", "error", err)
			return
		}

		cancelled, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale delivery request sweep failed", "error", err)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale delivery requests", "count", cancelled)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale delivery request sweep started", "spec", j.spec)
	return nil
}

// Stop stops the sweep.
func (j *StaleDeliveryRequestsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale delivery request sweep stopped")
}
