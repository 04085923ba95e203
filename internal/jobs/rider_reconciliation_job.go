package jobs

import (
	"context"
	"log/slog"

	"swiftdrop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// RiderReconciliationJob periodically frees riders whose availability flag is
// stuck on busy with no active delivery behind it.
type RiderReconciliationJob struct {
	handler commands.ReconcileRiderAvailabilityCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewRiderReconciliationJob creates the reconciliation job. The handler runs
// every 30 seconds.
func NewRiderReconciliationJob(
	handler commands.ReconcileRiderAvailabilityCommandHandler,
	logger *slog.Logger,
) *RiderReconciliationJob {
	return &RiderReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "rider_reconciliation_job"),
	}
}

// Start schedules the job to run every 30 seconds.
func (j *RiderReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReconcileRiderAvailabilityCommand()
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Rider reconciliation command build failed", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Rider reconciliation job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Rider reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the job.
func (j *RiderReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Rider reconciliation job stopped")
}
