package jobs

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/pkg/metrics"
)

// LocationSyncHandler is the slice of the sync command handler the job needs.
type LocationSyncHandler interface {
	Handle(ctx context.Context, cmd commands.SyncDriverLocationsCommand) (int, error)
}

// DriverLocationJob manages the scheduled refresh of driver positions from
// the external location feed.
type DriverLocationJob struct {
	handler LocationSyncHandler
	spec    string
	cron    *cron.Cron
	metrics metrics.Metrics
	logger  *slog.Logger
}

// NewDriverLocationJob creates a new job for pulling driver positions.
// spec is a cron expression or descriptor such as "@every 1m".
func NewDriverLocationJob(
	handler LocationSyncHandler,
	spec string,
	m metrics.Metrics,
	logger *slog.Logger,
) *DriverLocationJob {
	return &DriverLocationJob{
		handler: handler,
		spec:    spec,
		cron:    cron.New(cron.WithSeconds()),
		metrics: m,
		logger:  logger.With("component", "driver_location_job"),
	}
}

// Start begins the driver location job on its configured schedule.
func (j *DriverLocationJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver location job started", "spec", j.spec)
	return nil
}

// run executes one feed pull. Failures are recorded and logged, never fatal;
// the previous position snapshot stays in place until the next pull.
func (j *DriverLocationJob) run() {
	ctx := context.Background()
	runID := uuid.NewString()
	cmd := commands.NewSyncDriverLocationsCommand()

	count, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.metrics.RecordFeedSync(false, 0)
		j.logger.ErrorContext(ctx, "Driver location sync failed", "run_id", runID, "error", err)
		return
	}

	j.metrics.RecordFeedSync(true, count)
	j.logger.InfoContext(ctx, "Driver locations synced", "run_id", runID, "drivers", count)
}

// Stop stops the driver location job.
func (j *DriverLocationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver location job stopped")
}
