package jobs

import (
	"context"
	"log/slog"

	"shipping/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// trackingSchedule polls carrier tracking every 30 seconds. Carrier status
// changes on the order of hours, so anything faster only burns API quota.
const trackingSchedule = "*/30 * * * * *"

// ShipmentTrackingJob periodically reconciles in-progress shipment notes
// against carrier tracking status.
type ShipmentTrackingJob struct {
	handler commands.SyncShipmentStatusesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewShipmentTrackingJob creates a new job for syncing shipment statuses.
func NewShipmentTrackingJob(
	handler commands.SyncShipmentStatusesCommandHandler,
	logger *slog.Logger,
) *ShipmentTrackingJob {
	return &ShipmentTrackingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "shipment_tracking_job"),
	}
}

// Start begins the tracking job on its polling schedule.
func (j *ShipmentTrackingJob) Start() error {
	_, err := j.cron.AddFunc(trackingSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewSyncShipmentStatusesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Shipment tracking job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment tracking job started (running every 30 seconds)")
	return nil
}

// Stop stops the tracking job.
func (j *ShipmentTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment tracking job stopped")
}
