// Package jobs provides scheduled background tasks for the shipping module.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for shipment lifecycle upkeep.
//
// # Available Jobs
//
// 1. ShipmentTrackingJob - Runs every 30 seconds to reconcile in-progress shipment notes with carrier tracking status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncStatusesHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Per-shipment carrier failures are handled inside the sync use case and do not fail the run
// - Run-level failures (storage, transaction) are logged and retried on the next tick
package jobs
