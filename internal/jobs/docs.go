// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the dispatch service.
//
// # Available Jobs
//
// 1. DriverLocationJob - Periodically pulls the external location feed and
// refreshes the stored driver positions.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(syncHandler, fetchSpec, metrics, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The location job's schedule comes from configuration (LOCATION_FETCH_SPEC,
// "@every 1m" by default). Driver positions only influence the second matching
// phase, so a minute of staleness is acceptable.
//
// # Error Handling
//
// - A failed feed pull is logged and recorded in metrics; the previous
// snapshot of driver positions stays untouched.
// - Failed job starts will stop any already running jobs.
package jobs
