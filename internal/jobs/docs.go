// Package jobs provides scheduled background tasks for the work-order
// tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. UrgentWatchJob - Scans escalated work orders and logs the ones past
// their due date. Read-only; exists so the overdue list lands in the logs
// before the morning shift starts.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getWorkOrdersHandler, jobs.DefaultUrgentWatchSpec, logger)
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
// The cron specs include a seconds field. The default urgent sweep spec is
// "0 0 7 * * *", once a day at 07:00 server time.
package jobs
