// Package jobs provides scheduled background tasks for the logistics system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the order and cash service.
//
// # Available Jobs
//
// 1. PendingCashRefreshJob - Runs every five minutes to reconcile cached driver cash balances with the ledger
// 2. DailyResetJob - Runs at midnight to zero every driver's completed-today counter
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(refreshHandler, resetHandler, driverRepo, logger)
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
// - The refresh job logs integrity faults per driver and keeps going; one bad ledger must not block the rest
// - The reset job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
