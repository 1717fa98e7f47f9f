// Package jobs provides scheduled background tasks for the warehouse service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment and stock
// monitoring.
//
// # Available Jobs
//
// 1. OrderCompletionJob - Runs every ten seconds to complete in-progress orders whose fulfillment finished
// 2. StockAlertJob - Runs every minute to re-derive stock alert statuses against the configured thresholds
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(completeOrdersHandler, evaluateAlertsHandler, minQty, maxQty, logger)
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
//   - The completion sweep treats a missing inspection record as not-yet-inspected and skips the order
//   - Racing transitions lose against the status-guarded order update and surface as conflicts, which
//     the next sweep resolves
//   - Failed job starts will stop any already running jobs
package jobs
