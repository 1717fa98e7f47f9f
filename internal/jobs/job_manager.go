package jobs

import (
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderCompletionJob *OrderCompletionJob
	stockAlertJob      *StockAlertJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	completeOrdersHandler commands.CompleteOrdersCommandHandler,
	evaluateAlertsHandler commands.EvaluateStockAlertsCommandHandler,
	minStockQuantity, maxStockQuantity int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderCompletionJob: NewOrderCompletionJob(completeOrdersHandler, logger),
		stockAlertJob:      NewStockAlertJob(evaluateAlertsHandler, minStockQuantity, maxStockQuantity, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderCompletionJob.Start(); err != nil {
		return fmt.Errorf("failed to start order completion job: %w", err)
	}

	if err := jm.stockAlertJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderCompletionJob.Stop()
		return fmt.Errorf("failed to start stock alert job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockAlertJob.Stop()
	jm.orderCompletionJob.Stop()
}
