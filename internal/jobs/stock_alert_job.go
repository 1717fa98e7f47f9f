package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StockAlertJob manages the scheduled stock threshold evaluation. It
// re-derives every ledger entry's alert status against the configured
// min/max quantities and raises events for entries crossing a threshold.
type StockAlertJob struct {
	handler     commands.EvaluateStockAlertsCommandHandler
	cron        *cron.Cron
	logger      *slog.Logger
	minQuantity int
	maxQuantity int
}

// NewStockAlertJob creates a job evaluating stock alerts every minute
// against the given thresholds.
func NewStockAlertJob(
	handler commands.EvaluateStockAlertsCommandHandler,
	minQuantity, maxQuantity int,
	logger *slog.Logger,
) *StockAlertJob {
	return &StockAlertJob{
		handler:     handler,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "stock_alert_job"),
		minQuantity: minQuantity,
		maxQuantity: maxQuantity,
	}
}

// Start begins the alert evaluation schedule.
func (j *StockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewEvaluateStockAlertsCommand(j.minQuantity, j.maxQuantity)
		if err != nil {
			j.logger.ErrorContext(ctx, "Invalid stock alert thresholds", "error", err)
			return
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stock alert job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock alert job started (running every minute)")
	return nil
}

// Stop stops the alert evaluation.
func (j *StockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock alert job stopped")
}
