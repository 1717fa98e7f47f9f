package jobs

import (
	"context"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderCompletionJob manages the scheduled completion sweep. It picks up
// in-progress orders whose fulfillment the completion policy considers
// finished, covering orders whose last putaway commit raced the inline
// policy check.
type OrderCompletionJob struct {
	handler commands.CompleteOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderCompletionJob creates a job running the completion sweep every
// ten seconds.
func NewOrderCompletionJob(handler commands.CompleteOrdersCommandHandler, logger *slog.Logger) *OrderCompletionJob {
	return &OrderCompletionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "order_completion_job"),
	}
}

// Start begins the completion sweep schedule.
func (j *OrderCompletionJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewCompleteOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Order completion job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order completion job started (running every ten seconds)")
	return nil
}

// Stop stops the completion sweep.
func (j *OrderCompletionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order completion job stopped")
}
