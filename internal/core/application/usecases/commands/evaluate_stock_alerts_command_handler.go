package commands

import (
	"context"
	"strconv"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/ports"
)

// EvaluateStockAlertsCommandHandler re-derives the alert status of every
// ledger entry from the configured thresholds. Entries that newly enter an
// alert state raise a stock alert event after commit.
type EvaluateStockAlertsCommandHandler struct {
	uowFactory StockUoWFactory
	publisher  ports.EventPublisher
}

// NewEvaluateStockAlertsCommandHandler creates a handler for the alert sweep.
func NewEvaluateStockAlertsCommandHandler(
	uowFactory StockUoWFactory, publisher ports.EventPublisher,
) EvaluateStockAlertsCommandHandler {
	return EvaluateStockAlertsCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the alert sweep. Only entries whose alert status changed
// are written back.
func (h *EvaluateStockAlertsCommandHandler) Handle(
	ctx context.Context, cmd EvaluateStockAlertsCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	stockRepo := uow.StockRepository()
	entries, err := stockRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	raised := make([]*stock.Entry, 0)
	for _, entry := range entries {
		before := entry.AlertStatus()
		after := entry.EvaluateAlert(cmd.MinQuantity(), cmd.MaxQuantity())
		if after == before {
			continue
		}

		if err = stockRepo.Upsert(ctx, entry); err != nil {
			return err
		}
		if after != stock.AlertNone {
			raised = append(raised, entry)
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, entry := range raised {
		_ = h.publisher.Publish(ctx, ports.NewDomainEvent(
			ports.EventStockAlertRaised, entry.Key().ProductID,
			map[string]string{
				"batchNumber": entry.Key().BatchNumber,
				"alert":       entry.AlertStatus().String(),
				"quantity":    strconv.Itoa(entry.Quantity()),
			}))
	}

	return nil
}
