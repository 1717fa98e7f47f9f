package commands

import (
	"context"
)

// EditStockCommandHandler handles manual corrections of a batch's on-hand
// quantity. The ledger rejects decreases; the rejection propagates to the
// caller with state unchanged.
type EditStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewEditStockCommandHandler creates a handler for stock corrections.
func NewEditStockCommandHandler(uowFactory StockUoWFactory) EditStockCommandHandler {
	return EditStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock correction command.
func (h *EditStockCommandHandler) Handle(ctx context.Context, cmd EditStockCommand) error {
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
	entry, err := stockRepo.GetBatch(ctx, cmd.Key())
	if err != nil {
		return err
	}

	if err = entry.SetQuantity(cmd.NewQuantity()); err != nil {
		return err
	}

	if err = stockRepo.Upsert(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
