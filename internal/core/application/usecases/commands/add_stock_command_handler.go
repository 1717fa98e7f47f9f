package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
)

// AddStockCommandHandler handles manual stock receipts. Adding to an unknown
// batch creates its ledger entry; adding to an existing one raises both the
// on-hand and available quantities.
type AddStockCommandHandler struct {
	uowFactory StockUoWFactory
}

// NewAddStockCommandHandler creates a handler for manual stock receipts.
func NewAddStockCommandHandler(uowFactory StockUoWFactory) AddStockCommandHandler {
	return AddStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock receipt command.
func (h *AddStockCommandHandler) Handle(ctx context.Context, cmd AddStockCommand) error {
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
	switch {
	case err == nil:
		if err = entry.Add(cmd.Quantity()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		entry, err = stock.NewEntry(cmd.Key(), cmd.AreaID(), cmd.Quantity())
		if err != nil {
			return err
		}
	default:
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
