package commands

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// StartProcessingCommandHandler moves an approved order into processing and
// opens its inspection record in the same transaction. The worksheet is
// seeded from the order's item lines, so every (product, batch) pair the
// order expects has a row awaiting a verdict.
type StartProcessingCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewStartProcessingCommandHandler creates a handler for starting order
// processing.
func NewStartProcessingCommandHandler(uowFactory InspectionUoWFactory) StartProcessingCommandHandler {
	return StartProcessingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. The order transition and the new inspection
// record commit together or not at all.
func (h *StartProcessingCommandHandler) Handle(ctx context.Context, cmd StartProcessingCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	expectedStatus := aggregate.Status()
	if err = aggregate.StartProcessing(cmd.InspectorID()); err != nil {
		return err
	}

	worksheet, err := inspection.NewWorksheet(aggregate)
	if err != nil {
		return err
	}

	kind := inspection.TypeInbound
	if aggregate.Direction() == order.Outbound {
		kind = inspection.TypeOutbound
	}

	rec, err := inspection.NewRecord(
		kernel.NewUUID(),
		generateInspectionNo(time.Now()),
		kind,
		aggregate.ID(),
		cmd.InspectorID(),
		worksheet,
	)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err = uow.InspectionRepository().Add(ctx, rec); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
