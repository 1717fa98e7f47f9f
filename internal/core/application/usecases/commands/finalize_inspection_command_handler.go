package commands

import (
	"context"
	"strconv"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// FinalizeInspectionCommandHandler commits an inspection record and applies
// its outcome to the order in one transaction. The order update is guarded
// by the status the finalize started from, so a cancellation that committed
// in the meantime makes the finalize fail instead of resurrecting the order.
type FinalizeInspectionCommandHandler struct {
	uowFactory       InspectionUoWFactory
	completionPolicy services.CompletionPolicy
	publisher        ports.EventPublisher
}

// NewFinalizeInspectionCommandHandler creates a handler for inspection
// finalization.
func NewFinalizeInspectionCommandHandler(
	uowFactory InspectionUoWFactory,
	completionPolicy services.CompletionPolicy,
	publisher ports.EventPublisher,
) FinalizeInspectionCommandHandler {
	return FinalizeInspectionCommandHandler{
		uowFactory:       uowFactory,
		completionPolicy: completionPolicy,
		publisher:        publisher,
	}
}

// Handle processes the finalize command. A partial worksheet fails with an
// IncompleteError before any state changes. On success the record is sealed,
// each order line receives its actual quantity and quality, the order's
// aggregated quality status is set, and the completion policy decides
// whether the order completes in the same transaction. Events are published
// after commit.
func (h *FinalizeInspectionCommandHandler) Handle(ctx context.Context, cmd FinalizeInspectionCommand) error {
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

	inspectionRepo := uow.InspectionRepository()
	rec, err := inspectionRepo.Get(ctx, cmd.RecordID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, rec.OrderID())
	if err != nil {
		return err
	}
	expectedStatus := aggregate.Status()

	quality, err := rec.Finalize(kernel.NewUUID)
	if err != nil {
		return err
	}

	if err = aggregate.ApplyInspectionOutcome(quality); err != nil {
		return err
	}

	for _, line := range rec.Items() {
		orderItem, itemErr := aggregate.ItemByKey(line.ProductID(), line.BatchNumber())
		if itemErr != nil {
			return itemErr
		}
		if itemErr = orderItem.RecordActualQuantity(line.InspectionQuantity()); itemErr != nil {
			return itemErr
		}
		if itemErr = orderItem.ApplyQuality(lineQuality(line)); itemErr != nil {
			return itemErr
		}
	}

	completed := false
	if h.completionPolicy.IsComplete(aggregate, rec) {
		if err = aggregate.Complete(); err != nil {
			return err
		}
		completed = true
	}

	if err = inspectionRepo.Update(ctx, rec); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewDomainEvent(ports.EventInspectionFinalized, aggregate.ID(),
		map[string]string{
			"inspectionNo": rec.InspectionNo(),
			"quality":      quality.String(),
			"lines":        strconv.Itoa(len(rec.Items())),
		}))
	if completed {
		_ = h.publisher.Publish(ctx, ports.NewDomainEvent(ports.EventOrderCompleted, aggregate.ID(),
			map[string]string{"orderNo": aggregate.OrderNo()}))
	}

	return nil
}

// lineQuality maps a finalized inspection line to the per-item quality of
// the order aggregate.
func lineQuality(line *inspection.Item) order.QualityStatus {
	switch {
	case line.UnqualifiedQuantity() == 0 && line.Quality() == inspection.Qualified:
		return order.QualityPassed
	case line.QualifiedQuantity() == 0:
		return order.QualityFailed
	default:
		return order.PartialException
	}
}
