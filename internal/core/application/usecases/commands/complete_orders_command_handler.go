package commands

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CompleteOrdersCommandHandler sweeps in-progress orders and completes those
// the completion policy considers finished. An order without an inspection
// record yet is skipped, not failed: it simply has not reached putaway.
type CompleteOrdersCommandHandler struct {
	uowFactory       InspectionUoWFactory
	completionPolicy services.CompletionPolicy
	publisher        ports.EventPublisher
}

// NewCompleteOrdersCommandHandler creates a handler for the completion sweep.
func NewCompleteOrdersCommandHandler(
	uowFactory InspectionUoWFactory,
	completionPolicy services.CompletionPolicy,
	publisher ports.EventPublisher,
) CompleteOrdersCommandHandler {
	return CompleteOrdersCommandHandler{
		uowFactory:       uowFactory,
		completionPolicy: completionPolicy,
		publisher:        publisher,
	}
}

// Handle processes the completion sweep. Each completed order is persisted
// guarded by its in-progress status; events for completed orders are
// published after commit.
func (h *CompleteOrdersCommandHandler) Handle(ctx context.Context, cmd CompleteOrdersCommand) error {
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
	inspectionRepo := uow.InspectionRepository()

	orders, err := orderRepo.GetAllInProgress(ctx)
	if err != nil {
		return err
	}

	completed := make([]*order.Order, 0)
	for _, aggregate := range orders {
		rec, recErr := inspectionRepo.GetByOrder(ctx, aggregate.ID())
		if recErr != nil {
			if errors.Is(recErr, errs.ErrObjectNotFound) {
				continue
			}
			return recErr
		}

		if !h.completionPolicy.IsComplete(aggregate, rec) {
			continue
		}

		if err = aggregate.Complete(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, aggregate, order.InProgress); err != nil {
			return err
		}
		completed = append(completed, aggregate)
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, aggregate := range completed {
		_ = h.publisher.Publish(ctx, ports.NewDomainEvent(ports.EventOrderCompleted, aggregate.ID(),
			map[string]string{"orderNo": aggregate.OrderNo()}))
	}

	return nil
}
