package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// ApproveOrderCommandHandler handles the reviewer approval of a pending
// order. The status guard on the update serializes racing reviews: the first
// decision to commit wins and the loser gets an InvalidTransitionError.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewApproveOrderCommandHandler creates a handler for order approval.
func NewApproveOrderCommandHandler(
	uowFactory OrderUoWFactory, publisher ports.EventPublisher,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the approval command. Loads the order, applies the
// PendingReview -> Approved transition and persists it guarded by the
// pre-transition status. The approval event is published after commit;
// publish failures do not affect the committed state.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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
	if err = aggregate.Approve(cmd.ApproverID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.Publish(ctx, ports.NewDomainEvent(ports.EventOrderApproved, aggregate.ID(),
		map[string]string{"orderNo": aggregate.OrderNo(), "status": order.Approved.String()}))

	return nil
}
