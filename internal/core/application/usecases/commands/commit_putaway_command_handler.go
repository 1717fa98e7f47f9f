package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// CommitPutawayCommandHandler commits the putaway of one finalized
// inspection line: reserves the chosen storage slots, moves the line through
// its shelving transitions, stamps the placements onto the order item and
// upserts the stock ledger, all in one transaction. The slot reservation is
// the authoritative check; a slot consumed by a concurrent putaway fails the
// whole command with a ConflictError and nothing is committed.
type CommitPutawayCommandHandler struct {
	uowFactory       PutawayUoWFactory
	completionPolicy services.CompletionPolicy
	publisher        ports.EventPublisher
}

// NewCommitPutawayCommandHandler creates a handler for putaway commits.
func NewCommitPutawayCommandHandler(
	uowFactory PutawayUoWFactory,
	completionPolicy services.CompletionPolicy,
	publisher ports.EventPublisher,
) CommitPutawayCommandHandler {
	return CommitPutawayCommandHandler{
		uowFactory:       uowFactory,
		completionPolicy: completionPolicy,
		publisher:        publisher,
	}
}

// Handle processes the putaway command. After the last line of an order
// shelves, the completion policy may complete the order in the same
// transaction; the completion event is published after commit.
func (h *CommitPutawayCommandHandler) Handle(ctx context.Context, cmd CommitPutawayCommand) error {
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

	line, err := rec.ItemByKey(cmd.ItemKey())
	if err != nil {
		return err
	}
	if line.QualifiedQuantity() == 0 {
		return errs.NewValueIsInvalidErrorWithCause("putaway",
			fmt.Errorf("no qualified quantity for %s", cmd.ItemKey()))
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, rec.OrderID())
	if err != nil {
		return err
	}
	expectedStatus := aggregate.Status()

	orderItem, err := aggregate.ItemByKey(line.ProductID(), line.BatchNumber())
	if err != nil {
		return err
	}
	if err = orderItem.AssignPlacements(cmd.Placements()); err != nil {
		return err
	}

	storageIDs := make([]kernel.UUID, 0)
	for _, p := range cmd.Placements() {
		storageIDs = append(storageIDs, p.StorageIDs...)
	}
	if err = uow.WarehouseRepository().ReserveStorages(ctx, storageIDs); err != nil {
		return err
	}

	locationCode, err := h.resolveLocationCode(ctx, uow, orderItem.AreaID(), cmd)
	if err != nil {
		return err
	}
	if err = line.StartShelving(locationCode); err != nil {
		return err
	}
	if err = line.FinishShelving(); err != nil {
		return err
	}

	entry, err := h.upsertLedger(ctx, uow, line.QualifiedQuantity(), orderItem.AreaID(), cmd)
	if err != nil {
		return err
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
	if err = uow.StockRepository().Upsert(ctx, entry); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if completed {
		_ = h.publisher.Publish(ctx, ports.NewDomainEvent(ports.EventOrderCompleted, aggregate.ID(),
			map[string]string{"orderNo": aggregate.OrderNo()}))
	}

	return nil
}

// resolveLocationCode renders the human-facing target location from the
// shelf codes of the placement rows, e.g. "S1,S3".
func (h *CommitPutawayCommandHandler) resolveLocationCode(
	ctx context.Context, uow PutawayUoW, areaID kernel.UUID, cmd CommitPutawayCommand,
) (string, error) {
	shelves, err := uow.WarehouseRepository().ListShelves(ctx, areaID)
	if err != nil {
		return "", err
	}

	codes := make(map[kernel.UUID]string, len(shelves))
	for _, shelf := range shelves {
		codes[shelf.ID()] = shelf.Code()
	}

	parts := make([]string, 0, len(cmd.Placements()))
	for _, p := range cmd.Placements() {
		code, ok := codes[p.ShelfID]
		if !ok {
			return "", errs.NewObjectNotFoundError("shelf", p.ShelfID.String())
		}
		parts = append(parts, code)
	}
	return strings.Join(parts, ","), nil
}

// upsertLedger adds the qualified quantity to the batch's stock entry,
// creating the entry on first putaway, and merges the new placements in.
func (h *CommitPutawayCommandHandler) upsertLedger(
	ctx context.Context, uow PutawayUoW, qualified int, areaID kernel.UUID, cmd CommitPutawayCommand,
) (*stock.Entry, error) {
	key, err := stock.NewBatchKey(cmd.ItemKey().ProductID, cmd.ItemKey().BatchNumber)
	if err != nil {
		return nil, err
	}

	entry, err := uow.StockRepository().GetBatch(ctx, key)
	switch {
	case err == nil:
		if err = entry.Add(qualified); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		entry, err = stock.NewEntry(key, areaID, qualified)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err = entry.MergePlacements(cmd.Placements()); err != nil {
		return nil, err
	}
	return entry, nil
}
