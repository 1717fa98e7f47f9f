package commands

import (
	"context"

	"warehouse/internal/core/domain/model/inspection"
)

// RecordVerdictCommandHandler persists one inspection verdict on an open
// record. Finalized records reject edits.
type RecordVerdictCommandHandler struct {
	uowFactory InspectionUoWFactory
}

// NewRecordVerdictCommandHandler creates a handler for verdict recording.
func NewRecordVerdictCommandHandler(uowFactory InspectionUoWFactory) RecordVerdictCommandHandler {
	return RecordVerdictCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the verdict command.
func (h *RecordVerdictCommandHandler) Handle(ctx context.Context, cmd RecordVerdictCommand) error {
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

	verdict := inspection.Verdict{
		ActualQuantity:    cmd.ActualQuantity(),
		QualifiedQuantity: cmd.QualifiedQuantity(),
		Approved:          cmd.Approved(),
		Remark:            cmd.Remark(),
	}
	if err = rec.RecordVerdict(cmd.ItemKey(), verdict); err != nil {
		return err
	}

	if err = inspectionRepo.Update(ctx, rec); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
