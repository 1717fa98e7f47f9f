package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrFinalizeInspectionCommandIsNotConstructed = errors.New(
		"FinalizeInspectionCommand must be created via NewFinalizeInspectionCommand constructor",
	)
)

// FinalizeInspectionCommand represents the request to commit an inspection
// record. Finalization is all-or-nothing over the worksheet.
type FinalizeInspectionCommand struct { //nolint:recvcheck //using for validation
	recordID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinalizeInspectionCommand creates a command to finalize an inspection
// record.
func NewFinalizeInspectionCommand(recordID kernel.UUID) (FinalizeInspectionCommand, error) {
	cmd := FinalizeInspectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRecordID(recordID); err != nil {
		return FinalizeInspectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeInspectionCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeInspectionCommandIsNotConstructed)
}

// RecordID returns the inspection record to finalize.
func (c FinalizeInspectionCommand) RecordID() kernel.UUID { return c.recordID }

func (c *FinalizeInspectionCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}
