package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrRecordVerdictCommandIsNotConstructed = errors.New(
		"RecordVerdictCommand must be created via NewRecordVerdictCommand constructor",
	)
)

// RecordVerdictCommand represents an inspector's per-line verdict on an open
// inspection record. Re-submitting the same (product, batch) key overwrites
// the previous verdict.
type RecordVerdictCommand struct { //nolint:recvcheck //using for validation
	recordID          kernel.UUID
	itemKey           inspection.ItemKey
	actualQuantity    int
	qualifiedQuantity int
	approved          bool
	remark            string

	guard guard.ConstructorGuard
}

// NewRecordVerdictCommand creates a command to record one inspection verdict.
// Quantity range checks against the expected quantity happen in the domain;
// here only structural validity is enforced.
func NewRecordVerdictCommand(
	recordID kernel.UUID,
	productID kernel.UUID,
	batchNumber string,
	actualQuantity int,
	qualifiedQuantity int,
	approved bool,
	remark string,
) (RecordVerdictCommand, error) {
	cmd := RecordVerdictCommand{
		actualQuantity:    actualQuantity,
		qualifiedQuantity: qualifiedQuantity,
		approved:          approved,
		remark:            remark,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setItemKey(productID, batchNumber),
	); err != nil {
		return RecordVerdictCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordVerdictCommand) Validate() error {
	return c.guard.Validate(ErrRecordVerdictCommandIsNotConstructed)
}

// RecordID returns the inspection record being edited.
func (c RecordVerdictCommand) RecordID() kernel.UUID { return c.recordID }

// ItemKey returns the (product, batch) pair the verdict addresses.
func (c RecordVerdictCommand) ItemKey() inspection.ItemKey { return c.itemKey }

// ActualQuantity returns the counted quantity.
func (c RecordVerdictCommand) ActualQuantity() int { return c.actualQuantity }

// QualifiedQuantity returns the portion of the count that passed.
func (c RecordVerdictCommand) QualifiedQuantity() int { return c.qualifiedQuantity }

// Approved reports whether the inspector passed the line.
func (c RecordVerdictCommand) Approved() bool { return c.approved }

// Remark returns the inspector's optional note.
func (c RecordVerdictCommand) Remark() string { return c.remark }

func (c *RecordVerdictCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}

func (c *RecordVerdictCommand) setItemKey(productID kernel.UUID, batchNumber string) error {
	key, err := inspection.NewItemKey(productID, batchNumber)
	if err != nil {
		return err
	}
	c.itemKey = key
	return nil
}
