package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCommitPutawayCommandIsNotConstructed = errors.New(
		"CommitPutawayCommand must be created via NewCommitPutawayCommand constructor",
	)
)

// CommitPutawayCommand represents the request to put one finalized
// inspection line away into concrete storage slots. The placements are the
// confirmed rows of an allocation draft: one shelf per row with its selected
// slots.
type CommitPutawayCommand struct { //nolint:recvcheck //using for validation
	recordID   kernel.UUID
	itemKey    inspection.ItemKey
	placements []order.Placement

	guard guard.ConstructorGuard
}

// NewCommitPutawayCommand creates a command to commit a putaway. Each
// placement row is structurally validated; the duplicate-shelf and slot
// availability checks happen in the domain and the repository.
func NewCommitPutawayCommand(
	recordID kernel.UUID,
	productID kernel.UUID,
	batchNumber string,
	placements []order.Placement,
) (CommitPutawayCommand, error) {
	cmd := CommitPutawayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRecordID(recordID),
		cmd.setItemKey(productID, batchNumber),
		cmd.setPlacements(placements),
	); err != nil {
		return CommitPutawayCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CommitPutawayCommand) Validate() error {
	return c.guard.Validate(ErrCommitPutawayCommandIsNotConstructed)
}

// RecordID returns the finalized inspection record the line belongs to.
func (c CommitPutawayCommand) RecordID() kernel.UUID { return c.recordID }

// ItemKey returns the (product, batch) pair being put away.
func (c CommitPutawayCommand) ItemKey() inspection.ItemKey { return c.itemKey }

// Placements returns the confirmed shelf/slot rows.
func (c CommitPutawayCommand) Placements() []order.Placement { return c.placements }

func (c *CommitPutawayCommand) setRecordID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.recordID = id
	return nil
}

func (c *CommitPutawayCommand) setItemKey(productID kernel.UUID, batchNumber string) error {
	key, err := inspection.NewItemKey(productID, batchNumber)
	if err != nil {
		return err
	}
	c.itemKey = key
	return nil
}

func (c *CommitPutawayCommand) setPlacements(placements []order.Placement) error {
	if len(placements) == 0 {
		return errs.NewValueIsRequiredError("placements")
	}
	for _, p := range placements {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	c.placements = placements
	return nil
}
