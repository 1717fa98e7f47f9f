package commands

import (
	"errors"
	"math"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrAddStockCommandIsNotConstructed = errors.New(
		"AddStockCommand must be created via NewAddStockCommand constructor",
	)
)

// AddStockCommand represents a manual stock receipt for a batch outside the
// putaway flow, e.g. an opening balance or a correction upwards.
type AddStockCommand struct { //nolint:recvcheck //using for validation
	key      stock.BatchKey
	areaID   kernel.UUID
	quantity int

	guard guard.ConstructorGuard
}

// NewAddStockCommand creates a command to add stock to a batch. The quantity
// must be positive.
func NewAddStockCommand(
	productID kernel.UUID, batchNumber string, areaID kernel.UUID, quantity int,
) (AddStockCommand, error) {
	cmd := AddStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKey(productID, batchNumber),
		cmd.setAreaID(areaID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddStockCommand) Validate() error {
	return c.guard.Validate(ErrAddStockCommandIsNotConstructed)
}

// Key returns the batch to add stock to.
func (c AddStockCommand) Key() stock.BatchKey { return c.key }

// AreaID returns the area holding the batch.
func (c AddStockCommand) AreaID() kernel.UUID { return c.areaID }

// Quantity returns the amount to add.
func (c AddStockCommand) Quantity() int { return c.quantity }

func (c *AddStockCommand) setKey(productID kernel.UUID, batchNumber string) error {
	key, err := stock.NewBatchKey(productID, batchNumber)
	if err != nil {
		return err
	}
	c.key = key
	return nil
}

func (c *AddStockCommand) setAreaID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.areaID = id
	return nil
}

func (c *AddStockCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt)
	}
	c.quantity = quantity
	return nil
}
