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
	ErrEditStockCommandIsNotConstructed = errors.New(
		"EditStockCommand must be created via NewEditStockCommand constructor",
	)
)

// EditStockCommand represents a manual correction of a batch's on-hand
// quantity. Only increases are supported; a decrease is rejected by the
// ledger because its effect on the available share is undefined.
type EditStockCommand struct { //nolint:recvcheck //using for validation
	key         stock.BatchKey
	newQuantity int

	guard guard.ConstructorGuard
}

// NewEditStockCommand creates a command to set a batch's quantity.
func NewEditStockCommand(
	productID kernel.UUID, batchNumber string, newQuantity int,
) (EditStockCommand, error) {
	cmd := EditStockCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKey(productID, batchNumber),
		cmd.setNewQuantity(newQuantity),
	); err != nil {
		return EditStockCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditStockCommand) Validate() error {
	return c.guard.Validate(ErrEditStockCommandIsNotConstructed)
}

// Key returns the batch to correct.
func (c EditStockCommand) Key() stock.BatchKey { return c.key }

// NewQuantity returns the corrected on-hand quantity.
func (c EditStockCommand) NewQuantity() int { return c.newQuantity }

func (c *EditStockCommand) setKey(productID kernel.UUID, batchNumber string) error {
	key, err := stock.NewBatchKey(productID, batchNumber)
	if err != nil {
		return err
	}
	c.key = key
	return nil
}

func (c *EditStockCommand) setNewQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("newQuantity", quantity, 0, math.MaxInt)
	}
	c.newQuantity = quantity
	return nil
}
