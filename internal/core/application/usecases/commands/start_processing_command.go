package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var (
	ErrStartProcessingCommandIsNotConstructed = errors.New(
		"StartProcessingCommand must be created via NewStartProcessingCommand constructor",
	)
)

// StartProcessingCommand represents the request to begin receiving or
// fulfillment on an approved order, assigning an inspector and opening the
// inspection record.
type StartProcessingCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	inspectorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartProcessingCommand creates a command to start processing an order.
func NewStartProcessingCommand(
	orderID kernel.UUID, inspectorID kernel.UUID,
) (StartProcessingCommand, error) {
	cmd := StartProcessingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setInspectorID(inspectorID),
	); err != nil {
		return StartProcessingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartProcessingCommand) Validate() error {
	return c.guard.Validate(ErrStartProcessingCommandIsNotConstructed)
}

// OrderID returns the order to start processing.
func (c StartProcessingCommand) OrderID() kernel.UUID { return c.orderID }

// InspectorID returns the user assigned to inspect the order.
func (c StartProcessingCommand) InspectorID() kernel.UUID { return c.inspectorID }

func (c *StartProcessingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *StartProcessingCommand) setInspectorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.inspectorID = id
	return nil
}
