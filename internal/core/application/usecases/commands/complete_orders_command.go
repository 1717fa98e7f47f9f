package commands

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

// CompleteOrdersCommand triggers a sweep over all in-progress orders,
// completing those whose fulfillment the completion policy considers
// finished. Run periodically by the scheduler as a safety net for orders
// whose last putaway commit raced the policy check.
type CompleteOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrCompleteOrdersCommandIsNotConstructed = errors.New(
		"CompleteOrdersCommand must be created via NewCompleteOrdersCommand constructor",
	)
)

// NewCompleteOrdersCommand creates a command to trigger the completion sweep.
// This is a parameterless command that processes all in-progress orders.
func NewCompleteOrdersCommand() CompleteOrdersCommand {
	command := CompleteOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
func (c *CompleteOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrdersCommandIsNotConstructed)
}
