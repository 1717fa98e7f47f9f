package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// ItemInput is one order line of a creation request.
type ItemInput struct {
	ProductID        kernel.UUID
	BatchNumber      string
	ExpectedQuantity int
	Price            int64
	AreaID           kernel.UUID
}

// CreateOrderCommand represents a request to submit a new inbound or
// outbound order with its item lines. The order is created atomically with
// its items in PendingReview status.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	direction order.Direction
	orderType string
	creatorID kernel.UUID
	items     []ItemInput
	remark    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new order.
// Validates identifiers, direction and that at least one item is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	direction order.Direction,
	orderType string,
	creatorID kernel.UUID,
	items []ItemInput,
	remark string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		remark: remark,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDirection(direction),
		cmd.setOrderType(orderType),
		cmd.setCreatorID(creatorID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// Direction returns the order direction.
func (c CreateOrderCommand) Direction() order.Direction { return c.direction }

// OrderType returns the order classification.
func (c CreateOrderCommand) OrderType() string { return c.orderType }

// CreatorID returns the submitting user's id.
func (c CreateOrderCommand) CreatorID() kernel.UUID { return c.creatorID }

// Items returns the requested order lines.
func (c CreateOrderCommand) Items() []ItemInput { return c.items }

// Remark returns the optional free-text note.
func (c CreateOrderCommand) Remark() string { return c.remark }

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setDirection(d order.Direction) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.direction = d
	return nil
}

func (c *CreateOrderCommand) setOrderType(orderType string) error {
	if orderType == "" {
		return errs.NewValueIsRequiredError("orderType")
	}
	c.orderType = orderType
	return nil
}

func (c *CreateOrderCommand) setCreatorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.creatorID = id
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = items
	return nil
}
