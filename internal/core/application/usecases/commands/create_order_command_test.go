package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	creator := kernel.NewUUID()
	items := newTestItems(t, 1)

	cmd, err := commands.NewCreateOrderCommand(id, order.Inbound, "purchase", creator, items, "urgent")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Inbound, cmd.Direction())
	assert.Equal(t, "purchase", cmd.OrderType())
	assert.Equal(t, creator, cmd.CreatorID())
	assert.Len(t, cmd.Items(), 1)
	assert.Equal(t, "urgent", cmd.Remark())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, order.Inbound, "purchase", kernel.NewUUID(), newTestItems(t, 1), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_UnknownDirection(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.DirectionUnknown, "purchase", kernel.NewUUID(), newTestItems(t, 1), "")
	require.Error(t, err)
}

func TestNewCreateOrderCommand_EmptyOrderType(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Inbound, "", kernel.NewUUID(), newTestItems(t, 1), "")
	require.Error(t, err)
}

func TestNewCreateOrderCommand_NoItems(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), order.Inbound, "purchase", kernel.NewUUID(), nil, "")
	require.Error(t, err)
}
