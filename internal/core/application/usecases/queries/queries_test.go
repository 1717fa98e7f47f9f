package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

func TestNewGetOrdersQuery_Valid(t *testing.T) {
	status := order.InProgress
	query, err := queries.NewGetOrdersQuery(order.Inbound, &status)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, order.Inbound, query.Direction())
	assert.Equal(t, order.InProgress, *query.Status())
}

func TestNewGetOrdersQuery_UnfilteredIsValid(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(order.DirectionUnknown, nil)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}

func TestNewGetOrderQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(orderID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, orderID, query.OrderID())
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetFreeShelvesQuery_InvalidArea(t *testing.T) {
	_, err := queries.NewGetFreeShelvesQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetFreeShelvesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFreeShelvesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFreeShelvesQueryIsNotConstructed)
}

func TestNewGetStockQuery_Valid(t *testing.T) {
	productID := kernel.NewUUID()
	query, err := queries.NewGetStockQuery(&productID)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, productID, *query.ProductID())
}

func TestGetStockQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockQueryIsNotConstructed)
}
