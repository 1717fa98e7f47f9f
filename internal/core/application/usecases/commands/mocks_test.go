package commands_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/inspection"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/location"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/stock"
	"warehouse/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) List(ctx context.Context, f ports.OrderFilter) ([]*order.Order, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInspectionRepository struct{ mock.Mock }

func (m *MockInspectionRepository) Add(ctx context.Context, rec *inspection.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockInspectionRepository) Update(ctx context.Context, rec *inspection.Record) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}
func (m *MockInspectionRepository) Get(ctx context.Context, id kernel.UUID) (*inspection.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.Record), args.Error(1)
}
func (m *MockInspectionRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*inspection.Record, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inspection.Record), args.Error(1)
}

type MockStockRepository struct{ mock.Mock }

func (m *MockStockRepository) GetBatch(ctx context.Context, key stock.BatchKey) (*stock.Entry, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.Entry), args.Error(1)
}
func (m *MockStockRepository) Upsert(ctx context.Context, entry *stock.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockStockRepository) GetAll(ctx context.Context) ([]*stock.Entry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Entry), args.Error(1)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) ListAreas(ctx context.Context) ([]location.Area, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Area), args.Error(1)
}
func (m *MockWarehouseRepository) ListShelves(ctx context.Context, areaID kernel.UUID) ([]location.Shelf, error) {
	args := m.Called(ctx, areaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Shelf), args.Error(1)
}
func (m *MockWarehouseRepository) ListStorages(ctx context.Context, shelfID kernel.UUID) ([]location.Storage, error) {
	args := m.Called(ctx, shelfID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]location.Storage), args.Error(1)
}
func (m *MockWarehouseRepository) ReserveStorages(ctx context.Context, storageIDs []kernel.UUID) error {
	args := m.Called(ctx, storageIDs)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, event ports.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockInspectionUoW struct{ mock.Mock }

func (m *MockInspectionUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockInspectionUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockInspectionUoW) InspectionRepository() ports.InspectionRepository {
	args := m.Called()
	return args.Get(0).(ports.InspectionRepository)
}

type MockInspectionUoWFactory struct{ mock.Mock }

func (m *MockInspectionUoWFactory) Create() commands.InspectionUoW {
	args := m.Called()
	return args.Get(0).(commands.InspectionUoW)
}

type MockStockUoW struct{ mock.Mock }

func (m *MockStockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockStockUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}

type MockStockUoWFactory struct{ mock.Mock }

func (m *MockStockUoWFactory) Create() commands.StockUoW {
	args := m.Called()
	return args.Get(0).(commands.StockUoW)
}

type MockPutawayUoW struct{ mock.Mock }

func (m *MockPutawayUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPutawayUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPutawayUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockPutawayUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockPutawayUoW) InspectionRepository() ports.InspectionRepository {
	args := m.Called()
	return args.Get(0).(ports.InspectionRepository)
}
func (m *MockPutawayUoW) StockRepository() ports.StockRepository {
	args := m.Called()
	return args.Get(0).(ports.StockRepository)
}
func (m *MockPutawayUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockPutawayUoWFactory struct{ mock.Mock }

func (m *MockPutawayUoWFactory) Create() commands.PutawayUoW {
	args := m.Called()
	return args.Get(0).(commands.PutawayUoW)
}
