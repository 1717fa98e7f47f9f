package cmd

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/redispub"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type CompositionRoot struct {
	gormDB           *gorm.DB
	uowFactory       postgres.GormUnitOfWorkFactory
	publisher        ports.EventPublisher
	completionPolicy services.CompletionPolicy
}

func NewCompositionRoot(
	config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:        redispub.NewEventPublisher(redisClient, config.EventChannel, logger),
		completionPolicy: services.NewFullPutawayPolicy(),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateRejectOrderCommandHandler() commands.RejectOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateStartProcessingCommandHandler() commands.StartProcessingCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartProcessingCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordVerdictCommandHandler() commands.RecordVerdictCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordVerdictCommandHandler(f)
}

func (c *CompositionRoot) CreateFinalizeInspectionCommandHandler() commands.FinalizeInspectionCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinalizeInspectionCommandHandler(f, c.completionPolicy, c.publisher)
}

func (c *CompositionRoot) CreateCommitPutawayCommandHandler() commands.CommitPutawayCommandHandler {
	var f commands.PutawayUoWFactory = FuncPutawayUoWFactory(func() commands.PutawayUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCommitPutawayCommandHandler(f, c.completionPolicy, c.publisher)
}

func (c *CompositionRoot) CreateAddStockCommandHandler() commands.AddStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStockCommandHandler(f)
}

func (c *CompositionRoot) CreateEditStockCommandHandler() commands.EditStockCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEditStockCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrdersCommandHandler() commands.CompleteOrdersCommandHandler {
	var f commands.InspectionUoWFactory = FuncInspectionUoWFactory(func() commands.InspectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrdersCommandHandler(f, c.completionPolicy, c.publisher)
}

func (c *CompositionRoot) CreateEvaluateStockAlertsCommandHandler() commands.EvaluateStockAlertsCommandHandler {
	var f commands.StockUoWFactory = FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
	return commands.NewEvaluateStockAlertsCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFreeShelvesQueryHandler() queries.GetFreeShelvesQueryHandler {
	return queries.NewGetFreeShelvesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInspectionUoWFactory func() commands.InspectionUoW

func (f FuncInspectionUoWFactory) Create() commands.InspectionUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncPutawayUoWFactory func() commands.PutawayUoW

func (f FuncPutawayUoWFactory) Create() commands.PutawayUoW {
	return f()
}
