package cmd

import (
	httpin "salesdelivery/internal/adapters/in/http"
	"salesdelivery/internal/adapters/out/postgres"
	"salesdelivery/internal/core/application/usecases/commands"
	"salesdelivery/internal/core/application/usecases/queries"
	"salesdelivery/internal/core/domain/services"
	"salesdelivery/internal/core/ports"
	"salesdelivery/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
	logger     *zap.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *zap.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAddOrderLineCommandHandler() *commands.AddOrderLineCommandHandler {
	h := commands.NewAddOrderLineCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() *commands.ConfirmOrderCommandHandler {
	h := commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateLockOrderCommandHandler() *commands.LockOrderCommandHandler {
	h := commands.NewLockOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() *commands.CancelOrderCommandHandler {
	h := commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) carrierUoWFactory() commands.CarrierUoWFactory {
	return FuncCarrierUoWFactory(func() commands.CarrierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCarrierCommandHandler() *commands.CreateCarrierCommandHandler {
	h := commands.NewCreateCarrierCommandHandler(c.carrierUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateArchiveCarrierCommandHandler() *commands.ArchiveCarrierCommandHandler {
	h := commands.NewArchiveCarrierCommandHandler(c.carrierUoWFactory())
	return &h
}

// CreateSetDeliveryLineCommandHandler wires the shipment annotator around
// the base delivery-line creation.
func (c *CompositionRoot) CreateSetDeliveryLineCommandHandler() *commands.SetDeliveryLineCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	creator := services.NewShipmentAnnotator(services.NewBaseDeliveryLineCreator())
	h := commands.NewSetDeliveryLineCommandHandler(f, creator)
	return &h
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() *commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	h := commands.NewRelayOutboxCommandHandler(f, c.publisher)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCarriersQueryHandler() queries.GetAllCarriersQueryHandler {
	return queries.NewGetAllCarriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		AddOrderLine:    c.CreateAddOrderLineCommandHandler(),
		ConfirmOrder:    c.CreateConfirmOrderCommandHandler(),
		LockOrder:       c.CreateLockOrderCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		SetDeliveryLine: c.CreateSetDeliveryLineCommandHandler(),
		CreateCarrier:   c.CreateCreateCarrierCommandHandler(),
		ArchiveCarrier:  c.CreateArchiveCarrierCommandHandler(),
		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetAllCarriers:  c.CreateGetAllCarriersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	relay := jobs.NewOutboxRelayJob(
		c.CreateRelayOutboxCommandHandler(),
		c.config.OutboxSchedule,
		c.config.OutboxBatchSize,
		c.logger,
	)
	return jobs.NewJobManager(relay)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCarrierUoWFactory func() commands.CarrierUoW

func (f FuncCarrierUoWFactory) Create() commands.CarrierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
