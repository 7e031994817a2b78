package cmd

import (
	"gorm.io/gorm"

	httpserver "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/locationfeed"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/pkg/metrics"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	feedClient *locationfeed.Client
	metrics    metrics.Metrics
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, m metrics.Metrics) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		feedClient: locationfeed.NewClient(config.LocationFeedURL),
		metrics:    m,
	}
}

func (c *CompositionRoot) CreateScheduleOrderCommandHandler() commands.ScheduleOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewScheduleOrderCommandHandler(f, c.config.OrderDuration)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	return commands.NewDeleteDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncDriverLocationsCommandHandler() commands.SyncDriverLocationsCommandHandler {
	return commands.NewSyncDriverLocationsCommandHandler(c.feedClient, c.driverUoWFactory())
}

func (c *CompositionRoot) CreateFilterOrdersQueryHandler() queries.FilterOrdersQueryHandler {
	return queries.NewFilterOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindClosestDriverQueryHandler() queries.FindClosestDriverQueryHandler {
	return queries.NewFindClosestDriverQueryHandler(c.gormDB, c.config.OrderDuration, c.config.MaxSearchGap)
}

// CreateHTTPServer assembles the transport with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpserver.Server {
	handlers := httpserver.Handlers{
		ScheduleOrder:        c.CreateScheduleOrderCommandHandler(),
		CreateDriver:         c.CreateCreateDriverCommandHandler(),
		UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
		DeleteDriver:         c.CreateDeleteDriverCommandHandler(),
		DeleteOrder:          c.CreateDeleteOrderCommandHandler(),

		FilterOrders:      c.CreateFilterOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetAllDrivers:     c.CreateGetAllDriversQueryHandler(),
		GetDriver:         c.CreateGetDriverQueryHandler(),
		FindClosestDriver: c.CreateFindClosestDriverQueryHandler(),
	}

	return httpserver.NewServer(handlers, c.metrics, c.config.DatetimeFormat, c.config.DateFormat)
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
