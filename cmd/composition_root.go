package cmd

import (
	"log/slog"

	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/routing"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/ports"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters into use case handlers.
type CompositionRoot struct {
	config      Config
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	routeClient ports.RouteClient
	notifier    ports.VendorNotifier
	logger      *slog.Logger
}

// NewCompositionRoot builds the object graph from config and the shared
// database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		routeClient: routing.NewClient(config.RoutingBaseURL, config.MatchRouteTimeout),
		notifier:    notify.NewWebhookNotifier(config.NotifyWebhookURL, logger),
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMatchStoragesCommandHandler() commands.MatchStoragesCommandHandler {
	return commands.NewMatchStoragesCommandHandler(
		c.fullUoWFactory(),
		c.routeClient,
		c.notifier,
		c.logger,
		commands.WithStorageChunkSize(c.config.MatchChunkSize),
		commands.WithStorageParallelism(c.config.MatchParallelism),
		commands.WithRouteTimeout(c.config.MatchRouteTimeout),
	)
}

func (c *CompositionRoot) CreateMakeOfferCommandHandler() commands.MakeOfferCommandHandler {
	return commands.NewMakeOfferCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGiveDiscountCommandHandler() commands.GiveDiscountCommandHandler {
	return commands.NewGiveDiscountCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateRequestDiscountCommandHandler() commands.RequestDiscountCommandHandler {
	return commands.NewRequestDiscountCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCancelDiscountRequestCommandHandler() commands.CancelDiscountRequestCommandHandler {
	return commands.NewCancelDiscountRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCancelRequestCommandHandler() commands.CancelRequestCommandHandler {
	return commands.NewCancelRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateConfirmRequestCommandHandler() commands.ConfirmRequestCommandHandler {
	return commands.NewConfirmRequestCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMakePaymentCommandHandler() commands.MakePaymentCommandHandler {
	return commands.NewMakePaymentCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateMarkRequestShownCommandHandler() commands.MarkRequestShownCommandHandler {
	return commands.NewMarkRequestShownCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderOffersQueryHandler() queries.GetOrderOffersQueryHandler {
	return queries.NewGetOrderOffersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnseenRequestsQueryHandler() queries.GetUnseenRequestsQueryHandler {
	return queries.NewGetUnseenRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
