package cmd

import (
	"log/slog"

	httpadapter "procserve/internal/adapters/in/http"
	"procserve/internal/adapters/out/postgres"
	rediscache "procserve/internal/adapters/out/redis"
	"procserve/internal/core/application/usecases/commands"
	"procserve/internal/core/application/usecases/queries"
	"procserve/internal/core/domain/services"
	"procserve/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	redis      *goredis.Client
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
	if config.RedisAddr != "" {
		root.redis = goredis.NewClient(&goredis.Options{Addr: config.RedisAddr})
	}
	return root
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) directoryUoWFactory() commands.DirectoryUoWFactory {
	return FuncDirectoryUoWFactory(func() commands.DirectoryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) feeSchedule() services.FeeSchedule {
	return services.FeeSchedule{
		ProcessServiceFee:  c.config.ProcessServiceFeeCents,
		CertifiedMailFee:   c.config.CertifiedMailFeeCents,
		RushServiceFee:     c.config.RushServiceFeeCents,
		RemoteLocationFee:  c.config.RemoteLocationFeeCents,
		OrderSurchargeFlat: c.config.OrderSurchargeFlatCents,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePlaceBidCommandHandler() commands.PlaceBidCommandHandler {
	return commands.NewPlaceBidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	return commands.NewAcceptBidCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCounterOfferBidCommandHandler() commands.CounterOfferBidCommandHandler {
	return commands.NewCounterOfferBidCommandHandler(c.orderUoWFactory(), c.config.NegotiationMaxRounds)
}

func (c *CompositionRoot) CreateAcceptCounterCommandHandler() commands.AcceptCounterCommandHandler {
	return commands.NewAcceptCounterCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRecordDeliveryAttemptCommandHandler() commands.RecordDeliveryAttemptCommandHandler {
	return commands.NewRecordDeliveryAttemptCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateExpireStaleBidsCommandHandler() commands.ExpireStaleBidsCommandHandler {
	return commands.NewExpireStaleBidsCommandHandler(c.orderUoWFactory(), c.config.BidTTL)
}

func (c *CompositionRoot) CreateRegisterProcessServerCommandHandler() commands.RegisterProcessServerCommandHandler {
	return commands.NewRegisterProcessServerCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateAddContactCommandHandler() commands.AddContactCommandHandler {
	return commands.NewAddContactCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateRemoveContactCommandHandler() commands.RemoveContactCommandHandler {
	return commands.NewRemoveContactCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateInviteProcessServerCommandHandler() commands.InviteProcessServerCommandHandler {
	return commands.NewInviteProcessServerCommandHandler(c.directoryUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBidsQueryHandler() queries.ListBidsQueryHandler {
	return queries.NewListBidsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCheckOrderEditabilityQueryHandler() queries.CheckOrderEditabilityQueryHandler {
	return queries.NewCheckOrderEditabilityQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderPricingQueryHandler() queries.GetOrderPricingQueryHandler {
	return queries.NewGetOrderPricingQueryHandler(
		c.gormDB,
		services.NewPricingCalculator(c.feeSchedule()),
	)
}

func (c *CompositionRoot) CreateGetContactListQueryHandler() queries.GetContactListQueryHandler {
	return queries.NewGetContactListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetGlobalProcessServersQueryHandler() queries.GetGlobalProcessServersQueryHandler {
	var cache queries.DirectoryCache
	if c.redis != nil {
		cache = rediscache.NewDirectoryCache(c.redis, c.config.DirectoryCacheTTL)
	}
	return queries.NewGetGlobalProcessServersQueryHandler(c.gormDB, cache)
}

func (c *CompositionRoot) CreateGetProcessServerDetailsQueryHandler() queries.GetProcessServerDetailsQueryHandler {
	return queries.NewGetProcessServerDetailsQueryHandler(c.gormDB)
}

// CreateHTTPHandlers bundles every handler the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		CancelOrder:           c.CreateCancelOrderCommandHandler(),
		PlaceBid:              c.CreatePlaceBidCommandHandler(),
		AcceptBid:             c.CreateAcceptBidCommandHandler(),
		CounterOfferBid:       c.CreateCounterOfferBidCommandHandler(),
		AcceptCounter:         c.CreateAcceptCounterCommandHandler(),
		RecordAttempt:         c.CreateRecordDeliveryAttemptCommandHandler(),
		RegisterProcessServer: c.CreateRegisterProcessServerCommandHandler(),
		AddContact:            c.CreateAddContactCommandHandler(),
		RemoveContact:         c.CreateRemoveContactCommandHandler(),
		InviteProcessServer:   c.CreateInviteProcessServerCommandHandler(),

		GetOrder:                c.CreateGetOrderQueryHandler(),
		GetCustomerOrders:       c.CreateGetCustomerOrdersQueryHandler(),
		ListBids:                c.CreateListBidsQueryHandler(),
		CheckOrderEditability:   c.CreateCheckOrderEditabilityQueryHandler(),
		GetOrderPricing:         c.CreateGetOrderPricingQueryHandler(),
		GetContactList:          c.CreateGetContactListQueryHandler(),
		GetGlobalProcessServers: c.CreateGetGlobalProcessServersQueryHandler(),
		GetProcessServerDetails: c.CreateGetProcessServerDetailsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateExpireStaleBidsCommandHandler(),
		c.config.BidExpirySchedule,
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDirectoryUoWFactory func() commands.DirectoryUoW

func (f FuncDirectoryUoWFactory) Create() commands.DirectoryUoW {
	return f()
}
