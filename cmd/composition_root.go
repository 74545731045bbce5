package cmd

import (
	"fmt"
	"log/slog"

	inhttp "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/kafka"
	"logistics/internal/adapters/out/memory"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/collectionrepo"
	"logistics/internal/adapters/out/postgres/driverrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/rediscache"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"
	"logistics/internal/jobs"

	"github.com/go-redis/redis/v8"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases according to the Config.
// Reads outside a command go through readUoW, a unit of work that is never
// begun and therefore serves each repository call directly.
type CompositionRoot struct {
	config        Config
	logger        *slog.Logger
	uowFactory    ports.UnitOfWorkFactory
	readUoW       ports.UnitOfWork
	locationCache ports.LocationCache
	notifier      ports.NotificationSink

	gormDB      *gorm.DB
	redisClient *redis.Client
	kafkaSink   *kafka.NotificationSink
}

// NewCompositionRoot builds the dependency graph for the given configuration.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config: config,
		logger: logger,
	}

	switch config.StorageMode {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
			config.DBName, config.DBSslMode)

		gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}

		if err := gormDB.AutoMigrate(
			&orderrepo.OrderDTO{},
			&driverrepo.DriverDTO{},
			&collectionrepo.CollectionDTO{},
			&collectionrepo.CollectionOrderDTO{},
		); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}

		root.gormDB = gormDB
		root.uowFactory = postgres.NewGormUnitOfWorkFactory(gormDB)
	case "memory", "":
		store := memory.NewStore()
		root.uowFactory = memory.NewStoreUnitOfWorkFactory(store)
	default:
		return nil, fmt.Errorf("unknown storage mode %q", config.StorageMode)
	}
	root.readUoW = root.uowFactory.Create()

	if config.RedisAddr != "" {
		root.redisClient = redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		root.locationCache = rediscache.NewLocationCache(root.redisClient, config.LocationTTL)
	} else {
		root.locationCache = memory.NewLocationCache(config.LocationTTL)
	}

	if config.KafkaHost != "" {
		root.kafkaSink = kafka.NewNotificationSink(config.KafkaHost,
			config.KafkaNotificationsTopic, logger)
		root.notifier = root.kafkaSink
	} else {
		root.notifier = notify.NewLogSink(logger)
	}

	return root, nil
}

// Close releases external connections. Safe to call on a partially built root.
func (c *CompositionRoot) Close() error {
	var closeErrs []error

	if c.kafkaSink != nil {
		if err := c.kafkaSink.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("failed to close kafka sink: %w", err))
		}
	}

	if c.redisClient != nil {
		if err := c.redisClient.Close(); err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("failed to close redis client: %w", err))
		}
	}

	if c.gormDB != nil {
		sqlDB, err := c.gormDB.DB()
		if err == nil {
			err = sqlDB.Close()
		}
		if err != nil {
			closeErrs = append(closeErrs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(closeErrs) > 0 {
		return closeErrs[0]
	}
	return nil
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDriverCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.LifecycleUoWFactory = FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOrderReturnedCommandHandler() commands.MarkOrderReturnedCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOrderReturnedCommandHandler(f)
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() commands.RegisterDriverCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeDriverStatusCommandHandler() commands.ChangeDriverStatusCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDriverStatusCommandHandler(f, c.locationCache, c.logger)
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDriverLocationCommandHandler(f, c.locationCache, c.logger)
}

func (c *CompositionRoot) CreateRecordCollectionCommandHandler() commands.RecordCollectionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateApproveCollectionCommandHandler() commands.ApproveCollectionCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewApproveCollectionCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateRejectCollectionCommandHandler() commands.RejectCollectionCommandHandler {
	var f commands.CollectionUoWFactory = FuncCollectionUoWFactory(func() commands.CollectionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRejectCollectionCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshPendingCashCommandHandler() commands.RefreshPendingCashCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshPendingCashCommandHandler(f)
}

func (c *CompositionRoot) CreateResetDailyCountersCommandHandler() commands.ResetDailyCountersCommandHandler {
	var f commands.DriverUoWFactory = FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
	return commands.NewResetDailyCountersCommandHandler(f)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readUoW.OrderRepository())
}

func (c *CompositionRoot) CreateListDriversQueryHandler() queries.ListDriversQueryHandler {
	return queries.NewListDriversQueryHandler(c.readUoW.DriverRepository())
}

func (c *CompositionRoot) CreateListCollectionsQueryHandler() queries.ListCollectionsQueryHandler {
	return queries.NewListCollectionsQueryHandler(c.readUoW.CollectionRepository())
}

func (c *CompositionRoot) CreateGetPendingCashQueryHandler() queries.GetPendingCashQueryHandler {
	return queries.NewGetPendingCashQueryHandler(c.readUoW.DriverRepository(),
		c.readUoW.OrderRepository(), c.readUoW.CollectionRepository())
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.readUoW.DriverRepository(),
		c.readUoW.OrderRepository(), c.readUoW.CollectionRepository())
}

func (c *CompositionRoot) CreateGetLiveLocationsQueryHandler() queries.GetLiveLocationsQueryHandler {
	return queries.NewGetLiveLocationsQueryHandler(c.locationCache)
}

// CreateHTTPServer assembles the REST surface over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *inhttp.Server {
	return inhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAssignDriverCommandHandler(),
		c.CreateAdvanceOrderCommandHandler(),
		c.CreateMarkOrderReturnedCommandHandler(),
		c.CreateRegisterDriverCommandHandler(),
		c.CreateChangeDriverStatusCommandHandler(),
		c.CreateUpdateDriverLocationCommandHandler(),
		c.CreateRecordCollectionCommandHandler(),
		c.CreateApproveCollectionCommandHandler(),
		c.CreateRejectCollectionCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateListDriversQueryHandler(),
		c.CreateListCollectionsQueryHandler(),
		c.CreateGetPendingCashQueryHandler(),
		c.CreateGetDashboardStatsQueryHandler(),
		c.CreateGetLiveLocationsQueryHandler(),
	)
}

// CreateJobManager assembles the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshPendingCashCommandHandler(),
		c.CreateResetDailyCountersCommandHandler(),
		c.readUoW.DriverRepository(),
		c.logger,
	)
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCollectionUoWFactory func() commands.CollectionUoW

func (f FuncCollectionUoWFactory) Create() commands.CollectionUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
