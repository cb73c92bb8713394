// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"time"

	"github.com/culinaryos/kitchen/internal/application/assistant"
	"github.com/culinaryos/kitchen/internal/application/dashboard"
	"github.com/culinaryos/kitchen/internal/application/order"
	"github.com/culinaryos/kitchen/internal/application/pantry"
	"github.com/culinaryos/kitchen/internal/application/planner"
	"github.com/culinaryos/kitchen/internal/application/recipe"
	"github.com/culinaryos/kitchen/internal/application/seed"
	"github.com/culinaryos/kitchen/internal/application/user"
	"github.com/culinaryos/kitchen/internal/domain/shared"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/events"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/middleware"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	gormRepo "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/memory"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/postgres"
	redisCache "github.com/culinaryos/kitchen/internal/infrastructure/persistence/redis"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/sqlite"
	"github.com/culinaryos/kitchen/internal/infrastructure/security"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	cacheKeyPrefix        = "culinaryos:"
	memoryCacheSweepEvery = time.Minute
)

// CatalogBootstrapper fills an empty recipe catalog with the reference recipes
type CatalogBootstrapper interface {
	EnsureCatalog(ctx context.Context) (int, error)
}

// New assembles the complete API application
func New(configPath string) fx.Option {
	return fx.Options(
		Core(configPath),
		AIModule,
		ServiceModule,
		HTTPModule,
		LifecycleModule,
	)
}

// StopTimeout bounds fx's OnStop hooks by server.shutdown_timeout
func StopTimeout(cfg *config.Config) fx.Option {
	if cfg.Server.ShutdownTimeout <= 0 {
		return fx.Options()
	}
	return fx.StopTimeout(cfg.Server.ShutdownTimeout)
}

// Core provides configuration, logging, monitoring, storage and caching.
// Command line tools build on it without the HTTP stack.
func Core(configPath string) fx.Option {
	return fx.Options(
		ConfigModule(configPath),
		LoggerModule,
		MonitoringModule,
		DatabaseModule,
		CacheModule,
		RepositoryModule,
	)
}

// ConfigModule provides configuration loaded from configPath, or the default locations when empty
func ConfigModule(configPath string) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		return config.Load(configPath)
	})
}

// LoggerModule provides logging and routes fx's own events through zap
var LoggerModule = fx.Options(
	fx.Provide(
		func(cfg *config.Config) (*logger.Logger, error) {
			return logger.New(logger.Config{
				Level:       cfg.App.LogLevel,
				Format:      cfg.App.LogFormat,
				Development: cfg.App.Debug,
			})
		},
		func(l *logger.Logger) *zap.Logger {
			return l.Logger
		},
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		fxLogger := &fxevent.ZapLogger{Logger: log.Named("fx")}
		fxLogger.UseLogLevel(zap.DebugLevel)
		return fxLogger
	}),
)

// MonitoringModule provides Prometheus metrics and tracing
var MonitoringModule = fx.Provide(
	func(log *zap.Logger) *monitoring.MetricsCollector {
		return monitoring.NewMetricsCollector(prometheus.DefaultRegisterer, prometheus.DefaultGatherer, log)
	},
	func(m *monitoring.MetricsCollector) outbound.MetricsRecorder {
		return m
	},
	NewTracingProvider,
)

// NewTracingProvider creates the tracer and flushes it on stop
func NewTracingProvider(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (*monitoring.TracingProvider, error) {
	tp, err := monitoring.NewTracingProvider(monitoring.TracingConfig{
		ServiceName:    "culinaryos-api",
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		JaegerEndpoint: cfg.Monitoring.JaegerEndpoint,
		OTLPEndpoint:   cfg.Monitoring.OTLPEndpoint,
		OTLPInsecure:   cfg.Monitoring.OTLPInsecure,
		SamplingRate:   cfg.Monitoring.SamplingRate,
		Enabled:        cfg.Monitoring.EnableTracing,
	}, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{OnStop: tp.Shutdown})
	return tp, nil
}

// DatabaseModule provides the GORM connection for the configured driver
var DatabaseModule = fx.Provide(NewDatabase)

// NewDatabase opens SQLite or PostgreSQL and closes the pool on stop
func NewDatabase(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, metrics *monitoring.MetricsCollector) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err = postgres.Open(context.Background(), cfg, log, metrics)
	default:
		db, err = sqlite.SetupDatabase(cfg.Database, log, metrics)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to setup %s database: %w", cfg.Database.Driver, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			log.Info("Closing database connection")
			return sqlDB.Close()
		},
	})

	return db, nil
}

// CacheModule provides the Redis client (nil when disabled) and the cache repository
var CacheModule = fx.Provide(
	NewRedisClient,
	NewCacheRepository,
)

// NewRedisClient connects to Redis when it is enabled. It returns a nil client otherwise.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) (redis.UniversalClient, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	client, err := redisCache.NewClient(context.Background(), cfg.Redis, cfg.RedisAddr())
	if err != nil {
		return nil, err
	}
	log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr()))

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

// NewCacheRepository selects Redis when a client is available and the in-memory cache otherwise
func NewCacheRepository(lc fx.Lifecycle, client redis.UniversalClient, log *zap.Logger) outbound.CacheRepository {
	if client != nil {
		return redisCache.NewCacheRepository(client, cacheKeyPrefix, log)
	}

	log.Info("Using in-memory cache")
	cache := memory.NewCacheRepository(memoryCacheSweepEvery)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			cache.Close()
			return nil
		},
	})
	return cache
}

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	fx.Annotate(
		gormRepo.NewUserRepository,
		fx.As(new(outbound.UserRepository)),
	),
	fx.Annotate(
		gormRepo.NewPantryRepository,
		fx.As(new(outbound.PantryRepository)),
	),
	fx.Annotate(
		gormRepo.NewRecipeRepository,
		fx.As(new(outbound.RecipeRepository)),
	),
	fx.Annotate(
		gormRepo.NewMealPlanRepository,
		fx.As(new(outbound.MealPlanRepository)),
	),
	fx.Annotate(
		gormRepo.NewOrderRepository,
		fx.As(new(outbound.OrderRepository)),
	),
)

// ServiceModule provides application services
var ServiceModule = fx.Options(
	fx.Provide(
		fx.Annotate(
			events.NewDispatcher,
			fx.As(new(shared.EventDispatcher)),
		),

		fx.Annotate(
			func(cfg *config.Config, cache outbound.CacheRepository, log *zap.Logger) *security.TokenService {
				return security.NewTokenService(cfg.Auth, cache, log)
			},
			fx.As(new(outbound.TokenIssuer)),
			fx.As(new(middleware.TokenValidator)),
		),

		fx.Annotate(
			func(users outbound.UserRepository, tokens outbound.TokenIssuer, metrics outbound.MetricsRecorder, cfg *config.Config, log *zap.Logger) *user.UserService {
				return user.NewUserService(users, tokens, metrics, cfg.Auth.BCryptCost, log)
			},
			fx.As(new(inbound.UserService)),
		),

		fx.Annotate(
			pantry.NewPantryService,
			fx.As(new(inbound.PantryService)),
		),

		fx.Annotate(
			func(
				recipes outbound.RecipeRepository,
				pantryRepo outbound.PantryRepository,
				cache outbound.CacheRepository,
				dispatcher shared.EventDispatcher,
				metrics outbound.MetricsRecorder,
				cfg *config.Config,
				log *zap.Logger,
			) *recipe.RecipeService {
				return recipe.NewRecipeService(recipes, pantryRepo, cache, dispatcher, metrics, cfg.Redis.CacheTTL, log)
			},
			fx.As(new(inbound.RecipeService)),
			fx.As(new(dashboard.Ranker)),
			fx.As(new(seed.CatalogInvalidator)),
			fx.As(new(CatalogBootstrapper)),
		),

		fx.Annotate(
			planner.NewPlannerService,
			fx.As(new(inbound.PlannerService)),
		),

		fx.Annotate(
			dashboard.NewDashboardService,
			fx.As(new(inbound.DashboardService)),
		),

		fx.Annotate(
			order.NewOrderService,
			fx.As(new(inbound.OrderService)),
		),

		fx.Annotate(
			func(chef outbound.ChefAssistant, videos outbound.VideoSearcher, cfg *config.Config, log *zap.Logger) *assistant.AssistantService {
				return assistant.NewAssistantService(chef, videos, cfg.AI.MaxVideos, log)
			},
			fx.As(new(inbound.AssistantService)),
		),

		func(users outbound.UserRepository, pantryRepo outbound.PantryRepository, recipes outbound.RecipeRepository,
			plans outbound.MealPlanRepository, catalog seed.CatalogInvalidator, cfg *config.Config, log *zap.Logger,
		) *seed.DemoSeeder {
			return seed.NewDemoSeeder(users, pantryRepo, recipes, plans, catalog, cfg.Auth.BCryptCost, log)
		},
	),
	fx.Invoke(RegisterEventHandlers),
)

// RegisterEventHandlers subscribes catalog invalidation and event metrics to recipe events
func RegisterEventHandlers(dispatcher shared.EventDispatcher, cache outbound.CacheRepository, metrics outbound.MetricsRecorder, log *zap.Logger) {
	recipe.RegisterEventHandlers(dispatcher, cache, metrics, log)
}
