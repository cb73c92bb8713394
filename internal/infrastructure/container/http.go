package container

import (
	"github.com/culinaryos/kitchen/internal/infrastructure/ai"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/handlers"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/middleware"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/server"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/healthcheck"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HTTPModule provides the HTTP server, its middleware, handlers and health checks
var HTTPModule = fx.Provide(
	middleware.New,
	handlers.NewAuthAPIHandlers,
	handlers.NewPantryAPIHandlers,
	handlers.NewRecipeAPIHandlers,
	handlers.NewPlannerAPIHandlers,
	handlers.NewOrderAPIHandlers,
	func(assistant inbound.AssistantService, cfg *config.Config, log *zap.Logger) *handlers.AIAPIHandlers {
		return handlers.NewAIAPIHandlers(assistant, cfg.Server.AllowedOrigins, log)
	},
	NewHandlers,
	NewHealthCheck,
	server.NewServer,
)

// HandlerParams collects the API handlers mounted by the server
type HandlerParams struct {
	fx.In

	Auth    *handlers.AuthAPIHandlers
	Pantry  *handlers.PantryAPIHandlers
	Recipes *handlers.RecipeAPIHandlers
	Planner *handlers.PlannerAPIHandlers
	Orders  *handlers.OrderAPIHandlers
	AI      *handlers.AIAPIHandlers
}

// NewHandlers groups the handlers for the server
func NewHandlers(p HandlerParams) server.Handlers {
	return server.Handlers{
		Auth:    p.Auth,
		Pantry:  p.Pantry,
		Recipes: p.Recipes,
		Planner: p.Planner,
		Orders:  p.Orders,
		AI:      p.AI,
	}
}

// NewHealthCheck registers the database, the cache and the AI collaborators
func NewHealthCheck(
	cfg *config.Config,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	chef outbound.ChefAssistant,
	videos outbound.VideoSearcher,
	log *zap.Logger,
) (*healthcheck.HealthCheck, error) {
	health := healthcheck.New(cfg.App.Version, log)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	health.Register("database", healthcheck.NewDatabaseChecker(sqlDB))

	if redisClient != nil {
		health.Register("redis", healthcheck.NewRedisChecker(redisClient))
	}

	health.Register("ai", ai.NewHealthChecker(chef, videos, log))

	return health, nil
}
