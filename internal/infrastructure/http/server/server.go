// Package server wires the chi router, middleware and handlers into the HTTP server
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/handlers"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/middleware"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	"github.com/culinaryos/kitchen/pkg/healthcheck"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
)

const (
	requestTimeout   = 30 * time.Second
	compressionLevel = 5
)

// Handlers groups the API handlers mounted by the server
type Handlers struct {
	Auth    *handlers.AuthAPIHandlers
	Pantry  *handlers.PantryAPIHandlers
	Recipes *handlers.RecipeAPIHandlers
	Planner *handlers.PlannerAPIHandlers
	Orders  *handlers.OrderAPIHandlers
	AI      *handlers.AIAPIHandlers
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	logger     *zap.Logger
	middleware *middleware.Middleware
	tokens     middleware.TokenValidator
	handlers   Handlers
	metrics    *monitoring.MetricsCollector
	health     *healthcheck.HealthCheck
	router     *chi.Mux
	server     *http.Server
}

// NewServer creates a new HTTP server instance. metrics may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	mw *middleware.Middleware,
	tokens middleware.TokenValidator,
	h Handlers,
	metrics *monitoring.MetricsCollector,
	health *healthcheck.HealthCheck,
) *Server {
	s := &Server{
		config:     cfg,
		logger:     logger.Named("http-server"),
		middleware: mw,
		tokens:     tokens,
		handlers:   h,
		metrics:    metrics,
		health:     health,
	}

	s.router = s.setupRouter()

	var handler http.Handler = s.router
	if cfg.Monitoring.EnableTracing {
		handler = otelhttp.NewHandler(s.router, "culinaryos-api",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}

	s.server = &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    cfg.Server.MaxHeaderBytes,
	}

	return s
}

// Router exposes the configured router
func (s *Server) Router() http.Handler {
	return s.router
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(s.middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.middleware.Logger)
	r.Use(s.middleware.Recovery)
	if s.metrics != nil {
		r.Use(s.metrics.HTTPMiddleware)
	}
	r.Use(s.middleware.Security)
	r.Use(s.middleware.CORS)
	r.Use(s.middleware.RateLimit)

	healthPath := s.config.Monitoring.HealthCheckPath
	r.Get(healthPath, s.health.Handler())
	r.Get(healthPath+"/live", s.health.LivenessHandler())
	r.Get(healthPath+"/ready", s.health.ReadinessHandler())
	if s.metrics != nil && s.config.Monitoring.EnableMetrics {
		r.Handle(s.config.Monitoring.MetricsPath, s.metrics.Handler())
	}

	// the chat socket outlives the request timeout and must not be compressed
	r.Get("/api/ai/chat/ws", s.handlers.AI.ChatSocket)

	r.Route("/api", func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Use(s.middleware.Compression(compressionLevel))
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	authenticate := middleware.Authenticate(s.tokens)
	h := s.handlers

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)
		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Get("/me", h.Auth.Me)
			r.Put("/password", h.Auth.ChangePassword)
			r.Put("/profile", h.Auth.UpdateProfile)
			r.Post("/logout", h.Auth.Logout)
		})
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", h.Recipes.ListRecipes)
		r.Post("/", h.Recipes.CreateRecipe)
		r.Get("/{id}", h.Recipes.GetRecipe)
		r.Put("/{id}", h.Recipes.UpdateRecipe)
		r.Delete("/{id}", h.Recipes.DeleteRecipe)
	})
	r.Post("/seed", h.Recipes.Seed)

	r.Route("/ai", func(r chi.Router) {
		r.Get("/videos", h.AI.SearchVideos)
		r.Post("/chat", h.AI.Chat)
		r.Post("/suggest", h.AI.Suggest)
		r.Post("/substitute", h.AI.Substitute)
	})

	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/recommendations", h.Recipes.Recommendations)
		r.Get("/dashboard", h.Planner.Dashboard)

		r.Route("/pantry", func(r chi.Router) {
			r.Get("/", h.Pantry.ListItems)
			r.Post("/", h.Pantry.AddItem)
			r.Put("/{id}", h.Pantry.UpdateItem)
			r.Delete("/{id}", h.Pantry.RemoveItem)
		})

		r.Route("/planner", func(r chi.Router) {
			r.Get("/", h.Planner.GetPlan)
			r.Post("/", h.Planner.SavePlan)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.Orders.ListOrders)
			r.Post("/", h.Orders.CreateOrder)
			r.Put("/{id}", h.Orders.UpdateOrder)
			r.Delete("/{id}", h.Orders.DeleteOrder)
		})
	})
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	if err := http2.ConfigureServer(s.server, nil); err != nil {
		s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
	}

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
