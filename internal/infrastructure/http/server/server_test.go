package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/handlers"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/middleware"
	"github.com/culinaryos/kitchen/internal/infrastructure/monitoring"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/memory"
	"github.com/culinaryos/kitchen/internal/infrastructure/security"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/healthcheck"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type ServerTestSuite struct {
	suite.Suite
	cache   *memory.CacheRepository
	tokens  *security.TokenService
	pantry  *testutils.MockPantryService
	recipes *testutils.MockRecipeService
	handler http.Handler
}

func (suite *ServerTestSuite) SetupTest() {
	cfg := &config.Config{
		App:    config.AppConfig{Environment: "test", Version: "test"},
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 5000},
		Auth: config.AuthConfig{
			JWTSecret:     "server-test-secret-with-enough-bytes",
			JWTExpiration: time.Hour,
		},
		Monitoring: config.MonitoringConfig{
			EnableMetrics:   true,
			MetricsPath:     "/metrics",
			HealthCheckPath: "/health",
		},
	}
	logger := zap.NewNop()

	suite.cache = memory.NewCacheRepository(time.Hour)
	suite.tokens = security.NewTokenService(cfg.Auth, suite.cache, logger)
	suite.pantry = new(testutils.MockPantryService)
	suite.recipes = new(testutils.MockRecipeService)

	registry := prometheus.NewRegistry()
	metrics := monitoring.NewMetricsCollector(registry, registry, logger)

	srv := NewServer(cfg, logger, middleware.New(cfg, logger), suite.tokens, Handlers{
		Auth:    handlers.NewAuthAPIHandlers(new(testutils.MockUserService), logger),
		Pantry:  handlers.NewPantryAPIHandlers(suite.pantry, logger),
		Recipes: handlers.NewRecipeAPIHandlers(suite.recipes, logger),
		Planner: handlers.NewPlannerAPIHandlers(new(testutils.MockPlannerService), new(testutils.MockDashboardService), logger),
		Orders:  handlers.NewOrderAPIHandlers(new(testutils.MockOrderService), logger),
		AI:      handlers.NewAIAPIHandlers(new(testutils.MockAssistantService), nil, logger),
	}, metrics, healthcheck.New("test", logger))
	suite.handler = srv.Router()
}

func (suite *ServerTestSuite) TearDownTest() {
	suite.cache.Close()
	suite.pantry.AssertExpectations(suite.T())
	suite.recipes.AssertExpectations(suite.T())
}

func (suite *ServerTestSuite) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.handler.ServeHTTP(rec, req)
	return rec
}

func (suite *ServerTestSuite) TestPublicCatalog() {
	suite.recipes.On("ListRecipes", mock.Anything).Return([]inbound.RecipeDTO{}, nil).Once()

	rec := suite.get("/api/recipes", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.NotEmpty(rec.Header().Get("X-Request-Id"))
	suite.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (suite *ServerTestSuite) TestProtectedRoutesRequireToken() {
	for _, path := range []string{"/api/pantry", "/api/recommendations", "/api/dashboard", "/api/planner", "/api/orders", "/api/auth/me"} {
		suite.Equal(http.StatusUnauthorized, suite.get(path, "").Code, path)
	}
}

func (suite *ServerTestSuite) TestTokenResolvesUser() {
	userID := uuid.New()
	token, err := suite.tokens.Issue(userID, "cook@example.com")
	suite.Require().NoError(err)
	suite.pantry.On("ListItems", mock.Anything, userID).Return([]inbound.PantryItemDTO{}, nil).Once()

	rec := suite.get("/api/pantry", token)

	suite.Equal(http.StatusOK, rec.Code)
	suite.JSONEq(`[]`, rec.Body.String())
}

func (suite *ServerTestSuite) TestHealthAndMetrics() {
	suite.Equal(http.StatusOK, suite.get("/health", "").Code)
	suite.Equal(http.StatusOK, suite.get("/health/live", "").Code)

	suite.recipes.On("ListRecipes", mock.Anything).Return([]inbound.RecipeDTO{}, nil).Once()
	suite.get("/api/recipes", "")

	rec := suite.get("/metrics", "")
	suite.Equal(http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	suite.Require().NoError(err)
	suite.True(strings.Contains(string(body), `route="/api/recipes`), "requests are labelled by route pattern")
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	suite.Equal(http.StatusNotFound, suite.get("/api/nope", "").Code)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
