package container

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/application/seed"
	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestApplicationGraphIsComplete(t *testing.T) {
	require.NoError(t, fx.ValidateApp(New("")))
}

func TestCoreServesSeededCatalog(t *testing.T) {
	t.Setenv("CULINARYOS_DATABASE_PATH", "file::memory:")
	t.Setenv("CULINARYOS_APP_LOG_LEVEL", "error")

	var (
		recipes  inbound.RecipeService
		catalog  CatalogBootstrapper
		seeder   *seed.DemoSeeder
		chef     outbound.ChefAssistant
		userRepo outbound.UserRepository
	)

	app := fxtest.New(t,
		Core(""),
		AIModule,
		ServiceModule,
		fx.Populate(&recipes, &catalog, &seeder, &chef, &userRepo),
	)
	app.RequireStart()
	defer app.RequireStop()

	ctx := context.Background()

	inserted, err := catalog.EnsureCatalog(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, inserted)

	inserted, err = catalog.EnsureCatalog(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted, "a populated catalog is left alone")

	result, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed.DemoEmail, result.User.Email())

	stored, err := userRepo.FindByEmail(ctx, seed.DemoEmail)
	require.NoError(t, err)
	assert.Equal(t, result.User.ID(), stored.ID())

	list, err := recipes.ListRecipes(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(list), 3)

	_, err = chef.Chat(ctx, "hello")
	assert.ErrorIs(t, err, outbound.ErrProviderNotConfigured, "no API key leaves the assistant offline")
}

func TestStopTimeoutFollowsShutdownTimeout(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	app := fx.New(fx.NopLogger, StopTimeout(cfg))
	assert.Equal(t, 30*time.Second, app.StopTimeout())

	cfg.Server.ShutdownTimeout = 7 * time.Second
	app = fx.New(fx.NopLogger, StopTimeout(cfg))
	assert.Equal(t, 7*time.Second, app.StopTimeout())

	cfg.Server.ShutdownTimeout = 0
	app = fx.New(fx.NopLogger, StopTimeout(cfg))
	assert.Equal(t, fx.DefaultTimeout, app.StopTimeout(), "an unset timeout keeps fx's default")
}
