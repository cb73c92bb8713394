package container

import (
	"context"

	"github.com/culinaryos/kitchen/internal/infrastructure/config"
	"github.com/culinaryos/kitchen/internal/infrastructure/http/server"
	"github.com/culinaryos/kitchen/pkg/logger"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(RegisterLifecycleHooks)

// RegisterLifecycleHooks seeds an empty catalog, watches the config file and runs the HTTP server
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	cfg *config.Config,
	appLogger *logger.Logger,
	catalog CatalogBootstrapper,
	srv *server.Server,
) {
	log := appLogger.Logger

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting CulinaryOS",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
				zap.String("database", cfg.Database.Driver),
			)

			if cfg.Database.Seed {
				inserted, err := catalog.EnsureCatalog(ctx)
				if err != nil {
					return err
				}
				if inserted > 0 {
					log.Info("Seeded empty recipe catalog", zap.Int("count", inserted))
				}
			}

			cfg.Watch(func(level string, event fsnotify.Event) {
				appLogger.SetLevel(level)
				log.Info("Configuration reloaded",
					zap.String("file", event.Name),
					zap.String("log_level", level),
				)
			})

			go func() {
				if err := srv.Start(); err != nil {
					log.Error("HTTP server stopped unexpectedly", zap.Error(err))
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down CulinaryOS")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			// Flush logs
			_ = log.Sync()
			return nil
		},
	})
}
