// Package main loads the demo account, its pantry, the demo recipes and a weekly plan
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/culinaryos/kitchen/internal/application/seed"
	"github.com/culinaryos/kitchen/internal/infrastructure/container"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (defaults to ./configs/config.yaml)")
	timeout := flag.Duration("timeout", time.Minute, "maximum time for the seed run")
	flag.Parse()

	var (
		seeder *seed.DemoSeeder
		logger *zap.Logger
	)

	app := fx.New(
		container.Core(*configPath),
		container.AIModule,
		container.ServiceModule,
		fx.Populate(&seeder, &logger),
	)
	if err := app.Err(); err != nil {
		log.Fatalf("Failed to build seeder: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		log.Fatalf("Failed to start seeder: %v", err)
	}

	result, runErr := seeder.Run(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), app.StopTimeout())
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil {
		logger.Warn("Failed to stop cleanly", zap.Error(err))
	}

	if runErr != nil {
		log.Fatalf("Seed failed: %v", runErr)
	}

	fmt.Printf("Seeded demo account %s (password %s)\n", seed.DemoEmail, seed.DemoPassword)
	fmt.Printf("  pantry items:    %d\n", result.PantryItems)
	fmt.Printf("  recipes created: %d\n", result.RecipesCreated)
	fmt.Printf("  meals planned:   %d\n", result.MealsPlanned)
}
