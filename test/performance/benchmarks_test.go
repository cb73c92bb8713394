//go:build performance

// Package performance benchmarks the recommendation path from matching up to the service layer
package performance

import (
	"context"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	recipeapp "github.com/culinaryos/kitchen/internal/application/recipe"
	"github.com/culinaryos/kitchen/internal/domain/matching"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/infrastructure/events"
	gormRepo "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/memory"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Performance test configuration
const (
	SmallCatalog  = 100
	MediumCatalog = 1000
	LargeCatalog  = 10000

	PantrySize = 25
)

// Performance targets
const (
	MaxRankingTime      = 50 * time.Millisecond
	MaxMemoryIncreaseMB = 50
)

// PerformanceMetrics holds performance measurement data
type PerformanceMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	MemoryBefore runtime.MemStats
	MemoryAfter  runtime.MemStats
}

// NewPerformanceMetrics starts a measurement after forcing a GC
func NewPerformanceMetrics() *PerformanceMetrics {
	pm := &PerformanceMetrics{}
	runtime.GC()
	runtime.ReadMemStats(&pm.MemoryBefore)
	pm.StartTime = time.Now()
	return pm
}

// Stop stops performance measurement
func (pm *PerformanceMetrics) Stop() {
	pm.Duration = time.Since(pm.StartTime)
	runtime.ReadMemStats(&pm.MemoryAfter)
}

// MemoryUsedMB returns the heap growth in MB
func (pm *PerformanceMetrics) MemoryUsedMB() float64 {
	if pm.MemoryAfter.HeapAlloc < pm.MemoryBefore.HeapAlloc {
		return 0
	}
	return float64(pm.MemoryAfter.HeapAlloc-pm.MemoryBefore.HeapAlloc) / 1024 / 1024
}

func fakeCatalog(size int) []*recipe.Recipe {
	faker := gofakeit.New(42)
	catalog := make([]*recipe.Recipe, 0, size)
	for i := 0; i < size; i++ {
		names := make([]string, 0, 8)
		for j := faker.Number(2, 8); j > 0; j-- {
			if faker.Bool() {
				names = append(names, faker.Vegetable())
			} else {
				names = append(names, faker.Fruit())
			}
		}
		catalog = append(catalog, testutils.NewRecipeBuilder().
			WithTitle(fmt.Sprintf("%s #%d", faker.Dessert(), i)).
			WithIngredients(names...).
			MustBuild())
	}
	return catalog
}

func fakePantry(size int) matching.Pantry {
	faker := gofakeit.New(7)
	names := make([]string, 0, size)
	for i := 0; i < size; i++ {
		names = append(names, faker.Vegetable())
	}
	return matching.NewPantry(names...)
}

func BenchmarkRankRecipes(b *testing.B) {
	p := fakePantry(PantrySize)

	for _, size := range []int{SmallCatalog, MediumCatalog, LargeCatalog} {
		catalog := fakeCatalog(size)
		b.Run(fmt.Sprintf("Catalog%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ranked := matching.RankRecipes(catalog, p)
				if len(ranked) != size {
					b.Fatalf("ranked %d of %d recipes", len(ranked), size)
				}
			}
		})
	}
}

func BenchmarkNormalizePantry(b *testing.B) {
	ownerID := uuid.New()
	items := make([]string, 0, PantrySize)
	faker := gofakeit.New(3)
	for i := 0; i < PantrySize; i++ {
		items = append(items, "  "+faker.Vegetable()+" ")
	}
	pantryItems := testutils.PantryItems(ownerID, items...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = matching.PantryFromItems(pantryItems)
	}
}

func BenchmarkRecommendations(b *testing.B) {
	ctx := context.Background()
	db := testutils.NewSQLiteDB(b)
	recipes := gormRepo.NewRecipeRepository(db)
	pantryRepo := gormRepo.NewPantryRepository(db)
	users := gormRepo.NewUserRepository(db)

	owner := testutils.NewUserBuilder().MustBuild()
	require.NoError(b, users.Create(ctx, owner))
	require.NoError(b, recipes.BulkCreate(ctx, fakeCatalog(MediumCatalog)))
	require.NoError(b, pantryRepo.ReplaceForOwner(ctx, owner.ID(), testutils.PantryItems(owner.ID(), "Tomato", "Onion", "Garlic", "Spinach")))

	cache := memory.NewCacheRepository(time.Minute)
	defer cache.Close()

	service := recipeapp.NewRecipeService(recipes, pantryRepo, cache, events.NewDispatcher(zap.NewNop()), nil, time.Hour, zap.NewNop())

	b.Run("CachedCatalog", func(b *testing.B) {
		_, err := service.GetRecommendations(ctx, owner.ID())
		require.NoError(b, err)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			if _, err := service.GetRecommendations(ctx, owner.ID()); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("ColdCatalog", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			service.InvalidateCatalog(ctx)
			if _, err := service.GetRecommendations(ctx, owner.ID()); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func TestRankingStaysWithinTargets(t *testing.T) {
	catalog := fakeCatalog(LargeCatalog)
	p := fakePantry(PantrySize)

	metrics := NewPerformanceMetrics()
	ranked := matching.RankRecipes(catalog, p)
	metrics.Stop()

	require.Len(t, ranked, LargeCatalog)
	require.Less(t, metrics.Duration, MaxRankingTime, "ranking %d recipes took %s", LargeCatalog, metrics.Duration)
	require.Less(t, metrics.MemoryUsedMB(), float64(MaxMemoryIncreaseMB))

	for i := 1; i < len(ranked); i++ {
		require.GreaterOrEqual(t, ranked[i-1].Match.Percentage, ranked[i].Match.Percentage)
	}
}
