package recipe

import (
	"context"

	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/shared"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"go.uber.org/zap"
)

var referenceRecipes = []recipe.Details{
	{
		Title:       "Avocado Chicken Salad",
		Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
		Time:        "15 mins",
		Calories:    350,
		Description: "A fresh and nutritious salad packed with protein and healthy fats. Perfect for a quick lunch.",
		Difficulty:  recipe.DifficultyEasy,
		Servings:    2,
		Tags:        []string{"Healthy", "Keto", "Lunch"},
		Ingredients: []recipe.Ingredient{
			{Name: "Avocado", Amount: "1"},
			{Name: "Chicken Breast", Amount: "200g"},
			{Name: "Spinach", Amount: "100g"},
			{Name: "Lemon", Amount: "1/2"},
		},
	},
	{
		Title:       "Lemon Garlic Salmon",
		Image:       "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?w=800&q=80",
		Time:        "25 mins",
		Calories:    450,
		Description: "Succulent salmon fillets seared with aromatic garlic and zesty lemon.",
		Difficulty:  recipe.DifficultyMedium,
		Servings:    2,
		Tags:        []string{"Seafood", "Dinner", "Gluten-Free"},
		Ingredients: []recipe.Ingredient{
			{Name: "Salmon Fillet", Amount: "1"},
			{Name: "Lemon", Amount: "1"},
			{Name: "Garlic", Amount: "2 cloves"},
			{Name: "Asparagus", Amount: "1 bunch"},
		},
	},
	{
		Title:       "Rice Bowl",
		Image:       "https://images.unsplash.com/photo-1512058564366-18510be2db19?w=800&q=80",
		Time:        "20 mins",
		Calories:    400,
		Description: "A simple yet satisfying rice bowl with yogurt and tender chicken.",
		Difficulty:  recipe.DifficultyEasy,
		Servings:    1,
		Tags:        []string{"Comfort Food", "Quick"},
		Ingredients: []recipe.Ingredient{
			{Name: "Basmati Rice", Amount: "1 cup"},
			{Name: "Greek Yogurt", Amount: "2 tbsp"},
			{Name: "Chicken Breast", Amount: "100g"},
		},
	},
}

// ReferenceRecipes builds fresh copies of the reference catalog
func ReferenceRecipes() ([]*recipe.Recipe, error) {
	recipes := make([]*recipe.Recipe, 0, len(referenceRecipes))
	for _, d := range referenceRecipes {
		r, err := recipe.NewRecipe(d)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// RegisterEventHandlers subscribes catalog cache invalidation and event counting
// to every recipe event
func RegisterEventHandlers(dispatcher shared.EventDispatcher, cache outbound.CacheRepository, metrics outbound.MetricsRecorder, logger *zap.Logger) {
	logger = logger.Named("recipe-events")

	invalidate := func(ctx context.Context, event shared.DomainEvent) error {
		logger.Debug("Invalidating catalog snapshot", zap.String("event", event.EventName()))
		return cache.Delete(ctx, CatalogCacheKey)
	}
	count := func(_ context.Context, event shared.DomainEvent) error {
		metrics.RecipeEvent(event.EventName())
		return nil
	}

	for _, name := range []string{
		recipe.RecipeCreatedEvent{}.EventName(),
		recipe.RecipeUpdatedEvent{}.EventName(),
		recipe.RecipeDeletedEvent{}.EventName(),
	} {
		dispatcher.Register(name, invalidate)
		if metrics != nil {
			dispatcher.Register(name, count)
		}
	}
}
