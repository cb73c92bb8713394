// Package seed installs the demo account used for walkthroughs
package seed

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"go.uber.org/zap"
)

const (
	DemoEmail    = "demo@culinary.os"
	DemoPassword = "demo123"
	DemoName     = "Chef Demo"
)

const day = 24 * time.Hour

type demoPantryItem struct {
	name, category, quantity, color string
	shelfLife                       time.Duration
}

var demoPantry = []demoPantryItem{
	{"Chicken Breast", "Protein", "500g", "bg-orange-100 text-orange-700", 7 * day},
	{"Avocado", "Produce", "3", "bg-green-100 text-green-700", 3 * day},
	{"Lemon", "Produce", "5", "bg-yellow-100 text-yellow-700", 14 * day},
	{"Basmati Rice", "Grains", "1kg", "bg-amber-100 text-amber-700", 180 * day},
	{"Garlic", "Produce", "3 bulbs", "bg-slate-100 text-slate-700", 30 * day},
	{"Spinach", "Produce", "200g", "bg-green-100 text-green-700", 4 * day},
	{"Greek Yogurt", "Dairy", "500g", "bg-blue-100 text-blue-700", 10 * day},
}

var demoRecipes = []recipe.Details{
	{
		Title:    "Avocado Chicken Salad",
		Image:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800&q=80",
		Time:     "20 mins",
		Calories: 450,
		Ingredients: []recipe.Ingredient{
			{Name: "Chicken Breast", Amount: "200g"},
			{Name: "Avocado", Amount: "1"},
			{Name: "Spinach", Amount: "100g"},
			{Name: "Lemon", Amount: "1/2"},
		},
	},
	{
		Title:    "Lemon Herb Rice Bowl",
		Image:    "https://images.unsplash.com/photo-1516685018646-549198525c1b?w=800&q=80",
		Time:     "35 mins",
		Calories: 520,
		Ingredients: []recipe.Ingredient{
			{Name: "Basmati Rice", Amount: "1 cup"},
			{Name: "Lemon", Amount: "1"},
			{Name: "Garlic", Amount: "2 cloves"},
			{Name: "Greek Yogurt", Amount: "2 tbsp"},
		},
	},
	{
		Title:    "Garlic Spinach Chicken",
		Image:    "https://images.unsplash.com/photo-1604908176997-125f25cc6f3d?w=800&q=80",
		Time:     "25 mins",
		Calories: 380,
		Ingredients: []recipe.Ingredient{
			{Name: "Chicken Breast", Amount: "200g"},
			{Name: "Spinach", Amount: "150g"},
			{Name: "Garlic", Amount: "3 cloves"},
		},
	},
}

var demoMeals = []struct {
	day         planner.Day
	description string
	color       string
}{
	{planner.Monday, "Healthy Lunch", "bg-green-100"},
	{planner.Wednesday, "Post-workout meal", "bg-blue-100"},
	{planner.Friday, "Dinner with friends", "bg-orange-100"},
}

// CatalogInvalidator drops the cached catalog snapshot
type CatalogInvalidator interface {
	InvalidateCatalog(ctx context.Context)
}

// Result summarizes a demo seed run
type Result struct {
	User           *user.User
	PantryItems    int
	RecipesCreated int
	MealsPlanned   int
}

// DemoSeeder recreates the demo account with its pantry, recipes and plan
type DemoSeeder struct {
	users      outbound.UserRepository
	pantry     outbound.PantryRepository
	recipes    outbound.RecipeRepository
	plans      outbound.MealPlanRepository
	catalog    CatalogInvalidator
	bcryptCost int
	logger     *zap.Logger
	now        func() time.Time
}

// NewDemoSeeder creates a demo seeder
func NewDemoSeeder(
	users outbound.UserRepository,
	pantryRepo outbound.PantryRepository,
	recipes outbound.RecipeRepository,
	plans outbound.MealPlanRepository,
	catalog CatalogInvalidator,
	bcryptCost int,
	logger *zap.Logger,
) *DemoSeeder {
	return &DemoSeeder{
		users:      users,
		pantry:     pantryRepo,
		recipes:    recipes,
		plans:      plans,
		catalog:    catalog,
		bcryptCost: bcryptCost,
		logger:     logger.Named("demo-seeder"),
		now:        time.Now,
	}
}

// Run replaces the demo user and everything it owns. Demo recipes are matched
// by title and only created when missing.
func (s *DemoSeeder) Run(ctx context.Context) (*Result, error) {
	if err := s.removeDemoUser(ctx); err != nil {
		return nil, err
	}

	u, err := user.NewUser(DemoEmail, DemoName, DemoPassword, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("build demo user: %w", err)
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create demo user: %w", err)
	}
	s.logger.Info("Demo user created", zap.String("email", DemoEmail), zap.String("user_id", u.ID().String()))

	now := s.now()
	items := make([]*pantry.Item, 0, len(demoPantry))
	for _, d := range demoPantry {
		expiry := now.Add(d.shelfLife).UTC().Format(time.RFC3339)
		item, err := pantry.NewItem(u.ID(), d.name, d.category, d.quantity, expiry, d.color)
		if err != nil {
			return nil, fmt.Errorf("build pantry item %q: %w", d.name, err)
		}
		items = append(items, item)
	}
	if err := s.pantry.ReplaceForOwner(ctx, u.ID(), items); err != nil {
		return nil, fmt.Errorf("store demo pantry: %w", err)
	}

	recipeIDs, created, err := s.ensureRecipes(ctx)
	if err != nil {
		return nil, err
	}
	if created > 0 && s.catalog != nil {
		s.catalog.InvalidateCatalog(ctx)
	}

	plan := planner.NewWeeklyPlan(u.ID(), now)
	entries := make([]planner.Entry, 0, len(demoMeals))
	for i, m := range demoMeals {
		entries = append(entries, planner.Entry{
			Day:         m.day,
			RecipeRef:   recipeIDs[i],
			Description: m.description,
			ColorTag:    m.color,
		})
	}
	if err := plan.ReplaceEntries(entries); err != nil {
		return nil, fmt.Errorf("build demo plan: %w", err)
	}
	if err := s.plans.Save(ctx, plan); err != nil {
		return nil, fmt.Errorf("store demo plan: %w", err)
	}
	s.logger.Info("Demo meal plan created", zap.Time("week_start", plan.WeekStart()))

	return &Result{
		User:           u,
		PantryItems:    len(items),
		RecipesCreated: created,
		MealsPlanned:   plan.MealsPlanned(),
	}, nil
}

func (s *DemoSeeder) removeDemoUser(ctx context.Context) error {
	existing, err := s.users.FindByEmail(ctx, DemoEmail)
	if err != nil {
		if stderrors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return fmt.Errorf("look up demo user: %w", err)
	}
	if err := s.users.Delete(ctx, existing.ID()); err != nil {
		return fmt.Errorf("remove demo user: %w", err)
	}
	s.logger.Info("Existing demo user removed")
	return nil
}

// ensureRecipes returns the ids of the demo recipes in declaration order
func (s *DemoSeeder) ensureRecipes(ctx context.Context) ([]string, int, error) {
	catalog, err := s.recipes.FindAll(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("load catalog: %w", err)
	}
	byTitle := make(map[string]*recipe.Recipe, len(catalog))
	for _, r := range catalog {
		if _, ok := byTitle[r.Title()]; !ok {
			byTitle[r.Title()] = r
		}
	}

	ids := make([]string, 0, len(demoRecipes))
	created := 0
	for _, d := range demoRecipes {
		if r, ok := byTitle[d.Title]; ok {
			s.logger.Debug("Found existing recipe", zap.String("title", d.Title))
			ids = append(ids, r.ID().String())
			continue
		}

		r, err := recipe.NewRecipe(d)
		if err != nil {
			return nil, 0, fmt.Errorf("build recipe %q: %w", d.Title, err)
		}
		if err := s.recipes.Create(ctx, r); err != nil {
			return nil, 0, fmt.Errorf("create recipe %q: %w", d.Title, err)
		}
		s.logger.Info("Created recipe", zap.String("title", d.Title))
		ids = append(ids, r.ID().String())
		created++
	}
	return ids, created, nil
}
