package seed

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type countingInvalidator struct {
	calls int
}

func (c *countingInvalidator) InvalidateCatalog(context.Context) {
	c.calls++
}

type DemoSeederTestSuite struct {
	suite.Suite
	ctx     context.Context
	users   outbound.UserRepository
	pantry  outbound.PantryRepository
	recipes outbound.RecipeRepository
	plans   outbound.MealPlanRepository
	catalog *countingInvalidator
	seeder  *DemoSeeder
}

func (suite *DemoSeederTestSuite) SetupTest() {
	suite.ctx = context.Background()
	db := testutils.NewSQLiteDB(suite.T())
	suite.users = gorm.NewUserRepository(db)
	suite.pantry = gorm.NewPantryRepository(db)
	suite.recipes = gorm.NewRecipeRepository(db)
	suite.plans = gorm.NewMealPlanRepository(db)
	suite.catalog = &countingInvalidator{}
	suite.seeder = NewDemoSeeder(suite.users, suite.pantry, suite.recipes, suite.plans, suite.catalog, 4, zap.NewNop())
	// a Wednesday
	suite.seeder.now = func() time.Time { return time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC) }
}

func (suite *DemoSeederTestSuite) TestFreshDatabase() {
	result, err := suite.seeder.Run(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(7, result.PantryItems)
	suite.Equal(3, result.RecipesCreated)
	suite.Equal(3, result.MealsPlanned)
	suite.Equal(1, suite.catalog.calls)

	u, err := suite.users.FindByEmail(suite.ctx, DemoEmail)
	suite.Require().NoError(err)
	suite.Equal(DemoName, u.Name())
	suite.NoError(u.CheckPassword(DemoPassword))

	items, err := suite.pantry.FindByOwner(suite.ctx, u.ID())
	suite.Require().NoError(err)
	suite.Require().Len(items, 7)
	suite.Equal("Chicken Breast", items[0].Name())
	suite.Equal("Pantry", string(items[3].Category()), "Grains folds into Pantry")

	plan, err := suite.plans.FindByUser(suite.ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC), plan.WeekStart().UTC())
	entries := plan.Entries()
	suite.Require().Len(entries, 3)
	suite.Equal(planner.Monday, entries[0].Day)
	suite.Equal(planner.Friday, entries[2].Day)

	catalog, err := suite.recipes.FindAll(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(catalog, 3)
	suite.Equal(catalog[0].ID().String(), entries[0].RecipeRef)
}

func (suite *DemoSeederTestSuite) TestRerunReplacesUserAndKeepsRecipes() {
	first, err := suite.seeder.Run(suite.ctx)
	suite.Require().NoError(err)

	second, err := suite.seeder.Run(suite.ctx)
	suite.Require().NoError(err)

	suite.NotEqual(first.User.ID(), second.User.ID())
	suite.Zero(second.RecipesCreated)
	suite.Equal(1, suite.catalog.calls)

	count, err := suite.recipes.Count(suite.ctx)
	suite.Require().NoError(err)
	suite.EqualValues(3, count)

	_, err = suite.users.FindByID(suite.ctx, first.User.ID())
	suite.Error(err)
	stale, err := suite.pantry.FindByOwner(suite.ctx, first.User.ID())
	suite.Require().NoError(err)
	suite.Empty(stale)
}

func TestDemoSeederTestSuite(t *testing.T) {
	suite.Run(t, new(DemoSeederTestSuite))
}
