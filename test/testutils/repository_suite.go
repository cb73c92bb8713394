package testutils

import (
	"context"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
	gormRepo "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositorySuite exercises every GORM repository against whatever database Open returns.
// The unit tests run it on SQLite and the integration tests on PostgreSQL.
type RepositorySuite struct {
	suite.Suite

	// Open returns the database for the suite. It is called once.
	Open func() *gorm.DB

	ctx     context.Context
	db      *gorm.DB
	users   *gormRepo.UserRepository
	pantry  *gormRepo.PantryRepository
	recipes *gormRepo.RecipeRepository
	plans   *gormRepo.MealPlanRepository
	orders  *gormRepo.OrderRepository
}

func (s *RepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.db = s.Open()
	s.users = gormRepo.NewUserRepository(s.db)
	s.pantry = gormRepo.NewPantryRepository(s.db)
	s.recipes = gormRepo.NewRecipeRepository(s.db)
	s.plans = gormRepo.NewMealPlanRepository(s.db)
	s.orders = gormRepo.NewOrderRepository(s.db)
}

func (s *RepositorySuite) SetupTest() {
	all := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{
		&gormRepo.MealPlanEntryModel{},
		&gormRepo.MealPlanModel{},
		&gormRepo.OrderModel{},
		&gormRepo.PantryItemModel{},
		&gormRepo.RecipeModel{},
		&gormRepo.UserModel{},
	} {
		s.Require().NoError(all.Delete(model).Error)
	}
}

func (s *RepositorySuite) createUser() *user.User {
	u := NewUserBuilder().MustBuild()
	s.Require().NoError(s.users.Create(s.ctx, u))
	return u
}

func (s *RepositorySuite) TestUserRepository() {
	u := NewUserBuilder().WithEmail("Cook@Example.com").MustBuild()
	s.Require().NoError(s.users.Create(s.ctx, u))

	s.Run("FindByEmailIgnoresCase", func() {
		found, err := s.users.FindByEmail(s.ctx, "  COOK@example.com ")
		s.Require().NoError(err)
		s.Equal(u.ID(), found.ID())
		s.Equal(u.PasswordHash(), found.PasswordHash())
	})

	s.Run("DuplicateEmail", func() {
		dup := NewUserBuilder().WithEmail("cook@example.com").MustBuild()
		s.ErrorIs(s.users.Create(s.ctx, dup), user.ErrEmailAlreadyExists)
	})

	s.Run("UpdateProfile", func() {
		s.Require().NoError(u.UpdateProfile(user.ProfilePatch{
			DietaryPreferences: []string{"Vegan", "Gluten-Free"},
			ReplacePreferences: true,
		}))
		s.Require().NoError(s.users.Update(s.ctx, u))

		found, err := s.users.FindByID(s.ctx, u.ID())
		s.Require().NoError(err)
		s.Equal(u.DietaryPreferences(), found.DietaryPreferences())
	})

	s.Run("Exists", func() {
		exists, err := s.users.ExistsByEmail(s.ctx, "cook@example.com")
		s.Require().NoError(err)
		s.True(exists)

		exists, err = s.users.ExistsByEmail(s.ctx, "nobody@example.com")
		s.Require().NoError(err)
		s.False(exists)
	})

	s.Run("UnknownUser", func() {
		_, err := s.users.FindByID(s.ctx, uuid.New())
		s.ErrorIs(err, user.ErrUserNotFound)
		s.ErrorIs(s.users.Delete(s.ctx, uuid.New()), user.ErrUserNotFound)
	})
}

func (s *RepositorySuite) TestDeleteUserRemovesOwnedData() {
	u := s.createUser()
	s.Require().NoError(s.pantry.ReplaceForOwner(s.ctx, u.ID(), PantryItems(u.ID(), "Eggs", "Milk")))
	s.Require().NoError(s.orders.Create(s.ctx, NewTestOrder(u.ID(), "Brunch", time.Now())))

	plan := planner.NewWeeklyPlan(u.ID(), time.Now())
	s.Require().NoError(plan.ReplaceEntries([]planner.Entry{{Day: planner.Monday, RecipeRef: "Custom", Description: "Lunch"}}))
	s.Require().NoError(s.plans.Save(s.ctx, plan))

	s.Require().NoError(s.users.Delete(s.ctx, u.ID()))

	count, err := s.pantry.CountByOwner(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Zero(count)

	orders, err := s.orders.FindByUser(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Empty(orders)

	_, err = s.plans.FindByUser(s.ctx, u.ID())
	s.ErrorIs(err, planner.ErrPlanNotFound)
}

func (s *RepositorySuite) TestPantryRepository() {
	owner := s.createUser()
	other := s.createUser()

	first := NewPantryItemBuilder(owner.ID()).WithName("Spinach").MustBuild()
	s.Require().NoError(s.pantry.Create(s.ctx, first))
	second := NewPantryItemBuilder(owner.ID()).WithName("Chicken Breast").WithCategory("Protein").MustBuild()
	s.Require().NoError(s.pantry.Create(s.ctx, second))

	s.Run("ListsInInsertionOrder", func() {
		items, err := s.pantry.FindByOwner(s.ctx, owner.ID())
		s.Require().NoError(err)
		s.Require().Len(items, 2)
		s.Equal("Spinach", items[0].Name())
		s.Equal(pantry.CategoryProtein, items[1].Category())
	})

	s.Run("OtherOwnersCannotTouchItems", func() {
		_, err := s.pantry.FindByID(s.ctx, other.ID(), first.ID())
		s.ErrorIs(err, pantry.ErrItemNotFound)
		s.ErrorIs(s.pantry.Delete(s.ctx, other.ID(), first.ID()), pantry.ErrItemNotFound)
	})

	s.Run("Update", func() {
		s.Require().NoError(first.Apply(pantry.Patch{Quantity: "2 bunches"}))
		s.Require().NoError(s.pantry.Update(s.ctx, first))

		found, err := s.pantry.FindByID(s.ctx, owner.ID(), first.ID())
		s.Require().NoError(err)
		s.Equal("2 bunches", found.Quantity())
	})

	s.Run("ReplaceForOwner", func() {
		s.Require().NoError(s.pantry.ReplaceForOwner(s.ctx, owner.ID(), PantryItems(owner.ID(), "Rice")))

		items, err := s.pantry.FindByOwner(s.ctx, owner.ID())
		s.Require().NoError(err)
		s.Require().Len(items, 1)
		s.Equal("Rice", items[0].Name())
	})
}

func (s *RepositorySuite) TestRecipeCatalog() {
	first := NewRecipeBuilder().WithTitle("First").WithIngredients("Egg", "Flour").MustBuild()
	s.Require().NoError(s.recipes.Create(s.ctx, first))
	batch := []*recipe.Recipe{
		NewRecipeBuilder().WithTitle("Second").MustBuild(),
		NewRecipeBuilder().WithTitle("Third").MustBuild(),
	}
	s.Require().NoError(s.recipes.BulkCreate(s.ctx, batch))

	s.Run("KeepsInsertionOrder", func() {
		all, err := s.recipes.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal([]string{"First", "Second", "Third"}, []string{all[0].Title(), all[1].Title(), all[2].Title()})
		s.Equal(first.Ingredients(), all[0].Ingredients())
	})

	s.Run("UpdateKeepsPosition", func() {
		details := NewRecipeBuilder().WithTitle("First, revised").Details()
		s.Require().NoError(first.Update(details))
		s.Require().NoError(s.recipes.Update(s.ctx, first))

		all, err := s.recipes.FindAll(s.ctx)
		s.Require().NoError(err)
		s.Equal("First, revised", all[0].Title())
	})

	s.Run("ReplaceAll", func() {
		s.Require().NoError(s.recipes.ReplaceAll(s.ctx, []*recipe.Recipe{NewRecipeBuilder().WithTitle("Only").MustBuild()}))

		count, err := s.recipes.Count(s.ctx)
		s.Require().NoError(err)
		s.EqualValues(1, count)
	})

	s.Run("MissingRecipe", func() {
		_, err := s.recipes.FindByID(s.ctx, uuid.New())
		s.ErrorIs(err, recipe.ErrRecipeNotFound)
		s.ErrorIs(s.recipes.Delete(s.ctx, uuid.New()), recipe.ErrRecipeNotFound)
		s.ErrorIs(s.recipes.Update(s.ctx, NewRecipeBuilder().MustBuild()), recipe.ErrRecipeNotFound)
	})
}

func (s *RepositorySuite) TestMealPlanSaveReplacesEntries() {
	u := s.createUser()

	plan := planner.NewWeeklyPlan(u.ID(), time.Now())
	s.Require().NoError(plan.ReplaceEntries([]planner.Entry{
		{Day: planner.Monday, RecipeRef: "Custom", Description: "Lunch"},
		{Day: planner.Friday, RecipeRef: "Pizza", Description: "Dinner", ColorTag: "bg-orange-100"},
	}))
	s.Require().NoError(s.plans.Save(s.ctx, plan))

	s.Require().NoError(plan.ReplaceEntries([]planner.Entry{
		{Day: planner.Sunday, RecipeRef: "Roast", Description: "Family dinner"},
	}))
	s.Require().NoError(s.plans.Save(s.ctx, plan))

	found, err := s.plans.FindByUser(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Require().Len(found.Entries(), 1)
	s.Equal(planner.Sunday, found.Entries()[0].Day)
	s.Equal("Roast", found.Entries()[0].RecipeRef)
}

func (s *RepositorySuite) TestOrderRepository() {
	u := s.createUser()
	now := time.Now().UTC().Truncate(time.Second)

	later := NewTestOrder(u.ID(), "Dinner", now.Add(4*time.Hour))
	sooner := NewTestOrder(u.ID(), "Lunch", now.Add(time.Hour))
	s.Require().NoError(s.orders.Create(s.ctx, later))
	s.Require().NoError(s.orders.Create(s.ctx, sooner))

	orders, err := s.orders.FindByUser(s.ctx, u.ID())
	s.Require().NoError(err)
	s.Require().Len(orders, 2)
	s.Equal("Lunch", orders[0].Title())

	status := string(order.StatusCompleted)
	s.Require().NoError(later.Apply(order.Patch{Status: &status}))
	s.Require().NoError(s.orders.Update(s.ctx, later))

	found, err := s.orders.FindByID(s.ctx, u.ID(), later.ID())
	s.Require().NoError(err)
	s.Equal(order.StatusCompleted, found.Status())

	s.ErrorIs(s.orders.Delete(s.ctx, uuid.New(), later.ID()), order.ErrOrderNotFound)
	s.Require().NoError(s.orders.Delete(s.ctx, u.ID(), later.ID()))
	_, err = s.orders.FindByID(s.ctx, u.ID(), later.ID())
	s.ErrorIs(err, order.ErrOrderNotFound)
}
