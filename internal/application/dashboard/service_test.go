package dashboard

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/matching"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

// catalogRanker ranks a fixed catalog
type catalogRanker struct {
	catalog []*recipe.Recipe
	err     error
}

func (r catalogRanker) RankPantry(_ context.Context, items []*pantry.Item) ([]matching.RankedRecipe, error) {
	if r.err != nil {
		return nil, r.err
	}
	return matching.RankRecipes(r.catalog, matching.PantryFromItems(items)), nil
}

type DashboardServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	userID     uuid.UUID
	pantryRepo *testutils.MockPantryRepository
	planRepo   *testutils.MockMealPlanRepository
	catalog    []*recipe.Recipe
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.pantryRepo = new(testutils.MockPantryRepository)
	suite.planRepo = new(testutils.MockMealPlanRepository)
	suite.catalog = []*recipe.Recipe{
		testutils.NewRecipeBuilder().WithTitle("Salad").WithIngredients("avocado", "lemon").MustBuild(),
		testutils.NewRecipeBuilder().WithTitle("Rice Bowl").WithIngredients("rice", "egg", "soy sauce", "garlic").MustBuild(),
		testutils.NewRecipeBuilder().WithTitle("Steak").WithIngredients("beef").MustBuild(),
		testutils.NewRecipeBuilder().WithTitle("Lemon Rice").WithIngredients("lemon", "rice").MustBuild(),
	}
}

func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.pantryRepo.AssertExpectations(suite.T())
	suite.planRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) service(r Ranker) *DashboardService {
	return NewDashboardService(suite.pantryRepo, suite.planRepo, r, zap.NewNop())
}

func (suite *DashboardServiceTestSuite) TestGetSummary() {
	items := []*pantry.Item{
		testutils.NewPantryItemBuilder(suite.userID).WithName("Avocado").ExpiringIn(24 * time.Hour).MustBuild(),
		testutils.NewPantryItemBuilder(suite.userID).WithName("Lemon").ExpiringIn(10 * 24 * time.Hour).MustBuild(),
		testutils.NewPantryItemBuilder(suite.userID).WithName("Rice").WithExpiry("about a month").MustBuild(),
	}
	plan := planner.NewWeeklyPlan(suite.userID, time.Now())
	suite.Require().NoError(plan.ReplaceEntries([]planner.Entry{
		{Day: planner.Monday, RecipeRef: "r1", Description: "Lunch"},
		{Day: planner.Friday, RecipeRef: "r2", Description: "Dinner"},
	}))

	suite.pantryRepo.On("FindByOwner", suite.ctx, suite.userID).Return(items, nil).Once()
	suite.planRepo.On("FindByUser", suite.ctx, suite.userID).Return(plan, nil).Once()

	summary, err := suite.service(catalogRanker{catalog: suite.catalog}).GetSummary(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(3, summary.PantryCount)
	suite.Equal(4, summary.RecipeCount)
	suite.Equal(2, summary.MealsPlanned)
	// 100, 100, 25, 0
	suite.Equal(56, summary.AverageMatch)
	suite.Require().Len(summary.BestMatches, 3)
	suite.Equal("Salad", summary.BestMatches[0].Title)
	suite.Equal("Lemon Rice", summary.BestMatches[1].Title)
	suite.Equal("Rice Bowl", summary.BestMatches[2].Title)
	suite.Require().Len(summary.ExpiringSoon, 1)
	suite.Equal("Avocado", summary.ExpiringSoon[0].Name)
}

func (suite *DashboardServiceTestSuite) TestGetSummaryForNewUser() {
	suite.pantryRepo.On("FindByOwner", suite.ctx, suite.userID).Return(nil, nil).Once()
	suite.planRepo.On("FindByUser", suite.ctx, suite.userID).Return(nil, planner.ErrPlanNotFound).Once()

	summary, err := suite.service(catalogRanker{}).GetSummary(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Zero(summary.PantryCount)
	suite.Zero(summary.AverageMatch)
	suite.Zero(summary.MealsPlanned)
	suite.NotNil(summary.BestMatches)
	suite.NotNil(summary.ExpiringSoon)
}

func (suite *DashboardServiceTestSuite) TestRankingFailure() {
	suite.pantryRepo.On("FindByOwner", suite.ctx, suite.userID).Return(nil, nil).Once()

	_, err := suite.service(catalogRanker{err: errors.NewDatabaseError("load catalog", stderrors.New("gone"))}).
		GetSummary(suite.ctx, suite.userID)

	testutils.AssertAppError(suite.T(), err, errors.CodeDatabaseError)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
