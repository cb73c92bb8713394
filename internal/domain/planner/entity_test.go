package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type WeeklyPlanTestSuite struct {
	suite.Suite
	plan *WeeklyPlan
}

func (suite *WeeklyPlanTestSuite) SetupTest() {
	suite.plan = NewWeeklyPlan(uuid.New(), time.Date(2026, 3, 12, 15, 30, 0, 0, time.UTC))
}

func (suite *WeeklyPlanTestSuite) TestNewWeeklyPlan() {
	assert.Equal(suite.T(), time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), suite.plan.WeekStart())
	assert.Empty(suite.T(), suite.plan.Entries())
	assert.Equal(suite.T(), 0, suite.plan.MealsPlanned())
}

func (suite *WeeklyPlanTestSuite) TestReplaceEntries() {
	suite.Run("ValidEntries_ShouldReplaceAll", func() {
		keep := uuid.New()
		err := suite.plan.ReplaceEntries([]Entry{
			{ID: keep, Day: "Mon", RecipeRef: "recipe-1", Description: "Avocado Chicken Salad", ColorTag: "bg-green-100"},
			{Day: "tuesday", RecipeRef: "custom", Description: "Leftovers"},
		})
		require.NoError(suite.T(), err)

		entries := suite.plan.Entries()
		require.Len(suite.T(), entries, 2)
		assert.Equal(suite.T(), keep, entries[0].ID)
		assert.NotEqual(suite.T(), uuid.Nil, entries[1].ID)
		assert.Equal(suite.T(), Tuesday, entries[1].Day)
		assert.Len(suite.T(), suite.plan.EntriesFor(Monday), 1)

		require.NoError(suite.T(), suite.plan.ReplaceEntries([]Entry{
			{Day: "Sun", RecipeRef: "recipe-2", Description: "Roast"},
		}))
		assert.Equal(suite.T(), 1, suite.plan.MealsPlanned())
		assert.Empty(suite.T(), suite.plan.EntriesFor(Monday))
	})

	suite.Run("EmptyList_ShouldClearPlan", func() {
		require.NoError(suite.T(), suite.plan.ReplaceEntries(nil))
		assert.Empty(suite.T(), suite.plan.Entries())
	})

	suite.Run("InvalidDay_ShouldKeepPreviousEntries", func() {
		require.NoError(suite.T(), suite.plan.ReplaceEntries([]Entry{
			{Day: "Fri", RecipeRef: "r", Description: "Pizza night"},
		}))

		err := suite.plan.ReplaceEntries([]Entry{
			{Day: "Funday", RecipeRef: "r", Description: "Cake"},
		})

		assert.ErrorIs(suite.T(), err, ErrInvalidDay)
		assert.Len(suite.T(), suite.plan.Entries(), 1)
	})

	suite.Run("MissingFields_ShouldFail", func() {
		assert.ErrorIs(suite.T(), suite.plan.ReplaceEntries([]Entry{{Day: "Mon", Description: "x"}}), ErrRecipeRefRequired)
		assert.ErrorIs(suite.T(), suite.plan.ReplaceEntries([]Entry{{Day: "Mon", RecipeRef: "r"}}), ErrDescriptionRequired)
	})

	suite.Run("DuplicateIDs_ShouldFail", func() {
		id := uuid.New()
		err := suite.plan.ReplaceEntries([]Entry{
			{ID: id, Day: "Mon", RecipeRef: "a", Description: "a"},
			{ID: id, Day: "Tue", RecipeRef: "b", Description: "b"},
		})
		assert.ErrorIs(suite.T(), err, ErrDuplicateEntryID)
	})
}

func TestParseDay(t *testing.T) {
	for input, want := range map[string]Day{
		"Mon": Monday, "mon": Monday, "Monday": Monday, "SUNDAY": Sunday, " wed ": Wednesday,
	} {
		got, err := ParseDay(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	for _, input := range []string{"", "Mo", "Mondays", "Someday"} {
		_, err := ParseDay(input)
		assert.ErrorIs(t, err, ErrInvalidDay, input)
	}
}

func TestWeekStart(t *testing.T) {
	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, monday, WeekStart(sunday))
	assert.Equal(t, monday, WeekStart(monday))
}

func TestWeeklyPlanTestSuite(t *testing.T) {
	suite.Run(t, new(WeeklyPlanTestSuite))
}
