package recipe

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func validDetails() Details {
	return Details{
		Title:       "Avocado Chicken Salad",
		Time:        "15 mins",
		Calories:    350,
		Description: "A fresh and nutritious salad.",
		Difficulty:  DifficultyEasy,
		Servings:    2,
		Tags:        []string{"Healthy", "Lunch"},
		Ingredients: []Ingredient{
			{Name: "Avocado", Amount: "1"},
			{Name: "Chicken Breast", Amount: "200g"},
		},
	}
}

func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		// Act
		r, err := NewRecipe(validDetails())

		// Assert
		require.NoError(suite.T(), err)
		assert.NotEqual(suite.T(), uuid.Nil, r.ID())
		assert.Equal(suite.T(), "Avocado Chicken Salad", r.Title())
		assert.Equal(suite.T(), DifficultyEasy, r.Difficulty())
		assert.Len(suite.T(), r.Ingredients(), 2)
		assert.NotZero(suite.T(), r.CreatedAt())

		events := r.Events()
		require.Len(suite.T(), events, 1)
		created, ok := events[0].(RecipeCreatedEvent)
		assert.True(suite.T(), ok, "Should emit RecipeCreatedEvent")
		assert.Equal(suite.T(), r.ID(), created.RecipeID)
		assert.Empty(suite.T(), r.Events(), "Events should be cleared after read")
	})

	suite.Run("MissingOptionalFields_ShouldApplyDefaults", func() {
		// Arrange
		d := validDetails()
		d.Image = ""
		d.Difficulty = ""
		d.Servings = 0
		d.Description = ""

		// Act
		r, err := NewRecipe(d)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), DefaultImage, r.Image())
		assert.Equal(suite.T(), DifficultyMedium, r.Difficulty())
		assert.Equal(suite.T(), 2, r.Servings())
		assert.Equal(suite.T(), "", r.Description())
	})

	suite.Run("ZeroIngredients_ShouldBeAllowed", func() {
		d := validDetails()
		d.Ingredients = nil

		r, err := NewRecipe(d)

		require.NoError(suite.T(), err)
		assert.Empty(suite.T(), r.Ingredients())
	})

	suite.Run("DuplicateTags_ShouldCollapse", func() {
		d := validDetails()
		d.Tags = []string{"Keto", " Keto ", "", "Lunch"}

		r, err := NewRecipe(d)

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"Keto", "Lunch"}, r.Tags())
	})
}

func (suite *RecipeTestSuite) TestRecipeValidation() {
	tests := []struct {
		name   string
		mutate func(d *Details)
		want   error
	}{
		{"EmptyTitle", func(d *Details) { d.Title = "  " }, ErrTitleRequired},
		{"TitleTooLong", func(d *Details) { d.Title = strings.Repeat("a", 201) }, ErrTitleTooLong},
		{"DescriptionTooLong", func(d *Details) { d.Description = strings.Repeat("a", 2001) }, ErrDescriptionTooLong},
		{"MissingTime", func(d *Details) { d.Time = "" }, ErrTimeRequired},
		{"NegativeCalories", func(d *Details) { d.Calories = -1 }, ErrInvalidCalories},
		{"NegativeServings", func(d *Details) { d.Servings = -3 }, ErrInvalidServings},
		{"UnknownDifficulty", func(d *Details) { d.Difficulty = "Extreme" }, ErrInvalidDifficulty},
		{"IngredientWithoutName", func(d *Details) { d.Ingredients = []Ingredient{{Name: "", Amount: "1"}} }, ErrIngredientNameRequired},
		{"IngredientWithoutAmount", func(d *Details) { d.Ingredients = []Ingredient{{Name: "Salt", Amount: " "}} }, ErrIngredientAmountRequired},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			d := validDetails()
			tt.mutate(&d)

			r, err := NewRecipe(d)

			assert.Nil(suite.T(), r)
			assert.ErrorIs(suite.T(), err, tt.want)
		})
	}
}

func (suite *RecipeTestSuite) TestRecipeUpdate() {
	suite.Run("Update_ShouldReplaceAttributes", func() {
		r, err := NewRecipe(validDetails())
		require.NoError(suite.T(), err)
		r.Events()

		d := validDetails()
		d.Title = "Lemon Garlic Salmon"
		d.Ingredients = []Ingredient{{Name: "Salmon Fillet", Amount: "1"}}

		require.NoError(suite.T(), r.Update(d))

		assert.Equal(suite.T(), "Lemon Garlic Salmon", r.Title())
		assert.Equal(suite.T(), []Ingredient{{Name: "Salmon Fillet", Amount: "1"}}, r.Ingredients())
		events := r.Events()
		require.Len(suite.T(), events, 1)
		assert.Equal(suite.T(), "recipe.updated", events[0].EventName())
	})

	suite.Run("InvalidUpdate_ShouldLeaveRecipeUntouched", func() {
		r, err := NewRecipe(validDetails())
		require.NoError(suite.T(), err)

		d := validDetails()
		d.Title = ""

		assert.ErrorIs(suite.T(), r.Update(d), ErrTitleRequired)
		assert.Equal(suite.T(), "Avocado Chicken Salad", r.Title())
	})

	suite.Run("Details_ShouldReturnCopy", func() {
		r, err := NewRecipe(validDetails())
		require.NoError(suite.T(), err)

		d := r.Details()
		d.Ingredients[0].Name = "Changed"

		assert.Equal(suite.T(), "Avocado", r.Ingredients()[0].Name)
	})
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, d)

	d, err = ParseDifficulty("")
	require.NoError(t, err)
	assert.Equal(t, DifficultyMedium, d)

	_, err = ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
