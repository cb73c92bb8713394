package matching

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MatchingTestSuite struct {
	suite.Suite
}

func newRecipe(t require.TestingT, title string, ingredients ...string) *recipe.Recipe {
	ings := make([]recipe.Ingredient, 0, len(ingredients))
	for _, name := range ingredients {
		ings = append(ings, recipe.Ingredient{Name: name, Amount: "1"})
	}
	r, err := recipe.NewRecipe(recipe.Details{
		Title:       title,
		Time:        "20 mins",
		Calories:    400,
		Ingredients: ings,
	})
	require.NoError(t, err)
	return r
}

func percentages(ranked []RankedRecipe) []int {
	out := make([]int, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Match.Percentage)
	}
	return out
}

func (suite *MatchingTestSuite) TestNormalize() {
	assert.Equal(suite.T(), "greek yogurt", Normalize("Greek YOGURT"))
	assert.Equal(suite.T(), "  fresh, chopped basil ", Normalize("  Fresh, Chopped Basil "))
	assert.Equal(suite.T(), "tomatoes", Normalize("Tomatoes"))
	assert.Equal(suite.T(), "", Normalize(""))
}

func (suite *MatchingTestSuite) TestMatches() {
	suite.Run("PantryNameContainsRequirement", func() {
		p := NewPantry("Greek Yogurt")
		assert.True(suite.T(), p.Satisfies("Yogurt"))
	})

	suite.Run("RequirementContainsPantryName", func() {
		p := NewPantry("Chicken")
		assert.True(suite.T(), p.Satisfies("Chicken Breast"))
	})

	suite.Run("CaseInsensitive", func() {
		p := NewPantry("SALMON FILLET")
		assert.True(suite.T(), p.Satisfies("salmon fillet"))
	})

	suite.Run("NoStemming", func() {
		p := NewPantry("Berries")
		assert.False(suite.T(), p.Satisfies("Berry"))
		assert.True(suite.T(), NewPantry("Tomato").Satisfies("Tomatoes"))
	})

	suite.Run("LooseHeuristicIsKept", func() {
		p := NewPantry("Eggplant")
		assert.True(suite.T(), p.Satisfies("Egg"))
	})

	suite.Run("EmptyRequirement_NeverSatisfied", func() {
		p := NewPantry("Salt", "Pepper")
		assert.False(suite.T(), p.Satisfies(""))
		assert.False(suite.T(), Matches([]string{"salt"}, ""))
	})

	suite.Run("EmptyPantry_NothingSatisfied", func() {
		assert.False(suite.T(), NewPantry().Satisfies("Salt"))
		assert.False(suite.T(), Matches(nil, "salt"))
	})

	suite.Run("EmptyPantryName_DoesNotMatchEverything", func() {
		assert.False(suite.T(), NewPantry("", "Lemon").Satisfies("Garlic"))
		assert.False(suite.T(), Matches([]string{""}, "garlic"))
	})

	suite.Run("DuplicatesIrrelevant", func() {
		p := NewPantry("Lemon", "lemon", "LEMON")
		assert.Equal(suite.T(), 1, p.Len())
		assert.True(suite.T(), p.Satisfies("Lemon"))
	})
}

func (suite *MatchingTestSuite) TestScoreRecipe() {
	suite.Run("Scenario_FullMatch", func() {
		p := NewPantry("Avocado", "Chicken Breast", "Spinach", "Lemon")
		r := newRecipe(suite.T(), "Avocado Chicken Salad", "Avocado", "Chicken Breast", "Spinach", "Lemon")

		result := ScoreRecipe(r, p)

		assert.Equal(suite.T(), r.ID(), result.RecipeID)
		assert.Equal(suite.T(), 4, result.MatchedCount)
		assert.Equal(suite.T(), 4, result.TotalCount)
		assert.Equal(suite.T(), 100, result.Percentage)
		assert.Empty(suite.T(), result.Missing)
	})

	suite.Run("Scenario_QuarterMatch", func() {
		p := NewPantry("Salmon Fillet")
		r := newRecipe(suite.T(), "Lemon Garlic Salmon", "Salmon Fillet", "Lemon", "Garlic", "Asparagus")

		result := ScoreRecipe(r, p)

		assert.Equal(suite.T(), 1, result.MatchedCount)
		assert.Equal(suite.T(), 4, result.TotalCount)
		assert.Equal(suite.T(), 25, result.Percentage)
		assert.Equal(suite.T(), []string{"Lemon", "Garlic", "Asparagus"}, result.Missing)
	})

	suite.Run("Scenario_EmptyPantry", func() {
		r := newRecipe(suite.T(), "Rice Bowl", "Basmati Rice", "Greek Yogurt", "Chicken Breast")

		result := ScoreRecipe(r, NewPantry())

		assert.Equal(suite.T(), 0, result.MatchedCount)
		assert.Equal(suite.T(), 3, result.TotalCount)
		assert.Equal(suite.T(), 0, result.Percentage)
	})

	suite.Run("ZeroIngredients_ScoresZero", func() {
		r := newRecipe(suite.T(), "Air Sandwich")

		result := ScoreRecipe(r, NewPantry("Bread"))

		assert.Equal(suite.T(), 0, result.TotalCount)
		assert.Equal(suite.T(), 0, result.Percentage)
	})

	suite.Run("DuplicateRequirements_CountSeparately", func() {
		r := newRecipe(suite.T(), "Double Lemon", "Lemon", "Lemon", "Sugar")

		result := ScoreRecipe(r, NewPantry("Lemon"))

		assert.Equal(suite.T(), 2, result.MatchedCount)
		assert.Equal(suite.T(), 3, result.TotalCount)
		assert.Equal(suite.T(), 67, result.Percentage)
	})

	suite.Run("MalformedRequirement_Unsatisfied", func() {
		result := ScoreIngredients([]recipe.Ingredient{{Name: "", Amount: "1"}, {Name: "Salt", Amount: "1"}}, NewPantry("Salt"))

		assert.Equal(suite.T(), 1, result.MatchedCount)
		assert.Equal(suite.T(), 50, result.Percentage)
	})
}

func (suite *MatchingTestSuite) TestPercentageRounding() {
	tests := []struct {
		matched, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{3, 8, 38},
		{1, 6, 17},
		{5, 5, 100},
	}
	for _, tt := range tests {
		assert.Equal(suite.T(), tt.want, Percentage(tt.matched, tt.total), "%d/%d", tt.matched, tt.total)
	}
}

func (suite *MatchingTestSuite) TestRankRecipes() {
	suite.Run("Scenario_OrderAndAverage", func() {
		p := NewPantry("Salmon Fillet", "Avocado", "Chicken Breast", "Spinach", "Lemon")
		quarter := newRecipe(suite.T(), "Salmon Plate", "Salmon Fillet", "Dill", "Capers", "Asparagus")
		require.Equal(suite.T(), 25, ScoreRecipe(quarter, p).Percentage)
		full := newRecipe(suite.T(), "Avocado Chicken Salad", "Avocado", "Chicken Breast", "Spinach", "Lemon")
		none := newRecipe(suite.T(), "Beef Stew", "Beef", "Carrot", "Potato")

		ranked := RankRecipes([]*recipe.Recipe{quarter, full, none}, p)

		require.Len(suite.T(), ranked, 3)
		assert.Equal(suite.T(), []int{100, 25, 0}, percentages(ranked))
		assert.Same(suite.T(), full, ranked[0].Recipe)
		assert.Same(suite.T(), none, ranked[2].Recipe)
		assert.Equal(suite.T(), 42, AverageMatch(ranked))
	})

	suite.Run("EmptyCatalog", func() {
		ranked := RankRecipes(nil, NewPantry("Salt"))

		assert.Empty(suite.T(), ranked)
		assert.Equal(suite.T(), 0, AverageMatch(ranked))
		assert.Empty(suite.T(), TopMatches(ranked, 3))
	})

	suite.Run("TiesKeepCatalogOrder", func() {
		a := newRecipe(suite.T(), "First", "Lemon")
		b := newRecipe(suite.T(), "Second", "Lemon")
		c := newRecipe(suite.T(), "Third", "Garlic")

		ranked := RankRecipes([]*recipe.Recipe{c, a, b}, NewPantry("Lemon"))

		assert.Same(suite.T(), a, ranked[0].Recipe)
		assert.Same(suite.T(), b, ranked[1].Recipe)
		assert.Same(suite.T(), c, ranked[2].Recipe)
	})

	suite.Run("TopMatches", func() {
		p := NewPantry("Lemon")
		catalog := []*recipe.Recipe{
			newRecipe(suite.T(), "One", "Lemon"),
			newRecipe(suite.T(), "Two", "Lemon", "Salt"),
			newRecipe(suite.T(), "Three", "Salt"),
		}
		ranked := RankRecipes(catalog, p)

		top := TopMatches(ranked, 2)
		assert.Len(suite.T(), top, 2)
		assert.Equal(suite.T(), []int{100, 50}, percentages(top))
		assert.Len(suite.T(), TopMatches(ranked, 10), 3)
		assert.Empty(suite.T(), TopMatches(ranked, 0))
	})
}

// TestRankRecipesProperties checks the ranking invariants over generated catalogs.
func (suite *MatchingTestSuite) TestRankRecipesProperties() {
	faker := gofakeit.New(20260101)

	for round := 0; round < 25; round++ {
		var names []string
		for i := 0; i < faker.Number(0, 6); i++ {
			names = append(names, faker.Vegetable())
		}
		p := NewPantry(names...)

		catalog := make([]*recipe.Recipe, 0)
		for i := 0; i < faker.Number(0, 8); i++ {
			var ings []string
			for j := 0; j < faker.Number(0, 6); j++ {
				if faker.Bool() {
					ings = append(ings, faker.Vegetable())
				} else {
					ings = append(ings, faker.Fruit())
				}
			}
			catalog = append(catalog, newRecipe(suite.T(), "Dish "+uuid.NewString()[:8], ings...))
		}

		first := RankRecipes(catalog, p)
		second := RankRecipes(catalog, p)

		require.Len(suite.T(), first, len(catalog))
		assert.Equal(suite.T(), first, second, "ranking must be idempotent")

		seen := make(map[uuid.UUID]int)
		for i, r := range first {
			seen[r.Recipe.ID()]++
			m := r.Match
			assert.GreaterOrEqual(suite.T(), m.MatchedCount, 0)
			assert.LessOrEqual(suite.T(), m.MatchedCount, m.TotalCount)
			assert.Equal(suite.T(), len(r.Recipe.Ingredients()), m.TotalCount)
			assert.Equal(suite.T(), Percentage(m.MatchedCount, m.TotalCount), m.Percentage)
			if i > 0 {
				assert.GreaterOrEqual(suite.T(), first[i-1].Match.Percentage, m.Percentage)
			}
		}
		for _, r := range catalog {
			assert.Equal(suite.T(), 1, seen[r.ID()], "output must be a permutation of the catalog")
		}

		for _, r := range first {
			for _, ing := range r.Recipe.Ingredients() {
				want := false
				req := strings.ToLower(ing.Name)
				for _, n := range p.Names() {
					if req != "" && (strings.Contains(n, req) || strings.Contains(req, n)) {
						want = true
					}
				}
				assert.Equal(suite.T(), want, p.Satisfies(ing.Name))
			}
		}
	}
}

func TestPantryFromItems(t *testing.T) {
	owner := uuid.New()
	yogurt, err := pantry.NewItem(owner, "Greek Yogurt", "Dairy", "500g", "", "")
	require.NoError(t, err)
	rice, err := pantry.NewItem(owner, "Basmati Rice", "Grains", "1kg", "", "")
	require.NoError(t, err)

	p := PantryFromItems([]*pantry.Item{yogurt, rice})

	assert.Equal(t, []string{"greek yogurt", "basmati rice"}, p.Names())
	assert.True(t, p.Satisfies("Yogurt"))
	assert.True(t, p.Satisfies("Rice"))
}

func TestMatchingTestSuite(t *testing.T) {
	suite.Run(t, new(MatchingTestSuite))
}
