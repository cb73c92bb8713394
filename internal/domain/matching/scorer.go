package matching

import (
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/google/uuid"
)

// MatchResult is the derived pantry coverage of one recipe. It is never persisted.
type MatchResult struct {
	RecipeID     uuid.UUID
	MatchedCount int
	TotalCount   int
	Percentage   int
	// Missing lists the display names of unsatisfied requirements in recipe order
	Missing []string
}

// ScoreRecipe tests every ingredient requirement of r against the pantry.
// Duplicate requirements count separately; a recipe without ingredients scores 0.
func ScoreRecipe(r *recipe.Recipe, p Pantry) MatchResult {
	result := ScoreIngredients(r.Ingredients(), p)
	result.RecipeID = r.ID()
	return result
}

// ScoreIngredients scores a bare ingredient list
func ScoreIngredients(ingredients []recipe.Ingredient, p Pantry) MatchResult {
	result := MatchResult{
		TotalCount: len(ingredients),
		Missing:    []string{},
	}
	for _, ing := range ingredients {
		if p.Satisfies(ing.Name) {
			result.MatchedCount++
		} else {
			result.Missing = append(result.Missing, ing.Name)
		}
	}
	result.Percentage = Percentage(result.MatchedCount, result.TotalCount)
	return result
}

// Percentage returns round(100*matched/total) with halves rounded up, or 0 when total is 0
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*matched + total) / (2 * total)
}
