package matching

import (
	"sort"

	"github.com/culinaryos/kitchen/internal/domain/recipe"
)

// RankedRecipe pairs a catalog recipe with its match result
type RankedRecipe struct {
	Recipe *recipe.Recipe
	Match  MatchResult
}

// RankRecipes scores the whole catalog and orders it by match percentage,
// highest first. Nothing is filtered. Recipes with equal percentages keep
// their catalog order.
func RankRecipes(catalog []*recipe.Recipe, p Pantry) []RankedRecipe {
	ranked := make([]RankedRecipe, 0, len(catalog))
	for _, r := range catalog {
		ranked = append(ranked, RankedRecipe{Recipe: r, Match: ScoreRecipe(r, p)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Match.Percentage > ranked[j].Match.Percentage
	})

	return ranked
}

// TopMatches returns at most n entries from the head of a ranked list
func TopMatches(ranked []RankedRecipe, n int) []RankedRecipe {
	if n <= 0 {
		return []RankedRecipe{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return append([]RankedRecipe(nil), ranked[:n]...)
}

// AverageMatch returns the mean percentage rounded half up, or 0 for an empty list
func AverageMatch(ranked []RankedRecipe) int {
	if len(ranked) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ranked {
		sum += r.Match.Percentage
	}
	return (2*sum + len(ranked)) / (2 * len(ranked))
}
