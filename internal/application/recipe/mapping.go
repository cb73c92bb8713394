package recipe

import (
	"github.com/culinaryos/kitchen/internal/domain/matching"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
)

// EntityToDTO converts a recipe to its API representation
func EntityToDTO(r *recipe.Recipe) inbound.RecipeDTO {
	ingredients := make([]inbound.IngredientDTO, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, inbound.IngredientDTO{Name: ing.Name, Amount: ing.Amount})
	}

	tags := r.Tags()
	if tags == nil {
		tags = []string{}
	}

	return inbound.RecipeDTO{
		ID:          r.ID(),
		Title:       r.Title(),
		Image:       r.Image(),
		Time:        r.Time(),
		Calories:    r.Calories(),
		Description: r.Description(),
		Difficulty:  string(r.Difficulty()),
		Servings:    r.Servings(),
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// DTOToEntity rebuilds a recipe from a cached snapshot record
func DTOToEntity(dto inbound.RecipeDTO) *recipe.Recipe {
	difficulty, err := recipe.ParseDifficulty(dto.Difficulty)
	if err != nil {
		difficulty = recipe.DefaultDifficulty
	}
	return recipe.Restore(dto.ID, recipe.Details{
		Title:       dto.Title,
		Image:       dto.Image,
		Time:        dto.Time,
		Calories:    dto.Calories,
		Description: dto.Description,
		Difficulty:  difficulty,
		Servings:    dto.Servings,
		Tags:        dto.Tags,
		Ingredients: toIngredients(dto.Ingredients),
	}, dto.CreatedAt, dto.UpdatedAt)
}

// RankedToDTOs converts a ranking to API entries, preserving order
func RankedToDTOs(ranked []matching.RankedRecipe) []inbound.RankedRecipeDTO {
	dtos := make([]inbound.RankedRecipeDTO, 0, len(ranked))
	for _, r := range ranked {
		missing := r.Match.Missing
		if missing == nil {
			missing = []string{}
		}
		dtos = append(dtos, inbound.RankedRecipeDTO{
			RecipeDTO:          EntityToDTO(r.Recipe),
			MatchPercentage:    r.Match.Percentage,
			MatchedCount:       r.Match.MatchedCount,
			TotalCount:         r.Match.TotalCount,
			MissingIngredients: missing,
		})
	}
	return dtos
}

func commandToDetails(cmd inbound.RecipeCommand) recipe.Details {
	// unknown labels are passed through so validation can reject them
	difficulty := recipe.Difficulty(cmd.Difficulty)
	if parsed, err := recipe.ParseDifficulty(cmd.Difficulty); err == nil {
		difficulty = parsed
	}

	return recipe.Details{
		Title:       cmd.Title,
		Image:       cmd.Image,
		Time:        cmd.Time,
		Calories:    cmd.Calories,
		Description: cmd.Description,
		Difficulty:  difficulty,
		Servings:    cmd.Servings,
		Tags:        cmd.Tags,
		Ingredients: toIngredients(cmd.Ingredients),
	}
}

func toIngredients(dtos []inbound.IngredientDTO) []recipe.Ingredient {
	out := make([]recipe.Ingredient, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, recipe.Ingredient{Name: d.Name, Amount: d.Amount})
	}
	return out
}
