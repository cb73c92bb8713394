// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RecipeService defines the use cases for the recipe catalog and recommendations
type RecipeService interface {
	// Commands
	CreateRecipe(ctx context.Context, cmd RecipeCommand) (*RecipeDTO, error)
	UpdateRecipe(ctx context.Context, recipeID uuid.UUID, cmd RecipeCommand) (*RecipeDTO, error)
	DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error
	// SeedCatalog replaces the catalog with the reference recipes
	SeedCatalog(ctx context.Context) (int, error)

	// Queries
	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
	ListRecipes(ctx context.Context) ([]RecipeDTO, error)
	// GetRecommendations ranks the whole catalog against the user's pantry
	GetRecommendations(ctx context.Context, userID uuid.UUID) ([]RankedRecipeDTO, error)
}

// RecipeCommand carries the full set of recipe attributes for create and update
type RecipeCommand struct {
	Title       string
	Image       string
	Time        string
	Calories    int
	Description string
	Difficulty  string
	Servings    int
	Tags        []string
	Ingredients []IngredientDTO
}

// IngredientDTO is one ingredient requirement
type IngredientDTO struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// RecipeDTO is the API representation of a recipe
type RecipeDTO struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Image       string          `json:"image"`
	Time        string          `json:"time"`
	Calories    int             `json:"calories"`
	Description string          `json:"description"`
	Difficulty  string          `json:"difficulty"`
	Servings    int             `json:"servings"`
	Tags        []string        `json:"tags"`
	Ingredients []IngredientDTO `json:"ingredients"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// RankedRecipeDTO is a recipe annotated with its pantry match
type RankedRecipeDTO struct {
	RecipeDTO
	MatchPercentage    int      `json:"matchPercentage"`
	MatchedCount       int      `json:"matchedCount"`
	TotalCount         int      `json:"totalCount"`
	MissingIngredients []string `json:"missingIngredients"`
}
