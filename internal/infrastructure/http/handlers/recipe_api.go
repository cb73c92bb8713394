package handlers

import (
	"fmt"
	"net/http"

	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"go.uber.org/zap"
)

// RecipeAPIHandlers handles catalog, recommendation and seed requests
type RecipeAPIHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeAPIHandlers creates a new recipe API handlers instance
func NewRecipeAPIHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeAPIHandlers {
	return &RecipeAPIHandlers{
		recipeService: recipeService,
		logger:        logger.Named("recipe-api"),
	}
}

// RecipeRequest carries the full set of recipe attributes
type RecipeRequest struct {
	Title       string                  `json:"title" validate:"required,max=200"`
	Image       string                  `json:"image"`
	Time        string                  `json:"time" validate:"required"`
	Calories    *int                    `json:"calories" validate:"required,gte=0"`
	Description string                  `json:"description"`
	Difficulty  string                  `json:"difficulty"`
	Servings    int                     `json:"servings"`
	Tags        []string                `json:"tags"`
	Ingredients []inbound.IngredientDTO `json:"ingredients"`
}

func (req RecipeRequest) command() inbound.RecipeCommand {
	cmd := inbound.RecipeCommand{
		Title:       req.Title,
		Image:       req.Image,
		Time:        req.Time,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Servings:    req.Servings,
		Tags:        req.Tags,
		Ingredients: req.Ingredients,
	}
	if req.Calories != nil {
		cmd.Calories = *req.Calories
	}
	return cmd
}

// SeedResponse reports how many reference recipes were inserted
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// ListRecipes handles GET /api/recipes
func (h *RecipeAPIHandlers) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeService.ListRecipes(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipes)
}

// GetRecipe handles GET /api/recipes/{id}
func (h *RecipeAPIHandlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathID(w, r, errors.NewRecipeNotFoundError)
	if !ok {
		return
	}

	recipe, err := h.recipeService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// CreateRecipe handles POST /api/recipes
func (h *RecipeAPIHandlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipe, err := h.recipeService.CreateRecipe(r.Context(), req.command())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, recipe)
}

// UpdateRecipe handles PUT /api/recipes/{id}
func (h *RecipeAPIHandlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathID(w, r, errors.NewRecipeNotFoundError)
	if !ok {
		return
	}

	var req RecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(r.Context(), recipeID, req.command())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /api/recipes/{id}
func (h *RecipeAPIHandlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, ok := pathID(w, r, errors.NewRecipeNotFoundError)
	if !ok {
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Recipe removed"})
}

// Recommendations handles GET /api/recommendations
func (h *RecipeAPIHandlers) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	ranked, err := h.recipeService.GetRecommendations(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ranked)
}

// Seed handles POST /api/seed
func (h *RecipeAPIHandlers) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := h.recipeService.SeedCatalog(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, SeedResponse{
		Message: fmt.Sprintf("Database seeded with %d recipes", count),
		Count:   count,
	})
}
