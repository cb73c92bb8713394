package gorm

import (
	"context"
	"errors"

	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

var _ outbound.RecipeRepository = (*RecipeRepository)(nil)

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create appends a recipe to the end of the catalog
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextPosition(tx)
		if err != nil {
			return err
		}
		model := RecipeToModel(rec)
		model.Position = next
		return tx.Create(model).Error
	})
}

// Update updates an existing recipe, keeping its catalog position
func (r *RecipeRepository) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)

	result := r.db.WithContext(ctx).
		Model(&RecipeModel{}).
		Where("id = ?", model.ID).
		Select("title", "image", "time", "calories", "description", "difficulty", "servings", "tags", "ingredients", "updated_at").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

// Delete deletes a recipe by ID
func (r *RecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&RecipeModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return recipe.ErrRecipeNotFound
	}

	return nil
}

// FindByID finds a recipe by ID
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrRecipeNotFound
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindAll returns the catalog in insertion order
func (r *RecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	var models []RecipeModel

	result := r.db.WithContext(ctx).
		Order("position ASC").
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}

	return recipes, nil
}

// Count returns the catalog size
func (r *RecipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&RecipeModel{}).Count(&count)
	return count, result.Error
}

// ReplaceAll deletes the catalog and inserts the given recipes in order
func (r *RecipeRepository) ReplaceAll(ctx context.Context, recipes []*recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RecipeModel{}).Error; err != nil {
			return err
		}
		return insertRecipes(tx, recipes, 1)
	})
}

// BulkCreate appends recipes to the catalog in order
func (r *RecipeRepository) BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		next, err := nextPosition(tx)
		if err != nil {
			return err
		}
		return insertRecipes(tx, recipes, next)
	})
}

func insertRecipes(tx *gorm.DB, recipes []*recipe.Recipe, start int64) error {
	if len(recipes) == 0 {
		return nil
	}

	models := make([]*RecipeModel, len(recipes))
	for i, rec := range recipes {
		models[i] = RecipeToModel(rec)
		models[i].Position = start + int64(i)
	}

	return tx.CreateInBatches(models, 100).Error
}

func nextPosition(tx *gorm.DB) (int64, error) {
	var max int64
	err := tx.Model(&RecipeModel{}).Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	return max + 1, err
}
