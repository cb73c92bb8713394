package gorm

import (
	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
)

// UserToModel converts a domain user to a GORM model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:                 u.ID(),
		Email:              u.Email(),
		Name:               u.Name(),
		PasswordHash:       u.PasswordHash(),
		ProfilePicture:     u.ProfilePicture(),
		DietaryPreferences: StringSlice(u.DietaryPreferences()),
		CreatedAt:          u.CreatedAt(),
		UpdatedAt:          u.UpdatedAt(),
	}
}

// ModelToUser converts a GORM model to a domain user
func ModelToUser(model *UserModel) *user.User {
	return user.Restore(
		model.ID,
		model.Email,
		model.Name,
		model.PasswordHash,
		model.ProfilePicture,
		[]string(model.DietaryPreferences),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// PantryItemToModel converts a domain pantry item to a GORM model
func PantryItemToModel(i *pantry.Item) *PantryItemModel {
	return &PantryItemModel{
		ID:        i.ID(),
		OwnerID:   i.OwnerID(),
		Name:      i.Name(),
		Category:  string(i.Category()),
		Quantity:  i.Quantity(),
		Expiry:    i.Expiry(),
		ColorTag:  i.ColorTag(),
		CreatedAt: i.CreatedAt(),
		UpdatedAt: i.UpdatedAt(),
	}
}

// ModelToPantryItem converts a GORM model to a domain pantry item.
// Legacy category labels are folded through the alias table.
func ModelToPantryItem(model *PantryItemModel) *pantry.Item {
	category, err := pantry.ParseCategory(model.Category)
	if err != nil {
		category = pantry.CategoryOther
	}
	return pantry.Restore(
		model.ID,
		model.OwnerID,
		model.Name,
		category,
		model.Quantity,
		model.Expiry,
		model.ColorTag,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make(IngredientSlice, len(r.Ingredients()))
	for i, ing := range r.Ingredients() {
		ingredients[i] = IngredientRecord{Name: ing.Name, Amount: ing.Amount}
	}

	return &RecipeModel{
		ID:          r.ID(),
		Title:       r.Title(),
		Image:       r.Image(),
		Time:        r.Time(),
		Calories:    r.Calories(),
		Description: r.Description(),
		Difficulty:  string(r.Difficulty()),
		Servings:    r.Servings(),
		Tags:        StringSlice(r.Tags()),
		Ingredients: ingredients,
		CreatedAt:   r.CreatedAt(),
		UpdatedAt:   r.UpdatedAt(),
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, len(model.Ingredients))
	for i, ing := range model.Ingredients {
		ingredients[i] = recipe.Ingredient{Name: ing.Name, Amount: ing.Amount}
	}

	difficulty, err := recipe.ParseDifficulty(model.Difficulty)
	if err != nil {
		difficulty = recipe.DefaultDifficulty
	}

	return recipe.Restore(model.ID, recipe.Details{
		Title:       model.Title,
		Image:       model.Image,
		Time:        model.Time,
		Calories:    model.Calories,
		Description: model.Description,
		Difficulty:  difficulty,
		Servings:    model.Servings,
		Tags:        []string(model.Tags),
		Ingredients: ingredients,
	}, model.CreatedAt, model.UpdatedAt)
}

// MealPlanToModel converts a domain weekly plan to a GORM model with entries
func MealPlanToModel(p *planner.WeeklyPlan) *MealPlanModel {
	entries := make([]MealPlanEntryModel, len(p.Entries()))
	for i, e := range p.Entries() {
		entries[i] = MealPlanEntryModel{
			ID:          e.ID,
			PlanID:      p.ID(),
			Position:    i,
			Day:         string(e.Day),
			RecipeRef:   e.RecipeRef,
			Description: e.Description,
			ColorTag:    e.ColorTag,
		}
	}

	return &MealPlanModel{
		ID:        p.ID(),
		UserID:    p.UserID(),
		WeekStart: p.WeekStart(),
		UpdatedAt: p.UpdatedAt(),
		Entries:   entries,
	}
}

// ModelToMealPlan converts a GORM model to a domain weekly plan.
// Entries must already be sorted by position.
func ModelToMealPlan(model *MealPlanModel) *planner.WeeklyPlan {
	entries := make([]planner.Entry, len(model.Entries))
	for i, e := range model.Entries {
		entries[i] = planner.Entry{
			ID:          e.ID,
			Day:         planner.Day(e.Day),
			RecipeRef:   e.RecipeRef,
			Description: e.Description,
			ColorTag:    e.ColorTag,
		}
	}
	return planner.Restore(model.ID, model.UserID, model.WeekStart, entries, model.UpdatedAt)
}

// OrderToModel converts a domain order to a GORM model
func OrderToModel(o *order.Order) *OrderModel {
	return &OrderModel{
		ID:             o.ID(),
		UserID:         o.UserID(),
		Title:          o.Title(),
		Specifications: o.Specifications(),
		StartTime:      o.StartTime(),
		EndTime:        o.EndTime(),
		Duration:       o.Duration(),
		Status:         string(o.Status()),
		CreatedAt:      o.CreatedAt(),
	}
}

// ModelToOrder converts a GORM model to a domain order
func ModelToOrder(model *OrderModel) *order.Order {
	status, err := order.ParseStatus(model.Status)
	if err != nil {
		status = order.StatusPending
	}
	return order.Restore(model.ID, model.UserID, order.Schedule{
		Title:          model.Title,
		Specifications: model.Specifications,
		StartTime:      model.StartTime,
		EndTime:        model.EndTime,
		Duration:       model.Duration,
		Status:         string(status),
	}, status, model.CreatedAt)
}
