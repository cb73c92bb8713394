package recipe

import "errors"

var (
	ErrTitleRequired            = errors.New("recipe title is required")
	ErrTitleTooLong             = errors.New("recipe title must not exceed 200 characters")
	ErrDescriptionTooLong       = errors.New("recipe description must not exceed 2000 characters")
	ErrTimeRequired             = errors.New("recipe time is required")
	ErrInvalidCalories          = errors.New("calories cannot be negative")
	ErrInvalidServings          = errors.New("servings must be greater than 0")
	ErrInvalidDifficulty        = errors.New("difficulty must be one of Easy, Medium, Hard")
	ErrIngredientNameRequired   = errors.New("ingredient name is required")
	ErrIngredientAmountRequired = errors.New("ingredient amount is required")

	ErrRecipeNotFound = errors.New("recipe not found")
)
