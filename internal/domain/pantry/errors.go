package pantry

import "errors"

var (
	ErrNameRequired     = errors.New("pantry item name is required")
	ErrNameTooLong      = errors.New("pantry item name must not exceed 100 characters")
	ErrInvalidCategory  = errors.New("category must be one of Produce, Protein, Dairy, Pantry, Spices, Other")
	ErrQuantityRequired = errors.New("pantry item quantity is required")
	ErrItemNotFound     = errors.New("pantry item not found")
)
