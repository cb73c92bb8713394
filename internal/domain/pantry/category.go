package pantry

import "strings"

// Category groups pantry items on the shelf
type Category string

const (
	CategoryProduce Category = "Produce"
	CategoryProtein Category = "Protein"
	CategoryDairy   Category = "Dairy"
	CategoryPantry  Category = "Pantry"
	CategorySpices  Category = "Spices"
	CategoryOther   Category = "Other"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryProduce,
	CategoryProtein,
	CategoryDairy,
	CategoryPantry,
	CategorySpices,
	CategoryOther,
}

// legacy labels written by older clients
var categoryAliases = map[string]Category{
	"grains":     CategoryPantry,
	"grain":      CategoryPantry,
	"dry goods":  CategoryPantry,
	"vegetables": CategoryProduce,
	"fruit":      CategoryProduce,
	"meat":       CategoryProtein,
	"spice":      CategorySpices,
}

// ParseCategory resolves a category label case-insensitively, folding legacy aliases
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if strings.ToLower(string(c)) == key {
			return c, nil
		}
	}
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", ErrInvalidCategory
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
