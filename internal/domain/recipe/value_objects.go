package recipe

import (
	"strings"
)

// DefaultImage is used when a recipe is created without an image
const DefaultImage = "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=800&q=80"

// Default values applied on creation
const (
	DefaultServings   = 2
	DefaultDifficulty = DifficultyMedium
)

// Ingredient is one ingredient requirement of a recipe.
// Amount is free text ("200g", "1/2", "2 cloves").
type Ingredient struct {
	Name   string
	Amount string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrIngredientNameRequired
	}
	if strings.TrimSpace(i.Amount) == "" {
		return ErrIngredientAmountRequired
	}
	return nil
}

// Difficulty represents how demanding a recipe is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty converts user input to a Difficulty. Matching is case-insensitive
// and an empty value yields the default.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultDifficulty, nil
	case "easy":
		return DifficultyEasy, nil
	case "medium":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	}
	return "", ErrInvalidDifficulty
}

// IsValid reports whether d is one of the known difficulties
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// normalizeTags trims tags and drops blanks and duplicates, keeping first-seen order
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
