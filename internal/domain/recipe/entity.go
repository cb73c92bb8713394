// Package recipe contains the recipe catalog domain model.
// Recipes belong to the catalog, not to a user.
package recipe

import (
	"strings"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/shared"
	"github.com/google/uuid"
)

// Recipe is a catalog dish with an ordered list of ingredient requirements
type Recipe struct {
	id          uuid.UUID
	title       string
	image       string
	time        string
	calories    int
	description string
	difficulty  Difficulty
	servings    int
	tags        []string
	ingredients []Ingredient

	createdAt time.Time
	updatedAt time.Time

	events []shared.DomainEvent
}

// Details carries the mutable attributes of a recipe.
// Zero values for Image, Difficulty and Servings select the defaults.
type Details struct {
	Title       string
	Image       string
	Time        string
	Calories    int
	Description string
	Difficulty  Difficulty
	Servings    int
	Tags        []string
	Ingredients []Ingredient
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(d Details) (*Recipe, error) {
	d = withDefaults(d)
	if err := validateDetails(d); err != nil {
		return nil, err
	}

	now := time.Now()
	r := &Recipe{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
		events:    []shared.DomainEvent{},
	}
	r.apply(d)

	r.addEvent(RecipeCreatedEvent{
		RecipeID:  r.id,
		Title:     r.title,
		CreatedAt: now,
	})

	return r, nil
}

// Restore rebuilds a Recipe from persisted state without raising events
func Restore(id uuid.UUID, d Details, createdAt, updatedAt time.Time) *Recipe {
	r := &Recipe{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
		events:    []shared.DomainEvent{},
	}
	r.apply(withDefaults(d))
	return r
}

// Update replaces every attribute of the recipe
func (r *Recipe) Update(d Details) error {
	d = withDefaults(d)
	if err := validateDetails(d); err != nil {
		return err
	}

	r.apply(d)
	r.updatedAt = time.Now()

	r.addEvent(RecipeUpdatedEvent{
		RecipeID:  r.id,
		UpdatedAt: r.updatedAt,
	})

	return nil
}

// MarkDeleted records the deletion event for dispatch
func (r *Recipe) MarkDeleted() {
	r.addEvent(RecipeDeletedEvent{
		RecipeID:  r.id,
		DeletedAt: time.Now(),
	})
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Title returns the recipe's title
func (r *Recipe) Title() string {
	return r.title
}

// Image returns the image URL
func (r *Recipe) Image() string {
	return r.image
}

// Time returns the free-text preparation time
func (r *Recipe) Time() string {
	return r.time
}

// Calories returns the calorie count
func (r *Recipe) Calories() int {
	return r.calories
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Difficulty returns the recipe's difficulty level
func (r *Recipe) Difficulty() Difficulty {
	return r.difficulty
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// Tags returns the recipe's tags
func (r *Recipe) Tags() []string {
	return r.tags
}

// Ingredients returns the ingredient requirements in recipe order
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Recipe) UpdatedAt() time.Time {
	return r.updatedAt
}

// Details returns a copy of the recipe's mutable attributes
func (r *Recipe) Details() Details {
	return Details{
		Title:       r.title,
		Image:       r.image,
		Time:        r.time,
		Calories:    r.calories,
		Description: r.description,
		Difficulty:  r.difficulty,
		Servings:    r.servings,
		Tags:        append([]string(nil), r.tags...),
		Ingredients: append([]Ingredient(nil), r.ingredients...),
	}
}

// Events returns and clears pending domain events
func (r *Recipe) Events() []shared.DomainEvent {
	events := r.events
	r.events = []shared.DomainEvent{}
	return events
}

func (r *Recipe) addEvent(event shared.DomainEvent) {
	r.events = append(r.events, event)
}

func (r *Recipe) apply(d Details) {
	r.title = strings.TrimSpace(d.Title)
	r.image = d.Image
	r.time = strings.TrimSpace(d.Time)
	r.calories = d.Calories
	r.description = d.Description
	r.difficulty = d.Difficulty
	r.servings = d.Servings
	r.tags = normalizeTags(d.Tags)
	r.ingredients = append([]Ingredient(nil), d.Ingredients...)
}

func withDefaults(d Details) Details {
	if strings.TrimSpace(d.Image) == "" {
		d.Image = DefaultImage
	}
	if d.Difficulty == "" {
		d.Difficulty = DefaultDifficulty
	}
	if d.Servings == 0 {
		d.Servings = DefaultServings
	}
	return d
}

func validateDetails(d Details) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return ErrTitleRequired
	}
	if len(title) > 200 {
		return ErrTitleTooLong
	}
	if len(d.Description) > 2000 {
		return ErrDescriptionTooLong
	}
	if strings.TrimSpace(d.Time) == "" {
		return ErrTimeRequired
	}
	if d.Calories < 0 {
		return ErrInvalidCalories
	}
	if d.Servings < 1 {
		return ErrInvalidServings
	}
	if !d.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}
	for _, ing := range d.Ingredients {
		if err := ing.Validate(); err != nil {
			return err
		}
	}
	return nil
}
