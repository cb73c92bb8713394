// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/google/uuid"
)

// TestPassword is the plain-text password of every factory-built user
const TestPassword = "secret123"

// RecipeBuilder provides a fluent interface for building test recipes
type RecipeBuilder struct {
	details recipe.Details
}

// NewRecipeBuilder creates a new recipe builder with default values
func NewRecipeBuilder() *RecipeBuilder {
	faker := gofakeit.New(0)

	return &RecipeBuilder{
		details: recipe.Details{
			Title:       faker.Dessert() + " " + faker.Noun(),
			Time:        fmt.Sprintf("%d mins", faker.Number(5, 90)),
			Calories:    faker.Number(100, 900),
			Description: faker.Sentence(12),
			Difficulty:  recipe.DifficultyMedium,
			Servings:    faker.Number(1, 6),
			Tags:        []string{"test"},
			Ingredients: []recipe.Ingredient{
				{Name: faker.Vegetable(), Amount: "1"},
				{Name: faker.Fruit(), Amount: "2"},
			},
		},
	}
}

// WithTitle sets the recipe title
func (rb *RecipeBuilder) WithTitle(title string) *RecipeBuilder {
	rb.details.Title = title
	return rb
}

// WithIngredients replaces the ingredients with the given names, each with amount "1"
func (rb *RecipeBuilder) WithIngredients(names ...string) *RecipeBuilder {
	rb.details.Ingredients = make([]recipe.Ingredient, 0, len(names))
	for _, name := range names {
		rb.details.Ingredients = append(rb.details.Ingredients, recipe.Ingredient{Name: name, Amount: "1"})
	}
	return rb
}

// WithCalories sets the calories
func (rb *RecipeBuilder) WithCalories(calories int) *RecipeBuilder {
	rb.details.Calories = calories
	return rb
}

// WithDifficulty sets the difficulty
func (rb *RecipeBuilder) WithDifficulty(d recipe.Difficulty) *RecipeBuilder {
	rb.details.Difficulty = d
	return rb
}

// Details returns the attributes the builder would create a recipe with
func (rb *RecipeBuilder) Details() recipe.Details {
	return rb.details
}

// Build builds the recipe
func (rb *RecipeBuilder) Build() (*recipe.Recipe, error) {
	return recipe.NewRecipe(rb.details)
}

// MustBuild builds the recipe and drains its creation event
func (rb *RecipeBuilder) MustBuild() *recipe.Recipe {
	r, err := rb.Build()
	if err != nil {
		panic(err)
	}
	r.Events()
	return r
}

// PantryItemBuilder provides a fluent interface for building pantry items
type PantryItemBuilder struct {
	ownerID  uuid.UUID
	name     string
	category string
	quantity string
	expiry   string
	color    string
}

// NewPantryItemBuilder creates a pantry item builder for the given owner
func NewPantryItemBuilder(ownerID uuid.UUID) *PantryItemBuilder {
	faker := gofakeit.New(0)

	return &PantryItemBuilder{
		ownerID:  ownerID,
		name:     faker.Vegetable(),
		category: string(pantry.CategoryProduce),
		quantity: fmt.Sprintf("%dg", faker.Number(50, 1000)),
		expiry:   time.Now().AddDate(0, 0, 14).Format(time.RFC3339),
		color:    "bg-green-100 text-green-700",
	}
}

// WithName sets the item name
func (pb *PantryItemBuilder) WithName(name string) *PantryItemBuilder {
	pb.name = name
	return pb
}

// WithCategory sets the category label
func (pb *PantryItemBuilder) WithCategory(category string) *PantryItemBuilder {
	pb.category = category
	return pb
}

// ExpiringIn sets the expiry to now plus d
func (pb *PantryItemBuilder) ExpiringIn(d time.Duration) *PantryItemBuilder {
	pb.expiry = time.Now().Add(d).Format(time.RFC3339)
	return pb
}

// WithExpiry sets the raw expiry text
func (pb *PantryItemBuilder) WithExpiry(expiry string) *PantryItemBuilder {
	pb.expiry = expiry
	return pb
}

// Build builds the pantry item
func (pb *PantryItemBuilder) Build() (*pantry.Item, error) {
	return pantry.NewItem(pb.ownerID, pb.name, pb.category, pb.quantity, pb.expiry, pb.color)
}

// MustBuild builds the pantry item or panics
func (pb *PantryItemBuilder) MustBuild() *pantry.Item {
	item, err := pb.Build()
	if err != nil {
		panic(err)
	}
	return item
}

// PantryItems builds one item per name for the owner
func PantryItems(ownerID uuid.UUID, names ...string) []*pantry.Item {
	items := make([]*pantry.Item, 0, len(names))
	for _, name := range names {
		items = append(items, NewPantryItemBuilder(ownerID).WithName(name).MustBuild())
	}
	return items
}

// UserBuilder provides a fluent interface for building test users
type UserBuilder struct {
	email    string
	name     string
	password string
}

// NewUserBuilder creates a new user builder with default values
func NewUserBuilder() *UserBuilder {
	faker := gofakeit.New(0)

	return &UserBuilder{
		email:    faker.Email(),
		name:     faker.Name(),
		password: TestPassword,
	}
}

// WithEmail sets the email
func (ub *UserBuilder) WithEmail(email string) *UserBuilder {
	ub.email = email
	return ub
}

// WithName sets the display name
func (ub *UserBuilder) WithName(name string) *UserBuilder {
	ub.name = name
	return ub
}

// WithPassword sets the plain-text password
func (ub *UserBuilder) WithPassword(password string) *UserBuilder {
	ub.password = password
	return ub
}

// Build builds the user with the cheapest bcrypt cost
func (ub *UserBuilder) Build() (*user.User, error) {
	return user.NewUser(ub.email, ub.name, ub.password, 4)
}

// MustBuild builds the user or panics
func (ub *UserBuilder) MustBuild() *user.User {
	u, err := ub.Build()
	if err != nil {
		panic(err)
	}
	return u
}

// NewTestOrder builds a pending order starting at start and lasting an hour
func NewTestOrder(userID uuid.UUID, title string, start time.Time) *order.Order {
	o, err := order.NewOrder(userID, order.Schedule{
		Title:          title,
		Specifications: gofakeit.Sentence(6),
		StartTime:      start,
		EndTime:        start.Add(time.Hour),
		Duration:       60,
	})
	if err != nil {
		panic(err)
	}
	return o
}
