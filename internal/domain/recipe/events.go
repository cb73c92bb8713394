package recipe

import (
	"time"

	"github.com/google/uuid"
)

// RecipeCreatedEvent is raised when a new recipe enters the catalog
type RecipeCreatedEvent struct {
	RecipeID  uuid.UUID
	Title     string
	CreatedAt time.Time
}

func (e RecipeCreatedEvent) EventName() string {
	return "recipe.created"
}

func (e RecipeCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// RecipeUpdatedEvent is raised when a recipe is replaced
type RecipeUpdatedEvent struct {
	RecipeID  uuid.UUID
	UpdatedAt time.Time
}

func (e RecipeUpdatedEvent) EventName() string {
	return "recipe.updated"
}

func (e RecipeUpdatedEvent) OccurredAt() time.Time {
	return e.UpdatedAt
}

// RecipeDeletedEvent is raised when a recipe leaves the catalog
type RecipeDeletedEvent struct {
	RecipeID  uuid.UUID
	DeletedAt time.Time
}

func (e RecipeDeletedEvent) EventName() string {
	return "recipe.deleted"
}

func (e RecipeDeletedEvent) OccurredAt() time.Time {
	return e.DeletedAt
}
