package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PantryService manages a user's pantry. Every mutation returns the full pantry.
type PantryService interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]PantryItemDTO, error)
	AddItem(ctx context.Context, userID uuid.UUID, cmd PantryItemCommand) ([]PantryItemDTO, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, cmd PantryItemCommand) ([]PantryItemDTO, error)
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) ([]PantryItemDTO, error)
}

// PantryItemCommand carries pantry item fields. On update, empty fields keep their values.
type PantryItemCommand struct {
	Name     string
	Category string
	Quantity string
	Expiry   string
	Color    string
}

// PantryItemDTO is the API representation of a pantry item
type PantryItemDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Quantity string    `json:"quantity"`
	Expiry   string    `json:"expiry"`
	Color    string    `json:"color"`
}

// PlannerService reads and replaces a user's weekly meal plan
type PlannerService interface {
	GetPlan(ctx context.Context, userID uuid.UUID) ([]MealEntryDTO, error)
	SavePlan(ctx context.Context, userID uuid.UUID, meals []MealEntryDTO) ([]MealEntryDTO, error)
}

// MealEntryDTO is one meal slot. ID may be empty on save.
type MealEntryDTO struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	RecipeID    string `json:"recipeId"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// OrderService manages a user's cooking orders
type OrderService interface {
	ListOrders(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	CreateOrder(ctx context.Context, userID uuid.UUID, cmd CreateOrderCommand) (*OrderDTO, error)
	UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, cmd UpdateOrderCommand) (*OrderDTO, error)
	DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error
}

// CreateOrderCommand contains data for scheduling an order
type CreateOrderCommand struct {
	Title          string
	Specifications string
	StartTime      time.Time
	EndTime        time.Time
	Duration       int
	Status         string
}

// UpdateOrderCommand is a partial order update
type UpdateOrderCommand struct {
	Title          *string
	Specifications *string
	StartTime      *time.Time
	EndTime        *time.Time
	Duration       *int
	Status         *string
}

// OrderDTO is the API representation of an order
type OrderDTO struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Specifications string    `json:"specifications"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Duration       int       `json:"duration"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// DashboardService aggregates the home screen summary
type DashboardService interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*DashboardDTO, error)
}

// DashboardDTO is the home screen summary
type DashboardDTO struct {
	PantryCount  int               `json:"pantryCount"`
	RecipeCount  int               `json:"recipeCount"`
	MealsPlanned int               `json:"mealsPlanned"`
	AverageMatch int               `json:"averageMatch"`
	BestMatches  []RankedRecipeDTO `json:"bestMatches"`
	ExpiringSoon []PantryItemDTO   `json:"expiringSoon"`
}
