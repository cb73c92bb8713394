// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
package outbound

import (
	"context"
	"errors"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/google/uuid"
)

// ErrCacheMiss is returned by CacheRepository.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// RecipeRepository persists the global recipe catalog
type RecipeRepository interface {
	Create(ctx context.Context, recipe *recipe.Recipe) error
	Update(ctx context.Context, recipe *recipe.Recipe) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)

	// FindAll returns the whole catalog in insertion order
	FindAll(ctx context.Context) ([]*recipe.Recipe, error)
	Count(ctx context.Context) (int64, error)

	// ReplaceAll swaps the entire catalog in one transaction
	ReplaceAll(ctx context.Context, recipes []*recipe.Recipe) error
	BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error
}

// PantryRepository persists pantry items, always scoped to their owner
type PantryRepository interface {
	Create(ctx context.Context, item *pantry.Item) error
	Update(ctx context.Context, item *pantry.Item) error
	Delete(ctx context.Context, ownerID, itemID uuid.UUID) error
	FindByID(ctx context.Context, ownerID, itemID uuid.UUID) (*pantry.Item, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error)
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
	ReplaceForOwner(ctx context.Context, ownerID uuid.UUID, items []*pantry.Item) error
}

// MealPlanRepository persists one weekly plan per user
type MealPlanRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*planner.WeeklyPlan, error)
	// Save upserts the plan and replaces all of its entries in one transaction
	Save(ctx context.Context, plan *planner.WeeklyPlan) error
}

// OrderRepository persists cooking orders
type OrderRepository interface {
	Create(ctx context.Context, order *order.Order) error
	Update(ctx context.Context, order *order.Order) error
	Delete(ctx context.Context, userID, orderID uuid.UUID) error
	FindByID(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error)
	// FindByUser returns orders sorted by start time ascending
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
}

// UserRepository persists user accounts
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	Update(ctx context.Context, user *user.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}
