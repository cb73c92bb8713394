// Package testutils provides mock implementations for testing
package testutils

import (
	"context"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/user"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRecipeRepository provides a mock implementation of RecipeRepository
type MockRecipeRepository struct {
	mock.Mock
}

var _ outbound.RecipeRepository = (*MockRecipeRepository)(nil)

func (m *MockRecipeRepository) Create(ctx context.Context, r *recipe.Recipe) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecipeRepository) Update(ctx context.Context, r *recipe.Recipe) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]*recipe.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*recipe.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRecipeRepository) ReplaceAll(ctx context.Context, recipes []*recipe.Recipe) error {
	return m.Called(ctx, recipes).Error(0)
}

func (m *MockRecipeRepository) BulkCreate(ctx context.Context, recipes []*recipe.Recipe) error {
	return m.Called(ctx, recipes).Error(0)
}

// MockPantryRepository provides a mock implementation of PantryRepository
type MockPantryRepository struct {
	mock.Mock
}

var _ outbound.PantryRepository = (*MockPantryRepository)(nil)

func (m *MockPantryRepository) Create(ctx context.Context, item *pantry.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPantryRepository) Update(ctx context.Context, item *pantry.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockPantryRepository) Delete(ctx context.Context, ownerID, itemID uuid.UUID) error {
	return m.Called(ctx, ownerID, itemID).Error(0)
}

func (m *MockPantryRepository) FindByID(ctx context.Context, ownerID, itemID uuid.UUID) (*pantry.Item, error) {
	args := m.Called(ctx, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pantry.Item), args.Error(1)
}

func (m *MockPantryRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*pantry.Item, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pantry.Item), args.Error(1)
}

func (m *MockPantryRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPantryRepository) ReplaceForOwner(ctx context.Context, ownerID uuid.UUID, items []*pantry.Item) error {
	return m.Called(ctx, ownerID, items).Error(0)
}

// MockMealPlanRepository provides a mock implementation of MealPlanRepository
type MockMealPlanRepository struct {
	mock.Mock
}

var _ outbound.MealPlanRepository = (*MockMealPlanRepository)(nil)

func (m *MockMealPlanRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*planner.WeeklyPlan, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*planner.WeeklyPlan), args.Error(1)
}

func (m *MockMealPlanRepository) Save(ctx context.Context, plan *planner.WeeklyPlan) error {
	return m.Called(ctx, plan).Error(0)
}

// MockOrderRepository provides a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

var _ outbound.OrderRepository = (*MockOrderRepository)(nil)

func (m *MockOrderRepository) Create(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, userID, orderID uuid.UUID) error {
	return m.Called(ctx, userID, orderID).Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

// MockUserRepository provides a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

var _ outbound.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockChefAssistant provides a mock implementation of ChefAssistant
type MockChefAssistant struct {
	mock.Mock
}

var _ outbound.ChefAssistant = (*MockChefAssistant)(nil)

func (m *MockChefAssistant) Chat(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *MockChefAssistant) SuggestDish(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// MockVideoSearcher provides a mock implementation of VideoSearcher
type MockVideoSearcher struct {
	mock.Mock
}

var _ outbound.VideoSearcher = (*MockVideoSearcher)(nil)

func (m *MockVideoSearcher) Search(ctx context.Context, query string, maxResults int) ([]outbound.Video, error) {
	args := m.Called(ctx, query, maxResults)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]outbound.Video), args.Error(1)
}

// MockTokenIssuer provides a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

var _ outbound.TokenIssuer = (*MockTokenIssuer)(nil)

func (m *MockTokenIssuer) Issue(userID uuid.UUID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

// RecordingMetrics is a MetricsRecorder that remembers what it was told
type RecordingMetrics struct {
	Rankings        []RankingRecord
	RecipeEvents    []string
	Registrations   int
	CacheOperations map[string]int
}

// RankingRecord captures one RankingCompleted call
type RankingRecord struct {
	Source      string
	PantryNames int
	CatalogSize int
	Percentages []int
}

var _ outbound.MetricsRecorder = (*RecordingMetrics)(nil)

// NewRecordingMetrics creates an empty recorder
func NewRecordingMetrics() *RecordingMetrics {
	return &RecordingMetrics{CacheOperations: make(map[string]int)}
}

func (r *RecordingMetrics) RankingCompleted(source string, pantryNames, catalogSize int, percentages []int, _ time.Duration) {
	r.Rankings = append(r.Rankings, RankingRecord{
		Source:      source,
		PantryNames: pantryNames,
		CatalogSize: catalogSize,
		Percentages: percentages,
	})
}

func (r *RecordingMetrics) RecipeEvent(name string) {
	r.RecipeEvents = append(r.RecipeEvents, name)
}

func (r *RecordingMetrics) UserRegistered() {
	r.Registrations++
}

func (r *RecordingMetrics) CacheOperation(operation, status string) {
	r.CacheOperations[operation+":"+status]++
}
