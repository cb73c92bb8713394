package testutils

import (
	"context"

	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService provides a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

var _ inbound.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(ctx context.Context, cmd inbound.RegisterCommand) (*inbound.AuthResultDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.AuthResultDTO), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, cmd inbound.LoginCommand) (*inbound.AuthResultDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.AuthResultDTO), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	return m.Called(ctx, userID, oldPassword, newPassword).Error(0)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd inbound.UpdateProfileCommand) (*inbound.UserDTO, error) {
	args := m.Called(ctx, userID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.UserDTO), args.Error(1)
}

// MockPantryService provides a mock implementation of PantryService
type MockPantryService struct {
	mock.Mock
}

var _ inbound.PantryService = (*MockPantryService)(nil)

func (m *MockPantryService) ListItems(ctx context.Context, userID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PantryItemDTO), args.Error(1)
}

func (m *MockPantryService) AddItem(ctx context.Context, userID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	args := m.Called(ctx, userID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PantryItemDTO), args.Error(1)
}

func (m *MockPantryService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, cmd inbound.PantryItemCommand) ([]inbound.PantryItemDTO, error) {
	args := m.Called(ctx, userID, itemID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PantryItemDTO), args.Error(1)
}

func (m *MockPantryService) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) ([]inbound.PantryItemDTO, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.PantryItemDTO), args.Error(1)
}

// MockRecipeService provides a mock implementation of RecipeService
type MockRecipeService struct {
	mock.Mock
}

var _ inbound.RecipeService = (*MockRecipeService)(nil)

func (m *MockRecipeService) CreateRecipe(ctx context.Context, cmd inbound.RecipeCommand) (*inbound.RecipeDTO, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.RecipeDTO), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, cmd inbound.RecipeCommand) (*inbound.RecipeDTO, error) {
	args := m.Called(ctx, recipeID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.RecipeDTO), args.Error(1)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	return m.Called(ctx, recipeID).Error(0)
}

func (m *MockRecipeService) SeedCatalog(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.RecipeDTO), args.Error(1)
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]inbound.RecipeDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.RecipeDTO), args.Error(1)
}

func (m *MockRecipeService) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]inbound.RankedRecipeDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.RankedRecipeDTO), args.Error(1)
}

// MockPlannerService provides a mock implementation of PlannerService
type MockPlannerService struct {
	mock.Mock
}

var _ inbound.PlannerService = (*MockPlannerService)(nil)

func (m *MockPlannerService) GetPlan(ctx context.Context, userID uuid.UUID) ([]inbound.MealEntryDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.MealEntryDTO), args.Error(1)
}

func (m *MockPlannerService) SavePlan(ctx context.Context, userID uuid.UUID, meals []inbound.MealEntryDTO) ([]inbound.MealEntryDTO, error) {
	args := m.Called(ctx, userID, meals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.MealEntryDTO), args.Error(1)
}

// MockDashboardService provides a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

var _ inbound.DashboardService = (*MockDashboardService)(nil)

func (m *MockDashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*inbound.DashboardDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.DashboardDTO), args.Error(1)
}

// MockOrderService provides a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

var _ inbound.OrderService = (*MockOrderService)(nil)

func (m *MockOrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]inbound.OrderDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.OrderDTO), args.Error(1)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userID uuid.UUID, cmd inbound.CreateOrderCommand) (*inbound.OrderDTO, error) {
	args := m.Called(ctx, userID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.OrderDTO), args.Error(1)
}

func (m *MockOrderService) UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, cmd inbound.UpdateOrderCommand) (*inbound.OrderDTO, error) {
	args := m.Called(ctx, userID, orderID, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inbound.OrderDTO), args.Error(1)
}

func (m *MockOrderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	return m.Called(ctx, userID, orderID).Error(0)
}

// MockAssistantService provides a mock implementation of AssistantService
type MockAssistantService struct {
	mock.Mock
}

var _ inbound.AssistantService = (*MockAssistantService)(nil)

func (m *MockAssistantService) Chat(ctx context.Context, message string) (string, error) {
	args := m.Called(ctx, message)
	return args.String(0), args.Error(1)
}

func (m *MockAssistantService) SuggestDish(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

func (m *MockAssistantService) SearchVideos(ctx context.Context, query string) ([]inbound.VideoDTO, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inbound.VideoDTO), args.Error(1)
}

func (m *MockAssistantService) Substitute(ctx context.Context, ingredient string) inbound.SubstitutionDTO {
	return m.Called(ctx, ingredient).Get(0).(inbound.SubstitutionDTO)
}
