package order

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type OrderServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	userID  uuid.UUID
	start   time.Time
	repo    *testutils.MockOrderRepository
	service *OrderService
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.userID = uuid.New()
	suite.start = time.Date(2026, 5, 4, 17, 0, 0, 0, time.UTC)
	suite.repo = new(testutils.MockOrderRepository)
	suite.service = NewOrderService(suite.repo, zap.NewNop())
}

func (suite *OrderServiceTestSuite) TearDownTest() {
	suite.repo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder() {
	suite.Run("DefaultsToPending", func() {
		suite.repo.On("Create", suite.ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

		dto, err := suite.service.CreateOrder(suite.ctx, suite.userID, inbound.CreateOrderCommand{
			Title:          "Sunday roast",
			Specifications: "less salt",
			StartTime:      suite.start,
			EndTime:        suite.start.Add(2 * time.Hour),
			Duration:       120,
		})

		suite.Require().NoError(err)
		suite.Equal("Sunday roast", dto.Title)
		suite.Equal("pending", dto.Status)
		suite.Equal(120, dto.Duration)
	})

	suite.Run("EndBeforeStart", func() {
		_, err := suite.service.CreateOrder(suite.ctx, suite.userID, inbound.CreateOrderCommand{
			Title:     "Backwards",
			StartTime: suite.start,
			EndTime:   suite.start.Add(-time.Hour),
			Duration:  30,
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeValidationFailed)
	})

	suite.Run("UnknownStatus", func() {
		_, err := suite.service.CreateOrder(suite.ctx, suite.userID, inbound.CreateOrderCommand{
			Title:     "Odd",
			StartTime: suite.start,
			EndTime:   suite.start.Add(time.Hour),
			Duration:  60,
			Status:    "cancelled",
		})

		testutils.AssertAppError(suite.T(), err, errors.CodeValidationFailed)
	})
}

func (suite *OrderServiceTestSuite) TestListOrders() {
	first := testutils.NewTestOrder(suite.userID, "Breakfast prep", suite.start)
	second := testutils.NewTestOrder(suite.userID, "Dinner prep", suite.start.Add(8*time.Hour))
	suite.repo.On("FindByUser", suite.ctx, suite.userID).Return([]*order.Order{first, second}, nil).Once()

	orders, err := suite.service.ListOrders(suite.ctx, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.Equal("Breakfast prep", orders[0].Title)
	suite.Equal(second.ID(), orders[1].ID)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder() {
	suite.Run("AppliesStatus", func() {
		o := testutils.NewTestOrder(suite.userID, "Meal prep", suite.start)
		status := "in-progress"
		suite.repo.On("FindByID", suite.ctx, suite.userID, o.ID()).Return(o, nil).Once()
		suite.repo.On("Update", suite.ctx, o).Return(nil).Once()

		dto, err := suite.service.UpdateOrder(suite.ctx, suite.userID, o.ID(), inbound.UpdateOrderCommand{Status: &status})

		suite.Require().NoError(err)
		suite.Equal("in-progress", dto.Status)
		suite.Equal("Meal prep", dto.Title)
	})

	suite.Run("InvalidDurationLeavesOrder", func() {
		o := testutils.NewTestOrder(suite.userID, "Meal prep", suite.start)
		zero := 0
		suite.repo.On("FindByID", suite.ctx, suite.userID, o.ID()).Return(o, nil).Once()

		_, err := suite.service.UpdateOrder(suite.ctx, suite.userID, o.ID(), inbound.UpdateOrderCommand{Duration: &zero})

		testutils.AssertAppError(suite.T(), err, errors.CodeValidationFailed)
		suite.Equal(60, o.Duration())
	})

	suite.Run("NotFound", func() {
		id := uuid.New()
		suite.repo.On("FindByID", suite.ctx, suite.userID, id).Return(nil, order.ErrOrderNotFound).Once()

		_, err := suite.service.UpdateOrder(suite.ctx, suite.userID, id, inbound.UpdateOrderCommand{})

		testutils.AssertAppError(suite.T(), err, errors.CodeOrderNotFound)
	})
}

func (suite *OrderServiceTestSuite) TestDeleteOrder() {
	suite.Run("NotFound", func() {
		id := uuid.New()
		suite.repo.On("Delete", suite.ctx, suite.userID, id).Return(order.ErrOrderNotFound).Once()

		err := suite.service.DeleteOrder(suite.ctx, suite.userID, id)

		testutils.AssertAppError(suite.T(), err, errors.CodeOrderNotFound)
	})

	suite.Run("StoreFailure", func() {
		id := uuid.New()
		suite.repo.On("Delete", suite.ctx, suite.userID, id).Return(stderrors.New("disk full")).Once()

		err := suite.service.DeleteOrder(suite.ctx, suite.userID, id)

		testutils.AssertAppError(suite.T(), err, errors.CodeDatabaseError)
	})
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
