// Package order provides the application layer for scheduled cooking orders
package order

import (
	"context"
	stderrors "errors"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService implements the cooking order use cases
type OrderService struct {
	orderRepo outbound.OrderRepository
	logger    *zap.Logger
}

var _ inbound.OrderService = (*OrderService)(nil)

// NewOrderService creates a new order service
func NewOrderService(orderRepo outbound.OrderRepository, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		logger:    logger.Named("order-service"),
	}
}

// ListOrders returns the user's orders by start time
func (s *OrderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]inbound.OrderDTO, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list orders", err)
	}

	dtos := make([]inbound.OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, *OrderToDTO(o))
	}
	return dtos, nil
}

// CreateOrder schedules a new order
func (s *OrderService) CreateOrder(ctx context.Context, userID uuid.UUID, cmd inbound.CreateOrderCommand) (*inbound.OrderDTO, error) {
	o, err := order.NewOrder(userID, order.Schedule{
		Title:          cmd.Title,
		Specifications: cmd.Specifications,
		StartTime:      cmd.StartTime,
		EndTime:        cmd.EndTime,
		Duration:       cmd.Duration,
		Status:         cmd.Status,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, errors.NewDatabaseError("create order", err)
	}

	s.logger.Info("Order scheduled",
		zap.String("user_id", userID.String()),
		zap.String("order_id", o.ID().String()),
		zap.Time("start", o.StartTime()),
	)
	return OrderToDTO(o), nil
}

// UpdateOrder applies a partial update
func (s *OrderService) UpdateOrder(ctx context.Context, userID, orderID uuid.UUID, cmd inbound.UpdateOrderCommand) (*inbound.OrderDTO, error) {
	o, err := s.orderRepo.FindByID(ctx, userID, orderID)
	if err != nil {
		return nil, translate(err, orderID, "find order")
	}

	if err := o.Apply(order.Patch{
		Title:          cmd.Title,
		Specifications: cmd.Specifications,
		StartTime:      cmd.StartTime,
		EndTime:        cmd.EndTime,
		Duration:       cmd.Duration,
		Status:         cmd.Status,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, translate(err, orderID, "update order")
	}

	s.logger.Info("Order updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", string(o.Status())),
	)
	return OrderToDTO(o), nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID uuid.UUID) error {
	if err := s.orderRepo.Delete(ctx, userID, orderID); err != nil {
		return translate(err, orderID, "delete order")
	}
	s.logger.Info("Order deleted", zap.String("order_id", orderID.String()))
	return nil
}

func translate(err error, orderID uuid.UUID, operation string) error {
	if stderrors.Is(err, order.ErrOrderNotFound) {
		return errors.NewOrderNotFoundError(orderID.String())
	}
	return errors.NewDatabaseError(operation, err)
}

// OrderToDTO converts an order to its API representation
func OrderToDTO(o *order.Order) *inbound.OrderDTO {
	return &inbound.OrderDTO{
		ID:             o.ID(),
		Title:          o.Title(),
		Specifications: o.Specifications(),
		StartTime:      o.StartTime(),
		EndTime:        o.EndTime(),
		Duration:       o.Duration(),
		Status:         string(o.Status()),
		CreatedAt:      o.CreatedAt(),
	}
}
