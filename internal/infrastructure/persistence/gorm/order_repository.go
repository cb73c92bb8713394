package gorm

import (
	"context"
	"errors"

	"github.com/culinaryos/kitchen/internal/domain/order"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository implements the order repository interface using GORM
type OrderRepository struct {
	db *gorm.DB
}

var _ outbound.OrderRepository = (*OrderRepository)(nil)

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(OrderToModel(o)).Error
}

// Update updates an order the user owns
func (r *OrderRepository) Update(ctx context.Context, o *order.Order) error {
	model := OrderToModel(o)

	result := r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ? AND user_id = ?", model.ID, model.UserID).
		Select("title", "specifications", "start_time", "end_time", "duration", "status").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// Delete removes an order the user owns
func (r *OrderRepository) Delete(ctx context.Context, userID, orderID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&OrderModel{}, "id = ? AND user_id = ?", orderID, userID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

// FindByID finds an order the user owns
func (r *OrderRepository) FindByID(ctx context.Context, userID, orderID uuid.UUID) (*order.Order, error) {
	var model OrderModel

	result := r.db.WithContext(ctx).First(&model, "id = ? AND user_id = ?", orderID, userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, result.Error
	}

	return ModelToOrder(&model), nil
}

// FindByUser returns the user's orders by start time ascending
func (r *OrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	var models []OrderModel

	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = ModelToOrder(&models[i])
	}

	return orders, nil
}
