package handlers

import (
	"net/http"
	"time"

	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"go.uber.org/zap"
)

// OrderAPIHandlers handles cooking order requests
type OrderAPIHandlers struct {
	orderService inbound.OrderService
	logger       *zap.Logger
}

// NewOrderAPIHandlers creates a new order API handlers instance
func NewOrderAPIHandlers(orderService inbound.OrderService, logger *zap.Logger) *OrderAPIHandlers {
	return &OrderAPIHandlers{
		orderService: orderService,
		logger:       logger.Named("order-api"),
	}
}

// CreateOrderRequest schedules a cooking order. Times are RFC3339.
type CreateOrderRequest struct {
	Title          string    `json:"title" validate:"required,max=200"`
	Specifications string    `json:"specifications"`
	StartTime      time.Time `json:"startTime" validate:"required"`
	EndTime        time.Time `json:"endTime" validate:"required"`
	Duration       int       `json:"duration" validate:"gt=0"`
	Status         string    `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}

// UpdateOrderRequest is a partial order update
type UpdateOrderRequest struct {
	Title          *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Specifications *string    `json:"specifications"`
	StartTime      *time.Time `json:"startTime"`
	EndTime        *time.Time `json:"endTime"`
	Duration       *int       `json:"duration" validate:"omitempty,gt=0"`
	Status         *string    `json:"status" validate:"omitempty,oneof=pending in-progress completed"`
}

// ListOrders handles GET /api/orders
func (h *OrderAPIHandlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders
func (h *OrderAPIHandlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), userID, inbound.CreateOrderCommand{
		Title:          req.Title,
		Specifications: req.Specifications,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Duration:       req.Duration,
		Status:         req.Status,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// UpdateOrder handles PUT /api/orders/{id}
func (h *OrderAPIHandlers) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, errors.NewOrderNotFoundError)
	if !ok {
		return
	}

	var req UpdateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	order, err := h.orderService.UpdateOrder(r.Context(), userID, orderID, inbound.UpdateOrderCommand{
		Title:          req.Title,
		Specifications: req.Specifications,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		Duration:       req.Duration,
		Status:         req.Status,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderAPIHandlers) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	orderID, ok := pathID(w, r, errors.NewOrderNotFoundError)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(r.Context(), userID, orderID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Order removed"})
}
