package usecase

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/timeline"
)

// OrderUseCase serves order history and detail views.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// ListByUser returns the shopper's orders, newest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// GetByNumber returns one order respecting ownership.
func (u *OrderUseCase) GetByNumber(ctx context.Context, userID int64, number string) (*model.Order, error) {
	return u.orders.GetByNumber(ctx, userID, number)
}

// Timeline derives the delivery progress steps for an order.
func (u *OrderUseCase) Timeline(order model.Order) []model.TimelineStep {
	return timeline.ForOrder(order)
}

// SelectBatchForRefresh returns non-terminal orders for the refresh worker.
func (u *OrderUseCase) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectBatchForRefresh(ctx, limit)
}

// ApplyUpdate persists a status refresh reported by the intake system.
func (u *OrderUseCase) ApplyUpdate(ctx context.Context, update model.OrderStatusUpdate) error {
	return u.orders.ApplyUpdate(ctx, update)
}
