package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderRepository mirrors orders created by the intake system so they can
// be listed and their timelines derived without a round trip upstream.
type OrderRepository interface {
	Upsert(ctx context.Context, order model.Order) (*model.Order, error)
	GetByNumber(ctx context.Context, userID int64, number string) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	SelectBatchForRefresh(ctx context.Context, limit int) ([]model.Order, error)
	ApplyUpdate(ctx context.Context, update model.OrderStatusUpdate) error
}
