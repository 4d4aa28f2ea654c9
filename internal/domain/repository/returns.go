package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ReturnRepository stores return requests opened by shoppers and applies
// status updates reported by the intake system.
type ReturnRepository interface {
	Create(ctx context.Context, req model.ReturnRequest) (*model.ReturnRequest, error)
	GetByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ReturnRequest, error)
	SelectBatchForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error)
	ApplyUpdate(ctx context.Context, update model.ReturnStatusUpdate) error
}
