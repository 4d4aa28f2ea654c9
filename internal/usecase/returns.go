package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
	"github.com/polkiloo/storefront/internal/timeline"
)

// ReturnUseCase opens return requests against delivered orders and serves
// their progress.
type ReturnUseCase struct {
	returns repository.ReturnRepository
	orders  repository.OrderRepository
}

// NewReturnUseCase constructs ReturnUseCase.
func NewReturnUseCase(returns repository.ReturnRepository, orders repository.OrderRepository) *ReturnUseCase {
	return &ReturnUseCase{returns: returns, orders: orders}
}

// Create opens a return request for one of the shopper's orders. The order
// must exist and belong to the shopper; the requested resolution decides
// how the return concludes.
func (u *ReturnUseCase) Create(ctx context.Context, userID int64, orderNumber string, resolution model.Resolution, reason string) (*model.ReturnRequest, error) {
	switch resolution {
	case model.ResolutionRefund, model.ResolutionExchange:
	default:
		return nil, domainErrors.ErrInvalidResolution
	}
	if _, err := u.orders.GetByNumber(ctx, userID, orderNumber); err != nil {
		return nil, err
	}
	return u.returns.Create(ctx, model.ReturnRequest{
		UserID:      userID,
		OrderNumber: orderNumber,
		Status:      model.ReturnStatusPending,
		Resolution:  resolution,
		Reason:      strings.TrimSpace(reason),
	})
}

// ListByUser returns the shopper's return requests.
func (u *ReturnUseCase) ListByUser(ctx context.Context, userID int64) ([]model.ReturnRequest, error) {
	return u.returns.ListByUser(ctx, userID)
}

// GetByID returns one request respecting ownership.
func (u *ReturnUseCase) GetByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error) {
	return u.returns.GetByID(ctx, userID, id)
}

// Timeline derives the progress steps for a return request.
func (u *ReturnUseCase) Timeline(req model.ReturnRequest) []model.TimelineStep {
	return timeline.ForReturn(req)
}

// SelectBatchForRefresh returns open requests for the refresh worker.
func (u *ReturnUseCase) SelectBatchForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error) {
	return u.returns.SelectBatchForRefresh(ctx, limit)
}

// ApplyUpdate persists a status refresh reported by the intake system.
func (u *ReturnUseCase) ApplyUpdate(ctx context.Context, update model.ReturnStatusUpdate) error {
	return u.returns.ApplyUpdate(ctx, update)
}
