package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CartUseCase manages the shopper's cart: lines, promo code, totals.
type CartUseCase struct {
	carts repository.CartRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository) *CartUseCase {
	return &CartUseCase{carts: carts}
}

// Items returns the current cart lines.
func (u *CartUseCase) Items(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return u.carts.Items(ctx, userID)
}

// Summary returns totals computed by the cart store.
func (u *CartUseCase) Summary(ctx context.Context, userID int64) (*model.CartSummary, error) {
	return u.carts.Summary(ctx, userID)
}

// AddItem appends a line to the cart.
func (u *CartUseCase) AddItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error) {
	if item.ProductID == "" || item.Quantity <= 0 {
		return nil, domainErrors.ErrInvalidQuantity
	}
	return u.carts.AddItem(ctx, userID, item)
}

// UpdateQuantity changes a line's quantity. Zero or negative is rejected;
// removal is an explicit operation.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) error {
	if quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}
	return u.carts.UpdateQuantity(ctx, userID, itemID, quantity)
}

// RemoveItem drops a line from the cart.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID int64, itemID string) error {
	return u.carts.RemoveItem(ctx, userID, itemID)
}

// ApplyPromo attaches a promo code to the cart.
func (u *CartUseCase) ApplyPromo(ctx context.Context, userID int64, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return domainErrors.ErrInvalidPromoCode
	}
	return u.carts.ApplyPromo(ctx, userID, model.PromoCode{Code: code})
}

// RemovePromo detaches the promo code from the cart.
func (u *CartUseCase) RemovePromo(ctx context.Context, userID int64) error {
	return u.carts.RemovePromo(ctx, userID)
}
