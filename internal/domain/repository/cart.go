package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// CartRepository is the cart collaborator: it owns line items, the applied
// promo code, and the computed summary. Checkout reads from it and clears
// it after a confirmed submission.
type CartRepository interface {
	Items(ctx context.Context, userID int64) ([]model.CartItem, error)
	Summary(ctx context.Context, userID int64) (*model.CartSummary, error)
	AddItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID int64, itemID string, quantity int) error
	RemoveItem(ctx context.Context, userID int64, itemID string) error
	ApplyPromo(ctx context.Context, userID int64, promo model.PromoCode) error
	RemovePromo(ctx context.Context, userID int64) error
	Clear(ctx context.Context, userID int64) error
}
