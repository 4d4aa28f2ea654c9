package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/checkout"
)

// CheckoutSessionRepository persists the in-progress checkout session per
// shopper. The session itself is a value; the repository only stores the
// result of pure transitions applied elsewhere.
type CheckoutSessionRepository interface {
	Get(ctx context.Context, userID int64) (*checkout.Session, error)
	Save(ctx context.Context, userID int64, session checkout.Session) error
	Delete(ctx context.Context, userID int64) error
}
