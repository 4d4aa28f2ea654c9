package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// AddressRepository provides access to the shopper's saved addresses.
type AddressRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.Address, error)
	GetByID(ctx context.Context, userID int64, id string) (*model.Address, error)
	Create(ctx context.Context, addr model.Address) (*model.Address, error)
	Delete(ctx context.Context, userID int64, id string) error
}

// PaymentMethodRepository provides access to saved payment methods.
// Read-only from checkout's perspective: card capture happens upstream.
type PaymentMethodRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.PaymentMethod, error)
	GetByID(ctx context.Context, userID int64, id string) (*model.PaymentMethod, error)
}

// ShippingOptionRepository lists the delivery methods offered at checkout.
type ShippingOptionRepository interface {
	List(ctx context.Context) ([]model.ShippingOption, error)
	GetByID(ctx context.Context, id string) (*model.ShippingOption, error)
}
