package usecase

import (
	"context"
	"fmt"

	gocache "github.com/patrickmn/go-cache"

	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

const shippingOptionsKey = "shipping_options"

// CatalogUseCase serves the reference data checkout renders: the address
// book, saved payment methods and delivery options. Reads go through a
// TTL cache since this data changes rarely but is fetched on every step.
type CatalogUseCase struct {
	addresses       repository.AddressRepository
	paymentMethods  repository.PaymentMethodRepository
	shippingOptions repository.ShippingOptionRepository
	cache           *gocache.Cache
}

// NewCatalogUseCase constructs CatalogUseCase with the cache TTL from config.
func NewCatalogUseCase(
	addresses repository.AddressRepository,
	paymentMethods repository.PaymentMethodRepository,
	shippingOptions repository.ShippingOptionRepository,
	cfg *config.Config,
) *CatalogUseCase {
	ttl := cfg.CatalogCacheTTL
	return &CatalogUseCase{
		addresses:       addresses,
		paymentMethods:  paymentMethods,
		shippingOptions: shippingOptions,
		cache:           gocache.New(ttl, 2*ttl),
	}
}

// Addresses returns the shopper's saved addresses.
func (u *CatalogUseCase) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	key := addressesKey(userID)
	if cached, ok := u.cache.Get(key); ok {
		return cached.([]model.Address), nil
	}
	addrs, err := u.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.cache.SetDefault(key, addrs)
	return addrs, nil
}

// AddressByID fetches one saved address respecting ownership.
func (u *CatalogUseCase) AddressByID(ctx context.Context, userID int64, id string) (*model.Address, error) {
	return u.addresses.GetByID(ctx, userID, id)
}

// CreateAddress stores a new address and invalidates the shopper's cache.
func (u *CatalogUseCase) CreateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	addr.UserID = userID
	created, err := u.addresses.Create(ctx, addr)
	if err != nil {
		return nil, err
	}
	u.cache.Delete(addressesKey(userID))
	return created, nil
}

// DeleteAddress removes a saved address and invalidates the shopper's cache.
func (u *CatalogUseCase) DeleteAddress(ctx context.Context, userID int64, id string) error {
	if err := u.addresses.Delete(ctx, userID, id); err != nil {
		return err
	}
	u.cache.Delete(addressesKey(userID))
	return nil
}

// PaymentMethods returns the shopper's saved payment methods.
func (u *CatalogUseCase) PaymentMethods(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	key := paymentMethodsKey(userID)
	if cached, ok := u.cache.Get(key); ok {
		return cached.([]model.PaymentMethod), nil
	}
	methods, err := u.paymentMethods.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.cache.SetDefault(key, methods)
	return methods, nil
}

// PaymentMethodByID fetches one saved method respecting ownership.
func (u *CatalogUseCase) PaymentMethodByID(ctx context.Context, userID int64, id string) (*model.PaymentMethod, error) {
	return u.paymentMethods.GetByID(ctx, userID, id)
}

// ShippingOptions returns every offered delivery method.
func (u *CatalogUseCase) ShippingOptions(ctx context.Context) ([]model.ShippingOption, error) {
	if cached, ok := u.cache.Get(shippingOptionsKey); ok {
		return cached.([]model.ShippingOption), nil
	}
	options, err := u.shippingOptions.List(ctx)
	if err != nil {
		return nil, err
	}
	u.cache.SetDefault(shippingOptionsKey, options)
	return options, nil
}

// ShippingOptionByID fetches one delivery method.
func (u *CatalogUseCase) ShippingOptionByID(ctx context.Context, id string) (*model.ShippingOption, error) {
	return u.shippingOptions.GetByID(ctx, id)
}

func addressesKey(userID int64) string {
	return fmt.Sprintf("addresses:%d", userID)
}

func paymentMethodsKey(userID int64) string {
	return fmt.Sprintf("payment_methods:%d", userID)
}
