package handlers

import (
	"context"

	"github.com/polkiloo/storefront/internal/checkout"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CartFacade exposes cart operations over HTTP.
type CartFacade interface {
	CartItems(ctx context.Context, userID int64) ([]model.CartItem, error)
	CartSummary(ctx context.Context, userID int64) (*model.CartSummary, error)
	AddCartItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error)
	UpdateCartQuantity(ctx context.Context, userID int64, itemID string, quantity int) error
	RemoveCartItem(ctx context.Context, userID int64, itemID string) error
	ApplyPromo(ctx context.Context, userID int64, code string) error
	RemovePromo(ctx context.Context, userID int64) error
}

// CatalogFacade exposes the reference data checkout renders.
type CatalogFacade interface {
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	CreateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error)
	DeleteAddress(ctx context.Context, userID int64, id string) error
	PaymentMethods(ctx context.Context, userID int64) ([]model.PaymentMethod, error)
	ShippingOptions(ctx context.Context) ([]model.ShippingOption, error)
}

// CheckoutFacade exposes the checkout flow. Every transition returns the
// resulting session so handlers render one consistent view.
type CheckoutFacade interface {
	CheckoutSession(ctx context.Context, userID int64) (checkout.Session, error)
	SetShippingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error)
	SetShippingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error)
	SetBillingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error)
	SetBillingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error)
	SetSameAddress(ctx context.Context, userID int64, on bool) (checkout.Session, error)
	SelectShippingOption(ctx context.Context, userID int64, optionID string) (checkout.Session, error)
	SelectPickupPoint(ctx context.Context, userID int64, point model.PickupPoint) (checkout.Session, error)
	SelectPaymentMethod(ctx context.Context, userID int64, methodID string) (checkout.Session, error)
	SetNewCard(ctx context.Context, userID int64, on bool) (checkout.Session, error)
	SetSaveCard(ctx context.Context, userID int64, on bool) (checkout.Session, error)
	AcceptTerms(ctx context.Context, userID int64, on bool) (checkout.Session, error)
	NextStep(ctx context.Context, userID int64) (checkout.Session, error)
	PrevStep(ctx context.Context, userID int64) (checkout.Session, error)
	GoToStep(ctx context.Context, userID int64, step checkout.Step) (checkout.Session, error)
	CancelCheckout(ctx context.Context, userID int64) error
	PlaceOrder(ctx context.Context, userID int64) (*model.Order, error)
}

// OrderFacade exposes order history and detail views.
type OrderFacade interface {
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	OrderByNumber(ctx context.Context, userID int64, number string) (*model.Order, error)
	OrderTimeline(order model.Order) []model.TimelineStep
}

// ReturnFacade exposes return requests and their progress.
type ReturnFacade interface {
	CreateReturn(ctx context.Context, userID int64, orderNumber string, resolution model.Resolution, reason string) (*model.ReturnRequest, error)
	Returns(ctx context.Context, userID int64) ([]model.ReturnRequest, error)
	ReturnByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error)
	ReturnTimeline(req model.ReturnRequest) []model.TimelineStep
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CartFacade
	CatalogFacade
	CheckoutFacade
	OrderFacade
	ReturnFacade
}
