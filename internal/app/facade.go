package app

import (
	"context"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/checkout"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/usecase"
)

// StorefrontFacade aggregates the use cases behind one surface consumed by
// the HTTP handlers and the refresh worker.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	cart     *usecase.CartUseCase
	catalog  *usecase.CatalogUseCase
	checkout *usecase.CheckoutUseCase
	orders   *usecase.OrderUseCase
	returns  *usecase.ReturnUseCase
	intake   intake.Client
}

// NewStorefrontFacade constructs the facade over the use cases.
func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	cart *usecase.CartUseCase,
	catalog *usecase.CatalogUseCase,
	co *usecase.CheckoutUseCase,
	orders *usecase.OrderUseCase,
	returns *usecase.ReturnUseCase,
	client intake.Client,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:     auth,
		cart:     cart,
		catalog:  catalog,
		checkout: co,
		orders:   orders,
		returns:  returns,
		intake:   client,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	return f.cart.Items(ctx, userID)
}

func (f *StorefrontFacade) CartSummary(ctx context.Context, userID int64) (*model.CartSummary, error) {
	return f.cart.Summary(ctx, userID)
}

func (f *StorefrontFacade) AddCartItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error) {
	return f.cart.AddItem(ctx, userID, item)
}

func (f *StorefrontFacade) UpdateCartQuantity(ctx context.Context, userID int64, itemID string, quantity int) error {
	return f.cart.UpdateQuantity(ctx, userID, itemID, quantity)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID int64, itemID string) error {
	return f.cart.RemoveItem(ctx, userID, itemID)
}

func (f *StorefrontFacade) ApplyPromo(ctx context.Context, userID int64, code string) error {
	return f.cart.ApplyPromo(ctx, userID, code)
}

func (f *StorefrontFacade) RemovePromo(ctx context.Context, userID int64) error {
	return f.cart.RemovePromo(ctx, userID)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.catalog.Addresses(ctx, userID)
}

func (f *StorefrontFacade) CreateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	return f.catalog.CreateAddress(ctx, userID, addr)
}

func (f *StorefrontFacade) DeleteAddress(ctx context.Context, userID int64, id string) error {
	return f.catalog.DeleteAddress(ctx, userID, id)
}

func (f *StorefrontFacade) PaymentMethods(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	return f.catalog.PaymentMethods(ctx, userID)
}

func (f *StorefrontFacade) ShippingOptions(ctx context.Context) ([]model.ShippingOption, error) {
	return f.catalog.ShippingOptions(ctx)
}

func (f *StorefrontFacade) CheckoutSession(ctx context.Context, userID int64) (checkout.Session, error) {
	return f.checkout.Session(ctx, userID)
}

func (f *StorefrontFacade) SetShippingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return f.checkout.SetShippingAddress(ctx, userID, addr)
}

func (f *StorefrontFacade) SetShippingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	return f.checkout.SetShippingAddressByID(ctx, userID, addressID)
}

func (f *StorefrontFacade) SetBillingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return f.checkout.SetBillingAddress(ctx, userID, addr)
}

func (f *StorefrontFacade) SetBillingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	return f.checkout.SetBillingAddressByID(ctx, userID, addressID)
}

func (f *StorefrontFacade) SetSameAddress(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return f.checkout.SetSameAddress(ctx, userID, on)
}

func (f *StorefrontFacade) SelectShippingOption(ctx context.Context, userID int64, optionID string) (checkout.Session, error) {
	return f.checkout.SelectShippingOption(ctx, userID, optionID)
}

func (f *StorefrontFacade) SelectPickupPoint(ctx context.Context, userID int64, point model.PickupPoint) (checkout.Session, error) {
	return f.checkout.SelectPickupPoint(ctx, userID, point)
}

func (f *StorefrontFacade) SelectPaymentMethod(ctx context.Context, userID int64, methodID string) (checkout.Session, error) {
	return f.checkout.SelectPaymentMethod(ctx, userID, methodID)
}

func (f *StorefrontFacade) SetNewCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return f.checkout.SetNewCard(ctx, userID, on)
}

func (f *StorefrontFacade) SetSaveCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return f.checkout.SetSaveCard(ctx, userID, on)
}

func (f *StorefrontFacade) AcceptTerms(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return f.checkout.AcceptTerms(ctx, userID, on)
}

func (f *StorefrontFacade) NextStep(ctx context.Context, userID int64) (checkout.Session, error) {
	return f.checkout.Next(ctx, userID)
}

func (f *StorefrontFacade) PrevStep(ctx context.Context, userID int64) (checkout.Session, error) {
	return f.checkout.Back(ctx, userID)
}

func (f *StorefrontFacade) GoToStep(ctx context.Context, userID int64, step checkout.Step) (checkout.Session, error) {
	return f.checkout.GoTo(ctx, userID, step)
}

func (f *StorefrontFacade) CancelCheckout(ctx context.Context, userID int64) error {
	return f.checkout.Cancel(ctx, userID)
}

func (f *StorefrontFacade) PlaceOrder(ctx context.Context, userID int64) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, userID)
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) OrderByNumber(ctx context.Context, userID int64, number string) (*model.Order, error) {
	return f.orders.GetByNumber(ctx, userID, number)
}

func (f *StorefrontFacade) OrderTimeline(order model.Order) []model.TimelineStep {
	return f.orders.Timeline(order)
}

func (f *StorefrontFacade) CreateReturn(ctx context.Context, userID int64, orderNumber string, resolution model.Resolution, reason string) (*model.ReturnRequest, error) {
	return f.returns.Create(ctx, userID, orderNumber, resolution, reason)
}

func (f *StorefrontFacade) Returns(ctx context.Context, userID int64) ([]model.ReturnRequest, error) {
	return f.returns.ListByUser(ctx, userID)
}

func (f *StorefrontFacade) ReturnByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error) {
	return f.returns.GetByID(ctx, userID, id)
}

func (f *StorefrontFacade) ReturnTimeline(req model.ReturnRequest) []model.TimelineStep {
	return f.returns.Timeline(req)
}

func (f *StorefrontFacade) OrdersForRefresh(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForRefresh(ctx, limit)
}

func (f *StorefrontFacade) ApplyOrderUpdate(ctx context.Context, update model.OrderStatusUpdate) error {
	return f.orders.ApplyUpdate(ctx, update)
}

func (f *StorefrontFacade) ReturnsForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error) {
	return f.returns.SelectBatchForRefresh(ctx, limit)
}

func (f *StorefrontFacade) ApplyReturnUpdate(ctx context.Context, update model.ReturnStatusUpdate) error {
	return f.returns.ApplyUpdate(ctx, update)
}

func (f *StorefrontFacade) RefreshOrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error) {
	return f.intake.OrderStatus(ctx, number)
}

func (f *StorefrontFacade) RefreshReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error) {
	return f.intake.ReturnStatus(ctx, id)
}
