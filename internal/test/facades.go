package test

import (
	"context"
	"sync"

	"github.com/polkiloo/storefront/internal/checkout"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// IntakeClientStub simulates the order intake system.
type IntakeClientStub struct {
	SubmitFn       func(context.Context, int64, model.OrderPayload) (*model.Order, error)
	OrderStatusFn  func(context.Context, string) (*model.OrderStatusUpdate, error)
	ReturnStatusFn func(context.Context, string) (*model.ReturnStatusUpdate, error)

	mu        sync.Mutex
	Submitted []model.OrderPayload
}

// Submit records the payload and returns a confirmed order by default.
func (s *IntakeClientStub) Submit(ctx context.Context, userID int64, payload model.OrderPayload) (*model.Order, error) {
	s.mu.Lock()
	s.Submitted = append(s.Submitted, payload)
	s.mu.Unlock()
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, userID, payload)
	}
	return &model.Order{
		UserID: userID,
		Number: "SO-1",
		Status: model.OrderStatusConfirmed,
		Total:  payload.Total,
	}, nil
}

// OrderStatus delegates to the override or reports no change.
func (s *IntakeClientStub) OrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error) {
	if s.OrderStatusFn != nil {
		return s.OrderStatusFn(ctx, number)
	}
	return &model.OrderStatusUpdate{Number: number, Status: model.OrderStatusConfirmed}, nil
}

// ReturnStatus delegates to the override or reports no change.
func (s *IntakeClientStub) ReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error) {
	if s.ReturnStatusFn != nil {
		return s.ReturnStatusFn(ctx, id)
	}
	return &model.ReturnStatusUpdate{ID: id, Status: model.ReturnStatusPending}, nil
}

// CartFacadeStub simulates cart facade interactions for HTTP tests.
type CartFacadeStub struct {
	ItemsFn          func(context.Context, int64) ([]model.CartItem, error)
	SummaryFn        func(context.Context, int64) (*model.CartSummary, error)
	AddItemFn        func(context.Context, int64, model.CartItem) (*model.CartItem, error)
	UpdateQuantityFn func(context.Context, int64, string, int) error
	RemoveItemFn     func(context.Context, int64, string) error
	ApplyPromoFn     func(context.Context, int64, string) error
	RemovePromoFn    func(context.Context, int64) error
}

func (s CartFacadeStub) CartItems(ctx context.Context, userID int64) ([]model.CartItem, error) {
	if s.ItemsFn != nil {
		return s.ItemsFn(ctx, userID)
	}
	return nil, nil
}

func (s CartFacadeStub) CartSummary(ctx context.Context, userID int64) (*model.CartSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, userID)
	}
	return &model.CartSummary{}, nil
}

func (s CartFacadeStub) AddCartItem(ctx context.Context, userID int64, item model.CartItem) (*model.CartItem, error) {
	if s.AddItemFn != nil {
		return s.AddItemFn(ctx, userID, item)
	}
	item.ID = "line-1"
	return &item, nil
}

func (s CartFacadeStub) UpdateCartQuantity(ctx context.Context, userID int64, itemID string, quantity int) error {
	if s.UpdateQuantityFn != nil {
		return s.UpdateQuantityFn(ctx, userID, itemID, quantity)
	}
	return nil
}

func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID int64, itemID string) error {
	if s.RemoveItemFn != nil {
		return s.RemoveItemFn(ctx, userID, itemID)
	}
	return nil
}

func (s CartFacadeStub) ApplyPromo(ctx context.Context, userID int64, code string) error {
	if s.ApplyPromoFn != nil {
		return s.ApplyPromoFn(ctx, userID, code)
	}
	return nil
}

func (s CartFacadeStub) RemovePromo(ctx context.Context, userID int64) error {
	if s.RemovePromoFn != nil {
		return s.RemovePromoFn(ctx, userID)
	}
	return nil
}

// CatalogFacadeStub simulates reference data lookups for HTTP tests.
type CatalogFacadeStub struct {
	AddressesFn       func(context.Context, int64) ([]model.Address, error)
	CreateAddressFn   func(context.Context, int64, model.Address) (*model.Address, error)
	DeleteAddressFn   func(context.Context, int64, string) error
	PaymentMethodsFn  func(context.Context, int64) ([]model.PaymentMethod, error)
	ShippingOptionsFn func(context.Context) ([]model.ShippingOption, error)
}

func (s CatalogFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return nil, nil
}

func (s CatalogFacadeStub) CreateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	if s.CreateAddressFn != nil {
		return s.CreateAddressFn(ctx, userID, addr)
	}
	addr.ID = "addr-1"
	return &addr, nil
}

func (s CatalogFacadeStub) DeleteAddress(ctx context.Context, userID int64, id string) error {
	if s.DeleteAddressFn != nil {
		return s.DeleteAddressFn(ctx, userID, id)
	}
	return nil
}

func (s CatalogFacadeStub) PaymentMethods(ctx context.Context, userID int64) ([]model.PaymentMethod, error) {
	if s.PaymentMethodsFn != nil {
		return s.PaymentMethodsFn(ctx, userID)
	}
	return nil, nil
}

func (s CatalogFacadeStub) ShippingOptions(ctx context.Context) ([]model.ShippingOption, error) {
	if s.ShippingOptionsFn != nil {
		return s.ShippingOptionsFn(ctx)
	}
	return nil, nil
}

// CheckoutFacadeStub simulates the checkout flow for HTTP tests. Session
// transitions default to echoing the configured session value.
type CheckoutFacadeStub struct {
	Session checkout.Session
	Err     error

	SessionFn       func(context.Context, int64) (checkout.Session, error)
	PlaceOrderFn    func(context.Context, int64) (*model.Order, error)
	CancelFn        func(context.Context, int64) error
	TransitionCalls []string
}

func (s *CheckoutFacadeStub) transition(name string) (checkout.Session, error) {
	s.TransitionCalls = append(s.TransitionCalls, name)
	return s.Session, s.Err
}

func (s *CheckoutFacadeStub) CheckoutSession(ctx context.Context, userID int64) (checkout.Session, error) {
	if s.SessionFn != nil {
		return s.SessionFn(ctx, userID)
	}
	return s.Session, s.Err
}

func (s *CheckoutFacadeStub) SetShippingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return s.transition("shipping_address")
}

func (s *CheckoutFacadeStub) SetShippingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	return s.transition("shipping_address_by_id")
}

func (s *CheckoutFacadeStub) SetBillingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return s.transition("billing_address")
}

func (s *CheckoutFacadeStub) SetBillingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	return s.transition("billing_address_by_id")
}

func (s *CheckoutFacadeStub) SetSameAddress(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return s.transition("same_address")
}

func (s *CheckoutFacadeStub) SelectShippingOption(ctx context.Context, userID int64, optionID string) (checkout.Session, error) {
	return s.transition("shipping_option")
}

func (s *CheckoutFacadeStub) SelectPickupPoint(ctx context.Context, userID int64, point model.PickupPoint) (checkout.Session, error) {
	return s.transition("pickup_point")
}

func (s *CheckoutFacadeStub) SelectPaymentMethod(ctx context.Context, userID int64, methodID string) (checkout.Session, error) {
	return s.transition("payment_method")
}

func (s *CheckoutFacadeStub) SetNewCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return s.transition("new_card")
}

func (s *CheckoutFacadeStub) SetSaveCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return s.transition("save_card")
}

func (s *CheckoutFacadeStub) AcceptTerms(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return s.transition("terms")
}

func (s *CheckoutFacadeStub) NextStep(ctx context.Context, userID int64) (checkout.Session, error) {
	return s.transition("next")
}

func (s *CheckoutFacadeStub) PrevStep(ctx context.Context, userID int64) (checkout.Session, error) {
	return s.transition("back")
}

func (s *CheckoutFacadeStub) GoToStep(ctx context.Context, userID int64, step checkout.Step) (checkout.Session, error) {
	return s.transition("goto")
}

func (s *CheckoutFacadeStub) CancelCheckout(ctx context.Context, userID int64) error {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, userID)
	}
	return s.Err
}

func (s *CheckoutFacadeStub) PlaceOrder(ctx context.Context, userID int64) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, userID)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	return &model.Order{UserID: userID, Number: "SO-1", Status: model.OrderStatusConfirmed}, nil
}

// OrderFacadeStub simulates order history lookups for HTTP tests.
type OrderFacadeStub struct {
	ListFn func(context.Context, int64) ([]model.Order, error)
	GetFn  func(context.Context, int64, string) (*model.Order, error)
	Steps  []model.TimelineStep
}

func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s OrderFacadeStub) OrderByNumber(ctx context.Context, userID int64, number string) (*model.Order, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, number)
	}
	return &model.Order{UserID: userID, Number: number}, nil
}

func (s OrderFacadeStub) OrderTimeline(order model.Order) []model.TimelineStep {
	return s.Steps
}

// ReturnFacadeStub simulates return request lookups for HTTP tests.
type ReturnFacadeStub struct {
	CreateFn func(context.Context, int64, string, model.Resolution, string) (*model.ReturnRequest, error)
	ListFn   func(context.Context, int64) ([]model.ReturnRequest, error)
	GetFn    func(context.Context, int64, string) (*model.ReturnRequest, error)
	Steps    []model.TimelineStep
}

func (s ReturnFacadeStub) CreateReturn(ctx context.Context, userID int64, orderNumber string, resolution model.Resolution, reason string) (*model.ReturnRequest, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, userID, orderNumber, resolution, reason)
	}
	return &model.ReturnRequest{ID: "ret-1", UserID: userID, OrderNumber: orderNumber, Status: model.ReturnStatusPending, Resolution: resolution, Reason: reason}, nil
}

func (s ReturnFacadeStub) Returns(ctx context.Context, userID int64) ([]model.ReturnRequest, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, userID)
	}
	return nil, nil
}

func (s ReturnFacadeStub) ReturnByID(ctx context.Context, userID int64, id string) (*model.ReturnRequest, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, userID, id)
	}
	return &model.ReturnRequest{ID: id, UserID: userID}, nil
}

func (s ReturnFacadeStub) ReturnTimeline(req model.ReturnRequest) []model.TimelineStep {
	return s.Steps
}

// StorefrontFacadeStub aggregates facade stubs for router-level tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CartFacadeStub
	CatalogFacadeStub
	*CheckoutFacadeStub
	OrderFacadeStub
	ReturnFacadeStub
}

// NewStorefrontFacadeStub constructs the composite with an initialized
// checkout stub.
func NewStorefrontFacadeStub() *StorefrontFacadeStub {
	return &StorefrontFacadeStub{CheckoutFacadeStub: &CheckoutFacadeStub{Session: checkout.NewSession()}}
}

// OrderRefreshCall records one order update applied by the worker.
type OrderRefreshCall struct {
	Update model.OrderStatusUpdate
}

// RefreshFacadeStub simulates the facade surface the refresh worker uses.
type RefreshFacadeStub struct {
	mu sync.Mutex

	PendingOrders  []model.Order
	PendingReturns []model.ReturnRequest
	OrderUpdates   []model.OrderStatusUpdate
	ReturnUpdates  []model.ReturnStatusUpdate

	OrdersForRefreshFn    func(context.Context, int) ([]model.Order, error)
	ReturnsForRefreshFn   func(context.Context, int) ([]model.ReturnRequest, error)
	RefreshOrderStatusFn  func(context.Context, string) (*model.OrderStatusUpdate, error)
	RefreshReturnStatusFn func(context.Context, string) (*model.ReturnStatusUpdate, error)
	ApplyOrderUpdateFn    func(context.Context, model.OrderStatusUpdate) error
	ApplyReturnUpdateFn   func(context.Context, model.ReturnStatusUpdate) error
}

// Lock guards assertions against concurrent worker goroutines.
func (s *RefreshFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases the guard.
func (s *RefreshFacadeStub) Unlock() { s.mu.Unlock() }

func (s *RefreshFacadeStub) OrdersForRefresh(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersForRefreshFn != nil {
		return s.OrdersForRefreshFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > 0 && limit < len(s.PendingOrders) {
		return s.PendingOrders[:limit], nil
	}
	return s.PendingOrders, nil
}

func (s *RefreshFacadeStub) ReturnsForRefresh(ctx context.Context, limit int) ([]model.ReturnRequest, error) {
	if s.ReturnsForRefreshFn != nil {
		return s.ReturnsForRefreshFn(ctx, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if limit > 0 && limit < len(s.PendingReturns) {
		return s.PendingReturns[:limit], nil
	}
	return s.PendingReturns, nil
}

func (s *RefreshFacadeStub) RefreshOrderStatus(ctx context.Context, number string) (*model.OrderStatusUpdate, error) {
	if s.RefreshOrderStatusFn != nil {
		return s.RefreshOrderStatusFn(ctx, number)
	}
	return &model.OrderStatusUpdate{Number: number, Status: model.OrderStatusShipped}, nil
}

func (s *RefreshFacadeStub) RefreshReturnStatus(ctx context.Context, id string) (*model.ReturnStatusUpdate, error) {
	if s.RefreshReturnStatusFn != nil {
		return s.RefreshReturnStatusFn(ctx, id)
	}
	return &model.ReturnStatusUpdate{ID: id, Status: model.ReturnStatusApproved}, nil
}

func (s *RefreshFacadeStub) ApplyOrderUpdate(ctx context.Context, update model.OrderStatusUpdate) error {
	if s.ApplyOrderUpdateFn != nil {
		return s.ApplyOrderUpdateFn(ctx, update)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OrderUpdates = append(s.OrderUpdates, update)
	return nil
}

func (s *RefreshFacadeStub) ApplyReturnUpdate(ctx context.Context, update model.ReturnStatusUpdate) error {
	if s.ApplyReturnUpdateFn != nil {
		return s.ApplyReturnUpdateFn(ctx, update)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ReturnUpdates = append(s.ReturnUpdates, update)
	return nil
}
