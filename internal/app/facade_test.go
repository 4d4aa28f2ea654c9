package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/polkiloo/storefront/internal/checkout"
	"github.com/polkiloo/storefront/internal/config"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
	"github.com/polkiloo/storefront/internal/usecase"
)

type facadeDeps struct {
	sessions *testhelpers.SessionRepositoryStub
	carts    *testhelpers.CartRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	intake   *testhelpers.IntakeClientStub
}

func newTestFacade() (*StorefrontFacade, *facadeDeps) {
	deps := &facadeDeps{
		sessions: testhelpers.NewSessionRepositoryStub(),
		carts: &testhelpers.CartRepositoryStub{
			Lines: []model.CartItem{{ID: "line-1", ProductID: "p-1", Name: "Sneakers", Quantity: 1, UnitPrice: 19.99}},
		},
		orders: &testhelpers.OrderRepositoryStub{},
		intake: &testhelpers.IntakeClientStub{},
	}

	users := testhelpers.NewUserRepositoryStub()
	addresses := &testhelpers.AddressRepositoryStub{
		Book: []model.Address{{ID: "addr-1", UserID: 7, FullName: "Ada Lovelace", Line1: "12 Main St", City: "Lund", PostalCode: "22100", Country: "SE"}},
	}
	paymentMethods := &testhelpers.PaymentMethodRepositoryStub{
		Methods: []model.PaymentMethod{{ID: "pm-1", UserID: 7, Type: model.PaymentTypeCard, Brand: "visa", Last4: "4242"}},
	}
	shippingOptions := &testhelpers.ShippingOptionRepositoryStub{
		Options: []model.ShippingOption{{ID: "std", Carrier: "PostNord", Name: "Standard", Price: 4.99, EstimatedDays: 5}},
	}
	cfg := &config.Config{CatalogCacheTTL: time.Minute}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	auth := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	cart := usecase.NewCartUseCase(deps.carts)
	catalog := usecase.NewCatalogUseCase(addresses, paymentMethods, shippingOptions, cfg)
	co := usecase.NewCheckoutUseCase(deps.sessions, deps.carts, addresses, paymentMethods, shippingOptions, deps.orders, deps.intake, logger)
	orders := usecase.NewOrderUseCase(deps.orders)
	returns := usecase.NewReturnUseCase(&testhelpers.ReturnRepositoryStub{}, deps.orders)

	return NewStorefrontFacade(auth, cart, catalog, co, orders, returns, deps.intake), deps
}

func TestFacadeDelegatesCartAndCatalog(t *testing.T) {
	facade, _ := newTestFacade()
	ctx := context.Background()

	items, err := facade.CartItems(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Sneakers" {
		t.Fatalf("unexpected items: %+v", items)
	}

	options, err := facade.ShippingOptions(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(options) != 1 || options[0].ID != "std" {
		t.Fatalf("unexpected options: %+v", options)
	}
}

func TestFacadeCheckoutFlow(t *testing.T) {
	facade, deps := newTestFacade()
	ctx := context.Background()

	session, err := facade.CheckoutSession(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Step != checkout.StepAddress {
		t.Fatalf("expected fresh session at address step, got %v", session.Step)
	}

	if _, err := facade.SetShippingAddressByID(ctx, 7, "addr-1"); err != nil {
		t.Fatalf("set shipping address: %v", err)
	}
	if _, err := facade.SelectShippingOption(ctx, 7, "std"); err != nil {
		t.Fatalf("select shipping option: %v", err)
	}
	if _, err := facade.SelectPaymentMethod(ctx, 7, "pm-1"); err != nil {
		t.Fatalf("select payment method: %v", err)
	}
	if _, err := facade.AcceptTerms(ctx, 7, true); err != nil {
		t.Fatalf("accept terms: %v", err)
	}

	order, err := facade.PlaceOrder(ctx, 7)
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if order.Number != "SO-1" {
		t.Fatalf("unexpected order: %+v", order)
	}
	if len(deps.intake.Submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(deps.intake.Submitted))
	}
	if len(deps.carts.Cleared) != 1 || deps.carts.Cleared[0] != 7 {
		t.Fatalf("expected cart cleared for shopper, got %+v", deps.carts.Cleared)
	}
}

func TestFacadeRefreshSurface(t *testing.T) {
	facade, deps := newTestFacade()
	ctx := context.Background()

	deps.intake.OrderStatusFn = func(_ context.Context, number string) (*model.OrderStatusUpdate, error) {
		return &model.OrderStatusUpdate{Number: number, Status: model.OrderStatusDelivered}, nil
	}
	update, err := facade.RefreshOrderStatus(ctx, "SO-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if update.Status != model.OrderStatusDelivered {
		t.Fatalf("unexpected status: %v", update.Status)
	}

	retUpdate, err := facade.RefreshReturnStatus(ctx, "ret-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retUpdate.ID != "ret-1" {
		t.Fatalf("unexpected update: %+v", retUpdate)
	}
}
