package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/polkiloo/storefront/internal/checkout"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	testhelpers "github.com/polkiloo/storefront/internal/test"
)

type checkoutDeps struct {
	sessions *testhelpers.SessionRepositoryStub
	carts    *testhelpers.CartRepositoryStub
	options  *testhelpers.ShippingOptionRepositoryStub
	methods  *testhelpers.PaymentMethodRepositoryStub
	orders   *testhelpers.OrderRepositoryStub
	intake   *testhelpers.IntakeClientStub
}

func newCheckoutUseCase() (*CheckoutUseCase, *checkoutDeps) {
	deps := &checkoutDeps{
		sessions: testhelpers.NewSessionRepositoryStub(),
		carts:    &testhelpers.CartRepositoryStub{},
		options: &testhelpers.ShippingOptionRepositoryStub{Options: []model.ShippingOption{
			{ID: "std", Carrier: "dhl", Name: "Standard", Price: 4.99},
			{ID: "pickup", Carrier: "dpd", Name: "Pickup", Price: 1.99, PickupCapable: true},
		}},
		methods: &testhelpers.PaymentMethodRepositoryStub{Methods: []model.PaymentMethod{
			{ID: "pm-1", UserID: 1, Type: model.PaymentTypeCard, Brand: "visa", Last4: "4242"},
		}},
		orders: &testhelpers.OrderRepositoryStub{},
		intake: &testhelpers.IntakeClientStub{},
	}
	uc := NewCheckoutUseCase(
		deps.sessions,
		deps.carts,
		&testhelpers.AddressRepositoryStub{},
		deps.methods,
		deps.options,
		deps.orders,
		deps.intake,
		slog.New(slog.NewJSONHandler(io.Discard, nil)),
	)
	return uc, deps
}

func shippingAddr() model.Address {
	return model.Address{FullName: "Alice", Line1: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "US"}
}

func fillCart(deps *checkoutDeps) {
	deps.carts.Lines = []model.CartItem{{ID: "line-1", ProductID: "p-1", Quantity: 1, UnitPrice: 10}}
	deps.carts.CartSummary = &model.CartSummary{Subtotal: 10, Tax: 1.9, Total: 11.9}
}

func readyCheckout(t *testing.T, uc *CheckoutUseCase, deps *checkoutDeps) {
	t.Helper()
	ctx := context.Background()
	fillCart(deps)
	if _, err := uc.SetShippingAddress(ctx, 1, shippingAddr()); err != nil {
		t.Fatalf("set address: %v", err)
	}
	if _, err := uc.SelectShippingOption(ctx, 1, "std"); err != nil {
		t.Fatalf("select option: %v", err)
	}
	if _, err := uc.SelectPaymentMethod(ctx, 1, "pm-1"); err != nil {
		t.Fatalf("select payment: %v", err)
	}
	if _, err := uc.AcceptTerms(ctx, 1, true); err != nil {
		t.Fatalf("accept terms: %v", err)
	}
}

func TestCheckoutUseCaseFreshSession(t *testing.T) {
	uc, _ := newCheckoutUseCase()
	session, err := uc.Session(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Step != checkout.StepAddress {
		t.Fatalf("expected address step, got %s", session.Step)
	}
	if !session.UseSameAddress {
		t.Fatal("expected same-address default on")
	}
}

func TestCheckoutUseCaseSetShippingAddressPersists(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()

	session, err := uc.SetShippingAddress(ctx, 1, shippingAddr())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.BillingAddress == nil || !session.BillingAddress.Equal(shippingAddr()) {
		t.Fatal("expected billing mirrored from shipping")
	}
	stored, ok := deps.sessions.Sessions[1]
	if !ok {
		t.Fatal("expected session persisted")
	}
	if stored.ShippingAddress == nil || !stored.ShippingAddress.Equal(shippingAddr()) {
		t.Fatal("expected shipping address persisted")
	}
}

func TestCheckoutUseCaseSelectShippingOption(t *testing.T) {
	uc, _ := newCheckoutUseCase()
	ctx := context.Background()

	if _, err := uc.SelectShippingOption(ctx, 1, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	session, err := uc.SelectShippingOption(ctx, 1, "pickup")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session, err = uc.SelectPickupPoint(ctx, 1, model.PickupPoint{ID: "pp-1", Name: "Locker 7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PickupPoint == nil || session.PickupPoint.ID != "pp-1" {
		t.Fatal("expected pickup point recorded")
	}

	session, err = uc.SelectShippingOption(ctx, 1, "std")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PickupPoint != nil {
		t.Fatal("expected pickup point cleared for non-pickup option")
	}
}

func TestCheckoutUseCaseSelectPaymentMethod(t *testing.T) {
	uc, _ := newCheckoutUseCase()
	ctx := context.Background()

	session, err := uc.SelectPaymentMethod(ctx, 1, "pm-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PaymentMethod == nil || session.PaymentMethod.ID != "pm-1" {
		t.Fatal("expected saved method selected")
	}
	if session.UseNewCard {
		t.Fatal("expected new-card flag off with saved method")
	}

	session, err = uc.SelectPaymentMethod(ctx, 1, "wallet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.PaymentMethod == nil || session.PaymentMethod.Type != model.PaymentTypeWallet {
		t.Fatal("expected synthetic wallet method")
	}

	if _, err := uc.SelectPaymentMethod(ctx, 1, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckoutUseCaseNextRespectsGuard(t *testing.T) {
	uc, _ := newCheckoutUseCase()
	ctx := context.Background()

	session, err := uc.Next(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Step != checkout.StepAddress {
		t.Fatalf("expected blocked advance to keep address step, got %s", session.Step)
	}

	if _, err := uc.SetShippingAddress(ctx, 1, shippingAddr()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session, err = uc.Next(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Step != checkout.StepShipping {
		t.Fatalf("expected advance to shipping, got %s", session.Step)
	}

	session, err = uc.Back(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Step != checkout.StepAddress {
		t.Fatalf("expected back to address, got %s", session.Step)
	}
}

func TestCheckoutUseCasePlaceOrderChecklist(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()

	if _, err := uc.PlaceOrder(ctx, 1); !errors.Is(err, checkout.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}

	fillCart(deps)
	if _, err := uc.PlaceOrder(ctx, 1); !errors.Is(err, checkout.ErrMissingShippingAddress) {
		t.Fatalf("expected ErrMissingShippingAddress, got %v", err)
	}
	if len(deps.intake.Submitted) != 0 {
		t.Fatal("expected no submission on checklist failure")
	}
}

func TestCheckoutUseCasePlaceOrderSuccess(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()
	readyCheckout(t, uc, deps)

	order, err := uc.PlaceOrder(ctx, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Number == "" {
		t.Fatal("expected order number assigned")
	}
	if len(deps.intake.Submitted) != 1 {
		t.Fatalf("expected one submission, got %d", len(deps.intake.Submitted))
	}
	if deps.intake.Submitted[0].Total != 11.9 {
		t.Fatalf("expected cart total forwarded, got %v", deps.intake.Submitted[0].Total)
	}
	if len(deps.orders.Upserted) != 1 {
		t.Fatalf("expected order stored, got %d", len(deps.orders.Upserted))
	}
	if len(deps.carts.Cleared) != 1 {
		t.Fatal("expected cart cleared")
	}
	if len(deps.sessions.Deleted) != 1 {
		t.Fatal("expected session deleted")
	}
}

func TestCheckoutUseCasePlaceOrderFailureKeepsState(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()
	readyCheckout(t, uc, deps)

	deps.intake.SubmitFn = func(context.Context, int64, model.OrderPayload) (*model.Order, error) {
		return nil, errors.New("intake unavailable")
	}

	if _, err := uc.PlaceOrder(ctx, 1); err == nil {
		t.Fatal("expected error")
	}
	if len(deps.carts.Cleared) != 0 {
		t.Fatal("expected cart untouched after failure")
	}
	if len(deps.sessions.Deleted) != 0 {
		t.Fatal("expected session untouched after failure")
	}
	if _, ok := deps.sessions.Sessions[1]; !ok {
		t.Fatal("expected session still stored")
	}

	// The shopper can fix the problem and retry.
	deps.intake.SubmitFn = nil
	if _, err := uc.PlaceOrder(ctx, 1); err != nil {
		t.Fatalf("unexpected error on retry: %v", err)
	}
}

func TestCheckoutUseCasePlaceOrderStaleSessionIsInert(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()
	readyCheckout(t, uc, deps)

	deps.sessions.DeleteErr = errors.New("session store unavailable")

	if _, err := uc.PlaceOrder(ctx, 1); err == nil {
		t.Fatal("expected cleanup error surfaced")
	}
	if len(deps.orders.Upserted) != 1 {
		t.Fatalf("expected order stored, got %d", len(deps.orders.Upserted))
	}
	if len(deps.carts.Cleared) != 1 {
		t.Fatal("expected cart cleared")
	}
	if _, ok := deps.sessions.Sessions[1]; !ok {
		t.Fatal("expected session left behind")
	}

	// The surviving session cannot place a duplicate: the emptied cart
	// stops the retry at the first checklist item.
	deps.sessions.DeleteErr = nil
	if _, err := uc.PlaceOrder(ctx, 1); !errors.Is(err, checkout.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart on retry, got %v", err)
	}
	if len(deps.intake.Submitted) != 1 {
		t.Fatalf("expected no second submission, got %d", len(deps.intake.Submitted))
	}
}

func TestCheckoutUseCasePlaceOrderRejectsConcurrent(t *testing.T) {
	uc, deps := newCheckoutUseCase()
	ctx := context.Background()
	readyCheckout(t, uc, deps)

	entered := make(chan struct{})
	release := make(chan struct{})
	deps.intake.SubmitFn = func(_ context.Context, userID int64, payload model.OrderPayload) (*model.Order, error) {
		close(entered)
		<-release
		return &model.Order{UserID: userID, Number: "SO-1", Status: model.OrderStatusConfirmed}, nil
	}

	errCh := make(chan error, 1)
	go func() {
		_, err := uc.PlaceOrder(ctx, 1)
		errCh <- err
	}()

	<-entered
	if _, err := uc.PlaceOrder(ctx, 1); !errors.Is(err, domainErrors.ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}
	close(release)
	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error from first submission: %v", err)
	}
}
