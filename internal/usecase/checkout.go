package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/checkout"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// CheckoutUseCase drives the checkout flow. The session itself is a plain
// value with pure transitions; this type owns loading it, applying one
// transition and storing the result. Submission is the only operation with
// side effects beyond the session row.
type CheckoutUseCase struct {
	sessions        repository.CheckoutSessionRepository
	carts           repository.CartRepository
	addresses       repository.AddressRepository
	paymentMethods  repository.PaymentMethodRepository
	shippingOptions repository.ShippingOptionRepository
	orders          repository.OrderRepository
	intake          intake.Client
	logger          *slog.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(
	sessions repository.CheckoutSessionRepository,
	carts repository.CartRepository,
	addresses repository.AddressRepository,
	paymentMethods repository.PaymentMethodRepository,
	shippingOptions repository.ShippingOptionRepository,
	orders repository.OrderRepository,
	client intake.Client,
	logger *slog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		sessions:        sessions,
		carts:           carts,
		addresses:       addresses,
		paymentMethods:  paymentMethods,
		shippingOptions: shippingOptions,
		orders:          orders,
		intake:          client,
		logger:          logger,
		inFlight:        make(map[int64]struct{}),
	}
}

// Session returns the shopper's current session, or a fresh one when no
// checkout is in progress.
func (u *CheckoutUseCase) Session(ctx context.Context, userID int64) (checkout.Session, error) {
	return u.load(ctx, userID)
}

// SetShippingAddress records an inline shipping address.
func (u *CheckoutUseCase) SetShippingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithShippingAddress(addr)
	})
}

// SetShippingAddressByID records a saved address as the shipping address.
func (u *CheckoutUseCase) SetShippingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	addr, err := u.addresses.GetByID(ctx, userID, addressID)
	if err != nil {
		return checkout.Session{}, err
	}
	return u.SetShippingAddress(ctx, userID, *addr)
}

// SetBillingAddress records an explicit billing address.
func (u *CheckoutUseCase) SetBillingAddress(ctx context.Context, userID int64, addr model.Address) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithBillingAddress(addr)
	})
}

// SetBillingAddressByID records a saved address as the billing address.
func (u *CheckoutUseCase) SetBillingAddressByID(ctx context.Context, userID int64, addressID string) (checkout.Session, error) {
	addr, err := u.addresses.GetByID(ctx, userID, addressID)
	if err != nil {
		return checkout.Session{}, err
	}
	return u.SetBillingAddress(ctx, userID, *addr)
}

// SetSameAddress flips the billing-mirrors-shipping toggle.
func (u *CheckoutUseCase) SetSameAddress(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithSameAddress(on)
	})
}

// SelectShippingOption resolves a delivery method by identifier and
// records it.
func (u *CheckoutUseCase) SelectShippingOption(ctx context.Context, userID int64, optionID string) (checkout.Session, error) {
	option, err := u.shippingOptions.GetByID(ctx, optionID)
	if err != nil {
		return checkout.Session{}, err
	}
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithShippingOption(*option)
	})
}

// SelectPickupPoint records the pickup point. The transition ignores it
// unless the current option supports pickup.
func (u *CheckoutUseCase) SelectPickupPoint(ctx context.Context, userID int64, point model.PickupPoint) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithPickupPoint(point)
	})
}

// SelectPaymentMethod resolves a payment method and records it. Ids that
// name a non-card payment type select the synthetic method for that type.
func (u *CheckoutUseCase) SelectPaymentMethod(ctx context.Context, userID int64, methodID string) (checkout.Session, error) {
	var method model.PaymentMethod
	switch model.PaymentType(methodID) {
	case model.PaymentTypeWallet, model.PaymentTypeCashOnDelivery:
		method = model.SyntheticPaymentMethod(model.PaymentType(methodID))
	default:
		saved, err := u.paymentMethods.GetByID(ctx, userID, methodID)
		if err != nil {
			return checkout.Session{}, err
		}
		method = *saved
	}
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithPaymentMethod(&method)
	})
}

// SetNewCard flips the pay-with-new-card toggle.
func (u *CheckoutUseCase) SetNewCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithNewCard(on)
	})
}

// SetSaveCard records whether the new card should be stored after payment.
func (u *CheckoutUseCase) SetSaveCard(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithSaveCard(on)
	})
}

// AcceptTerms records the terms checkbox.
func (u *CheckoutUseCase) AcceptTerms(ctx context.Context, userID int64, on bool) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.WithAcceptedTerms(on)
	})
}

// Next advances one step when the guard allows it. A blocked advance is
// not an error: the unchanged session comes back and the response's guard
// flags tell the client why.
func (u *CheckoutUseCase) Next(ctx context.Context, userID int64) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		if !s.CanGoNext() {
			return s
		}
		return s.Next()
	})
}

// Back moves one step earlier.
func (u *CheckoutUseCase) Back(ctx context.Context, userID int64) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.Back()
	})
}

// GoTo jumps to the given step, typically a backward edit from review.
func (u *CheckoutUseCase) GoTo(ctx context.Context, userID int64, step checkout.Step) (checkout.Session, error) {
	return u.apply(ctx, userID, func(s checkout.Session) checkout.Session {
		return s.GoTo(step)
	})
}

// Cancel abandons the checkout. The cart is untouched.
func (u *CheckoutUseCase) Cancel(ctx context.Context, userID int64) error {
	return u.sessions.Delete(ctx, userID)
}

// PlaceOrder runs the submission checklist and dispatches the order. On
// success the cart and session are cleared; on any failure both stay
// untouched so the shopper can fix the problem and retry. A second call
// while one is awaiting the intake system is rejected outright.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, userID int64) (*model.Order, error) {
	if !u.begin(userID) {
		return nil, domainErrors.ErrSubmissionInFlight
	}
	defer u.end(userID)

	session, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	items, err := u.carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := checkout.ValidateSubmission(items, session); err != nil {
		return nil, err
	}
	summary, err := u.carts.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload := checkout.BuildPayload(session, items, *summary)
	order, err := u.intake.Submit(ctx, userID, payload)
	if err != nil {
		u.logger.Warn("order submission failed", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return nil, err
	}

	stored, err := u.orders.Upsert(ctx, *order)
	if err != nil {
		return nil, err
	}
	// The order is stored at this point. If Clear succeeds but Delete
	// fails, the leftover session is inert: the emptied cart fails the
	// next submission before it ever reaches intake.
	if err := u.carts.Clear(ctx, userID); err != nil {
		return nil, err
	}
	if err := u.sessions.Delete(ctx, userID); err != nil {
		return nil, err
	}

	u.logger.Info("order placed", slog.Int64("user_id", userID), slog.String("number", stored.Number))
	return stored, nil
}

func (u *CheckoutUseCase) begin(userID int64) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[userID]; busy {
		return false
	}
	u.inFlight[userID] = struct{}{}
	return true
}

func (u *CheckoutUseCase) end(userID int64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, userID)
}

func (u *CheckoutUseCase) load(ctx context.Context, userID int64) (checkout.Session, error) {
	session, err := u.sessions.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return checkout.NewSession(), nil
		}
		return checkout.Session{}, err
	}
	return *session, nil
}

func (u *CheckoutUseCase) apply(ctx context.Context, userID int64, transition func(checkout.Session) checkout.Session) (checkout.Session, error) {
	session, err := u.load(ctx, userID)
	if err != nil {
		return checkout.Session{}, err
	}
	next := transition(session)
	if err := u.sessions.Save(ctx, userID, next); err != nil {
		return checkout.Session{}, err
	}
	return next, nil
}
