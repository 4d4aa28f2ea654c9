package checkout

import (
	"errors"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// Submission precondition failures, one per checklist item. The checklist
// short-circuits, so the first unmet precondition is the one reported.
var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrMissingShippingAddress = errors.New("shipping address is missing")
	ErrMissingShippingOption  = errors.New("shipping option is not selected")
	ErrMissingPaymentMethod   = errors.New("payment method is not selected")
	ErrTermsNotAccepted       = errors.New("terms are not accepted")
)

// ValidateSubmission runs the fixed-order precondition checklist that
// gates order submission.
func ValidateSubmission(items []model.CartItem, s Session) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if s.ShippingAddress == nil {
		return ErrMissingShippingAddress
	}
	if s.ShippingOption == nil {
		return ErrMissingShippingOption
	}
	if s.PaymentMethod == nil && !s.UseNewCard {
		return ErrMissingPaymentMethod
	}
	if !s.AcceptedTerms {
		return ErrTermsNotAccepted
	}
	return nil
}
