package checkout

import (
	"errors"
	"testing"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func readySession() Session {
	method := model.PaymentMethod{ID: "pm-1"}
	return NewSession().
		WithShippingAddress(testAddress("1 Main St")).
		WithShippingOption(model.ShippingOption{ID: "opt-1", Carrier: "DHL", Price: 4.90}).
		WithPaymentMethod(&method).
		WithAcceptedTerms(true)
}

func cartLines() []model.CartItem {
	return []model.CartItem{{ID: "line-1", ProductID: "p-1", Quantity: 2, UnitPrice: 19.99}}
}

func TestValidateSubmissionPasses(t *testing.T) {
	if err := ValidateSubmission(cartLines(), readySession()); err != nil {
		t.Fatalf("unexpected validation failure: %v", err)
	}
}

func TestValidateSubmissionChecklistOrder(t *testing.T) {
	// An empty cart with everything else missing must report the first
	// checklist item, never a later one.
	if err := ValidateSubmission(nil, NewSession()); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected empty cart first, got %v", err)
	}

	cases := []struct {
		name   string
		mangle func(Session) Session
		want   error
	}{
		{"no shipping address", func(s Session) Session {
			s.ShippingAddress = nil
			return s
		}, ErrMissingShippingAddress},
		{"no shipping option", func(s Session) Session {
			s.ShippingOption = nil
			return s
		}, ErrMissingShippingOption},
		{"no payment method", func(s Session) Session {
			s.PaymentMethod = nil
			s.UseNewCard = false
			return s
		}, ErrMissingPaymentMethod},
		{"terms not accepted", func(s Session) Session {
			s.AcceptedTerms = false
			return s
		}, ErrTermsNotAccepted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSubmission(cartLines(), tc.mangle(readySession()))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidateSubmissionNewCardSatisfiesPayment(t *testing.T) {
	s := readySession().WithNewCard(true)
	if err := ValidateSubmission(cartLines(), s); err != nil {
		t.Fatalf("new-card flag must satisfy the payment check, got %v", err)
	}
}
