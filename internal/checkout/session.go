package checkout

import "github.com/polkiloo/storefront/internal/domain/model"

// Session is the mutable state of one purchase attempt. It is a plain
// value: every transition below returns a new session, and whichever
// component holds the latest value is the current owner. Invariants
// (billing mirrors shipping, saved method excludes new-card, pickup point
// requires a pickup-capable option) are re-established on every write to
// their source fields, so they hold at every observation point.
type Session struct {
	Step            Step                  `json:"step"`
	ShippingAddress *model.Address        `json:"shipping_address,omitempty"`
	BillingAddress  *model.Address        `json:"billing_address,omitempty"`
	UseSameAddress  bool                  `json:"use_same_address"`
	ShippingOption  *model.ShippingOption `json:"shipping_option,omitempty"`
	PickupPoint     *model.PickupPoint    `json:"pickup_point,omitempty"`
	PaymentMethod   *model.PaymentMethod  `json:"payment_method,omitempty"`
	UseNewCard      bool                  `json:"use_new_card"`
	SaveCard        bool                  `json:"save_card"`
	AcceptedTerms   bool                  `json:"accepted_terms"`
}

// NewSession returns the initial session: first step, billing mirrored
// from shipping by default, nothing selected.
func NewSession() Session {
	return Session{Step: StepAddress, UseSameAddress: true}
}

// WithShippingAddress sets the shipping address and, while the same-address
// toggle is on, overwrites the billing copy with it.
func (s Session) WithShippingAddress(addr model.Address) Session {
	s.ShippingAddress = &addr
	if s.UseSameAddress {
		billing := addr
		s.BillingAddress = &billing
	}
	return s
}

// WithBillingAddress sets an explicit billing address. Meaningful only
// while the same-address toggle is off; turning the toggle back on
// overwrites it again.
func (s Session) WithBillingAddress(addr model.Address) Session {
	s.BillingAddress = &addr
	return s
}

// WithSameAddress flips the same-address toggle. Turning it on mirrors the
// current shipping address into billing; turning it off keeps the last
// billing value so the shopper can edit it.
func (s Session) WithSameAddress(on bool) Session {
	s.UseSameAddress = on
	if on {
		if s.ShippingAddress != nil {
			billing := *s.ShippingAddress
			s.BillingAddress = &billing
		} else {
			s.BillingAddress = nil
		}
	}
	return s
}

// WithShippingOption selects a delivery method. A previously chosen pickup
// point survives only if the new option is pickup-capable.
func (s Session) WithShippingOption(option model.ShippingOption) Session {
	s.ShippingOption = &option
	if !option.PickupCapable {
		s.PickupPoint = nil
	}
	return s
}

// WithPickupPoint records the chosen pickup point. Ignored unless the
// current shipping option is pickup-capable.
func (s Session) WithPickupPoint(point model.PickupPoint) Session {
	if s.ShippingOption == nil || !s.ShippingOption.PickupCapable {
		return s
	}
	s.PickupPoint = &point
	return s
}

// WithPaymentMethod selects a saved or synthetic payment method. A nil
// method means "pay with a new card" and sets the flag accordingly, so a
// non-nil method and a true new-card flag are never observed together.
func (s Session) WithPaymentMethod(method *model.PaymentMethod) Session {
	s.PaymentMethod = method
	s.UseNewCard = method == nil
	return s
}

// WithNewCard flips the new-card flag. Turning it on clears the selected
// method; turning it off keeps the last value, which may be nil and force
// re-selection.
func (s Session) WithNewCard(on bool) Session {
	s.UseNewCard = on
	if on {
		s.PaymentMethod = nil
	}
	return s
}

// WithSaveCard records whether a new card should be stored after payment.
// Meaningful only while the new-card flag is on.
func (s Session) WithSaveCard(on bool) Session {
	s.SaveCard = on
	return s
}

// WithAcceptedTerms records the terms checkbox on the confirmation step.
func (s Session) WithAcceptedTerms(on bool) Session {
	s.AcceptedTerms = on
	return s
}

// GoTo jumps to the given step unconditionally. Used both for forward
// progress after validation and for backward edits from the review step.
func (s Session) GoTo(step Step) Session {
	if step.Valid() {
		s.Step = step
	}
	return s
}

// Next advances one step. It does not consult the guard: callers check
// CanGoNext first so a UI can disable its own control instead of having
// the machine silently refuse.
func (s Session) Next() Session {
	if i := s.Step.Index(); i >= 0 && i < len(Steps)-1 {
		s.Step = Steps[i+1]
	}
	return s
}

// Back moves one step earlier; no-op at the first step.
func (s Session) Back() Session {
	if i := s.Step.Index(); i > 0 {
		s.Step = Steps[i-1]
	}
	return s
}
