package dto

// ShippingAddressRequest selects the shipping destination: either a saved
// address by identifier or an inline address.
type ShippingAddressRequest struct {
	AddressID string          `json:"address_id"`
	Address   *AddressRequest `json:"address"`
}

// SameAddressRequest flips the billing-mirrors-shipping toggle.
type SameAddressRequest struct {
	Enabled bool `json:"enabled"`
}

// ShippingOptionRequest selects a delivery method.
type ShippingOptionRequest struct {
	OptionID string `json:"option_id"`
}

// PickupPointRequest selects a carrier pickup location.
type PickupPointRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// PaymentMethodRequest selects a saved method or a non-card payment type.
type PaymentMethodRequest struct {
	MethodID string `json:"method_id"`
}

// NewCardRequest flips the pay-with-new-card toggle.
type NewCardRequest struct {
	Enabled bool `json:"enabled"`
}

// SaveCardRequest records whether the new card should be stored.
type SaveCardRequest struct {
	Enabled bool `json:"enabled"`
}

// TermsRequest records the terms checkbox.
type TermsRequest struct {
	Accepted bool `json:"accepted"`
}

// StepRequest jumps to a named checkout step.
type StepRequest struct {
	Step string `json:"step"`
}

// CheckoutResponse is the full session view returned from every checkout
// endpoint. The guard flags tell the client whether its navigation
// controls should be enabled.
type CheckoutResponse struct {
	Step            string                  `json:"step"`
	ShippingAddress *AddressResponse        `json:"shipping_address,omitempty"`
	BillingAddress  *AddressResponse        `json:"billing_address,omitempty"`
	UseSameAddress  bool                    `json:"use_same_address"`
	ShippingOption  *ShippingOptionResponse `json:"shipping_option,omitempty"`
	PickupPoint     *PickupPointResponse    `json:"pickup_point,omitempty"`
	PaymentMethod   *PaymentMethodResponse  `json:"payment_method,omitempty"`
	UseNewCard      bool                    `json:"use_new_card"`
	SaveCard        bool                    `json:"save_card"`
	AcceptedTerms   bool                    `json:"accepted_terms"`
	CanGoNext       bool                    `json:"can_go_next"`
	CanGoBack       bool                    `json:"can_go_back"`
}
