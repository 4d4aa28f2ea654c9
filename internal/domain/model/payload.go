package model

// PayloadItem is one order line as dispatched to the intake system.
type PayloadItem struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// PayloadAddress is the wire form of a shipping or billing destination.
type PayloadAddress struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// OrderPayload is the submission document assembled after the precondition
// checklist passes. Totals come from the cart summary and are never
// recomputed here.
type OrderPayload struct {
	Items           []PayloadItem   `json:"items"`
	ShippingAddress PayloadAddress  `json:"shipping_address"`
	BillingAddress  PayloadAddress  `json:"billing_address"`
	ShippingOption  string          `json:"shipping_option_id"`
	Carrier         string          `json:"carrier"`
	ShippingPrice   float64         `json:"shipping_price"`
	PickupPointID   string          `json:"pickup_point_id,omitempty"`
	PaymentMethodID string          `json:"payment_method_id,omitempty"`
	UseNewCard      bool            `json:"use_new_card"`
	SaveCard        bool            `json:"save_card"`
	PromoCode       string          `json:"promo_code,omitempty"`
	Subtotal        float64         `json:"subtotal"`
	Discount        float64         `json:"discount"`
	Tax             float64         `json:"tax"`
	Total           float64         `json:"total"`
}
