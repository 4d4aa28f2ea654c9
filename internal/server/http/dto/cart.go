package dto

// CartItemRequest describes a line added to the cart.
type CartItemRequest struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// QuantityRequest describes a quantity change for a cart line.
type QuantityRequest struct {
	Quantity int `json:"quantity"`
}

// PromoRequest describes a promo code application.
type PromoRequest struct {
	Code string `json:"code"`
}

// CartItemResponse describes one cart line.
type CartItemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CartSummaryResponse carries the totals computed for the cart.
type CartSummaryResponse struct {
	Subtotal  float64 `json:"subtotal"`
	Discount  float64 `json:"discount"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
	PromoCode string  `json:"promo_code,omitempty"`
}

// CartResponse aggregates lines and totals.
type CartResponse struct {
	Items   []CartItemResponse  `json:"items"`
	Summary CartSummaryResponse `json:"summary"`
}
