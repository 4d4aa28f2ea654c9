package model

// CartItem is one cart line: a product variant with quantity and unit price.
type CartItem struct {
	ID        string
	ProductID string
	VariantID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// PromoCode is a discount applied to the cart. The cart owns it; checkout
// only references it when assembling the order payload.
type PromoCode struct {
	Code     string
	Percent  float64
	Discount float64
}

// CartSummary carries totals computed by the cart collaborator. Checkout
// never recomputes these values.
type CartSummary struct {
	Subtotal float64
	Discount float64
	Tax      float64
	Total    float64
	Promo    *PromoCode
}
