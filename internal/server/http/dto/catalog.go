package dto

// AddressRequest describes a destination submitted by the shopper.
type AddressRequest struct {
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
	IsDefault  bool   `json:"is_default"`
}

// AddressResponse describes a saved address.
type AddressResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	Region     string `json:"region,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	IsDefault  bool   `json:"is_default"`
}

// PaymentMethodResponse describes a saved card or a synthetic method.
type PaymentMethodResponse struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Brand    string `json:"brand,omitempty"`
	Last4    string `json:"last4,omitempty"`
	ExpMonth int    `json:"exp_month,omitempty"`
	ExpYear  int    `json:"exp_year,omitempty"`
}

// ShippingOptionResponse describes a delivery method offered at checkout.
type ShippingOptionResponse struct {
	ID            string  `json:"id"`
	Carrier       string  `json:"carrier"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	EstimatedDays int     `json:"estimated_days"`
	PickupCapable bool    `json:"pickup_capable"`
}

// PickupPointResponse describes a carrier pickup location.
type PickupPointResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
