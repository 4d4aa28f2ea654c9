package model

// ShippingOption is a delivery method offered at checkout.
type ShippingOption struct {
	ID            string
	Carrier       string
	Name          string
	Price         float64
	EstimatedDays int
	PickupCapable bool
}

// PickupPoint is a carrier location a pickup-capable option delivers to.
type PickupPoint struct {
	ID      string
	Name    string
	Address string
}
