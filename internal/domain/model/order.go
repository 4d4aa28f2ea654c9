package model

import "time"

// OrderStatus describes the order delivery lifecycle as reported by the
// intake system. Linear progress values are ordered; the remaining values
// interrupt that progression.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "pending"
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusShipped        OrderStatus = "shipped"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"

	OrderStatusCancelled        OrderStatus = "cancelled"
	OrderStatusRefunded         OrderStatus = "refunded"
	OrderStatusReturnRequested  OrderStatus = "return_requested"
	OrderStatusReturnInProgress OrderStatus = "return_in_progress"
	OrderStatusReturned         OrderStatus = "returned"
)

// Terminal reports whether the status can still change upstream. Terminal
// orders are skipped by the refresh worker.
func (s OrderStatus) Terminal() bool {
	switch s {
	case OrderStatusDelivered, OrderStatusCancelled, OrderStatusRefunded, OrderStatusReturned:
		return true
	}
	return false
}

// OrderItem is one purchased line within an order.
type OrderItem struct {
	ProductID string
	VariantID string
	Name      string
	Quantity  int
	UnitPrice float64
}

// Order is a purchase created by the intake system on submission. Identity
// and items are immutable; status and its timestamps move as the order
// progresses.
type Order struct {
	ID              int64
	UserID          int64
	Number          string
	Items           []OrderItem
	Status          OrderStatus
	ShippingCarrier string
	Subtotal        float64
	Discount        float64
	Tax             float64
	Total           float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	CancelledAt     *time.Time
}

// OrderStatusUpdate is the refreshed state reported by the intake system
// for a previously submitted order.
type OrderStatusUpdate struct {
	Number      string
	Status      OrderStatus
	UpdatedAt   time.Time
	CancelledAt *time.Time
}
