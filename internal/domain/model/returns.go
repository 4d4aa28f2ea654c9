package model

import "time"

// ReturnStatus describes the return request lifecycle.
type ReturnStatus string

const (
	ReturnStatusPending    ReturnStatus = "pending"
	ReturnStatusApproved   ReturnStatus = "approved"
	ReturnStatusShipped    ReturnStatus = "shipped"
	ReturnStatusReceived   ReturnStatus = "received"
	ReturnStatusInspecting ReturnStatus = "inspecting"
	ReturnStatusRefunded   ReturnStatus = "refunded"
	ReturnStatusExchanged  ReturnStatus = "exchanged"
	ReturnStatusRejected   ReturnStatus = "rejected"
)

// Terminal reports whether the return can still change upstream.
func (s ReturnStatus) Terminal() bool {
	switch s {
	case ReturnStatusRefunded, ReturnStatusExchanged, ReturnStatusRejected:
		return true
	}
	return false
}

// Resolution is the outcome the shopper requested when opening the return.
// It selects the final expected step of the return timeline.
type Resolution string

const (
	ResolutionRefund   Resolution = "refund"
	ResolutionExchange Resolution = "exchange"
)

// ReturnRequest tracks one product return opened against an order.
type ReturnRequest struct {
	ID              string
	UserID          int64
	OrderNumber     string
	Status          ReturnStatus
	Resolution      Resolution
	Reason          string
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ReturnStatusUpdate is the refreshed state reported by the intake system
// for an open return request.
type ReturnStatusUpdate struct {
	ID              string
	Status          ReturnStatus
	RejectionReason string
	UpdatedAt       time.Time
}
