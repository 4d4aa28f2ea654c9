package dto

import (
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ReturnCreateRequest opens a return request against an order.
type ReturnCreateRequest struct {
	OrderNumber string `json:"order_number"`
	Resolution  string `json:"resolution"`
	Reason      string `json:"reason"`
}

// ReturnResponse describes a return request list entry.
type ReturnResponse struct {
	ID              string    `json:"id"`
	OrderNumber     string    `json:"order_number"`
	Status          string    `json:"status"`
	Resolution      string    `json:"resolution"`
	Reason          string    `json:"reason,omitempty"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ReturnDetailResponse adds the derived return timeline.
type ReturnDetailResponse struct {
	ReturnResponse
	Timeline []model.TimelineStep `json:"timeline"`
}
