package dto

import (
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// OrderItemResponse describes one purchased line.
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderResponse describes an order list entry.
type OrderResponse struct {
	Number      string     `json:"number"`
	Status      string     `json:"status"`
	Carrier     string     `json:"carrier,omitempty"`
	Subtotal    float64    `json:"subtotal"`
	Discount    float64    `json:"discount"`
	Tax         float64    `json:"tax"`
	Total       float64    `json:"total"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// OrderDetailResponse adds items and the derived delivery timeline.
type OrderDetailResponse struct {
	OrderResponse
	Items    []OrderItemResponse  `json:"items"`
	Timeline []model.TimelineStep `json:"timeline"`
}
