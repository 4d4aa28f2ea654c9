package dto

// ErrorResponse carries a machine-readable error code, most notably the
// submission checklist codes returned by place-order.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
