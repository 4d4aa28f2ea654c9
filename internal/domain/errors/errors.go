package errors

import "errors"

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPromoCode   = errors.New("invalid promo code")
	ErrInvalidResolution  = errors.New("invalid return resolution")
	ErrNotOwned           = errors.New("resource not owned by user")

	// ErrSubmissionInFlight rejects a second place-order call while the
	// first one is still awaiting the intake system.
	ErrSubmissionInFlight = errors.New("order submission already in flight")
)
