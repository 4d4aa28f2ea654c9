package model

import "time"

// User represents a registered shopper of the storefront.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	CreatedAt    time.Time
}
