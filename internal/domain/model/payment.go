package model

import "time"

// PaymentType distinguishes saved cards from synthetic non-card methods.
type PaymentType string

const (
	PaymentTypeCard           PaymentType = "card"
	PaymentTypeWallet         PaymentType = "wallet"
	PaymentTypeCashOnDelivery PaymentType = "cash_on_delivery"
)

// PaymentMethod is a saved card or a synthetic non-card method. Non-card
// methods carry their type as identity and no card fields.
type PaymentMethod struct {
	ID        string
	UserID    int64
	Type      PaymentType
	Brand     string
	Last4     string
	ExpMonth  int
	ExpYear   int
	CreatedAt time.Time
}

// SyntheticPaymentMethod builds the method value used when a shopper picks
// a non-card payment type instead of a saved card.
func SyntheticPaymentMethod(t PaymentType) PaymentMethod {
	return PaymentMethod{ID: string(t), Type: t}
}
