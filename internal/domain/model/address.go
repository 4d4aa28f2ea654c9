package model

import "time"

// Address is a saved shipping or billing destination.
type Address struct {
	ID         string
	UserID     int64
	FullName   string
	Line1      string
	Line2      string
	City       string
	Region     string
	PostalCode string
	Country    string
	Phone      string
	IsDefault  bool
	CreatedAt  time.Time
}

// Equal reports structural equality of the address fields that identify
// a destination. Identity and ownership columns are ignored so a billing
// copy mirrored from a shipping address compares equal to its source.
func (a Address) Equal(other Address) bool {
	return a.FullName == other.FullName &&
		a.Line1 == other.Line1 &&
		a.Line2 == other.Line2 &&
		a.City == other.City &&
		a.Region == other.Region &&
		a.PostalCode == other.PostalCode &&
		a.Country == other.Country &&
		a.Phone == other.Phone
}
