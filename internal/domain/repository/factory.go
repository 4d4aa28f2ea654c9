package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Carts() CartRepository
	Addresses() AddressRepository
	PaymentMethods() PaymentMethodRepository
	ShippingOptions() ShippingOptionRepository
	Sessions() CheckoutSessionRepository
	Orders() OrderRepository
	Returns() ReturnRepository
}
