package checkout

// CanGoNext reports whether forward navigation is allowed from the current
// step. A false result is not an error: the caller is expected to disable
// its forward affordance and never invoke Next.
func (s Session) CanGoNext() bool {
	switch s.Step {
	case StepAddress:
		return s.ShippingAddress != nil && (s.UseSameAddress || s.BillingAddress != nil)
	case StepShipping:
		return s.ShippingOption != nil
	case StepPayment:
		return s.PaymentMethod != nil || s.UseNewCard
	case StepConfirmation:
		return s.AcceptedTerms
	}
	return false
}

// CanGoBack reports whether an earlier step exists.
func (s Session) CanGoBack() bool {
	return s.Step.Index() > 0
}
