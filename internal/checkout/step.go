package checkout

// Step identifies one screen of the guarded checkout flow.
type Step string

const (
	StepAddress      Step = "address"
	StepShipping     Step = "shipping"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Steps is the total order of the checkout flow.
var Steps = []Step{StepAddress, StepShipping, StepPayment, StepConfirmation}

// Index returns the step's position in the flow, or -1 for unknown values.
func (s Step) Index() int {
	for i, step := range Steps {
		if step == s {
			return i
		}
	}
	return -1
}

// Valid reports whether the value is one of the four checkout steps.
func (s Step) Valid() bool {
	return s.Index() >= 0
}
