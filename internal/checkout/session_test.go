package checkout

import (
	"testing"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func testAddress(line1 string) model.Address {
	return model.Address{
		FullName:   "Jo Doe",
		Line1:      line1,
		City:       "Springfield",
		PostalCode: "11111",
		Country:    "US",
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession()
	if s.Step != StepAddress {
		t.Fatalf("expected initial step address, got %s", s.Step)
	}
	if !s.UseSameAddress {
		t.Fatal("expected same-address toggle to default to true")
	}
	if s.ShippingAddress != nil || s.BillingAddress != nil || s.ShippingOption != nil || s.PaymentMethod != nil {
		t.Fatal("expected empty selections in initial session")
	}
}

func TestShippingAddressMirrorsBilling(t *testing.T) {
	s := NewSession()

	s = s.WithShippingAddress(testAddress("1 Main St"))
	if s.BillingAddress == nil || !s.BillingAddress.Equal(*s.ShippingAddress) {
		t.Fatal("expected billing address to mirror shipping while toggle is on")
	}

	s = s.WithShippingAddress(testAddress("2 Oak Ave"))
	if s.BillingAddress.Line1 != "2 Oak Ave" {
		t.Fatalf("expected billing to follow shipping rewrite, got %q", s.BillingAddress.Line1)
	}
}

func TestBillingIndependentAfterToggleOff(t *testing.T) {
	s := NewSession().WithShippingAddress(testAddress("1 Main St"))
	s = s.WithSameAddress(false)
	s = s.WithBillingAddress(testAddress("9 Billing Rd"))

	s = s.WithShippingAddress(testAddress("2 Oak Ave"))
	if s.BillingAddress.Line1 != "9 Billing Rd" {
		t.Fatalf("billing must not follow shipping while toggle is off, got %q", s.BillingAddress.Line1)
	}
}

func TestSameAddressToggleOnOverwritesBilling(t *testing.T) {
	s := NewSession().WithShippingAddress(testAddress("1 Main St"))
	s = s.WithSameAddress(false).WithBillingAddress(testAddress("9 Billing Rd"))

	s = s.WithSameAddress(true)
	if !s.BillingAddress.Equal(*s.ShippingAddress) {
		t.Fatal("turning toggle on must overwrite billing with shipping")
	}
}

func TestSameAddressToggleOffKeepsLastBilling(t *testing.T) {
	s := NewSession().WithShippingAddress(testAddress("1 Main St"))
	s = s.WithSameAddress(false)
	if s.BillingAddress == nil || s.BillingAddress.Line1 != "1 Main St" {
		t.Fatal("turning toggle off must keep the last billing value")
	}
}

func TestShippingOptionClearsPickupPoint(t *testing.T) {
	pickup := model.ShippingOption{ID: "opt-1", Carrier: "PostNord", PickupCapable: true}
	home := model.ShippingOption{ID: "opt-2", Carrier: "DHL"}

	s := NewSession().WithShippingOption(pickup)
	s = s.WithPickupPoint(model.PickupPoint{ID: "pp-7", Name: "Corner Kiosk"})
	if s.PickupPoint == nil {
		t.Fatal("expected pickup point to be recorded for pickup-capable option")
	}

	s = s.WithShippingOption(home)
	if s.PickupPoint != nil {
		t.Fatal("selecting a non-pickup option must clear the pickup point")
	}
}

func TestShippingOptionPreservesPickupPoint(t *testing.T) {
	first := model.ShippingOption{ID: "opt-1", PickupCapable: true}
	second := model.ShippingOption{ID: "opt-3", PickupCapable: true}

	s := NewSession().WithShippingOption(first).WithPickupPoint(model.PickupPoint{ID: "pp-7"})
	s = s.WithShippingOption(second)
	if s.PickupPoint == nil || s.PickupPoint.ID != "pp-7" {
		t.Fatal("switching between pickup-capable options must preserve the chosen point")
	}
}

func TestPickupPointIgnoredWithoutPickupOption(t *testing.T) {
	s := NewSession().WithPickupPoint(model.PickupPoint{ID: "pp-7"})
	if s.PickupPoint != nil {
		t.Fatal("pickup point must not be set without a pickup-capable option")
	}

	s = s.WithShippingOption(model.ShippingOption{ID: "opt-2"}).WithPickupPoint(model.PickupPoint{ID: "pp-7"})
	if s.PickupPoint != nil {
		t.Fatal("pickup point must not be set for a non-pickup option")
	}
}

func TestPaymentExclusivity(t *testing.T) {
	method := model.PaymentMethod{ID: "pm-1", Type: model.PaymentTypeCard, Last4: "4242"}

	s := NewSession().WithNewCard(true)
	s = s.WithPaymentMethod(&method)
	if s.UseNewCard {
		t.Fatal("selecting a method must turn the new-card flag off")
	}

	s = s.WithNewCard(true)
	if s.PaymentMethod != nil {
		t.Fatal("turning the new-card flag on must clear the method")
	}

	s = s.WithPaymentMethod(nil)
	if !s.UseNewCard {
		t.Fatal("selecting nil method means paying with a new card")
	}
}

func TestNewCardOffKeepsLastMethod(t *testing.T) {
	s := NewSession().WithNewCard(true)
	s = s.WithNewCard(false)
	if s.PaymentMethod != nil {
		t.Fatal("turning the flag off must not invent a method")
	}
	if s.UseNewCard {
		t.Fatal("expected flag off")
	}
}

func TestSyntheticMethodSatisfiesExclusivity(t *testing.T) {
	wallet := model.SyntheticPaymentMethod(model.PaymentTypeWallet)
	s := NewSession().WithNewCard(true).WithPaymentMethod(&wallet)
	if s.UseNewCard {
		t.Fatal("wallet selection must turn the new-card flag off")
	}
	if s.PaymentMethod.ID != string(model.PaymentTypeWallet) {
		t.Fatalf("unexpected synthetic identity %q", s.PaymentMethod.ID)
	}
}

func TestNavigation(t *testing.T) {
	s := NewSession()
	if s.CanGoBack() {
		t.Fatal("no back from the first step")
	}

	s = s.Next()
	if s.Step != StepShipping {
		t.Fatalf("expected shipping, got %s", s.Step)
	}
	s = s.Next().Next()
	if s.Step != StepConfirmation {
		t.Fatalf("expected confirmation, got %s", s.Step)
	}
	s = s.Next()
	if s.Step != StepConfirmation {
		t.Fatal("next at the last step must be a no-op")
	}

	s = s.Back()
	if s.Step != StepPayment {
		t.Fatalf("expected payment after back, got %s", s.Step)
	}

	s = s.GoTo(StepAddress)
	if s.Step != StepAddress {
		t.Fatalf("expected jump to address, got %s", s.Step)
	}
	s = s.GoTo(Step("warehouse"))
	if s.Step != StepAddress {
		t.Fatal("jump to an unknown step must be ignored")
	}
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := NewSession()
	_ = s.WithShippingAddress(testAddress("1 Main St"))
	if s.ShippingAddress != nil {
		t.Fatal("transition mutated the original session value")
	}
}
