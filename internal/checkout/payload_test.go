package checkout

import (
	"testing"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func TestBuildPayload(t *testing.T) {
	s := readySession()
	s = s.WithShippingOption(model.ShippingOption{ID: "opt-1", Carrier: "PostNord", Price: 4.90, PickupCapable: true})
	s = s.WithPickupPoint(model.PickupPoint{ID: "pp-7", Name: "Corner Kiosk"})

	summary := model.CartSummary{
		Subtotal: 39.98,
		Discount: 4.00,
		Tax:      8.99,
		Total:    49.87,
		Promo:    &model.PromoCode{Code: "SPRING10", Percent: 10},
	}

	payload := BuildPayload(s, cartLines(), summary)

	if len(payload.Items) != 1 || payload.Items[0].ProductID != "p-1" || payload.Items[0].Quantity != 2 {
		t.Fatalf("unexpected payload items: %+v", payload.Items)
	}
	if payload.ShippingAddress.Line1 != "1 Main St" {
		t.Fatalf("unexpected shipping address %+v", payload.ShippingAddress)
	}
	if payload.BillingAddress != payload.ShippingAddress {
		t.Fatal("billing must resolve to shipping under the same-address toggle")
	}
	if payload.ShippingOption != "opt-1" || payload.Carrier != "PostNord" || payload.ShippingPrice != 4.90 {
		t.Fatalf("unexpected shipping fields: %+v", payload)
	}
	if payload.PickupPointID != "pp-7" {
		t.Fatalf("expected pickup point id, got %q", payload.PickupPointID)
	}
	if payload.PaymentMethodID != "pm-1" || payload.UseNewCard {
		t.Fatalf("unexpected payment fields: %+v", payload)
	}
	if payload.PromoCode != "SPRING10" {
		t.Fatalf("expected promo code, got %q", payload.PromoCode)
	}
	if payload.Subtotal != 39.98 || payload.Discount != 4.00 || payload.Tax != 8.99 || payload.Total != 49.87 {
		t.Fatalf("totals must be copied from the summary verbatim: %+v", payload)
	}
}

func TestBuildPayloadExplicitBilling(t *testing.T) {
	s := readySession().WithSameAddress(false).WithBillingAddress(testAddress("9 Billing Rd"))
	payload := BuildPayload(s, cartLines(), model.CartSummary{})
	if payload.BillingAddress.Line1 != "9 Billing Rd" {
		t.Fatalf("expected explicit billing address, got %+v", payload.BillingAddress)
	}
}

func TestBuildPayloadSaveCardOnlyWithNewCard(t *testing.T) {
	s := readySession().WithSaveCard(true)
	if got := BuildPayload(s, cartLines(), model.CartSummary{}); got.SaveCard {
		t.Fatal("save-card must be dropped when paying with a saved method")
	}

	s = s.WithNewCard(true).WithSaveCard(true)
	if got := BuildPayload(s, cartLines(), model.CartSummary{}); !got.SaveCard || !got.UseNewCard {
		t.Fatalf("expected new-card submission with save-card, got %+v", got)
	}
}
