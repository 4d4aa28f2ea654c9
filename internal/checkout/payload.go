package checkout

import "github.com/polkiloo/storefront/internal/domain/model"

// BuildPayload assembles the submission document from a validated session,
// the cart lines, and the cart's computed summary. Call only after
// ValidateSubmission has passed; totals are taken from the summary as-is.
func BuildPayload(s Session, items []model.CartItem, summary model.CartSummary) model.OrderPayload {
	payload := model.OrderPayload{
		Items:           make([]model.PayloadItem, 0, len(items)),
		ShippingAddress: toPayloadAddress(*s.ShippingAddress),
		ShippingOption:  s.ShippingOption.ID,
		Carrier:         s.ShippingOption.Carrier,
		ShippingPrice:   s.ShippingOption.Price,
		UseNewCard:      s.UseNewCard,
		SaveCard:        s.UseNewCard && s.SaveCard,
		Subtotal:        summary.Subtotal,
		Discount:        summary.Discount,
		Tax:             summary.Tax,
		Total:           summary.Total,
	}

	for _, item := range items {
		payload.Items = append(payload.Items, model.PayloadItem{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	// Billing resolves to shipping under the same-address toggle; the
	// mirroring transition keeps BillingAddress in sync, so either source
	// yields the same document.
	if s.UseSameAddress || s.BillingAddress == nil {
		payload.BillingAddress = payload.ShippingAddress
	} else {
		payload.BillingAddress = toPayloadAddress(*s.BillingAddress)
	}

	if s.PickupPoint != nil {
		payload.PickupPointID = s.PickupPoint.ID
	}
	if s.PaymentMethod != nil {
		payload.PaymentMethodID = s.PaymentMethod.ID
	}
	if summary.Promo != nil {
		payload.PromoCode = summary.Promo.Code
	}

	return payload
}

func toPayloadAddress(a model.Address) model.PayloadAddress {
	return model.PayloadAddress{
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}
