package handlers

import (
	"github.com/polkiloo/storefront/internal/checkout"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

func toAddress(req dto.AddressRequest) model.Address {
	return model.Address{
		FullName:   req.FullName,
		Line1:      req.Line1,
		Line2:      req.Line2,
		City:       req.City,
		Region:     req.Region,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
		IsDefault:  req.IsDefault,
	}
}

func toAddressResponse(a model.Address) dto.AddressResponse {
	return dto.AddressResponse{
		ID:         a.ID,
		FullName:   a.FullName,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		Region:     a.Region,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		IsDefault:  a.IsDefault,
	}
}

func toPaymentMethodResponse(m model.PaymentMethod) dto.PaymentMethodResponse {
	return dto.PaymentMethodResponse{
		ID:       m.ID,
		Type:     string(m.Type),
		Brand:    m.Brand,
		Last4:    m.Last4,
		ExpMonth: m.ExpMonth,
		ExpYear:  m.ExpYear,
	}
}

func toShippingOptionResponse(o model.ShippingOption) dto.ShippingOptionResponse {
	return dto.ShippingOptionResponse{
		ID:            o.ID,
		Carrier:       o.Carrier,
		Name:          o.Name,
		Price:         o.Price,
		EstimatedDays: o.EstimatedDays,
		PickupCapable: o.PickupCapable,
	}
}

func toCartResponse(items []model.CartItem, summary *model.CartSummary) dto.CartResponse {
	resp := dto.CartResponse{Items: make([]dto.CartItemResponse, 0, len(items))}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	if summary != nil {
		resp.Summary = dto.CartSummaryResponse{
			Subtotal: summary.Subtotal,
			Discount: summary.Discount,
			Tax:      summary.Tax,
			Total:    summary.Total,
		}
		if summary.Promo != nil {
			resp.Summary.PromoCode = summary.Promo.Code
		}
	}
	return resp
}

func toCheckoutResponse(s checkout.Session) dto.CheckoutResponse {
	resp := dto.CheckoutResponse{
		Step:           string(s.Step),
		UseSameAddress: s.UseSameAddress,
		UseNewCard:     s.UseNewCard,
		SaveCard:       s.SaveCard,
		AcceptedTerms:  s.AcceptedTerms,
		CanGoNext:      s.CanGoNext(),
		CanGoBack:      s.CanGoBack(),
	}
	if s.ShippingAddress != nil {
		addr := toAddressResponse(*s.ShippingAddress)
		resp.ShippingAddress = &addr
	}
	if s.BillingAddress != nil {
		addr := toAddressResponse(*s.BillingAddress)
		resp.BillingAddress = &addr
	}
	if s.ShippingOption != nil {
		option := toShippingOptionResponse(*s.ShippingOption)
		resp.ShippingOption = &option
	}
	if s.PickupPoint != nil {
		resp.PickupPoint = &dto.PickupPointResponse{
			ID:      s.PickupPoint.ID,
			Name:    s.PickupPoint.Name,
			Address: s.PickupPoint.Address,
		}
	}
	if s.PaymentMethod != nil {
		method := toPaymentMethodResponse(*s.PaymentMethod)
		resp.PaymentMethod = &method
	}
	return resp
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Number:      o.Number,
		Status:      string(o.Status),
		Carrier:     o.ShippingCarrier,
		Subtotal:    o.Subtotal,
		Discount:    o.Discount,
		Tax:         o.Tax,
		Total:       o.Total,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
		CancelledAt: o.CancelledAt,
	}
}

func toOrderDetailResponse(o model.Order, steps []model.TimelineStep) dto.OrderDetailResponse {
	resp := dto.OrderDetailResponse{
		OrderResponse: toOrderResponse(o),
		Items:         make([]dto.OrderItemResponse, 0, len(o.Items)),
		Timeline:      steps,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			VariantID: item.VariantID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}

func toReturnResponse(r model.ReturnRequest) dto.ReturnResponse {
	return dto.ReturnResponse{
		ID:              r.ID,
		OrderNumber:     r.OrderNumber,
		Status:          string(r.Status),
		Resolution:      string(r.Resolution),
		Reason:          r.Reason,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
