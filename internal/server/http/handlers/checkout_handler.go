package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storefront/internal/adapter/intake"
	"github.com/polkiloo/storefront/internal/checkout"
	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// Submission checklist codes, in the order the checklist runs.
const (
	codeEmptyCart              = "EMPTY_CART"
	codeMissingShippingAddress = "MISSING_SHIPPING_ADDRESS"
	codeMissingShippingOption  = "MISSING_SHIPPING_OPTION"
	codeMissingPaymentMethod   = "MISSING_PAYMENT_METHOD"
	codeTermsNotAccepted       = "TERMS_NOT_ACCEPTED"
	codeSubmissionInFlight     = "SUBMISSION_IN_FLIGHT"
)

// CheckoutHandler drives the checkout session over HTTP. Every mutation
// responds with the resulting session view so clients never need a
// follow-up read.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Get handles GET /api/user/checkout.
func (h *CheckoutHandler) Get(c *gin.Context) {
	session, err := h.facade.CheckoutSession(c.Request.Context(), CurrentUserID(c))
	h.respond(c, session, err)
}

// SetShippingAddress handles POST /api/user/checkout/shipping-address.
func (h *CheckoutHandler) SetShippingAddress(c *gin.Context) {
	var req dto.ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	var (
		session checkout.Session
		err     error
	)
	switch {
	case req.AddressID != "":
		session, err = h.facade.SetShippingAddressByID(c.Request.Context(), userID, req.AddressID)
	case req.Address != nil:
		session, err = h.facade.SetShippingAddress(c.Request.Context(), userID, toAddress(*req.Address))
	default:
		c.Status(http.StatusBadRequest)
		return
	}
	h.respond(c, session, err)
}

// SetBillingAddress handles POST /api/user/checkout/billing-address.
func (h *CheckoutHandler) SetBillingAddress(c *gin.Context) {
	var req dto.ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	userID := CurrentUserID(c)
	var (
		session checkout.Session
		err     error
	)
	switch {
	case req.AddressID != "":
		session, err = h.facade.SetBillingAddressByID(c.Request.Context(), userID, req.AddressID)
	case req.Address != nil:
		session, err = h.facade.SetBillingAddress(c.Request.Context(), userID, toAddress(*req.Address))
	default:
		c.Status(http.StatusBadRequest)
		return
	}
	h.respond(c, session, err)
}

// SetSameAddress handles POST /api/user/checkout/same-address.
func (h *CheckoutHandler) SetSameAddress(c *gin.Context) {
	var req dto.SameAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SetSameAddress(c.Request.Context(), CurrentUserID(c), req.Enabled)
	h.respond(c, session, err)
}

// SetShippingOption handles POST /api/user/checkout/shipping-option.
func (h *CheckoutHandler) SetShippingOption(c *gin.Context) {
	var req dto.ShippingOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OptionID == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SelectShippingOption(c.Request.Context(), CurrentUserID(c), req.OptionID)
	h.respond(c, session, err)
}

// SetPickupPoint handles POST /api/user/checkout/pickup-point.
func (h *CheckoutHandler) SetPickupPoint(c *gin.Context) {
	var req dto.PickupPointRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SelectPickupPoint(c.Request.Context(), CurrentUserID(c), model.PickupPoint{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
	})
	h.respond(c, session, err)
}

// SetPaymentMethod handles POST /api/user/checkout/payment-method.
func (h *CheckoutHandler) SetPaymentMethod(c *gin.Context) {
	var req dto.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MethodID == "" {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SelectPaymentMethod(c.Request.Context(), CurrentUserID(c), req.MethodID)
	h.respond(c, session, err)
}

// SetNewCard handles POST /api/user/checkout/new-card.
func (h *CheckoutHandler) SetNewCard(c *gin.Context) {
	var req dto.NewCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SetNewCard(c.Request.Context(), CurrentUserID(c), req.Enabled)
	h.respond(c, session, err)
}

// SetSaveCard handles POST /api/user/checkout/save-card.
func (h *CheckoutHandler) SetSaveCard(c *gin.Context) {
	var req dto.SaveCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.SetSaveCard(c.Request.Context(), CurrentUserID(c), req.Enabled)
	h.respond(c, session, err)
}

// SetTerms handles POST /api/user/checkout/terms.
func (h *CheckoutHandler) SetTerms(c *gin.Context) {
	var req dto.TermsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.AcceptTerms(c.Request.Context(), CurrentUserID(c), req.Accepted)
	h.respond(c, session, err)
}

// Next handles POST /api/user/checkout/next.
func (h *CheckoutHandler) Next(c *gin.Context) {
	session, err := h.facade.NextStep(c.Request.Context(), CurrentUserID(c))
	h.respond(c, session, err)
}

// Back handles POST /api/user/checkout/back.
func (h *CheckoutHandler) Back(c *gin.Context) {
	session, err := h.facade.PrevStep(c.Request.Context(), CurrentUserID(c))
	h.respond(c, session, err)
}

// GoTo handles POST /api/user/checkout/goto.
func (h *CheckoutHandler) GoTo(c *gin.Context) {
	var req dto.StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	step := checkout.Step(req.Step)
	if !step.Valid() {
		c.Status(http.StatusBadRequest)
		return
	}
	session, err := h.facade.GoToStep(c.Request.Context(), CurrentUserID(c), step)
	h.respond(c, session, err)
}

// Cancel handles DELETE /api/user/checkout.
func (h *CheckoutHandler) Cancel(c *gin.Context) {
	if err := h.facade.CancelCheckout(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}

// PlaceOrder handles POST /api/user/checkout/place-order. Checklist
// failures come back as 422 with a stable code; a submission already in
// flight is a conflict.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	order, err := h.facade.PlaceOrder(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		if code, ok := checklistCode(err); ok {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Code: code, Message: err.Error()})
			return
		}
		var failure *intake.Failure
		switch {
		case errors.Is(err, domainErrors.ErrSubmissionInFlight):
			c.JSON(http.StatusConflict, dto.ErrorResponse{Code: codeSubmissionInFlight, Message: err.Error()})
		case errors.As(err, &failure):
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Code: failure.Code, Message: failure.Message})
		default:
			c.Status(http.StatusBadGateway)
		}
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

func (h *CheckoutHandler) respond(c *gin.Context, session checkout.Session, err error) {
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, toCheckoutResponse(session))
}

func checklistCode(err error) (string, bool) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		return codeEmptyCart, true
	case errors.Is(err, checkout.ErrMissingShippingAddress):
		return codeMissingShippingAddress, true
	case errors.Is(err, checkout.ErrMissingShippingOption):
		return codeMissingShippingOption, true
	case errors.Is(err, checkout.ErrMissingPaymentMethod):
		return codeMissingPaymentMethod, true
	case errors.Is(err, checkout.ErrTermsNotAccepted):
		return codeTermsNotAccepted, true
	}
	return "", false
}
