package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// CatalogHandler serves addresses, payment methods and shipping options.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Addresses handles GET /api/user/addresses.
func (h *CatalogHandler) Addresses(c *gin.Context) {
	addrs, err := h.facade.Addresses(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	resp := make([]dto.AddressResponse, 0, len(addrs))
	for _, a := range addrs {
		resp = append(resp, toAddressResponse(a))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateAddress handles POST /api/user/addresses.
func (h *CatalogHandler) CreateAddress(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.FullName == "" || req.Line1 == "" || req.City == "" || req.PostalCode == "" || req.Country == "" {
		c.Status(http.StatusUnprocessableEntity)
		return
	}

	created, err := h.facade.CreateAddress(c.Request.Context(), CurrentUserID(c), toAddress(req))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, toAddressResponse(*created))
}

// DeleteAddress handles DELETE /api/user/addresses/:id.
func (h *CatalogHandler) DeleteAddress(c *gin.Context) {
	err := h.facade.DeleteAddress(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// PaymentMethods handles GET /api/user/payment-methods.
func (h *CatalogHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.facade.PaymentMethods(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	resp := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		resp = append(resp, toPaymentMethodResponse(m))
	}
	c.JSON(http.StatusOK, resp)
}

// ShippingOptions handles GET /api/user/shipping-options.
func (h *CatalogHandler) ShippingOptions(c *gin.Context) {
	options, err := h.facade.ShippingOptions(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	resp := make([]dto.ShippingOptionResponse, 0, len(options))
	for _, o := range options {
		resp = append(resp, toShippingOptionResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}
