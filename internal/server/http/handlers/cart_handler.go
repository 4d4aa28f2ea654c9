package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// CartHandler serves the shopper's cart.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler creates CartHandler instance.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// Get handles GET /api/user/cart.
func (h *CartHandler) Get(c *gin.Context) {
	userID := CurrentUserID(c)
	items, err := h.facade.CartItems(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	summary, err := h.facade.CartSummary(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(items, summary))
}

// AddItem handles POST /api/user/cart/items.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	line, err := h.facade.AddCartItem(c.Request.Context(), CurrentUserID(c), model.CartItem{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Name:      req.Name,
		Quantity:  req.Quantity,
		UnitPrice: req.UnitPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, dto.CartItemResponse{
		ID:        line.ID,
		ProductID: line.ProductID,
		VariantID: line.VariantID,
		Name:      line.Name,
		Quantity:  line.Quantity,
		UnitPrice: line.UnitPrice,
	})
}

// UpdateItem handles PATCH /api/user/cart/items/:id.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err := h.facade.UpdateCartQuantity(c.Request.Context(), CurrentUserID(c), c.Param("id"), req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidQuantity):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// RemoveItem handles DELETE /api/user/cart/items/:id.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	err := h.facade.RemoveCartItem(c.Request.Context(), CurrentUserID(c), c.Param("id"))
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

// ApplyPromo handles POST /api/user/cart/promo.
func (h *CartHandler) ApplyPromo(c *gin.Context) {
	var req dto.PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ApplyPromo(c.Request.Context(), CurrentUserID(c), req.Code); err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidPromoCode):
			c.Status(http.StatusUnprocessableEntity)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.Status(http.StatusOK)
}

// RemovePromo handles DELETE /api/user/cart/promo.
func (h *CartHandler) RemovePromo(c *gin.Context) {
	if err := h.facade.RemovePromo(c.Request.Context(), CurrentUserID(c)); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
