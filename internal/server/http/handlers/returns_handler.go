package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/server/http/dto"
)

// ReturnsHandler serves return requests.
type ReturnsHandler struct {
	facade ReturnFacade
}

// NewReturnsHandler creates ReturnsHandler instance.
func NewReturnsHandler(facade ReturnFacade) *ReturnsHandler {
	return &ReturnsHandler{facade: facade}
}

// Create handles POST /api/user/returns.
func (h *ReturnsHandler) Create(c *gin.Context) {
	var req dto.ReturnCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderNumber == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	created, err := h.facade.CreateReturn(c.Request.Context(), CurrentUserID(c), req.OrderNumber, model.Resolution(req.Resolution), req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidResolution):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusCreated, toReturnResponse(*created))
}

// List handles GET /api/user/returns.
func (h *ReturnsHandler) List(c *gin.Context) {
	requests, err := h.facade.Returns(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(requests) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	resp := make([]dto.ReturnResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, toReturnResponse(r))
	}
	c.JSON(http.StatusOK, resp)
}

// Detail handles GET /api/user/returns/:id.
func (h *ReturnsHandler) Detail(c *gin.Context) {
	req, err := h.facade.ReturnByID(c.Request.Context(), CurrentUserID(c), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}
	c.JSON(http.StatusOK, dto.ReturnDetailResponse{
		ReturnResponse: toReturnResponse(*req),
		Timeline:       h.facade.ReturnTimeline(*req),
	})
}
