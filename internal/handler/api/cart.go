package api

import (
	"errors"
	"net/http"

	"tourbook/internal/domain/cart"
	reqdto "tourbook/internal/handler/dto/request"
	resdto "tourbook/internal/handler/dto/response"
	"tourbook/internal/handler/middleware"
	"tourbook/internal/pkg/errs"
	"tourbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartCommands commands.CartCommands
}

func NewCartHandler(cartCommands commands.CartCommands) *CartHandler {
	return &CartHandler{
		cartCommands: cartCommands,
	}
}

// @Summary Get cart
// @Tags cart
// @Produce json
// @Param X-Cart-Key header string false "Cart key; minted when absent"
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.cartCommands.Get(c.Request.Context(), middleware.GetCartKey(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Remove cart item
// @Tags cart
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param reference path string true "Booking reference"
// @Success 200 {object} resdto.CartResponse
// @Failure 404 {object} map[string]string
// @Router /cart/items/{reference} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.cartCommands.RemoveItem(c.Request.Context(), middleware.GetCartKey(c), c.Param("reference"))
	if err != nil {
		if errors.Is(err, errs.ErrCartItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Clear cart
// @Tags cart
// @Param X-Cart-Key header string false "Cart key"
// @Success 204
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartCommands.Clear(c.Request.Context(), middleware.GetCartKey(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Adjust participants on a cart item
// @Description Re-derives the unit price from the stored total and scales it
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param reference path string true "Booking reference"
// @Param request body reqdto.UpdateParticipantsRequest true "Kind and delta"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items/{reference}/participants [patch]
func (h *CartHandler) UpdateParticipants(c *gin.Context) {
	var req reqdto.UpdateParticipantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.UpdateParticipants(
		c.Request.Context(), middleware.GetCartKey(c), c.Param("reference"),
		cart.ParticipantKind(req.Kind), req.Delta,
	)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCartItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Cart item not found",
			})
		case errors.Is(err, errs.ErrInvalidParticipants):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Unknown participant kind",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}

// @Summary Preview promo code
// @Description Price the cart with a code applied to the aggregate subtotal
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Cart-Key header string false "Cart key"
// @Param request body reqdto.PromoPreviewRequest true "Promo code"
// @Success 200 {object} resdto.CartResponse
// @Failure 422 {object} map[string]string
// @Router /cart/promo [post]
func (h *CartHandler) PreviewPromo(c *gin.Context) {
	var req reqdto.PromoPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.cartCommands.PreviewPromo(c.Request.Context(), middleware.GetCartKey(c), req.Code)
	if err != nil {
		if errors.Is(err, errs.ErrUnknownPromoCode) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Unknown promo code",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCartView(view))
}
