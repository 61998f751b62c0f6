package handlers

import (
	"errors"
	"net/http"

	"goldenfish/services/cart"
	"goldenfish/services/checkout"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler finalizes order sessions.
type CheckoutHandler struct {
	Service checkout.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(svc checkout.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{Service: svc}
}

// CheckoutHandler validates the session and places the order.
func (ch *CheckoutHandler) CheckoutHandler(c *gin.Context) {
	var req checkout.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := ch.Service.Checkout(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, cart.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order session not found or expired"})
			return
		}
		zap.L().Warn("Checkout rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}
