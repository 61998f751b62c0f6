package handlers

import (
	"errors"
	"net/http"
	"time"

	"goldenfish/models"
	"goldenfish/services/cart"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the order session state machine.
type CartHandler struct {
	Service cart.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(svc cart.CartService) *CartHandler {
	return &CartHandler{Service: svc}
}

// StartSessionHandler creates a new order session.
func (ch *CartHandler) StartSessionHandler(c *gin.Context) {
	session, err := ch.Service.StartSession(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to start order session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSessionHandler returns the current session state.
func (ch *CartHandler) GetSessionHandler(c *gin.Context) {
	session, err := ch.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CancelSessionHandler discards a session.
func (ch *CartHandler) CancelSessionHandler(c *gin.Context) {
	if err := ch.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// AddItemHandler adds a line to the cart.
func (ch *CartHandler) AddItemHandler(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.AddItem(c.Request.Context(), c.Param("sessionID"), item)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateQuantityHandler changes a line's quantity; zero removes it.
func (ch *CartHandler) UpdateQuantityHandler(c *gin.Context) {
	var input struct {
		LineIndex int `json:"lineIndex"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.UpdateQuantity(c.Request.Context(), c.Param("sessionID"), input.LineIndex, input.Quantity)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveItemHandler removes a cart line.
func (ch *CartHandler) RemoveItemHandler(c *gin.Context) {
	var input struct {
		LineIndex int `json:"lineIndex"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.RemoveItem(c.Request.Context(), c.Param("sessionID"), input.LineIndex)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetDeliveryTypeHandler switches between delivery and collection.
func (ch *CartHandler) SetDeliveryTypeHandler(c *gin.Context) {
	var input struct {
		Type models.ServiceType `json:"type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.SetDeliveryType(c.Request.Context(), c.Param("sessionID"), input.Type)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetPostcodeHandler resolves the delivery fee for the session's postcode.
func (ch *CartHandler) SetPostcodeHandler(c *gin.Context) {
	var input struct {
		Postcode string `json:"postcode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.SetPostcode(c.Request.Context(), c.Param("sessionID"), input.Postcode)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectSlotHandler books a fulfilment time for the session.
func (ch *CartHandler) SelectSlotHandler(c *gin.Context) {
	var input struct {
		Slot time.Time `json:"slot"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := ch.Service.SelectSlot(c.Request.Context(), c.Param("sessionID"), input.Slot)
	if err != nil {
		respondSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func respondSessionError(c *gin.Context, err error) {
	if errors.Is(err, cart.ErrSessionNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order session not found or expired"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
