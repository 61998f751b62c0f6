package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Menu endpoints.
	GetMenuHandler gin.HandlerFunc

	// Availability endpoints.
	GetStatusHandler         gin.HandlerFunc
	GetAvailableTimesHandler gin.HandlerFunc

	// Delivery endpoints.
	CheckPostcodeHandler gin.HandlerFunc

	// Cart session endpoints.
	StartSessionHandler    gin.HandlerFunc
	GetSessionHandler      gin.HandlerFunc
	CancelSessionHandler   gin.HandlerFunc
	AddItemHandler         gin.HandlerFunc
	UpdateQuantityHandler  gin.HandlerFunc
	RemoveItemHandler      gin.HandlerFunc
	SetDeliveryTypeHandler gin.HandlerFunc
	SetPostcodeHandler     gin.HandlerFunc
	SelectSlotHandler      gin.HandlerFunc

	// Checkout endpoints.
	CheckoutHandler gin.HandlerFunc

	// Admin endpoints.
	AdminHandler *AdminHandler
}
