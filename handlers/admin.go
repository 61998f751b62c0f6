package handlers

import (
	"net/http"
	"strconv"
	"time"

	"goldenfish/config"
	orderRepo "goldenfish/database/repository/order"
	"goldenfish/models"
	"goldenfish/services/menu"
	"goldenfish/services/restaurant"
	"goldenfish/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenDuration = 12 * time.Hour

// AdminHandler encapsulates the dashboard operations: settings, closures,
// promotions, the catalogue, and the order queue.
type AdminHandler struct {
	Restaurant restaurant.RestaurantService
	Menu       menu.MenuService
	Orders     orderRepo.OrderRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(rs restaurant.RestaurantService, ms menu.MenuService, or orderRepo.OrderRepository) *AdminHandler {
	return &AdminHandler{Restaurant: rs, Menu: ms, Orders: or}
}

// LoginHandler checks the dashboard credentials and issues a bearer token.
func (ah *AdminHandler) LoginHandler(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if input.Username != config.AppConfig.AdminUser || hash == "" ||
		bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)) != nil {
		zap.L().Warn("Failed admin login attempt", zap.String("username", input.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(input.Username, adminTokenDuration)
	if err != nil {
		zap.L().Error("Failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// GetSettingsHandler returns the full restaurant configuration.
func (ah *AdminHandler) GetSettingsHandler(c *gin.Context) {
	cfg, err := ah.Restaurant.Config(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// UpdateSettingsHandler replaces the restaurant configuration.
func (ah *AdminHandler) UpdateSettingsHandler(c *gin.Context) {
	var cfg models.RestaurantConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Restaurant.Update(c.Request.Context(), &cfg); err != nil {
		zap.L().Error("Failed to update settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetClosureHandler enables or disables a temporary closure.
func (ah *AdminHandler) SetClosureHandler(c *gin.Context) {
	var closure models.TemporaryClosure
	if err := c.ShouldBindJSON(&closure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Restaurant.SetClosure(c.Request.Context(), closure); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetPromotionActiveHandler flips one promotion rule on or off.
func (ah *AdminHandler) SetPromotionActiveHandler(c *gin.Context) {
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Restaurant.SetPromotionActive(c.Request.Context(), c.Param("ruleID"), input.Active); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetProductAvailabilityHandler hides or restores a product on the menu.
func (ah *AdminHandler) SetProductAvailabilityHandler(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "productID must be numeric"})
		return
	}
	var input struct {
		Available bool `json:"available"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := ah.Menu.SetProductAvailability(c.Request.Context(), productID, input.Available); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// RefreshCacheHandler rebuilds the menu and settings caches immediately,
// without waiting for the background worker.
func (ah *AdminHandler) RefreshCacheHandler(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ah.Menu.RefreshCache(ctx); err != nil {
		zap.L().Error("Failed to refresh menu cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh menu cache"})
		return
	}
	if err := ah.Restaurant.RefreshCache(ctx); err != nil {
		zap.L().Error("Failed to refresh settings cache", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh settings cache"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}

// ListOrdersHandler returns recent orders, newest first.
func (ah *AdminHandler) ListOrdersHandler(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 50
	}
	orders, err := ah.Orders.ListRecent(limit)
	if err != nil {
		zap.L().Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatusHandler transitions an order through the kitchen flow.
func (ah *AdminHandler) UpdateOrderStatusHandler(c *gin.Context) {
	var input struct {
		Status    string `json:"status"`
		PaymentID string `json:"paymentId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	if err := ah.Orders.UpdateStatus(c.Param("orderID"), input.Status, input.PaymentID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
