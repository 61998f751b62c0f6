package routes

import (
	"net/http"
	"time"

	"goldenfish/handlers"
	"goldenfish/middleware"
	"goldenfish/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterMenuRoutes registers the public menu endpoint.
func RegisterMenuRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/menu")
	{
		api.GET("", hb.GetMenuHandler)
	}
}

// RegisterAvailabilityRoutes registers opening-hours and slot endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("/status", hb.GetStatusHandler)
		api.GET("/times", hb.GetAvailableTimesHandler)
	}
}

// RegisterDeliveryRoutes registers the postcode fee check.
func RegisterDeliveryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/delivery")
	{
		api.GET("/check-postcode", hb.CheckPostcodeHandler)
	}
}

// RegisterCartRoutes sets up the order session endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	cartGroup := r.Group("/api/cart")
	{
		cartGroup.POST("/session", hb.StartSessionHandler)
		cartGroup.GET("/session/:sessionID", hb.GetSessionHandler)
		cartGroup.DELETE("/session/:sessionID", hb.CancelSessionHandler)
		cartGroup.POST("/session/:sessionID/items", hb.AddItemHandler)
		cartGroup.PUT("/session/:sessionID/items", hb.UpdateQuantityHandler)
		cartGroup.DELETE("/session/:sessionID/items", hb.RemoveItemHandler)
		cartGroup.PUT("/session/:sessionID/delivery-type", hb.SetDeliveryTypeHandler)
		cartGroup.PUT("/session/:sessionID/postcode", hb.SetPostcodeHandler)
		cartGroup.PUT("/session/:sessionID/slot", hb.SelectSlotHandler)
	}
}

// RegisterCheckoutRoutes sets up the checkout endpoint.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkout")
	{
		api.POST("", hb.CheckoutHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for dashboard operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.POST("/login", hb.AdminHandler.LoginHandler)

		// Protected routes (Require Authentication)
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/settings", hb.AdminHandler.GetSettingsHandler)
		adminGroup.PUT("/settings", hb.AdminHandler.UpdateSettingsHandler)
		adminGroup.PUT("/closure", hb.AdminHandler.SetClosureHandler)
		adminGroup.PUT("/promotions/:ruleID", hb.AdminHandler.SetPromotionActiveHandler)
		adminGroup.PUT("/products/:productID/availability", hb.AdminHandler.SetProductAvailabilityHandler)
		adminGroup.POST("/refresh-cache", hb.AdminHandler.RefreshCacheHandler)
		adminGroup.GET("/orders", hb.AdminHandler.ListOrdersHandler)
		adminGroup.PUT("/orders/:orderID/status", hb.AdminHandler.UpdateOrderStatusHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Golden Fish",
			"deps":    utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterMenuRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterDeliveryRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
