package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"goldenfish/config"
	"goldenfish/cron"
	"goldenfish/database"
	menuRepoPkg "goldenfish/database/repository/menu"
	orderRepoPkg "goldenfish/database/repository/order"
	settingsRepoPkg "goldenfish/database/repository/settings"
	"goldenfish/handlers"
	"goldenfish/middleware"
	"goldenfish/routes"
	"goldenfish/services/cart"
	"goldenfish/services/checkout"
	"goldenfish/services/geo"
	menuSvcPkg "goldenfish/services/menu"
	"goldenfish/services/postcode"
	"goldenfish/services/restaurant"
	"goldenfish/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	menuRepo := menuRepoPkg.NewMongoMenuRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	cacheTTL := time.Duration(config.AppConfig.CacheRefreshMinutes) * time.Minute
	menuService := &menuSvcPkg.DefaultMenuService{
		Repo:     menuRepo,
		CacheTTL: cacheTTL,
	}

	var distanceProvider *geo.GoogleDistanceProvider
	if config.AppConfig.GoogleAPIKey != "" {
		distanceProvider = geo.NewGoogleDistanceProvider(config.AppConfig.RestaurantPostcode)
	}
	restaurantService := &restaurant.DefaultRestaurantService{
		Repo:     settingsRepo,
		CacheTTL: cacheTTL,
	}
	if distanceProvider != nil {
		restaurantService.Distance = distanceProvider
	}

	cartService := &cart.DefaultCartService{
		Store:   cart.NewRedisSessionStore(),
		Engines: restaurantService,
	}

	checkoutService := &checkout.DefaultCheckoutService{
		Cart:     cartService,
		Engines:  restaurantService,
		Orders:   orderRepo,
		Payments: &checkout.StripePaymentHandler{},
	}

	menuHandler := handlers.NewMenuHandler(menuService)
	availabilityHandler := handlers.NewAvailabilityHandler(restaurantService)
	deliveryHandler := handlers.NewDeliveryHandler(restaurantService, postcode.NewClient())
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	adminHandler := handlers.NewAdminHandler(restaurantService, menuService, orderRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Menu endpoints.
		GetMenuHandler: menuHandler.GetMenuHandler,

		// Availability endpoints.
		GetStatusHandler:         availabilityHandler.GetStatusHandler,
		GetAvailableTimesHandler: availabilityHandler.GetAvailableTimesHandler,

		// Delivery endpoints.
		CheckPostcodeHandler: deliveryHandler.CheckPostcodeHandler,

		// Cart session endpoints.
		StartSessionHandler:    cartHandler.StartSessionHandler,
		GetSessionHandler:      cartHandler.GetSessionHandler,
		CancelSessionHandler:   cartHandler.CancelSessionHandler,
		AddItemHandler:         cartHandler.AddItemHandler,
		UpdateQuantityHandler:  cartHandler.UpdateQuantityHandler,
		RemoveItemHandler:      cartHandler.RemoveItemHandler,
		SetDeliveryTypeHandler: cartHandler.SetDeliveryTypeHandler,
		SetPostcodeHandler:     cartHandler.SetPostcodeHandler,
		SelectSlotHandler:      cartHandler.SelectSlotHandler,

		// Checkout endpoints.
		CheckoutHandler: checkoutHandler.CheckoutHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background cache refresh.
	cron.InitCacheRefreshWorker(menuService, restaurantService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
