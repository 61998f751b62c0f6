package handlers

import (
	"net/http"
	"time"

	"goldenfish/models"
	"goldenfish/services/restaurant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler answers "are you open" and "when can I have my food".
type AvailabilityHandler struct {
	Restaurant restaurant.RestaurantService
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(rs restaurant.RestaurantService) *AvailabilityHandler {
	return &AvailabilityHandler{Restaurant: rs}
}

// GetStatusHandler reports whether the restaurant is open right now, and when
// it next opens if not.
func (ah *AvailabilityHandler) GetStatusHandler(c *gin.Context) {
	eng, err := ah.Restaurant.Engine(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load restaurant configuration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load restaurant status"})
		return
	}
	c.JSON(http.StatusOK, eng.Status(time.Now()))
}

// GetAvailableTimesHandler returns the bookable slots for a service type.
// While the restaurant is open it returns same-day slots; while closed it
// falls back to the advance-ordering window when that is enabled.
func (ah *AvailabilityHandler) GetAvailableTimesHandler(c *gin.Context) {
	serviceType := models.ServiceType(c.DefaultQuery("type", string(models.ServiceDelivery)))
	if serviceType != models.ServiceDelivery && serviceType != models.ServiceCollection {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be 'delivery' or 'collection'"})
		return
	}

	eng, err := ah.Restaurant.Engine(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to load restaurant configuration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load available times"})
		return
	}

	now := time.Now()
	times := eng.AvailableTimes(serviceType, now)
	advance := false
	if len(times) == 0 {
		times = eng.AdvanceOrderTimes(serviceType, now)
		advance = len(times) > 0
	}

	c.JSON(http.StatusOK, gin.H{
		"type":    serviceType,
		"times":   times,
		"advance": advance,
	})
}
