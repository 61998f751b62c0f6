package handlers

import (
	"net/http"

	"goldenfish/services/ordering"
	"goldenfish/services/postcode"
	"goldenfish/services/restaurant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DeliveryHandler resolves postcodes to delivery fees.
type DeliveryHandler struct {
	Restaurant restaurant.RestaurantService
	Postcodes  postcode.Validator
}

// NewDeliveryHandler creates a new DeliveryHandler. The postcode validator
// may be nil, in which case only the zone table is consulted.
func NewDeliveryHandler(rs restaurant.RestaurantService, pv postcode.Validator) *DeliveryHandler {
	return &DeliveryHandler{Restaurant: rs, Postcodes: pv}
}

// CheckPostcodeHandler resolves the delivery fee for a postcode. Unknown or
// unserved postcodes return a 200 with valid=false; the endpoint never fails
// on bad customer input.
func (dh *DeliveryHandler) CheckPostcodeHandler(c *gin.Context) {
	raw := c.Query("postcode")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "postcode query parameter is required"})
		return
	}

	ctx := c.Request.Context()
	norm := ordering.NormalizePostcode(raw)

	// The external register is advisory: a lookup failure never blocks fee
	// resolution against the zone table.
	if dh.Postcodes != nil {
		if lookup, err := dh.Postcodes.Validate(ctx, raw); err != nil {
			zap.L().Warn("Postcode register unavailable", zap.Error(err))
		} else if !lookup.Valid {
			c.JSON(http.StatusOK, gin.H{
				"postcode": norm,
				"valid":    false,
				"display":  "Please check your postcode",
			})
			return
		}
	}

	eng, err := dh.Restaurant.Engine(ctx)
	if err != nil {
		zap.L().Error("Failed to load restaurant configuration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check postcode"})
		return
	}

	fee := eng.ResolveDeliveryFee(ctx, raw)
	c.JSON(http.StatusOK, gin.H{
		"postcode": norm,
		"valid":    fee.Valid,
		"fee":      fee.Fee,
		"display":  fee.Display,
		"zone":     fee.Zone,
	})
}
