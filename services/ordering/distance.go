package ordering

import (
	"context"
	"fmt"
	"strings"

	"goldenfish/models"

	"go.uber.org/zap"
)

// resolveDistanceFee prices delivery by road distance. The pluggable provider
// is asked first; on any failure the manual area-estimate table takes over,
// so a mapping outage can never break fee rendering.
func (e *Engine) resolveDistanceFee(ctx context.Context, postcode string) models.FeeResult {
	norm := NormalizePostcode(postcode)
	if norm == "" {
		return outOfAreaResult()
	}

	miles, ok := e.providerDistance(ctx, norm)
	if !ok {
		miles, ok = e.manualDistance(norm)
	}
	if !ok {
		return models.FeeResult{
			Fee:     nil,
			Display: "Unable to estimate delivery distance",
			Zone:    "Unknown",
			Valid:   false,
		}
	}

	dp := e.Config.DistancePricing
	if dp.MaxDeliveryDistance > 0 && miles > dp.MaxDeliveryDistance {
		return models.FeeResult{
			Fee:     nil,
			Display: "Sorry, you're outside our delivery range",
			Zone:    "Too far",
			Valid:   false,
		}
	}

	fee := 0.0
	if miles > dp.FreeDeliveryDistance {
		fee = round2(dp.BaseDeliveryFee + miles*dp.PricePerMile)
	}
	return feeResult(fee, fmt.Sprintf("%.1f miles", miles))
}

func (e *Engine) providerDistance(ctx context.Context, postcode string) (float64, bool) {
	if e.Distance == nil {
		return 0, false
	}
	miles, err := e.Distance.DistanceMiles(ctx, postcode)
	if err != nil {
		zap.L().Warn("distance provider failed, using manual estimate",
			zap.String("postcode", postcode), zap.Error(err))
		return 0, false
	}
	return miles, true
}

// manualDistance looks the postcode's outward area up in the configured
// estimate table, e.g. "YO10 3BP" -> "YO10".
func (e *Engine) manualDistance(postcode string) (float64, bool) {
	area := postcode
	if i := strings.IndexByte(postcode, ' '); i > 0 {
		area = postcode[:i]
	}
	miles, ok := e.Config.DistancePricing.AreaDistances[area]
	return miles, ok
}

