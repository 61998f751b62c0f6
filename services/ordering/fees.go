package ordering

import (
	"context"
	"fmt"
	"strings"

	"goldenfish/models"
)

// NormalizePostcode uppercases, strips whitespace, and reformats the input
// as "outward inward" with a single space before the final three characters,
// the shape the zone table is keyed on. Inputs too short to split are
// returned compacted.
func NormalizePostcode(raw string) string {
	compact := strings.ToUpper(strings.Join(strings.Fields(raw), ""))
	if len(compact) <= 3 {
		return compact
	}
	return compact[:len(compact)-3] + " " + compact[len(compact)-3:]
}

// ResolveDeliveryFee resolves the delivery fee for a postcode. It is total:
// malformed or unserved postcodes produce a Valid=false result, never an
// error. In zone mode an exact match beats any prefix match, and the longest
// configured prefix wins among prefixes.
func (e *Engine) ResolveDeliveryFee(ctx context.Context, postcode string) models.FeeResult {
	if e.Config.PricingMode == models.PricingByDistance {
		return e.resolveDistanceFee(ctx, postcode)
	}

	norm := NormalizePostcode(postcode)
	if norm == "" {
		return outOfAreaResult()
	}

	if rate, ok := e.Config.Zones[norm]; ok {
		return feeResult(rate.Fee, rate.Name)
	}

	bestLen := 0
	var best models.ZoneRate
	for key, rate := range e.Config.Zones {
		if key != norm && strings.HasPrefix(norm, key) && len(key) > bestLen {
			bestLen = len(key)
			best = rate
		}
	}
	if bestLen > 0 {
		return feeResult(best.Fee, best.Name)
	}
	return outOfAreaResult()
}

func feeResult(fee float64, zone string) models.FeeResult {
	display := fmt.Sprintf("£%.2f", fee)
	if fee == 0 {
		display = "Free delivery"
	}
	f := fee
	return models.FeeResult{Fee: &f, Display: display, Zone: zone, Valid: true}
}

func outOfAreaResult() models.FeeResult {
	return models.FeeResult{Fee: nil, Display: "Out of delivery area", Zone: "Not served", Valid: false}
}
