package ordering

import (
	"math"
	"sort"

	"goldenfish/models"
)

// EvaluatePromotions selects the single best-qualifying promotion for a cart
// subtotal. Rules are filtered to active tiers the subtotal reaches, then the
// highest MinAmount wins outright — tiers never stack. A cart that qualifies
// for nothing gets the zero result.
func (e *Engine) EvaluatePromotions(subtotal float64) models.PromotionResult {
	var qualifying []models.PromotionRule
	for _, rule := range e.Config.Promotions {
		if rule.Active && subtotal >= rule.MinAmount {
			qualifying = append(qualifying, rule)
		}
	}
	if len(qualifying) == 0 {
		return models.PromotionResult{}
	}

	sort.SliceStable(qualifying, func(i, j int) bool {
		return qualifying[i].MinAmount > qualifying[j].MinAmount
	})
	best := qualifying[0]

	var result models.PromotionResult
	discount := 0.0

	switch best.Kind {
	case models.PromotionAmountOff:
		if best.AmountOff == nil {
			return models.PromotionResult{}
		}
		discount = best.AmountOff.Amount
	case models.PromotionPercentOff:
		if best.PercentOff == nil {
			return models.PromotionResult{}
		}
		discount = subtotal * best.PercentOff.Percent / 100
		if limit := best.PercentOff.MaxDiscount; limit != nil && discount > *limit {
			discount = *limit
		}
	case models.PromotionFreeItem:
		if best.FreeItem == nil {
			return models.PromotionResult{}
		}
		result.FreeItems = append(result.FreeItems, models.FreeItemLine{
			Name:     best.FreeItem.Name,
			Quantity: 1,
			Value:    best.FreeItem.Value,
		})
	default:
		return models.PromotionResult{}
	}

	discount = round2(discount)
	result.Discounts = append(result.Discounts, models.AppliedPromotion{
		RuleID:      best.ID,
		Kind:        best.Kind,
		Name:        best.Name,
		Description: best.Description,
		Discount:    discount,
	})
	result.TotalDiscount = discount
	return result
}

// round2 rounds to currency precision, two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
