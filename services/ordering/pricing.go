package ordering

import "goldenfish/models"

// Subtotal sums the cart lines at currency precision.
func Subtotal(items []models.CartItem) float64 {
	sum := 0.0
	for _, item := range items {
		sum += item.UnitPrice * float64(item.Quantity)
	}
	return round2(sum)
}

// UnitPrice prices one unit of a product with the selected options applied.
func UnitPrice(product models.Product, options []models.SelectedOption) float64 {
	price := product.Price
	for _, opt := range options {
		price += opt.AdditionalPrice
	}
	return round2(price)
}

// Quote computes the money summary and promotions for a session's current
// contents. Delivery fees only count when the order is for delivery and the
// postcode resolved to a served zone. Calling it twice over the same state
// yields the same numbers.
func (e *Engine) Quote(items []models.CartItem, delivery models.DeliverySelection) (models.CartTotals, models.PromotionResult) {
	subtotal := Subtotal(items)
	promos := e.EvaluatePromotions(subtotal)

	fee := 0.0
	if delivery.Type == models.ServiceDelivery && delivery.Fee.Valid && delivery.Fee.Fee != nil {
		fee = *delivery.Fee.Fee
	}

	total := round2(subtotal + fee - promos.TotalDiscount)
	if total < 0 {
		total = 0
	}

	return models.CartTotals{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    promos.TotalDiscount,
		Total:       total,
	}, promos
}
