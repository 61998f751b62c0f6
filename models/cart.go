package models

import "time"

// SelectedOption is one customisation choice on a cart line.
type SelectedOption struct {
	OptionID        int     `json:"option_id"`
	ChoiceID        int     `json:"choice_id"`
	Name            string  `json:"name"`
	AdditionalPrice float64 `json:"additional_price"`
}

// CartItem is one line in the cart. UnitPrice already includes option
// surcharges, matching how the storefront prices customised items.
type CartItem struct {
	ProductID           int              `json:"product_id"`
	Name                string           `json:"name"`
	UnitPrice           float64          `json:"price"`
	Quantity            int              `json:"quantity"`
	Options             []SelectedOption `json:"options,omitempty"`
	SpecialInstructions string           `json:"special_instructions,omitempty"`
}

// DeliverySelection holds the customer's fulfilment choices and what the
// engine resolved for them.
type DeliverySelection struct {
	Type         ServiceType `json:"type"`
	Postcode     string      `json:"postcode,omitempty"`
	Fee          FeeResult   `json:"fee"`
	SelectedSlot *time.Time  `json:"selectedSlot,omitempty"`
}

// CartTotals is the money summary for a session.
type CartTotals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// OrderSession is the explicit session state for one in-progress order:
// cart lines, fulfilment selection, resolved fee, and evaluated promotions.
// All mutation goes through the cart service's transition methods.
type OrderSession struct {
	SessionID  string            `json:"sessionId"`
	Items      []CartItem        `json:"items"`
	Delivery   DeliverySelection `json:"delivery"`
	Totals     CartTotals        `json:"totals"`
	Promotions PromotionResult   `json:"promotions"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}
