package models

// PromotionKind discriminates the rule payload. Exactly one of the pointer
// fields on PromotionRule is non-nil for a well-formed rule.
type PromotionKind string

const (
	PromotionAmountOff  PromotionKind = "amount_off"
	PromotionPercentOff PromotionKind = "percent_off"
	PromotionFreeItem   PromotionKind = "free_item"
)

// AmountOffData takes a fixed amount off the subtotal.
type AmountOffData struct {
	Amount float64 `bson:"amount" json:"amount"`
}

// PercentOffData takes a percentage off the subtotal, optionally capped.
type PercentOffData struct {
	Percent     float64  `bson:"percent" json:"percent"`
	MaxDiscount *float64 `bson:"maxDiscount,omitempty" json:"maxDiscount,omitempty"`
}

// FreeItemData adds a zero-priced line to the cart. Value is the item's
// regular price, shown to the customer but never subtracted from the total.
type FreeItemData struct {
	Name  string  `bson:"name" json:"name"`
	Value float64 `bson:"value" json:"value"`
}

// PromotionRule is one tier of the promotion table. Rules are evaluated
// against the cart subtotal; only the highest qualifying MinAmount applies.
type PromotionRule struct {
	ID          string          `bson:"id" json:"id"`
	Kind        PromotionKind   `bson:"kind" json:"kind"`
	Name        string          `bson:"name" json:"name"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	MinAmount   float64         `bson:"minAmount" json:"minAmount"`
	Active      bool            `bson:"active" json:"active"`
	AmountOff   *AmountOffData  `bson:"amountOff,omitempty" json:"amountOff,omitempty"`
	PercentOff  *PercentOffData `bson:"percentOff,omitempty" json:"percentOff,omitempty"`
	FreeItem    *FreeItemData   `bson:"freeItem,omitempty" json:"freeItem,omitempty"`
}

// AppliedPromotion records a rule that matched the cart.
type AppliedPromotion struct {
	RuleID      string        `json:"ruleId"`
	Kind        PromotionKind `json:"kind"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Discount    float64       `json:"discount"`
}

// FreeItemLine is a zero-priced cart line granted by a free_item rule.
type FreeItemLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Value    float64 `json:"value"`
}

// PromotionResult is the outcome of promotion evaluation. A cart that
// qualifies for nothing gets the zero value, never a nil.
type PromotionResult struct {
	Discounts     []AppliedPromotion `json:"discounts"`
	TotalDiscount float64            `json:"totalDiscount"`
	FreeItems     []FreeItemLine     `json:"freeItems"`
}
