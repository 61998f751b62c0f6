package models

// RestaurantConfig is the full business configuration the rules engine runs
// on. It is stored as a single settings document and injected into the engine;
// the engine itself never reads storage.
type RestaurantConfig struct {
	Name         string                 `bson:"name" json:"name"`
	WeeklyHours  WeeklyHours            `bson:"weeklyHours" json:"weeklyHours"`
	SpecialDates map[string]SpecialDate `bson:"specialDates,omitempty" json:"specialDates,omitempty"`
	Closure      TemporaryClosure       `bson:"closure" json:"closure"`

	LeadTimes       LeadTimeConfig        `bson:"leadTimes" json:"leadTimes"`
	AdvanceOrdering AdvanceOrderingConfig `bson:"advanceOrdering" json:"advanceOrdering"`

	PricingMode     PricingMode           `bson:"pricingMode" json:"pricingMode"`
	Zones           DeliveryZones         `bson:"zones,omitempty" json:"zones,omitempty"`
	DistancePricing DistancePricingConfig `bson:"distancePricing" json:"distancePricing"`
	MinimumOrder    float64               `bson:"minimumOrder" json:"minimumOrder"`

	Promotions []PromotionRule `bson:"promotions,omitempty" json:"promotions,omitempty"`
}
