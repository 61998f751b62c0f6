package models

// ZoneRate is the delivery fee for one configured postcode or prefix.
type ZoneRate struct {
	Fee  float64 `bson:"fee" json:"fee"`
	Name string  `bson:"name" json:"name"`
}

// DeliveryZones maps a full postcode ("YO10 3BP") or prefix ("YO10") to its
// rate. Exact matches win over prefixes; the longest prefix wins among prefixes.
type DeliveryZones map[string]ZoneRate

// PricingMode selects how delivery fees are resolved.
type PricingMode string

const (
	PricingByZone     PricingMode = "zones"
	PricingByDistance PricingMode = "distance"
)

// DistancePricingConfig drives distance-mode delivery pricing. Distances are
// miles, fees are pounds.
type DistancePricingConfig struct {
	BaseDeliveryFee         float64 `bson:"baseDeliveryFee" json:"baseDeliveryFee"`
	PricePerMile            float64 `bson:"pricePerMile" json:"pricePerMile"`
	MaxDeliveryDistance     float64 `bson:"maxDeliveryDistance" json:"maxDeliveryDistance"`
	FreeDeliveryDistance    float64 `bson:"freeDeliveryDistance" json:"freeDeliveryDistance"`
	MinimumOrderForDelivery float64 `bson:"minimumOrderForDelivery" json:"minimumOrderForDelivery"`
	// AreaDistances is the manual fallback: outward area ("YO10") to distance
	// in miles, used when no mapping provider is configured or it fails.
	AreaDistances map[string]float64 `bson:"areaDistances,omitempty" json:"areaDistances,omitempty"`
}

// FeeResult is the outcome of delivery-fee resolution. It is always populated;
// an unserved postcode yields Valid=false with a user-facing Display string
// rather than an error.
type FeeResult struct {
	Fee     *float64 `json:"fee"`
	Display string   `json:"display"`
	Zone    string   `json:"zone"`
	Valid   bool     `json:"valid"`
}
