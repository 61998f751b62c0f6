package models

// ServiceType selects delivery or collection handling.
type ServiceType string

const (
	ServiceDelivery   ServiceType = "delivery"
	ServiceCollection ServiceType = "collection"
)

// LeadTimeConfig holds the preparation buffers and slot granularity, in minutes.
type LeadTimeConfig struct {
	CollectionLeadTime int `bson:"collectionLeadTime" json:"collectionLeadTime"`
	DeliveryLeadTime   int `bson:"deliveryLeadTime" json:"deliveryLeadTime"`
	TimeInterval       int `bson:"timeInterval" json:"timeInterval"`
}

// LeadTime returns the preparation buffer for the given service type, in minutes.
func (c LeadTimeConfig) LeadTime(serviceType ServiceType) int {
	if serviceType == ServiceCollection {
		return c.CollectionLeadTime
	}
	return c.DeliveryLeadTime
}

// AdvanceOrderingConfig governs slot generation while the restaurant is closed.
type AdvanceOrderingConfig struct {
	Enabled               bool `bson:"enabled" json:"enabled"`
	AllowClosedHourOrders bool `bson:"allowClosedHourOrders" json:"allowClosedHourOrders"`
	// MinimumAdvanceTime is the gap, in minutes, between the next opening and
	// the earliest advance slot on that day.
	MinimumAdvanceTime int `bson:"minimumAdvanceTime" json:"minimumAdvanceTime"`
	MaxAdvanceDays     int `bson:"maxAdvanceDays" json:"maxAdvanceDays"`
}
