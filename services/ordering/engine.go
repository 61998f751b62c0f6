package ordering

import (
	"context"
	"time"

	"goldenfish/models"
)

// DistanceProvider estimates the road distance from the restaurant to a
// postcode, in miles. Implementations are expected to be slow and unreliable;
// the engine treats any error as "use the manual estimate instead".
type DistanceProvider interface {
	DistanceMiles(ctx context.Context, postcode string) (float64, error)
}

// Engine is the availability and pricing rules engine. Every answer is a pure
// function of the injected configuration and explicit inputs; the engine
// never touches storage or the network itself (the optional DistanceProvider
// is the single external call, and it degrades on failure).
type Engine struct {
	Config   models.RestaurantConfig
	Distance DistanceProvider

	// Now overrides the clock for slot generation. Nil means time.Now.
	Now func() time.Time
}

// NewEngine builds an engine over the given configuration.
func NewEngine(cfg models.RestaurantConfig) *Engine {
	return &Engine{Config: cfg}
}

func (e *Engine) clock() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
