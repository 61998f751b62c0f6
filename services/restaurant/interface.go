package restaurant

import (
	"context"

	"goldenfish/models"
	"goldenfish/services/ordering"
)

// RestaurantService owns the restaurant configuration document and hands out
// rules engines built over it.
type RestaurantService interface {
	// Config returns the current restaurant configuration, from cache when warm.
	Config(ctx context.Context) (*models.RestaurantConfig, error)
	// Engine returns a rules engine over the current configuration.
	Engine(ctx context.Context) (*ordering.Engine, error)
	// Update replaces the configuration document and invalidates the cache.
	Update(ctx context.Context, cfg *models.RestaurantConfig) error
	// SetClosure updates the temporary-closure block and invalidates the cache.
	SetClosure(ctx context.Context, closure models.TemporaryClosure) error
	// SetPromotionActive flips one promotion rule and invalidates the cache.
	SetPromotionActive(ctx context.Context, ruleID string, active bool) error
	// RefreshCache rebuilds the cached configuration from the database.
	RefreshCache(ctx context.Context) error
}
