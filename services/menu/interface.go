package menu

import (
	"context"

	"goldenfish/models"
)

// MenuService serves the assembled menu document and admin catalogue updates.
type MenuService interface {
	// GetMenu returns the assembled menu, from cache when warm.
	GetMenu(ctx context.Context) (*models.Menu, error)
	// RefreshCache rebuilds the cached menu document from the database.
	RefreshCache(ctx context.Context) error
	// SetProductAvailability flips a product's availability and invalidates
	// the cached menu.
	SetProductAvailability(ctx context.Context, productID int, available bool) error
}
