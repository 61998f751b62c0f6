package menuRepo

import "goldenfish/models"

// MenuRepository defines data access for the menu catalogue.
type MenuRepository interface {
	// GetCategories retrieves all categories, ordered for display.
	GetCategories() ([]models.Category, error)
	// GetProducts retrieves all available products.
	GetProducts() ([]models.Product, error)
	// GetOptions retrieves all product option groups with their choices.
	GetOptions() ([]models.ProductOption, error)
	// UpsertProduct inserts or replaces a product by id.
	UpsertProduct(product *models.Product) error
	// SetProductAvailability flips a product's availability flag.
	SetProductAvailability(productID int, available bool) error
}
