package orderRepo

import "goldenfish/models"

// OrderRepository defines access to persisted checkout orders.
type OrderRepository interface {
	// Create inserts a new order record.
	Create(order *models.Order) error
	// GetByID retrieves an order by its unique ID.
	GetByID(orderID string) (*models.Order, error)
	// UpdateStatus transitions an order's status, recording the payment id
	// when one exists.
	UpdateStatus(orderID, status, paymentID string) error
	// ListRecent returns the most recent orders, newest first.
	ListRecent(limit int64) ([]models.Order, error)
}
