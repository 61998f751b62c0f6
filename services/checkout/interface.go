package checkout

import (
	"context"

	"goldenfish/models"
)

// CheckoutRequest carries everything needed to turn a session into an order.
type CheckoutRequest struct {
	SessionID     string `json:"sessionId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Address       string `json:"address,omitempty"`
	Notes         string `json:"notes,omitempty"`
	PaymentMethod string `json:"paymentMethod"` // "card" or "cash"
}

// CheckoutResult is what the storefront needs to finish the flow: the
// persisted order plus the payment invoice (with the Stripe client secret
// when paying by card).
type CheckoutResult struct {
	Order   *models.Order   `json:"order"`
	Invoice *models.Invoice `json:"invoice"`
}

// CheckoutService validates a session and converts it into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// PaymentHandler settles the money side of an order.
type PaymentHandler interface {
	ProcessPayment(ctx context.Context, order *models.Order, req models.PaymentRequest) (*models.Invoice, error)
}
