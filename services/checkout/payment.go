package checkout

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"goldenfish/models"
	"goldenfish/utils"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripePaymentHandler implements PaymentHandler. Card payments create a
// Stripe PaymentIntent; the invoice's PaymentID carries the client secret the
// storefront confirms with. Cash orders settle at the counter and stay pending.
type StripePaymentHandler struct{}

func (h *StripePaymentHandler) ProcessPayment(ctx context.Context, order *models.Order, req models.PaymentRequest) (*models.Invoice, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, fmt.Errorf("invalid payment request: %w", err)
	}

	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		OrderID:   order.OrderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return h.processCardPayment(ctx, order, req, inv)
	case "cash":
		utils.GetLogger().Info("Cash payment recorded", zap.String("order", order.OrderID))
		return inv, nil
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (h *StripePaymentHandler) processCardPayment(ctx context.Context, order *models.Order, req models.PaymentRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("orderId", order.OrderID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	inv.PaymentID = pi.ClientSecret
	inv.Status = "awaiting_confirmation"
	inv.UpdatedAt = time.Now()

	utils.GetLogger().Info("Card payment intent created",
		zap.String("order", order.OrderID),
		zap.String("intent", pi.ID))
	return inv, nil
}

func validatePaymentRequest(req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return errors.New("invalid payment amount")
	}
	if req.Currency == "" {
		return errors.New("missing currency")
	}
	if req.Method != "card" && req.Method != "cash" {
		return errors.New("unsupported method")
	}
	return nil
}
