package checkout

import (
	"context"
	"fmt"
	"time"

	orderRepo "goldenfish/database/repository/order"
	"goldenfish/models"
	"goldenfish/services/cart"
	"goldenfish/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Cart     cart.CartService
	Engines  cart.EngineProvider
	Orders   orderRepo.OrderRepository
	Payments PaymentHandler
}

func (s *DefaultCheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	logger := utils.GetLogger()

	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, fmt.Errorf("customer name and phone are required")
	}

	session, err := s.Cart.GetSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Items) == 0 {
		return nil, fmt.Errorf("cannot check out an empty cart")
	}

	eng, err := s.Engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	cfg := eng.Config

	if session.Delivery.Type == models.ServiceDelivery {
		if req.Address == "" {
			return nil, fmt.Errorf("delivery address is required")
		}
		if !session.Delivery.Fee.Valid {
			return nil, fmt.Errorf("delivery postcode is outside our delivery area")
		}
		if min := deliveryMinimum(cfg); session.Totals.Subtotal < min {
			return nil, fmt.Errorf("minimum order for delivery is £%.2f", min)
		}
	}

	// Orders without a pre-booked slot are ASAP orders and need the
	// restaurant to be open right now.
	if session.Delivery.SelectedSlot == nil {
		now := time.Now()
		if eng.Now != nil {
			now = eng.Now()
		}
		status := eng.Status(now)
		if !status.IsOpen {
			return nil, fmt.Errorf("we are not taking orders right now: %s", status.Reason)
		}
	}

	order := &models.Order{
		OrderID:       uuid.New().String(),
		SessionID:     session.SessionID,
		Items:         session.Items,
		Delivery:      session.Delivery,
		Totals:        session.Totals,
		Promotions:    session.Promotions,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Address:       req.Address,
		Notes:         req.Notes,
		Status:        "pending",
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	invoice, err := s.Payments.ProcessPayment(ctx, order, models.PaymentRequest{
		Method:   req.PaymentMethod,
		Amount:   session.Totals.Total,
		Currency: "gbp",
	})
	if err != nil {
		return nil, fmt.Errorf("payment failed: %w", err)
	}
	order.PaymentID = invoice.PaymentID
	if req.PaymentMethod == "card" {
		order.Status = "awaiting_payment"
	}

	if err := s.Orders.Create(order); err != nil {
		return nil, err
	}
	if err := s.Cart.CancelSession(ctx, session.SessionID); err != nil {
		logger.Warn("Failed to discard session after checkout", zap.Error(err))
	}

	logger.Info("Order placed",
		zap.String("order", order.OrderID),
		zap.String("type", string(order.Delivery.Type)),
		zap.Float64("total", order.Totals.Total))
	return &CheckoutResult{Order: order, Invoice: invoice}, nil
}

// deliveryMinimum picks the stricter of the general minimum order and the
// distance-mode delivery minimum.
func deliveryMinimum(cfg models.RestaurantConfig) float64 {
	min := cfg.MinimumOrder
	if cfg.PricingMode == models.PricingByDistance && cfg.DistancePricing.MinimumOrderForDelivery > min {
		min = cfg.DistancePricing.MinimumOrderForDelivery
	}
	return min
}
