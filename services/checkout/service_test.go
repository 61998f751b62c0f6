package checkout

import (
	"context"
	"fmt"
	"testing"
	"time"

	"goldenfish/models"
	"goldenfish/services/cart"
	"goldenfish/services/ordering"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedEngineProvider struct {
	cfg models.RestaurantConfig
	now time.Time
}

func (p *fixedEngineProvider) Engine(ctx context.Context) (*ordering.Engine, error) {
	eng := ordering.NewEngine(p.cfg)
	now := p.now
	eng.Now = func() time.Time { return now }
	return eng, nil
}

// fakePaymentHandler records the request and settles instantly.
type fakePaymentHandler struct {
	lastAmount float64
	lastMethod string
	failWith   error
}

func (h *fakePaymentHandler) ProcessPayment(ctx context.Context, order *models.Order, req models.PaymentRequest) (*models.Invoice, error) {
	if h.failWith != nil {
		return nil, h.failWith
	}
	h.lastAmount = req.Amount
	h.lastMethod = req.Method
	return &models.Invoice{
		InvoiceID: "inv-1",
		OrderID:   order.OrderID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		PaymentID: "secret-1",
		Status:    "pending",
	}, nil
}

// memoryOrderRepo keeps created orders in a slice.
type memoryOrderRepo struct {
	orders []models.Order
}

func (r *memoryOrderRepo) Create(order *models.Order) error {
	r.orders = append(r.orders, *order)
	return nil
}

func (r *memoryOrderRepo) GetByID(orderID string) (*models.Order, error) {
	for i := range r.orders {
		if r.orders[i].OrderID == orderID {
			return &r.orders[i], nil
		}
	}
	return nil, fmt.Errorf("order %s not found", orderID)
}

func (r *memoryOrderRepo) UpdateStatus(orderID, status, paymentID string) error { return nil }

func (r *memoryOrderRepo) ListRecent(limit int64) ([]models.Order, error) { return r.orders, nil }

func checkoutConfig() models.RestaurantConfig {
	return models.RestaurantConfig{
		Name: "Golden Fish",
		WeeklyHours: models.WeeklyHours{
			time.Tuesday: {Open: "17:00", Close: "23:00", Enabled: true},
		},
		LeadTimes: models.LeadTimeConfig{
			CollectionLeadTime: 15,
			DeliveryLeadTime:   45,
			TimeInterval:       15,
		},
		PricingMode:  models.PricingByZone,
		Zones:        models.DeliveryZones{"YO10": {Fee: 2.50, Name: "City East"}},
		MinimumOrder: 10.00,
	}
}

// Tuesday 3 June 2025, 18:00 — open.
var checkoutNow = time.Date(2025, 6, 3, 18, 0, 0, 0, time.UTC)

type fixture struct {
	svc      *DefaultCheckoutService
	cartSvc  cart.CartService
	payments *fakePaymentHandler
	orders   *memoryOrderRepo
}

func newFixture(now time.Time) *fixture {
	engines := &fixedEngineProvider{cfg: checkoutConfig(), now: now}
	cartSvc := &cart.DefaultCartService{Store: cart.NewMemorySessionStore(), Engines: engines}
	payments := &fakePaymentHandler{}
	orders := &memoryOrderRepo{}
	return &fixture{
		svc: &DefaultCheckoutService{
			Cart:     cartSvc,
			Engines:  engines,
			Orders:   orders,
			Payments: payments,
		},
		cartSvc:  cartSvc,
		payments: payments,
		orders:   orders,
	}
}

func (f *fixture) sessionWithItems(t *testing.T, quantity int) string {
	t.Helper()
	ctx := context.Background()
	session, err := f.cartSvc.StartSession(ctx)
	require.NoError(t, err)
	item := models.CartItem{ProductID: 1, Name: "Cod & Chips", UnitPrice: 8.50, Quantity: quantity}
	_, err = f.cartSvc.AddItem(ctx, session.SessionID, item)
	require.NoError(t, err)
	return session.SessionID
}

func TestCheckoutCashCollection(t *testing.T) {
	f := newFixture(checkoutNow)
	ctx := context.Background()
	sessionID := f.sessionWithItems(t, 2)
	_, err := f.cartSvc.SetDeliveryType(ctx, sessionID, models.ServiceCollection)
	require.NoError(t, err)

	res, err := f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", res.Order.Status)
	assert.InDelta(t, 17.00, f.payments.lastAmount, 0.001)
	assert.Equal(t, "cash", f.payments.lastMethod)
	require.Len(t, f.orders.orders, 1)

	// Session is gone after a successful checkout.
	_, err = f.cartSvc.GetSession(ctx, sessionID)
	assert.ErrorIs(t, err, cart.ErrSessionNotFound)
}

func TestCheckoutCardDelivery(t *testing.T) {
	f := newFixture(checkoutNow)
	ctx := context.Background()
	sessionID := f.sessionWithItems(t, 2)
	_, err := f.cartSvc.SetPostcode(ctx, sessionID, "YO10 3BP")
	require.NoError(t, err)

	res, err := f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		Address:       "1 Example Street",
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	assert.Equal(t, "awaiting_payment", res.Order.Status)
	assert.Equal(t, "secret-1", res.Order.PaymentID)
	// Total includes the £2.50 delivery fee.
	assert.InDelta(t, 19.50, f.payments.lastAmount, 0.001)
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	f := newFixture(checkoutNow)
	ctx := context.Background()
	session, err := f.cartSvc.StartSession(ctx)
	require.NoError(t, err)
	_, err = f.cartSvc.SetDeliveryType(ctx, session.SessionID, models.ServiceCollection)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     session.SessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "empty cart")
}

func TestCheckoutDeliveryValidation(t *testing.T) {
	f := newFixture(checkoutNow)
	ctx := context.Background()

	// Missing address.
	sessionID := f.sessionWithItems(t, 2)
	_, err := f.cartSvc.SetPostcode(ctx, sessionID, "YO10 3BP")
	require.NoError(t, err)
	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "address")

	// Unserved postcode.
	sessionID = f.sessionWithItems(t, 2)
	_, err = f.cartSvc.SetPostcode(ctx, sessionID, "LS1 1AA")
	require.NoError(t, err)
	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		Address:       "1 Example Street",
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "delivery area")

	// Under the delivery minimum.
	sessionID = f.sessionWithItems(t, 1) // 8.50 < 10.00
	_, err = f.cartSvc.SetPostcode(ctx, sessionID, "YO10 3BP")
	require.NoError(t, err)
	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		Address:       "1 Example Street",
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "minimum order")
}

func TestCheckoutRejectsWhenClosedWithoutSlot(t *testing.T) {
	// Monday — the restaurant never opens.
	closedNow := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	f := newFixture(closedNow)
	ctx := context.Background()
	sessionID := f.sessionWithItems(t, 2)
	_, err := f.cartSvc.SetDeliveryType(ctx, sessionID, models.ServiceCollection)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		PaymentMethod: "cash",
	})
	assert.ErrorContains(t, err, "not taking orders")
	assert.Empty(t, f.orders.orders)
}

func TestCheckoutPaymentFailureLeavesSession(t *testing.T) {
	f := newFixture(checkoutNow)
	ctx := context.Background()
	sessionID := f.sessionWithItems(t, 2)
	_, err := f.cartSvc.SetDeliveryType(ctx, sessionID, models.ServiceCollection)
	require.NoError(t, err)

	f.payments.failWith = assert.AnError
	_, err = f.svc.Checkout(ctx, CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Sam",
		CustomerPhone: "01904 000000",
		PaymentMethod: "cash",
	})
	require.Error(t, err)
	assert.Empty(t, f.orders.orders)

	// The cart survives a failed payment so the customer can retry.
	_, err = f.cartSvc.GetSession(ctx, sessionID)
	assert.NoError(t, err)
}
