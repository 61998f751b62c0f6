package cart

import (
	"context"
	"time"

	"goldenfish/models"
	"goldenfish/services/ordering"
)

// EngineProvider hands out a rules engine over the current restaurant
// configuration. Satisfied by the restaurant service.
type EngineProvider interface {
	Engine(ctx context.Context) (*ordering.Engine, error)
}

// CartService manages stateful order sessions. Every mutation re-quotes the
// session through the rules engine before saving, so the stored totals are
// always consistent with the stored items and fulfilment selection.
type CartService interface {
	StartSession(ctx context.Context) (*models.OrderSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.OrderSession, error)
	CancelSession(ctx context.Context, sessionID string) error

	AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.OrderSession, error)
	UpdateQuantity(ctx context.Context, sessionID string, lineIndex, quantity int) (*models.OrderSession, error)
	RemoveItem(ctx context.Context, sessionID string, lineIndex int) (*models.OrderSession, error)

	SetDeliveryType(ctx context.Context, sessionID string, serviceType models.ServiceType) (*models.OrderSession, error)
	SetPostcode(ctx context.Context, sessionID string, postcode string) (*models.OrderSession, error)
	SelectSlot(ctx context.Context, sessionID string, slot time.Time) (*models.OrderSession, error)
}
