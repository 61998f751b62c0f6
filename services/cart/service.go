package cart

import (
	"context"
	"fmt"
	"time"

	"goldenfish/models"
	"goldenfish/services/ordering"
	"goldenfish/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultCartService implements CartService.
type DefaultCartService struct {
	Store   SessionStore
	Engines EngineProvider
}

func (s *DefaultCartService) StartSession(ctx context.Context) (*models.OrderSession, error) {
	session := &models.OrderSession{
		SessionID: uuid.New().String(),
		Delivery:  models.DeliverySelection{Type: models.ServiceDelivery},
		UpdatedAt: time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	utils.GetLogger().Debug("Started order session", zap.String("sessionID", session.SessionID))
	return session, nil
}

func (s *DefaultCartService) GetSession(ctx context.Context, sessionID string) (*models.OrderSession, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id is required")
	}
	return s.Store.Get(ctx, sessionID)
}

func (s *DefaultCartService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

func (s *DefaultCartService) AddItem(ctx context.Context, sessionID string, item models.CartItem) (*models.OrderSession, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Identical lines merge instead of duplicating.
	merged := false
	for i := range session.Items {
		if sameLine(session.Items[i], item) {
			session.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		session.Items = append(session.Items, item)
	}
	return s.requote(ctx, session)
}

func (s *DefaultCartService) UpdateQuantity(ctx context.Context, sessionID string, lineIndex, quantity int) (*models.OrderSession, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity must not be negative")
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if lineIndex < 0 || lineIndex >= len(session.Items) {
		return nil, fmt.Errorf("cart line %d does not exist", lineIndex)
	}
	if quantity == 0 {
		session.Items = append(session.Items[:lineIndex], session.Items[lineIndex+1:]...)
	} else {
		session.Items[lineIndex].Quantity = quantity
	}
	return s.requote(ctx, session)
}

func (s *DefaultCartService) RemoveItem(ctx context.Context, sessionID string, lineIndex int) (*models.OrderSession, error) {
	return s.UpdateQuantity(ctx, sessionID, lineIndex, 0)
}

func (s *DefaultCartService) SetDeliveryType(ctx context.Context, sessionID string, serviceType models.ServiceType) (*models.OrderSession, error) {
	if serviceType != models.ServiceDelivery && serviceType != models.ServiceCollection {
		return nil, fmt.Errorf("unknown service type %q", serviceType)
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.Delivery.Type = serviceType
	if serviceType == models.ServiceCollection {
		// Collection carries no fee; drop any previously resolved one.
		session.Delivery.Postcode = ""
		session.Delivery.Fee = models.FeeResult{}
	}
	session.Delivery.SelectedSlot = nil
	return s.requote(ctx, session)
}

func (s *DefaultCartService) SetPostcode(ctx context.Context, sessionID string, postcode string) (*models.OrderSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Delivery.Type != models.ServiceDelivery {
		return nil, fmt.Errorf("postcode only applies to delivery orders")
	}
	eng, err := s.Engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	session.Delivery.Postcode = ordering.NormalizePostcode(postcode)
	session.Delivery.Fee = eng.ResolveDeliveryFee(ctx, postcode)
	return s.requote(ctx, session)
}

func (s *DefaultCartService) SelectSlot(ctx context.Context, sessionID string, slot time.Time) (*models.OrderSession, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	eng, err := s.Engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	if !slotOffered(eng, session.Delivery.Type, slot) {
		return nil, fmt.Errorf("requested time %s is not available", slot.Format("Mon 15:04"))
	}
	chosen := slot
	session.Delivery.SelectedSlot = &chosen
	return s.requote(ctx, session)
}

// slotOffered reports whether the engine currently offers the given slot,
// checking same-day times first and the advance-ordering window second.
func slotOffered(eng *ordering.Engine, serviceType models.ServiceType, slot time.Time) bool {
	now := time.Now()
	if eng.Now != nil {
		now = eng.Now()
	}
	// Today's window first; it includes post-midnight slots when the close
	// rolls past midnight. Anything further out must come from the
	// advance-ordering window.
	for _, t := range eng.AvailableTimes(serviceType, now) {
		if t.Equal(slot) {
			return true
		}
	}
	for _, t := range eng.AdvanceOrderTimes(serviceType, now) {
		if t.Equal(slot) {
			return true
		}
	}
	return false
}

func (s *DefaultCartService) requote(ctx context.Context, session *models.OrderSession) (*models.OrderSession, error) {
	eng, err := s.Engines.Engine(ctx)
	if err != nil {
		return nil, err
	}
	session.Totals, session.Promotions = eng.Quote(session.Items, session.Delivery)
	session.UpdatedAt = time.Now()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func validateItem(item models.CartItem) error {
	if item.ProductID <= 0 {
		return fmt.Errorf("product id is required")
	}
	if item.Name == "" {
		return fmt.Errorf("item name is required")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if item.UnitPrice < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}

func sameLine(a, b models.CartItem) bool {
	if a.ProductID != b.ProductID || a.SpecialInstructions != b.SpecialInstructions {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if a.Options[i] != b.Options[i] {
			return false
		}
	}
	return true
}
