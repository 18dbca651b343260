package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"donations_core/internal/domain/entities"
	"donations_core/internal/usecase/interfaces"
)

// PendingOrderTTL bounds how long a payer has to approve a provider order.
const PendingOrderTTL = time.Hour

// PendingOrderStore keeps Pending Order Associations in the TTL cache.
type PendingOrderStore struct {
	cache interfaces.ICache
	ttl   time.Duration
}

func NewPendingOrderStore(cache interfaces.ICache) *PendingOrderStore {
	return &PendingOrderStore{cache: cache, ttl: PendingOrderTTL}
}

func (s *PendingOrderStore) Save(ctx context.Context, order entities.PendingOrder) error {
	b, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, pendingOrderKey(order.Provider, order.OrderID), string(b), s.ttl)
}

// Take consumes the association. A second Take for the same order returns
// ErrPendingOrderNotFound, as does an expired one.
func (s *PendingOrderStore) Take(ctx context.Context, provider entities.PaymentMethod, orderID string) (entities.PendingOrder, error) {
	raw, found, err := s.cache.Take(ctx, pendingOrderKey(provider, orderID))
	if err != nil {
		return entities.PendingOrder{}, err
	}
	if !found {
		return entities.PendingOrder{}, ErrPendingOrderNotFound
	}
	var order entities.PendingOrder
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return entities.PendingOrder{}, err
	}
	return order, nil
}

func (s *PendingOrderStore) Delete(ctx context.Context, provider entities.PaymentMethod, orderID string) error {
	return s.cache.Delete(ctx, pendingOrderKey(provider, orderID))
}

func pendingOrderKey(provider entities.PaymentMethod, orderID string) string {
	return "pending_order:" + string(provider) + ":" + strings.TrimSpace(orderID)
}
