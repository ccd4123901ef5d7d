package admin

import (
	"context"
	"fmt"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

// OrderManager supports listing (with a status filter) and status
// transitions only; order contents are immutable snapshots.
type OrderManager struct {
	api  *backend.Client
	auth *store.AuthStore

	mu     sync.RWMutex
	orders []models.Order
	filter models.OrderStatus
}

func (m *OrderManager) Refresh(ctx context.Context) error {
	m.mu.RLock()
	filter := m.filter
	m.mu.RUnlock()

	orders, err := m.api.AdminGetOrders(ctx, m.auth.Token(), filter)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.orders = orders
	m.mu.Unlock()
	return nil
}

// Filter sets the status filter and reloads the list. An empty status means
// all orders.
func (m *OrderManager) Filter(ctx context.Context, status models.OrderStatus) error {
	m.mu.Lock()
	m.filter = status
	m.mu.Unlock()
	return m.Refresh(ctx)
}

func (m *OrderManager) Orders() []models.Order {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	return out
}

// UpdateStatus moves an order along pending → processing → shipped →
// delivered (cancelled from pending/processing). Illegal transitions are
// rejected before any request is issued.
func (m *OrderManager) UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) error {
	current, ok := m.find(orderID)
	if !ok {
		return ErrUnknownOrder
	}
	if !current.OrderStatus.CanTransitionTo(next) {
		return fmt.Errorf("cannot move order from %s to %s", current.OrderStatus, next)
	}
	if err := m.api.AdminUpdateOrderStatus(ctx, m.auth.Token(), orderID, next); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *OrderManager) find(orderID string) (models.Order, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, o := range m.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
