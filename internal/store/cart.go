package store

import (
	"context"
	"log/slog"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
)

// CartStore caches the server-owned cart. Every successful mutation replaces
// the whole held cart with the server's echoed aggregate; on failure the
// previous cart is kept as-is and the error goes to the caller.
type CartStore struct {
	broadcaster
	api  *backend.Client
	auth *AuthStore

	mu   sync.RWMutex
	cart *models.Cart
}

func NewCartStore(api *backend.Client, auth *AuthStore) *CartStore {
	s := &CartStore{api: api, auth: auth}
	auth.Subscribe(s.onAuthChange)
	return s
}

// onAuthChange tracks identity changes only: login triggers a background
// fetch, logout drops the cached cart without any network call.
func (s *CartStore) onAuthChange() {
	if s.auth.Token() == "" {
		s.replace(nil)
		return
	}
	go func() {
		if err := s.Fetch(context.Background()); err != nil {
			slog.Error("Failed to fetch cart after login", "error", err)
		}
	}()
}

func (s *CartStore) Fetch(ctx context.Context) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	cart, err := s.api.GetCart(ctx, token)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *CartStore) Add(ctx context.Context, productID string, quantity int, customization map[string]string) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	cart, err := s.api.AddToCart(ctx, token, productID, quantity, customization)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// UpdateItem enforces the quantity floor before any request goes out.
func (s *CartStore) UpdateItem(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return ErrQuantityTooLow
	}
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	cart, err := s.api.UpdateCartItem(ctx, token, itemID, quantity)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *CartStore) Remove(ctx context.Context, itemID string) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	cart, err := s.api.RemoveCartItem(ctx, token, itemID)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *CartStore) Clear(ctx context.Context) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	cart, err := s.api.ClearCart(ctx, token)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *CartStore) replace(cart *models.Cart) {
	s.mu.Lock()
	s.cart = cart
	s.mu.Unlock()
	s.notify()
}

// Cart returns the last server payload, nil before the first fetch.
func (s *CartStore) Cart() *models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart
}

func (s *CartStore) ItemCount() int {
	return s.Cart().ItemCount()
}

// Total is the server's number; it is never recomputed here.
func (s *CartStore) Total() float64 {
	c := s.Cart()
	if c == nil {
		return 0
	}
	return c.TotalAmount
}
