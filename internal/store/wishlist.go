package store

import (
	"context"
	"log/slog"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
)

// WishlistStore mirrors the cart contract for the saved-for-later product
// set: replace-on-mutation, untouched on failure.
type WishlistStore struct {
	broadcaster
	api  *backend.Client
	auth *AuthStore

	mu       sync.RWMutex
	wishlist *models.Wishlist
}

func NewWishlistStore(api *backend.Client, auth *AuthStore) *WishlistStore {
	s := &WishlistStore{api: api, auth: auth}
	auth.Subscribe(s.onAuthChange)
	return s
}

func (s *WishlistStore) onAuthChange() {
	if s.auth.Token() == "" {
		s.replace(nil)
		return
	}
	go func() {
		if err := s.Fetch(context.Background()); err != nil {
			slog.Error("Failed to fetch wishlist after login", "error", err)
		}
	}()
}

func (s *WishlistStore) Fetch(ctx context.Context) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	wl, err := s.api.GetWishlist(ctx, token)
	if err != nil {
		return err
	}
	s.replace(wl)
	return nil
}

func (s *WishlistStore) Add(ctx context.Context, productID string) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	wl, err := s.api.AddToWishlist(ctx, token, productID)
	if err != nil {
		return err
	}
	s.replace(wl)
	return nil
}

func (s *WishlistStore) Remove(ctx context.Context, productID string) error {
	token := s.auth.Token()
	if token == "" {
		return ErrNotAuthenticated
	}
	wl, err := s.api.RemoveFromWishlist(ctx, token, productID)
	if err != nil {
		return err
	}
	s.replace(wl)
	return nil
}

func (s *WishlistStore) replace(wl *models.Wishlist) {
	s.mu.Lock()
	s.wishlist = wl
	s.mu.Unlock()
	s.notify()
}

func (s *WishlistStore) Wishlist() *models.Wishlist {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.wishlist
}

func (s *WishlistStore) Contains(productID string) bool {
	wl := s.Wishlist()
	if wl == nil {
		return false
	}
	for _, p := range wl.Products {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *WishlistStore) Count() int {
	wl := s.Wishlist()
	if wl == nil {
		return 0
	}
	return len(wl.Products)
}
