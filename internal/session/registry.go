// Package session keys the per-user client state (stores and checkout
// wizard) off the bearer token, so the gateway serves each shopper the same
// thin cache a browser tab would hold.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront-bff/internal/admin"
	"storefront-bff/internal/backend"
	"storefront-bff/internal/checkout"
	"storefront-bff/internal/store"
)

// Session state, the admin console included, lives and dies with the
// registry entry: Drop and the sweeper reclaim all of it at once.
type Session struct {
	ID       string
	Auth     *store.AuthStore
	Cart     *store.CartStore
	Wishlist *store.WishlistStore
	Checkout *checkout.Wizard
	Admin    *admin.Console

	lastSeen time.Time
}

type Registry struct {
	api       *backend.Client
	gateway   checkout.PaymentGateway
	keyID     string
	ttl       time.Duration
	newKeeper func(sessionID string) store.TokenKeeper

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(api *backend.Client, gateway checkout.PaymentGateway, keyID string, ttl time.Duration, newKeeper func(sessionID string) store.TokenKeeper) *Registry {
	if newKeeper == nil {
		newKeeper = func(string) store.TokenKeeper { return &store.MemoryKeeper{} }
	}
	return &Registry{
		api:       api,
		gateway:   gateway,
		keyID:     keyID,
		ttl:       ttl,
		newKeeper: newKeeper,
		sessions:  make(map[string]*Session),
	}
}

// ForToken returns the session bound to the bearer token, building one on
// first sight. Building validates the token against /auth/me; a rejected
// token never gets a session (fail-closed, same as a dead stored token).
func (r *Registry) ForToken(ctx context.Context, token string) (*Session, error) {
	r.mu.Lock()
	if s, ok := r.sessions[token]; ok {
		s.lastSeen = time.Now()
		r.mu.Unlock()
		return s, nil
	}
	r.mu.Unlock()

	s, err := r.build(ctx, token)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Another request may have built the same session meanwhile; keep the
	// first one so both share state.
	if existing, ok := r.sessions[token]; ok {
		existing.lastSeen = time.Now()
		return existing, nil
	}
	r.sessions[token] = s
	return s, nil
}

func (r *Registry) build(ctx context.Context, token string) (*Session, error) {
	id := uuid.NewString()
	keeper := r.newKeeper(id)
	if err := keeper.Save(token); err != nil {
		return nil, err
	}

	auth := store.NewAuthStore(r.api, keeper)
	cart := store.NewCartStore(r.api, auth)
	wishlist := store.NewWishlistStore(r.api, auth)

	if err := auth.Restore(ctx); err != nil {
		return nil, err
	}
	if !auth.IsAuthenticated() {
		return nil, store.ErrNotAuthenticated
	}

	return &Session{
		ID:       id,
		Auth:     auth,
		Cart:     cart,
		Wishlist: wishlist,
		Checkout: checkout.NewWizard(r.api, auth, cart, r.gateway, r.keyID),
		Admin:    admin.NewConsole(r.api, auth),
		lastSeen: time.Now(),
	}, nil
}

// Drop removes the session for a token, e.g. after logout.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[token]; ok {
		s.Auth.Logout()
		delete(r.sessions, token)
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep evicts sessions idle past the TTL until ctx is cancelled.
func (r *Registry) Sweep(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-r.ttl)
			r.mu.Lock()
			for token, s := range r.sessions {
				if s.lastSeen.Before(cutoff) {
					delete(r.sessions, token)
					slog.Info("Session evicted", "session_id", s.ID)
				}
			}
			r.mu.Unlock()
		}
	}
}
