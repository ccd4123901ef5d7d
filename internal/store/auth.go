package store

import (
	"context"
	"log/slog"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
)

// AuthStore owns the current session: the bearer token and the cached user.
// A failed "who am I" check is treated as a dead session and fails closed.
type AuthStore struct {
	broadcaster
	api    *backend.Client
	tokens TokenKeeper

	mu    sync.RWMutex
	token string
	user  *models.User
}

func NewAuthStore(api *backend.Client, tokens TokenKeeper) *AuthStore {
	return &AuthStore{api: api, tokens: tokens}
}

// Restore loads a persisted token and validates it against /auth/me. An
// invalid or expired token is discarded and the store stays logged out;
// only the absence of a token or a clean validation is a nil return.
func (s *AuthStore) Restore(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return nil
	}

	user, err := s.api.Me(ctx, token)
	if err != nil {
		slog.Warn("Stored session rejected, clearing token", "error", err)
		_ = s.tokens.Clear()
		s.setSession("", nil)
		return nil
	}
	s.setSession(token, user)
	return nil
}

// Register creates an account. No session is established; the caller moves
// on to OTP verification with the returned user id.
func (s *AuthStore) Register(ctx context.Context, req backend.RegisterRequest) (*backend.RegisterResponse, error) {
	return s.api.Register(ctx, req)
}

func (s *AuthStore) Login(ctx context.Context, creds backend.Credentials) (*models.User, error) {
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.adoptSession(resp)
}

func (s *AuthStore) VerifyOTP(ctx context.Context, userID, otp string) (*models.User, error) {
	resp, err := s.api.VerifyOTP(ctx, userID, otp)
	if err != nil {
		return nil, err
	}
	return s.adoptSession(resp)
}

func (s *AuthStore) ResendOTP(ctx context.Context, userID string) error {
	return s.api.ResendOTP(ctx, userID)
}

func (s *AuthStore) adoptSession(resp *backend.SessionResponse) (*models.User, error) {
	if err := s.tokens.Save(resp.Token); err != nil {
		return nil, err
	}
	s.setSession(resp.Token, resp.User)
	return resp.User, nil
}

// Logout is purely local: token and cached user are dropped, nothing is
// revoked server-side. Calling it with no session is a no-op with the same
// end state.
func (s *AuthStore) Logout() {
	_ = s.tokens.Clear()
	s.setSession("", nil)
}

func (s *AuthStore) setSession(token string, user *models.User) {
	s.mu.Lock()
	s.token = token
	s.user = user
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) CurrentUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AuthStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *AuthStore) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

func (s *AuthStore) IsAdmin() bool {
	return s.CurrentUser().IsAdmin()
}
