package session_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/checkout"
	"storefront-bff/internal/session"
	"storefront-bff/internal/store"
)

type noopGateway struct{}

func (noopGateway) Open(ctx context.Context, req checkout.PaymentRequest) (*checkout.Receipt, error) {
	return &checkout.Receipt{}, nil
}

func newTestRegistry(t *testing.T) *session.Registry {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"invalid token"}`))
			return
		}
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","name":"Ava","role":"user"}}`))
	})
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"cart":{"_id":"c1","items":[]}}`))
	})
	mux.HandleFunc("GET /wishlist", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"wishlist":{"_id":"w1","products":[]}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	api := backend.NewClient(srv.URL, time.Second)
	return session.NewRegistry(api, noopGateway{}, "key-id", time.Minute, nil)
}

func TestSessionsAreKeyedByToken(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	first, err := reg.ForToken(ctx, "good-token")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.True(t, first.Auth.IsAuthenticated())
	require.NotNil(t, first.Admin)

	second, err := reg.ForToken(ctx, "good-token")
	require.NoError(t, err)
	require.Same(t, first, second)
	require.Equal(t, 1, reg.Len())
}

func TestRejectedTokenGetsNoSession(t *testing.T) {
	reg := newTestRegistry(t)
	_, err := reg.ForToken(context.Background(), "bad-token")
	require.ErrorIs(t, err, store.ErrNotAuthenticated)
	require.Equal(t, 0, reg.Len())
}

func TestDropEndsSession(t *testing.T) {
	reg := newTestRegistry(t)
	ctx := context.Background()

	first, err := reg.ForToken(ctx, "good-token")
	require.NoError(t, err)

	reg.Drop("good-token")
	require.Equal(t, 0, reg.Len())
	require.False(t, first.Auth.IsAuthenticated())

	replacement, err := reg.ForToken(ctx, "good-token")
	require.NoError(t, err)
	require.NotSame(t, first, replacement)
	// Session state, the admin console included, does not outlive the entry.
	require.NotSame(t, first.Admin, replacement.Admin)
}
