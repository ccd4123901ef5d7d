package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/store"
)

func TestWishlistMirrorsServerPayload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","role":"user"}}`))
	})
	mux.HandleFunc("GET /wishlist", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"wishlist":{"_id":"w1","products":[{"_id":"p1","name":"Hoops"}]}}`))
	})
	mux.HandleFunc("POST /wishlist/{productId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"wishlist":{"_id":"w1","products":[{"_id":"p1"},{"_id":"p2"}]}}`))
	})
	mux.HandleFunc("DELETE /wishlist/{productId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"wishlist":{"_id":"w1","products":[]}}`))
	})
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"cart":null}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	keeper := &store.MemoryKeeper{}
	require.NoError(t, keeper.Save("tok"))
	api := backend.NewClient(srv.URL, time.Second)
	auth := store.NewAuthStore(api, keeper)
	wl := store.NewWishlistStore(api, auth)
	require.NoError(t, auth.Restore(context.Background()))

	require.Eventually(t, func() bool { return wl.Wishlist() != nil }, time.Second, 10*time.Millisecond)
	require.True(t, wl.Contains("p1"))
	require.False(t, wl.Contains("p2"))
	require.Equal(t, 1, wl.Count())

	require.NoError(t, wl.Add(context.Background(), "p2"))
	require.True(t, wl.Contains("p2"))
	require.Equal(t, 2, wl.Count())

	require.NoError(t, wl.Remove(context.Background(), "p1"))
	require.Equal(t, 0, wl.Count())
}
