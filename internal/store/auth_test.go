package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/store"
)

func TestLogoutIsLocalAndIdempotent(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","name":"Ava","email":"ava@example.com","role":"user"}}`))
	}))
	defer srv.Close()

	keeper := &store.MemoryKeeper{}
	auth := store.NewAuthStore(backend.NewClient(srv.URL, time.Second), keeper)

	// Logout with no prior session: same end state, zero network calls.
	auth.Logout()
	require.Nil(t, auth.CurrentUser())
	require.Empty(t, auth.Token())
	require.EqualValues(t, 0, calls.Load())

	require.NoError(t, keeper.Save("tok"))
	require.NoError(t, auth.Restore(context.Background()))
	require.True(t, auth.IsAuthenticated())
	before := calls.Load()

	auth.Logout()
	require.Nil(t, auth.CurrentUser())
	require.Empty(t, auth.Token())
	persisted, err := keeper.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
	require.Equal(t, before, calls.Load())

	auth.Logout()
	require.Nil(t, auth.CurrentUser())
	require.Equal(t, before, calls.Load())
}

func TestRestoreFailsClosedOnRejectedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"message":"jwt expired"}`))
	}))
	defer srv.Close()

	keeper := &store.MemoryKeeper{}
	require.NoError(t, keeper.Save("stale-token"))
	auth := store.NewAuthStore(backend.NewClient(srv.URL, time.Second), keeper)

	require.NoError(t, auth.Restore(context.Background()))
	require.False(t, auth.IsAuthenticated())
	require.Empty(t, auth.Token())

	persisted, err := keeper.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestRestoreWithoutTokenMakesNoCalls(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	auth := store.NewAuthStore(backend.NewClient(srv.URL, time.Second), &store.MemoryKeeper{})
	require.NoError(t, auth.Restore(context.Background()))
	require.False(t, auth.IsAuthenticated())
	require.EqualValues(t, 0, calls.Load())
}

func TestLoginPersistsTokenAndNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"success":true,"token":"fresh-token","user":{"_id":"u1","name":"Ava","role":"user"}}`))
	}))
	defer srv.Close()

	keeper := &store.MemoryKeeper{}
	auth := store.NewAuthStore(backend.NewClient(srv.URL, time.Second), keeper)

	notified := 0
	cancel := auth.Subscribe(func() { notified++ })
	defer cancel()

	user, err := auth.Login(context.Background(), backend.Credentials{Email: "ava@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "fresh-token", auth.Token())
	require.Equal(t, 1, notified)

	persisted, err := keeper.Load()
	require.NoError(t, err)
	require.Equal(t, "fresh-token", persisted)
}
