package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/store"
)

type callLog struct {
	mu     sync.Mutex
	counts map[string]int
}

func newCallLog() *callLog {
	return &callLog{counts: make(map[string]int)}
}

func (l *callLog) hit(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.counts[r.Method+" "+r.URL.Path]++
}

func (l *callLog) count(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[key]
}

const initialCart = `{"success":true,"cart":{"_id":"c1","items":[{"_id":"item-1","product":{"_id":"p1","name":"Hoops","price":500},"quantity":2,"price":500,"subtotal":1000}],"subtotal":1000,"totalAmount":1000}}`

// PUT echoes the server's authority: quantity 3 and whatever total it says.
const updatedCart = `{"success":true,"cart":{"_id":"c1","items":[{"_id":"item-1","product":{"_id":"p1","name":"Hoops","price":500},"quantity":3,"price":500,"subtotal":1500}],"subtotal":1500,"totalAmount":1500}}`

func newCartBackend(t *testing.T, log *callLog) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","name":"Ava","role":"user"}}`))
	})
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(initialCart))
	})
	mux.HandleFunc("PUT /cart/{itemId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(updatedCart))
	})
	mux.HandleFunc("POST /cart", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Out of stock"}`))
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.hit(r)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newAuthedCart(t *testing.T, url string) (*store.AuthStore, *store.CartStore) {
	t.Helper()
	keeper := &store.MemoryKeeper{}
	require.NoError(t, keeper.Save("tok"))
	api := backend.NewClient(url, time.Second)
	auth := store.NewAuthStore(api, keeper)
	cart := store.NewCartStore(api, auth)
	require.NoError(t, auth.Restore(context.Background()))
	// Restore kicks off the automatic fetch; wait for it.
	require.Eventually(t, func() bool { return cart.Cart() != nil }, time.Second, 10*time.Millisecond)
	return auth, cart
}

func TestQuantityFloorBlocksCallAndUpdateDisplaysServerTotal(t *testing.T) {
	log := newCallLog()
	srv := newCartBackend(t, log)
	_, cart := newAuthedCart(t, srv.URL)

	require.Equal(t, 2, cart.Cart().Items[0].Quantity)
	require.Equal(t, 1000.0, cart.Total())

	// Zero and negative quantities are rejected before any request.
	require.ErrorIs(t, cart.UpdateItem(context.Background(), "item-1", 0), store.ErrQuantityTooLow)
	require.ErrorIs(t, cart.UpdateItem(context.Background(), "item-1", -2), store.ErrQuantityTooLow)
	require.Equal(t, 0, log.count("PUT /cart/item-1"))
	require.Equal(t, 2, cart.Cart().Items[0].Quantity)

	require.NoError(t, cart.UpdateItem(context.Background(), "item-1", 3))
	require.Equal(t, 1, log.count("PUT /cart/item-1"))
	require.Equal(t, 3, cart.Cart().Items[0].Quantity)
	require.Equal(t, 1500.0, cart.Total())
}

func TestFailedMutationLeavesCartUntouched(t *testing.T) {
	log := newCallLog()
	srv := newCartBackend(t, log)
	_, cart := newAuthedCart(t, srv.URL)

	before := cart.Cart()
	err := cart.Add(context.Background(), "p9", 1, nil)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Out of stock", apiErr.Message)
	require.Same(t, before, cart.Cart())
}

func TestCartDropsOnLogoutWithoutNetworkCall(t *testing.T) {
	log := newCallLog()
	srv := newCartBackend(t, log)
	auth, cart := newAuthedCart(t, srv.URL)

	fetches := log.count("GET /cart")
	auth.Logout()
	require.Nil(t, cart.Cart())
	require.Equal(t, fetches, log.count("GET /cart"))
}

func TestMutationsRequireSession(t *testing.T) {
	log := newCallLog()
	srv := newCartBackend(t, log)

	api := backend.NewClient(srv.URL, time.Second)
	auth := store.NewAuthStore(api, &store.MemoryKeeper{})
	cart := store.NewCartStore(api, auth)

	require.ErrorIs(t, cart.Add(context.Background(), "p1", 1, nil), store.ErrNotAuthenticated)
	require.ErrorIs(t, cart.Fetch(context.Background()), store.ErrNotAuthenticated)
	require.Equal(t, 0, log.count("POST /cart"))
	require.Equal(t, 0, log.count("GET /cart"))
}
