package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/admin"
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

func newConsole(t *testing.T, mux *http.ServeMux, log *callLog) *admin.Console {
	t.Helper()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"user":{"_id":"adm","name":"Root","role":"admin"}}`))
	})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.hit(r)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	keeper := &store.MemoryKeeper{}
	require.NoError(t, keeper.Save("admin-token"))
	api := backend.NewClient(srv.URL, time.Second)
	auth := store.NewAuthStore(api, keeper)
	require.NoError(t, auth.Restore(context.Background()))
	return admin.NewConsole(api, auth)
}

func TestAdminUserDeletionGuard(t *testing.T) {
	log := newCallLog()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"users":[
		  {"_id":"u1","name":"Root","email":"root@example.com","role":"admin"},
		  {"_id":"u2","name":"Ava","email":"ava@example.com","role":"user"}
		]}`))
	})
	mux.HandleFunc("DELETE /admin/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	console := newConsole(t, mux, log)
	ctx := context.Background()
	require.NoError(t, console.Users.Refresh(ctx))

	// Admin-role accounts are blocked before any request goes out.
	require.ErrorIs(t, console.Users.Delete(ctx, "u1"), admin.ErrAdminUndeletable)
	require.Equal(t, 0, log.count("DELETE /admin/users/u1"))

	require.ErrorIs(t, console.Users.Delete(ctx, "nope"), admin.ErrUnknownUser)

	require.NoError(t, console.Users.Delete(ctx, "u2"))
	require.Equal(t, 1, log.count("DELETE /admin/users/u2"))
	// Every successful mutation re-fetches the full list.
	require.Equal(t, 2, log.count("GET /admin/users"))
}

func TestOrderStatusTransitions(t *testing.T) {
	log := newCallLog()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /admin/orders", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"orders":[{"_id":"o1","orderStatus":"pending","totalAmount":2000}]}`))
	})
	mux.HandleFunc("PUT /admin/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	console := newConsole(t, mux, log)
	ctx := context.Background()
	require.NoError(t, console.Orders.Refresh(ctx))

	// pending cannot jump straight to delivered.
	err := console.Orders.UpdateStatus(ctx, "o1", "delivered")
	require.Error(t, err)
	require.Equal(t, 0, log.count("PUT /admin/orders/o1"))

	require.ErrorIs(t, console.Orders.UpdateStatus(ctx, "missing", "processing"), admin.ErrUnknownOrder)

	require.NoError(t, console.Orders.UpdateStatus(ctx, "o1", "processing"))
	require.Equal(t, 1, log.count("PUT /admin/orders/o1"))
	require.Equal(t, 2, log.count("GET /admin/orders"))

	require.NoError(t, console.Orders.UpdateStatus(ctx, "o1", "cancelled"))
	require.Equal(t, 2, log.count("PUT /admin/orders/o1"))
}

func TestCategoryDeleteSurfacesServerMessage(t *testing.T) {
	log := newCallLog()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"categories":[{"_id":"c1","name":"Earrings"}]}`))
	})
	mux.HandleFunc("DELETE /admin/categories/{categoryId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Category has 12 products and cannot be deleted"}`))
	})

	console := newConsole(t, mux, log)
	ctx := context.Background()
	require.NoError(t, console.Categories.Refresh(ctx))

	err := console.Categories.Delete(ctx, "c1")
	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Category has 12 products and cannot be deleted", apiErr.Message)
	// Failed mutations do not trigger a re-fetch.
	require.Equal(t, 1, log.count("GET /categories"))
}
