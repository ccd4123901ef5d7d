package backend_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/backend"
)

func TestServerErrorPayloadPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"message":"Product out of stock"}`))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL, time.Second)
	_, err := c.AddToCart(context.Background(), "tok", "p1", 1, nil)

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusConflict, apiErr.StatusCode)
	require.Equal(t, "Product out of stock", apiErr.Message)
}

func TestUndecodableErrorBodyStillYieldsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL, time.Second)
	_, err := c.GetCart(context.Background(), "tok")

	var apiErr *backend.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, "unexpected status 502", apiErr.Message)
}

func TestBearerTokenAttached(t *testing.T) {
	var header atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header.Store(r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"cart":null}`))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL, time.Second)
	_, err := c.GetCart(context.Background(), "secret-token")
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", header.Load())
}

func TestMutationIsSingleShot(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"message":"boom"}`))
	}))
	defer srv.Close()

	c := backend.NewClient(srv.URL, time.Second)
	_, err := c.UpdateCartItem(context.Background(), "tok", "item-1", 3)
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}
