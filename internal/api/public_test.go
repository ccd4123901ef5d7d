package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-bff/internal/api"
	"storefront-bff/internal/backend"
)

func newCallbackHandler(t *testing.T) *api.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer idp-token" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"success":false,"message":"invalid token"}`))
			return
		}
		w.Write([]byte(`{"success":true,"user":{"_id":"u1","name":"Ava","role":"user"}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return api.NewHandler(backend.NewClient(srv.URL, time.Second), nil, nil, nil)
}

func TestAuthCallbackAdoptsRedirectToken(t *testing.T) {
	h := newCallbackHandler(t)

	rec := httptest.NewRecorder()
	h.AuthCallback(rec, httptest.NewRequest("GET", "/api/auth/callback?token=idp-token", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp backend.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "idp-token", resp.Token)
	require.Equal(t, "u1", resp.User.ID)
}

func TestAuthCallbackRejectsBadRedirects(t *testing.T) {
	h := newCallbackHandler(t)

	// Provider reported an error: no token gets adopted.
	rec := httptest.NewRecorder()
	h.AuthCallback(rec, httptest.NewRequest("GET", "/api/auth/callback?error=access_denied", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// No token in the redirect at all.
	rec = httptest.NewRecorder()
	h.AuthCallback(rec, httptest.NewRequest("GET", "/api/auth/callback", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// A forged token fails backend validation and is surfaced as-is.
	rec = httptest.NewRecorder()
	h.AuthCallback(rec, httptest.NewRequest("GET", "/api/auth/callback?token=forged", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
