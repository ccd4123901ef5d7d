package api

import (
	"net/http"

	"storefront-bff/internal/backend"
)

// Auth endpoints relay to the commerce backend: the token minted at login
// (or OTP verification) is the same bearer the client sends back on every
// protected route, where the session registry picks it up.

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req backend.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.api.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds backend.Credentials
	if !decode(w, r, &creds) {
		return
	}
	resp, err := h.api.Login(r.Context(), creds)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
		OTP    string `json:"otp"`
	}
	if !decode(w, r, &req) {
		return
	}
	resp, err := h.api.VerifyOTP(r.Context(), req.UserID, req.OTP)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := h.api.ResendOTP(r.Context(), req.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "OTP sent"})
}

// AuthCallback completes the identity-provider redirect. The provider hands
// a backend-minted token back in the redirect query; the gateway validates
// it against /auth/me and returns the same session payload a login would,
// so the client adopts it the usual way.
func (h *Handler) AuthCallback(w http.ResponseWriter, r *http.Request) {
	if reason := r.URL.Query().Get("error"); reason != "" {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"message": "Authentication failed: " + reason,
		})
		return
	}
	token := r.URL.Query().Get("token")
	if token == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Missing token",
		})
		return
	}
	user, err := h.api.Me(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, backend.SessionResponse{Success: true, Token: token, User: user})
}

// ----- catalog browsing -----

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.api.GetProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.api.GetProduct(r.Context(), r.PathValue("productId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product": product})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.api.GetCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}
