package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"storefront-bff/internal/admin"
	"storefront-bff/internal/auth"
	"storefront-bff/internal/backend"
	"storefront-bff/internal/cache"
	"storefront-bff/internal/catalog"
	"storefront-bff/internal/checkout"
	"storefront-bff/internal/models"
	"storefront-bff/internal/session"
	"storefront-bff/internal/store"
)

const homeCacheKey = "home:v1"

type Handler struct {
	api      *backend.Client
	catalog  *catalog.Provider
	cache    *cache.Client
	sessions *session.Registry
}

func NewHandler(api *backend.Client, catalog *catalog.Provider, cache *cache.Client, sessions *session.Registry) *Handler {
	return &Handler{
		api:      api,
		catalog:  catalog,
		cache:    cache,
		sessions: sessions,
	}
}

// Home serves the landing aggregate: categories plus featured products from
// the two-source catalog provider, cached for 30s. Fixture responses are
// never cached so the live backend gets probed again.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientIP := r.RemoteAddr
	if idx := strings.LastIndex(clientIP, ":"); idx != -1 {
		clientIP = clientIP[:idx]
	}
	if h.cache.IsRateLimited(ctx, clientIP) {
		slog.Warn("Rate limit exceeded", "ip", clientIP)
		http.Error(w, `{"error": "Too many requests"}`, http.StatusTooManyRequests)
		return
	}

	start := time.Now()
	if cached, err := h.cache.Get(ctx, homeCacheKey); err == nil {
		slog.Info("Cache HIT", "key", homeCacheKey, "duration", time.Since(start))
		w.Header().Set("Content-Type", "application/json")
		w.Write(cached)
		return
	}

	data, err := h.catalog.Home(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if !data.FromFixtures {
		go func() {
			_ = h.cache.Set(context.Background(), homeCacheKey, body, 30*time.Second)
		}()
	}

	slog.Info("Home served", "fixtures", data.FromFixtures, "duration", time.Since(start))
	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// Profile aggregates the signed-in surface: the user, their order history
// and their wishlist, fetched concurrently.
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var (
		wg     sync.WaitGroup
		orders []models.Order
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		res, err := h.api.GetOrders(ctx, sess.Auth.Token())
		if err != nil {
			slog.Error("Orders fetch error", "error", err)
			orders = []models.Order{}
		} else {
			orders = res
		}
	}()
	go func() {
		defer wg.Done()
		if err := sess.Wishlist.Fetch(ctx); err != nil {
			slog.Warn("Wishlist fetch error", "error", err)
		}
	}()
	wg.Wait()

	writeJSON(w, http.StatusOK, map[string]any{
		"user":     sess.Auth.CurrentUser(),
		"orders":   orders,
		"wishlist": sess.Wishlist.Wishlist(),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Drop(auth.TokenFrom(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// ----- cart -----

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if sess.Cart.Cart() == nil {
		if err := sess.Cart.Fetch(r.Context()); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart": sess.Cart.Cart()})
}

type addToCartRequest struct {
	ProductID     string            `json:"productId"`
	Quantity      int               `json:"quantity"`
	Customization map[string]string `json:"customization"`
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req addToCartRequest
	if !decode(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if err := sess.Cart.Add(r.Context(), req.ProductID, req.Quantity, req.Customization); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart": sess.Cart.Cart()})
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Quantity int `json:"quantity"`
	}
	if !decode(w, r, &req) {
		return
	}
	if err := sess.Cart.UpdateItem(r.Context(), r.PathValue("itemId"), req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart": sess.Cart.Cart()})
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Cart.Remove(r.Context(), r.PathValue("itemId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart": sess.Cart.Cart()})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Cart.Clear(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"cart": sess.Cart.Cart()})
}

// ----- wishlist -----

func (h *Handler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if sess.Wishlist.Wishlist() == nil {
		if err := sess.Wishlist.Fetch(r.Context()); err != nil {
			writeError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlist": sess.Wishlist.Wishlist()})
}

func (h *Handler) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Wishlist.Add(r.Context(), r.PathValue("productId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlist": sess.Wishlist.Wishlist()})
}

func (h *Handler) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Wishlist.Remove(r.Context(), r.PathValue("productId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"wishlist": sess.Wishlist.Wishlist()})
}

// ----- checkout -----

func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Checkout.Begin(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) CheckoutState(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) SelectAddress(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Checkout.Book.Select(r.PathValue("addressId")); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) SaveAddress(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var draft models.Address
	if !decode(w, r, &draft) {
		return
	}
	sess.Checkout.Book.SetDraft(draft)
	if err := sess.Checkout.Book.SaveDraft(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Checkout.Book.Delete(r.Context(), r.PathValue("addressId")); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) ContinueToPayment(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := sess.Checkout.ContinueToPayment(); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		PaymentMethod checkout.PaymentMethod `json:"paymentMethod"`
	}
	if !decode(w, r, &req) {
		return
	}
	if req.PaymentMethod != "" {
		if err := sess.Checkout.SelectMethod(req.PaymentMethod); err != nil {
			writeError(w, err)
			return
		}
	}
	if err := sess.Checkout.PlaceOrder(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	h.writeCheckoutState(w, sess)
}

func (h *Handler) writeCheckoutState(w http.ResponseWriter, sess *session.Session) {
	writeJSON(w, http.StatusOK, map[string]any{
		"step":      sess.Checkout.Step(),
		"method":    sess.Checkout.Method(),
		"orderId":   sess.Checkout.OrderID(),
		"subtotal":  sess.Checkout.Subtotal(),
		"addresses": sess.Checkout.Book.Addresses(),
		"shipping":  sess.Checkout.Book.Shipping(),
		"formOpen":  sess.Checkout.Book.FormOpen(),
	})
}

// ----- orders -----

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	orders, err := h.api.GetOrders(r.Context(), sess.Auth.Token())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	order, err := h.api.GetOrder(r.Context(), sess.Auth.Token(), r.PathValue("orderId"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"order": order})
}

// CancelOrder is not wired to the backend yet.
// TODO: call the cancellation endpoint once the backend grows one.
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]any{
		"message": "Order cancellation is not available yet",
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ----- helpers -----

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := h.sessions.ForToken(r.Context(), auth.TokenFrom(r.Context()))
	if err != nil {
		if errors.Is(err, store.ErrNotAuthenticated) {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
		} else {
			writeError(w, err)
		}
		return nil, false
	}
	return sess, true
}

func decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("JSON encode error", "error", err)
	}
}

// writeError maps the error taxonomy onto HTTP statuses: validation and
// client-side guards are 400s, payment failures 402, backend errors keep
// the backend's status and message.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *backend.APIError
	var valErr *checkout.ValidationError

	status := http.StatusBadGateway
	message := err.Error()

	switch {
	case errors.As(err, &apiErr):
		status = apiErr.StatusCode
		message = apiErr.Message
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.Is(err, store.ErrQuantityTooLow),
		errors.Is(err, checkout.ErrCartEmpty),
		errors.Is(err, checkout.ErrWrongStep):
		status = http.StatusBadRequest
	case errors.Is(err, checkout.ErrPaymentFailed):
		status = http.StatusPaymentRequired
	case errors.Is(err, store.ErrNotAuthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, admin.ErrAdminUndeletable):
		status = http.StatusForbidden
	case errors.Is(err, admin.ErrUnknownOrder), errors.Is(err, admin.ErrUnknownUser):
		status = http.StatusNotFound
	}

	writeJSON(w, status, map[string]any{"success": false, "message": message})
}
