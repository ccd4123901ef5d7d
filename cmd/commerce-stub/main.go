// A local stand-in for the commerce backend, enough to click through the
// BFF by hand: login, who-am-I, catalog reads and a per-token in-memory
// cart. Not used by tests and not part of the deployed system.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"storefront-bff/internal/models"
)

type stub struct {
	mu    sync.Mutex
	carts map[string]*models.Cart
}

func main() {
	s := &stub{carts: make(map[string]*models.Cart)}
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"success": true,
			"token":   "stub-token",
			"user":    stubUser(),
		})
	})

	mux.HandleFunc("GET /api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			http.Error(w, `{"success":false,"message":"no token"}`, http.StatusUnauthorized)
			return
		}
		writeJSON(w, map[string]any{"success": true, "user": stubUser()})
	})

	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "categories": []models.Category{
			{ID: "c1", Name: "Earrings"},
			{ID: "c2", Name: "Paintings"},
		}})
	})

	mux.HandleFunc("GET /api/products/featured", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "products": []models.Product{stubProduct()}})
	})

	mux.HandleFunc("GET /api/cart", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "cart": s.cart(r)})
	})

	mux.HandleFunc("POST /api/cart", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProductID string `json:"productId"`
			Quantity  int    `json:"quantity"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		cart := s.cart(r)
		s.mu.Lock()
		cart.Items = append(cart.Items, models.CartItem{
			ID:       "item-" + strconv.Itoa(len(cart.Items)+1),
			Product:  stubProduct(),
			Quantity: req.Quantity,
			Price:    stubProduct().Price,
		})
		recompute(cart)
		s.mu.Unlock()
		writeJSON(w, map[string]any{"success": true, "cart": cart})
	})

	mux.HandleFunc("DELETE /api/cart", func(w http.ResponseWriter, r *http.Request) {
		cart := s.cart(r)
		s.mu.Lock()
		cart.Items = nil
		recompute(cart)
		s.mu.Unlock()
		writeJSON(w, map[string]any{"success": true, "cart": cart})
	})

	log.Println("Commerce stub listening on :5000")
	if err := http.ListenAndServe(":5000", mux); err != nil {
		log.Fatal(err)
	}
}

func (s *stub) cart(r *http.Request) *models.Cart {
	token := r.Header.Get("Authorization")
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[token]; ok {
		return c
	}
	c := &models.Cart{ID: "cart-1", UserID: "u1"}
	s.carts[token] = c
	return c
}

func recompute(c *models.Cart) {
	c.Subtotal = 0
	for _, item := range c.Items {
		c.Subtotal += item.Price * float64(item.Quantity)
	}
	c.TotalAmount = c.Subtotal - c.Discount + c.Tax + c.Shipping
}

func stubUser() models.User {
	return models.User{ID: "u1", Name: "Dev User", Email: "dev@example.com", Role: "user", IsVerified: true}
}

func stubProduct() models.Product {
	return models.Product{ID: "p1", Name: "Rose Gold Hoop Earrings", Price: 1299, Stock: 5}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
