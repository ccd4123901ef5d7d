package api

import (
	"net/http"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
)

// Admin handlers sit behind the RequireAdmin middleware. Each session owns
// its console; its cached lists follow the fetch → mutate → re-fetch cycle
// of the managers, and the whole thing is reclaimed with the session.

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	stats, err := sess.Admin.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"stats": stats})
}

// ----- products -----

func (h *Handler) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Products.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": c.Products.Products()})
}

func (h *Handler) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var input backend.ProductInput
	if !decode(w, r, &input) {
		return
	}
	c := sess.Admin
	if err := c.Products.Create(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"products": c.Products.Products()})
}

func (h *Handler) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var input backend.ProductInput
	if !decode(w, r, &input) {
		return
	}
	c := sess.Admin
	if err := c.Products.Update(r.Context(), r.PathValue("productId"), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": c.Products.Products()})
}

func (h *Handler) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Products.Delete(r.Context(), r.PathValue("productId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": c.Products.Products()})
}

// ----- categories -----

func (h *Handler) AdminListCategories(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Categories.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": c.Categories.Categories()})
}

func (h *Handler) AdminCreateCategory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var input backend.CategoryInput
	if !decode(w, r, &input) {
		return
	}
	c := sess.Admin
	if err := c.Categories.Create(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"categories": c.Categories.Categories()})
}

func (h *Handler) AdminUpdateCategory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var input backend.CategoryInput
	if !decode(w, r, &input) {
		return
	}
	c := sess.Admin
	if err := c.Categories.Update(r.Context(), r.PathValue("categoryId"), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": c.Categories.Categories()})
}

func (h *Handler) AdminDeleteCategory(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Categories.Delete(r.Context(), r.PathValue("categoryId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": c.Categories.Categories()})
}

// ----- orders -----

func (h *Handler) AdminListOrders(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	filter := models.OrderStatus(r.URL.Query().Get("status"))
	if err := c.Orders.Filter(r.Context(), filter); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": c.Orders.Orders()})
}

func (h *Handler) AdminUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req struct {
		OrderStatus models.OrderStatus `json:"orderStatus"`
	}
	if !decode(w, r, &req) {
		return
	}
	c := sess.Admin
	if err := c.Orders.UpdateStatus(r.Context(), r.PathValue("orderId"), req.OrderStatus); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": c.Orders.Orders()})
}

// ----- users -----

func (h *Handler) AdminListUsers(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Users.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": c.Users.Users()})
}

func (h *Handler) AdminDeleteUser(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	c := sess.Admin
	if err := c.Users.Delete(r.Context(), r.PathValue("userId")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": c.Users.Users()})
}
