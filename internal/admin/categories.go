package admin

import (
	"context"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

type CategoryManager struct {
	api  *backend.Client
	auth *store.AuthStore

	mu         sync.RWMutex
	categories []models.Category
}

func (m *CategoryManager) Refresh(ctx context.Context) error {
	categories, err := m.api.GetCategories(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.categories = categories
	m.mu.Unlock()
	return nil
}

func (m *CategoryManager) Categories() []models.Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Category, len(m.categories))
	copy(out, m.categories)
	return out
}

func (m *CategoryManager) Create(ctx context.Context, input backend.CategoryInput) error {
	if err := m.api.AdminCreateCategory(ctx, m.auth.Token(), input); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *CategoryManager) Update(ctx context.Context, categoryID string, input backend.CategoryInput) error {
	if err := m.api.AdminUpdateCategory(ctx, m.auth.Token(), categoryID, input); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

// Delete passes the server's answer straight through: a category still
// referenced by products fails backend-side and that message is the one the
// operator sees.
func (m *CategoryManager) Delete(ctx context.Context, categoryID string) error {
	if err := m.api.AdminDeleteCategory(ctx, m.auth.Token(), categoryID); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
