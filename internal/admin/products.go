package admin

import (
	"context"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

type ProductManager struct {
	api  *backend.Client
	auth *store.AuthStore

	mu       sync.RWMutex
	products []models.Product
}

func (m *ProductManager) Refresh(ctx context.Context) error {
	products, err := m.api.GetProducts(ctx)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.products = products
	m.mu.Unlock()
	return nil
}

func (m *ProductManager) Products() []models.Product {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

func (m *ProductManager) Create(ctx context.Context, input backend.ProductInput) error {
	if err := m.api.AdminCreateProduct(ctx, m.auth.Token(), input); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *ProductManager) Update(ctx context.Context, productID string, input backend.ProductInput) error {
	if err := m.api.AdminUpdateProduct(ctx, m.auth.Token(), productID, input); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *ProductManager) Delete(ctx context.Context, productID string) error {
	if err := m.api.AdminDeleteProduct(ctx, m.auth.Token(), productID); err != nil {
		return err
	}
	return m.Refresh(ctx)
}
