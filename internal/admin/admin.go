// Package admin implements the back-office managers: one cached list per
// resource, re-fetched in full after every successful mutation. No
// pagination, no optimistic locking; server errors are surfaced verbatim.
package admin

import (
	"context"
	"errors"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

var (
	// ErrAdminUndeletable blocks deletion of admin-role accounts before any
	// request goes out. The backend re-enforces this.
	ErrAdminUndeletable = errors.New("cannot delete admin users")

	ErrUnknownOrder = errors.New("unknown order")
	ErrUnknownUser  = errors.New("unknown user")
)

// Console bundles the per-resource managers behind one admin session.
type Console struct {
	Products   *ProductManager
	Categories *CategoryManager
	Orders     *OrderManager
	Users      *UserManager

	api  *backend.Client
	auth *store.AuthStore
}

func NewConsole(api *backend.Client, auth *store.AuthStore) *Console {
	return &Console{
		Products:   &ProductManager{api: api, auth: auth},
		Categories: &CategoryManager{api: api, auth: auth},
		Orders:     &OrderManager{api: api, auth: auth},
		Users:      &UserManager{api: api, auth: auth},
		api:        api,
		auth:       auth,
	}
}

func (c *Console) Stats(ctx context.Context) (*models.DashboardStats, error) {
	return c.api.AdminGetStats(ctx, c.auth.Token())
}
