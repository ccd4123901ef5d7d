package admin

import (
	"context"
	"sync"

	"storefront-bff/internal/backend"
	"storefront-bff/internal/models"
	"storefront-bff/internal/store"
)

// UserManager is list-and-delete only; accounts are never created or edited
// from the back office.
type UserManager struct {
	api  *backend.Client
	auth *store.AuthStore

	mu    sync.RWMutex
	users []models.User
}

func (m *UserManager) Refresh(ctx context.Context) error {
	users, err := m.api.AdminGetUsers(ctx, m.auth.Token())
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.users = users
	m.mu.Unlock()
	return nil
}

func (m *UserManager) Users() []models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out
}

// Delete removes a non-admin account. Admin-role accounts are blocked here
// with no request issued; the backend re-enforces the same rule.
func (m *UserManager) Delete(ctx context.Context, userID string) error {
	user, ok := m.find(userID)
	if !ok {
		return ErrUnknownUser
	}
	if user.IsAdmin() {
		return ErrAdminUndeletable
	}
	if err := m.api.AdminDeleteUser(ctx, m.auth.Token(), userID); err != nil {
		return err
	}
	return m.Refresh(ctx)
}

func (m *UserManager) find(userID string) (models.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.ID == userID {
			return u, true
		}
	}
	return models.User{}, false
}
