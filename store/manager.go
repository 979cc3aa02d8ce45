// store/manager.go
package store

import (
	"sync"

	"github.com/vinshop/admin_console/services"
)

// Manager hands out one Stores set per signed-in session, keyed by user id.
// Mirrored entity state is session-scoped the way a browser tab's would be:
// two admins see their own copies, and logout drops the mirror.
type Manager struct {
	mu       sync.Mutex
	api      *services.APIClient
	sessions map[string]*Stores
}

func NewManager(api *services.APIClient) *Manager {
	return &Manager{
		api:      api,
		sessions: make(map[string]*Stores),
	}
}

// For returns the stores of the given user, creating them on first use.
func (m *Manager) For(userID string) *Stores {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[userID]; ok {
		return s
	}
	s := NewStores(m.api)
	m.sessions[userID] = s
	return s
}

// Drop discards a user's mirrored state on logout.
func (m *Manager) Drop(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}
