package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

// StorageFactory returns the persisted storage namespace for one session id.
type StorageFactory func(sessionID string) ports.SessionStorage

// Manager hands out one Store per session id and hydrates each exactly once
// per process lifetime. A restarted process rebuilds stores lazily from
// their persisted namespaces.
type Manager struct {
	auth       ports.Authenticator
	storageFor StorageFactory
	logger     zerolog.Logger

	mu     sync.Mutex
	stores map[string]*Store
}

func NewManager(auth ports.Authenticator, storageFor StorageFactory, logger zerolog.Logger) *Manager {
	return &Manager{
		auth:       auth,
		storageFor: storageFor,
		logger:     logger,
		stores:     make(map[string]*Store),
	}
}

// Session returns the hydrated store for a session id, creating it on first
// sight. Hydration happens before the store is handed to any caller, so no
// route decision ever runs against an unhydrated session.
func (m *Manager) Session(ctx context.Context, sessionID string) (*Store, error) {
	m.mu.Lock()
	store, ok := m.stores[sessionID]
	if !ok {
		store = NewStore(m.storageFor(sessionID), m.auth, m.logger)
		m.stores[sessionID] = store
	}
	m.mu.Unlock()

	if err := store.Hydrate(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// Drop forgets a session id, releasing the in-process store. Persisted state
// is the store's own concern (Logout removes it).
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.stores, sessionID)
	m.mu.Unlock()
}
