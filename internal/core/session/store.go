// Package session owns the authentication state of one connected shell: the
// bearer token and profile pair, its persistence across reloads, and the
// guarantee that no reader ever observes a half-updated pair.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/skyline-bms/apartment-portal/internal/core/domain"
	"github.com/skyline-bms/apartment-portal/internal/core/ports"
)

// Store is the single owner of a Session. The route guard and view
// dispatcher only ever read snapshots; every mutation goes through Hydrate,
// Login, Logout or Invalidate.
type Store struct {
	storage ports.SessionStorage
	auth    ports.Authenticator
	logger  zerolog.Logger

	mu            sync.Mutex
	token         string
	user          *domain.UserProfile
	loading       bool
	hydrated      bool
	loginInFlight bool
}

func NewStore(storage ports.SessionStorage, auth ports.Authenticator, logger zerolog.Logger) *Store {
	// loading starts true so a guard evaluated before hydration renders a
	// pending state instead of bouncing a returning user to login.
	return &Store{storage: storage, auth: auth, logger: logger, loading: true}
}

// Hydrate loads the persisted credential pair. It runs at most once per
// store; later calls are no-ops. Both values must be present and the profile
// must parse, otherwise the session stays unauthenticated and the persisted
// copies are dropped — a token without a profile is not half a login.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return nil
	}
	s.hydrated = true
	defer func() { s.loading = false }()

	token, tokenOK, err := s.storage.Get(ctx, ports.StorageKeyToken)
	if err != nil {
		return err
	}
	raw, profileOK, err := s.storage.Get(ctx, ports.StorageKeyProfile)
	if err != nil {
		return err
	}

	if !tokenOK || !profileOK {
		s.discardPersisted(ctx)
		return nil
	}

	var user domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn().Err(err).Msg("persisted profile unreadable, failing closed")
		s.discardPersisted(ctx)
		return nil
	}

	s.token = token
	s.user = &user
	return nil
}

// Login performs the two-step credential exchange: token first, then the
// profile fetched with that same token. The pair is committed and persisted
// together only when both steps succeed. A second Login while one is in
// flight is a caller error.
func (s *Store) Login(ctx context.Context, username, password string) (*domain.UserProfile, string, error) {
	s.mu.Lock()
	if s.loginInFlight {
		s.mu.Unlock()
		return nil, "", domain.ErrLoginInFlight
	}
	s.loginInFlight = true
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loginInFlight = false
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return nil, "", err
	}

	user, err := s.auth.CurrentUser(ctx, token)
	if err != nil {
		return nil, "", err
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return nil, "", err
	}
	if err := s.storage.Set(ctx, ports.StorageKeyToken, token); err != nil {
		return nil, "", err
	}
	if err := s.storage.Set(ctx, ports.StorageKeyProfile, string(raw)); err != nil {
		// Keep the pair symmetric: a persisted token without a profile would
		// fail closed at the next hydrate anyway, so drop it now.
		_ = s.storage.Remove(ctx, ports.StorageKeyToken)
		return nil, "", err
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.hydrated = true
	s.mu.Unlock()

	return user, token, nil
}

// Logout clears the credential pair and its persisted copies. Calling it on
// an already logged-out store is a no-op.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	s.discardPersisted(ctx)
}

// Invalidate is the forced variant of Logout, triggered when any backend
// call reports the token as no longer authorized.
func (s *Store) Invalidate(ctx context.Context) {
	s.mu.Lock()
	wasAuthenticated := s.token != "" && s.user != nil
	s.mu.Unlock()

	if wasAuthenticated {
		s.logger.Warn().Msg("session invalidated by authorization failure")
	}
	s.Logout(ctx)
}

// Snapshot returns an atomic read-only copy of the session. It never carries
// exactly one of token/user.
func (s *Store) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := domain.Session{Token: s.token, Loading: s.loading}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// Token returns the current bearer token, empty when unauthenticated.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// discardPersisted removes both persisted keys as a pair.
func (s *Store) discardPersisted(ctx context.Context) {
	_ = s.storage.Remove(ctx, ports.StorageKeyToken)
	_ = s.storage.Remove(ctx, ports.StorageKeyProfile)
}
