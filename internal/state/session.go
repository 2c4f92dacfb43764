// Package state holds the console's client-side state containers: session,
// theme and catalog filters. Each is a plain struct with explicit operations,
// handed to consumers at the composition root.
package state

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/erazemk/konzola/internal/model"
	"github.com/erazemk/konzola/internal/storage"
)

// Session is a snapshot of the authentication state.
type Session struct {
	User            *model.User
	Token           string
	IsAuthenticated bool
	Loading         bool
}

// SessionStore holds the current session. The signed-in user is persisted to
// durable storage; the API token never is.
type SessionStore struct {
	mu      sync.Mutex
	store   *storage.Store
	session Session
}

// NewSessionStore creates an unauthenticated session store backed by store.
func NewSessionStore(store *storage.Store) *SessionStore {
	return &SessionStore{store: store}
}

// LoginStart marks a sign-in as in flight.
func (s *SessionStore) LoginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Loading = true
}

// LoginSuccess establishes an authenticated session and persists the user
// (only the user) to durable storage.
func (s *SessionStore) LoginSuccess(ctx context.Context, user model.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{
		User:            &user,
		Token:           token,
		IsAuthenticated: true,
	}

	data, err := json.Marshal(user)
	if err != nil {
		slog.Error("failed to encode user for persistence", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyLoggedInUser, string(data)); err != nil {
		slog.Error("failed to persist session", "error", err)
	}
}

// LoginFailure clears the session fields. Durable storage is left untouched.
func (s *SessionStore) LoginFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
}

// Logout clears the session and removes the persisted entry.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = Session{}
	if err := s.store.Delete(ctx, storage.KeyLoggedInUser); err != nil {
		slog.Error("failed to remove persisted session", "error", err)
	}
}

// Restore loads the persisted session at startup. A missing or malformed
// entry leaves the store unauthenticated; malformed entries are removed.
func (s *SessionStore) Restore(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok, err := s.store.Get(ctx, storage.KeyLoggedInUser)
	if err != nil {
		return err
	}
	if !ok {
		s.session = Session{}
		return nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(value), &user); err != nil {
		slog.Warn("discarding malformed persisted session", "error", err)
		s.session = Session{}
		if err := s.store.Delete(ctx, storage.KeyLoggedInUser); err != nil {
			slog.Error("failed to remove malformed session", "error", err)
		}
		return nil
	}

	s.session = Session{User: &user, IsAuthenticated: true}
	return nil
}

// UpdateUser merges fields into the current user, if one exists, and
// re-persists the result.
func (s *SessionStore) UpdateUser(ctx context.Context, partial model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return
	}
	s.session.User.Merge(partial)

	data, err := json.Marshal(s.session.User)
	if err != nil {
		slog.Error("failed to encode user for persistence", "error", err)
		return
	}
	if err := s.store.Set(ctx, storage.KeyLoggedInUser, string(data)); err != nil {
		slog.Error("failed to persist session", "error", err)
	}
}

// Snapshot returns a copy of the current session.
func (s *SessionStore) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.session
	if s.session.User != nil {
		user := *s.session.User
		snap.User = &user
	}
	return snap
}
