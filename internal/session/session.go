// Package session owns the mock authentication gate.
//
// The gate is a single boolean derived from whether a token is persisted
// under storage.KeyAuthToken. There is no credential database: any
// non-empty email/password pair logs in. Real credential verification
// must replace Login entirely before this is used for anything but a demo.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aanand-mishra/employee-dashboard/internal/storage"
	"github.com/aanand-mishra/employee-dashboard/internal/types"
)

// DefaultToken is the opaque value written on login when no other token
// is configured.
const DefaultToken = "mock-jwt-token-123456"

// ErrInvalidCredentials is returned by Login when either field is empty.
var ErrInvalidCredentials = errors.New("invalid credentials")

type Store struct {
	store storage.Storage
	log   *slog.Logger
	token string

	mu            sync.RWMutex
	authenticated bool
}

// New returns a Store that persists token under storage.KeyAuthToken.
// An empty token falls back to DefaultToken.
func New(store storage.Storage, log *slog.Logger, token string) *Store {
	if token == "" {
		token = DefaultToken
	}
	return &Store{store: store, log: log, token: token}
}

// Initialize sets the flag from the presence of a persisted token. Run it
// once at startup, before anything consults IsAuthenticated.
func (s *Store) Initialize(ctx context.Context) error {
	_, err := s.store.Get(ctx, storage.KeyAuthToken)
	switch {
	case err == nil:
		s.setAuthenticated(true)
	case errors.Is(err, storage.ErrKeyNotFound):
		s.setAuthenticated(false)
	default:
		return fmt.Errorf("session.Initialize: %w", err)
	}

	s.log.Debug("session initialised", slog.Bool("authenticated", s.IsAuthenticated()))
	return nil
}

// Login accepts any pair of non-empty credentials.
func (s *Store) Login(ctx context.Context, creds types.Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return ErrInvalidCredentials
	}

	if err := s.store.Set(ctx, storage.KeyAuthToken, s.token); err != nil {
		return fmt.Errorf("session.Login: %w", err)
	}
	s.setAuthenticated(true)

	s.log.Info("user logged in", slog.String("email", creds.Email))
	return nil
}

// Logout erases the token. Calling it while logged out is fine.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, storage.KeyAuthToken); err != nil {
		return fmt.Errorf("session.Logout: %w", err)
	}
	s.setAuthenticated(false)

	s.log.Info("user logged out")
	return nil
}

func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Token is the value handed to clients after a successful login.
func (s *Store) Token() string {
	return s.token
}

func (s *Store) setAuthenticated(v bool) {
	s.mu.Lock()
	s.authenticated = v
	s.mu.Unlock()
}
