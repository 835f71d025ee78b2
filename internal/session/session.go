// Package session persists the admin "logged in" flag between runs.
//
// The flag is a plain boolean with no server validation. A login token, when
// the backend returns one, is kept beside it so that an expired token can
// drop the flag on the next start.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Keys stored in the backend
const (
	FlagKey  = "adminLoggedIn"
	TokenKey = "adminToken"

	flagValue = "true"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name
var ErrUnknownBackend = errors.New("unknown session backend")

// Backend is a minimal string key/value store
type Backend interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

// Store is what the console needs from the session layer
type Store interface {
	IsLoggedIn(ctx context.Context) (bool, error)
	SetLoggedIn(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Session implements Store on top of any Backend
type Session struct {
	backend Backend
	now     func() time.Time
}

// New wraps backend in a Session
func New(backend Backend) *Session {
	return &Session{backend: backend, now: time.Now}
}

// IsLoggedIn reports whether the flag holds exactly "true". A stored token
// whose exp claim has passed clears the flag.
func (s *Session) IsLoggedIn(ctx context.Context) (bool, error) {
	value, ok, err := s.backend.Get(ctx, FlagKey)
	if err != nil {
		return false, fmt.Errorf("read session flag: %w", err)
	}
	if !ok || value != flagValue {
		return false, nil
	}

	token, ok, err := s.backend.Get(ctx, TokenKey)
	if err != nil {
		return false, fmt.Errorf("read session token: %w", err)
	}
	if ok && tokenExpired(token, s.now()) {
		if err := s.Clear(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	return true, nil
}

// SetLoggedIn persists the flag, and the token when non-empty
func (s *Session) SetLoggedIn(ctx context.Context, token string) error {
	if err := s.backend.Set(ctx, FlagKey, flagValue); err != nil {
		return fmt.Errorf("write session flag: %w", err)
	}
	if token == "" {
		if err := s.backend.Delete(ctx, TokenKey); err != nil {
			return fmt.Errorf("drop session token: %w", err)
		}
		return nil
	}
	if err := s.backend.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("write session token: %w", err)
	}
	return nil
}

// Clear removes the flag and any token
func (s *Session) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, FlagKey, TokenKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Close releases the backend
func (s *Session) Close() error {
	return s.backend.Close()
}

// tokenExpired parses token without verifying its signature. Tokens that
// are not JWTs, or carry no exp claim, never expire.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}
