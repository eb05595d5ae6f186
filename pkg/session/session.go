// Package session holds the bearer token used to authenticate against the inscription API.
package session

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
)

const (
	// TokenKey is the storage key of the bearer token.
	TokenKey = "authToken"

	HeaderAuthorization = "authorization"
	HeaderAccept        = "accept"
	MIMEApplicationJSON = "application/json"
)

// Session resolves auth headers from a Store. It is passed explicitly to the HTTP gateway.
type Session struct {
	store Store
}

func New(store Store) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Initialize stores the start-time token. An empty token leaves the store untouched.
func (s *Session) Initialize(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		logger.WarnContext(ctx, "Auth token is not configured, requests will be sent unauthenticated")
		return nil
	}
	if err := s.store.Set(TokenKey, token); err != nil {
		return errors.Wrap(err, "can't store auth token")
	}
	logger.DebugContext(ctx, "Auth token initialized")
	return nil
}

// SetToken replaces the stored token, e.g. after a refresh.
func (s *Session) SetToken(token string) error {
	return errors.WithStack(s.store.Set(TokenKey, strings.TrimSpace(token)))
}

// Clear removes the stored token.
func (s *Session) Clear() error {
	return errors.WithStack(s.store.Delete(TokenKey))
}

// Token returns the stored token, if any. Storage failures count as no token.
func (s *Session) Token() (string, bool) {
	token, ok, err := s.store.Get(TokenKey)
	if err != nil {
		logger.Warn("Can't read auth token from session store", slogx.Error(err))
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// AuthHeaders returns the headers to attach to an outbound request. It never fails;
// without a token the caller proceeds unauthenticated.
func (s *Session) AuthHeaders() map[string]string {
	headers := map[string]string{
		HeaderAccept: MIMEApplicationJSON,
	}
	if token, ok := s.Token(); ok {
		headers[HeaderAuthorization] = "Bearer " + token
	}
	return headers
}
