// Package auth holds the robot session token and attaches it to outgoing
// RPCs.
package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSource holds the current session token. It is safe for concurrent
// use.
type TokenSource struct {
	mu    sync.Mutex
	token string
}

// NewTokenSource builds a source holding the given token. An empty token
// means unauthenticated.
func NewTokenSource(token string) *TokenSource {
	return &TokenSource{token: token}
}

// Token returns the current token.
func (s *TokenSource) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken replaces the current token, for example after a refresh.
func (s *TokenSource) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// ExpiresAt reports the token's expiry claim. The signature is not checked;
// the robot verifies it, this only schedules refreshes.
func (s *TokenSource) ExpiresAt() (time.Time, error) {
	token := s.Token()
	if token == "" {
		return time.Time{}, fmt.Errorf("no token held")
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("token has no expiry claim")
	}
	return claims.ExpiresAt.Time, nil
}

// Credentials adapts the source to grpc per-RPC credentials.
type Credentials struct {
	Source *TokenSource
}

// GetRequestMetadata attaches the bearer token to the outgoing call.
func (c Credentials) GetRequestMetadata(ctx context.Context, uri ...string) (map[string]string, error) {
	token := c.Source.Token()
	if token == "" {
		return nil, nil
	}
	return map[string]string{"authorization": "Bearer " + token}, nil
}

// RequireTransportSecurity reports false: robot links are direct and the
// deployment terminates TLS outside the client.
func (c Credentials) RequireTransportSecurity() bool { return false }
