package auth

import (
	"context"
	"time"

	"cropadvisor/internal/cache"
)

const revokedSessionKeyPrefix = "revoked:session:"

// SessionStoreInterface defines revocation operations for session tokens.
type SessionStoreInterface interface {
	RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, tokenID string) (bool, error)
}

// SessionStore tracks logged-out session token IDs in Redis. The backing
// cache is fail-safe, so revocation is best effort when Redis is down; the
// token still dies at its signed expiry.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

// RevokeSession marks a session token ID as logged out until the token would expire.
func (s *SessionStore) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	key := revokedSessionKeyPrefix + tokenID
	return s.cache.Set(ctx, key, []byte("1"), ttl)
}

// IsSessionRevoked reports whether the token ID has been logged out.
func (s *SessionStore) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revokedSessionKeyPrefix + tokenID
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return data != nil, nil
}
