package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SessionStore maps live session ids to account ids in redis. A token is
// only honored while its session id is present in the account's set, so
// logout and bulk revocation take effect immediately even for
// signature-valid tokens. Each account may hold several concurrent
// sessions (one per device).
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(accountID uuid.UUID) string {
	return fmt.Sprintf("sessions:%s", accountID)
}

// Add registers a freshly issued session id for the account. The whole
// set expires ttl after the most recent login; individual tokens expire
// earlier via their JWT exp claim.
func (s *SessionStore) Add(ctx context.Context, accountID uuid.UUID, sessionID string) error {
	key := sessionKey(accountID)
	if err := s.client.SAdd(ctx, key, sessionID).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

// Remove revokes exactly one session. Removing an absent session id is
// a no-op; other sessions for the account are untouched.
func (s *SessionStore) Remove(ctx context.Context, accountID uuid.UUID, sessionID string) error {
	return s.client.SRem(ctx, sessionKey(accountID), sessionID).Err()
}

// Contains reports whether the session id is still live for the account.
func (s *SessionStore) Contains(ctx context.Context, accountID uuid.UUID, sessionID string) (bool, error) {
	return s.client.SIsMember(ctx, sessionKey(accountID), sessionID).Result()
}

// RevokeAll drops every live session for the account.
func (s *SessionStore) RevokeAll(ctx context.Context, accountID uuid.UUID) error {
	return s.client.Del(ctx, sessionKey(accountID)).Err()
}
