package token

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore remembers revoked refresh-token IDs (jti) until their natural
// expiry. Logout revokes; Refresh consults.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

const revocationKeyPrefix = "revoked_token:"

type redisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore backs revocation with Redis so it survives restarts
// and is shared across instances.
func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{client: client}
}

func (s *redisRevocationStore) Revoke(ctx context.Context, jti string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil // already expired, nothing to remember
	}
	return s.client.Set(ctx, revocationKeyPrefix+jti, "1", ttl).Err()
}

func (s *redisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, revocationKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type memoryRevocationStore struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

// NewMemoryRevocationStore is the in-process fallback used when Redis is not
// configured. Single-instance only; revocations are lost on restart.
func NewMemoryRevocationStore() RevocationStore {
	return &memoryRevocationStore{entries: map[string]time.Time{}}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	if time.Now().Before(until) {
		s.entries[jti] = until
	}
	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(s.entries, jti)
		return false, nil
	}
	return true, nil
}

func (s *memoryRevocationStore) evictExpired() {
	now := time.Now()
	for jti, until := range s.entries {
		if now.After(until) {
			delete(s.entries, jti)
		}
	}
}
