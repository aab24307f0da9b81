package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sessionTTL bounds how long an untouched persisted session survives. Every
// write refreshes it, so active sessions never expire under a valid token.
const sessionTTL = 30 * 24 * time.Hour

// SessionStorage is the persisted key/value surface behind one session
// store, namespaced by session id.
// Key format: session:<session_id>:<key>
type SessionStorage struct {
	client    *redis.Client
	sessionID string
}

// NewSessionStorage returns the storage namespace for a single session id.
func NewSessionStorage(client *redis.Client, sessionID string) *SessionStorage {
	return &SessionStorage{client: client, sessionID: sessionID}
}

func (s *SessionStorage) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("session get: %w", err)
	}
	return val, true, nil
}

func (s *SessionStorage) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, sessionTTL).Err(); err != nil {
		return fmt.Errorf("session set: %w", err)
	}
	return nil
}

func (s *SessionStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("session remove: %w", err)
	}
	return nil
}

func (s *SessionStorage) key(key string) string {
	return fmt.Sprintf("session:%s:%s", s.sessionID, key)
}
