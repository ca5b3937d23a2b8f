package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Sessions keeps the single current-session marker in redis: at most one
// logged-in user id at a time, mirroring the one-browser-session model the
// program was designed around.
type Sessions struct {
	c   *Cache
	key string
	ttl time.Duration
}

func NewSessions(c *Cache, appName string, ttl time.Duration) *Sessions {
	return &Sessions{c: c, key: appName + ":session:current", ttl: ttl}
}

func (s *Sessions) Put(ctx context.Context, userID string) error {
	return s.c.RDB.Set(ctx, s.key, userID, s.ttl).Err()
}

// Get returns the current session's user id, or "" when no session is active.
func (s *Sessions) Get(ctx context.Context) (string, error) {
	v, err := s.c.RDB.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return v, err
}

func (s *Sessions) Clear(ctx context.Context) error {
	return s.c.RDB.Del(ctx, s.key).Err()
}
