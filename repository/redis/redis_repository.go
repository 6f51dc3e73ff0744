package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	guestKeyPrefix   = "guest:"
)

// Repository is the key-value session store. Every method is a no-op when
// no client is configured; callers check Available to tell the difference.
type Repository interface {
	Available() bool
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetGuestSession(ctx context.Context, sessionID, guestID string, ttl time.Duration) error
	GetGuestSession(ctx context.Context, sessionID string) (string, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client
// yields a repository that reports itself unavailable.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func (r *redis) Available() bool {
	return r.client != nil
}

// SetSession stores a login session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, sessionKeyPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from a login session. A missing session yields 0.
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	if r.client == nil {
		return 0, nil
	}
	val, err := r.client.Get(ctx, sessionKeyPrefix+sessionID).Uint64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return val, nil
}

func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

// SetGuestSession binds a browser session id to a guest cart owner id and
// refreshes its TTL.
func (r *redis) SetGuestSession(ctx context.Context, sessionID, guestID string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, guestKeyPrefix+sessionID, guestID, ttl).Err()
}

// GetGuestSession returns "" when the session is unknown or expired.
func (r *redis) GetGuestSession(ctx context.Context, sessionID string) (string, error) {
	if r.client == nil {
		return "", nil
	}
	val, err := r.client.Get(ctx, guestKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}
