package redismocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

// RedisRepository is a mock type for the Repository type
type RedisRepository struct {
	mock.Mock
}

func (_m *RedisRepository) Available() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

func (_m *RedisRepository) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, userID, ttl)
	return ret.Error(0)
}

func (_m *RedisRepository) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	ret := _m.Called(ctx, sessionID)
	return ret.Get(0).(uint64), ret.Error(1)
}

func (_m *RedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	ret := _m.Called(ctx, sessionID)
	return ret.Error(0)
}

func (_m *RedisRepository) SetGuestSession(ctx context.Context, sessionID, guestID string, ttl time.Duration) error {
	ret := _m.Called(ctx, sessionID, guestID, ttl)
	return ret.Error(0)
}

func (_m *RedisRepository) GetGuestSession(ctx context.Context, sessionID string) (string, error) {
	ret := _m.Called(ctx, sessionID)
	return ret.String(0), ret.Error(1)
}

// NewRedisRepository creates a new instance of RedisRepository. It also registers a cleanup function to assert the mocks expectations.
func NewRedisRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RedisRepository {
	m := &RedisRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
