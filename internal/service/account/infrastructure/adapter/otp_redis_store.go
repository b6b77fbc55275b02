package adapter

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// OTPRedisStore keeps pending one-time codes in Redis. The TTL carries the
// expiry window, so an expired code simply no longer exists.
type OTPRedisStore struct {
	rdb *redis.Client
}

func NewOTPRedisStore(rdb *redis.Client) *OTPRedisStore {
	return &OTPRedisStore{rdb: rdb}
}

func (s *OTPRedisStore) Put(ctx context.Context, email, code string, ttl time.Duration) error {
	return errors.Wrap(s.rdb.Set(ctx, otpKeyPrefix+email, code, ttl).Err(), "set otp")
}

func (s *OTPRedisStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, otpKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "get otp")
	}
	return code, nil
}

func (s *OTPRedisStore) Clear(ctx context.Context, email string) error {
	return errors.Wrap(s.rdb.Del(ctx, otpKeyPrefix+email).Err(), "clear otp")
}
