package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hotel-booking/backend/internal/config"

	"github.com/redis/go-redis/v9"
)

const otpAttemptsPrefix = "otp_attempts:"

// OtpAttempts counts failed OTP submissions per key. A key is locked once the
// counter reaches maxAttempts and unlocks when the counter expires.
type OtpAttempts struct {
	client      redis.UniversalClient
	maxAttempts int64
	lockout     time.Duration
}

func NewOtpAttempts(client redis.UniversalClient, cfg config.OTPConfig) *OtpAttempts {
	return &OtpAttempts{
		client:      client,
		maxAttempts: int64(cfg.MaxAttempts),
		lockout:     cfg.Lockout,
	}
}

func (a *OtpAttempts) Locked(ctx context.Context, key string) (bool, error) {
	count, err := a.client.Get(ctx, otpAttemptsPrefix+key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get otp attempts failed: %w", err)
	}
	return count >= a.maxAttempts, nil
}

// Fail records a failed attempt. The window starts with the first failure
// and restarts when the key becomes locked.
func (a *OtpAttempts) Fail(ctx context.Context, key string) error {
	redisKey := otpAttemptsPrefix + key

	count, err := a.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return fmt.Errorf("incr otp attempts failed: %w", err)
	}

	if count == 1 || count == a.maxAttempts {
		if err := a.client.Expire(ctx, redisKey, a.lockout).Err(); err != nil {
			return fmt.Errorf("set otp attempts ttl failed: %w", err)
		}
	}

	return nil
}

func (a *OtpAttempts) Reset(ctx context.Context, key string) error {
	if err := a.client.Del(ctx, otpAttemptsPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset otp attempts failed: %w", err)
	}
	return nil
}
