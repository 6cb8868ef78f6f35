package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CheckAndSetRateLimit reserves a rate-limit slot for a client performing an
// action on a public form. Returns true if the action is allowed. A nil redis
// client disables limiting.
func CheckAndSetRateLimit(ctx context.Context, rdb *redis.Client, clientKey, action string, limit time.Duration) (bool, error) {
	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rate_limit:%s:%s", action, clientKey)

	wasSet, err := rdb.SetNX(ctx, key, "locked", limit).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

// GetRateLimitTTL reports how long until the client may retry.
func GetRateLimitTTL(ctx context.Context, rdb *redis.Client, clientKey, action string) (time.Duration, error) {
	if rdb == nil {
		return 0, nil
	}
	key := fmt.Sprintf("rate_limit:%s:%s", action, clientKey)
	return rdb.TTL(ctx, key).Result()
}
