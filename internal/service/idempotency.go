package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClaimIdempotencyKey reserves a client-supplied idempotency key for a user.
// It returns false when the key was already used, meaning the mutation is a
// retry of an earlier submission and must not run again. A nil client
// disables the guard.
func ClaimIdempotencyKey(ctx context.Context, rdb *redis.Client, userID uuid.UUID, key string, ttl time.Duration) (bool, error) {
	if rdb == nil || key == "" {
		return true, nil
	}

	redisKey := fmt.Sprintf("idempotency:user:%s:%s", userID.String(), key)

	wasSet, err := rdb.SetNX(ctx, redisKey, "used", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check idempotency key in redis: %w", err)
	}

	return wasSet, nil
}
