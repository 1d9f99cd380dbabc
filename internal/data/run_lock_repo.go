package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const runLockKeyPrefix = "ingestion:run:"

// RedisRunLockRepo implements per-configuration trigger exclusivity with
// a Redis SET NX lease. The TTL bounds how long a crashed holder can
// keep a configuration blocked.
type RedisRunLockRepo struct {
	client redis.UniversalClient
}

// NewRedisRunLockRepo creates a new RedisRunLockRepo with the given Redis client.
func NewRedisRunLockRepo(client redis.UniversalClient) *RedisRunLockRepo {
	return &RedisRunLockRepo{client: client}
}

// Acquire attempts to take the lease for configID. It returns false when
// another run currently holds it.
func (r *RedisRunLockRepo) Acquire(ctx context.Context, configID string, ttl time.Duration) (bool, error) {
	if configID == "" {
		return false, errors.New("configID cannot be empty")
	}
	if ttl <= 0 {
		ttl = time.Second
	}

	// SETNX followed by EXPIRE is not atomic; SET with NX + TTL is.
	cmd := r.client.SetArgs(ctx, runLockKeyPrefix+configID, time.Now().UTC().Format(time.RFC3339), redis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	})
	status, err := cmd.Result()
	if err != nil {
		// go-redis reports an unmet NX condition as redis.Nil.
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis SET NX: %w", err)
	}
	return status == "OK", nil
}

// Release frees the lease for configID. Releasing an expired or missing
// lease is not an error.
func (r *RedisRunLockRepo) Release(ctx context.Context, configID string) error {
	if configID == "" {
		return errors.New("configID cannot be empty")
	}
	if err := r.client.Del(ctx, runLockKeyPrefix+configID).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
