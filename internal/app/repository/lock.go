package repository

import (
	"context"
	"time"
)

const syncLockKey = "catalog:sync:lock"

// AcquireSyncLock takes the single-flight lock guarding ingestion runs.
// Returns false when another run currently holds it. The TTL bounds how long
// a crashed run can block the next trigger.
func (r *Repository) AcquireSyncLock(ctx context.Context, ttl time.Duration) (bool, error) {
	return r.redis.SetNX(ctx, syncLockKey, time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

// ReleaseSyncLock drops the lock after a run finishes.
func (r *Repository) ReleaseSyncLock(ctx context.Context) error {
	return r.redis.Del(ctx, syncLockKey).Err()
}
