package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// generationsKey is the set that tracks which generations exist, so Activate
// can enumerate and purge the stale ones.
const generationsKey = "cache:generations"

// RedisBackend persists cache generations in Redis. Entry keys are
// "cache:<generation>:<key>".
type RedisBackend struct {
	rdb *redis.Client
}

// NewRedisBackend wraps an existing Redis client.
func NewRedisBackend(rdb *redis.Client) *RedisBackend {
	return &RedisBackend{rdb: rdb}
}

func entryKey(generation, key string) string {
	return fmt.Sprintf("cache:%s:%s", generation, key)
}

func (b *RedisBackend) Get(ctx context.Context, generation, key string) ([]byte, bool, error) {
	val, err := b.rdb.Get(ctx, entryKey(generation, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, true, nil
}

func (b *RedisBackend) Put(ctx context.Context, generation, key string, value []byte) error {
	if err := b.rdb.Set(ctx, entryKey(generation, key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	if err := b.rdb.SAdd(ctx, generationsKey, generation).Err(); err != nil {
		return fmt.Errorf("redis register generation %s: %w", generation, err)
	}
	return nil
}

func (b *RedisBackend) Generations(ctx context.Context) ([]string, error) {
	names, err := b.rdb.SMembers(ctx, generationsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("redis list generations: %w", err)
	}
	return names, nil
}

func (b *RedisBackend) DropGeneration(ctx context.Context, generation string) error {
	pattern := entryKey(generation, "*")
	iter := b.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := b.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("redis del %s: %w", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan %s: %w", pattern, err)
	}
	if err := b.rdb.SRem(ctx, generationsKey, generation).Err(); err != nil {
		return fmt.Errorf("redis unregister generation %s: %w", generation, err)
	}
	return nil
}
