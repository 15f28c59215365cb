package cache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":render_lock"

// RedisArtifactCache keeps rendered mazes in Redis with a TTL.
type RedisArtifactCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisArtifactCache initializes a RedisArtifactCache with the provided Redis client and TTL.
func NewRedisArtifactCache(client *redis.Client, ttlSeconds int) (i.ArtifactCache, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	cache := &RedisArtifactCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the bytes stored under key. A missing key is a miss, not an error.
func (c *RedisArtifactCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores data under key, expiring after the cache TTL.
func (c *RedisArtifactCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Lock takes a distributed mutex for key so a rendering is produced once.
func (c *RedisArtifactCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(lockKey(key))
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.Unlock()
	}, nil
}

func lockKey(key string) string {
	return key + lockSuffix
}
