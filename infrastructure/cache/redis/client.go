// ABOUTME: Redis cache implementation using go-redis with ReJSON value storage
// ABOUTME: Provides distributed caching with TTL support and connection pooling

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"activity-viewer-api/pkg/config"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"
)

// RedisCache implements the Cache interface using Redis. Values are stored as
// JSON documents through the ReJSON module so they stay queryable server-side.
type RedisCache struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewRedisCache creates a new Redis cache instance and verifies connectivity.
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClient(client)

	return &RedisCache{
		client:  client,
		handler: handler,
	}, nil
}

// Get retrieves a JSON value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.handler.JSONGet(key, ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	switch data := val.(type) {
	case []byte:
		return data, nil
	case string:
		return []byte(data), nil
	default:
		return nil, errors.New("unexpected value type from redis")
	}
}

// Set stores a JSON value in Redis with the given TTL. A ttl of 0 stores the
// value without expiration. The value must be valid JSON.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if _, err := c.handler.JSONSet(key, ".", json.RawMessage(value)); err != nil {
		return err
	}

	if ttl > 0 {
		return c.client.Expire(ctx, key, ttl).Err()
	}
	return nil
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	c.client.Del(ctx, key)
	return nil
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
