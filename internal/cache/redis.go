package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// Redis is a Redis-backed classification cache shared across processes.
type Redis struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(cfg RedisConfig) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "cinnamon"
	}

	return &Redis{
		client:    client,
		keyPrefix: prefix,
	}, nil
}

func (c *Redis) key(merchant model.MerchantKey) string {
	return c.keyPrefix + ":class:" + string(merchant)
}

// Get retrieves a cached result.
func (c *Redis) Get(ctx context.Context, merchant model.MerchantKey) (service.CachedResult, bool, error) {
	data, err := c.client.Get(ctx, c.key(merchant)).Bytes()
	if errors.Is(err, redis.Nil) {
		return service.CachedResult{}, false, nil
	}
	if err != nil {
		return service.CachedResult{}, false, fmt.Errorf("cache get: %w", err)
	}

	var result service.CachedResult
	if err := json.Unmarshal(data, &result); err != nil {
		return service.CachedResult{}, false, fmt.Errorf("cache decode: %w", err)
	}
	return result, true, nil
}

// Set stores a result with the given TTL.
func (c *Redis) Set(ctx context.Context, merchant model.MerchantKey, result service.CachedResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(merchant), data, ttl).Err()
}

// Close closes the Redis connection.
func (c *Redis) Close() error {
	return c.client.Close()
}
