package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrIfBelow atomically increments a counter only while it is below the cap.
// Returns 1 when the increment happened. The key expires well after the day
// boundary; the day is part of the scope key, so stale counters are garbage,
// not state.
var incrIfBelow = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
  return 0
end
redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return 1
`)

// decrFloor refunds one admission without letting the counter go negative.
var decrFloor = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current <= 0 then
  return 0
end
redis.call('DECR', KEYS[1])
return 1
`)

// scopeTTL keeps counters around long enough to survive clock skew across
// workers on either side of midnight.
const scopeTTL = 48 * time.Hour

// Redis is a Redis-backed budget store shared across worker processes.
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

func (b *Redis) key(scope string) string {
	return b.keyPrefix + ":budget:" + scope
}

// IncrementIfBelow atomically increments the scope's counter if it is below
// the cap.
func (b *Redis) IncrementIfBelow(ctx context.Context, scope string, cap int) (bool, error) {
	ttlSeconds := int(scopeTTL.Seconds())
	allowed, err := incrIfBelow.Run(ctx, b.client, []string{b.key(scope)}, cap, ttlSeconds).Int()
	if err != nil {
		return false, fmt.Errorf("budget increment: %w", err)
	}
	return allowed == 1, nil
}

// Decrement refunds one admission for a scope, flooring at zero.
func (b *Redis) Decrement(ctx context.Context, scope string) error {
	if err := decrFloor.Run(ctx, b.client, []string{b.key(scope)}).Err(); err != nil {
		return fmt.Errorf("budget decrement: %w", err)
	}
	return nil
}

// Count returns the current counter for a scope.
func (b *Redis) Count(ctx context.Context, scope string) (int, error) {
	n, err := b.client.Get(ctx, b.key(scope)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("budget count: %w", err)
	}
	return n, nil
}

// Close closes the Redis connection.
func (b *Redis) Close() error {
	return b.client.Close()
}
