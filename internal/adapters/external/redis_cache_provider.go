package external

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/go-redis/redis/v8"
	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

const (
	// every key this backend writes lives under the namespace
	redisKeyNamespace = "newsletter:"
	redisConnectLimit = 5 * time.Second
)

// RedisCacheProviderAdapter stores session payloads in Redis
type RedisCacheProviderAdapter struct {
	client *redis.Client
	stats  hitCounter
}

// NewRedisCacheProviderAdapter connects to Redis and verifies the connection with a PING
func NewRedisCacheProviderAdapter(cfg *config.RedisConfig) (*RedisCacheProviderAdapter, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectLimit)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewDatabaseError("failed to connect to Redis", err)
	}

	return &RedisCacheProviderAdapter{client: client}, nil
}

func namespaced(key string) (string, error) {
	if key == "" {
		return "", errors.NewValidationError("cache key cannot be empty")
	}
	return redisKeyNamespace + key, nil
}

func (r *RedisCacheProviderAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	k, err := namespaced(key)
	if err != nil {
		return nil, err
	}

	val, err := r.client.Get(ctx, k).Bytes()
	switch {
	case stderrors.Is(err, redis.Nil):
		r.stats.miss()
		return nil, errors.NewNotFoundError("cache miss")
	case err != nil:
		return nil, errors.NewDatabaseError("redis get failed", err)
	}

	r.stats.hit()
	return val, nil
}

// Set writes value with an expiry; sessions never live without one
func (r *RedisCacheProviderAdapter) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	k, err := namespaced(key)
	if err != nil {
		return err
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, k, value, ttl).Err(); err != nil {
		return errors.NewDatabaseError("redis set failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Delete(ctx context.Context, key string) error {
	k, err := namespaced(key)
	if err != nil {
		return err
	}
	if err := r.client.Del(ctx, k).Err(); err != nil {
		return errors.NewDatabaseError("redis delete failed", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) GetStats() ports.CacheStats {
	return r.stats.snapshot()
}

func (r *RedisCacheProviderAdapter) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewDatabaseError("failed to close Redis connection", err)
	}
	return nil
}

func (r *RedisCacheProviderAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewDatabaseError("redis ping failed", err)
	}
	return nil
}
