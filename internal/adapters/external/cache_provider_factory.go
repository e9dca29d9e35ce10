package external

import (
	"context"
	"fmt"

	"newsletter.app/internal/config"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

// SessionBackend is a cache provider that can report its liveness
type SessionBackend interface {
	ports.CacheProvider
	ports.CacheMetrics
	Ping(ctx context.Context) error
}

type CacheProviderFactory struct{}

func NewCacheProviderFactory() *CacheProviderFactory {
	return &CacheProviderFactory{}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.SessionConfig) (SessionBackend, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("session config cannot be nil", nil)
	}

	switch cfg.Store {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported session store: %s", cfg.Store.String()), nil)
	}
}
