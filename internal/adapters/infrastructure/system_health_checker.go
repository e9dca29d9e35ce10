package infrastructure

import (
	"context"
	"sync"

	"newsletter.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	checkers map[string]ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	SessionChecker  ports.HealthChecker
	EmailChecker    ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker; nil checkers are skipped
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	checkers := make(map[string]ports.HealthChecker)
	if config.DatabaseChecker != nil {
		checkers["database"] = config.DatabaseChecker
	}
	if config.SessionChecker != nil {
		checkers["sessions"] = config.SessionChecker
	}
	if config.EmailChecker != nil {
		checkers["email"] = config.EmailChecker
	}
	return &SystemHealthChecker{checkers: checkers}
}

// CheckAll runs every check concurrently
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]ports.HealthStatus, len(s.checkers))
	)

	for name, checker := range s.checkers {
		wg.Add(1)
		go func(name string, checker ports.HealthChecker) {
			defer wg.Done()
			status := checker.Check(ctx)
			mu.Lock()
			results[name] = status
			mu.Unlock()
		}(name, checker)
	}
	wg.Wait()

	return results
}
