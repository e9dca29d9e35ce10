package infrastructure

import (
	"context"

	"newsletter.app/internal/ports"
)

// Pinger is implemented by session backends
type Pinger interface {
	Ping(ctx context.Context) error
}

// SessionStoreHealthChecker reports whether the session backend answers
type SessionStoreHealthChecker struct {
	backend Pinger
	kind    string
	metrics ports.CacheMetrics
}

// NewSessionStoreHealthChecker creates a checker; metrics may be nil
func NewSessionStoreHealthChecker(backend Pinger, kind string, metrics ports.CacheMetrics) *SessionStoreHealthChecker {
	return &SessionStoreHealthChecker{backend: backend, kind: kind, metrics: metrics}
}

func (s *SessionStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "sessions",
		Details: map[string]interface{}{
			"store": s.kind,
		},
	}

	if s.backend == nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "session backend is not configured"
		return status
	}

	if err := s.backend.Ping(ctx); err != nil {
		status.Status = ports.HealthStatusUnhealthy
		status.Error = "session backend ping failed"
		return status
	}

	if s.metrics != nil {
		stats := s.metrics.GetStats()
		status.Details["hits"] = stats.Hits
		status.Details["misses"] = stats.Misses
	}
	status.Status = ports.HealthStatusHealthy
	return status
}
