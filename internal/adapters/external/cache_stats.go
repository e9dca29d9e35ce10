package external

import (
	"sync/atomic"
	"time"

	"newsletter.app/internal/ports"
)

// hitCounter tracks lookups for the session health report
type hitCounter struct {
	hits   atomic.Int64
	misses atomic.Int64
}

func (h *hitCounter) hit()  { h.hits.Add(1) }
func (h *hitCounter) miss() { h.misses.Add(1) }

func (h *hitCounter) snapshot() ports.CacheStats {
	hits, misses := h.hits.Load(), h.misses.Load()
	stats := ports.CacheStats{
		Hits:        hits,
		Misses:      misses,
		TotalOps:    hits + misses,
		LastUpdated: time.Now(),
	}
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(hits) / float64(stats.TotalOps)
	}
	return stats
}
