package dashboard

import (
	"sync"
	"time"
)

// PassMetrics tracks enrichment pass activity
type PassMetrics struct {
	Passes             int64
	FetchesAttempted   int64
	FetchesSucceeded   int64
	FetchesFailed      int64
	LastPassStartedAt  time.Time
	LastPassFinishedAt time.Time
	LastPassDuration   time.Duration
}

// MetricsTracker provides a goroutine-safe wrapper around PassMetrics.
type MetricsTracker struct {
	mu      sync.RWMutex
	metrics PassMetrics
}

// NewMetricsTracker builds a new tracker with zeroed metrics.
func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

// Update applies a mutation in a thread-safe way.
func (t *MetricsTracker) Update(fn func(*PassMetrics)) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fn(&t.metrics)
}

// Snapshot returns a copy of the current metrics.
func (t *MetricsTracker) Snapshot() PassMetrics {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.metrics
}
