package stats

import (
	"sync/atomic"
	"time"
)

// Collector accumulates per-process request counters. All counters are
// atomic so concurrent handlers never coordinate through locks.
type Collector struct {
	started time.Time

	total        int64
	success      int64 // 2xx
	clientErrors int64 // 4xx
	serverErrors int64 // 5xx
}

// Snapshot is a point-in-time copy of the collector counters.
type Snapshot struct {
	UptimeSeconds int64 `json:"uptime_seconds"`
	Total         int64 `json:"total_requests"`
	Success       int64 `json:"success"`
	ClientErrors  int64 `json:"client_errors"`
	ServerErrors  int64 `json:"server_errors"`
}

// NewCollector creates a collector with the uptime clock started now.
func NewCollector() *Collector {
	return &Collector{started: time.Now()}
}

// Record counts one completed request by its response status code.
func (c *Collector) Record(statusCode int) {
	atomic.AddInt64(&c.total, 1)

	switch {
	case statusCode >= 200 && statusCode < 300:
		atomic.AddInt64(&c.success, 1)
	case statusCode >= 400 && statusCode < 500:
		atomic.AddInt64(&c.clientErrors, 1)
	case statusCode >= 500:
		atomic.AddInt64(&c.serverErrors, 1)
	}
}

// Snapshot returns the current counter values.
func (c *Collector) Snapshot() Snapshot {
	return Snapshot{
		UptimeSeconds: int64(time.Since(c.started).Seconds()),
		Total:         atomic.LoadInt64(&c.total),
		Success:       atomic.LoadInt64(&c.success),
		ClientErrors:  atomic.LoadInt64(&c.clientErrors),
		ServerErrors:  atomic.LoadInt64(&c.serverErrors),
	}
}
