// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for pool monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"

	"github.com/momentics/hioload-pool/api"
)

// MetricsRegistry holds mutable and read-only metrics.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns the value stored under key.
func (mr *MetricsRegistry) Get(key string) (any, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	v, ok := mr.metrics[key]
	return v, ok
}

// Updated returns the time of the last Set.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns the latest metrics.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

// Metric key suffixes published by MetricsObserver under "pool.<name>.".
const (
	MetricAllocBytes = "alloc_bytes"
	MetricFreeBytes  = "free_bytes"
	MetricRequests   = "requests"
	MetricReleases   = "releases"
	MetricLive       = "live"
)

// MetricsObserver accumulates pool events into a MetricsRegistry.
type MetricsObserver struct {
	reg    *MetricsRegistry
	prefix string

	mu       sync.Mutex
	alloc    uint64
	free     uint64
	requests uint64
	releases uint64
}

// NewMetricsObserver publishes under "pool.<name>." in reg.
func NewMetricsObserver(reg *MetricsRegistry, name string) *MetricsObserver {
	return &MetricsObserver{reg: reg, prefix: "pool." + name + "."}
}

// Key returns the registry key for metric.
func (m *MetricsObserver) Key(metric string) string {
	return m.prefix + metric
}

func (m *MetricsObserver) OnAlloc(bytes uintptr) {
	m.mu.Lock()
	m.alloc += uint64(bytes)
	v := m.alloc
	m.mu.Unlock()
	m.reg.Set(m.Key(MetricAllocBytes), v)
}

func (m *MetricsObserver) OnFree(bytes uintptr) {
	m.mu.Lock()
	m.free += uint64(bytes)
	v := m.free
	m.mu.Unlock()
	m.reg.Set(m.Key(MetricFreeBytes), v)
}

func (m *MetricsObserver) OnRequest(api.Handle) {
	m.mu.Lock()
	m.requests++
	req, live := m.requests, m.requests-m.releases
	m.mu.Unlock()
	m.reg.Set(m.Key(MetricRequests), req)
	m.reg.Set(m.Key(MetricLive), live)
}

func (m *MetricsObserver) OnRelease(api.Handle) {
	m.mu.Lock()
	m.releases++
	rel, live := m.releases, m.requests-m.releases
	m.mu.Unlock()
	m.reg.Set(m.Key(MetricReleases), rel)
	m.reg.Set(m.Key(MetricLive), live)
}

var _ api.Observer = (*MetricsObserver)(nil)
