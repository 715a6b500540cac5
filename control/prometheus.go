// control/prometheus.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus export of pool events on a private registry.

package control

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-pool/api"
)

// PrometheusMetrics holds the collectors shared by every pool it observes.
// Each metric carries a "pool" label.
type PrometheusMetrics struct {
	registry *prometheus.Registry

	allocBytes *prometheus.CounterVec
	freeBytes  *prometheus.CounterVec
	requests   *prometheus.CounterVec
	releases   *prometheus.CounterVec
	live       *prometheus.GaugeVec
}

// NewPrometheusMetrics creates and registers all pool collectors.
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	pm := &PrometheusMetrics{registry: prometheus.NewRegistry()}

	pm.allocBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pool",
		Name:      "alloc_bytes_total",
		Help:      "Bytes of slot storage allocated",
	}, []string{"pool"})

	pm.freeBytes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pool",
		Name:      "free_bytes_total",
		Help:      "Bytes of slot storage released at teardown",
	}, []string{"pool"})

	pm.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pool",
		Name:      "requests_total",
		Help:      "Objects requested from the pool",
	}, []string{"pool"})

	pm.releases = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "pool",
		Name:      "releases_total",
		Help:      "Objects released back to the pool",
	}, []string{"pool"})

	pm.live = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "pool",
		Name:      "live_objects",
		Help:      "Objects requested and not yet released",
	}, []string{"pool"})

	pm.registry.MustRegister(pm.allocBytes, pm.freeBytes, pm.requests, pm.releases, pm.live)
	return pm
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (pm *PrometheusMetrics) Registry() *prometheus.Registry {
	return pm.registry
}

// ForPool returns an observer bound to the pool label name.
func (pm *PrometheusMetrics) ForPool(name string) api.Observer {
	return &promObserver{
		allocBytes: pm.allocBytes.WithLabelValues(name),
		freeBytes:  pm.freeBytes.WithLabelValues(name),
		requests:   pm.requests.WithLabelValues(name),
		releases:   pm.releases.WithLabelValues(name),
		live:       pm.live.WithLabelValues(name),
	}
}

type promObserver struct {
	allocBytes prometheus.Counter
	freeBytes  prometheus.Counter
	requests   prometheus.Counter
	releases   prometheus.Counter
	live       prometheus.Gauge
}

func (o *promObserver) OnAlloc(bytes uintptr) { o.allocBytes.Add(float64(bytes)) }
func (o *promObserver) OnFree(bytes uintptr)  { o.freeBytes.Add(float64(bytes)) }

func (o *promObserver) OnRequest(api.Handle) {
	o.requests.Inc()
	o.live.Inc()
}

func (o *promObserver) OnRelease(api.Handle) {
	o.releases.Inc()
	o.live.Dec()
}
