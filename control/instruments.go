// control/instruments.go
// Author: momentics <momentics@gmail.com>
//
// Instruments bundles the shared observers built from a Config and hands out
// per-pool views of them by observer name.

package control

import (
	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-pool/api"
)

// Instruments holds one instance of every configurable observer.
type Instruments struct {
	Log        *LogObserver
	Metrics    *MetricsRegistry
	Prometheus *PrometheusMetrics
	History    *History
}

// NewInstruments builds the instruments described by cfg.
// A nil log selects Logger().
func NewInstruments(cfg *Config, log logrus.FieldLogger) *Instruments {
	return &Instruments{
		Log:        NewLogObserver(log),
		Metrics:    NewMetricsRegistry(),
		Prometheus: NewPrometheusMetrics(cfg.Metrics.Namespace),
		History:    NewHistory(cfg.History.Depth),
	}
}

// ObserversFor returns the observers pc asks for, bound to pc.Name,
// in the order they are listed.
func (in *Instruments) ObserversFor(pc PoolConfig) []api.Observer {
	out := make([]api.Observer, 0, len(pc.Observers))
	for _, name := range pc.Observers {
		switch name {
		case ObserverLog:
			out = append(out, in.Log.ForPool(pc.Name))
		case ObserverMetrics:
			out = append(out, NewMetricsObserver(in.Metrics, pc.Name))
		case ObserverPrometheus:
			out = append(out, in.Prometheus.ForPool(pc.Name))
		case ObserverHistory:
			out = append(out, in.History.ForPool(pc.Name))
		}
	}
	return out
}

// RegisterProbes exposes the metrics snapshot and event history through dp.
func (in *Instruments) RegisterProbes(dp api.Debug) {
	dp.RegisterProbe("metrics", func() any {
		return in.Metrics.GetSnapshot()
	})
	dp.RegisterProbe("history", func() any {
		return in.History.Events()
	})
}
