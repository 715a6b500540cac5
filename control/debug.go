// control/debug.go
// Author: momentics <momentics@gmail.com>
//
// Runtime debug handler and probe reflector for pool inspection.

package control

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// DebugProbes holds registered probe functions.
type DebugProbes struct {
	mu     sync.RWMutex
	probes map[string]func() any
}

// NewDebugProbes creates a probe registry.
func NewDebugProbes() *DebugProbes {
	return &DebugProbes{
		probes: make(map[string]func() any),
	}
}

// RegisterProbe inserts a named debug hook.
func (dp *DebugProbes) RegisterProbe(name string, fn func() any) {
	dp.mu.Lock()
	defer dp.mu.Unlock()
	dp.probes[name] = fn
}

// Probes returns the registered probe names, sorted.
func (dp *DebugProbes) Probes() []string {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	names := make([]string, 0, len(dp.probes))
	for k := range dp.probes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// DumpState returns output of all probes.
func (dp *DebugProbes) DumpState() map[string]any {
	dp.mu.RLock()
	defer dp.mu.RUnlock()
	out := make(map[string]any)
	for k, fn := range dp.probes {
		out[k] = fn()
	}
	return out
}

// StatsSource is a set of named pools, such as pool.Registry.
type StatsSource interface {
	Names() []string
	Stats() map[string]api.PoolStats
}

// RegisterPoolProbes adds a "pool.<name>" probe per pool currently in src,
// plus a "pool.leaks" probe summing live objects across all of them.
func RegisterPoolProbes(dp api.Debug, src StatsSource) {
	for _, name := range src.Names() {
		name := name
		dp.RegisterProbe("pool."+name, func() any {
			return src.Stats()[name]
		})
	}
	dp.RegisterProbe("pool.leaks", func() any {
		live := 0
		for _, s := range src.Stats() {
			live += s.Live
		}
		return live
	})
}

var _ api.Debug = (*DebugProbes)(nil)
