// File: pool/registry.go
// Author: momentics <momentics@gmail.com>
//
// Registry of named pools with heterogeneous element types.
// Pools are held behind api.Pool; Lookup recovers the typed pool.

package pool

import (
	"sort"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// Registry maps pool names to type-erased pools. The registry itself is safe
// for concurrent use; the pools it holds are not.
type Registry struct {
	mu    sync.RWMutex
	pools map[string]api.Pool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pools: make(map[string]api.Pool),
	}
}

// Register adds p under name. Names are unique.
func (r *Registry) Register(name string, p api.Pool) error {
	if name == "" || p == nil {
		return api.NewError(api.ErrCodeInvalidArgument, "pool name and pool are required").
			WithContext("pool", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pools[name]; ok {
		return api.NewError(api.ErrCodeAlreadyExists, "pool already registered").
			WithContext("pool", name)
	}
	r.pools[name] = p
	return nil
}

// Get returns the pool registered under name.
func (r *Registry) Get(name string) (api.Pool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pools[name]
	return p, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pools))
	for name := range r.pools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AddObserver registers o with every pool currently in the registry.
func (r *Registry) AddObserver(o api.Observer) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.pools {
		p.AddObserver(o)
	}
}

// Stats returns the stats of every pool by name.
func (r *Registry) Stats() map[string]api.PoolStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]api.PoolStats, len(r.pools))
	for name, p := range r.pools {
		out[name] = p.Stats()
	}
	return out
}

// Close tears down and unregisters every pool, returning the leaked object
// count of each pool that had any.
func (r *Registry) Close() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	leaks := make(map[string]int)
	for name, p := range r.pools {
		if n := p.Close(); n > 0 {
			leaks[name] = n
		}
		delete(r.pools, name)
	}
	return leaks
}

// Lookup returns the Pool[T] registered under name.
func Lookup[T any](r *Registry, name string) (*Pool[T], error) {
	ap, ok := r.Get(name)
	if !ok {
		return nil, api.NewError(api.ErrCodeNotFound, "pool not registered").
			WithContext("pool", name)
	}
	p, ok := Typed[T](ap)
	if !ok {
		return nil, api.NewError(api.ErrCodeTypeMismatch, "pool holds a different element type").
			WithContext("pool", name)
	}
	return p, nil
}
