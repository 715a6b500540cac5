// File: pool/config.go
// Author: momentics <momentics@gmail.com>
//
// Binding of control.PoolConfig entries to pools.

package pool

import (
	"fmt"

	"github.com/momentics/hioload-pool/control"
)

// FromConfig creates a pool as described by pc, attaching the observers pc
// lists from in. extra options are applied after the configured ones.
// in may be nil when pc lists no observers.
func FromConfig[T any](pc control.PoolConfig, in *control.Instruments, extra ...Option[T]) (*Pool[T], error) {
	if err := pc.Validate(); err != nil {
		return nil, fmt.Errorf("pool %q: %w", pc.Name, err)
	}
	opts := []Option[T]{
		WithName[T](pc.Name),
		WithCapacity[T](pc.Capacity),
		WithMaxSlots[T](pc.MaxSlots),
	}
	if len(pc.Observers) > 0 {
		if in == nil {
			return nil, fmt.Errorf("pool %q: observers configured without instruments", pc.Name)
		}
		for _, o := range in.ObserversFor(pc) {
			opts = append(opts, WithObserver[T](o))
		}
	}
	return New[T](append(opts, extra...)...)
}

// RegisterFromConfig creates the pool cfg declares under name and registers
// it in r.
func RegisterFromConfig[T any](r *Registry, cfg *control.Config, name string, in *control.Instruments, extra ...Option[T]) (*Pool[T], error) {
	pc, ok := cfg.Pool(name)
	if !ok {
		return nil, fmt.Errorf("pool %q not configured", name)
	}
	p, err := FromConfig[T](pc, in, extra...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(name, Erase(p)); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}
