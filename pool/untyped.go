// File: pool/untyped.go
// Author: momentics <momentics@gmail.com>
//
// Type-erased adapter between Pool[T] and api.Pool.

package pool

import "github.com/momentics/hioload-pool/api"

// erased is the thin api.Pool view of a Pool[T].
type erased[T any] struct {
	p *Pool[T]
}

// Erase returns p behind the type-erased api.Pool interface.
func Erase[T any](p *Pool[T]) api.Pool {
	return erased[T]{p: p}
}

// Typed recovers the concrete pool behind an api.Pool returned by Erase.
func Typed[T any](ap api.Pool) (*Pool[T], bool) {
	e, ok := ap.(erased[T])
	if !ok {
		return nil, false
	}
	return e.p, true
}

func (e erased[T]) ObjectSize() uintptr { return e.p.ObjectSize() }

func (e erased[T]) RequestUntyped() (api.Handle, error) {
	r, err := e.p.Request()
	if err != nil {
		return api.Handle{}, err
	}
	return r.h, nil
}

func (e erased[T]) ReleaseUntyped(h api.Handle) error { return e.p.ReleaseHandle(h) }
func (e erased[T]) AddObserver(o api.Observer)        { e.p.AddObserver(o) }
func (e erased[T]) Stats() api.PoolStats              { return e.p.Stats() }
func (e erased[T]) Close() int                        { return e.p.Close() }

var _ api.Pool = erased[struct{}]{}
