// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-element-size object pools for hioload-pool.
// Pool[T] hands out and reclaims instances of T from slots linked through an
// intrusive free list, growing one slot at a time and never moving a live
// object. Every storage and lifecycle event is fanned out to registered
// observers. Erase adapts a Pool[T] to the type-erased api.Pool, and Registry
// groups pools of different element types by name.
//
// A pool is owned by a single goroutine; it performs no locking.
// See pool.go, observers.go, untyped.go and registry.go for implementation details.
package pool
