// File: api/pool.go
// Author: momentics <momentics@gmail.com>
//
// Defines abstract pooling APIs: fixed-size object pools and the observers
// notified of their memory events.

package api

// Observer is notified of pool memory events.
//
// Calls are synchronous, on the goroutine that performed the pool operation,
// and reach observers in reverse registration order (most recent first).
// A panicking observer is not isolated: the panic propagates to the caller of
// the pool operation. Observers must not call back into the pool that is
// notifying them.
type Observer interface {
	// OnAlloc reports that the pool grew its storage by bytes.
	// A batch pre-allocation is reported as a single event.
	OnAlloc(bytes uintptr)

	// OnFree reports storage released at pool teardown, summed over the pass.
	OnFree(bytes uintptr)

	// OnRequest is called once per request, after a slot was selected and
	// before the object is constructed in it.
	OnRequest(slot Handle)

	// OnRelease is called once per release, after the object was destructed
	// and before the slot is linked back into the free list.
	OnRelease(slot Handle)
}

// Pool is the type-erased view of an object pool. It lets setup and
// diagnostics code manage pools of different element types uniformly.
type Pool interface {
	// ObjectSize returns the storage used per slot, bookkeeping included.
	ObjectSize() uintptr

	// RequestUntyped constructs a new object and returns its slot handle.
	RequestUntyped() (Handle, error)

	// ReleaseUntyped destructs the object held by h and recycles its slot.
	ReleaseUntyped(h Handle) error

	// AddObserver registers o for all subsequent events.
	AddObserver(o Observer)

	// Stats returns a point-in-time snapshot of pool counters.
	Stats() PoolStats

	// Close tears the pool down and returns the number of objects never released.
	Close() int
}
