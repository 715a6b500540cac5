// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-size object pool over an intrusive free list of individually
// allocated slots.

package pool

import (
	"sync/atomic"
	"unsafe"

	"github.com/sirupsen/logrus"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
)

// noSlot terminates the free list.
const noSlot = -1

// slot is one unit of pool storage. While free, next links it to the
// following free slot; while live, value holds the caller's object.
type slot[T any] struct {
	value T
	next  int32
	gen   uint32
	live  bool
}

var poolIDs atomic.Uint64

// Pool is a fixed-element-size allocator for values of T.
//
// Slots are allocated one at a time and never move, so the pointer returned
// by Ref.Value stays valid until the object is released. Storage of free
// slots is dropped by Close; objects that are still live at that point are
// not destructed and are reported as leaked.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	id   uint64
	name string

	slots   []*slot[T]
	free    int32 // free-list head
	freeLen int
	slotCnt int

	observers observerList
	ctor      func(*T)
	dtor      func(*T)
	maxSlots  int
	log       logrus.FieldLogger

	requests   uint64
	releases   uint64
	allocBytes uint64
	freedBytes uint64
	closed     bool
}

// Ref is the caller's handle on a live object.
type Ref[T any] struct {
	v *T
	h api.Handle
}

// Value returns the pooled object. It must not be used after release.
func (r Ref[T]) Value() *T { return r.v }

// Handle returns the slot handle, usable with the type-erased API.
func (r Ref[T]) Handle() api.Handle { return r.h }

// IsZero reports whether r was never issued by a pool.
func (r Ref[T]) IsZero() bool { return r.v == nil }

// New creates a pool, registers the WithObserver observers and pre-allocates
// the WithCapacity slots, reported as a single OnAlloc event.
func New[T any](opts ...Option[T]) (*Pool[T], error) {
	o := options[T]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < 0 || o.maxSlots < 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "negative pool size").
			WithContext("capacity", o.capacity).
			WithContext("max_slots", o.maxSlots)
	}
	if o.log == nil {
		o.log = control.Logger()
	}
	p := &Pool[T]{
		id:       poolIDs.Add(1),
		name:     o.name,
		free:     noSlot,
		ctor:     o.ctor,
		dtor:     o.dtor,
		maxSlots: o.maxSlots,
		log:      o.log,
	}
	for _, obs := range o.observers {
		p.AddObserver(obs)
	}
	if err := p.grow(o.capacity); err != nil {
		return nil, err
	}
	return p, nil
}

// Name returns the pool label.
func (p *Pool[T]) Name() string { return p.name }

// ObjectSize returns the storage of one slot, bookkeeping included.
func (p *Pool[T]) ObjectSize() uintptr {
	return unsafe.Sizeof(slot[T]{})
}

// AddObserver registers o for all subsequent events. The most recently
// added observer is notified first.
func (p *Pool[T]) AddObserver(o api.Observer) {
	p.observers.add(o)
}

// RemoveObserver unregisters the latest registration of o and reports
// whether one was found. o must be comparable, e.g. a pointer.
func (p *Pool[T]) RemoveObserver(o api.Observer) bool {
	return p.observers.remove(o)
}

// Request returns a newly constructed object.
func (p *Pool[T]) Request() (Ref[T], error) {
	return p.RequestWith(nil)
}

// RequestWith is Request with a per-call initializer, run after the pool
// constructor.
func (p *Pool[T]) RequestWith(init func(*T)) (Ref[T], error) {
	if p.closed {
		return Ref[T]{}, closedError(p.name)
	}
	idx, err := p.take()
	if err != nil {
		return Ref[T]{}, err
	}
	s := p.slots[idx]
	s.gen++
	s.live = true
	h := p.handle(idx, s.gen)

	p.observers.request(h)

	if p.ctor != nil {
		p.ctor(&s.value)
	}
	if init != nil {
		init(&s.value)
	}
	p.requests++
	return Ref[T]{v: &s.value, h: h}, nil
}

// Release destructs r's object and recycles its slot. It fails without side
// effects when r belongs to another pool or its slot is not live under the
// same generation.
func (p *Pool[T]) Release(r Ref[T]) error {
	return p.ReleaseHandle(r.h)
}

// ReleaseHandle is Release addressed by slot handle.
func (p *Pool[T]) ReleaseHandle(h api.Handle) error {
	if p.closed {
		return closedError(p.name)
	}
	if err := p.check(h); err != nil {
		return err
	}
	p.release(int32(h.Index))
	return nil
}

// ReleaseUnchecked is Release without ownership or state validation.
// Releasing a foreign, stale or already released reference corrupts the pool.
func (p *Pool[T]) ReleaseUnchecked(r Ref[T]) {
	p.release(int32(r.h.Index))
}

// Resolve returns the live object addressed by h.
func (p *Pool[T]) Resolve(h api.Handle) (*T, error) {
	if p.closed {
		return nil, closedError(p.name)
	}
	if err := p.check(h); err != nil {
		return nil, err
	}
	return &p.slots[h.Index].value, nil
}

// Close releases the storage of every free slot, reports the total with a
// single OnFree event and drops all observers. Live objects are left
// untouched; their count is returned and logged. Close is idempotent.
func (p *Pool[T]) Close() int {
	if p.closed {
		return p.live()
	}
	p.closed = true

	var freed uintptr
	size := p.ObjectSize()
	for idx := p.free; idx != noSlot; {
		s := p.slots[idx]
		next := s.next
		p.slots[idx] = nil
		freed += size
		idx = next
	}
	p.slotCnt -= p.freeLen
	p.free = noSlot
	p.freeLen = 0

	if freed > 0 {
		p.freedBytes += uint64(freed)
		p.observers.free(freed)
	}
	p.observers.reset()
	p.slots = nil

	leaked := p.live()
	if leaked > 0 {
		p.log.WithFields(logrus.Fields{
			"pool":   p.name,
			"leaked": leaked,
		}).Warn("pool closed with objects still in use")
	}
	return leaked
}

// FreeLen returns the free-list depth.
func (p *Pool[T]) FreeLen() int { return p.freeLen }

// Live returns the number of objects requested and not yet released.
func (p *Pool[T]) Live() int { return p.live() }

// Stats returns a snapshot of the pool counters.
func (p *Pool[T]) Stats() api.PoolStats {
	return api.PoolStats{
		Name:           p.name,
		ObjectSize:     p.ObjectSize(),
		Slots:          p.slotCnt,
		Free:           p.freeLen,
		Live:           p.live(),
		Requests:       p.requests,
		Releases:       p.releases,
		AllocatedBytes: p.allocBytes,
		FreedBytes:     p.freedBytes,
		Closed:         p.closed,
	}
}

func (p *Pool[T]) live() int {
	return int(p.requests - p.releases)
}

func (p *Pool[T]) handle(idx int32, gen uint32) api.Handle {
	return api.Handle{Pool: p.id, Index: uint32(idx), Generation: gen}
}

// take unlinks the free-list head, growing by one slot when it is empty.
func (p *Pool[T]) take() (int32, error) {
	if p.free == noSlot {
		if err := p.grow(1); err != nil {
			return noSlot, err
		}
	}
	idx := p.free
	s := p.slots[idx]
	p.free = s.next
	s.next = noSlot
	p.freeLen--
	return idx, nil
}

// grow allocates n slots onto the free list and reports them as one event.
func (p *Pool[T]) grow(n int) error {
	if n <= 0 {
		return nil
	}
	if p.maxSlots > 0 && p.slotCnt+n > p.maxSlots {
		return exhaustedError(p.name, p.maxSlots, p.slotCnt+n)
	}
	bytes := uintptr(n) * p.ObjectSize()
	p.observers.alloc(bytes)
	p.allocBytes += uint64(bytes)
	for ; n > 0; n-- {
		idx := int32(len(p.slots))
		p.slots = append(p.slots, &slot[T]{next: p.free})
		p.free = idx
		p.freeLen++
		p.slotCnt++
	}
	return nil
}

func (p *Pool[T]) release(idx int32) {
	s := p.slots[idx]
	if p.dtor != nil {
		p.dtor(&s.value)
	}
	var zero T
	s.value = zero
	s.live = false
	p.releases++

	p.observers.release(p.handle(idx, s.gen))

	s.next = p.free
	p.free = idx
	p.freeLen++
}

func (p *Pool[T]) check(h api.Handle) error {
	if h.IsZero() {
		return handleError(api.ErrCodeInvalidHandle, "zero handle", p.name, h)
	}
	if h.Pool != p.id {
		return handleError(api.ErrCodeNotOwned, "handle belongs to another pool", p.name, h)
	}
	if int(h.Index) >= len(p.slots) || p.slots[h.Index] == nil {
		return handleError(api.ErrCodeInvalidHandle, "slot index out of range", p.name, h)
	}
	s := p.slots[h.Index]
	if !s.live || s.gen != h.Generation {
		return handleError(api.ErrCodeDoubleRelease, "slot is not live", p.name, h)
	}
	return nil
}
