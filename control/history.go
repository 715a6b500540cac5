// control/history.go
// Author: momentics <momentics@gmail.com>
//
// Bounded history of the most recent pool events, for post-mortem dumps.

package control

import (
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-pool/api"
)

// History retains the last depth events reported by any of its pool views.
type History struct {
	mu    sync.Mutex
	q     *queue.Queue
	depth int
	total uint64
}

// NewHistory creates a history holding at most depth events (minimum 1).
func NewHistory(depth int) *History {
	if depth < 1 {
		depth = 1
	}
	return &History{q: queue.New(), depth: depth}
}

// ForPool returns an observer recording events tagged with name.
func (h *History) ForPool(name string) api.Observer {
	return &historyObserver{h: h, pool: name}
}

func (h *History) record(e api.Event) {
	h.mu.Lock()
	h.q.Add(e)
	if h.q.Length() > h.depth {
		h.q.Remove()
	}
	h.total++
	h.mu.Unlock()
}

// Events returns the retained events, oldest first.
func (h *History) Events() []api.Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]api.Event, h.q.Length())
	for i := range out {
		out[i] = h.q.Get(i).(api.Event)
	}
	return out
}

// Len returns the number of retained events.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.q.Length()
}

// Total returns how many events were ever recorded, dropped ones included.
func (h *History) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

type historyObserver struct {
	h    *History
	pool string
}

func (o *historyObserver) OnAlloc(bytes uintptr) {
	o.h.record(api.Event{Kind: api.EventAlloc, Pool: o.pool, Bytes: bytes})
}

func (o *historyObserver) OnFree(bytes uintptr) {
	o.h.record(api.Event{Kind: api.EventFree, Pool: o.pool, Bytes: bytes})
}

func (o *historyObserver) OnRequest(slot api.Handle) {
	o.h.record(api.Event{Kind: api.EventRequest, Pool: o.pool, Slot: slot})
}

func (o *historyObserver) OnRelease(slot api.Handle) {
	o.h.record(api.Event{Kind: api.EventRelease, Pool: o.pool, Slot: slot})
}
