// File: pool/observers.go
// Author: momentics <momentics@gmail.com>
//
// Ordered observer list with last-registered-first fan-out.

package pool

import "github.com/momentics/hioload-pool/api"

// observerList stores observers in registration order and notifies them in
// reverse, which is the order a prepend-only list would yield.
type observerList struct {
	items []api.Observer
}

func (l *observerList) add(o api.Observer) {
	l.items = append(l.items, o)
}

// remove drops the most recently added registration of o.
func (l *observerList) remove(o api.Observer) bool {
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i] == o {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *observerList) reset() { l.items = nil }

// Fan-out iterates a snapshot so observers registered during a notification
// only see later events.

func (l *observerList) alloc(bytes uintptr) {
	items := l.items
	for i := len(items) - 1; i >= 0; i-- {
		items[i].OnAlloc(bytes)
	}
}

func (l *observerList) free(bytes uintptr) {
	items := l.items
	for i := len(items) - 1; i >= 0; i-- {
		items[i].OnFree(bytes)
	}
}

func (l *observerList) request(h api.Handle) {
	items := l.items
	for i := len(items) - 1; i >= 0; i-- {
		items[i].OnRequest(h)
	}
}

func (l *observerList) release(h api.Handle) {
	items := l.items
	for i := len(items) - 1; i >= 0; i-- {
		items[i].OnRelease(h)
	}
}
