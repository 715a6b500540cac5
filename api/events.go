// File: api/events.go
// Package api defines core event types for hioload-pool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package api

// Event is a recorded observer notification.
type Event struct {
	Kind  EventKind
	Pool  string  // pool name, empty when the recorder is not bound to one
	Bytes uintptr // set for EventAlloc and EventFree
	Slot  Handle  // set for EventRequest and EventRelease
}

// Dispatch delivers e to o through the matching Observer method.
func (e Event) Dispatch(o Observer) {
	switch e.Kind {
	case EventAlloc:
		o.OnAlloc(e.Bytes)
	case EventFree:
		o.OnFree(e.Bytes)
	case EventRequest:
		o.OnRequest(e.Slot)
	case EventRelease:
		o.OnRelease(e.Slot)
	}
}
