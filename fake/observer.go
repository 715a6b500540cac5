// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

package fake

import "github.com/momentics/hioload-pool/api"

// RecordingObserver captures every notification in arrival order.
// Log, when set, is shared with other recorders to check cross-observer order.
type RecordingObserver struct {
	Name   string
	Events []api.Event
	Log    *[]string
}

func (r *RecordingObserver) add(e api.Event) {
	e.Pool = r.Name
	r.Events = append(r.Events, e)
	if r.Log != nil {
		*r.Log = append(*r.Log, r.Name+":"+e.Kind.String())
	}
}

func (r *RecordingObserver) OnAlloc(bytes uintptr) {
	r.add(api.Event{Kind: api.EventAlloc, Bytes: bytes})
}

func (r *RecordingObserver) OnFree(bytes uintptr) {
	r.add(api.Event{Kind: api.EventFree, Bytes: bytes})
}

func (r *RecordingObserver) OnRequest(slot api.Handle) {
	r.add(api.Event{Kind: api.EventRequest, Slot: slot})
}

func (r *RecordingObserver) OnRelease(slot api.Handle) {
	r.add(api.Event{Kind: api.EventRelease, Slot: slot})
}

// Count returns how many events of kind were recorded.
func (r *RecordingObserver) Count(kind api.EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Bytes returns the byte amounts of the recorded events of kind, in order.
func (r *RecordingObserver) Bytes(kind api.EventKind) []uintptr {
	var out []uintptr
	for _, e := range r.Events {
		if e.Kind == kind {
			out = append(out, e.Bytes)
		}
	}
	return out
}

// Kinds returns the recorded event kinds in order.
func (r *RecordingObserver) Kinds() []api.EventKind {
	out := make([]api.EventKind, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}

// Reset discards recorded events.
func (r *RecordingObserver) Reset() {
	r.Events = nil
}

var _ api.Observer = (*RecordingObserver)(nil)
