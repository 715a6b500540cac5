// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations, DTOs, and constants.

package api

import "fmt"

// Handle identifies one slot of one pool at one point of its life.
//
// Pool is the owning pool id (never zero for a valid handle), Index is the
// slot position and Generation counts how many times the slot was requested.
// A handle kept after release no longer matches its slot's generation.
type Handle struct {
	Pool       uint64
	Index      uint32
	Generation uint32
}

// IsZero reports whether h is the zero handle, which no pool ever issues.
func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return fmt.Sprintf("pool=%d slot=%d gen=%d", h.Pool, h.Index, h.Generation)
}

// EventKind enumerates observer notifications.
type EventKind int

const (
	EventUnknown EventKind = iota
	EventAlloc
	EventFree
	EventRequest
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	case EventRequest:
		return "request"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// PoolStats provides a standard layout for pool accounting.
type PoolStats struct {
	Name           string
	ObjectSize     uintptr
	Slots          int // slots currently backed by storage
	Free           int // free-list depth
	Live           int // objects requested and not yet released
	Requests       uint64
	Releases       uint64
	AllocatedBytes uint64
	FreedBytes     uint64
	Closed         bool
}
