package api_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/momentics/hioload-pool/api"
)

func TestErrorMatchesSentinel(t *testing.T) {
	err := api.NewError(api.ErrCodeDoubleRelease, "slot is not live").WithContext("pool", "tiles")
	if !errors.Is(err, api.ErrDoubleRelease) {
		t.Error("structured error does not match its sentinel")
	}
	if errors.Is(err, api.ErrNotOwned) {
		t.Error("structured error matches a foreign sentinel")
	}
	wrapped := fmt.Errorf("releasing: %w", err)
	if api.CodeOf(wrapped) != api.ErrCodeDoubleRelease {
		t.Errorf("CodeOf lost code through wrapping: %v", api.CodeOf(wrapped))
	}
}

func TestCodeOf(t *testing.T) {
	if api.CodeOf(nil) != api.ErrCodeOK {
		t.Error("nil error should map to ErrCodeOK")
	}
	if api.CodeOf(api.ErrPoolClosed) != api.ErrCodeClosed {
		t.Error("sentinel should map to its code")
	}
	if api.CodeOf(errors.New("other")) != api.ErrCodeInternal {
		t.Error("unknown error should map to ErrCodeInternal")
	}
}

func TestHandleAndEventKind(t *testing.T) {
	if !(api.Handle{}).IsZero() {
		t.Error("zero handle not reported as zero")
	}
	h := api.Handle{Pool: 1, Index: 2, Generation: 3}
	if h.String() != "pool=1 slot=2 gen=3" {
		t.Errorf("unexpected handle string %q", h.String())
	}
	if api.EventRelease.String() != "release" || api.EventKind(42).String() != "unknown" {
		t.Error("unexpected event kind names")
	}
}

func TestEventDispatch(t *testing.T) {
	var got []string
	o := &api.ObserverFuncs{
		AllocFunc:   func(b uintptr) { got = append(got, fmt.Sprint("alloc ", b)) },
		ReleaseFunc: func(h api.Handle) { got = append(got, "release "+h.String()) },
	}
	api.Event{Kind: api.EventAlloc, Bytes: 8}.Dispatch(o)
	api.Event{Kind: api.EventRelease, Slot: api.Handle{Pool: 1}}.Dispatch(o)
	api.Event{Kind: api.EventRequest}.Dispatch(o)

	if len(got) != 2 || got[0] != "alloc 8" || got[1] != "release pool=1 slot=0 gen=0" {
		t.Errorf("unexpected dispatch %v", got)
	}
}
