// Package api
// Author: momentics
//
// Mock/testing utilities for all core contracts; extendable for new interfaces.

package api

// ObserverFuncs is a mock-friendly Observer built from optional callbacks.
// Nil callbacks ignore their event.
type ObserverFuncs struct {
	AllocFunc   func(bytes uintptr)
	FreeFunc    func(bytes uintptr)
	RequestFunc func(slot Handle)
	ReleaseFunc func(slot Handle)
}

func (m *ObserverFuncs) OnAlloc(bytes uintptr) {
	if m.AllocFunc != nil {
		m.AllocFunc(bytes)
	}
}

func (m *ObserverFuncs) OnFree(bytes uintptr) {
	if m.FreeFunc != nil {
		m.FreeFunc(bytes)
	}
}

func (m *ObserverFuncs) OnRequest(slot Handle) {
	if m.RequestFunc != nil {
		m.RequestFunc(slot)
	}
}

func (m *ObserverFuncs) OnRelease(slot Handle) {
	if m.ReleaseFunc != nil {
		m.ReleaseFunc(slot)
	}
}

var _ Observer = (*ObserverFuncs)(nil)
