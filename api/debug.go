// Package api
// Author: momentics
//
// Live introspection of pools and the process hosting them.

package api

// Debug exposes runtime introspection of registered probes.
type Debug interface {
	// DumpState evaluates every probe and returns the results by name.
	DumpState() map[string]any

	// RegisterProbe registers or replaces the probe called name.
	RegisterProbe(name string, fn func() any)

	// Probes returns the registered probe names in sorted order.
	Probes() []string
}
