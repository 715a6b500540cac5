// Package control
// Author: momentics <momentics@gmail.com>
//
// Instrumentation, configuration and debug introspection layer for pools.
//
// Provides:
//   - TOML configuration of named pools and their observers
//   - Observers exporting pool events to a metrics registry, Prometheus,
//     a structured log and a bounded event history
//   - Debug probes over pool statistics and the host platform
//
// Observers in this package may be shared by several pools; their internal
// state is guarded so pools owned by different goroutines can report into
// the same instrument.
package control
