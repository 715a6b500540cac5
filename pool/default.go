package pool

import "sync"

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// DefaultRegistry returns a process-wide Registry so independent components
// can publish and find pools by name.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
	})
	return defaultReg
}
