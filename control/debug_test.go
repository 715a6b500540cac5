package control

import (
	"testing"

	"github.com/momentics/hioload-pool/api"
)

type staticStats map[string]api.PoolStats

func (s staticStats) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	return names
}

func (s staticStats) Stats() map[string]api.PoolStats { return s }

func TestDebugProbes(t *testing.T) {
	dp := NewDebugProbes()
	dp.RegisterProbe("b", func() any { return 2 })
	dp.RegisterProbe("a", func() any { return 1 })

	names := dp.Probes()
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("unexpected probe names %v", names)
	}
	if got := dp.DumpState()["b"]; got != 2 {
		t.Errorf("probe b returned %v", got)
	}
}

func TestRegisterPoolProbes(t *testing.T) {
	src := staticStats{
		"tiles": {Name: "tiles", Live: 2, Free: 1},
		"items": {Name: "items", Live: 3},
	}
	dp := NewDebugProbes()
	RegisterPoolProbes(dp, src)

	state := dp.DumpState()
	if st, ok := state["pool.tiles"].(api.PoolStats); !ok || st.Free != 1 {
		t.Errorf("unexpected pool.tiles probe %v", state["pool.tiles"])
	}
	if state["pool.leaks"] != 5 {
		t.Errorf("expected 5 leaked objects, got %v", state["pool.leaks"])
	}
}

func TestRegisterPlatformProbes(t *testing.T) {
	dp := NewDebugProbes()
	RegisterPlatformProbes(dp)
	state := dp.DumpState()
	if n, ok := state["platform.cpus"].(int); !ok || n < 1 {
		t.Errorf("unexpected cpu probe %v", state["platform.cpus"])
	}
	if n, ok := state["platform.pagesize"].(int); !ok || n <= 0 {
		t.Errorf("unexpected pagesize probe %v", state["platform.pagesize"])
	}
}
