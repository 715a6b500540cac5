package control

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleConfig = `
[log]
level = "debug"

[metrics]
namespace = "rpg"

[history]
depth = 16

[[pool]]
name = "tiles"
capacity = 128
observers = ["metrics", "history"]

[[pool]]
name = "characters"
capacity = 8
max_slots = 64
`

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pools.toml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Metrics.Namespace != "rpg" || cfg.History.Depth != 16 {
		t.Errorf("unexpected sections: %+v", cfg)
	}
	if len(cfg.Pools) != 2 {
		t.Fatalf("expected 2 pools, got %d", len(cfg.Pools))
	}
	pc, ok := cfg.Pool("characters")
	if !ok || pc.Capacity != 8 || pc.MaxSlots != 64 || len(pc.Observers) != 0 {
		t.Errorf("unexpected characters entry: %+v", pc)
	}
	if _, ok := cfg.Pool("items"); ok {
		t.Error("found unconfigured pool")
	}
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Metrics.Namespace != DefaultMetricsNamespace || cfg.History.Depth != DefaultHistoryDepth {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pools.toml")
	cfg := DefaultConfig()
	cfg.Pools = append(cfg.Pools, PoolConfig{Name: "items", Capacity: 4, Observers: []string{ObserverLog}})
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	pc, ok := got.Pool("items")
	if !ok || pc.Capacity != 4 || len(pc.Observers) != 1 || pc.Observers[0] != ObserverLog {
		t.Errorf("round trip lost data: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		pools []PoolConfig
		want  string
	}{
		"missing name":  {[]PoolConfig{{Capacity: 1}}, "name is required"},
		"negative cap":  {[]PoolConfig{{Name: "a", Capacity: -1}}, "capacity"},
		"max below cap": {[]PoolConfig{{Name: "a", Capacity: 4, MaxSlots: 2}}, "max_slots"},
		"bad observer":  {[]PoolConfig{{Name: "a", Observers: []string{"statsd"}}}, "unknown observer"},
		"duplicate":     {[]PoolConfig{{Name: "a"}, {Name: "a"}}, "duplicate"},
	}
	for name, tc := range cases {
		cfg := DefaultConfig()
		cfg.Pools = tc.pools
		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: expected error containing %q, got %v", name, tc.want, err)
		}
	}

	cfg := DefaultConfig()
	cfg.History.Depth = 0
	if err := cfg.Validate(); err == nil {
		t.Error("zero history depth accepted")
	}
}

func TestLoadConfigRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[[pool]]\ncapacity = 3\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected validation error")
	}
}
