package pool_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/pool"
)

func TestFromConfigWiresObservers(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	cfg := control.DefaultConfig()
	cfg.Pools = []control.PoolConfig{{
		Name:      "tiles",
		Capacity:  2,
		MaxSlots:  3,
		Observers: []string{"log", "metrics", "prometheus", "history"},
	}}
	require.NoError(t, cfg.Validate())
	in := control.NewInstruments(cfg, log)
	reg := pool.NewRegistry()

	p, err := pool.RegisterFromConfig[tile](reg, cfg, "tiles", in)
	require.NoError(t, err)
	assert.Equal(t, "tiles", p.Name())
	sz := p.ObjectSize()

	r, err := p.Request()
	require.NoError(t, err)
	require.NoError(t, p.Release(r))

	// history recorded the capacity alloc, the request and the release
	events := in.History.Events()
	require.Len(t, events, 3)
	assert.Equal(t, api.Event{Kind: api.EventAlloc, Pool: "tiles", Bytes: 2 * sz}, events[0])
	assert.Equal(t, api.EventRequest, events[1].Kind)
	assert.Equal(t, api.EventRelease, events[2].Kind)

	v, ok := in.Metrics.Get("pool.tiles.requests")
	require.True(t, ok)
	assert.Equal(t, uint64(1), v)

	n, err := testutil.GatherAndCount(in.Prometheus.Registry(), "hioload_pool_pool_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Len(t, hook.AllEntries(), 3)

	_, err = pool.Lookup[tile](reg, "tiles")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = p.Request()
		require.NoError(t, err)
	}
	_, err = p.Request()
	assert.ErrorIs(t, err, api.ErrResourceExhausted)
}

func TestFromConfigRejectsInvalidEntries(t *testing.T) {
	_, err := pool.FromConfig[tile](control.PoolConfig{Name: "x", Capacity: -1}, nil)
	assert.Error(t, err)

	_, err = pool.FromConfig[tile](control.PoolConfig{Name: "x", Observers: []string{"log"}}, nil)
	assert.Error(t, err)

	cfg := control.DefaultConfig()
	_, err = pool.RegisterFromConfig[tile](pool.NewRegistry(), cfg, "absent", nil)
	assert.Error(t, err)
}
