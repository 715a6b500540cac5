package pool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/fake"
	"github.com/momentics/hioload-pool/pool"
)

type item struct {
	ID     int
	Weight float64
	Name   string
}

func TestErasedPoolRoundTrip(t *testing.T) {
	p, err := pool.New[item](pool.WithCapacity[item](2))
	require.NoError(t, err)
	ep := pool.Erase(p)
	rec := &fake.RecordingObserver{}
	ep.AddObserver(rec)

	assert.Equal(t, p.ObjectSize(), ep.ObjectSize())

	h, err := ep.RequestUntyped()
	require.NoError(t, err)
	v, err := p.Resolve(h)
	require.NoError(t, err)
	v.Name = "sword"

	require.NoError(t, ep.ReleaseUntyped(h))
	assert.ErrorIs(t, ep.ReleaseUntyped(h), api.ErrDoubleRelease)
	assert.Equal(t, []api.EventKind{api.EventRequest, api.EventRelease}, rec.Kinds())
	assert.Equal(t, 2, ep.Stats().Free)
	assert.Equal(t, 0, ep.Close())
}

func TestHeterogeneousPoolsBehindOneInterface(t *testing.T) {
	tiles, err := pool.New[tile]()
	require.NoError(t, err)
	items, err := pool.New[item]()
	require.NoError(t, err)

	pools := []api.Pool{pool.Erase(tiles), pool.Erase(items)}
	handles := make([]api.Handle, len(pools))
	for i, ap := range pools {
		handles[i], err = ap.RequestUntyped()
		require.NoError(t, err)
	}

	// a handle from one pool is rejected by the other
	assert.ErrorIs(t, pools[0].ReleaseUntyped(handles[1]), api.ErrNotOwned)
	assert.ErrorIs(t, pools[1].ReleaseUntyped(handles[0]), api.ErrNotOwned)

	for i, ap := range pools {
		require.NoError(t, ap.ReleaseUntyped(handles[i]))
		assert.Equal(t, 0, ap.Stats().Live)
	}
}

func TestTypedRecoversConcretePool(t *testing.T) {
	p, err := pool.New[item]()
	require.NoError(t, err)
	ep := pool.Erase(p)

	got, ok := pool.Typed[item](ep)
	assert.True(t, ok)
	assert.Same(t, p, got)

	_, ok = pool.Typed[tile](ep)
	assert.False(t, ok)
}
