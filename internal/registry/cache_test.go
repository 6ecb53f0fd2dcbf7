package registry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingRegistry counts Get calls that reach the backing registry.
type countingRegistry struct {
	*Memory
	gets atomic.Int32
	err  error
}

func (c *countingRegistry) Get(ctx context.Context, id string) (Sensor, error) {
	c.gets.Add(1)
	if c.err != nil {
		return Sensor{}, c.err
	}
	return c.Memory.Get(ctx, id)
}

func TestCached_HitAvoidsBackend(t *testing.T) {
	inner := &countingRegistry{Memory: NewMemory([]Sensor{{ID: "s-1", District: "Coblong"}}, nil)}
	cached := NewCached(inner, 10, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		s, err := cached.Get(ctx, "s-1")
		require.NoError(t, err)
		require.Equal(t, "Coblong", s.District)
	}
	exists, err := cached.Exists(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, exists)

	require.Equal(t, int32(1), inner.gets.Load())
}

func TestCached_MissIsNotCached(t *testing.T) {
	inner := &countingRegistry{Memory: NewMemory(nil, nil)}
	cached := NewCached(inner, 10, time.Minute)
	ctx := context.Background()

	exists, err := cached.Exists(ctx, "s-1")
	require.NoError(t, err)
	require.False(t, exists)

	inner.Put(Sensor{ID: "s-1"})

	exists, err = cached.Exists(ctx, "s-1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, int32(2), inner.gets.Load())
}

func TestCached_BackendErrorPropagates(t *testing.T) {
	backendErr := errors.New("connection refused")
	inner := &countingRegistry{Memory: NewMemory(nil, nil), err: backendErr}
	cached := NewCached(inner, 10, time.Minute)

	exists, err := cached.Exists(context.Background(), "s-1")
	require.ErrorIs(t, err, backendErr)
	require.False(t, exists)
}

func TestCached_Invalidate(t *testing.T) {
	inner := &countingRegistry{Memory: NewMemory([]Sensor{{ID: "s-1"}}, nil)}
	cached := NewCached(inner, 10, time.Minute)
	ctx := context.Background()

	_, err := cached.Get(ctx, "s-1")
	require.NoError(t, err)
	cached.Invalidate("s-1")
	_, err = cached.Get(ctx, "s-1")
	require.NoError(t, err)

	require.Equal(t, int32(2), inner.gets.Load())
}

func TestLRUCache_Expiry(t *testing.T) {
	now := time.Date(2026, 2, 8, 12, 0, 0, 0, time.UTC)
	cache := newLRUCache(10, time.Minute, func() time.Time { return now })

	cache.put(Sensor{ID: "s-1"})
	_, ok := cache.get("s-1")
	require.True(t, ok)

	now = now.Add(59 * time.Second)
	_, ok = cache.get("s-1")
	require.True(t, ok)

	now = now.Add(time.Second)
	_, ok = cache.get("s-1")
	require.False(t, ok)
	require.Equal(t, 0, cache.size())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newLRUCache(2, time.Hour, time.Now)

	cache.put(Sensor{ID: "a"})
	cache.put(Sensor{ID: "b"})
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put(Sensor{ID: "c"})

	_, ok = cache.get("b")
	require.False(t, ok, "b was least recently used")
	_, ok = cache.get("a")
	require.True(t, ok)
	_, ok = cache.get("c")
	require.True(t, ok)
	require.Equal(t, 2, cache.size())
}

func TestLRUCache_PutRefreshes(t *testing.T) {
	cache := newLRUCache(2, time.Hour, time.Now)

	cache.put(Sensor{ID: "a", Status: "Inactive"})
	cache.put(Sensor{ID: "a", Status: "Active"})

	s, ok := cache.get("a")
	require.True(t, ok)
	require.Equal(t, "Active", s.Status)
	require.Equal(t, 1, cache.size())
}
