package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)
	m := NewMemory().WithClock(func() time.Time { return now })

	_, ok, err := m.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	buf := []byte("bundle")
	require.NoError(t, m.Set(ctx, "k", buf, time.Minute))
	buf[0] = 'X'

	val, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "bundle", string(val))

	now = now.Add(time.Minute)
	_, ok, _ = m.Get(ctx, "k")
	assert.False(t, ok, "entry expires at its deadline")

	require.NoError(t, m.Set(ctx, "forever", []byte("x"), 0))
	now = now.Add(24 * time.Hour)
	_, ok, _ = m.Get(ctx, "forever")
	assert.True(t, ok)

	require.NoError(t, m.Delete(ctx, "forever"))
	_, ok, _ = m.Get(ctx, "forever")
	assert.False(t, ok)
}

func TestNewRedis_BadURL(t *testing.T) {
	_, err := NewRedis("not-a-url://", "tp:")
	assert.Error(t, err)
}

func TestRedis_Unreachable(t *testing.T) {
	r, err := NewRedis("redis://127.0.0.1:1/0?dial_timeout=200ms&max_retries=-1", "tp:")
	require.NoError(t, err)
	defer r.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, ok, err := r.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, r.Set(ctx, "k", []byte("v"), time.Minute))
	assert.Error(t, r.Ping(ctx))
}
