package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGet(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "service:1", []byte(`{"price":500}`), time.Minute))

	val, ok, err := c.Get(ctx, "service:1")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"price":500}`), val)

	_, ok, err = c.Get(ctx, "service:2")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_TTLExpiry(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return clock }

	assert.NoError(t, c.Set(ctx, "service:all", []byte("[]"), 60*time.Second))

	clock = clock.Add(59 * time.Second)
	_, ok, err := c.Get(ctx, "service:all")
	assert.NoError(t, err)
	assert.True(t, ok, "entry must live until the TTL elapses")

	clock = clock.Add(2 * time.Second)
	_, ok, err = c.Get(ctx, "service:all")
	assert.NoError(t, err)
	assert.False(t, ok, "entry must expire after the TTL")

	// expired entries are dropped, not resurrected by a clock rollback
	clock = clock.Add(-10 * time.Second)
	_, ok, _ = c.Get(ctx, "service:all")
	assert.False(t, ok)
}

func TestMemory_SetOverwrites(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "service:1", []byte("old"), time.Minute))
	assert.NoError(t, c.Set(ctx, "service:1", []byte("new"), time.Minute))

	val, ok, _ := c.Get(ctx, "service:1")
	assert.True(t, ok)
	assert.Equal(t, []byte("new"), val)
}

func TestMemory_DeleteMultiple(t *testing.T) {
	c := NewMemory()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "service:1", []byte("a"), time.Minute))
	assert.NoError(t, c.Set(ctx, "service:all", []byte("b"), time.Minute))

	assert.NoError(t, c.Delete(ctx, "service:1", "service:all", "missing"))

	_, ok, _ := c.Get(ctx, "service:1")
	assert.False(t, ok)
	_, ok, _ = c.Get(ctx, "service:all")
	assert.False(t, ok)
}
