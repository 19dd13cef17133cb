package data

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestRunCache_PutGet(t *testing.T) {
	c := NewRunCache(time.Minute)
	run := c.Put("calculate", map[string]int{"wells": 3})

	_, err := uuid.Parse(run.ID)
	require.NoError(t, err)

	got, ok := c.Get(run.ID)
	require.True(t, ok)
	assert.Equal(t, "calculate", got.Kind)
	assert.Equal(t, map[string]int{"wells": 3}, got.Payload)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestRunCache_Expiry(t *testing.T) {
	c := NewRunCache(time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	run := c.Put("aggregate", nil)
	now = now.Add(2 * time.Minute)

	_, ok := c.Get(run.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.evictExpired()
	assert.Zero(t, c.Len())
}

func TestRunCache_Nil(t *testing.T) {
	var c *RunCache
	run := c.Put("calculate", 1)
	assert.Empty(t, run.ID, "nothing stored, nothing to fetch")
	_, ok := c.Get(run.ID)
	assert.False(t, ok)
	assert.Zero(t, c.Len())
	c.Clear()
	c.StartCleanup(time.Millisecond)
	c.Close()
}

func TestRunCache_CleanupStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := NewRunCache(time.Millisecond)
	c.StartCleanup(time.Millisecond)
	c.Put("calculate", nil)
	c.Close()
	c.Close()
}

func TestRequestKey(t *testing.T) {
	a := RequestKey(map[string]int{"x": 1})
	assert.Len(t, a, 16)
	assert.Equal(t, a, RequestKey(map[string]int{"x": 1}))
	assert.NotEqual(t, a, RequestKey(map[string]int{"x": 2}))
}
