package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTL_GetSet(t *testing.T) {
	c := NewTTL[int](time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", 42)
	v, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestTTL_Expiry(t *testing.T) {
	c := NewTTL[string](10 * time.Millisecond)

	c.Set("a", "x")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTL_Delete(t *testing.T) {
	c := NewTTL[string](time.Minute)

	c.Set("a", "x")
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestTTL_Sweep(t *testing.T) {
	c := NewTTL[string](5 * time.Millisecond)

	c.Set("a", "x")
	c.Set("b", "y")
	time.Sleep(10 * time.Millisecond)
	c.sweep()

	c.mu.Lock()
	defer c.mu.Unlock()
	assert.Empty(t, c.entries)
}
