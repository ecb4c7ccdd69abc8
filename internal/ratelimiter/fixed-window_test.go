package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow(t *testing.T) {
	now := time.Date(2025, 9, 5, 10, 0, 0, 0, time.UTC)
	rl := NewFixedWindowLimiter(2, 5*time.Second)
	rl.now = func() time.Time { return now }

	ok, _ := rl.Allow("a")
	assert.True(t, ok)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)

	ok, retry := rl.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, 5*time.Second, retry)

	// other keys are counted separately
	ok, _ = rl.Allow("b")
	assert.True(t, ok)

	now = now.Add(3 * time.Second)
	ok, retry = rl.Allow("a")
	assert.False(t, ok)
	assert.Equal(t, 2*time.Second, retry)

	now = now.Add(2 * time.Second)
	ok, _ = rl.Allow("a")
	assert.True(t, ok)
	assert.Len(t, rl.clients, 1)
}
