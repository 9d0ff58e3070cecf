package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeclock/internal/errors"
)

func TestLimiter_AllowsUpToBudget(t *testing.T) {
	limiter := NewWithPolicy(NewMemoryStore(), time.Minute, 3)

	for i := 0; i < 3; i++ {
		assert.NoError(t, limiter.Check("employee:1"))
	}

	err := limiter.Check("employee:1")
	require.Error(t, err)
	assert.True(t, errors.IsRateLimitedError(err))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewWithPolicy(NewMemoryStore(), time.Minute, 1)

	require.NoError(t, limiter.Check("employee:1"))
	require.Error(t, limiter.Check("employee:1"))

	assert.NoError(t, limiter.Check("employee:2"))
}

func TestMemoryStore_WindowExpires(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	count, err := store.Increment("k", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	current = current.Add(10 * time.Minute)
	count, err = store.Increment("k", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// First attempt anchors the window, so 16 minutes after it the key resets.
	current = current.Add(6 * time.Minute)
	count, err = store.Increment("k", 15*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBuntStore_Increment(t *testing.T) {
	store, err := NewBuntStore(":memory:")
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Increment("k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = store.Increment("k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	other, err := store.Increment("other", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, other)
}
