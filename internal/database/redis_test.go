package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a Redis connection every helper must degrade gracefully rather
// than fail requests: limits allow, cache reads miss, invalidation no-ops.
func TestCheckRateLimit_DisabledRedisAllows(t *testing.T) {
	Redis = nil

	for i := 0; i < 5; i++ {
		allowed, err := CheckRateLimit("scan:user", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}

func TestCacheHelpers_DisabledRedis(t *testing.T) {
	Redis = nil

	assert.ErrorIs(t, CacheSet("k", "v", time.Minute), ErrCacheDisabled)

	var dest string
	assert.ErrorIs(t, CacheGet("k", &dest), ErrCacheDisabled)

	assert.NoError(t, CacheInvalidate("k"))
}
