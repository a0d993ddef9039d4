package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowEnforcesBurst(t *testing.T) {
	limiters := newClientLimiters(0.001, 1)
	now := time.Now()

	assert.True(t, limiters.allow("192.0.2.1", now))
	assert.False(t, limiters.allow("192.0.2.1", now))

	// Another client has its own bucket.
	assert.True(t, limiters.allow("192.0.2.2", now))
}

func TestIdleEntriesAreEvicted(t *testing.T) {
	limiters := newClientLimiters(1, 1)
	now := time.Now()

	require.True(t, limiters.allow("192.0.2.1", now))
	require.Len(t, limiters.clients, 1)

	// A request long after the first client went quiet triggers a sweep
	// that drops the idle entry.
	later := now.Add(idleTimeout + sweepInterval)
	require.True(t, limiters.allow("192.0.2.2", later))

	limiters.mu.Lock()
	defer limiters.mu.Unlock()
	assert.NotContains(t, limiters.clients, "192.0.2.1")
	assert.Contains(t, limiters.clients, "192.0.2.2")
}

func TestActiveEntriesSurviveSweep(t *testing.T) {
	limiters := newClientLimiters(1000, 1000)
	now := time.Now()

	require.True(t, limiters.allow("192.0.2.1", now))
	// Keeps being active just under the idle cutoff.
	step := idleTimeout - time.Minute
	require.True(t, limiters.allow("192.0.2.1", now.Add(step)))
	require.True(t, limiters.allow("192.0.2.1", now.Add(2*step)))

	limiters.mu.Lock()
	defer limiters.mu.Unlock()
	assert.Contains(t, limiters.clients, "192.0.2.1")
}
