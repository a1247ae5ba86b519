package session

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsUnderThreshold(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	for i := 0; i < 4; i++ {
		assert.True(t, limiter.Allow("1.2.3.4"), "attempt %d should be allowed", i+1)
		limiter.RecordFailure("1.2.3.4")
	}

	assert.True(t, limiter.Allow("1.2.3.4"), "5th attempt should still be allowed")
}

func TestLimiter_BlocksSixthAttempt(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("1.2.3.4")
	}

	// The 6th attempt is rejected before credentials are even considered
	assert.False(t, limiter.Allow("1.2.3.4"))
}

func TestLimiter_OriginsAreIndependent(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("1.2.3.4")
	}

	assert.False(t, limiter.Allow("1.2.3.4"))
	assert.True(t, limiter.Allow("5.6.7.8"))
}

func TestLimiter_WindowElapseReadmits(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("1.2.3.4")
	}
	assert.False(t, limiter.Allow("1.2.3.4"))

	current = current.Add(15 * time.Minute)
	assert.True(t, limiter.Allow("1.2.3.4"))

	// A failure after the elapsed window starts a fresh count
	limiter.RecordFailure("1.2.3.4")
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestLimiter_ResetClearsCounter(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("1.2.3.4")
	}
	assert.False(t, limiter.Allow("1.2.3.4"))

	limiter.Reset("1.2.3.4")
	assert.True(t, limiter.Allow("1.2.3.4"))
}

func TestLimiter_SweepDropsStaleWindows(t *testing.T) {
	limiter := NewLimiter(5, 15*time.Minute)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	for i := 0; i < 3; i++ {
		limiter.RecordFailure(fmt.Sprintf("10.0.0.%d", i))
	}

	current = current.Add(16 * time.Minute)
	limiter.RecordFailure("10.0.1.1")

	assert.Equal(t, 3, limiter.Sweep())
	assert.Len(t, limiter.attempts, 1)
	assert.True(t, limiter.Allow("10.0.1.1"))
}
