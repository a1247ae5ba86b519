package session

import (
	"sync"
	"time"
)

type attempt struct {
	count       int
	windowStart time.Time
}

// Limiter tracks failed login attempts per client origin. Once an origin
// accumulates max failures inside the window, every further attempt from
// it is rejected until the window elapses, correct credentials included.
// The counter is cleared only by a successful login or window elapse.
type Limiter struct {
	mu       sync.Mutex
	attempts map[string]attempt
	max      int
	window   time.Duration
	now      func() time.Time
}

// NewLimiter returns a limiter allowing max failures per origin per window.
func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		attempts: make(map[string]attempt),
		max:      max,
		window:   window,
		now:      time.Now,
	}
}

// Allow reports whether a login attempt from origin may proceed.
func (l *Limiter) Allow(origin string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[origin]
	if !ok {
		return true
	}

	if l.now().Sub(a.windowStart) >= l.window {
		// Window elapsed; attempts are reconsidered on their merits.
		delete(l.attempts, origin)
		return true
	}

	return a.count < l.max
}

// RecordFailure counts a failed attempt against origin. The window starts
// at the first failure and is not extended by later ones.
func (l *Limiter) RecordFailure(origin string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	a, ok := l.attempts[origin]
	if !ok || l.now().Sub(a.windowStart) >= l.window {
		l.attempts[origin] = attempt{count: 1, windowStart: l.now()}
		return
	}

	a.count++
	l.attempts[origin] = a
}

// Reset clears the counter for origin. Called on successful login only.
func (l *Limiter) Reset(origin string) {
	l.mu.Lock()
	delete(l.attempts, origin)
	l.mu.Unlock()
}

// Sweep drops counters whose window has elapsed and returns how many.
func (l *Limiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for origin, a := range l.attempts {
		if now.Sub(a.windowStart) >= l.window {
			delete(l.attempts, origin)
			removed++
		}
	}
	return removed
}
