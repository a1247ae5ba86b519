package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/Hereaj/portfolio-api/internal/session"
)

// Sweeper periodically evicts expired sessions and stale login attempt
// windows from the in-memory stores. Expired entries are already
// rejected lazily on access; the sweep only reclaims memory for tokens
// nobody presents again.
type Sweeper struct {
	store    *session.Store
	limiter  *session.Limiter
	logger   *slog.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewSweeper creates a new session sweeper
func NewSweeper(
	store *session.Store,
	limiter *session.Limiter,
	logger *slog.Logger,
	interval time.Duration,
) *Sweeper {
	return &Sweeper{
		store:    store,
		limiter:  limiter,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep task
func (s *Sweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runSweep()
		case <-s.stopCh:
			s.logger.Info("session sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("session sweeper context cancelled")
			return
		}
	}
}

func (s *Sweeper) runSweep() {
	sessions := s.store.Sweep()
	windows := s.limiter.Sweep()

	if sessions > 0 || windows > 0 {
		s.logger.Info("session sweep completed",
			slog.Int("sessions_evicted", sessions),
			slog.Int("attempt_windows_evicted", windows),
		)
	}
}

// Stop signals the sweeper to stop
func (s *Sweeper) Stop() {
	close(s.stopCh)
}
