package sessions

import (
	"context"
	"time"

	"github.com/platonfloria/chaum-pedersen-auth/internal/logging"
)

// Sweeper periodically removes expired sessions from a Store.
type Sweeper struct {
	store    Store
	interval time.Duration
	logger   logging.Logger
	onSweep  func(removed int)
}

// NewSweeper returns a Sweeper ticking every interval. onSweep, if not nil,
// is called after each pass.
func NewSweeper(store Store, interval time.Duration, logger logging.Logger, onSweep func(removed int)) *Sweeper {
	return &Sweeper{store: store, interval: interval, logger: logger, onSweep: onSweep}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			removed := s.store.Sweep(ctx, now)
			if removed > 0 {
				s.logger.Debug(ctx, "expired sessions removed", "count", removed)
			}
			if s.onSweep != nil {
				s.onSweep(removed)
			}
		}
	}
}
