package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops expired sessions and reports how many went.
type Sweeper interface {
	Sweep(ctx context.Context) int
}

// RunSessionSweeper sweeps idle sessions every interval until ctx is done.
// The returned channel closes once the loop has stopped.
func RunSessionSweeper(ctx context.Context, sweeper Sweeper, interval time.Duration, logger *zap.Logger) <-chan struct{} {
	done := make(chan struct{})
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if n := sweeper.Sweep(ctx); n > 0 {
					logger.Info("swept idle sessions", zap.Int("count", n))
				}
			case <-ctx.Done():
				logger.Debug("session sweeper stopping")
				return
			}
		}
	}()
	return done
}
