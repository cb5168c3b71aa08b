package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sweeper drops stale entries and reports how many it removed.
type Sweeper interface {
	Sweep() int
}

// StartSweeper runs s every interval until ctx is done. Used for expired in-memory drafts and
// idle rate limiters.
func StartSweeper(ctx context.Context, name string, s Sweeper, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Sweeper shutdown signal received", zap.String("sweeper", name))
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				logger.Info("Stale entries removed", zap.String("sweeper", name), zap.Int("count", n))
			}
		}
	}
}
