package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/zenkeeper/internal/logging"
)

// RunPeriodicSync calls svc.Sync every interval until ctx is done. Failures
// are logged and the loop keeps going. A non-positive interval returns at once.
func RunPeriodicSync(ctx context.Context, svc SyncService, interval time.Duration, log logging.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := svc.Sync(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn(ctx, "background sync failed", "error", err)
			}
		case <-ctx.Done():
			return
		}
	}
}
