package resolver

import (
	"context"
	"log"
	"time"
)

// syncRetryDelay is the fixed wait between failed sync probes.
const syncRetryDelay = 5 * time.Second

// StartSyncWatchdog launches the background liveness loop: probe the lookup
// client's ledger connection until one sync succeeds, waiting a fixed delay
// after each failure. Resolution traffic is not blocked on it; callers that
// care can poll Synced.
func (r *Resolver) StartSyncWatchdog(ctx context.Context) {
	go r.syncLoop(ctx)
}

func (r *Resolver) syncLoop(ctx context.Context) {
	for {
		err := r.client.Sync(ctx)
		if err == nil {
			r.synced.Store(true)
			log.Println("Ledger connection synchronized")
			return
		}
		log.Printf("Sync error: %v", err)

		select {
		case <-r.clock.After(syncRetryDelay):
		case <-ctx.Done():
			return
		}
	}
}

// Synced reports whether the sync watchdog has seen the ledger connection
// catch up.
func (r *Resolver) Synced() bool {
	return r.synced.Load()
}
