package cache

import (
	"context"

	"storefront/logger"

	"github.com/robfig/cron/v3"
)

// StartPurgeScheduler removes expired entries from store on the given cron spec.
func StartPurgeScheduler(store Store, spec string) (*cron.Cron, error) {
	logger.Log.Info("[CACHE-SCHEDULER] Initializing cache purge scheduler", "spec", spec)

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { PurgeExpired(store) }); err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}

// PurgeExpired runs one purge pass.
func PurgeExpired(store Store) {
	n, err := store.Purge(context.Background())
	if err != nil {
		logger.Log.Error("[CACHE-SCHEDULER] Error purging cache", "error", err)
		return
	}
	if n > 0 {
		logger.Log.Info("[CACHE-SCHEDULER] Purged expired cache entries", "count", n)
	}
}
